package appconf

import "strings"

type Environment int

const (
	Development Environment = iota
	Test
	Production
)

func (e Environment) String() string {
	switch e {
	case Test:
		return "test"
	case Production:
		return "production"
	default:
		return "development"
	}
}

// Config holds all the configuration settings for the application.
// Values are read from command-line flags when the server starts.
type Config struct {
	Port      int
	Env       Environment
	ApiKeys   []string
	RateLimit int    // requests per second per API key
	DataPath  string // SQLite parameter database, ":memory:" for an ephemeral one
	Verbose   bool
}

// EnvFlagToEnvironment maps the -env flag to an Environment.
// Unrecognised values fall back to Development.
func EnvFlagToEnvironment(env string) Environment {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "test":
		return Test
	case "production", "prod":
		return Production
	default:
		return Development
	}
}

// ParseAPIKeys splits a comma separated key list, dropping blanks
func ParseAPIKeys(flagValue string) []string {
	keys := make([]string, 0)
	for _, key := range strings.Split(flagValue, ",") {
		key = strings.TrimSpace(key)
		if key != "" {
			keys = append(keys, key)
		}
	}
	return keys
}
