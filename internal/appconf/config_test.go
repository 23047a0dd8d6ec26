package appconf

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnvFlagToEnvironment(t *testing.T) {
	tests := []struct {
		flag string
		want Environment
	}{
		{"test", Test},
		{"TEST", Test},
		{"production", Production},
		{"prod", Production},
		{"development", Development},
		{"staging", Development},
		{"", Development},
	}

	for _, tt := range tests {
		t.Run(tt.flag, func(t *testing.T) {
			assert.Equal(t, tt.want, EnvFlagToEnvironment(tt.flag))
		})
	}
}

func TestEnvironmentString(t *testing.T) {
	assert.Equal(t, "test", Test.String())
	assert.Equal(t, "production", Production.String())
	assert.Equal(t, "development", Development.String())
}

func TestParseAPIKeys(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, ParseAPIKeys(" a, ,b,"))
	assert.Empty(t, ParseAPIKeys(""))
}
