package app

import (
	"fmt"
	"log/slog"

	"babel.openfisca.ca/internal/appconf"
	"babel.openfisca.ca/internal/maternity"
	"babel.openfisca.ca/internal/parameters"
	"babel.openfisca.ca/internal/variables"
)

// Application holds the dependencies for our HTTP handlers, helpers,
// and middleware.
type Application struct {
	Config     appconf.Config
	Logger     *slog.Logger
	Parameters *parameters.MemoryTable
	Variables  *variables.Registry
}

// New builds an Application whose rule set reads the given parameter table
func New(config appconf.Config, logger *slog.Logger, params *parameters.MemoryTable) (*Application, error) {
	registry := variables.NewRegistry()
	if err := maternity.Register(registry, params); err != nil {
		return nil, fmt.Errorf("building rule set: %w", err)
	}

	return &Application{
		Config:     config,
		Logger:     logger,
		Parameters: params,
		Variables:  registry,
	}, nil
}
