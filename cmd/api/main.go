package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"babel.openfisca.ca/internal/app"
	"babel.openfisca.ca/internal/appconf"
	"babel.openfisca.ca/internal/logging"
	"babel.openfisca.ca/internal/restapi"
	"babel.openfisca.ca/internal/webui"
	"babel.openfisca.ca/paramdb"
)

func main() {
	cfg, logLevel := parseFlags(os.Args[1:])
	logger := logging.NewStructuredLogger(os.Stdout, logging.ParseLevel(logLevel))

	if err := run(cfg, logger); err != nil {
		logging.LogError(logger, "server stopped", err)
		os.Exit(1)
	}
}

// parseFlags reads the command line into a Config and the log level name
func parseFlags(args []string) (appconf.Config, string) {
	var cfg appconf.Config
	var apiKeysFlag, envFlag, logLevel string

	fs := flag.NewFlagSet("api", flag.ExitOnError)
	fs.IntVar(&cfg.Port, "port", 4000, "API server port")
	fs.StringVar(&envFlag, "env", "development", "Environment (development|test|production)")
	fs.StringVar(&apiKeysFlag, "api-keys", "test", "Comma Separated API Keys (test, etc)")
	fs.IntVar(&cfg.RateLimit, "rate-limit", 100, "Requests per second per API key, negative to disable")
	fs.StringVar(&cfg.DataPath, "data-path", "./parameters.db", "Path to the SQLite parameter database")
	fs.BoolVar(&cfg.Verbose, "verbose", false, "Log parameter seeding details")
	fs.StringVar(&logLevel, "log-level", "info", "Log level (debug|info|warn|error)")
	_ = fs.Parse(args)

	cfg.Env = appconf.EnvFlagToEnvironment(envFlag)
	cfg.ApiKeys = appconf.ParseAPIKeys(apiKeysFlag)

	return cfg, logLevel
}

// buildApplication opens the parameter database, seeds missing defaults and wires the rule set
func buildApplication(ctx context.Context, cfg appconf.Config, logger *slog.Logger) (*app.Application, *paramdb.Client, error) {
	client, err := paramdb.NewClient(paramdb.NewConfig(cfg.DataPath, cfg.Env, cfg.Verbose))
	if err != nil {
		return nil, nil, logging.WrapFatal(logger, "failed to open parameter database", err)
	}

	if err := client.SeedDefaults(ctx, logger); err != nil {
		logging.SafeCloseWithLogging(client, logger, "parameter_database")
		return nil, nil, logging.WrapFatal(logger, "failed to seed parameter defaults", err)
	}

	params, err := client.LoadTable(ctx)
	if err != nil {
		logging.SafeCloseWithLogging(client, logger, "parameter_database")
		return nil, nil, logging.WrapFatal(logger, "failed to load parameters", err)
	}

	application, err := app.New(cfg, logger, params)
	if err != nil {
		logging.SafeCloseWithLogging(client, logger, "parameter_database")
		return nil, nil, err
	}

	if counts, err := client.TableCounts(); err == nil {
		logging.LogOperation(logger, "parameters_loaded",
			slog.Int("parameter_values", counts["parameter_values"]),
			slog.Int("variables", application.Variables.Len()))
	}

	return application, client, nil
}

// routes mounts the API and, outside production, the debug pages
func routes(api *restapi.RestAPI, client *paramdb.Client) http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/", api.Handler())

	if api.Config.Env != appconf.Production {
		webui.New(api.Application, client).SetWebUIRoutes(mux)
	}

	return mux
}

func run(cfg appconf.Config, logger *slog.Logger) (err error) {
	startCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	application, client, err := buildApplication(startCtx, cfg, logger)
	if err != nil {
		return err
	}
	defer logging.HandleDeferredError(&err, client.Close, logger, "close_parameter_database")

	api := restapi.NewRestAPI(application)
	defer api.Shutdown()

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      routes(api, client),
		IdleTimeout:  time.Minute,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("starting server", "addr", srv.Addr, "env", cfg.Env.String())
		serverErr <- srv.ListenAndServe()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err := <-serverErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case sig := <-quit:
		logger.Info("shutting down server", "signal", sig.String())
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down server: %w", err)
	}

	logger.Info("server stopped")
	return nil
}
