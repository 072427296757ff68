package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/erazemk/izbor/internal/api"
	"github.com/erazemk/izbor/internal/config"
	"github.com/erazemk/izbor/internal/db"
	"github.com/erazemk/izbor/internal/store"
)

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			configPath, _ := cmd.Flags().GetString(config.FlagConfig)
			cfg, err := config.Load(config.LoadInput{
				ConfigPath: configPath,
				Env:        config.Environ(),
				Flags:      cmd.Flags(),
			})
			if err != nil {
				return err
			}
			return serve(cmd.Context(), cfg)
		},
	}
	config.RegisterFlags(cmd.Flags())
	return cmd
}

// openStore opens the configured database, ensures the schema and seeds
// an empty store when enabled.
func openStore(ctx context.Context, cfg config.Config) (*store.Store, func() error, error) {
	dialect, err := cfg.Dialect()
	if err != nil {
		return nil, nil, err
	}

	database, err := db.Open(dialect, cfg.DSN)
	if err != nil {
		return nil, nil, fmt.Errorf("opening database: %w", err)
	}

	if err := db.EnsureSchema(database, dialect); err != nil {
		database.Close()
		return nil, nil, fmt.Errorf("ensuring schema: %w", err)
	}

	s := store.New(database, dialect)
	if cfg.Seed {
		if _, err := s.SeedIfEmpty(ctx); err != nil {
			database.Close()
			return nil, nil, fmt.Errorf("seeding store: %w", err)
		}
	}
	return s, database.Close, nil
}

func serve(ctx context.Context, cfg config.Config) error {
	level, err := cfg.Level()
	if err != nil {
		return err
	}
	closeLog, err := setupLogger(cfg.LogPath, level)
	if err != nil {
		return err
	}
	defer closeLog()

	s, closeDB, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeDB()

	slog.Info("database ready", "driver", cfg.Driver)

	handler := api.LoggingMiddleware(api.NewRouter(s, api.Options{CORSOrigin: cfg.CORSOrigin}))

	server := &http.Server{
		Addr:              cfg.Addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	// Graceful shutdown on SIGINT/SIGTERM.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	go func() {
		sig := <-quit
		slog.Info("shutdown signal received", "signal", sig.String())

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			slog.Error("server forced to shutdown", "error", err)
		}
	}()

	slog.Info("server started", "addr", cfg.Addr)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server error: %w", err)
	}

	slog.Info("server stopped, closing database")
	return nil
}
