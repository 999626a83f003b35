package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rentany/site"
	"github.com/rentany/site/config"
	"github.com/spf13/cobra"
)

const (
	shutdownTimeout = 10 * time.Second
)

// newLogger creates a JSON logger for CLI use. Development also logs
// per-request timings at debug level.
func newLogger(development bool) *slog.Logger {
	level := slog.LevelInfo
	if development {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the site",
	Long: `Start the Rent Any site.

Settings come from RENT_ANY_* environment variables, optionally tuned by a
YAML config file. In production the required variables must be set.

The server runs until interrupted (Ctrl+C) or receives SIGTERM.

Example:
  rentany serve
  RENT_ANY_ENV=production rentany serve -c /etc/rentany/rentany.yaml`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringP("config", "c", "", "path to config file")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, e, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	settings := config.Settings(cfg, e)
	logger := newLogger(settings.IsDevelopment())

	if missing := e.Missing(); len(missing) > 0 && !e.IsProduction() {
		logger.Warn("required environment variables not set, using defaults",
			"missing", missing,
		)
	}

	opts, err := config.BuildOptions(cfg, e)
	if err != nil {
		return fmt.Errorf("invalid environment: %w", err)
	}
	opts = append(opts, site.WithLogger(logger))

	s, err := site.New(opts...)
	if err != nil {
		return fmt.Errorf("failed to create site: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// start server, blocks until context cancelled
	errChan := make(chan error, 1)
	go func() {
		errChan <- s.Start(ctx)
	}()

	select {
	case err := <-errChan:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
		logger.Info("shutdown complete")
		return nil

	case <-ctx.Done():
		select {
		case err := <-errChan:
			if err != nil {
				return fmt.Errorf("server error: %w", err)
			}
			logger.Info("shutdown complete")
			return nil
		case <-time.After(shutdownTimeout):
			logger.Warn("shutdown timed out",
				"timeout", shutdownTimeout.String(),
				"action", "forcing exit",
			)
			return nil
		}
	}
}
