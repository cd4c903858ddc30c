// Package cli implements the trains command surface.
package cli

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/trainledger/trains/internal/app"
	"github.com/trainledger/trains/internal/config"
	"github.com/trainledger/trains/internal/database"
	"github.com/trainledger/trains/internal/services/train"
)

// CLI represents the CLI application context
type CLI struct {
	App *app.App
	db  *sql.DB
}

// NewCLI initializes the CLI against the ledger at dbPath, ensuring the
// schema exists before any operation runs.
func NewCLI(ctx context.Context, dbPath string) (*CLI, error) {
	db, err := database.Open(ctx, dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	repo := database.NewRepository(db)

	return &CLI{
		App: app.New(repo),
		db:  db,
	}, nil
}

// Close cleans up CLI resources
func (c *CLI) Close() error {
	if err := c.App.Close(); err != nil {
		slog.Error("error closing app", "error", err)
	}
	return c.db.Close()
}

// resolveDBPath determines the database path for a command invocation from
// the --db flag, the TRAINS_DB variable, and the config file, in that order.
func resolveDBPath(cmd *cobra.Command, cfg *config.Config) string {
	flagValue, _ := cmd.Flags().GetString("db")
	return cfg.ResolveDBPath(flagValue)
}

// loadConfig loads the user config, falling back to defaults on error so a
// broken config file never blocks a command.
func loadConfig() *config.Config {
	cfg, err := config.Load()
	if err != nil {
		slog.Warn("failed to load config, using defaults", "error", err)
		return &config.Config{
			KeyMappings: config.DefaultKeyMappings(),
			ColorScheme: config.DefaultColorScheme(),
		}
	}
	return cfg
}

// isValidationErr reports whether err is one of the service validation
// sentinels, which map to ExitValidation instead of a data error.
func isValidationErr(err error) bool {
	for _, sentinel := range []error{
		train.ErrEmptyDestination,
		train.ErrDestinationTooLong,
		train.ErrInvalidNumber,
		train.ErrInvalidTime,
	} {
		if errors.Is(err, sentinel) {
			return true
		}
	}
	return false
}
