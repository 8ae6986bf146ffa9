// Package cmd holds the management CLI commands.
package cmd

import (
	"fmt"
	"os"

	"warehouse/internal/config"
	"warehouse/internal/infra"

	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

var rootCmd = &cobra.Command{
	Use:   "manage",
	Short: "Warehouse API management commands",
	Long: `Administrative tasks for the warehouse API: applying the database
schema and creating API users. Configuration is read from the same
environment variables (and optional .env file) as the server.`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// connect loads configuration, sets up logging and opens the database.
func connect() (*config.Config, *gorm.DB, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}
	infra.SetupLogger(cfg)

	db, err := infra.NewDatabase(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}
	return cfg, db, nil
}

func closeDB(db *gorm.DB) {
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
