package main

import (
	"github.com/spf13/cobra"

	"github.com/SscSPs/grn_tracker/pkg/database"
)

var migrateSteps int

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply or roll back database migrations",
}

var migrateUpCmd = &cobra.Command{
	Use:   "up",
	Short: "Apply all pending migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		return database.RunMigrations(logger, cfg.DatabaseURL, cfg.MigrationsPath, database.MigrateUp, 0)
	},
}

var migrateDownCmd = &cobra.Command{
	Use:   "down",
	Short: "Roll back migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		return database.RunMigrations(logger, cfg.DatabaseURL, cfg.MigrationsPath, database.MigrateDown, migrateSteps)
	},
}

func init() {
	migrateDownCmd.Flags().IntVar(&migrateSteps, "steps", 1, "number of migrations to roll back; 0 rolls back all")
	migrateCmd.AddCommand(migrateUpCmd, migrateDownCmd)
	rootCmd.AddCommand(migrateCmd)
}
