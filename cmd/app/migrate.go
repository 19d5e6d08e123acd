package main

import (
	"fmt"

	"pizzeria/internal/adapters/out/postgres/migrations"

	"github.com/spf13/cobra"
)

func newMigrateCmd() *cobra.Command {
	migrateCmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage the database schema",
	}

	migrateCmd.AddCommand(&cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runMigration(cmd, "Applying migrations", migrations.Up)
		},
	})
	migrateCmd.AddCommand(&cobra.Command{
		Use:   "down",
		Short: "Roll back all migrations",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runMigration(cmd, "Rolling back migrations", migrations.Down)
		},
	})

	return migrateCmd
}

func runMigration(cmd *cobra.Command, msg string, step func(dsn string) error) error {
	cfg, logger, closeLog, err := loadConfigAndLogger()
	if err != nil {
		return err
	}
	defer func() { _ = closeLog() }()

	dsn := cfg.Database.DSN()
	logger.InfoContext(cmd.Context(), msg)
	if err := step(dsn); err != nil {
		return err
	}

	version, dirty, err := migrations.Version(dsn)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "schema version %d (dirty: %t)\n", version, dirty)
	return nil
}
