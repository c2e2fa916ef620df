package main

import (
	"fmt"
	"os"

	"finman/internal/cli"

	"github.com/spf13/cobra"
)

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Initialize or upgrade the database schema",
		Long: `Migrate applies any pending schema migrations to the configured
database. Schema setup is never a side effect of other commands; run
this once before adding or seeding data.`,
		RunE: runMigrate,
	}
}

func runMigrate(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	store, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	if err := store.Migrate(ctx); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	fmt.Fprintln(os.Stdout, cli.SuccessStyle.Render("Database schema is up to date."))
	return nil
}
