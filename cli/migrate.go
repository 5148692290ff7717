package cli

import (
	"context"
	"fmt"

	"github.com/MakeNowJust/heredoc"
	"github.com/spf13/cobra"
)

func migrateCommand(cfg *Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Run storage migration",
		Long:  "Creates the pg_search_documents table and its indexes.",
		Example: heredoc.Doc(`
			$ pgsearch migrate
			$ pgsearch migrate -c ./pgsearch.yaml
			$ pgsearch migrate down
		`),
		Args: cobra.NoArgs,
		Annotations: map[string]string{
			"group": "core",
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMigrations(cmd.Context(), cfg)
		},
	}

	cmd.AddCommand(migrateDownCommand(cfg))

	return cmd
}

func migrateDownCommand(cfg *Config) *cobra.Command {
	return &cobra.Command{
		Use:   "down",
		Short: "Revert the latest storage migration",
		Example: heredoc.Doc(`
			$ pgsearch migrate down
		`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMigrateDown(cmd.Context(), cfg)
		},
	}
}

func runMigrations(_ context.Context, cfg *Config) error {
	fmt.Println("Preparing migration...")

	logger := initLogger(cfg.LogLevel)
	logger.Info("pgsearch is migrating", "version", Version)

	pgClient, err := initPostgres(logger, cfg)
	if err != nil {
		logger.Error("failed to prepare migration", "error", err)
		return err
	}
	defer pgClient.Close()

	logger.Info("Migrating Postgres...")
	if err := pgClient.Migrate(); err != nil {
		return fmt.Errorf("problem with migration %w", err)
	}
	logger.Info("Migration Postgres done.")

	return nil
}

func runMigrateDown(_ context.Context, cfg *Config) error {
	logger := initLogger(cfg.LogLevel)
	logger.Info("pgsearch is reverting migration", "version", Version)

	pgClient, err := initPostgres(logger, cfg)
	if err != nil {
		logger.Error("failed to prepare migration", "error", err)
		return err
	}
	defer pgClient.Close()

	ver, err := pgClient.MigrateDown()
	if err != nil {
		return fmt.Errorf("problem with migration %w", err)
	}
	logger.Info("Migration reverted.", "version", ver)

	return nil
}
