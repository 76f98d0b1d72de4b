package cmd

import (
	"fmt"
	"os"

	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/templui/brightlog/internal/config"
	"github.com/templui/brightlog/internal/db"
)

func MigrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply, roll back or print the database schema",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSQLStore(func(cfg *config.Config, database *sqlx.DB) error {
				return db.RunMigrations(database.DB, cfg.DBDriver)
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "down",
		Short: "Roll back the last migration",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSQLStore(func(cfg *config.Config, database *sqlx.DB) error {
				return db.MigrateDown(database.DB, cfg.DBDriver)
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "status",
		Short: "Print the applied migration version",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSQLStore(func(cfg *config.Config, database *sqlx.DB) error {
				version, err := db.Version(database.DB, cfg.DBDriver)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s: version %d\n", cfg.DBDriver, version)
				return nil
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "sql",
		Short: "Print the schema for the Supabase SQL editor",
		RunE: func(cmd *cobra.Command, args []string) error {
			return db.WriteUpSQL(cmd.OutOrStdout())
		},
	})

	return cmd
}

func loadStoreConfig() (*config.Config, error) {
	_ = godotenv.Load()
	return config.ParseStore(os.Getenv)
}

func withSQLStore(fn func(cfg *config.Config, database *sqlx.DB) error) error {
	cfg, err := loadStoreConfig()
	if err != nil {
		return err
	}
	if !cfg.UsesSQL() {
		return fmt.Errorf("DB_DRIVER=%s has no migration table; use \"do migrate sql\" and apply the output in Supabase", cfg.DBDriver)
	}

	database, err := db.Init(cfg.DBDriver, cfg.DBConnection)
	if err != nil {
		return err
	}
	defer database.Close()

	return fn(cfg, database)
}
