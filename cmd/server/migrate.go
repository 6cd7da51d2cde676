package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/sergdemc/y-lab-1/internal/config"
	"github.com/sergdemc/y-lab-1/internal/repository"
	"github.com/sergdemc/y-lab-1/internal/repository/migrations"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run database migrations",
	Long:  "Apply all pending catalog schema migrations to the configured PostgreSQL database",
	RunE: func(cmd *cobra.Command, _ []string) error {
		if cfg.Database.Driver != config.StoreDriverPostgres {
			return errors.New("migrate requires STORE_DRIVER=postgres")
		}

		ctx := cmd.Context()
		pool, err := repository.NewPool(ctx, cfg.Database.DSN(), int32(cfg.Database.MaxConns))
		if err != nil {
			return err
		}
		defer pool.Close()

		log.Info("running catalog migrations")
		if err := migrations.RunMigrationsUp(ctx, pool); err != nil {
			return err
		}
		log.Info("catalog migrations completed successfully")
		return nil
	},
}
