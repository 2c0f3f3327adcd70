package core

import (
	"context"
	"fmt"

	"github.com/bitswalk/retail/src/retail/db"
	"github.com/bitswalk/retail/src/retail/db/migrations"
	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate <dbname> <port> <user>",
	Short: "Apply pending schema migrations and exit",
	Args:  connectionArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := databaseConfig(args)
		if err != nil {
			return err
		}

		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}

		database, err := db.Open(ctx, cfg)
		if err != nil {
			return err
		}
		defer database.Shutdown()

		if err := migrate(ctx, database); err != nil {
			return err
		}

		current, err := migrations.NewRunner(database).CurrentVersion(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Schema at version %d\n", current)
		return nil
	},
}

// migrate applies the pending migrations of database
func migrate(ctx context.Context, database *db.Database) error {
	migrations.SetLogger(log)
	runner := migrations.NewRunner(database)

	pending, err := runner.PendingCount(ctx)
	if err != nil {
		return err
	}
	if pending == 0 {
		log.Debug("Schema is up to date", "version", runner.Latest())
		return nil
	}

	log.Info("Applying migrations", "pending", pending)
	return runner.Run(ctx)
}
