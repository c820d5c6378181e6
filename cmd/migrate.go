package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	config "task-tracker.com/task-tracker/internal/configs"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		database, err := config.NewDatabaseClient(cfg.DatabaseDSN)
		if err != nil {
			return err
		}
		if err := config.Migrate(database); err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "database %s migrated\n", cfg.DatabaseDSN)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
