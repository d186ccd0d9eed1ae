package cli

import (
	"github.com/spf13/cobra"

	dbpkg "github.com/BruksfildServices01/salon-api/internal/db"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the salon tables (local and test databases)",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := dbpkg.NewDB(cfg)
		if err != nil {
			return err
		}
		defer dbpkg.Close(db)

		if err := dbpkg.Migrate(db); err != nil {
			return err
		}

		logger.Info("migration finished")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
