package cmd

import (
	"warehouse/internal/infra"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, db, err := connect()
		if err != nil {
			return err
		}
		defer closeDB(db)

		if err := infra.RunMigrations(db); err != nil {
			return err
		}
		log.Info().Msg("schema up to date")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
