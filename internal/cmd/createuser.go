package cmd

import (
	"warehouse/internal/repository"
	"warehouse/internal/service"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	username string
	password string
)

var createUserCmd = &cobra.Command{
	Use:   "createuser",
	Short: "Create an API user or reset an existing user's password",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, db, err := connect()
		if err != nil {
			return err
		}
		defer closeDB(db)

		// Creating users issues no tokens, so neither the signer nor the
		// refresh registry is needed.
		auth := service.NewAuthService(repository.NewUserRepository(db), nil, nil)
		user, err := auth.CreateUser(cmd.Context(), username, password)
		if err != nil {
			return err
		}
		log.Info().Uint("user_id", user.ID).Str("username", user.Username).Msg("user saved")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(createUserCmd)

	createUserCmd.Flags().StringVar(&username, "username", "", "Login name (required)")
	createUserCmd.Flags().StringVar(&password, "password", "", "Password (required)")
	_ = createUserCmd.MarkFlagRequired("username")
	_ = createUserCmd.MarkFlagRequired("password")
}
