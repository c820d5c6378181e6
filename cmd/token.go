package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"task-tracker.com/task-tracker/internal/auth"
)

var tokenUserID uint

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Issue a bearer token for a user id",
	Long:  "Signs a token with JWT_SECRET so local clients can call the write endpoints",
	RunE: func(cmd *cobra.Command, args []string) error {
		if tokenUserID == 0 {
			return errors.New("--user must be greater than 0")
		}

		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		token, err := auth.NewTokenManager(cfg.JWTSecret, cfg.JWTIssuer, cfg.JWTTTL).Issue(tokenUserID)
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), token)
		return nil
	},
}

func init() {
	tokenCmd.Flags().UintVar(&tokenUserID, "user", 0, "user id to put in the token subject")
	rootCmd.AddCommand(tokenCmd)
}
