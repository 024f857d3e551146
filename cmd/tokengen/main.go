package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/mikiasgoitom/Inflo/internal/infrastructure/config"
	"github.com/mikiasgoitom/Inflo/internal/infrastructure/jwt"
	"github.com/mikiasgoitom/Inflo/internal/infrastructure/logger"
	"github.com/mikiasgoitom/Inflo/internal/usecase"
)

// tokengen signs an access token with the API's JWT_SECRET, for local development.
func main() {
	_ = godotenv.Load()

	var email string
	cmd := &cobra.Command{
		Use:          "tokengen <userId>",
		Short:        "Issue an access token for a user",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.NewConfig()
			if cfg.GetJWTSecret() == "" {
				return errors.New("JWT_SECRET environment variable not set")
			}
			manager := jwt.NewJWTManager(cfg.GetJWTSecret(), cfg.GetAccessTokenExpiry())
			auth := usecase.NewAuthUsecase(jwt.NewJWTService(manager), logger.NewNop())
			token, err := auth.IssueAccessToken(args[0], email)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "email to embed in the token")

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
