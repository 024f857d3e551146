package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	redisclient "github.com/mikiasgoitom/Inflo/internal/infrastructure/cache"
	"github.com/mikiasgoitom/Inflo/internal/infrastructure/config"
	database "github.com/mikiasgoitom/Inflo/internal/infrastructure/database"
	"github.com/mikiasgoitom/Inflo/internal/infrastructure/logger"
	"github.com/mikiasgoitom/Inflo/internal/infrastructure/repository/mongodb"
	"github.com/mikiasgoitom/Inflo/internal/infrastructure/store"
	"github.com/mikiasgoitom/Inflo/internal/infrastructure/uuidgen"
	"github.com/mikiasgoitom/Inflo/internal/usecase"
)

// seed loads the sample agents and posts into MongoDB and optionally registers a client profile.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	var clientUser, nickname string
	cmd := &cobra.Command{
		Use:          "seed",
		Short:        "Load sample posts into the database",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.NewConfig()
			if cfg.GetMongoURI() == "" {
				return errors.New("MONGODB_URI environment variable not set")
			}
			appLogger, err := logger.NewZapLogger(cfg.GetAppEnv(), cfg.GetLogLevel())
			if err != nil {
				return err
			}
			defer appLogger.Sync()

			mongoClient, err := database.NewMongoDBClient(cfg.GetMongoURI())
			if err != nil {
				return err
			}
			defer mongoClient.Disconnect()
			db := mongoClient.Client.Database(cfg.GetMongoDBName())

			seeder := usecase.NewSeedUsecase(
				mongodb.NewAgentRepository(db),
				mongodb.NewPostRepository(db),
				mongodb.NewMongoClientRepository(db.Collection("clients")),
				uuidgen.NewGenerator(),
				appLogger,
			)

			ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
			defer cancel()

			n, err := seeder.SeedSamplePosts(ctx, time.Now().UTC())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "inserted %d posts\n", n)

			if n > 0 && cfg.GetRedisURL() != "" {
				if rdb, err := redisclient.NewRedisFromURL(ctx, cfg.GetRedisURL()); err != nil {
					appLogger.Warnf("redis unavailable, feed cache not invalidated: %v", err)
				} else {
					defer redisclient.Close(rdb)
					if err := store.NewFeedCacheStore(rdb, cfg.GetFeedCacheTTL()).InvalidateFeed(ctx); err != nil {
						appLogger.Warnf("failed to invalidate feed cache: %v", err)
					}
				}
			}

			agents, err := seeder.Agents(ctx)
			if err != nil {
				return err
			}
			for _, a := range agents {
				fmt.Fprintf(cmd.OutOrStdout(), "agent %s (@%s)\n", a.DisplayName, a.Username)
			}

			if clientUser != "" {
				client, created, err := seeder.RegisterClient(ctx, clientUser, nickname)
				if err != nil {
					return err
				}
				state := "existing"
				if created {
					state = "created"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "client %s for user %s (%s)\n", client.ID, clientUser, state)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&clientUser, "client-user", "", "user id to register a client profile for")
	cmd.Flags().StringVar(&nickname, "nickname", "", "nickname for the registered client")

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
