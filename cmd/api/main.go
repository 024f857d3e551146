package main

import (
	"context"
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/mikiasgoitom/Inflo/internal/domain/contract"
	handlerHttp "github.com/mikiasgoitom/Inflo/internal/handler/http"
	redisclient "github.com/mikiasgoitom/Inflo/internal/infrastructure/cache"
	"github.com/mikiasgoitom/Inflo/internal/infrastructure/config"
	database "github.com/mikiasgoitom/Inflo/internal/infrastructure/database"
	"github.com/mikiasgoitom/Inflo/internal/infrastructure/jwt"
	"github.com/mikiasgoitom/Inflo/internal/infrastructure/logger"
	"github.com/mikiasgoitom/Inflo/internal/infrastructure/repository/mongodb"
	"github.com/mikiasgoitom/Inflo/internal/infrastructure/store"
	"github.com/mikiasgoitom/Inflo/internal/infrastructure/uuidgen"
	"github.com/mikiasgoitom/Inflo/internal/infrastructure/validator"
	"github.com/mikiasgoitom/Inflo/internal/usecase"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}
	appConfig := config.NewConfig()

	appLogger, err := logger.NewZapLogger(appConfig.GetAppEnv(), appConfig.GetLogLevel())
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer appLogger.Sync()

	if appConfig.GetMongoURI() == "" {
		appLogger.Fatalf("MONGODB_URI environment variable not set")
	}
	if appConfig.GetJWTSecret() == "" {
		appLogger.Fatalf("JWT_SECRET environment variable not set")
	}

	// Establish MongoDB connection
	mongoClient, err := database.NewMongoDBClient(appConfig.GetMongoURI())
	if err != nil {
		appLogger.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer mongoClient.Disconnect()
	db := mongoClient.Client.Database(appConfig.GetMongoDBName())

	// Register custom validators
	validator.RegisterCustomValidators()

	// Initialize Gin router
	router := gin.Default()

	// Dependency Injection: Repositories
	postRepo := mongodb.NewPostRepository(db)
	agentRepo := mongodb.NewAgentRepository(db)
	clientRepo := mongodb.NewMongoClientRepository(db.Collection("clients"))
	commentRepo := mongodb.NewCommentRepository(db)
	reactionRepo := mongodb.NewReactionRepository(db)

	indexCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	for name, ensure := range map[string]func(context.Context) error{
		"agent_posts":    postRepo.EnsureIndexes,
		"comments":       commentRepo.EnsureIndexes,
		"post_reactions": reactionRepo.EnsureIndexes,
	} {
		if err := ensure(indexCtx); err != nil {
			appLogger.Warnf("failed to ensure %s indexes: %v", name, err)
		}
	}
	cancel()

	// Dependency Injection: Services
	jwtManager := jwt.NewJWTManager(appConfig.GetJWTSecret(), appConfig.GetAccessTokenExpiry())
	jwtService := jwt.NewJWTService(jwtManager)
	uuidGenerator := uuidgen.NewGenerator()

	// Optional Dependency Injection: Redis cache
	var feedCache contract.IFeedCache
	if redisURL := appConfig.GetRedisURL(); redisURL != "" {
		rdb, err := redisclient.NewRedisFromURL(context.Background(), redisURL)
		if err != nil {
			appLogger.Warnf("redis unavailable, feed cache disabled: %v", err)
		} else {
			defer redisclient.Close(rdb)
			feedCache = store.NewFeedCacheStore(rdb, appConfig.GetFeedCacheTTL())
		}
	}

	// Dependency Injection: Usecases
	postUsecase := usecase.NewPostUsecase(postRepo, appLogger, appConfig.GetSamplePostsEnabled())
	reactionUsecase := usecase.NewReactionUsecase(reactionRepo, postRepo, appLogger)
	if feedCache != nil {
		postUsecase.SetFeedCache(feedCache)
		reactionUsecase.SetFeedCache(feedCache)
	}
	commentUsecase := usecase.NewCommentUseCase(commentRepo, postRepo, agentRepo, clientRepo, uuidGenerator, appLogger, feedCache)
	authUsecase := usecase.NewAuthUsecase(jwtService, appLogger)

	// Setup API routes
	appRouter := handlerHttp.NewRouter(postUsecase, reactionUsecase, commentUsecase, authUsecase, appConfig)
	appRouter.SetupRoutes(router)

	// Start the server
	port := appConfig.GetAppPort()
	appLogger.Infof("Server running on port %s", port)
	if err := router.Run(":" + port); err != nil {
		appLogger.Fatalf("Failed to start server: %v", err)
	}
}
