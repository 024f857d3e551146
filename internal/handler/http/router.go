package http

import (
	"time"

	"github.com/didip/tollbooth/v7"
	"github.com/didip/tollbooth/v7/limiter"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/mikiasgoitom/Inflo/internal/handler/http/middleware"
	"github.com/mikiasgoitom/Inflo/internal/infrastructure/metrics"
	usecasecontract "github.com/mikiasgoitom/Inflo/internal/usecase/contract"
)

type Router struct {
	postHandler     PostHandlerInterface
	reactionHandler ReactionHandlerInterface
	commentHandler  CommentHandlerInterface
	authHandler     *AuthHandler
	interestHandler *InterestHandler
	authUsecase     usecasecontract.IAuthUseCase
	config          usecasecontract.IConfigProvider
}

func NewRouter(postUsecase usecasecontract.IPostUseCase, reactionUsecase usecasecontract.IReactionUseCase, commentUsecase usecasecontract.ICommentUseCase, authUsecase usecasecontract.IAuthUseCase, config usecasecontract.IConfigProvider) *Router {
	return &Router{
		postHandler:     NewPostHandler(postUsecase),
		reactionHandler: NewReactionHandler(reactionUsecase),
		commentHandler:  NewCommentHandler(commentUsecase),
		authHandler:     NewAuthHandler(),
		interestHandler: NewInterestHandler(),
		authUsecase:     authUsecase,
		config:          config,
	}
}

func (r *Router) SetupRoutes(router *gin.Engine) {
	allowOrigins := r.config.GetCORSAllowOrigins()
	router.Use(cors.New(cors.Config{
		AllowOrigins:     allowOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: !containsWildcard(allowOrigins),
		MaxAge:           12 * time.Hour,
	}))
	// rate limiter configuration
	lmt := tollbooth.NewLimiter(r.config.GetRateLimitPerSecond(), &limiter.ExpirableOptions{DefaultExpirationTTL: time.Hour})
	lmt.SetIPLookups([]string{"RemoteAddr", "X-Forwarded-For", "X-Real-IP"})
	lmt.SetMessage("Too many requests, please try again later.")
	router.Use(middleware.RateLimiter(lmt))
	router.Use(metrics.GinMiddleware())

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/api/v1/metrics", gin.WrapH(promhttp.Handler()))

	// API v1 routes; a bearer token is optional everywhere
	v1 := router.Group("/api/v1")
	v1.Use(middleware.OptionalAuth(r.authUsecase))

	posts := v1.Group("/posts")
	{
		posts.GET("", r.postHandler.GetFeedHandler)
		posts.GET("/:postID", r.postHandler.GetPostHandler)
		posts.GET("/:postID/comments", r.commentHandler.GetPostComments)
		posts.POST("/:postID/comments", r.commentHandler.CreateComment)
	}

	rpc := v1.Group("/rpc")
	{
		rpc.POST("/get_client_reaction", r.reactionHandler.GetClientReactionHandler)
		rpc.POST("/toggle_client_reaction", r.reactionHandler.ToggleClientReactionHandler)
	}

	v1.GET("/auth/user", r.authHandler.GetCurrentUser)
	v1.GET("/interests/topics", r.interestHandler.GetTopics)
}

func containsWildcard(origins []string) bool {
	for _, o := range origins {
		if o == "*" {
			return true
		}
	}
	return false
}
