package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"fallapp-api/internal/handler"
	"fallapp-api/internal/metrics"
	"fallapp-api/internal/middleware"
	"fallapp-api/internal/repository"
	"fallapp-api/internal/service"
)

// Config carries everything the router needs to assemble the API
type Config struct {
	DB             *gorm.DB
	Redis          *redis.Client
	Logger         *zap.Logger
	Metrics        *metrics.Metrics
	Enqueuer       service.SentimentEnqueuer
	JWTSecret      string
	JWTLifetime    time.Duration
	GinMode        string
	BasePath       string
	AllowedOrigins []string
}

// Setup wires repositories, services and handlers into a gin engine
func Setup(cfg Config) *gin.Engine {
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}
	if cfg.BasePath == "" {
		cfg.BasePath = "/api"
	}

	r := gin.New()
	r.Use(middleware.Recovery(cfg.Logger))
	r.Use(middleware.CORS(cfg.AllowedOrigins))
	if cfg.Metrics != nil {
		r.Use(middleware.Metrics(cfg.Metrics))
	}

	// Repositories
	userRepo := repository.NewUserRepository(cfg.DB)
	fallaRepo := repository.NewFallaRepository(cfg.DB)
	ninotRepo := repository.NewNinotRepository(cfg.DB)
	eventRepo := repository.NewEventRepository(cfg.DB)
	commentRepo := repository.NewCommentRepository(cfg.DB)
	voteRepo := repository.NewVoteRepository(cfg.DB)

	// Services
	authService := service.NewAuthService(userRepo, fallaRepo, cfg.JWTSecret, cfg.JWTLifetime, cfg.Logger)
	fallaService := service.NewFallaService(fallaRepo, cfg.Logger)
	ninotService := service.NewNinotService(ninotRepo, fallaRepo, cfg.Logger)
	eventService := service.NewEventService(eventRepo, fallaRepo, cfg.Logger)
	commentService := service.NewCommentService(commentRepo, userRepo, fallaRepo, ninotRepo, cfg.Enqueuer, cfg.Logger, cfg.Metrics)
	voteService := service.NewVoteService(voteRepo, userRepo, fallaRepo, cfg.Logger, cfg.Metrics)
	statsService := service.NewStatsService(commentRepo, voteRepo, fallaRepo, userRepo, ninotRepo, eventRepo, cfg.Redis, cfg.Logger)

	// Handlers
	authHandler := handler.NewAuthHandler(authService)
	fallaHandler := handler.NewFallaHandler(fallaService)
	ninotHandler := handler.NewNinotHandler(ninotService)
	eventHandler := handler.NewEventHandler(eventService)
	commentHandler := handler.NewCommentHandler(commentService)
	voteHandler := handler.NewVoteHandler(voteService)
	adminHandler := handler.NewAdminHandler(commentService, statsService)
	statsHandler := handler.NewStatsHandler(statsService)
	healthHandler := handler.NewHealthHandler(cfg.DB)

	// Probes and metrics (no auth)
	r.GET("/health", healthHandler.Health)
	r.GET("/ready", healthHandler.Ready)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group(cfg.BasePath)
	{
		auth := api.Group("/auth")
		{
			auth.POST("/registro", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.GET("/perfil", middleware.Auth(cfg.JWTSecret), authHandler.Profile)
		}

		// Public catalog
		fallas := api.Group("/fallas")
		{
			fallas.GET("", fallaHandler.ListFallas)
			fallas.GET("/:fallaId", fallaHandler.GetFalla)
			fallas.GET("/:fallaId/ninots", ninotHandler.GetNinotsByFalla)
			fallas.GET("/:fallaId/eventos", eventHandler.GetEventsByFalla)
			fallas.GET("/:fallaId/comentarios", commentHandler.GetCommentsByFalla)
			fallas.GET("/:fallaId/votos", voteHandler.GetVotesByFalla)
		}
		// Public aggregate analytics
		estadisticas := api.Group("/estadisticas")
		{
			estadisticas.GET("/resumen", statsHandler.Summary)
			estadisticas.GET("/fallas", statsHandler.FallaBreakdown)
		}

		api.GET("/ninots/:ninotId", ninotHandler.GetNinot)
		api.GET("/ninots/:ninotId/comentarios", commentHandler.GetCommentsByNinot)
		api.GET("/eventos/:eventId", eventHandler.GetEvent)
		api.GET("/comentarios/:commentId", commentHandler.GetComment)

		// Authenticated actions
		authed := api.Group("")
		authed.Use(middleware.Auth(cfg.JWTSecret))
		{
			authed.POST("/comentarios", commentHandler.CreateComment)
			authed.PUT("/comentarios/:commentId", commentHandler.UpdateComment)
			authed.DELETE("/comentarios/:commentId", commentHandler.DeleteComment)

			authed.POST("/votos", voteHandler.CastVote)
			authed.GET("/votos/mis-votos", voteHandler.GetMyVotes)
			authed.DELETE("/votos/:voteId", voteHandler.RemoveVote)

			authed.POST("/eventos", eventHandler.CreateEvent)
		}

		// Administration
		admin := api.Group("/admin")
		admin.Use(middleware.Auth(cfg.JWTSecret), middleware.RequireAdmin())
		{
			admin.POST("/fallas", fallaHandler.CreateFalla)
			admin.PUT("/fallas/:fallaId", fallaHandler.UpdateFalla)
			admin.DELETE("/fallas/:fallaId", fallaHandler.DeleteFalla)
			admin.POST("/ninots", ninotHandler.CreateNinot)
			admin.DELETE("/ninots/:ninotId", ninotHandler.DeleteNinot)
			admin.DELETE("/eventos/:eventId", eventHandler.DeleteEvent)

			admin.GET("/fallas/:fallaId/sentimiento", adminHandler.FallaSentiment)
			admin.GET("/fallas/:fallaId/estadisticas", adminHandler.FallaStats)
			admin.GET("/resumen", adminHandler.GeneralSummary)
			admin.POST("/comentarios/reanalizar-sentimiento", adminHandler.ReanalyzeComments)
		}
	}

	return r
}
