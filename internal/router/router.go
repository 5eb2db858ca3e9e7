package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"hangout-api/internal/client"
	"hangout-api/internal/consensus"
	"hangout-api/internal/handler"
	"hangout-api/internal/metrics"
	"hangout-api/internal/middleware"
	"hangout-api/internal/repository"
	"hangout-api/internal/service"
)

// Config holds everything the router needs to wire the service together
type Config struct {
	DB                 *gorm.DB
	Logger             *zap.Logger
	JWTSecret          string
	BasePath           string
	AllowedOrigins     []string
	NotificationClient client.NotificationClient
	ConsensusSettings  consensus.Settings
	Metrics            *metrics.Metrics
}

// Setup builds the gin engine with all routes and middleware
func Setup(cfg Config) *gin.Engine {
	r := gin.New()

	r.Use(middleware.Recovery(cfg.Logger))
	r.Use(middleware.CORS(cfg.AllowedOrigins))
	if cfg.Metrics != nil {
		r.Use(middleware.Metrics(cfg.Metrics))
	}

	if cfg.NotificationClient == nil {
		cfg.NotificationClient = client.NewNoOpNotificationClient()
	}

	// Repositories
	hangoutRepo := repository.NewHangoutRepository(cfg.DB)
	pollRepo := repository.NewPollRepository(cfg.DB)
	voteRepo := repository.NewVoteRepository(cfg.DB)
	participantRepo := repository.NewParticipantRepository(cfg.DB)
	rsvpRepo := repository.NewRSVPRepository(cfg.DB)
	finalizeRepo := repository.NewFinalizeRepository(cfg.DB)

	// Services
	participantService := service.NewParticipantService(participantRepo, hangoutRepo, cfg.NotificationClient)
	hangoutService := service.NewHangoutService(hangoutRepo, pollRepo, participantRepo, rsvpRepo, cfg.ConsensusSettings, cfg.Metrics, cfg.Logger)
	voteService := service.NewVoteService(hangoutRepo, pollRepo, voteRepo, participantRepo, finalizeRepo, participantService, cfg.NotificationClient, cfg.Metrics, cfg.Logger)
	rsvpService := service.NewRSVPService(rsvpRepo, hangoutRepo, pollRepo, cfg.Metrics, cfg.Logger)

	// Handlers
	hangoutHandler := handler.NewHangoutHandler(hangoutService)
	participantHandler := handler.NewParticipantHandler(participantService)
	voteHandler := handler.NewVoteHandler(voteService)
	rsvpHandler := handler.NewRSVPHandler(rsvpService)
	liveFeedHub := handler.NewLiveFeedHub(cfg.Logger)
	wsHandler := handler.NewWSHandler(liveFeedHub, cfg.Logger)

	// Health check and metrics always live at the root, regardless of base
	// path, so probes and scrapers need no path rewriting
	r.GET("/health", healthCheck)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// API routes under the configured base path
	api := r.Group(cfg.BasePath)
	{
		if cfg.BasePath != "" && cfg.BasePath != "/" {
			// Duplicated under the base path for ingress setups that route
			// everything through it
			api.GET("/health", healthCheck)
			api.GET("/metrics", gin.WrapH(promhttp.Handler()))
		}
		api.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

		authed := api.Group("")
		authed.Use(middleware.Auth(cfg.JWTSecret))
		{
			authed.POST("", hangoutHandler.CreateHangout)
			authed.GET("", hangoutHandler.GetMyHangouts)
			authed.GET("/:hangoutId", hangoutHandler.GetHangout)
			authed.PUT("/:hangoutId", hangoutHandler.UpdateHangout)
			authed.DELETE("/:hangoutId", hangoutHandler.CancelHangout)

			authed.POST("/:hangoutId/participants", participantHandler.InviteParticipants)
			authed.GET("/:hangoutId/participants", participantHandler.GetParticipants)
			authed.DELETE("/:hangoutId/participants/:userId", participantHandler.RemoveParticipant)

			authed.POST("/:hangoutId/votes", voteHandler.CastVote)
			authed.GET("/:hangoutId/poll/summary", voteHandler.GetPollSummary)

			authed.GET("/:hangoutId/rsvps", rsvpHandler.GetRSVPs)
			authed.PUT("/:hangoutId/rsvps/me", rsvpHandler.RespondRSVP)

			authed.GET("/:hangoutId/live", wsHandler.Subscribe)
		}
	}

	return r
}

func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": "hangout-service",
	})
}
