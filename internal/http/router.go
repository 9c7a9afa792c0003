package http

import (
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/yungbote/gigifypro-backend/internal/domain"
	httpH "github.com/yungbote/gigifypro-backend/internal/http/handlers"
	httpMW "github.com/yungbote/gigifypro-backend/internal/http/middleware"
	"github.com/yungbote/gigifypro-backend/internal/observability"
	"github.com/yungbote/gigifypro-backend/internal/platform/logger"
)

type RouterConfig struct {
	Log            *logger.Logger
	Metrics        *observability.Metrics
	ServiceName    string
	AllowedOrigins []string

	AuthMiddleware *httpMW.AuthMiddleware
	RateLimiter    *httpMW.RateLimiter

	GigScoreHandler  *httpH.GigScoreHandler
	CommunityHandler *httpH.CommunityHandler
	VolunteerHandler *httpH.VolunteerHandler
	BadgeHandler     *httpH.BadgeHandler
	HealthHandler    *httpH.HealthHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.New()
	r.Use(httpMW.Recovery(cfg.Log))
	if cfg.ServiceName != "" {
		r.Use(otelgin.Middleware(cfg.ServiceName))
	}
	r.Use(httpMW.AttachTraceContext())
	r.Use(httpMW.RequestLogger(cfg.Log))
	r.Use(httpMW.Metrics(cfg.Metrics))
	r.Use(httpMW.CORS(cfg.AllowedOrigins))

	// Health
	if cfg.HealthHandler != nil {
		r.GET("/healthcheck", cfg.HealthHandler.HealthCheck)
	}
	if cfg.Metrics != nil {
		r.GET("/metrics", gin.WrapH(cfg.Metrics.Handler()))
	}

	api := r.Group("/api")
	{
		// GigScore (public)
		if cfg.GigScoreHandler != nil {
			api.GET("/gigscore/:profileId", cfg.GigScoreHandler.GetBreakdown)
			api.POST("/gigscore/:profileId/update", cfg.GigScoreHandler.Update)
			api.GET("/gigscore/:profileId/history", cfg.GigScoreHandler.History)
		}
		if cfg.BadgeHandler != nil {
			api.GET("/users/:userId/badges", cfg.BadgeHandler.ListForUser)
		}
	}

	protected := api.Group("/")
	{
		// Middleware
		if cfg.AuthMiddleware != nil {
			protected.Use(cfg.AuthMiddleware.RequireAuth())
		}
		protected.Use(cfg.RateLimiter.Middleware())

		if cfg.GigScoreHandler != nil {
			protected.GET("/me/gigscore", cfg.GigScoreHandler.Me)
		}

		// Community
		if cfg.CommunityHandler != nil {
			protected.POST("/community/stats/increment", cfg.CommunityHandler.Increment)
		}

		// Volunteer
		if cfg.VolunteerHandler != nil {
			protected.POST("/volunteer/entries", cfg.VolunteerHandler.Create)
			if cfg.AuthMiddleware != nil {
				protected.PATCH("/volunteer/entries/:id", cfg.AuthMiddleware.RequireRole(domain.RoleAdmin), cfg.VolunteerHandler.Moderate)
			}
		}

		// Badges and training
		if cfg.BadgeHandler != nil {
			protected.POST("/badges/check", cfg.BadgeHandler.Check)
			protected.POST("/training/:articleId/complete", cfg.BadgeHandler.CompleteTraining)
		}
	}

	return r
}
