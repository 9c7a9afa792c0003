package app

import (
	"gorm.io/gorm"

	httpapi "github.com/yungbote/gigifypro-backend/internal/http"
	httpH "github.com/yungbote/gigifypro-backend/internal/http/handlers"
	httpMW "github.com/yungbote/gigifypro-backend/internal/http/middleware"
	"github.com/yungbote/gigifypro-backend/internal/observability"
	"github.com/yungbote/gigifypro-backend/internal/platform/logger"
)

type Middleware struct {
	Auth        *httpMW.AuthMiddleware
	RateLimiter *httpMW.RateLimiter
}

type Handlers struct {
	Health    *httpH.HealthHandler
	GigScore  *httpH.GigScoreHandler
	Community *httpH.CommunityHandler
	Volunteer *httpH.VolunteerHandler
	Badge     *httpH.BadgeHandler
}

func wireMiddleware(log *logger.Logger, cfg Config, services Services) Middleware {
	log.Info("Wiring middleware...")
	return Middleware{
		Auth:        httpMW.NewAuthMiddleware(log, services.Auth),
		RateLimiter: httpMW.NewRateLimiter(cfg.RateLimitPerMinute, cfg.RateLimitBurst),
	}
}

func wireHandlers(log *logger.Logger, db *gorm.DB, services Services) Handlers {
	log.Info("Wiring handlers...")
	return Handlers{
		Health:    httpH.NewHealthHandler(db),
		GigScore:  httpH.NewGigScoreHandler(log, services.GigScore),
		Community: httpH.NewCommunityHandler(log, services.Community),
		Volunteer: httpH.NewVolunteerHandler(log, services.Volunteer),
		Badge:     httpH.NewBadgeHandler(log, services.Badge, services.Training),
	}
}

func wireServer(log *logger.Logger, cfg Config, metrics *observability.Metrics, handlers Handlers, middleware Middleware) *httpapi.Server {
	serviceName := ""
	if cfg.OtelEnabled {
		serviceName = cfg.ServiceName
	}
	return httpapi.NewServer(httpapi.RouterConfig{
		Log:              log,
		Metrics:          metrics,
		ServiceName:      serviceName,
		AllowedOrigins:   cfg.CORSOrigins,
		AuthMiddleware:   middleware.Auth,
		RateLimiter:      middleware.RateLimiter,
		GigScoreHandler:  handlers.GigScore,
		CommunityHandler: handlers.Community,
		VolunteerHandler: handlers.Volunteer,
		BadgeHandler:     handlers.Badge,
		HealthHandler:    handlers.Health,
	})
}
