package app

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"github.com/yungbote/gigifypro-backend/internal/data/db"
	"github.com/yungbote/gigifypro-backend/internal/domain"
	httpapi "github.com/yungbote/gigifypro-backend/internal/http"
	"github.com/yungbote/gigifypro-backend/internal/observability"
	"github.com/yungbote/gigifypro-backend/internal/platform/logger"
)

type App struct {
	Log      *logger.Logger
	DB       *gorm.DB
	Cfg      Config
	Metrics  *observability.Metrics
	Clients  Clients
	Repos    Repos
	Services Services
	Server   *httpapi.Server

	dbService    *db.Service
	otelShutdown func(context.Context) error
}

// New connects storage, migrates, seeds the badge catalog and wires every
// layer. Callers own Close.
func New(ctx context.Context, cfg Config) (*App, error) {
	log, err := logger.New(cfg.LogMode)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	if cfg.JWTSecretKey == DefaultConfig().JWTSecretKey {
		log.Warn("jwt_secret_key is the built-in default, set GIGIFY_JWT_SECRET_KEY")
	}

	a := &App{Log: log, Cfg: cfg}
	a.otelShutdown = observability.InitOTel(ctx, log, cfg.Otel())
	a.Metrics = observability.NewMetrics(
		observability.WithNamespace(cfg.MetricsNamespace),
		observability.WithRuntimeCollectors(),
	)

	dbService, err := db.NewService(cfg.DB(), log)
	if err != nil {
		a.Close(ctx)
		return nil, fmt.Errorf("init db: %w", err)
	}
	a.dbService = dbService
	a.DB = dbService.DB()
	if err := db.AutoMigrateAll(a.DB); err != nil {
		a.Close(ctx)
		return nil, fmt.Errorf("automigrate: %w", err)
	}

	clients, err := wireClients(log, cfg)
	if err != nil {
		a.Close(ctx)
		return nil, err
	}
	a.Clients = clients
	a.Repos = wireRepos(a.DB, log)
	a.Services = wireServices(a.DB, log, cfg, a.Metrics, a.Repos, a.Clients)

	catalog, err := db.BadgeCatalog()
	if err != nil {
		a.Close(ctx)
		return nil, fmt.Errorf("load badge catalog: %w", err)
	}
	if err := a.Services.Badge.SeedCatalog(ctx, catalog); err != nil {
		a.Close(ctx)
		return nil, fmt.Errorf("seed badge catalog: %w", err)
	}

	handlers := wireHandlers(log, a.DB, a.Services)
	middleware := wireMiddleware(log, cfg, a.Services)
	a.Server = wireServer(log, cfg, a.Metrics, handlers, middleware)
	return a, nil
}

// Run serves HTTP until ctx ends. When a score bus is configured its events
// are also logged as an audit trail of what subscribers receive.
func (a *App) Run(ctx context.Context) error {
	if a == nil || a.Server == nil {
		return fmt.Errorf("app not initialized")
	}
	g, gctx := errgroup.WithContext(ctx)
	if a.Clients.ScoreBus != nil {
		if err := a.Clients.ScoreBus.StartForwarder(gctx, a.auditEvent); err != nil {
			a.Log.Warn("score bus subscribe failed", "error", err)
		}
	}
	g.Go(func() error {
		a.Log.Info("http server listening", "addr", a.Cfg.Addr)
		return a.Server.Run(gctx, a.Cfg.Addr, a.Cfg.ShutdownTimeout())
	})
	return g.Wait()
}

func (a *App) auditEvent(evt domain.ScoreEvent) {
	fields := []interface{}{"event", evt.Type, "at", evt.At}
	if evt.ProfileID != nil {
		fields = append(fields, "profile_id", evt.ProfileID.String())
	}
	if evt.UserID != nil {
		fields = append(fields, "user_id", evt.UserID.String())
	}
	if evt.TotalScore != nil {
		fields = append(fields, "total_score", *evt.TotalScore)
	}
	if len(evt.Badges) > 0 {
		fields = append(fields, "badges", evt.Badges)
	}
	a.Log.Debug("score event", fields...)
}

func (a *App) Close(ctx context.Context) {
	if a == nil {
		return
	}
	a.Clients.Close()
	if a.dbService != nil {
		if err := a.dbService.Close(); err != nil {
			a.Log.Warn("db close failed", "error", err)
		}
	}
	if a.otelShutdown != nil {
		if err := a.otelShutdown(ctx); err != nil {
			a.Log.Warn("otel shutdown failed", "error", err)
		}
	}
	a.Log.Sync()
}
