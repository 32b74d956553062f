package routes

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/Gustavo-Gaia/sistema-redec10/internal/infra/config"
	"github.com/Gustavo-Gaia/sistema-redec10/internal/transport/http/handlers"
	"github.com/Gustavo-Gaia/sistema-redec10/internal/transport/http/middleware"
	"github.com/Gustavo-Gaia/sistema-redec10/internal/usecase"
)

// ServiceSet groups the services the HTTP layer depends on.
type ServiceSet struct {
	Roster  *usecase.RosterService
	Ledger  *usecase.LedgerService
	Leaves  *usecase.LeaveService
	Reports *usecase.ReportService
}

// Dependencies encapsulates the objects required to register routes.
type Dependencies struct {
	Config   *config.AppConfig
	Logger   *zap.Logger
	Services ServiceSet
	Database DatabaseChecker
	Cache    CacheChecker
}

// DatabaseChecker exposes readiness behaviour for database connections.
type DatabaseChecker interface {
	Ping(ctx context.Context) error
}

// CacheChecker exposes readiness behaviour for cache backends.
type CacheChecker interface {
	HealthCheck(ctx context.Context) error
}

// Register configures the Gin engine with routes and middleware.
func Register(deps Dependencies) *gin.Engine {
	if deps.Config.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.EnrichContext())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(deps.Logger))

	if metrics, err := middleware.NewHTTPMetrics(middleware.HTTPMetricsOptions{}); err == nil {
		r.Use(metrics.Handler())
	} else if deps.Logger != nil {
		deps.Logger.Warn("http metrics disabled", zap.Error(err))
	}

	healthOptions := make([]handlers.HealthOption, 0, 2)

	if deps.Database != nil {
		healthOptions = append(healthOptions, handlers.WithReadinessCheck("database", deps.Database.Ping))
	}

	if deps.Cache != nil {
		healthOptions = append(healthOptions, handlers.WithReadinessCheck("redis", deps.Cache.HealthCheck))
	}

	healthHandler := handlers.NewHealthHandler(healthOptions...)

	r.GET("/healthz", healthHandler.Status)
	r.GET("/readyz", healthHandler.Readiness)

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api/v1")
	{
		if deps.Services.Roster != nil {
			personHandler := handlers.NewPersonHandler(deps.Services.Roster)
			personHandler.RegisterRoutes(api.Group("/people"))
		}

		if deps.Services.Ledger != nil {
			assignmentHandler := handlers.NewAssignmentHandler(deps.Services.Ledger)
			assignmentHandler.RegisterRoutes(api.Group("/assignments"))
		}

		if deps.Services.Leaves != nil {
			leaveHandler := handlers.NewLeaveHandler(deps.Services.Leaves)
			leaveHandler.RegisterRoutes(api.Group("/leaves"))
		}

		if deps.Services.Reports != nil {
			reportHandler := handlers.NewReportHandler(deps.Services.Reports)
			reportHandler.RegisterRoutes(api.Group("/reports"))
		}
	}

	return r
}
