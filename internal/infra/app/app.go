package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/Gustavo-Gaia/sistema-redec10/internal/core/port"
	"github.com/Gustavo-Gaia/sistema-redec10/internal/infra/config"
	"github.com/Gustavo-Gaia/sistema-redec10/internal/infra/database"
	kafkainfra "github.com/Gustavo-Gaia/sistema-redec10/internal/infra/kafka"
	"github.com/Gustavo-Gaia/sistema-redec10/internal/infra/logger"
	redisinfra "github.com/Gustavo-Gaia/sistema-redec10/internal/infra/redis"
	postgresrepo "github.com/Gustavo-Gaia/sistema-redec10/internal/repository/postgres"
	redisrepo "github.com/Gustavo-Gaia/sistema-redec10/internal/repository/redis"
	"github.com/Gustavo-Gaia/sistema-redec10/internal/transport/http/routes"
	"github.com/Gustavo-Gaia/sistema-redec10/internal/usecase"
)

type Application struct {
	cfg    *config.AppConfig
	engine *gin.Engine
	logger *zap.Logger
	pool   *pgxpool.Pool
	redis  *redisinfra.Client
}

func New(ctx context.Context, cfg *config.AppConfig) (*Application, error) {
	log, err := logger.New(cfg.App.Env)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	pool, err := database.NewPostgresPool(ctx, cfg.Postgres, log)
	if err != nil {
		return nil, fmt.Errorf("init postgres: %w", err)
	}

	redisClient, err := redisinfra.NewClient(cfg.Redis, log)
	if err != nil {
		pool.Close()
		return nil, fmt.Errorf("init redis: %w", err)
	}

	repos := postgresrepo.NewRepositories(pool)

	occupancyCache := redisrepo.NewOccupancyCache(redisClient.Client(), cfg.Redis.OccupancyPrefix)
	occupancyTTL := cfg.Redis.OccupancyTTL
	if occupancyTTL <= 0 {
		occupancyTTL = time.Minute
	}

	var eventPublisher port.EventPublisher
	if len(cfg.Kafka.Brokers) > 0 {
		kafkaProducer, err := kafkainfra.NewProducer(cfg.Kafka, log)
		if err != nil {
			log.Warn("failed to init kafka producer, using stub publisher", zap.Error(err))
			eventPublisher = kafkainfra.NewStubPublisher(log)
		} else {
			eventPublisher = kafkainfra.NewEventPublisher(kafkaProducer, cfg.App, log)
			log.Info("kafka event publisher initialized", zap.Strings("brokers", cfg.Kafka.Brokers))
		}
	} else {
		log.Info("kafka brokers not configured, using stub publisher")
		eventPublisher = kafkainfra.NewStubPublisher(log)
	}

	rosterService := usecase.NewRosterService(repos.People, repos.Assignments, repos.Leaves, eventPublisher).
		WithLogger(log)
	ledgerService := usecase.NewLedgerService(repos.Assignments, repos.People, eventPublisher).
		WithOccupancyCache(occupancyCache, occupancyTTL).
		WithLogger(log)
	leaveService := usecase.NewLeaveService(repos.Leaves, repos.People, eventPublisher).
		WithLogger(log)
	reportService := usecase.NewReportService(repos.People, repos.Assignments)

	engine := routes.Register(routes.Dependencies{
		Config:   cfg,
		Logger:   log,
		Database: pool,
		Cache:    redisClient,
		Services: routes.ServiceSet{
			Roster:  rosterService,
			Ledger:  ledgerService,
			Leaves:  leaveService,
			Reports: reportService,
		},
	})

	return &Application{
		cfg:    cfg,
		engine: engine,
		logger: log,
		pool:   pool,
		redis:  redisClient,
	}, nil
}

func (a *Application) Run(ctx context.Context) error {
	defer func() {
		_ = a.logger.Sync()
	}()
	defer func() {
		if a.pool != nil {
			a.pool.Close()
		}
	}()
	defer func() {
		if a.redis != nil {
			_ = a.redis.Close()
		}
	}()

	srv := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", a.cfg.App.Host, a.cfg.App.Port),
		Handler:           a.engine,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	a.logger.Info("starting roster API",
		zap.String("env", a.cfg.App.Env),
		zap.String("address", srv.Addr),
	)

	serverErrCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErrCh <- fmt.Errorf("run server: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown server: %w", err)
		}
		return nil
	case err := <-serverErrCh:
		return err
	}
}
