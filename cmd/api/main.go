package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"civitas_backend/internal/expenses"
	"civitas_backend/internal/fallback"
	apphttp "civitas_backend/internal/http"
	"civitas_backend/internal/officials/repository"
	"civitas_backend/internal/refresh"
	"civitas_backend/internal/scheduler"
	"civitas_backend/internal/staff"
	"civitas_backend/platform/config"
	"civitas_backend/platform/db"
	"civitas_backend/platform/logger"

	"github.com/jackc/pgx/v5/pgxpool"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	log := logger.New(cfg.Env)
	log.Info("starting server", "env", cfg.Env, "addr", cfg.HTTPAddr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := withRetry(ctx, log, "database migrations", 5, 2*time.Second, func() error {
		return db.RunMigrations(ctx, cfg, cfg.MigrationsDir)
	}); err != nil {
		log.Error("failed to run database migrations", "error", err)
		panic("failed to run database migrations: " + err.Error())
	}
	log.Info("database migrations complete")

	var pool *pgxpool.Pool
	if err := withRetry(ctx, log, "database connection", 5, 2*time.Second, func() error {
		p, err := db.NewPool(ctx, cfg)
		if err != nil {
			return err
		}
		pool = p
		return nil
	}); err != nil {
		log.Error("failed to connect to database", "error", err)
		panic("failed to connect to database: " + err.Error())
	}
	defer pool.Close()
	log.Info("database connection established")

	repo := repository.New(pool)

	registry, err := fallback.NewDefaultRegistry(cfg, log)
	if err != nil {
		log.Error("failed to build source registry", "error", err)
		panic("failed to build source registry: " + err.Error())
	}

	chains, err := fallback.LoadConfig(cfg.SourcesConfigPath)
	if err != nil {
		log.Error("failed to load sources config", "error", err)
		panic("failed to load sources config: " + err.Error())
	}

	orchestrator, err := fallback.New(chains, registry, log)
	if err != nil {
		log.Error("failed to build orchestrator", "error", err)
		panic("failed to build orchestrator: " + err.Error())
	}

	refreshClient, closeClient := initRefreshClient(cfg, log)
	if closeClient != nil {
		defer closeClient()
	}

	expensesModule := expenses.NewModule(repo, repo, orchestrator, log)
	staffModule := staff.NewModule(repo, repo, orchestrator, log)
	refreshModule := refresh.NewModule(refreshClient, log)

	engine := apphttp.NewRouter(cfg, log,
		expensesModule,
		staffModule,
		refreshModule,
	)

	srvErr := make(chan error, 1)
	go func() {
		log.Info("server listening", "addr", cfg.HTTPAddr)
		srvErr <- engine.Run(cfg.HTTPAddr)
	}()

	select {
	case <-ctx.Done():
		log.Info("shutdown signal received, gracefully shutting down")
	case err := <-srvErr:
		if err != nil {
			log.Error("server error", "error", err)
			panic("server error: " + err.Error())
		}
	}
}

func initRefreshClient(cfg config.SchedulerConfig, log *logger.Logger) (scheduler.RefreshEnqueuer, func()) {
	if cfg.GetRedisURL() == "" {
		log.Warn("REDIS_URL not configured; queued refresh disabled")
		return nil, nil
	}

	client, err := scheduler.NewClient(cfg)
	if err != nil {
		log.Error("failed to initialize refresh client", "error", err)
		return nil, nil
	}

	return client, func() {
		_ = client.Close()
	}
}

func withRetry(ctx context.Context, log *logger.Logger, name string, attempts int, baseDelay time.Duration, fn func() error) error {
	if attempts < 1 {
		return errors.New(name + ": invalid retry attempts")
	}

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if err := fn(); err == nil {
			return nil
		} else {
			lastErr = err
			log.Warn("retryable operation failed", "operation", name, "attempt", attempt, "error", err)
		}

		if attempt < attempts {
			delay := time.Duration(attempt*attempt) * baseDelay
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(delay):
			}
		}
	}

	return errors.New(name + ": " + lastErr.Error())
}
