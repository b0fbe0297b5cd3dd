package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"civitas_backend/internal/fallback"
	"civitas_backend/internal/officials/repository"
	"civitas_backend/internal/scheduler"
	"civitas_backend/internal/updater"
	"civitas_backend/platform/config"
	"civitas_backend/platform/db"
	"civitas_backend/platform/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	log := logger.New(cfg.Env)
	log.Info("starting refresh worker", "env", cfg.Env)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pool, err := db.NewPool(ctx, cfg)
	if err != nil {
		log.Error("failed to connect to database", "error", err)
		panic("failed to connect to database: " + err.Error())
	}
	defer pool.Close()

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

	upd := updater.New(repo, orchestrator, cfg.UpdateBatchSize, cfg.UpdateBatchPause, log)

	worker, err := scheduler.NewWorker(cfg, upd, log)
	if err != nil {
		log.Error("failed to initialize refresh worker", "error", err)
		panic("failed to initialize refresh worker: " + err.Error())
	}

	worker.Run(ctx)
}
