package main

import (
	"context"
	"flag"
	"time"

	"civitas_backend/internal/fallback"
	"civitas_backend/internal/officials/repository"
	"civitas_backend/internal/updater"
	"civitas_backend/platform/config"
	"civitas_backend/platform/db"
	"civitas_backend/platform/logger"
	"civitas_backend/platform/validator"

	"github.com/google/uuid"
)

func main() {
	officialFlag := flag.String("official", "", "refresh only this official id instead of the full directory")
	yearFlag := flag.Int("year", time.Now().Year(), "expense year to aggregate")
	flag.Parse()

	if err := validator.New().Var(*yearFlag, "min=2000,max=2100"); err != nil {
		panic("year must be a four-digit year between 2000 and 2100")
	}

	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	log := logger.New(cfg.Env)
	log.Info("starting officials update", "year", *yearFlag)

	ctx := context.Background()
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

	if *officialFlag != "" {
		officialID, err := uuid.Parse(*officialFlag)
		if err != nil {
			log.Error("invalid official id", "value", *officialFlag)
			panic("invalid official id: " + *officialFlag)
		}
		if err := upd.RunOne(ctx, officialID, *yearFlag); err != nil {
			log.Error("official update failed", "official_id", officialID.String(), "error", err)
			return
		}
		log.Info("official updated", "official_id", officialID.String())
		return
	}

	result, err := upd.Run(ctx, *yearFlag)
	if err != nil {
		log.Error("batch update aborted", "error", err,
			"succeeded", result.Succeeded, "failed", result.Failed, "total", result.Total)
		return
	}

	log.Info("batch update complete",
		"succeeded", result.Succeeded, "failed", result.Failed, "total", result.Total)
}
