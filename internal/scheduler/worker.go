package scheduler

import (
	"context"
	"fmt"
	"time"

	"civitas_backend/internal/updater"
	"civitas_backend/platform/config"
	"civitas_backend/platform/logger"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
)

// Worker consumes official refresh tasks.
type Worker struct {
	server  *asynq.Server
	mux     *asynq.ServeMux
	updater *updater.Updater
	log     *logger.Logger
}

// NewWorker creates the asynq worker.
func NewWorker(cfg config.SchedulerConfig, upd *updater.Updater, log *logger.Logger) (*Worker, error) {
	redisURL := cfg.GetRedisURL()
	if redisURL == "" {
		return nil, fmt.Errorf("redis url not configured")
	}

	opt, err := redisClientOpt(redisURL, cfg.GetRedisTLSInsecure())
	if err != nil {
		return nil, err
	}

	queue := cfg.GetAsynqQueueName()
	if queue == "" {
		queue = "default"
	}

	concurrency := cfg.GetAsynqConcurrency()
	if concurrency < 1 {
		concurrency = 10
	}

	server := asynq.NewServer(opt, asynq.Config{
		Concurrency: concurrency,
		Queues: map[string]int{
			queue: 1,
		},
	})

	mux := asynq.NewServeMux()
	w := &Worker{
		server:  server,
		mux:     mux,
		updater: upd,
		log:     log,
	}

	mux.HandleFunc(TaskOfficialRefresh, w.handleOfficialRefresh)

	return w, nil
}

func (w *Worker) handleOfficialRefresh(ctx context.Context, task *asynq.Task) error {
	payload, err := ParseOfficialRefreshPayload(task)
	if err != nil {
		return err
	}

	officialID, err := uuid.Parse(payload.OfficialID)
	if err != nil {
		return err
	}

	year := payload.Year
	if year == 0 {
		year = time.Now().Year()
	}

	return w.updater.RunOne(ctx, officialID, year)
}

// Run serves tasks until the context is cancelled.
func (w *Worker) Run(ctx context.Context) {
	if w == nil || w.server == nil {
		return
	}

	go func() {
		<-ctx.Done()
		w.server.Shutdown()
	}()

	if err := w.server.Run(w.mux); err != nil {
		w.log.Error("refresh worker stopped", "error", err)
	}
}
