package scheduler

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/erdoganeray/travelApp/internal/worker"
)

// StatusRunner - один проход продвижения статусов
type StatusRunner interface {
	Run(ctx context.Context, now time.Time) (int, error)
}

// StatusWorker периодически продвигает планы по статусам в зависимости от дат
type StatusWorker struct {
	*worker.BaseWorker
	runner   StatusRunner
	interval time.Duration
	now      func() time.Time
}

// NewStatusWorker создает воркер; первый проход выполняется сразу при старте
func NewStatusWorker(runner StatusRunner, interval time.Duration, logger *zap.Logger) *StatusWorker {
	if interval <= 0 {
		interval = time.Minute
	}
	return &StatusWorker{
		BaseWorker: worker.NewBaseWorker("plan-status-scheduler", logger),
		runner:     runner,
		interval:   interval,
		now:        time.Now,
	}
}

// Start блокируется до отмены ctx или вызова Stop
func (w *StatusWorker) Start(ctx context.Context) error {
	w.Logger().Info("Status scheduler started", zap.Duration("interval", w.interval))

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	w.tick(ctx)
	for {
		select {
		case <-ctx.Done():
			w.Logger().Info("Context cancelled, stopping")
			return nil
		case <-w.StopChan():
			w.Logger().Info("Stop signal received")
			return nil
		case <-ticker.C:
			w.tick(ctx)
		}
	}
}

func (w *StatusWorker) tick(ctx context.Context) {
	advanced, err := w.runner.Run(ctx, w.now())
	if err != nil {
		if ctx.Err() != nil {
			return
		}
		w.Logger().Error("Status pass failed", zap.Int("advanced", advanced), zap.Error(err))
		return
	}
	w.Logger().Debug("Status pass finished", zap.Int("advanced", advanced))
}
