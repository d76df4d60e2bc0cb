package worker

import (
	"context"
	"time"

	"todoList/internal/logger"

	"go.uber.org/zap"
)

// Refresher - кусок сервиса, нужный воркеру: пересчитать просрочку и
// сохранить файл, если что-то поменялось
type Refresher interface {
	RefreshOverdueNow(ctx context.Context) (int, error)
}

// OverdueWorker периодически переводит просроченные задачи в Overdue,
// пока процесс жив: дата успевает смениться между действиями пользователя
type OverdueWorker struct {
	svc      Refresher
	interval time.Duration
}

func NewOverdueWorker(svc Refresher, interval time.Duration) *OverdueWorker {
	if interval <= 0 {
		interval = time.Minute
	}
	return &OverdueWorker{
		svc:      svc,
		interval: interval,
	}
}

func (w *OverdueWorker) Start(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			w.Check(ctx)
		case <-ctx.Done():
			logger.Info("Worker: Фоновая проверка останавливается")
			return
		}
	}
}

func (w *OverdueWorker) Check(ctx context.Context) {
	start := time.Now()

	changed, err := w.svc.RefreshOverdueNow(ctx)
	if err != nil {
		logger.Warn("Worker: Ошибка сохранения после пересчёта", zap.Error(err))
		return
	}

	if changed > 0 {
		logger.Info("Worker: Завершение проверки задач",
			zap.Duration("ms", time.Since(start)),
			zap.Int("overdue", changed))
	}
}
