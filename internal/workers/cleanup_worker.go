package workers

import (
	"context"
	"sync/atomic"
	"time"

	"foodboard_backend/internal/datefmt"
	"foodboard_backend/internal/logger"
	"foodboard_backend/internal/repositories"
)

// CleanupWorker - фоновая очистка протухших постов.
// Пост живет ограниченное время (по умолчанию 14 дней), после чего
// молча удаляется. Возраст считается по строковому createdAt,
// поэтому каждая запись проходит через datefmt.Parse.
type CleanupWorker struct {
	postRepo repositories.PostRepository
	lifetime time.Duration
	interval time.Duration

	// 1 пока тик выполняется; новый тик поверх незавершенного пропускается
	running int32

	// подменяется в тестах
	now func() time.Time
}

func NewCleanupWorker(postRepo repositories.PostRepository, lifetime, interval time.Duration) *CleanupWorker {
	return &CleanupWorker{
		postRepo: postRepo,
		lifetime: lifetime,
		interval: interval,
		now:      time.Now,
	}
}

// Start запускает фоновую очистку
func (w *CleanupWorker) Start(ctx context.Context) {
	go w.sweepLoop(ctx)
}

func (w *CleanupWorker) sweepLoop(ctx context.Context) {
	logger.Info("cleanup worker started",
		"lifetime", w.lifetime.String(), "interval", w.interval.String())

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("cleanup worker stopped")
			return
		case <-ticker.C:
			if !atomic.CompareAndSwapInt32(&w.running, 0, 1) {
				logger.Warn("cleanup tick skipped: previous sweep still running")
				continue
			}

			deleted, err := w.Sweep()
			atomic.StoreInt32(&w.running, 0)

			if err != nil {
				// Ошибка тика логируется, следующий тик пойдет по расписанию
				logger.WorkerLog("cleanup", "sweep", err)
				continue
			}
			if deleted > 0 {
				logger.Info("expired posts deleted", "count", deleted)
			}
		}
	}
}

// Sweep выполняет один проход очистки и возвращает число удаленных постов.
func (w *CleanupWorker) Sweep() (int64, error) {
	cutoff := w.now().Add(-w.lifetime)

	records, err := w.postRepo.FindAllForSweep()
	if err != nil {
		return 0, err
	}

	var expired []string
	for _, rec := range records {
		createdAt, err := datefmt.Parse(rec.CreatedAt)
		if err != nil {
			// Нечитаемая дата не означает "бесконечно старый":
			// пост пропускается и остается жить
			logger.Warn("skipping post with unparseable createdAt",
				"post_id", rec.ID, "created_at", rec.CreatedAt, "error", err)
			continue
		}

		if createdAt.Before(cutoff) {
			expired = append(expired, rec.ID)
		}
	}

	if len(expired) == 0 {
		return 0, nil
	}

	return w.postRepo.DeleteByIDs(expired)
}
