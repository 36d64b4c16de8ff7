package workers

import (
	"context"
	"time"

	"go.uber.org/zap"

	activityPort "mart/internal/ports/activity"
	userPort "mart/internal/ports/user"
)

// LastSeenWorker drains the pending activity queue and flushes last-seen
// timestamps to the users table in batches. Entries stay queued on flush
// failure and are retried on the next tick.
type LastSeenWorker struct {
	ActivityQueue activityPort.ActivityQueue
	UserRepo      userPort.UserRepository
	BatchSize     int
	Interval      time.Duration
	Logger        *zap.Logger
}

func NewLastSeenWorker(
	queue activityPort.ActivityQueue,
	userRepo userPort.UserRepository,
	batchSize int,
	interval time.Duration,
	logger *zap.Logger,
) *LastSeenWorker {
	return &LastSeenWorker{
		ActivityQueue: queue,
		UserRepo:      userRepo,
		BatchSize:     batchSize,
		Interval:      interval,
		Logger:        logger,
	}
}

func (w *LastSeenWorker) Run(ctx context.Context) {
	w.Logger.Info("LastSeenWorker started")
	ticker := time.NewTicker(w.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.Logger.Info("LastSeenWorker stopped")
			return
		case <-ticker.C:
			w.flushOnce(ctx)
		}
	}
}

func (w *LastSeenWorker) flushOnce(ctx context.Context) {
	batch, err := w.ActivityQueue.PendingBatch(ctx, int64(w.BatchSize))
	if err != nil {
		w.Logger.Error("Error fetching pending activity", zap.Error(err))
		return
	}
	if len(batch) == 0 {
		return
	}

	seen := make(map[string]time.Time, len(batch))
	ids := make([]string, 0, len(batch))
	for _, a := range batch {
		seen[a.UserID] = a.SeenAt
		ids = append(ids, a.UserID)
	}

	if err := w.UserRepo.UpdateLastSeenBatch(ctx, seen); err != nil {
		w.Logger.Warn("Could not flush last-seen batch", zap.Int("count", len(seen)), zap.Error(err))
		return
	}

	if err := w.ActivityQueue.Remove(ctx, ids); err != nil {
		w.Logger.Warn("Could not clear flushed activity entries", zap.Error(err))
		return
	}

	w.Logger.Info("Flushed last-seen batch", zap.Int("count", len(seen)))
}
