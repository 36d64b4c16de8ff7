package activity

import (
	"context"
	"time"
)

// ActivityQueue buffers last-seen updates so request handling never
// writes to the users table directly. A background worker drains the
// queue in batches.
type ActivityQueue interface {
	Touch(ctx context.Context, userID string, seenAt time.Time) error
	PendingBatch(ctx context.Context, limit int64) ([]Activity, error)
	Remove(ctx context.Context, userIDs []string) error
}

type Activity struct {
	UserID string
	SeenAt time.Time
}
