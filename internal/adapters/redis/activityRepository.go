package redis

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"

	activityPort "mart/internal/ports/activity"
)

const pendingKey = "lastseen:pending"

// ActivityRepositoryRedis buffers last-seen updates in a ZSET keyed by
// user id with the seen-at unix time as the score. Re-touching a user
// just bumps the score, so the queue holds at most one entry per user.
type ActivityRepositoryRedis struct {
	Client *redis.Client
}

func NewActivityRepositoryRedis(client *redis.Client) *ActivityRepositoryRedis {
	return &ActivityRepositoryRedis{Client: client}
}

func (r *ActivityRepositoryRedis) Touch(ctx context.Context, userID string, seenAt time.Time) error {
	z := &redis.Z{
		Score:  float64(seenAt.Unix()),
		Member: userID,
	}
	return r.Client.ZAdd(ctx, pendingKey, z).Err()
}

func (r *ActivityRepositoryRedis) PendingBatch(ctx context.Context, limit int64) ([]activityPort.Activity, error) {
	members, err := r.Client.ZRangeWithScores(ctx, pendingKey, 0, limit-1).Result()
	if err != nil {
		return nil, err
	}

	batch := make([]activityPort.Activity, 0, len(members))
	for _, m := range members {
		userID, ok := m.Member.(string)
		if !ok {
			continue
		}
		batch = append(batch, activityPort.Activity{
			UserID: userID,
			SeenAt: time.Unix(int64(m.Score), 0),
		})
	}
	return batch, nil
}

func (r *ActivityRepositoryRedis) Remove(ctx context.Context, userIDs []string) error {
	if len(userIDs) == 0 {
		return nil
	}
	members := make([]interface{}, len(userIDs))
	for i, id := range userIDs {
		members[i] = id
	}
	return r.Client.ZRem(ctx, pendingKey, members...).Err()
}
