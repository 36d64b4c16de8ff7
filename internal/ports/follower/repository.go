package follower

import (
	"context"

	"mart/internal/core/follower"
)

// FollowerRepository is the outbound port for the directed follow
// relation. Create and Delete report whether they changed anything, so
// callers can distinguish a fresh edge from an idempotent repeat without
// a separate read.
type FollowerRepository interface {
	Create(ctx context.Context, f *follower.Follower) (bool, error)
	Delete(ctx context.Context, followerID, followeeID string) (bool, error)
	Exists(ctx context.Context, followerID, followeeID string) (bool, error)
	ListFolloweeIDs(ctx context.Context, followerID string) ([]string, error)
	ListFollowerIDs(ctx context.Context, userID string) ([]string, error)
	CountFollowers(ctx context.Context, userID string) (int64, error)
	CountFollowing(ctx context.Context, userID string) (int64, error)
}

// Outcome says what a follow or unfollow actually did. Repeating an
// already-applied mutation is a success with OutcomeNoChange, not an
// error.
type Outcome string

const (
	OutcomeCreated  Outcome = "created"
	OutcomeRemoved  Outcome = "removed"
	OutcomeNoChange Outcome = "no_change"
)

type FollowResultDTO struct {
	Outcome  Outcome `json:"outcome"`
	Username string  `json:"username"`
}
