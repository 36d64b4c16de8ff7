package user

import (
	"context"
	"time"

	"mart/internal/core/user"
)

// UserRepository is the outbound port for storing and loading users.
// Lookup methods return (nil, nil) when no row matches; the services
// translate that into their own not-found errors.
type UserRepository interface {
	Create(ctx context.Context, u *user.User) (*user.User, error)
	FindByID(ctx context.Context, id string) (*user.User, error)
	FindByUsername(ctx context.Context, username string) (*user.User, error)
	FindByUsernameOrEmail(ctx context.Context, username, email string) (*user.User, error)
	FindByIDs(ctx context.Context, ids []string) ([]*user.User, error)
	Exists(ctx context.Context, id string) (bool, error)
	UpdateProfile(ctx context.Context, id, username, aboutMe string) error
	UpdateLastSeenBatch(ctx context.Context, seen map[string]time.Time) error
}

type LoginResponse struct {
	Token     string `json:"token"`
	ExpiresAt int64  `json:"expiresAt"`
}

type UserDTO struct {
	ID         string `json:"id"`
	Username   string `json:"username"`
	Email      string `json:"email,omitempty"`
	AboutMe    string `json:"about_me,omitempty"`
	LastSeenAt string `json:"last_seen_at,omitempty"`
}
