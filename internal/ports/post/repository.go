package post

import (
	"context"

	"mart/internal/core/post"
	userPort "mart/internal/ports/user"
)

// PostRepository is the outbound port for storing and listing posts.
// Every listing method returns posts ordered by (created_at DESC, seq
// DESC): newest first, insertion order breaking timestamp ties.
type PostRepository interface {
	Create(ctx context.Context, p *post.Post) (*post.Post, error)
	ListByAuthors(ctx context.Context, authorIDs []string, limit, offset int) ([]*post.Post, error)
	ListByAuthor(ctx context.Context, authorID string, limit, offset int) ([]*post.Post, error)
	ListAll(ctx context.Context, limit, offset int) ([]*post.Post, error)
}

type PostDTO struct {
	ID        string            `json:"id"`
	Body      string            `json:"body"`
	UserID    string            `json:"user_id"`
	Author    *userPort.UserDTO `json:"author,omitempty"`
	CreatedAt string            `json:"created_at"`
}
