package postapp

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gofrs/uuid"

	postEntity "mart/internal/core/post"
	postPort "mart/internal/ports/post"
	userPort "mart/internal/ports/user"
)

var (
	ErrEmptyBody      = errors.New("post body must not be empty")
	ErrAuthorNotFound = errors.New("author not found")
)

// PostService creates posts. Posts are immutable after creation; the
// store assigns the timestamp and the insertion sequence.
type PostService struct {
	PostRepository postPort.PostRepository
	UserRepository userPort.UserRepository
}

func NewPostService(postRepo postPort.PostRepository, userRepo userPort.UserRepository) *PostService {
	return &PostService{
		PostRepository: postRepo,
		UserRepository: userRepo,
	}
}

// CreatePost validates and stores a new post for the given author.
func (s *PostService) CreatePost(ctx context.Context, body, userID string) (*postPort.PostDTO, error) {
	body = strings.TrimSpace(body)
	if body == "" {
		return nil, ErrEmptyBody
	}

	uid, err := uuid.FromString(userID)
	if err != nil {
		return nil, ErrAuthorNotFound
	}

	exists, err := s.UserRepository.Exists(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("checking author: %w", err)
	}
	if !exists {
		return nil, ErrAuthorNotFound
	}

	p := &postEntity.Post{
		ID:     uuid.Must(uuid.NewV4()),
		Body:   body,
		UserID: uid,
	}

	created, err := s.PostRepository.Create(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("creating post: %w", err)
	}

	return &postPort.PostDTO{
		ID:        created.ID.String(),
		Body:      created.Body,
		UserID:    created.UserID.String(),
		CreatedAt: created.CreatedAt.UTC().Format(time.RFC3339),
	}, nil
}
