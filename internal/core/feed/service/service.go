package feedapp

import (
	"context"
	"errors"
	"fmt"
	"time"

	postEntity "mart/internal/core/post"
	followerPort "mart/internal/ports/follower"
	postPort "mart/internal/ports/post"
	userPort "mart/internal/ports/user"
)

var ErrUserNotFound = errors.New("user not found")

const (
	defaultLimit = 20
	maxLimit     = 100
)

// FeedService computes feeds at read time: the visible author set is
// recomputed on every call, so an unfollow hides the followee's whole
// history immediately, posts made while followed included.
type FeedService struct {
	PostRepository     postPort.PostRepository
	FollowerRepository followerPort.FollowerRepository
	UserRepository     userPort.UserRepository
}

func NewFeedService(postRepo postPort.PostRepository, followerRepo followerPort.FollowerRepository, userRepo userPort.UserRepository) *FeedService {
	return &FeedService{
		PostRepository:     postRepo,
		FollowerRepository: followerRepo,
		UserRepository:     userRepo,
	}
}

// FeedFor returns the viewer's timeline: own posts plus posts by every
// followed user, newest first. Paginating past the end yields an empty
// page, not an error.
func (s *FeedService) FeedFor(ctx context.Context, userID string, limit, offset int) ([]*postPort.PostDTO, error) {
	limit, offset = clampPage(limit, offset)

	exists, err := s.UserRepository.Exists(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("checking viewer: %w", err)
	}
	if !exists {
		return nil, ErrUserNotFound
	}

	followees, err := s.FollowerRepository.ListFolloweeIDs(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("listing followees: %w", err)
	}

	// The viewer always sees their own posts, even with zero follows.
	authors := append(followees, userID)

	posts, err := s.PostRepository.ListByAuthors(ctx, authors, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("listing feed posts: %w", err)
	}
	return toPostDTOs(posts), nil
}

// Explore returns the global timeline across all authors.
func (s *FeedService) Explore(ctx context.Context, limit, offset int) ([]*postPort.PostDTO, error) {
	limit, offset = clampPage(limit, offset)

	posts, err := s.PostRepository.ListAll(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("listing posts: %w", err)
	}
	return toPostDTOs(posts), nil
}

// AuthorFeed returns one user's posts for their profile page.
func (s *FeedService) AuthorFeed(ctx context.Context, username string, limit, offset int) ([]*postPort.PostDTO, error) {
	limit, offset = clampPage(limit, offset)

	author, err := s.UserRepository.FindByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("looking up user: %w", err)
	}
	if author == nil {
		return nil, ErrUserNotFound
	}

	posts, err := s.PostRepository.ListByAuthor(ctx, author.ID.String(), limit, offset)
	if err != nil {
		return nil, fmt.Errorf("listing posts: %w", err)
	}
	return toPostDTOs(posts), nil
}

func clampPage(limit, offset int) (int, int) {
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}

func toPostDTOs(posts []*postEntity.Post) []*postPort.PostDTO {
	dtos := make([]*postPort.PostDTO, 0, len(posts))
	for _, p := range posts {
		dto := &postPort.PostDTO{
			ID:        p.ID.String(),
			Body:      p.Body,
			UserID:    p.UserID.String(),
			CreatedAt: p.CreatedAt.UTC().Format(time.RFC3339),
		}
		if p.User.Username != "" {
			dto.Author = &userPort.UserDTO{
				ID:       p.User.ID.String(),
				Username: p.User.Username,
			}
		}
		dtos = append(dtos, dto)
	}
	return dtos
}
