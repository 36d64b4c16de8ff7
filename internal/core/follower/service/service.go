package followerapp

import (
	"context"
	"errors"
	"fmt"

	"github.com/gofrs/uuid"

	followerEntity "mart/internal/core/follower"
	followerPort "mart/internal/ports/follower"
	userPort "mart/internal/ports/user"
)

var (
	ErrSelfFollow   = errors.New("cannot follow or unfollow yourself")
	ErrUserNotFound = errors.New("user not found")
)

// FollowerService maintains the directed follow relation. Follow and
// unfollow are idempotent: repeating either reports OutcomeNoChange
// instead of failing. Self-reference is the only hard error.
type FollowerService struct {
	FollowerRepository followerPort.FollowerRepository
	UserRepository     userPort.UserRepository
}

func NewFollowerService(followerRepo followerPort.FollowerRepository, userRepo userPort.UserRepository) *FollowerService {
	return &FollowerService{
		FollowerRepository: followerRepo,
		UserRepository:     userRepo,
	}
}

// Follow adds an edge from followerID to the user with targetUsername.
func (s *FollowerService) Follow(ctx context.Context, followerID, targetUsername string) (*followerPort.FollowResultDTO, error) {
	target, fid, err := s.resolve(ctx, followerID, targetUsername)
	if err != nil {
		return nil, err
	}

	f := &followerEntity.Follower{
		ID:         uuid.Must(uuid.NewV4()),
		UserID:     target,
		FollowerID: fid,
	}

	created, err := s.FollowerRepository.Create(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("creating follow edge: %w", err)
	}

	outcome := followerPort.OutcomeNoChange
	if created {
		outcome = followerPort.OutcomeCreated
	}
	return &followerPort.FollowResultDTO{Outcome: outcome, Username: targetUsername}, nil
}

// Unfollow removes the edge from followerID to the user with
// targetUsername. A missing edge is OutcomeNoChange.
func (s *FollowerService) Unfollow(ctx context.Context, followerID, targetUsername string) (*followerPort.FollowResultDTO, error) {
	target, _, err := s.resolve(ctx, followerID, targetUsername)
	if err != nil {
		return nil, err
	}

	removed, err := s.FollowerRepository.Delete(ctx, followerID, target.String())
	if err != nil {
		return nil, fmt.Errorf("deleting follow edge: %w", err)
	}

	outcome := followerPort.OutcomeNoChange
	if removed {
		outcome = followerPort.OutcomeRemoved
	}
	return &followerPort.FollowResultDTO{Outcome: outcome, Username: targetUsername}, nil
}

// resolve looks up the target by handle and verifies both sides exist.
func (s *FollowerService) resolve(ctx context.Context, followerID, targetUsername string) (uuid.UUID, uuid.UUID, error) {
	target, err := s.UserRepository.FindByUsername(ctx, targetUsername)
	if err != nil {
		return uuid.Nil, uuid.Nil, fmt.Errorf("looking up user: %w", err)
	}
	if target == nil {
		return uuid.Nil, uuid.Nil, ErrUserNotFound
	}

	fid, err := uuid.FromString(followerID)
	if err != nil {
		return uuid.Nil, uuid.Nil, ErrUserNotFound
	}
	if fid == target.ID {
		return uuid.Nil, uuid.Nil, ErrSelfFollow
	}

	exists, err := s.UserRepository.Exists(ctx, followerID)
	if err != nil {
		return uuid.Nil, uuid.Nil, fmt.Errorf("checking follower: %w", err)
	}
	if !exists {
		return uuid.Nil, uuid.Nil, ErrUserNotFound
	}

	return target.ID, fid, nil
}

// FollowedSet returns the ids of everyone userID follows. The user
// itself is never a member.
func (s *FollowerService) FollowedSet(ctx context.Context, userID string) ([]string, error) {
	return s.FollowerRepository.ListFolloweeIDs(ctx, userID)
}

func (s *FollowerService) IsFollowing(ctx context.Context, followerID, followeeID string) (bool, error) {
	return s.FollowerRepository.Exists(ctx, followerID, followeeID)
}

// Followers lists the users following userID.
func (s *FollowerService) Followers(ctx context.Context, userID string) ([]*userPort.UserDTO, error) {
	ids, err := s.FollowerRepository.ListFollowerIDs(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.usersByIDs(ctx, ids)
}

// Following lists the users userID follows.
func (s *FollowerService) Following(ctx context.Context, userID string) ([]*userPort.UserDTO, error) {
	ids, err := s.FollowerRepository.ListFolloweeIDs(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.usersByIDs(ctx, ids)
}

func (s *FollowerService) usersByIDs(ctx context.Context, ids []string) ([]*userPort.UserDTO, error) {
	dtos := []*userPort.UserDTO{}
	if len(ids) == 0 {
		return dtos, nil
	}

	users, err := s.UserRepository.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	for _, u := range users {
		dtos = append(dtos, &userPort.UserDTO{
			ID:       u.ID.String(),
			Username: u.Username,
			AboutMe:  u.AboutMe,
		})
	}
	return dtos, nil
}
