package followerapp

import (
	"context"
	"errors"
	"testing"

	"github.com/gofrs/uuid"

	followerEntity "mart/internal/core/follower"
	userEntity "mart/internal/core/user"
	followerPort "mart/internal/ports/follower"
	userPort "mart/internal/ports/user"
)

type stubUserRepository struct {
	userPort.UserRepository
	users []*userEntity.User
}

func (s *stubUserRepository) FindByUsername(ctx context.Context, username string) (*userEntity.User, error) {
	for _, u := range s.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, nil
}

func (s *stubUserRepository) Exists(ctx context.Context, id string) (bool, error) {
	for _, u := range s.users {
		if u.ID.String() == id {
			return true, nil
		}
	}
	return false, nil
}

func (s *stubUserRepository) FindByIDs(ctx context.Context, ids []string) ([]*userEntity.User, error) {
	var out []*userEntity.User
	for _, id := range ids {
		for _, u := range s.users {
			if u.ID.String() == id {
				out = append(out, u)
			}
		}
	}
	return out, nil
}

type edge struct{ follower, followee string }

type stubFollowerRepository struct {
	edges map[edge]bool
}

func newStubFollowerRepository() *stubFollowerRepository {
	return &stubFollowerRepository{edges: map[edge]bool{}}
}

func (s *stubFollowerRepository) Create(ctx context.Context, f *followerEntity.Follower) (bool, error) {
	e := edge{follower: f.FollowerID.String(), followee: f.UserID.String()}
	if s.edges[e] {
		return false, nil
	}
	s.edges[e] = true
	return true, nil
}

func (s *stubFollowerRepository) Delete(ctx context.Context, followerID, followeeID string) (bool, error) {
	e := edge{follower: followerID, followee: followeeID}
	if !s.edges[e] {
		return false, nil
	}
	delete(s.edges, e)
	return true, nil
}

func (s *stubFollowerRepository) Exists(ctx context.Context, followerID, followeeID string) (bool, error) {
	return s.edges[edge{follower: followerID, followee: followeeID}], nil
}

func (s *stubFollowerRepository) ListFolloweeIDs(ctx context.Context, followerID string) ([]string, error) {
	ids := []string{}
	for e := range s.edges {
		if e.follower == followerID {
			ids = append(ids, e.followee)
		}
	}
	return ids, nil
}

func (s *stubFollowerRepository) ListFollowerIDs(ctx context.Context, userID string) ([]string, error) {
	ids := []string{}
	for e := range s.edges {
		if e.followee == userID {
			ids = append(ids, e.follower)
		}
	}
	return ids, nil
}

func (s *stubFollowerRepository) CountFollowers(ctx context.Context, userID string) (int64, error) {
	ids, _ := s.ListFollowerIDs(ctx, userID)
	return int64(len(ids)), nil
}

func (s *stubFollowerRepository) CountFollowing(ctx context.Context, userID string) (int64, error) {
	ids, _ := s.ListFolloweeIDs(ctx, userID)
	return int64(len(ids)), nil
}

func testUser(username string) *userEntity.User {
	return &userEntity.User{ID: uuid.Must(uuid.NewV4()), Username: username}
}

func newTestService(users ...*userEntity.User) (*FollowerService, *stubFollowerRepository) {
	repo := newStubFollowerRepository()
	svc := NewFollowerService(repo, &stubUserRepository{users: users})
	return svc, repo
}

func TestFollowCreatesEdge(t *testing.T) {
	alice, bob := testUser("alice"), testUser("bob")
	svc, repo := newTestService(alice, bob)

	res, err := svc.Follow(context.Background(), alice.ID.String(), "bob")
	if err != nil {
		t.Fatalf("Follow returned error: %v", err)
	}
	if res.Outcome != followerPort.OutcomeCreated {
		t.Fatalf("expected outcome %q, got %q", followerPort.OutcomeCreated, res.Outcome)
	}

	following, err := svc.IsFollowing(context.Background(), alice.ID.String(), bob.ID.String())
	if err != nil || !following {
		t.Fatalf("expected alice to follow bob, following=%v err=%v", following, err)
	}
	if len(repo.edges) != 1 {
		t.Fatalf("expected exactly one edge, got %d", len(repo.edges))
	}
}

func TestFollowTwiceIsNoChange(t *testing.T) {
	alice, bob := testUser("alice"), testUser("bob")
	svc, repo := newTestService(alice, bob)

	if _, err := svc.Follow(context.Background(), alice.ID.String(), "bob"); err != nil {
		t.Fatalf("first Follow returned error: %v", err)
	}
	res, err := svc.Follow(context.Background(), alice.ID.String(), "bob")
	if err != nil {
		t.Fatalf("second Follow returned error: %v", err)
	}
	if res.Outcome != followerPort.OutcomeNoChange {
		t.Fatalf("expected outcome %q, got %q", followerPort.OutcomeNoChange, res.Outcome)
	}
	if len(repo.edges) != 1 {
		t.Fatalf("expected exactly one edge after repeat follow, got %d", len(repo.edges))
	}
}

func TestFollowSelfRejected(t *testing.T) {
	alice := testUser("alice")
	svc, repo := newTestService(alice)

	if _, err := svc.Follow(context.Background(), alice.ID.String(), "alice"); !errors.Is(err, ErrSelfFollow) {
		t.Fatalf("expected ErrSelfFollow, got %v", err)
	}
	if len(repo.edges) != 0 {
		t.Fatalf("self-follow must not mutate the graph, got %d edges", len(repo.edges))
	}
}

func TestUnfollowSelfRejected(t *testing.T) {
	alice := testUser("alice")
	svc, _ := newTestService(alice)

	if _, err := svc.Unfollow(context.Background(), alice.ID.String(), "alice"); !errors.Is(err, ErrSelfFollow) {
		t.Fatalf("expected ErrSelfFollow, got %v", err)
	}
}

func TestFollowUnknownTarget(t *testing.T) {
	alice := testUser("alice")
	svc, _ := newTestService(alice)

	if _, err := svc.Follow(context.Background(), alice.ID.String(), "nobody"); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestFollowUnknownFollower(t *testing.T) {
	bob := testUser("bob")
	svc, _ := newTestService(bob)

	ghost := uuid.Must(uuid.NewV4()).String()
	if _, err := svc.Follow(context.Background(), ghost, "bob"); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUnfollowRemovesEdgeThenNoChange(t *testing.T) {
	alice, bob := testUser("alice"), testUser("bob")
	svc, _ := newTestService(alice, bob)

	if _, err := svc.Follow(context.Background(), alice.ID.String(), "bob"); err != nil {
		t.Fatalf("Follow returned error: %v", err)
	}

	res, err := svc.Unfollow(context.Background(), alice.ID.String(), "bob")
	if err != nil {
		t.Fatalf("Unfollow returned error: %v", err)
	}
	if res.Outcome != followerPort.OutcomeRemoved {
		t.Fatalf("expected outcome %q, got %q", followerPort.OutcomeRemoved, res.Outcome)
	}

	res, err = svc.Unfollow(context.Background(), alice.ID.String(), "bob")
	if err != nil {
		t.Fatalf("repeat Unfollow returned error: %v", err)
	}
	if res.Outcome != followerPort.OutcomeNoChange {
		t.Fatalf("expected outcome %q, got %q", followerPort.OutcomeNoChange, res.Outcome)
	}
}

func TestFollowedSetNeverContainsSelf(t *testing.T) {
	alice, bob := testUser("alice"), testUser("bob")
	svc, _ := newTestService(alice, bob)

	if _, err := svc.Follow(context.Background(), alice.ID.String(), "bob"); err != nil {
		t.Fatalf("Follow returned error: %v", err)
	}

	set, err := svc.FollowedSet(context.Background(), alice.ID.String())
	if err != nil {
		t.Fatalf("FollowedSet returned error: %v", err)
	}
	for _, id := range set {
		if id == alice.ID.String() {
			t.Fatal("followed set must never contain the user itself")
		}
	}
	if len(set) != 1 || set[0] != bob.ID.String() {
		t.Fatalf("expected followed set [bob], got %v", set)
	}
}

func TestFollowingListsTargets(t *testing.T) {
	alice, bob := testUser("alice"), testUser("bob")
	svc, _ := newTestService(alice, bob)

	if _, err := svc.Follow(context.Background(), alice.ID.String(), "bob"); err != nil {
		t.Fatalf("Follow returned error: %v", err)
	}

	following, err := svc.Following(context.Background(), alice.ID.String())
	if err != nil {
		t.Fatalf("Following returned error: %v", err)
	}
	if len(following) != 1 || following[0].Username != "bob" {
		t.Fatalf("expected following [bob], got %+v", following)
	}

	followers, err := svc.Followers(context.Background(), bob.ID.String())
	if err != nil {
		t.Fatalf("Followers returned error: %v", err)
	}
	if len(followers) != 1 || followers[0].Username != "alice" {
		t.Fatalf("expected followers [alice], got %+v", followers)
	}
}
