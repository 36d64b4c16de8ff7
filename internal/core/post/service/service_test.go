package postapp

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gofrs/uuid"

	postEntity "mart/internal/core/post"
	postPort "mart/internal/ports/post"
	userPort "mart/internal/ports/user"
)

type stubPostRepository struct {
	postPort.PostRepository
	created []*postEntity.Post
	nextSeq uint64
}

func (s *stubPostRepository) Create(ctx context.Context, p *postEntity.Post) (*postEntity.Post, error) {
	s.nextSeq++
	p.Seq = s.nextSeq
	p.CreatedAt = time.Now()
	s.created = append(s.created, p)
	return p, nil
}

type stubUserRepository struct {
	userPort.UserRepository
	known map[string]bool
}

func (s *stubUserRepository) Exists(ctx context.Context, id string) (bool, error) {
	return s.known[id], nil
}

func TestCreatePostRejectsEmptyBody(t *testing.T) {
	authorID := uuid.Must(uuid.NewV4()).String()
	svc := NewPostService(&stubPostRepository{}, &stubUserRepository{known: map[string]bool{authorID: true}})

	for _, body := range []string{"", "   ", "\n\t  "} {
		if _, err := svc.CreatePost(context.Background(), body, authorID); !errors.Is(err, ErrEmptyBody) {
			t.Fatalf("body %q: expected ErrEmptyBody, got %v", body, err)
		}
	}
}

func TestCreatePostUnknownAuthor(t *testing.T) {
	svc := NewPostService(&stubPostRepository{}, &stubUserRepository{known: map[string]bool{}})

	ghost := uuid.Must(uuid.NewV4()).String()
	if _, err := svc.CreatePost(context.Background(), "hello", ghost); !errors.Is(err, ErrAuthorNotFound) {
		t.Fatalf("expected ErrAuthorNotFound, got %v", err)
	}
}

func TestCreatePostInvalidAuthorID(t *testing.T) {
	svc := NewPostService(&stubPostRepository{}, &stubUserRepository{known: map[string]bool{}})

	if _, err := svc.CreatePost(context.Background(), "hello", "not-a-uuid"); !errors.Is(err, ErrAuthorNotFound) {
		t.Fatalf("expected ErrAuthorNotFound for a malformed id, got %v", err)
	}
}

func TestCreatePostTrimsAndStores(t *testing.T) {
	authorID := uuid.Must(uuid.NewV4()).String()
	repo := &stubPostRepository{}
	svc := NewPostService(repo, &stubUserRepository{known: map[string]bool{authorID: true}})

	dto, err := svc.CreatePost(context.Background(), "  hello world  \n", authorID)
	if err != nil {
		t.Fatalf("CreatePost returned error: %v", err)
	}
	if dto.Body != "hello world" {
		t.Fatalf("expected trimmed body, got %q", dto.Body)
	}
	if dto.UserID != authorID {
		t.Fatalf("expected author %s, got %s", authorID, dto.UserID)
	}
	if len(repo.created) != 1 {
		t.Fatalf("expected one stored post, got %d", len(repo.created))
	}
	if dto.CreatedAt == "" {
		t.Fatal("expected a store-assigned creation timestamp")
	}
}
