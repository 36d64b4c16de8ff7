package database

import (
	"context"

	"gorm.io/gorm"

	"mart/internal/core/post"
)

const feedOrder = "created_at DESC, seq DESC"

// PostRepositoryDatabase implements the post repository port on gorm.
// All listings share the feed ordering contract: newest first, insertion
// sequence breaking timestamp ties.
type PostRepositoryDatabase struct {
	db *gorm.DB
}

func NewPostRepositoryDatabase(db *gorm.DB) *PostRepositoryDatabase {
	return &PostRepositoryDatabase{db: db}
}

func (repo *PostRepositoryDatabase) Create(ctx context.Context, p *post.Post) (*post.Post, error) {
	if err := repo.db.WithContext(ctx).Create(p).Error; err != nil {
		return nil, err
	}
	return p, nil
}

func (repo *PostRepositoryDatabase) ListByAuthors(ctx context.Context, authorIDs []string, limit, offset int) ([]*post.Post, error) {
	posts := []*post.Post{}
	if len(authorIDs) == 0 {
		return posts, nil
	}
	err := repo.db.WithContext(ctx).
		Preload("User").
		Where("user_id IN ?", authorIDs).
		Order(feedOrder).
		Limit(limit).
		Offset(offset).
		Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}

func (repo *PostRepositoryDatabase) ListByAuthor(ctx context.Context, authorID string, limit, offset int) ([]*post.Post, error) {
	posts := []*post.Post{}
	err := repo.db.WithContext(ctx).
		Preload("User").
		Where("user_id = ?", authorID).
		Order(feedOrder).
		Limit(limit).
		Offset(offset).
		Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}

func (repo *PostRepositoryDatabase) ListAll(ctx context.Context, limit, offset int) ([]*post.Post, error) {
	posts := []*post.Post{}
	err := repo.db.WithContext(ctx).
		Preload("User").
		Order(feedOrder).
		Limit(limit).
		Offset(offset).
		Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}
