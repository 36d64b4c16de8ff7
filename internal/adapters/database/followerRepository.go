package database

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"mart/internal/core/follower"
)

// FollowerRepositoryDatabase implements the follower repository port on
// gorm. Mutations are single statements, so a follow or unfollow either
// fully commits or fully fails.
type FollowerRepositoryDatabase struct {
	db *gorm.DB
}

func NewFollowerRepositoryDatabase(db *gorm.DB) *FollowerRepositoryDatabase {
	return &FollowerRepositoryDatabase{db: db}
}

// Create inserts the edge unless it already exists. The conflict clause
// makes racing duplicate follows collapse into one edge; the returned
// flag reports whether this call inserted it.
func (repo *FollowerRepositoryDatabase) Create(ctx context.Context, f *follower.Follower) (bool, error) {
	result := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "follower_id"}},
			DoNothing: true,
		}).
		Create(f)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (repo *FollowerRepositoryDatabase) Delete(ctx context.Context, followerID, followeeID string) (bool, error) {
	result := repo.db.WithContext(ctx).
		Where("follower_id = ? AND user_id = ?", followerID, followeeID).
		Delete(&follower.Follower{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (repo *FollowerRepositoryDatabase) Exists(ctx context.Context, followerID, followeeID string) (bool, error) {
	var count int64
	err := repo.db.WithContext(ctx).Model(&follower.Follower{}).
		Where("follower_id = ? AND user_id = ?", followerID, followeeID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (repo *FollowerRepositoryDatabase) ListFolloweeIDs(ctx context.Context, followerID string) ([]string, error) {
	ids := []string{}
	err := repo.db.WithContext(ctx).Model(&follower.Follower{}).
		Where("follower_id = ?", followerID).
		Pluck("user_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

func (repo *FollowerRepositoryDatabase) ListFollowerIDs(ctx context.Context, userID string) ([]string, error) {
	ids := []string{}
	err := repo.db.WithContext(ctx).Model(&follower.Follower{}).
		Where("user_id = ?", userID).
		Pluck("follower_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

func (repo *FollowerRepositoryDatabase) CountFollowers(ctx context.Context, userID string) (int64, error) {
	var count int64
	err := repo.db.WithContext(ctx).Model(&follower.Follower{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	return count, err
}

func (repo *FollowerRepositoryDatabase) CountFollowing(ctx context.Context, userID string) (int64, error) {
	var count int64
	err := repo.db.WithContext(ctx).Model(&follower.Follower{}).
		Where("follower_id = ?", userID).
		Count(&count).Error
	return count, err
}
