package database

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"mart/internal/core/user"
)

// UserRepositoryDatabase implements the user repository port on gorm.
type UserRepositoryDatabase struct {
	db *gorm.DB
}

func NewUserRepositoryDatabase(db *gorm.DB) *UserRepositoryDatabase {
	return &UserRepositoryDatabase{db: db}
}

func (repo *UserRepositoryDatabase) Create(ctx context.Context, u *user.User) (*user.User, error) {
	if err := repo.db.WithContext(ctx).Create(u).Error; err != nil {
		return nil, err
	}
	return u, nil
}

func (repo *UserRepositoryDatabase) FindByID(ctx context.Context, id string) (*user.User, error) {
	var u user.User
	err := repo.db.WithContext(ctx).Where("id = ?", id).First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (repo *UserRepositoryDatabase) FindByUsername(ctx context.Context, username string) (*user.User, error) {
	var u user.User
	err := repo.db.WithContext(ctx).Where("username = ?", username).First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (repo *UserRepositoryDatabase) FindByUsernameOrEmail(ctx context.Context, username, email string) (*user.User, error) {
	var u user.User
	err := repo.db.WithContext(ctx).Where("username = ? OR email = ?", username, email).First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (repo *UserRepositoryDatabase) FindByIDs(ctx context.Context, ids []string) ([]*user.User, error) {
	users := []*user.User{}
	if len(ids) == 0 {
		return users, nil
	}
	if err := repo.db.WithContext(ctx).Where("id IN ?", ids).Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (repo *UserRepositoryDatabase) Exists(ctx context.Context, id string) (bool, error) {
	var count int64
	if err := repo.db.WithContext(ctx).Model(&user.User{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (repo *UserRepositoryDatabase) UpdateProfile(ctx context.Context, id, username, aboutMe string) error {
	return repo.db.WithContext(ctx).Model(&user.User{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"username": username, "about_me": aboutMe}).Error
}

// UpdateLastSeenBatch applies a drained batch of last-seen timestamps in
// one transaction.
func (repo *UserRepositoryDatabase) UpdateLastSeenBatch(ctx context.Context, seen map[string]time.Time) error {
	if len(seen) == 0 {
		return nil
	}
	return repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for id, at := range seen {
			if err := tx.Model(&user.User{}).
				Where("id = ?", id).
				Update("last_seen_at", at).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
