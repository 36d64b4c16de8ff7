package follower

import (
	"time"

	"github.com/gofrs/uuid"
	"mart/internal/core/user"
)

// Follower is one directed edge: FollowerID follows UserID. The composite
// unique index keeps the relation duplicate-free at the database level.
type Follower struct {
	ID         uuid.UUID `gorm:"primary_key;type:char(36)"`
	UserID     uuid.UUID `gorm:"type:char(36);not null;uniqueIndex:uniq_follower_user"`
	User       user.User `gorm:"foreignkey:UserID"`
	FollowerID uuid.UUID `gorm:"type:char(36);not null;uniqueIndex:uniq_follower_user"`
	Follower   user.User `gorm:"foreignkey:FollowerID"`
	CreatedAt  time.Time `gorm:"autoCreateTime"`
}
