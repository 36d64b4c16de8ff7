package post

import (
	"time"

	"github.com/gofrs/uuid"
	"mart/internal/core/user"
)

// Post is immutable after creation. Seq is assigned by the database on
// insert and breaks ties between posts that share a creation timestamp,
// so feed ordering is a deterministic total order.
type Post struct {
	ID        uuid.UUID  `gorm:"primary_key;type:char(36)"`
	Seq       uint64     `gorm:"autoIncrement;uniqueIndex"`
	Body      string     `gorm:"type:text;not null"`
	UserID    uuid.UUID  `gorm:"type:char(36);not null;index"`
	User      user.User  `gorm:"foreignkey:UserID"`
	CreatedAt time.Time  `gorm:"autoCreateTime;index"`
	DeletedAt *time.Time `gorm:"index"`
}
