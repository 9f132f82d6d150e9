package models

import (
	"time"
)

// PostLike records that a user liked a post. Existence-only: at most one
// row per (post, user) pair, enforced by the composite unique index.
type PostLike struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	PostID    string    `gorm:"type:uuid;not null;index;uniqueIndex:idx_post_user" json:"post_id"`
	UserID    string    `gorm:"type:uuid;not null;index;uniqueIndex:idx_post_user" json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}
