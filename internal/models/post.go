package models

import (
	"time"
)

type Post struct {
	ID         string    `gorm:"type:uuid;primaryKey" json:"id"`
	AuthorID   string    `gorm:"type:uuid;not null;index" json:"author_id"`
	Author     Profile   `gorm:"foreignKey:AuthorID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"author"`
	Content    string    `gorm:"type:text;not null" json:"content"`
	LikesCount int       `gorm:"not null;default:0" json:"likes_count"` // denormalized, kept in step with post_likes
	CreatedAt  time.Time `json:"created_at"`
}
