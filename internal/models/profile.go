package models

import (
	"time"
)

type Profile struct {
	ID           string    `gorm:"type:uuid;primaryKey" json:"id"`
	Name         string    `gorm:"not null" json:"name"`
	Email        string    `gorm:"uniqueIndex;not null" json:"email"`
	Bio          *string   `gorm:"size:500" json:"bio"` // NULL when the user has no bio
	PasswordHash string    `gorm:"not null" json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// BioText returns the bio or "" when unset, for rendering.
func (p *Profile) BioText() string {
	if p.Bio == nil {
		return ""
	}
	return *p.Bio
}
