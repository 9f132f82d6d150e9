// Package store is the data access layer over the three tables:
// profiles, posts and post_likes. Every method returns typed rows or an
// error; nothing dynamic crosses this boundary.
package store

import (
	"gorm.io/gorm"
)

type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}
