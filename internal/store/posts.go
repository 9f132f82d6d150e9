package store

import (
	"community/internal/models"
)

func (s *Store) CreatePost(post *models.Post) error {
	return s.db.Create(post).Error
}

func (s *Store) PostByID(id string) (*models.Post, error) {
	var post models.Post
	if err := s.db.First(&post, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

// PostsWithAuthors returns every post, newest first, with its author row
// preloaded for the {name, bio} subset the feed renders.
func (s *Store) PostsWithAuthors() ([]models.Post, error) {
	var posts []models.Post
	err := s.db.Preload("Author").
		Order("created_at DESC").
		Find(&posts).Error
	return posts, err
}

// PostsByAuthor is PostsWithAuthors filtered to one author, for profile pages.
func (s *Store) PostsByAuthor(authorID string) ([]models.Post, error) {
	var posts []models.Post
	err := s.db.Preload("Author").
		Where("author_id = ?", authorID).
		Order("created_at DESC").
		Find(&posts).Error
	return posts, err
}
