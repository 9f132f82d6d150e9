package store

import (
	"community/internal/models"
)

func (s *Store) CreateProfile(profile *models.Profile) error {
	return s.db.Create(profile).Error
}

func (s *Store) ProfileByID(id string) (*models.Profile, error) {
	var profile models.Profile
	if err := s.db.First(&profile, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

func (s *Store) ProfileByEmail(email string) (*models.Profile, error) {
	var profile models.Profile
	if err := s.db.Where("email = ?", email).First(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

// UpdateProfile writes name and bio for one profile. Email is deliberately
// not part of the update set. A nil bio clears the column to NULL.
func (s *Store) UpdateProfile(id string, name string, bio *string) error {
	return s.db.Model(&models.Profile{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"name": name,
			"bio":  bio,
		}).Error
}
