package services

import (
	"errors"
	"strings"
	"unicode/utf8"

	"community/internal/models"
)

const MaxBioLength = 500

var (
	ErrEmptyName  = errors.New("name is required")
	ErrBioTooLong = errors.New("bio exceeds 500 characters")
)

type ProfileStore interface {
	ProfileByID(id string) (*models.Profile, error)
	UpdateProfile(id string, name string, bio *string) error
}

type ProfileService struct {
	store ProfileStore
}

func NewProfileService(store ProfileStore) *ProfileService {
	return &ProfileService{store: store}
}

func (s *ProfileService) Get(id string) (*models.Profile, error) {
	return s.store.ProfileByID(id)
}

// Update writes name and bio for the viewer's own profile. An empty name
// never reaches the store; an empty bio is persisted as NULL, not "".
// Email is not touched here at all.
func (s *ProfileService) Update(id, name, bio string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyName
	}

	bio = strings.TrimSpace(bio)
	if utf8.RuneCountInString(bio) > MaxBioLength {
		return ErrBioTooLong
	}

	var bioPtr *string
	if bio != "" {
		bioPtr = &bio
	}

	return s.store.UpdateProfile(id, name, bioPtr)
}
