package services

import (
	"errors"
	"strings"
	"unicode/utf8"

	"community/internal/models"

	"github.com/google/uuid"
)

// MaxPostLength caps post content; the database column is the final
// authority if this is ever bypassed.
const MaxPostLength = 2000

var (
	ErrEmptyContent   = errors.New("post content is empty")
	ErrContentTooLong = errors.New("post content exceeds 2000 characters")
	ErrNoAuthor       = errors.New("no author for post")
)

type PostStore interface {
	CreatePost(post *models.Post) error
}

type PostService struct {
	store PostStore
	feed  *FeedService
}

func NewPostService(store PostStore, feed *FeedService) *PostService {
	return &PostService{store: store, feed: feed}
}

// Create validates and persists a new post for the author. Whitespace-only
// content never reaches the store. created_at and likes_count default at
// the database.
func (s *PostService) Create(authorID, content string) (*models.Post, error) {
	if authorID == "" {
		return nil, ErrNoAuthor
	}

	content = strings.TrimSpace(content)
	if content == "" {
		return nil, ErrEmptyContent
	}
	if utf8.RuneCountInString(content) > MaxPostLength {
		return nil, ErrContentTooLong
	}

	post := &models.Post{
		ID:       uuid.NewString(),
		AuthorID: authorID,
		Content:  content,
	}
	if err := s.store.CreatePost(post); err != nil {
		return nil, err
	}

	if s.feed != nil {
		s.feed.InvalidateFeed()
	}
	return post, nil
}
