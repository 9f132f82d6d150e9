package services

import (
	"errors"
	"sync"

	"community/internal/models"
)

// ErrToggleInFlight is returned when the same viewer toggles the same post
// while an earlier toggle has not finished. The caller drops the request;
// it is not queued.
var ErrToggleInFlight = errors.New("like toggle already in flight")

// LikeStore is the slice of the data layer the toggle needs.
type LikeStore interface {
	PostByID(id string) (*models.Post, error)
	HasLiked(postID, userID string) (bool, error)
	AddLike(postID, userID string) error
	RemoveLike(postID, userID string) error
}

// LikeService flips the like relation for one (post, viewer) pair and
// keeps the denormalized counter in step via the store's transactional
// mutations.
type LikeService struct {
	store LikeStore
	feed  *FeedService // for cache invalidation after a counter move

	mu       sync.Mutex
	inFlight map[string]bool
}

func NewLikeService(store LikeStore, feed *FeedService) *LikeService {
	return &LikeService{
		store:    store,
		feed:     feed,
		inFlight: make(map[string]bool),
	}
}

// Toggle likes the post if the viewer has not liked it, unlikes it
// otherwise. Returns the resulting state and the stored counter value.
// Current state is read from the store, not trusted from the client.
func (s *LikeService) Toggle(postID, userID string) (liked bool, count int, err error) {
	key := userID + ":" + postID
	s.mu.Lock()
	if s.inFlight[key] {
		s.mu.Unlock()
		return false, 0, ErrToggleInFlight
	}
	s.inFlight[key] = true
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		delete(s.inFlight, key)
		s.mu.Unlock()
	}()

	post, err := s.store.PostByID(postID)
	if err != nil {
		return false, 0, err
	}

	already, err := s.store.HasLiked(postID, userID)
	if err != nil {
		return false, 0, err
	}

	if already {
		if err := s.store.RemoveLike(postID, userID); err != nil {
			return true, post.LikesCount, err
		}
		liked = false
	} else {
		if err := s.store.AddLike(postID, userID); err != nil {
			return false, post.LikesCount, err
		}
		liked = true
	}

	// Read the counter back rather than guessing from the old value.
	post, err = s.store.PostByID(postID)
	if err != nil {
		return liked, 0, err
	}

	if s.feed != nil {
		s.feed.InvalidateFeed()
	}
	return liked, post.LikesCount, nil
}
