package services

import (
	"log"
	"time"

	"community/internal/models"
	"community/internal/utils"
)

const (
	feedCacheKey = "feed:posts"
	feedCacheTTL = 30 * time.Second
)

// FeedItem is one feed entry: the post, the author subset the cards show,
// and whether the current viewer has liked it.
type FeedItem struct {
	Post       models.Post
	AuthorName string
	AuthorBio  string
	IsLiked    bool
}

// FeedStore is the slice of the data layer the composer reads from.
type FeedStore interface {
	PostsWithAuthors() ([]models.Post, error)
	PostsByAuthor(authorID string) ([]models.Post, error)
	LikedPostIDs(userID string) ([]string, error)
}

type FeedService struct {
	store FeedStore
	cache *utils.Cache // optional; the home feed post list is viewer-independent
}

func NewFeedService(store FeedStore, cache *utils.Cache) *FeedService {
	return &FeedService{store: store, cache: cache}
}

// Compose returns the global feed, newest first, decorated with the
// viewer's like state. viewerID may be empty, in which case nothing is
// marked liked and no like query is issued.
//
// A failed post fetch is an error; callers must render it as one, never as
// an empty feed. A failed like lookup only degrades: the feed still renders
// with everything unliked.
func (s *FeedService) Compose(viewerID string) ([]FeedItem, error) {
	posts, err := s.cachedPosts()
	if err != nil {
		return nil, err
	}
	return s.decorate(posts, viewerID), nil
}

// ComposeForAuthor is Compose restricted to one author's posts, for
// profile pages. Author lists skip the shared cache.
func (s *FeedService) ComposeForAuthor(viewerID, authorID string) ([]FeedItem, error) {
	posts, err := s.store.PostsByAuthor(authorID)
	if err != nil {
		return nil, err
	}
	return s.decorate(posts, viewerID), nil
}

// InvalidateFeed drops the shared post list, called after any mutation
// that changes it (new post, like counter moved).
func (s *FeedService) InvalidateFeed() {
	if s.cache != nil {
		s.cache.Delete(feedCacheKey)
	}
}

func (s *FeedService) cachedPosts() ([]models.Post, error) {
	if s.cache != nil {
		if cached := s.cache.Get(feedCacheKey); cached != nil {
			if posts, ok := cached.([]models.Post); ok {
				return posts, nil
			}
		}
	}

	posts, err := s.store.PostsWithAuthors()
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		s.cache.Set(feedCacheKey, posts, feedCacheTTL)
	}
	return posts, nil
}

// decorate overlays per-viewer like state onto posts. Like state is always
// resolved fresh, never cached, because it differs per viewer.
func (s *FeedService) decorate(posts []models.Post, viewerID string) []FeedItem {
	liked := s.likedSet(viewerID)

	items := make([]FeedItem, len(posts))
	for i, post := range posts {
		_, isLiked := liked[post.ID]
		items[i] = FeedItem{
			Post:       post,
			AuthorName: post.Author.Name,
			AuthorBio:  post.Author.BioText(),
			IsLiked:    isLiked,
		}
	}
	return items
}

// likedSet resolves the ids of posts the viewer has liked into a set for
// O(1) membership checks. An empty viewer id means no query at all.
func (s *FeedService) likedSet(viewerID string) map[string]struct{} {
	if viewerID == "" {
		return nil
	}

	ids, err := s.store.LikedPostIDs(viewerID)
	if err != nil {
		log.Printf("like-state lookup failed for user %s: %v", viewerID, err)
		return nil
	}

	liked := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		liked[id] = struct{}{}
	}
	return liked
}
