package services

import (
	"errors"
	"testing"
	"time"

	"community/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeFeedStore struct {
	posts      []models.Post
	postsErr   error
	liked      []string
	likedErr   error
	likedCalls int
}

func (f *fakeFeedStore) PostsWithAuthors() ([]models.Post, error) {
	if f.postsErr != nil {
		return nil, f.postsErr
	}
	return f.posts, nil
}

func (f *fakeFeedStore) PostsByAuthor(authorID string) ([]models.Post, error) {
	if f.postsErr != nil {
		return nil, f.postsErr
	}
	var out []models.Post
	for _, p := range f.posts {
		if p.AuthorID == authorID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeFeedStore) LikedPostIDs(userID string) ([]string, error) {
	f.likedCalls++
	if f.likedErr != nil {
		return nil, f.likedErr
	}
	return f.liked, nil
}

func strPtr(s string) *string { return &s }

func feedFixture() []models.Post {
	now := time.Now()
	return []models.Post{
		{
			ID:         "post-2",
			AuthorID:   "user-b",
			Author:     models.Profile{ID: "user-b", Name: "Bob Stone", Bio: strPtr("gopher")},
			Content:    "second post",
			LikesCount: 3,
			CreatedAt:  now,
		},
		{
			ID:        "post-1",
			AuthorID:  "user-a",
			Author:    models.Profile{ID: "user-a", Name: "Ada Lovelace"},
			Content:   "first post",
			CreatedAt: now.Add(-time.Hour),
		},
	}
}

func TestComposeMarksLikedPosts(t *testing.T) {
	st := &fakeFeedStore{posts: feedFixture(), liked: []string{"post-1"}}
	svc := NewFeedService(st, nil)

	items, err := svc.Compose("viewer")
	require.NoError(t, err)
	require.Len(t, items, 2)

	assert.False(t, items[0].IsLiked)
	assert.True(t, items[1].IsLiked)
	assert.Equal(t, "Bob Stone", items[0].AuthorName)
	assert.Equal(t, "gopher", items[0].AuthorBio)
	assert.Equal(t, "", items[1].AuthorBio)
}

func TestComposeWithoutViewerSkipsLikeQuery(t *testing.T) {
	st := &fakeFeedStore{posts: feedFixture(), liked: []string{"post-1", "post-2"}}
	svc := NewFeedService(st, nil)

	items, err := svc.Compose("")
	require.NoError(t, err)

	assert.Equal(t, 0, st.likedCalls)
	for _, item := range items {
		assert.False(t, item.IsLiked)
	}
}

func TestComposeSurfacesPostFetchError(t *testing.T) {
	st := &fakeFeedStore{postsErr: errors.New("connection refused")}
	svc := NewFeedService(st, nil)

	items, err := svc.Compose("viewer")
	assert.Error(t, err)
	assert.Nil(t, items)
}

func TestComposeDegradesOnLikeLookupFailure(t *testing.T) {
	st := &fakeFeedStore{posts: feedFixture(), likedErr: errors.New("timeout")}
	svc := NewFeedService(st, nil)

	items, err := svc.Compose("viewer")
	require.NoError(t, err)
	require.Len(t, items, 2)
	for _, item := range items {
		assert.False(t, item.IsLiked)
	}
}

func TestComposeEmptyFeedIsNotAnError(t *testing.T) {
	st := &fakeFeedStore{}
	svc := NewFeedService(st, nil)

	items, err := svc.Compose("viewer")
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestComposePreservesStoreOrder(t *testing.T) {
	st := &fakeFeedStore{posts: feedFixture()}
	svc := NewFeedService(st, nil)

	items, err := svc.Compose("")
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "post-2", items[0].Post.ID)
	assert.Equal(t, "post-1", items[1].Post.ID)
	assert.True(t, !items[0].Post.CreatedAt.Before(items[1].Post.CreatedAt))
}

func TestComposeForAuthorFilters(t *testing.T) {
	st := &fakeFeedStore{posts: feedFixture(), liked: []string{"post-1"}}
	svc := NewFeedService(st, nil)

	items, err := svc.ComposeForAuthor("viewer", "user-a")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "post-1", items[0].Post.ID)
	assert.True(t, items[0].IsLiked)
}
