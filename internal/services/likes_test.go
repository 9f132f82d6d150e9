package services

import (
	"errors"
	"sync"
	"testing"

	"community/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gorm.io/gorm"
)

// fakeLikeStore mutates the counter alongside the like set, like the real
// transactional store does, and can be made to fail or block on demand.
type fakeLikeStore struct {
	mu        sync.Mutex
	posts     map[string]*models.Post
	likes     map[string]bool // "post:user"
	addErr    error
	removeErr error

	entered chan struct{} // closed-ish signal: HasLiked reached
	release chan struct{} // HasLiked blocks until this is closed
}

func newFakeLikeStore() *fakeLikeStore {
	return &fakeLikeStore{
		posts: map[string]*models.Post{
			"post-1": {ID: "post-1", AuthorID: "user-a", Content: "hello"},
		},
		likes: make(map[string]bool),
	}
}

func (f *fakeLikeStore) PostByID(id string) (*models.Post, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	post, ok := f.posts[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *post
	return &copied, nil
}

func (f *fakeLikeStore) HasLiked(postID, userID string) (bool, error) {
	if f.entered != nil {
		f.entered <- struct{}{}
		<-f.release
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.likes[postID+":"+userID], nil
}

func (f *fakeLikeStore) AddLike(postID, userID string) error {
	if f.addErr != nil {
		return f.addErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.likes[postID+":"+userID] = true
	f.posts[postID].LikesCount++
	return nil
}

func (f *fakeLikeStore) RemoveLike(postID, userID string) error {
	if f.removeErr != nil {
		return f.removeErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.likes, postID+":"+userID)
	if f.posts[postID].LikesCount > 0 {
		f.posts[postID].LikesCount--
	}
	return nil
}

func TestToggleLikeThenUnlikeRestoresState(t *testing.T) {
	st := newFakeLikeStore()
	svc := NewLikeService(st, nil)

	liked, count, err := svc.Toggle("post-1", "viewer")
	require.NoError(t, err)
	assert.True(t, liked)
	assert.Equal(t, 1, count)

	liked, count, err = svc.Toggle("post-1", "viewer")
	require.NoError(t, err)
	assert.False(t, liked)
	assert.Equal(t, 0, count)
	assert.False(t, st.likes["post-1:viewer"])
}

func TestToggleUnknownPost(t *testing.T) {
	st := newFakeLikeStore()
	svc := NewLikeService(st, nil)

	_, _, err := svc.Toggle("missing", "viewer")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestToggleStoreFailureLeavesCounterAlone(t *testing.T) {
	st := newFakeLikeStore()
	st.addErr = errors.New("insert failed")
	svc := NewLikeService(st, nil)

	_, _, err := svc.Toggle("post-1", "viewer")
	assert.Error(t, err)

	post, _ := st.PostByID("post-1")
	assert.Equal(t, 0, post.LikesCount)
	assert.False(t, st.likes["post-1:viewer"])

	// The guard must have been released: a retry succeeds.
	st.addErr = nil
	liked, count, err := svc.Toggle("post-1", "viewer")
	require.NoError(t, err)
	assert.True(t, liked)
	assert.Equal(t, 1, count)
}

func TestToggleRejectsReentrantToggle(t *testing.T) {
	st := newFakeLikeStore()
	st.entered = make(chan struct{}, 1)
	st.release = make(chan struct{})
	svc := NewLikeService(st, nil)

	done := make(chan error, 1)
	go func() {
		_, _, err := svc.Toggle("post-1", "viewer")
		done <- err
	}()

	// Wait for the first toggle to be mid-flight, then try again.
	<-st.entered
	_, _, err := svc.Toggle("post-1", "viewer")
	assert.ErrorIs(t, err, ErrToggleInFlight)

	close(st.release)
	st.entered = nil
	require.NoError(t, <-done)

	// The rejected toggle was dropped, not queued: exactly one like landed.
	post, _ := st.PostByID("post-1")
	assert.Equal(t, 1, post.LikesCount)
}

func TestToggleDifferentViewersNotSerialized(t *testing.T) {
	st := newFakeLikeStore()
	svc := NewLikeService(st, nil)

	_, _, err := svc.Toggle("post-1", "viewer-a")
	require.NoError(t, err)
	_, count, err := svc.Toggle("post-1", "viewer-b")
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}
