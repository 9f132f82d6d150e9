package handlers

import (
	"errors"
	"net/http"

	"community/internal/services"

	"github.com/gin-gonic/gin"
)

type PostHandler struct {
	posts *services.PostService
	feed  *services.FeedService
}

func NewPostHandler(posts *services.PostService, feed *services.FeedService) *PostHandler {
	return &PostHandler{posts: posts, feed: feed}
}

// Create persists a new post for the viewer and returns to the feed. On a
// store failure the typed content is kept in the form for retry; on a
// validation miss (empty content) nothing is stored and we just go home.
func (h *PostHandler) Create(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		c.Redirect(http.StatusFound, "/auth/login")
		return
	}

	content := c.PostForm("content")

	_, err := h.posts.Create(user.ID, content)
	if err == nil {
		c.Redirect(http.StatusFound, "/")
		return
	}

	if errors.Is(err, services.ErrEmptyContent) {
		// The submit button is disabled client-side for empty input; a
		// direct empty submit is a no-op.
		c.Redirect(http.StatusFound, "/")
		return
	}

	message := "Could not publish your post. Please try again."
	if errors.Is(err, services.ErrContentTooLong) {
		message = "Posts are limited to 2000 characters."
	}

	items, feedErr := h.feed.Compose(user.ID)
	data := gin.H{
		"Title":     "Home",
		"PostError": message,
		"Draft":     content,
		"Items":     items,
	}
	if feedErr != nil {
		delete(data, "Items")
		data["FeedError"] = "Error loading posts. Please check your database setup."
	}
	Render(c, http.StatusOK, "feed/home.html", data)
}
