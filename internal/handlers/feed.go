package handlers

import (
	"net/http"

	"community/internal/services"

	"github.com/gin-gonic/gin"
)

type FeedHandler struct {
	feed *services.FeedService
}

func NewFeedHandler(feed *services.FeedService) *FeedHandler {
	return &FeedHandler{feed: feed}
}

// Home renders the create-post box and the global feed. A failed post
// fetch shows the error panel instead of a list; zero posts show the
// empty state. The two are never conflated.
func (h *FeedHandler) Home(c *gin.Context) {
	user, _ := currentUser(c)

	viewerID := ""
	if user != nil {
		viewerID = user.ID
	}

	items, err := h.feed.Compose(viewerID)
	if err != nil {
		Render(c, http.StatusInternalServerError, "feed/home.html", gin.H{
			"Title":     "Home",
			"FeedError": "Error loading posts. Please check your database setup.",
		})
		return
	}

	Render(c, http.StatusOK, "feed/home.html", gin.H{
		"Title": "Home",
		"Items": items,
	})
}
