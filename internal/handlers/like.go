package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"community/internal/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type LikeHandler struct {
	likes *services.LikeService
}

func NewLikeHandler(likes *services.LikeService) *LikeHandler {
	return &LikeHandler{likes: likes}
}

// Toggle flips the like for one post and returns the refreshed button
// content as an HTML fragment, matching the #like-content-{id} target.
func (h *LikeHandler) Toggle(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		c.Header("HX-Redirect", "/auth/login")
		c.Status(http.StatusOK)
		return
	}

	postID := c.Param("id")

	liked, count, err := h.likes.Toggle(postID, user.ID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrToggleInFlight):
			// An earlier toggle for this post is still running; this one
			// is dropped, not queued.
			c.Status(http.StatusConflict)
		case errors.Is(err, gorm.ErrRecordNotFound):
			c.Status(http.StatusNotFound)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	c.String(http.StatusOK, LikeFragment(liked, count))
}

// LikeFragment renders the inner HTML of a post's like button.
func LikeFragment(liked bool, count int) string {
	label := "Like"
	if count > 0 {
		label = fmt.Sprintf("%d", count)
	}
	if liked {
		return fmt.Sprintf(`<span class="icon heart liked">&#9829;</span><span class="like-label liked">%s</span>`, label)
	}
	return fmt.Sprintf(`<span class="icon heart">&#9825;</span><span class="like-label">%s</span>`, label)
}
