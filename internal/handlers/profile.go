package handlers

import (
	"errors"
	"net/http"

	"community/internal/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ProfileHandler struct {
	profiles *services.ProfileService
	feed     *services.FeedService
}

func NewProfileHandler(profiles *services.ProfileService, feed *services.FeedService) *ProfileHandler {
	return &ProfileHandler{profiles: profiles, feed: feed}
}

// Show renders a user's profile page: header plus their posts with the
// viewer's like state.
func (h *ProfileHandler) Show(c *gin.Context) {
	viewer, _ := currentUser(c)

	profile, err := h.profiles.Get(c.Param("id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			RenderError(c, http.StatusNotFound, "User not found.")
			return
		}
		RenderError(c, http.StatusInternalServerError, "Error loading profile.")
		return
	}

	viewerID := ""
	isOwn := false
	if viewer != nil {
		viewerID = viewer.ID
		isOwn = viewer.ID == profile.ID
	}

	data := gin.H{
		"Title":        profile.Name,
		"Profile":      profile,
		"IsOwnProfile": isOwn,
	}

	items, err := h.feed.ComposeForAuthor(viewerID, profile.ID)
	if err != nil {
		data["FeedError"] = "Error loading posts."
	} else {
		data["Items"] = items
	}

	Render(c, http.StatusOK, "profile/show.html", data)
}

// ShowEdit renders the edit form for the viewer's own profile. Email is
// displayed read-only; it cannot be changed here.
func (h *ProfileHandler) ShowEdit(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		c.Redirect(http.StatusFound, "/auth/login")
		return
	}

	Render(c, http.StatusOK, "profile/edit.html", gin.H{
		"Title":   "Edit Profile",
		"Profile": user,
		"Name":    user.Name,
		"Bio":     user.BioText(),
	})
}

// Update saves name and bio for the viewer's own profile. On success the
// page confirms and then navigates to the profile after a short delay; on
// failure the store's error is shown and no navigation happens.
func (h *ProfileHandler) Update(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		c.Redirect(http.StatusFound, "/auth/login")
		return
	}

	name := c.PostForm("name")
	bio := c.PostForm("bio")

	err := h.profiles.Update(user.ID, name, bio)
	if err == nil {
		Render(c, http.StatusOK, "profile/edit.html", gin.H{
			"Title":      "Edit Profile",
			"Profile":    user,
			"Name":       name,
			"Bio":        bio,
			"Success":    true,
			"RedirectTo": "/u/" + user.ID,
		})
		return
	}

	if errors.Is(err, services.ErrEmptyName) {
		// The save button is disabled for an empty name; a direct submit
		// just re-renders without a store call.
		Render(c, http.StatusBadRequest, "profile/edit.html", gin.H{
			"Title":   "Edit Profile",
			"Profile": user,
			"Name":    name,
			"Bio":     bio,
			"Error":   "Name is required.",
		})
		return
	}

	message := err.Error()
	if errors.Is(err, services.ErrBioTooLong) {
		message = "Bio is limited to 500 characters."
	}
	Render(c, http.StatusBadRequest, "profile/edit.html", gin.H{
		"Title":   "Edit Profile",
		"Profile": user,
		"Name":    name,
		"Bio":     bio,
		"Error":   message,
	})
}
