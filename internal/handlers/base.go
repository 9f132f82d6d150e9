package handlers

import (
	"community/internal/middleware"
	"community/internal/models"

	"github.com/gin-gonic/gin"
)

// Render injects common variables like the current user before rendering.
func Render(c *gin.Context, code int, name string, obj gin.H) {
	if obj == nil {
		obj = gin.H{}
	}

	if user, exists := c.Get(middleware.CheckUserKey); exists {
		obj["CurrentUser"] = user
	}
	obj["CurrentPath"] = c.Request.URL.Path

	c.HTML(code, name, obj)
}

// RenderError renders the shared error page.
func RenderError(c *gin.Context, code int, message string) {
	Render(c, code, "error.html", gin.H{"Error": message})
}

// currentUser returns the profile LoadUser put on the context. Handlers
// behind AuthRequired can rely on it being present.
func currentUser(c *gin.Context) (*models.Profile, bool) {
	user, exists := c.Get(middleware.CheckUserKey)
	if !exists {
		return nil, false
	}
	profile, ok := user.(*models.Profile)
	return profile, ok
}
