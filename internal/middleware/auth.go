package middleware

import (
	"net/http"

	"community/internal/store"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

const CheckUserKey = "user"

// AuthRequired redirects to the login page when no session user exists.
// Absence of a session is the unauthenticated state, not an error.
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		if session.Get("user_id") == nil {
			c.Redirect(http.StatusFound, "/auth/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

// LoadUser resolves the session user's profile and sets it on the context
// for handlers and the page header.
func LoadUser(st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		userID, ok := session.Get("user_id").(string)
		if ok && userID != "" {
			if profile, err := st.ProfileByID(userID); err == nil {
				c.Set(CheckUserKey, profile)
			}
		}
		c.Next()
	}
}
