package handlers

import (
	"net/http"

	"community/internal/models"
	"community/internal/store"
	"community/internal/utils"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AuthHandler struct {
	store *store.Store
}

func NewAuthHandler(st *store.Store) *AuthHandler {
	return &AuthHandler{store: st}
}

type signupForm struct {
	Name     string `form:"name" binding:"required"`
	Email    string `form:"email" binding:"required,email"`
	Password string `form:"password" binding:"required,min=6"`
}

type loginForm struct {
	Email    string `form:"email" binding:"required"`
	Password string `form:"password" binding:"required"`
}

func (h *AuthHandler) ShowSignup(c *gin.Context) {
	Render(c, http.StatusOK, "auth/signup.html", gin.H{
		"Title": "Sign up",
		"Name":  "",
		"Email": "",
	})
}

func (h *AuthHandler) Signup(c *gin.Context) {
	var form signupForm
	if err := c.ShouldBind(&form); err != nil {
		Render(c, http.StatusBadRequest, "auth/signup.html", gin.H{
			"Title": "Sign up",
			"Error": "Please fill in name, a valid email, and a password of at least 6 characters.",
			"Name":  c.PostForm("name"),
			"Email": c.PostForm("email"),
		})
		return
	}

	hash, err := utils.HashPassword(form.Password)
	if err != nil {
		Render(c, http.StatusInternalServerError, "auth/signup.html", gin.H{
			"Title": "Sign up",
			"Error": "Something went wrong, please try again.",
			"Name":  form.Name,
			"Email": form.Email,
		})
		return
	}

	profile := models.Profile{
		ID:           uuid.NewString(),
		Name:         form.Name,
		Email:        form.Email,
		PasswordHash: hash,
	}
	if err := h.store.CreateProfile(&profile); err != nil {
		Render(c, http.StatusConflict, "auth/signup.html", gin.H{
			"Title": "Sign up",
			"Error": "That email is already registered.",
			"Name":  form.Name,
			"Email": form.Email,
		})
		return
	}

	session := sessions.Default(c)
	session.Set("user_id", profile.ID)
	session.Save()

	c.Redirect(http.StatusFound, "/")
}

func (h *AuthHandler) ShowLogin(c *gin.Context) {
	Render(c, http.StatusOK, "auth/login.html", gin.H{
		"Title": "Log in",
		"Email": "",
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var form loginForm
	if err := c.ShouldBind(&form); err != nil {
		Render(c, http.StatusBadRequest, "auth/login.html", gin.H{
			"Title": "Log in",
			"Error": "Email and password are required.",
			"Email": c.PostForm("email"),
		})
		return
	}

	profile, err := h.store.ProfileByEmail(form.Email)
	if err != nil || !utils.CheckPasswordHash(form.Password, profile.PasswordHash) {
		Render(c, http.StatusUnauthorized, "auth/login.html", gin.H{
			"Title": "Log in",
			"Error": "Wrong email or password.",
			"Email": form.Email,
		})
		return
	}

	session := sessions.Default(c)
	session.Set("user_id", profile.ID)
	session.Save()

	c.Redirect(http.StatusFound, "/")
}

func (h *AuthHandler) Logout(c *gin.Context) {
	session := sessions.Default(c)
	session.Clear()
	session.Save()
	c.Redirect(http.StatusFound, "/auth/login")
}
