package main

import (
	"fmt"
	"html/template"
	"log"
	"path/filepath"
	"time"

	"community/internal/config"
	"community/internal/db"
	"community/internal/handlers"
	"community/internal/middleware"
	"community/internal/services"
	"community/internal/store"
	"community/internal/utils"

	"github.com/gin-contrib/multitemplate"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
)

func main() {
	cfg := config.Load()

	gdb, err := db.Open(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Database connection established")

	st := store.New(gdb)
	cache := utils.NewCache(500)

	feedService := services.NewFeedService(st, cache)
	likeService := services.NewLikeService(st, feedService)
	postService := services.NewPostService(st, feedService)
	profileService := services.NewProfileService(st)

	r := gin.Default()

	// Setup Sessions
	sessionStore := cookie.NewStore([]byte(cfg.SessionSecret))
	r.Use(sessions.Sessions("community_session", sessionStore))

	// Load Templates using Multitemplate to avoid collision and allow handler names
	r.HTMLRender = loadTemplates("./web/templates")

	// Static Assets
	r.Static("/static", "./web/static")

	// Middleware
	r.Use(middleware.LoadUser(st))

	// Handlers
	authHandler := handlers.NewAuthHandler(st)
	feedHandler := handlers.NewFeedHandler(feedService)
	postHandler := handlers.NewPostHandler(postService, feedService)
	likeHandler := handlers.NewLikeHandler(likeService)
	profileHandler := handlers.NewProfileHandler(profileService, feedService)

	// Public Routes
	r.GET("/auth/signup", authHandler.ShowSignup)
	r.POST("/auth/signup", authHandler.Signup)
	r.GET("/auth/login", authHandler.ShowLogin)
	r.POST("/auth/login", authHandler.Login)
	r.GET("/auth/logout", authHandler.Logout)

	// Protected Routes
	authorized := r.Group("/")
	authorized.Use(middleware.AuthRequired())
	{
		authorized.GET("/", feedHandler.Home)
		authorized.POST("/posts", postHandler.Create)
		authorized.POST("/likes/:id", likeHandler.Toggle)
		authorized.GET("/u/:id", profileHandler.Show)
		authorized.GET("/profile/edit", profileHandler.ShowEdit)
		authorized.POST("/profile/edit", profileHandler.Update)
	}

	log.Printf("Community server starting on :%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}

func loadTemplates(templatesDir string) multitemplate.Renderer {
	r := multitemplate.NewRenderer()

	layouts, err := filepath.Glob(templatesDir + "/layouts/*.html")
	if err != nil {
		panic(err)
	}

	includes, err := filepath.Glob(templatesDir + "/includes/*.html")
	if err != nil {
		panic(err)
	}

	components, err := filepath.Glob(templatesDir + "/components/*.html")
	if err != nil {
		panic(err)
	}

	// Helper to assemble files
	assemble := func(view string) []string {
		files := make([]string, 0)
		files = append(files, layouts...)
		files = append(files, includes...)
		files = append(files, components...)
		files = append(files, view)
		return files
	}

	// FuncMap
	funcMap := template.FuncMap{
		"dict": func(values ...interface{}) (map[string]interface{}, error) {
			if len(values)%2 != 0 {
				return nil, fmt.Errorf("invalid dict call")
			}
			dict := make(map[string]interface{}, len(values)/2)
			for i := 0; i < len(values); i += 2 {
				key, ok := values[i].(string)
				if !ok {
					return nil, fmt.Errorf("dict keys must be strings")
				}
				dict[key] = values[i+1]
			}
			return dict, nil
		},
		"timeAgo": func(t interface{}) string {
			timeVal, ok := t.(time.Time)
			if !ok {
				return ""
			}
			return utils.TimeAgo(timeVal)
		},
		"initials":      utils.Initials,
		"renderContent": utils.RenderContent,
		"likeFragment": func(liked bool, count int) template.HTML {
			return template.HTML(handlers.LikeFragment(liked, count))
		},
	}

	// Manual registration to ensure keys match handler expectation
	// Auth
	r.AddFromFilesFuncs("auth/login.html", funcMap, assemble(templatesDir+"/views/auth/login.html")...)
	r.AddFromFilesFuncs("auth/signup.html", funcMap, assemble(templatesDir+"/views/auth/signup.html")...)

	// Feed
	r.AddFromFilesFuncs("feed/home.html", funcMap, assemble(templatesDir+"/views/feed/home.html")...)

	// Profile
	r.AddFromFilesFuncs("profile/show.html", funcMap, assemble(templatesDir+"/views/profile/show.html")...)
	r.AddFromFilesFuncs("profile/edit.html", funcMap, assemble(templatesDir+"/views/profile/edit.html")...)

	// Error
	r.AddFromFilesFuncs("error.html", funcMap, assemble(templatesDir+"/views/error.html")...)

	return r
}
