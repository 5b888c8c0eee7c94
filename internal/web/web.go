// Package web serves the HTML side of the site: public pages, editor
// sign-in, and the admin forms for managing insights. Mutation outcomes
// travel as redirect query messages; the admin templates render them as a
// dismissible banner.
package web

import (
	"io/fs"
	"net/http"

	"github.com/adibayu/corpsite/content/application"
	"github.com/adibayu/corpsite/internal/middleware"
	"github.com/adibayu/corpsite/shared/supabase"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type Handler struct {
	repo     *application.Repository
	cfg      supabase.Config
	clients  supabase.Factory
	markdown *markdownRenderer
	validate *validator.Validate
}

func NewHandler(repo *application.Repository, cfg supabase.Config, clients supabase.Factory) *Handler {
	return &Handler{
		repo:     repo,
		cfg:      cfg,
		clients:  clients,
		markdown: newMarkdownRenderer(),
		validate: validator.New(),
	}
}

// RegisterRoutes mounts all HTML routes on the router.
func (h *Handler) RegisterRoutes(router *gin.Engine) {
	static, _ := fs.Sub(staticFS, "static")
	router.StaticFS("/static", http.FS(static))

	router.GET("/", h.Home)
	router.GET("/insights", h.Insights)
	router.GET("/insights/:slug", h.InsightBySlug)

	router.GET("/login", h.ShowLogin)
	router.POST("/login", h.SignIn)
	router.POST("/logout", h.SignOut)

	router.POST("/prefs/locale", h.ToggleLocale)
	router.POST("/prefs/theme", h.ToggleTheme)

	admin := router.Group("/admin")
	admin.Use(middleware.RequireEditor(h.cfg))
	{
		admin.GET("/posts", h.AdminListPosts)
		admin.GET("/posts/new", h.AdminNewPost)
		admin.GET("/posts/:id/edit", h.AdminEditPost)
		admin.POST("/posts", h.AdminCreatePost)
		admin.POST("/posts/:id", h.AdminUpdatePost)
		admin.POST("/posts/:id/delete", h.AdminDeletePost)
	}

	router.NoRoute(h.NotFound)
}
