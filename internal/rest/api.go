package rest

import (
	"github.com/adibayu/corpsite/content/application"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the public JSON API.
func RegisterRoutes(router *gin.Engine, repo *application.Repository) {
	h := NewInsightsHandler(repo)

	api := router.Group("/api")
	{
		api.GET("/insights", h.List)
	}
}
