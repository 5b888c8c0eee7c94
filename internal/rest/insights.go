package rest

import (
	"net/http"
	"strconv"

	"github.com/adibayu/corpsite/content/application"
	"github.com/adibayu/corpsite/content/domain"
	"github.com/gin-gonic/gin"
)

type InsightsHandler struct {
	repo *application.Repository
}

func NewInsightsHandler(repo *application.Repository) *InsightsHandler {
	return &InsightsHandler{repo: repo}
}

// List serves the published insight feed. limit is optional; non-positive
// or non-numeric values are ignored and the result is unbounded. The feed
// never fails: backend trouble degrades to seed content upstream.
func (h *InsightsHandler) List(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			limit = n
		}
	}

	items := h.repo.ListPublishedInsights(c.Request.Context(), limit)
	if items == nil {
		items = []domain.Insight{}
	}

	c.JSON(http.StatusOK, gin.H{"items": items})
}
