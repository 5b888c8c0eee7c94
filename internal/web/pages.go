package web

import (
	"net/http"

	"github.com/adibayu/corpsite/content/domain"
	"github.com/adibayu/corpsite/internal/i18n"
	"github.com/adibayu/corpsite/internal/middleware"
	"github.com/gin-gonic/gin"
)

// Home renders the landing page with the three most recent insights.
func (h *Handler) Home(c *gin.Context) {
	insights := h.repo.ListPublishedInsights(c.Request.Context(), 3)
	h.render(c, http.StatusOK, "home.html", gin.H{
		"Insights": insights,
	})
}

// Insights renders the public listing, optionally filtered by one of the
// four display categories. An unknown filter value just shows everything.
func (h *Handler) Insights(c *gin.Context) {
	insights := h.repo.ListPublishedInsights(c.Request.Context(), 0)

	active := c.Query("category")
	if active != "" {
		filtered := make([]domain.Insight, 0, len(insights))
		for _, insight := range insights {
			if string(insight.Category) == active {
				filtered = append(filtered, insight)
			}
		}
		if len(filtered) > 0 || validInsightCategory(active) {
			insights = filtered
		}
	}

	h.render(c, http.StatusOK, "insights.html", gin.H{
		"Insights": insights,
		"Categories": []domain.InsightCategory{
			domain.CategoryCorporateStrategy,
			domain.CategoryOperations,
			domain.CategoryMarket,
			domain.CategorySustainability,
		},
		"Active": active,
	})
}

// InsightBySlug renders one published insight, or the 404 page.
func (h *Handler) InsightBySlug(c *gin.Context) {
	insight := h.repo.GetPublishedInsightBySlug(c.Request.Context(), c.Param("slug"))
	if insight == nil {
		h.NotFound(c)
		return
	}

	h.render(c, http.StatusOK, "insight.html", gin.H{
		"Insight": insight,
		"Body":    h.markdown.Render(insight.Content),
	})
}

// NotFound renders the 404 page.
func (h *Handler) NotFound(c *gin.Context) {
	h.render(c, http.StatusNotFound, "404.html", gin.H{})
}

// ToggleLocale swaps the display language and returns to the referring page.
func (h *Handler) ToggleLocale(c *gin.Context) {
	next := middleware.LocaleFrom(c).Toggle()
	i18n.PersistLocale(c.Writer, next)
	c.Redirect(http.StatusSeeOther, backTo(c))
}

// ToggleTheme swaps the color theme and returns to the referring page.
func (h *Handler) ToggleTheme(c *gin.Context) {
	next := middleware.ThemeFrom(c).Toggle()
	i18n.PersistTheme(c.Writer, next)
	c.Redirect(http.StatusSeeOther, backTo(c))
}

func validInsightCategory(v string) bool {
	switch domain.InsightCategory(v) {
	case domain.CategoryCorporateStrategy, domain.CategoryOperations,
		domain.CategoryMarket, domain.CategorySustainability:
		return true
	}
	return false
}
