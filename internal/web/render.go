package web

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/adibayu/corpsite/internal/i18n"
	"github.com/adibayu/corpsite/internal/middleware"
	"github.com/gin-gonic/gin"
)

// render merges the visitor's preferences and any banner messages into the
// template data. Banner text arrives via the error/success query
// parameters set by the redirect helpers.
func (h *Handler) render(c *gin.Context, status int, name string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}

	locale := middleware.LocaleFrom(c)
	data["Locale"] = locale
	data["Theme"] = middleware.ThemeFrom(c)
	data["Copy"] = i18n.CopyFor(locale)

	if msg := c.Query("error"); msg != "" {
		data["Error"] = msg
	}
	if msg := c.Query("success"); msg != "" {
		data["Success"] = msg
	}

	c.HTML(status, name, data)
}

// failRedirect sends the visitor back to the originating form with a
// human-readable error message in the query string.
func failRedirect(c *gin.Context, path, message string) {
	c.Redirect(http.StatusSeeOther, withQueryMessage(path, "error", message))
	c.Abort()
}

// successRedirect sends the visitor to the target with a success message.
func successRedirect(c *gin.Context, path, message string) {
	c.Redirect(http.StatusSeeOther, withQueryMessage(path, "success", message))
}

func withQueryMessage(path, key, message string) string {
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return path + sep + key + "=" + url.QueryEscape(message)
}

// backTo picks the redirect target for the preference toggles: the
// referring page, or the home page when there is none.
func backTo(c *gin.Context) string {
	if ref := c.Request.Referer(); ref != "" {
		if u, err := url.Parse(ref); err == nil && u.Path != "" {
			target := u.Path
			if u.RawQuery != "" {
				target += "?" + u.RawQuery
			}
			return target
		}
	}
	return "/"
}
