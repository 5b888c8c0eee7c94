package middleware

import (
	"net/http"

	"github.com/adibayu/corpsite/shared/supabase"
	"github.com/gin-gonic/gin"
)

// RequireEditor gates the admin area. With a configured backend it demands
// a session access token and forwards it on the request context so
// repository calls run as the signed-in editor. In mock mode the sentinel
// cookie set by the mock sign-in is enough.
func RequireEditor(cfg supabase.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !cfg.IsConfigured() {
			if v, err := c.Cookie(supabase.MockAuthCookie); err != nil || v != "1" {
				c.Redirect(http.StatusFound, "/login")
				c.Abort()
				return
			}
			c.Next()
			return
		}

		token, err := c.Cookie(supabase.AccessTokenCookie)
		if err != nil || token == "" {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}

		ctx := supabase.ContextWithAccessToken(c.Request.Context(), token)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}
