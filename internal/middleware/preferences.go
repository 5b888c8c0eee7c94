package middleware

import (
	"github.com/adibayu/corpsite/internal/i18n"
	"github.com/gin-gonic/gin"
)

// Context keys for the resolved visitor preferences.
const (
	LocaleKey = "locale"
	ThemeKey  = "theme"
)

// Preferences resolves the visitor's locale and theme and stashes them in
// the gin context. A first-time visitor gets the default locale written
// back so subsequent loads see an established preference.
func Preferences() gin.HandlerFunc {
	return func(c *gin.Context) {
		locale := i18n.LocaleFromRequest(c.Request)
		if !i18n.HasStoredLocale(c.Request) {
			i18n.PersistLocale(c.Writer, locale)
		}

		c.Set(LocaleKey, locale)
		c.Set(ThemeKey, i18n.ThemeFromRequest(c.Request))
		c.Next()
	}
}

// LocaleFrom reads the resolved locale from the gin context.
func LocaleFrom(c *gin.Context) i18n.Locale {
	if v, ok := c.Get(LocaleKey); ok {
		if l, ok := v.(i18n.Locale); ok {
			return l
		}
	}
	return i18n.DefaultLocale
}

// ThemeFrom reads the resolved theme from the gin context.
func ThemeFrom(c *gin.Context) i18n.Theme {
	if v, ok := c.Get(ThemeKey); ok {
		if t, ok := v.(i18n.Theme); ok {
			return t
		}
	}
	return i18n.DefaultTheme
}
