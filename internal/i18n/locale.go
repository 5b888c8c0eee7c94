// Package i18n carries the visitor's language and theme preference across
// requests. The site ships in Indonesian by default with an English toggle;
// both preferences persist in cookies, the server-rendered equivalent of
// the tab-local storage the preference originally lived in.
package i18n

import "net/http"

// Locale is one of the two supported display languages.
type Locale string

const (
	LocaleEN Locale = "en"
	LocaleID Locale = "id"

	DefaultLocale = LocaleID
)

// Theme is the visitor's color scheme preference.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"

	DefaultTheme = ThemeLight
)

// The locale persists under two keys; "locale" is the legacy name earlier
// site revisions wrote, still honored on read and refreshed on write.
const (
	langCookie       = "lang"
	legacyLangCookie = "locale"
	themeCookie      = "theme"
	preferenceMaxAge = 365 * 24 * 60 * 60
)

// LocaleFromRequest resolves the visitor's language, defaulting to
// Indonesian when nothing valid is stored.
func LocaleFromRequest(r *http.Request) Locale {
	for _, name := range []string{langCookie, legacyLangCookie} {
		if c, err := r.Cookie(name); err == nil {
			if l := Locale(c.Value); l == LocaleEN || l == LocaleID {
				return l
			}
		}
	}
	return DefaultLocale
}

// ThemeFromRequest resolves the visitor's theme preference.
func ThemeFromRequest(r *http.Request) Theme {
	if c, err := r.Cookie(themeCookie); err == nil {
		if t := Theme(c.Value); t == ThemeLight || t == ThemeDark {
			return t
		}
	}
	return DefaultTheme
}

// Toggle swaps between the exactly two supported locales.
func (l Locale) Toggle() Locale {
	if l == LocaleEN {
		return LocaleID
	}
	return LocaleEN
}

// Toggle swaps between the two themes.
func (t Theme) Toggle() Theme {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

// PersistLocale writes the language under both storage keys.
func PersistLocale(w http.ResponseWriter, l Locale) {
	for _, name := range []string{langCookie, legacyLangCookie} {
		http.SetCookie(w, &http.Cookie{
			Name:     name,
			Value:    string(l),
			Path:     "/",
			MaxAge:   preferenceMaxAge,
			SameSite: http.SameSiteLaxMode,
		})
	}
}

// PersistTheme writes the theme preference.
func PersistTheme(w http.ResponseWriter, t Theme) {
	http.SetCookie(w, &http.Cookie{
		Name:     themeCookie,
		Value:    string(t),
		Path:     "/",
		MaxAge:   preferenceMaxAge,
		SameSite: http.SameSiteLaxMode,
	})
}

// HasStoredLocale reports whether any locale cookie is present, valid or
// not. First-time visitors get the default written back so later loads see
// an established preference.
func HasStoredLocale(r *http.Request) bool {
	for _, name := range []string{langCookie, legacyLangCookie} {
		if _, err := r.Cookie(name); err == nil {
			return true
		}
	}
	return false
}
