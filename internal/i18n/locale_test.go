package i18n

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func requestWithCookie(name, value string) *http.Request {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	if name != "" {
		r.AddCookie(&http.Cookie{Name: name, Value: value})
	}
	return r
}

func TestLocaleFromRequest(t *testing.T) {
	tests := []struct {
		name   string
		cookie string
		value  string
		want   Locale
	}{
		{"no cookie defaults to Indonesian", "", "", LocaleID},
		{"lang cookie honored", "lang", "en", LocaleEN},
		{"legacy locale cookie honored", "locale", "en", LocaleEN},
		{"invalid value falls back", "lang", "fr", LocaleID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := LocaleFromRequest(requestWithCookie(tt.cookie, tt.value)); got != tt.want {
				t.Errorf("LocaleFromRequest = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLocaleFromRequest_LangCookieWinsOverLegacy(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.AddCookie(&http.Cookie{Name: "lang", Value: "id"})
	r.AddCookie(&http.Cookie{Name: "locale", Value: "en"})

	if got := LocaleFromRequest(r); got != LocaleID {
		t.Errorf("LocaleFromRequest = %q, want the lang cookie to win", got)
	}
}

func TestThemeFromRequest(t *testing.T) {
	if got := ThemeFromRequest(requestWithCookie("", "")); got != ThemeLight {
		t.Errorf("default theme = %q, want light", got)
	}
	if got := ThemeFromRequest(requestWithCookie("theme", "dark")); got != ThemeDark {
		t.Errorf("stored theme = %q, want dark", got)
	}
	if got := ThemeFromRequest(requestWithCookie("theme", "sepia")); got != ThemeLight {
		t.Errorf("invalid theme = %q, want light fallback", got)
	}
}

func TestToggle(t *testing.T) {
	if LocaleID.Toggle() != LocaleEN || LocaleEN.Toggle() != LocaleID {
		t.Error("locale toggle is not an involution over the two locales")
	}
	if ThemeLight.Toggle() != ThemeDark || ThemeDark.Toggle() != ThemeLight {
		t.Error("theme toggle is not an involution over the two themes")
	}
}

func TestPersistLocale_WritesBothKeys(t *testing.T) {
	rec := httptest.NewRecorder()
	PersistLocale(rec, LocaleEN)

	got := map[string]string{}
	for _, c := range rec.Result().Cookies() {
		got[c.Name] = c.Value
	}
	if got["lang"] != "en" || got["locale"] != "en" {
		t.Errorf("persisted cookies = %v, want en under both lang and locale", got)
	}
}

func TestHasStoredLocale(t *testing.T) {
	if HasStoredLocale(requestWithCookie("", "")) {
		t.Error("fresh request should have no stored locale")
	}
	if !HasStoredLocale(requestWithCookie("locale", "en")) {
		t.Error("legacy cookie should count as stored")
	}
	if !HasStoredLocale(requestWithCookie("lang", "fr")) {
		t.Error("presence counts even when the value is invalid")
	}
}

func TestCopyFor(t *testing.T) {
	en := CopyFor(LocaleEN)
	id := CopyFor(LocaleID)

	if en.NavInsights == "" || id.NavInsights == "" {
		t.Fatal("copy tables must fill navigation labels")
	}
	if en.NavInsights == id.NavInsights {
		t.Error("locales should not share the same translated strings")
	}
}
