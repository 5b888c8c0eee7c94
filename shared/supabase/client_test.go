package supabase

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
)

func TestConfig_IsConfigured(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want bool
	}{
		{"both present", Config{URL: "https://x.supabase.co", AnonKey: "key"}, true},
		{"missing url", Config{AnonKey: "key"}, false},
		{"missing key", Config{URL: "https://x.supabase.co"}, false},
		{"whitespace only", Config{URL: "  ", AnonKey: "key"}, false},
		{"empty", Config{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.cfg.IsConfigured(); got != tt.want {
				t.Errorf("IsConfigured() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNew_NilWhenUnconfigured(t *testing.T) {
	if c := New(Config{}); c != nil {
		t.Error("New with empty config should return nil")
	}
	if c := NewFactory(Config{})(context.Background()); c != nil {
		t.Error("factory with empty config should return nil clients")
	}
}

func TestClient_AuthHeaders(t *testing.T) {
	var gotAPIKey, gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAPIKey = r.Header.Get("apikey")
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte("[]"))
	}))
	defer srv.Close()

	cfg := Config{URL: srv.URL, AnonKey: "anon"}

	// Anonymous client falls back to the anon key as bearer.
	c := New(cfg)
	if _, err := c.Select(context.Background(), "posts", nil); err != nil {
		t.Fatalf("Select failed: %v", err)
	}
	if gotAPIKey != "anon" || gotAuth != "Bearer anon" {
		t.Errorf("anonymous headers = %q / %q", gotAPIKey, gotAuth)
	}

	// A session token takes over the bearer slot.
	ctx := ContextWithAccessToken(context.Background(), "user-token")
	c = NewFactory(cfg)(ctx)
	if _, err := c.Select(ctx, "posts", nil); err != nil {
		t.Fatalf("Select failed: %v", err)
	}
	if gotAuth != "Bearer user-token" {
		t.Errorf("session Authorization = %q, want Bearer user-token", gotAuth)
	}
}

func TestClient_SelectQueryEncoding(t *testing.T) {
	var gotQuery url.Values
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Write([]byte("[]"))
	}))
	defer srv.Close()

	c := New(Config{URL: srv.URL, AnonKey: "k"})
	_, err := c.Select(context.Background(), "posts", url.Values{"id": {"eq.7"}, "select": {"*"}})
	if err != nil {
		t.Fatalf("Select failed: %v", err)
	}
	if gotQuery.Get("id") != "eq.7" || gotQuery.Get("select") != "*" {
		t.Errorf("query = %v", gotQuery)
	}
}

func TestClient_SignInWithPassword(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/auth/v1/token" {
			t.Errorf("path = %q, want /auth/v1/token", r.URL.Path)
		}
		if grant := r.URL.Query().Get("grant_type"); grant != "password" {
			t.Errorf("grant_type = %q, want password", grant)
		}
		w.Write([]byte(`{"access_token":"at","refresh_token":"rt","expires_in":3600}`))
	}))
	defer srv.Close()

	c := New(Config{URL: srv.URL, AnonKey: "k"})
	session, err := c.SignInWithPassword(context.Background(), "editor@adibayu.example", "secret")
	if err != nil {
		t.Fatalf("SignInWithPassword failed: %v", err)
	}
	if session.AccessToken != "at" || session.RefreshToken != "rt" {
		t.Errorf("unexpected session: %+v", session)
	}
}

func TestClient_SignInErrorMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error_description":"Invalid login credentials"}`))
	}))
	defer srv.Close()

	c := New(Config{URL: srv.URL, AnonKey: "k"})
	_, err := c.SignInWithPassword(context.Background(), "editor@adibayu.example", "wrong")
	if err == nil {
		t.Fatal("expected sign-in error")
	}
	if !strings.Contains(err.Error(), "Invalid login credentials") {
		t.Errorf("err = %v, want service message surfaced", err)
	}
}

func TestWriteSessionCookies_NilWriterTolerated(t *testing.T) {
	// Must not panic; persistence is deferred when cookies cannot be set.
	WriteSessionCookies(nil, &Session{AccessToken: "at"})
	ClearSessionCookies(nil)
}

func TestWriteSessionCookies(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteSessionCookies(rec, &Session{AccessToken: "at", RefreshToken: "rt", ExpiresIn: 60})

	cookies := rec.Result().Cookies()
	byName := map[string]*http.Cookie{}
	for _, c := range cookies {
		byName[c.Name] = c
	}

	access, ok := byName[AccessTokenCookie]
	if !ok || access.Value != "at" || !access.HttpOnly {
		t.Errorf("access cookie = %+v", access)
	}
	if refresh, ok := byName[RefreshTokenCookie]; !ok || refresh.Value != "rt" {
		t.Errorf("refresh cookie = %+v", refresh)
	}
}
