package supabase

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// Cookie names for the persisted session. The mock sentinel is what gates
// the admin area when no service is configured.
const (
	AccessTokenCookie  = "sb-access-token"
	RefreshTokenCookie = "sb-refresh-token"
	MockAuthCookie     = "mock_auth"
)

// Session is the credential material returned by a password sign-in.
type Session struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int    `json:"expires_in"`
}

// SignInWithPassword exchanges editor credentials for a session.
func (c *Client) SignInWithPassword(ctx context.Context, email, password string) (*Session, error) {
	body := map[string]string{"email": email, "password": password}
	payload, err := c.do(ctx, http.MethodPost, c.baseURL+"/auth/v1/token?grant_type=password", body, nil)
	if err != nil {
		return nil, err
	}

	var session Session
	if err := json.Unmarshal(payload, &session); err != nil {
		return nil, fmt.Errorf("failed to decode session: %w", err)
	}
	if session.AccessToken == "" {
		return nil, fmt.Errorf("sign-in response carried no access token")
	}
	return &session, nil
}

// SignOut revokes the session behind the given access token. A revocation
// failure is the caller's to ignore; the local cookies are cleared either way.
func (c *Client) SignOut(ctx context.Context, accessToken string) error {
	headers := map[string]string{"Authorization": "Bearer " + accessToken}
	_, err := c.do(ctx, http.MethodPost, c.baseURL+"/auth/v1/logout", nil, headers)
	return err
}

// WriteSessionCookies persists a session to the response. A nil writer is
// tolerated: some call paths cannot write cookies, and persistence is then
// deferred to a later request that can.
func WriteSessionCookies(w http.ResponseWriter, s *Session) {
	if w == nil || s == nil {
		return
	}

	maxAge := s.ExpiresIn
	if maxAge <= 0 {
		maxAge = 3600
	}

	http.SetCookie(w, &http.Cookie{
		Name:     AccessTokenCookie,
		Value:    s.AccessToken,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	http.SetCookie(w, &http.Cookie{
		Name:     RefreshTokenCookie,
		Value:    s.RefreshToken,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// ClearSessionCookies expires both session cookies.
func ClearSessionCookies(w http.ResponseWriter) {
	if w == nil {
		return
	}
	for _, name := range []string{AccessTokenCookie, RefreshTokenCookie} {
		http.SetCookie(w, &http.Cookie{
			Name:     name,
			Value:    "",
			Path:     "/",
			MaxAge:   -1,
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
	}
}
