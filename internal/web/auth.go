package web

import (
	"net/http"
	"strings"

	"github.com/adibayu/corpsite/shared/supabase"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// ShowLogin renders the sign-in form.
func (h *Handler) ShowLogin(c *gin.Context) {
	h.render(c, http.StatusOK, "login.html", gin.H{})
}

// SignIn authenticates an editor. With no backend configured it sets the
// mock sentinel cookie; otherwise it delegates to the service's password
// flow and persists the returned session in cookies.
func (h *Handler) SignIn(c *gin.Context) {
	email := strings.TrimSpace(c.PostForm("email"))
	password := strings.TrimSpace(c.PostForm("password"))

	if email == "" || password == "" {
		failRedirect(c, "/login", "Missing credentials")
		return
	}

	if !h.cfg.IsConfigured() {
		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(supabase.MockAuthCookie, "1", 0, "/", "", false, true)
		c.Redirect(http.StatusSeeOther, "/admin/posts")
		return
	}

	client := h.clients(c.Request.Context())
	if client == nil {
		failRedirect(c, "/login", "Supabase client unavailable")
		return
	}

	session, err := client.SignInWithPassword(c.Request.Context(), email, password)
	if err != nil {
		failRedirect(c, "/login", err.Error())
		return
	}

	supabase.WriteSessionCookies(c.Writer, session)
	c.Redirect(http.StatusSeeOther, "/admin/posts")
}

// SignOut revokes the remote session when there is one and clears every
// auth cookie. Revocation failures are logged, not surfaced; the visitor
// is signed out locally regardless.
func (h *Handler) SignOut(c *gin.Context) {
	if h.cfg.IsConfigured() {
		if token, err := c.Cookie(supabase.AccessTokenCookie); err == nil && token != "" {
			if client := h.clients(c.Request.Context()); client != nil {
				if err := client.SignOut(c.Request.Context(), token); err != nil {
					log.Warn().Err(err).Msg("Failed to revoke remote session")
				}
			}
		}
	}

	supabase.ClearSessionCookies(c.Writer)
	c.SetCookie(supabase.MockAuthCookie, "", -1, "/", "", false, true)
	c.Redirect(http.StatusSeeOther, "/login")
}
