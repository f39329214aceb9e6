package rest

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	sessionCookie    = "sid"
	sessionCookieAge = 365 * 24 * time.Hour
	viewedCookieAge  = 24 * time.Hour
)

// sessionID returns the browser session id, issuing a new sid cookie when the request has none.
func (h *Handler) sessionID(c echo.Context) string {
	if cookie, err := c.Cookie(sessionCookie); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	id := uuid.NewString()
	c.SetCookie(h.cookie(sessionCookie, id, sessionCookieAge))
	return id
}

func (h *Handler) cookie(name, value string, maxAge time.Duration) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		MaxAge:   int(maxAge.Seconds()),
		HttpOnly: true,
		Secure:   h.cfg.SecureCookies,
		SameSite: http.SameSiteLaxMode,
	}
}

// cookieMarker keeps view markers as short-lived cookies of the client.
type cookieMarker struct {
	h *Handler
	c echo.Context
}

func (h *Handler) newCookieMarker(c echo.Context) *cookieMarker {
	return &cookieMarker{h: h, c: c}
}

func (m *cookieMarker) Viewed(key string) bool {
	cookie, err := m.c.Cookie(key)
	return err == nil && cookie.Value != ""
}

func (m *cookieMarker) MarkViewed(key string) {
	m.c.SetCookie(m.h.cookie(key, "1", viewedCookieAge))
}
