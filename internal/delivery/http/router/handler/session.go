// Package handler contains the HTTP handlers for the application.
package handler

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const sessionCookieName = "shop_session"

// sessionID returns the browsing-session identifier, minting a cookie on
// first contact. The cart lives in process memory keyed by this value.
func sessionID(c echo.Context) string {
	if cookie, err := c.Cookie(sessionCookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	id := uuid.NewString()
	c.SetCookie(&http.Cookie{
		Name:     sessionCookieName,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Expires:  time.Now().Add(7 * 24 * time.Hour),
	})

	return id
}
