package handler

import (
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"storefront/internal/auth"
	apperrors "storefront/internal/errors"
)

const (
	// SessionCookieName is the cookie carrying the signed session token.
	SessionCookieName = "token"
	// sessionCookieMaxAge bounds client-side retention of the session cookie.
	sessionCookieMaxAge = 365 * 24 * time.Hour
)

// setSessionCookie attaches the session token as an HTTP-only cookie with a
// one-year max-age.
func setSessionCookie(c echo.Context, token string) {
	c.SetCookie(&http.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		MaxAge:   int(sessionCookieMaxAge.Seconds()),
	})
}

// clearSessionCookie expires the session cookie on the client.
func clearSessionCookie(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		MaxAge:   -1,
	})
}

// callerID extracts the authenticated user's ID from the verified session
// token the JWT middleware stashed on the context.
func callerID(c echo.Context) (uint, error) {
	token, ok := c.Get("user").(*jwt.Token)
	if !ok {
		return 0, apperrors.ErrAuthenticationRequired
	}
	claims, ok := token.Claims.(*auth.SessionClaims)
	if !ok || claims.UserID == 0 {
		return 0, apperrors.ErrAuthenticationRequired
	}
	return claims.UserID, nil
}

// respondError translates a domain error into the standard JSON error shape.
func respondError(c echo.Context, err error) error {
	httpErr := apperrors.MapErrorToHTTP(err)
	return c.JSON(httpErr.StatusCode, httpErr.ToErrorResponse())
}
