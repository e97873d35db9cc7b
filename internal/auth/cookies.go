package auth

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

// SessionCookieName is the canonical session cookie name.
const SessionCookieName = "session_token"

// CSRFCookieName is the client-readable anti-forgery cookie. Mutating
// submissions mirror its value into the csrf_token form field or the
// X-CSRF-Token header.
const CSRFCookieName = "csrf_token"

// CSRFFieldName is the form field carrying the echoed token.
const CSRFFieldName = "csrf_token"

// CSRFHeaderName is the header alternative to the form field.
const CSRFHeaderName = "X-CSRF-Token"

// ReadSessionCookie returns the trimmed session token when present.
func ReadSessionCookie(c echo.Context) (string, bool) {
	cookie, err := c.Cookie(SessionCookieName)
	if err != nil || cookie == nil {
		return "", false
	}
	token := strings.TrimSpace(cookie.Value)
	if token == "" {
		return "", false
	}
	return token, true
}

// WriteSessionCookie sets the session cookie for the client.
func WriteSessionCookie(c echo.Context, token string) {
	c.SetCookie(&http.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   c.IsTLS(),
		SameSite: http.SameSiteLaxMode,
	})
}

// ClearSessionCookie expires the session cookie.
func ClearSessionCookie(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   c.IsTLS(),
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})
}

// IssuedCSRFToken returns the anti-forgery token issued to this client,
// if any.
func IssuedCSRFToken(c echo.Context) string {
	cookie, err := c.Cookie(CSRFCookieName)
	if err != nil || cookie == nil {
		return ""
	}
	return strings.TrimSpace(cookie.Value)
}

// WriteCSRFCookie issues the anti-forgery token. The cookie is not
// HttpOnly: the client reads it back into mutating submissions.
func WriteCSRFCookie(c echo.Context, token string) {
	c.SetCookie(&http.Cookie{
		Name:     CSRFCookieName,
		Value:    token,
		Path:     "/",
		Secure:   c.IsTLS(),
		SameSite: http.SameSiteLaxMode,
	})
}

// SubmittedCSRFToken returns the token echoed on a mutating request,
// preferring the form field over the header.
func SubmittedCSRFToken(c echo.Context) string {
	if v := strings.TrimSpace(c.FormValue(CSRFFieldName)); v != "" {
		return v
	}
	return strings.TrimSpace(c.Request().Header.Get(CSRFHeaderName))
}
