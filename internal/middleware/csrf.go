package middleware

import (
	"net/http"

	"github.com/cliphaven/backend/internal/auth"
	"github.com/cliphaven/backend/internal/forms"
	"github.com/labstack/echo/v4"
)

// EnsureCSRF issues the anti-forgery cookie to clients that do not
// carry one yet, so every subsequent mutating submission can echo it.
func EnsureCSRF() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if auth.IssuedCSRFToken(c) == "" {
				auth.WriteCSRFCookie(c, auth.NewCSRFToken())
			}
			return next(c)
		}
	}
}

// AntiForgery rejects mutating requests whose echoed token does not
// match the issued one. Reads pass through untouched.
func AntiForgery() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			switch c.Request().Method {
			case http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete:
				csrf := forms.CSRF{
					Issued:    auth.IssuedCSRFToken(c),
					Submitted: auth.SubmittedCSRFToken(c),
				}
				if !csrf.Valid() {
					return c.JSON(http.StatusBadRequest, map[string][]string{
						"csrf_token": {"The CSRF token is missing or invalid."},
					})
				}
			}
			return next(c)
		}
	}
}

// RequestCSRF collects the issued and submitted anti-forgery tokens for
// form validation.
func RequestCSRF(c echo.Context) forms.CSRF {
	return forms.CSRF{
		Issued:    auth.IssuedCSRFToken(c),
		Submitted: auth.SubmittedCSRFToken(c),
	}
}
