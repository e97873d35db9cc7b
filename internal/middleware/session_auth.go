package middleware

import (
	"net/http"

	"github.com/cliphaven/backend/internal/auth"
	"github.com/cliphaven/backend/internal/models"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

// currentUserKey is the echo context key holding the resolved identity.
const currentUserKey = "currentUser"

// SessionAuth resolves the session cookie to a user and threads the
// identity through the request context. Requests without a valid
// session proceed unauthenticated; guards decide per endpoint.
func SessionAuth(sessions *auth.Sessions) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, ok := auth.ReadSessionCookie(c)
			if ok {
				user, err := sessions.Resolve(c.Request().Context(), token)
				if err != nil {
					log.Error().Err(err).Msg("resolving session")
					return echo.NewHTTPError(http.StatusInternalServerError, "Database error")
				}
				if user != nil {
					c.Set(currentUserKey, user)
				}
			}
			return next(c)
		}
	}
}

// RequireAuth short-circuits unauthenticated requests with the
// forbidden payload before the handler reads anything.
func RequireAuth() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if CurrentUser(c) == nil {
				return c.JSON(http.StatusForbidden, echo.Map{
					"errors": echo.Map{"message": "Forbidden"},
				})
			}
			return next(c)
		}
	}
}

// CurrentUser returns the identity bound to the request, or nil.
func CurrentUser(c echo.Context) *models.User {
	user, _ := c.Get(currentUserKey).(*models.User)
	return user
}
