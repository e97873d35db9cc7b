package handlers

import (
	"net/http"

	"github.com/cliphaven/backend/internal/auth"
	"github.com/cliphaven/backend/internal/forms"
	"github.com/cliphaven/backend/internal/middleware"
	"github.com/cliphaven/backend/internal/models"
	"github.com/cliphaven/backend/internal/repositories"
	"github.com/cliphaven/backend/pkg/storage"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
)

// AuthHandler handles authentication-related HTTP requests
type AuthHandler struct {
	userRepository   repositories.UserRepository
	followRepository repositories.FollowRepository
	sessions         *auth.Sessions
	objectStore      storage.ObjectStore
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(userRepo repositories.UserRepository, followRepo repositories.FollowRepository, sessions *auth.Sessions, store storage.ObjectStore) *AuthHandler {
	return &AuthHandler{
		userRepository:   userRepo,
		followRepository: followRepo,
		sessions:         sessions,
		objectStore:      store,
	}
}

// RegisterAuthRoutes registers authentication-related routes
func (h *AuthHandler) RegisterAuthRoutes(e *echo.Echo) {
	e.GET("/", h.Authenticate)
	e.POST("/login", h.Login)
	e.GET("/logout", h.Logout)
	e.POST("/signup", h.Signup)
	e.GET("/unauthorized", h.Unauthorized)
}

// Authenticate returns the identity bound to the current session,
// enriched with follower and following counts.
func (h *AuthHandler) Authenticate(c echo.Context) error {
	user := middleware.CurrentUser(c)
	if user == nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "No user is logged in"})
	}

	ctx := c.Request().Context()
	followers, err := h.followRepository.GetFollowersCount(ctx, user.ID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Database error")
	}
	following, err := h.followRepository.GetFollowingCount(ctx, user.ID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Database error")
	}

	return c.JSON(http.StatusOK, models.ProfileView{
		UserView:       user.View(),
		FollowersCount: followers,
		FollowingCount: following,
	})
}

// Login validates the submission, binds a new session to the matched
// user and returns the public view.
func (h *AuthHandler) Login(c echo.Context) error {
	ctx := c.Request().Context()

	form := forms.NewLoginForm(
		middleware.RequestCSRF(c),
		c.FormValue("email"),
		c.FormValue("password"),
		h.userRepository,
	)
	errs, user := form.Validate(ctx)
	if errs.Any() {
		return c.JSON(http.StatusUnauthorized, errs)
	}

	token, err := h.sessions.Begin(ctx, user)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to start session")
	}
	auth.WriteSessionCookie(c, token)

	return c.JSON(http.StatusOK, user.View())
}

// Logout unconditionally unbinds the current session. Logging out
// without a session is a no-op success.
func (h *AuthHandler) Logout(c echo.Context) error {
	if token, ok := auth.ReadSessionCookie(c); ok {
		if err := h.sessions.End(c.Request().Context(), token); err != nil {
			log.Error().Err(err).Msg("ending session")
		}
	}
	auth.ClearSessionCookie(c)

	return c.JSON(http.StatusOK, echo.Map{"message": "User has been successfully logged out"})
}

// Signup validates the submission, creates the user (uploading the
// profile picture first when one is supplied), binds a session and
// returns the public view.
func (h *AuthHandler) Signup(c echo.Context) error {
	ctx := c.Request().Context()

	form := forms.NewSignupForm(
		middleware.RequestCSRF(c),
		c.FormValue("first_name"),
		c.FormValue("last_name"),
		c.FormValue("username"),
		c.FormValue("email"),
		c.FormValue("password"),
		h.userRepository,
	)
	if errs := form.Validate(ctx); errs.Any() {
		return c.JSON(http.StatusBadRequest, errs)
	}

	var profilePic *string
	if url, failure, err := uploadFormFile(c, h.objectStore, "profile_pic"); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	} else if failure != nil {
		return c.JSON(http.StatusBadRequest, failure)
	} else if url != "" {
		profilePic = &url
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(form.Password), bcrypt.DefaultCost)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to hash password")
	}

	user := &models.User{
		FirstName:    form.FirstName,
		LastName:     form.LastName,
		Username:     form.Username,
		Email:        form.Email,
		PasswordHash: string(hash),
		ProfilePic:   profilePic,
	}
	if err := h.userRepository.CreateUser(ctx, user); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to create user")
	}

	token, err := h.sessions.Begin(ctx, user)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to start session")
	}
	auth.WriteSessionCookie(c, token)

	return c.JSON(http.StatusOK, user.View())
}

// Unauthorized is the payload returned when an endpoint guard fails.
func (h *AuthHandler) Unauthorized(c echo.Context) error {
	return c.JSON(http.StatusForbidden, echo.Map{"errors": echo.Map{"message": "Forbidden"}})
}

// uploadFormFile uploads the named multipart file to the object store.
// The three-way result mirrors the flow: no file (all zero values), a
// collaborator failure (failure payload for the client), or a URL.
func uploadFormFile(c echo.Context, store storage.ObjectStore, field string) (url string, failure echo.Map, err error) {
	fileHeader, err := c.FormFile(field)
	if err != nil {
		// No file in the submission
		return "", nil, nil
	}

	src, err := fileHeader.Open()
	if err != nil {
		return "", nil, err
	}
	defer src.Close()

	name := storage.UniqueName(fileHeader.Filename)
	uploaded, err := store.Upload(c.Request().Context(), name, src, fileHeader.Header.Get("Content-Type"))
	if err != nil {
		log.Error().Err(err).Str("object", name).Msg("file upload failed")
		return "", echo.Map{"error": "File upload failed", "details": err.Error()}, nil
	}
	return uploaded, nil, nil
}
