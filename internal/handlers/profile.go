package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/cliphaven/backend/internal/forms"
	"github.com/cliphaven/backend/internal/middleware"
	"github.com/cliphaven/backend/internal/models"
	"github.com/cliphaven/backend/internal/repositories"
	"github.com/cliphaven/backend/pkg/storage"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// ProfileHandler handles profile editing and public profile reads
type ProfileHandler struct {
	userRepository   repositories.UserRepository
	followRepository repositories.FollowRepository
	objectStore      storage.ObjectStore
}

// NewProfileHandler creates a new ProfileHandler
func NewProfileHandler(userRepo repositories.UserRepository, followRepo repositories.FollowRepository, store storage.ObjectStore) *ProfileHandler {
	return &ProfileHandler{
		userRepository:   userRepo,
		followRepository: followRepo,
		objectStore:      store,
	}
}

// RegisterProfileRoutes registers the authenticated edit endpoint on
// the root and the public profile read under the API group.
func (h *ProfileHandler) RegisterProfileRoutes(e *echo.Echo, api *echo.Group) {
	e.PUT("/editprofile", h.EditProfile, middleware.RequireAuth())
	api.GET("/users/:id", h.GetUser)
}

// EditProfile overwrites the caller's first and last name and, when a
// new picture is supplied, uploads it and overwrites the stored URL.
func (h *ProfileHandler) EditProfile(c echo.Context) error {
	user := middleware.CurrentUser(c)
	ctx := c.Request().Context()

	form := forms.NewEditProfileForm(
		middleware.RequestCSRF(c),
		c.FormValue("first_name"),
		c.FormValue("last_name"),
	)
	if errs := form.Validate(); errs.Any() {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"message": "Bad Request",
			"error":   errs.First(),
		})
	}

	user.FirstName = form.FirstName
	user.LastName = form.LastName

	if url, failure, err := uploadFormFile(c, h.objectStore, "profile_pic"); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	} else if failure != nil {
		return c.JSON(http.StatusBadRequest, failure)
	} else if url != "" {
		user.ProfilePic = &url
	}

	if err := h.userRepository.UpdateUser(ctx, user); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to update user")
	}

	return c.JSON(http.StatusOK, echo.Map{"message": "Profile has been updated successfully"})
}

// GetUser returns a public profile with follow counts.
func (h *ProfileHandler) GetUser(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid user ID")
	}

	ctx := c.Request().Context()
	user, err := h.userRepository.GetUserByID(ctx, uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "User profile not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "Database error")
	}

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
