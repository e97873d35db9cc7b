package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/cliphaven/backend/internal/middleware"
	"github.com/cliphaven/backend/internal/models"
	"github.com/cliphaven/backend/internal/repositories"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// ClipHandler handles HTTP requests related to clips
type ClipHandler struct {
	clipRepository repositories.ClipRepository
}

// NewClipHandler creates a new ClipHandler
func NewClipHandler(clipRepo repositories.ClipRepository) *ClipHandler {
	return &ClipHandler{clipRepository: clipRepo}
}

// RegisterClipRoutes registers clip-related routes
func (h *ClipHandler) RegisterClipRoutes(g *echo.Group) {
	g.GET("/clips", h.GetClips)
	g.GET("/clips/:id", h.GetClip)
	g.POST("/clips", h.CreateClip, middleware.RequireAuth())
	g.DELETE("/clips/:id", h.DeleteClip, middleware.RequireAuth())
}

// GetClips lists all clips, newest first
func (h *ClipHandler) GetClips(c echo.Context) error {
	clips, err := h.clipRepository.GetClips(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Database error")
	}
	return c.JSON(http.StatusOK, clips)
}

// GetClip retrieves a single clip by ID
func (h *ClipHandler) GetClip(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid clip ID")
	}

	clip, err := h.clipRepository.GetClipByID(c.Request().Context(), uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Clip not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "Database error")
	}
	return c.JSON(http.StatusOK, clip)
}

// CreateClip posts a new clip owned by the caller
func (h *ClipHandler) CreateClip(c echo.Context) error {
	currentUser := middleware.CurrentUser(c)

	var req models.CreateClipRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	clip := &models.Clip{
		UserID:   currentUser.ID,
		Title:    req.Title,
		VideoURL: req.VideoURL,
	}
	if err := h.clipRepository.CreateClip(c.Request().Context(), clip); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Database error")
	}

	return c.JSON(http.StatusCreated, clip)
}

// DeleteClip removes a clip owned by the caller. Comments on the clip
// go with it.
func (h *ClipHandler) DeleteClip(c echo.Context) error {
	currentUser := middleware.CurrentUser(c)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid clip ID")
	}

	ctx := c.Request().Context()
	clip, err := h.clipRepository.GetClipByID(ctx, uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Clip not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "Database error")
	}
	if clip.UserID != currentUser.ID {
		return echo.NewHTTPError(http.StatusForbidden, "Not the clip owner")
	}

	if err := h.clipRepository.DeleteClip(ctx, clip.ID); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Database error")
	}
	return c.NoContent(http.StatusNoContent)
}
