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

// CommentHandler handles HTTP requests related to comments
type CommentHandler struct {
	commentRepository repositories.CommentRepository
	clipRepository    repositories.ClipRepository
}

// NewCommentHandler creates a new CommentHandler
func NewCommentHandler(commentRepo repositories.CommentRepository, clipRepo repositories.ClipRepository) *CommentHandler {
	return &CommentHandler{
		commentRepository: commentRepo,
		clipRepository:    clipRepo,
	}
}

// RegisterCommentRoutes registers comment-related routes
func (h *CommentHandler) RegisterCommentRoutes(g *echo.Group) {
	g.POST("/clips/:clip_id/comments", h.CreateComment, middleware.RequireAuth())
	g.GET("/clips/:clip_id/comments", h.GetCommentsByClipID)
	g.PUT("/comments/:id", h.UpdateComment, middleware.RequireAuth())
	g.DELETE("/comments/:id", h.DeleteComment, middleware.RequireAuth())
}

// CreateComment creates a new comment on a clip
func (h *CommentHandler) CreateComment(c echo.Context) error {
	currentUser := middleware.CurrentUser(c)

	clipID, err := strconv.ParseUint(c.Param("clip_id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid clip ID")
	}

	var req models.CreateCommentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	ctx := c.Request().Context()

	// Verify clip exists
	if _, err := h.clipRepository.GetClipByID(ctx, uint(clipID)); err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Clip not found")
	}

	comment := &models.Comment{
		UserID: currentUser.ID,
		ClipID: uint(clipID),
		Body:   req.Body,
	}
	if err := h.commentRepository.CreateComment(ctx, comment); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Database error")
	}

	return c.JSON(http.StatusCreated, models.CommentView{
		ID:      comment.ID,
		UserID:  comment.UserID,
		ClipID:  comment.ClipID,
		Body:    comment.Body,
		Creator: currentUser.Username,
	})
}

// GetCommentsByClipID retrieves all comments for a specific clip
func (h *CommentHandler) GetCommentsByClipID(c echo.Context) error {
	clipID, err := strconv.ParseUint(c.Param("clip_id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid clip ID")
	}

	ctx := c.Request().Context()

	// Verify clip exists
	if _, err := h.clipRepository.GetClipByID(ctx, uint(clipID)); err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Clip not found")
	}

	comments, err := h.commentRepository.GetCommentsByClipID(ctx, uint(clipID))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Database error")
	}
	return c.JSON(http.StatusOK, comments)
}

// UpdateComment updates a comment authored by the caller
func (h *CommentHandler) UpdateComment(c echo.Context) error {
	currentUser := middleware.CurrentUser(c)

	commentID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid comment ID")
	}

	var req models.UpdateCommentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	ctx := c.Request().Context()
	comment, err := h.commentRepository.GetCommentByID(ctx, uint(commentID))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Comment not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "Database error")
	}
	if comment.UserID != currentUser.ID {
		return echo.NewHTTPError(http.StatusForbidden, "Not the comment author")
	}

	comment.Body = req.Body
	if err := h.commentRepository.UpdateComment(ctx, comment); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Database error")
	}

	return c.JSON(http.StatusOK, models.CommentView{
		ID:      comment.ID,
		UserID:  comment.UserID,
		ClipID:  comment.ClipID,
		Body:    comment.Body,
		Creator: currentUser.Username,
	})
}

// DeleteComment removes a comment authored by the caller
func (h *CommentHandler) DeleteComment(c echo.Context) error {
	currentUser := middleware.CurrentUser(c)

	commentID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid comment ID")
	}

	ctx := c.Request().Context()
	comment, err := h.commentRepository.GetCommentByID(ctx, uint(commentID))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Comment not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "Database error")
	}
	if comment.UserID != currentUser.ID {
		return echo.NewHTTPError(http.StatusForbidden, "Not the comment author")
	}

	if err := h.commentRepository.DeleteComment(ctx, comment.ID); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Database error")
	}
	return c.NoContent(http.StatusNoContent)
}
