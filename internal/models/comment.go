package models

import "time"

// Comment belongs to exactly one User (the author) and one Clip.
// Deleting either cascades to the comment.
type Comment struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"index"`
	User      User      `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	ClipID    uint      `json:"clip_id" gorm:"index"`
	Clip      Clip      `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	Body      string    `json:"body" gorm:"type:text"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CommentView resolves the author's username alongside the comment row.
type CommentView struct {
	ID      uint   `json:"id"`
	UserID  uint   `json:"user_id"`
	ClipID  uint   `json:"clip_id"`
	Body    string `json:"body"`
	Creator string `json:"creator"`
}

// CreateCommentRequest defines the request body for commenting on a clip.
type CreateCommentRequest struct {
	Body string `json:"body" form:"body" validate:"required,min=1,max=2000"`
}

// UpdateCommentRequest defines the request body for editing a comment.
type UpdateCommentRequest struct {
	Body string `json:"body" form:"body" validate:"required,min=1,max=2000"`
}
