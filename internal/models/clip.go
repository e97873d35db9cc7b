package models

import "time"

// Clip is a video clip posted by a user.
type Clip struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"index"`
	User      User      `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	Title     string    `json:"title"`
	VideoURL  string    `json:"video_url"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateClipRequest defines the request body for posting a new clip.
type CreateClipRequest struct {
	Title    string `json:"title" form:"title" validate:"required,max=200"`
	VideoURL string `json:"video_url" form:"video_url" validate:"required,url"`
}
