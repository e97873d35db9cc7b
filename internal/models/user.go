package models

import "time"

type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	Username     string    `json:"username" gorm:"uniqueIndex"` // Unique across all users
	Email        string    `json:"email" gorm:"uniqueIndex"`    // Unique across all users
	PasswordHash string    `json:"-"`                           // bcrypt hash, never serialized
	ProfilePic   *string   `json:"profile_pic"`                 // Public URL in the object store, nil when unset
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// UserView is the public-safe projection of a User returned to clients.
type UserView struct {
	ID         uint    `json:"id"`
	FirstName  string  `json:"first_name"`
	LastName   string  `json:"last_name"`
	Username   string  `json:"username"`
	Email      string  `json:"email"`
	ProfilePic *string `json:"profile_pic"`
}

// ProfileView is a UserView enriched with follow-graph counts.
type ProfileView struct {
	UserView
	FollowersCount int64 `json:"followers_count"`
	FollowingCount int64 `json:"following_count"`
}

// View returns the public projection of the user.
func (u *User) View() UserView {
	return UserView{
		ID:         u.ID,
		FirstName:  u.FirstName,
		LastName:   u.LastName,
		Username:   u.Username,
		Email:      u.Email,
		ProfilePic: u.ProfilePic,
	}
}
