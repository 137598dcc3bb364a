package models

import "time"

// User represents a registered account. Nicknames are unique and immutable
// after signup; the password column holds whatever the active password
// scheme produced (bcrypt digest by default).
type User struct {
	ID        uint      `json:"userId" gorm:"primaryKey"`
	Nickname  string    `json:"nickname" gorm:"uniqueIndex;not null"`
	Password  string    `json:"-" gorm:"not null"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// SignupRequest defines the request body for user registration
type SignupRequest struct {
	Nickname string `json:"nickname" validate:"required,alphanum,min=3"`
	Password string `json:"password" validate:"required,min=4"`
	Confirm  string `json:"confirm" validate:"required"`
}

// LoginRequest defines the request body for user login
type LoginRequest struct {
	Nickname string `json:"nickname" validate:"required"`
	Password string `json:"password" validate:"required"`
}
