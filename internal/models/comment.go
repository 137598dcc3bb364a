package models

import "time"

// Comment represents a comment on a post. Ownership semantics mirror Post:
// UserID is the authorization key, Nickname a display copy.
type Comment struct {
	ID        uint      `json:"commentId" gorm:"primaryKey"`
	PostID    uint      `json:"postId" gorm:"index;not null"`
	UserID    uint      `json:"userId" gorm:"index;not null"`
	Nickname  string    `json:"nickname" gorm:"not null"`
	Comment   string    `json:"comment" gorm:"not null"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CreateCommentRequest defines the request body for creating a new comment
type CreateCommentRequest struct {
	Comment string `json:"comment" validate:"required"`
}

// UpdateCommentRequest defines the request body for updating an existing comment
type UpdateCommentRequest struct {
	Comment string `json:"comment" validate:"required"`
}
