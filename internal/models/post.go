package models

import "time"

// Post represents a user-authored post. Nickname is a denormalized display
// copy of the owner's nickname; UserID is the authorization key. LikeCount
// caches the cardinality of the post's like rows and is mutated only through
// the like toggle's transactional path.
type Post struct {
	ID        uint      `json:"postId" gorm:"primaryKey"`
	UserID    uint      `json:"userId" gorm:"index;not null"`
	Nickname  string    `json:"nickname" gorm:"not null"`
	Title     string    `json:"title" gorm:"not null"`
	Content   string    `json:"content" gorm:"not null"`
	LikeCount int       `json:"likes" gorm:"column:likes;not null;default:0"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CreatePostRequest defines the request body for creating a new post
type CreatePostRequest struct {
	Title   string `json:"title" validate:"required"`
	Content string `json:"content" validate:"required"`
}

// UpdatePostRequest defines the request body for updating an existing post
type UpdatePostRequest struct {
	Title   string `json:"title" validate:"required"`
	Content string `json:"content" validate:"required"`
}
