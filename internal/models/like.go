package models

import "time"

// Like is the join row recording that one user has liked one post. The
// composite unique index is the arbiter of concurrent same-pair toggles:
// the storage layer, not the caller, enforces at most one row per pair.
type Like struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	PostID    uint      `json:"postId" gorm:"uniqueIndex:idx_likes_post_user;not null"`
	UserID    uint      `json:"userId" gorm:"uniqueIndex:idx_likes_post_user;not null"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
