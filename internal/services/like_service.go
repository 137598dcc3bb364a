package services

import (
	"context"
	"errors"

	"github.com/soyeon-dev/sns-backend/internal/models"
	"github.com/soyeon-dev/sns-backend/internal/repositories"
)

// ToggleOutcome tells the caller which way a toggle flipped.
type ToggleOutcome string

const (
	// LikeRegistered means the user had not liked the post and now has.
	LikeRegistered ToggleOutcome = "registered"
	// LikeCancelled means the user had liked the post and no longer does.
	LikeCancelled ToggleOutcome = "cancelled"
)

// LikeService flips a user's like on a post while keeping the post's
// denormalized like counter consistent with the join rows.
type LikeService struct {
	store repositories.LikeStore
}

// NewLikeService creates a new LikeService
func NewLikeService(store repositories.LikeStore) *LikeService {
	return &LikeService{store: store}
}

// Toggle registers or cancels a like for the (post, user) pair. The post
// existence check, the join-row flip, and the counter delta run inside one
// storage transaction: any failure rolls the whole unit back, so a like row
// without its counter update (or the reverse) is never observable. Two
// concurrent toggles for the same pair race on the store's unique index;
// the loser's transaction fails whole.
func (s *LikeService) Toggle(ctx context.Context, postID, userID uint) (ToggleOutcome, error) {
	var outcome ToggleOutcome
	err := s.store.Transact(ctx, func(tx repositories.LikeStore) error {
		if _, err := tx.GetPostByID(ctx, postID); err != nil {
			return err
		}

		_, err := tx.GetLike(ctx, postID, userID)
		switch {
		case err == nil:
			if err := tx.DeleteLike(ctx, postID, userID); err != nil {
				return err
			}
			if err := tx.DecrementLikeCount(ctx, postID); err != nil {
				return err
			}
			outcome = LikeCancelled
		case errors.Is(err, repositories.ErrLikeNotFound):
			like := &models.Like{PostID: postID, UserID: userID}
			if err := tx.CreateLike(ctx, like); err != nil {
				return err
			}
			if err := tx.IncrementLikeCount(ctx, postID); err != nil {
				return err
			}
			outcome = LikeRegistered
		default:
			return err
		}
		return nil
	})
	if err != nil {
		return "", err
	}
	return outcome, nil
}
