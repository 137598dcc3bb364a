package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/soyeon-dev/sns-backend/internal/models"
	"gorm.io/gorm"
)

// LikeStore is the transactional boundary of the like toggle. Transact runs
// the given function against a store view scoped to a single transaction at
// read-committed isolation; an error from the function rolls the whole unit
// back. The counter methods apply atomic SQL deltas against the then-current
// stored value, never a value read earlier.
type LikeStore interface {
	GetPostByID(ctx context.Context, postID uint) (*models.Post, error)
	GetLike(ctx context.Context, postID, userID uint) (*models.Like, error)
	CreateLike(ctx context.Context, like *models.Like) error
	DeleteLike(ctx context.Context, postID, userID uint) error
	IncrementLikeCount(ctx context.Context, postID uint) error
	DecrementLikeCount(ctx context.Context, postID uint) error
	Transact(ctx context.Context, fn func(tx LikeStore) error) error
}

// PostgresLikeStore implements LikeStore for PostgreSQL
type PostgresLikeStore struct {
	db *gorm.DB
}

// NewPostgresLikeStore creates a new PostgresLikeStore
func NewPostgresLikeStore(db *gorm.DB) *PostgresLikeStore {
	return &PostgresLikeStore{db: db}
}

// GetPostByID retrieves a post by ID
func (s *PostgresLikeStore) GetPostByID(ctx context.Context, postID uint) (*models.Post, error) {
	var post models.Post
	if err := s.db.WithContext(ctx).First(&post, postID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}
	return &post, nil
}

// GetLike retrieves the like row for a (post, user) pair
func (s *PostgresLikeStore) GetLike(ctx context.Context, postID, userID uint) (*models.Like, error) {
	var like models.Like
	err := s.db.WithContext(ctx).Where("post_id = ? AND user_id = ?", postID, userID).First(&like).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLikeNotFound
		}
		return nil, err
	}
	return &like, nil
}

// CreateLike inserts a like row. The composite unique index on
// (post_id, user_id) rejects a second row for the same pair; the loser of a
// concurrent same-pair race gets ErrDuplicateLike.
func (s *PostgresLikeStore) CreateLike(ctx context.Context, like *models.Like) error {
	if err := s.db.WithContext(ctx).Create(like).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateLike
		}
		return err
	}
	return nil
}

// DeleteLike removes the like row for a (post, user) pair
func (s *PostgresLikeStore) DeleteLike(ctx context.Context, postID, userID uint) error {
	res := s.db.WithContext(ctx).Where("post_id = ? AND user_id = ?", postID, userID).Delete(&models.Like{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrLikeNotFound
	}
	return nil
}

// IncrementLikeCount adds one to the post's like counter in place
func (s *PostgresLikeStore) IncrementLikeCount(ctx context.Context, postID uint) error {
	return s.db.WithContext(ctx).Model(&models.Post{}).Where("id = ?", postID).
		UpdateColumn("likes", gorm.Expr("likes + ?", 1)).Error
}

// DecrementLikeCount subtracts one from the post's like counter in place
func (s *PostgresLikeStore) DecrementLikeCount(ctx context.Context, postID uint) error {
	return s.db.WithContext(ctx).Model(&models.Post{}).Where("id = ?", postID).
		UpdateColumn("likes", gorm.Expr("likes - ?", 1)).Error
}

// Transact runs fn inside one database transaction at read-committed
// isolation. fn receives a store bound to the transaction handle so every
// read and write inside it shares the same scope.
func (s *PostgresLikeStore) Transact(ctx context.Context, fn func(tx LikeStore) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&PostgresLikeStore{db: tx})
	}, &sql.TxOptions{Isolation: sql.LevelReadCommitted})
}
