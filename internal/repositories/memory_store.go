package repositories

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/soyeon-dev/sns-backend/internal/models"
)

type likeKey struct {
	postID uint
	userID uint
}

// MemoryStore is a mutex-guarded in-memory implementation of every storage
// interface in this package. It backs tests and local development; the mutex
// gives Transact full isolation, and a snapshot taken at transaction start
// provides rollback.
type MemoryStore struct {
	mu            sync.Mutex
	users         map[uint]*models.User
	posts         map[uint]*models.Post
	comments      map[uint]*models.Comment
	likes         map[likeKey]*models.Like
	nextUserID    uint
	nextPostID    uint
	nextCommentID uint
	nextLikeID    uint
}

// NewMemoryStore creates an empty MemoryStore
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		users:    make(map[uint]*models.User),
		posts:    make(map[uint]*models.Post),
		comments: make(map[uint]*models.Comment),
		likes:    make(map[likeKey]*models.Like),
	}
}

// --- UserRepository ---

// CreateUser stores a new user, rejecting duplicate nicknames
func (s *MemoryStore) CreateUser(ctx context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Nickname == user.Nickname {
			return ErrDuplicateNickname
		}
	}
	s.nextUserID++
	user.ID = s.nextUserID
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	cp := *user
	s.users[user.ID] = &cp
	return nil
}

// GetUserByID retrieves a user by ID
func (s *MemoryStore) GetUserByID(ctx context.Context, id uint) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[id]
	if !ok {
		return nil, ErrUserNotFound
	}
	cp := *u
	return &cp, nil
}

// GetUserByNickname retrieves a user by nickname
func (s *MemoryStore) GetUserByNickname(ctx context.Context, nickname string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Nickname == nickname {
			cp := *u
			return &cp, nil
		}
	}
	return nil, ErrUserNotFound
}

// --- PostRepository ---

// CreatePost stores a new post
func (s *MemoryStore) CreatePost(ctx context.Context, post *models.Post) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextPostID++
	post.ID = s.nextPostID
	post.CreatedAt = time.Now()
	post.UpdatedAt = post.CreatedAt
	cp := *post
	s.posts[post.ID] = &cp
	return nil
}

// GetPostByID retrieves a post by ID
func (s *MemoryStore) GetPostByID(ctx context.Context, id uint) (*models.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.getPost(id)
}

// GetAllPosts retrieves all posts, newest first
func (s *MemoryStore) GetAllPosts(ctx context.Context) ([]models.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	posts := make([]models.Post, 0, len(s.posts))
	for _, p := range s.posts {
		posts = append(posts, *p)
	}
	sort.Slice(posts, func(i, j int) bool {
		if posts[i].CreatedAt.Equal(posts[j].CreatedAt) {
			return posts[i].ID > posts[j].ID
		}
		return posts[i].CreatedAt.After(posts[j].CreatedAt)
	})
	return posts, nil
}

// GetPostsLikedByUser retrieves the posts a user has liked, most liked first
func (s *MemoryStore) GetPostsLikedByUser(ctx context.Context, userID uint) ([]models.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var posts []models.Post
	for key := range s.likes {
		if key.userID != userID {
			continue
		}
		if p, ok := s.posts[key.postID]; ok {
			posts = append(posts, *p)
		}
	}
	sort.Slice(posts, func(i, j int) bool {
		if posts[i].LikeCount == posts[j].LikeCount {
			return posts[i].ID < posts[j].ID
		}
		return posts[i].LikeCount > posts[j].LikeCount
	})
	return posts, nil
}

// UpdatePost updates the title and content of an existing post
func (s *MemoryStore) UpdatePost(ctx context.Context, id uint, title, content string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.posts[id]
	if !ok {
		return nil
	}
	p.Title = title
	p.Content = content
	p.UpdatedAt = time.Now()
	return nil
}

// DeletePost deletes a post together with its comments and likes
func (s *MemoryStore) DeletePost(ctx context.Context, id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.posts[id]; !ok {
		return ErrPostNotFound
	}
	delete(s.posts, id)
	for cid, c := range s.comments {
		if c.PostID == id {
			delete(s.comments, cid)
		}
	}
	for key := range s.likes {
		if key.postID == id {
			delete(s.likes, key)
		}
	}
	return nil
}

// --- CommentRepository ---

// CreateComment stores a new comment
func (s *MemoryStore) CreateComment(ctx context.Context, comment *models.Comment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextCommentID++
	comment.ID = s.nextCommentID
	comment.CreatedAt = time.Now()
	comment.UpdatedAt = comment.CreatedAt
	cp := *comment
	s.comments[comment.ID] = &cp
	return nil
}

// GetCommentByID retrieves a comment by ID
func (s *MemoryStore) GetCommentByID(ctx context.Context, id uint) (*models.Comment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.comments[id]
	if !ok {
		return nil, ErrCommentNotFound
	}
	cp := *c
	return &cp, nil
}

// GetCommentsByPostID retrieves all comments for a post, newest first
func (s *MemoryStore) GetCommentsByPostID(ctx context.Context, postID uint) ([]models.Comment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var comments []models.Comment
	for _, c := range s.comments {
		if c.PostID == postID {
			comments = append(comments, *c)
		}
	}
	sort.Slice(comments, func(i, j int) bool {
		if comments[i].CreatedAt.Equal(comments[j].CreatedAt) {
			return comments[i].ID > comments[j].ID
		}
		return comments[i].CreatedAt.After(comments[j].CreatedAt)
	})
	return comments, nil
}

// UpdateComment updates the body of an existing comment
func (s *MemoryStore) UpdateComment(ctx context.Context, id uint, comment string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.comments[id]
	if !ok {
		return nil
	}
	c.Comment = comment
	c.UpdatedAt = time.Now()
	return nil
}

// DeleteComment deletes a comment by ID
func (s *MemoryStore) DeleteComment(ctx context.Context, id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.comments[id]; !ok {
		return ErrCommentNotFound
	}
	delete(s.comments, id)
	return nil
}

// --- LikeStore ---

// GetLike retrieves the like row for a (post, user) pair
func (s *MemoryStore) GetLike(ctx context.Context, postID, userID uint) (*models.Like, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.getLike(postID, userID)
}

// CreateLike inserts a like row, rejecting a duplicate pair
func (s *MemoryStore) CreateLike(ctx context.Context, like *models.Like) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.createLike(like)
}

// DeleteLike removes the like row for a (post, user) pair
func (s *MemoryStore) DeleteLike(ctx context.Context, postID, userID uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.deleteLike(postID, userID)
}

// IncrementLikeCount adds one to the post's like counter
func (s *MemoryStore) IncrementLikeCount(ctx context.Context, postID uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.addToLikeCount(postID, 1)
}

// DecrementLikeCount subtracts one from the post's like counter
func (s *MemoryStore) DecrementLikeCount(ctx context.Context, postID uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.addToLikeCount(postID, -1)
}

// Transact serializes the transaction under the store mutex and restores a
// snapshot of all tables if fn fails, so callers observe either the whole
// effect or none of it.
func (s *MemoryStore) Transact(ctx context.Context, fn func(tx LikeStore) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := s.snapshot()
	if err := fn(&memoryTx{store: s}); err != nil {
		s.restore(snap)
		return err
	}
	return nil
}

// unlocked helpers, callers hold s.mu

func (s *MemoryStore) getPost(id uint) (*models.Post, error) {
	p, ok := s.posts[id]
	if !ok {
		return nil, ErrPostNotFound
	}
	cp := *p
	return &cp, nil
}

func (s *MemoryStore) getLike(postID, userID uint) (*models.Like, error) {
	l, ok := s.likes[likeKey{postID: postID, userID: userID}]
	if !ok {
		return nil, ErrLikeNotFound
	}
	cp := *l
	return &cp, nil
}

func (s *MemoryStore) createLike(like *models.Like) error {
	key := likeKey{postID: like.PostID, userID: like.UserID}
	if _, ok := s.likes[key]; ok {
		return ErrDuplicateLike
	}
	s.nextLikeID++
	like.ID = s.nextLikeID
	like.CreatedAt = time.Now()
	like.UpdatedAt = like.CreatedAt
	cp := *like
	s.likes[key] = &cp
	return nil
}

func (s *MemoryStore) deleteLike(postID, userID uint) error {
	key := likeKey{postID: postID, userID: userID}
	if _, ok := s.likes[key]; !ok {
		return ErrLikeNotFound
	}
	delete(s.likes, key)
	return nil
}

func (s *MemoryStore) addToLikeCount(postID uint, delta int) error {
	p, ok := s.posts[postID]
	if !ok {
		return ErrPostNotFound
	}
	p.LikeCount += delta
	p.UpdatedAt = time.Now()
	return nil
}

type memorySnapshot struct {
	users    map[uint]*models.User
	posts    map[uint]*models.Post
	comments map[uint]*models.Comment
	likes    map[likeKey]*models.Like
	counters [4]uint
}

func (s *MemoryStore) snapshot() memorySnapshot {
	snap := memorySnapshot{
		users:    make(map[uint]*models.User, len(s.users)),
		posts:    make(map[uint]*models.Post, len(s.posts)),
		comments: make(map[uint]*models.Comment, len(s.comments)),
		likes:    make(map[likeKey]*models.Like, len(s.likes)),
		counters: [4]uint{s.nextUserID, s.nextPostID, s.nextCommentID, s.nextLikeID},
	}
	for id, u := range s.users {
		cp := *u
		snap.users[id] = &cp
	}
	for id, p := range s.posts {
		cp := *p
		snap.posts[id] = &cp
	}
	for id, c := range s.comments {
		cp := *c
		snap.comments[id] = &cp
	}
	for key, l := range s.likes {
		cp := *l
		snap.likes[key] = &cp
	}
	return snap
}

func (s *MemoryStore) restore(snap memorySnapshot) {
	s.users = snap.users
	s.posts = snap.posts
	s.comments = snap.comments
	s.likes = snap.likes
	s.nextUserID = snap.counters[0]
	s.nextPostID = snap.counters[1]
	s.nextCommentID = snap.counters[2]
	s.nextLikeID = snap.counters[3]
}

// memoryTx is the transaction-scoped view handed to Transact callbacks. The
// outer Transact already holds the store mutex, so methods here touch the
// maps directly.
type memoryTx struct {
	store *MemoryStore
}

func (t *memoryTx) GetPostByID(ctx context.Context, postID uint) (*models.Post, error) {
	return t.store.getPost(postID)
}

func (t *memoryTx) GetLike(ctx context.Context, postID, userID uint) (*models.Like, error) {
	return t.store.getLike(postID, userID)
}

func (t *memoryTx) CreateLike(ctx context.Context, like *models.Like) error {
	return t.store.createLike(like)
}

func (t *memoryTx) DeleteLike(ctx context.Context, postID, userID uint) error {
	return t.store.deleteLike(postID, userID)
}

func (t *memoryTx) IncrementLikeCount(ctx context.Context, postID uint) error {
	return t.store.addToLikeCount(postID, 1)
}

func (t *memoryTx) DecrementLikeCount(ctx context.Context, postID uint) error {
	return t.store.addToLikeCount(postID, -1)
}

func (t *memoryTx) Transact(ctx context.Context, fn func(tx LikeStore) error) error {
	return fn(t)
}
