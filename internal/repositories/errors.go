package repositories

import "errors"

// Sentinel errors shared by all store implementations. Handlers map these to
// HTTP statuses; nothing below the handler boundary knows about HTTP.
var (
	ErrUserNotFound      = errors.New("user not found")
	ErrPostNotFound      = errors.New("post not found")
	ErrCommentNotFound   = errors.New("comment not found")
	ErrLikeNotFound      = errors.New("like not found")
	ErrDuplicateNickname = errors.New("nickname already in use")
	ErrDuplicateLike     = errors.New("like already exists")
)
