package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/soyeon-dev/sns-backend/internal/auth"
	"github.com/soyeon-dev/sns-backend/internal/middleware"
	"github.com/soyeon-dev/sns-backend/internal/models"
	"github.com/soyeon-dev/sns-backend/internal/repositories"
)

// CommentHandler handles HTTP requests related to comments
type CommentHandler struct {
	commentRepository repositories.CommentRepository
	postRepository    repositories.PostRepository
}

// NewCommentHandler creates a new CommentHandler
func NewCommentHandler(commentRepo repositories.CommentRepository, postRepo repositories.PostRepository) *CommentHandler {
	return &CommentHandler{
		commentRepository: commentRepo,
		postRepository:    postRepo,
	}
}

// RegisterCommentRoutes registers comment routes under their parent post
func (h *CommentHandler) RegisterCommentRoutes(public, protected *echo.Group) {
	public.GET("/posts/:postId/comments", h.GetComments)
	protected.POST("/posts/:postId/comments", h.CreateComment)
	protected.PUT("/posts/:postId/comments/:commentId", h.UpdateComment)
	protected.DELETE("/posts/:postId/comments/:commentId", h.DeleteComment)
}

// lookupPost confirms the parent post exists; every comment operation 404s
// without it.
func (h *CommentHandler) lookupPost(c echo.Context) (uint, bool) {
	postID, ok := parseID(c, "postId")
	if !ok {
		return 0, false
	}
	if _, err := h.postRepository.GetPostByID(c.Request().Context(), postID); err != nil {
		return 0, false
	}
	return postID, true
}

// GetComments lists a post's comments, newest first
func (h *CommentHandler) GetComments(c echo.Context) error {
	postID, ok := h.lookupPost(c)
	if !ok {
		return c.JSON(http.StatusNotFound, echo.Map{"errorMessage": "Post does not exist."})
	}

	comments, err := h.commentRepository.GetCommentsByPostID(c.Request().Context(), postID)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"errorMessage": "Failed to fetch comments."})
	}
	return c.JSON(http.StatusOK, echo.Map{"comments": comments})
}

// CreateComment adds a comment to an existing post, owned by the caller
func (h *CommentHandler) CreateComment(c echo.Context) error {
	identity, ok := middleware.IdentityFrom(c)
	if !ok {
		return c.JSON(http.StatusPreconditionFailed, echo.Map{"errorMessage": "Login is required."})
	}

	postID, ok := h.lookupPost(c)
	if !ok {
		return c.JSON(http.StatusNotFound, echo.Map{"errorMessage": "Post does not exist."})
	}

	var req models.CreateCommentRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"errorMessage": "Failed to write the comment."})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusPreconditionFailed, echo.Map{"errorMessage": "Comment format is invalid."})
	}

	comment := &models.Comment{
		PostID:   postID,
		UserID:   identity.UserID,
		Nickname: identity.Nickname,
		Comment:  req.Comment,
	}
	if err := h.commentRepository.CreateComment(c.Request().Context(), comment); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"errorMessage": "Failed to write the comment."})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Comment created."})
}

// UpdateComment edits a comment after the identity, lookup and ownership
// checks pass, in that order.
func (h *CommentHandler) UpdateComment(c echo.Context) error {
	identity, ok := middleware.IdentityFrom(c)
	if !ok {
		return c.JSON(http.StatusPreconditionFailed, echo.Map{"errorMessage": "Login is required."})
	}

	if _, ok := h.lookupPost(c); !ok {
		return c.JSON(http.StatusNotFound, echo.Map{"errorMessage": "Post does not exist."})
	}

	commentID, ok := parseID(c, "commentId")
	if !ok {
		return c.JSON(http.StatusNotFound, echo.Map{"errorMessage": "Comment does not exist."})
	}

	var req models.UpdateCommentRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"errorMessage": "Failed to edit the comment."})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusPreconditionFailed, echo.Map{"errorMessage": "Comment format is invalid."})
	}

	comment, err := h.commentRepository.GetCommentByID(c.Request().Context(), commentID)
	if err != nil {
		if err == repositories.ErrCommentNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"errorMessage": "Comment does not exist."})
		}
		return c.JSON(http.StatusBadRequest, echo.Map{"errorMessage": "Failed to edit the comment."})
	}

	if !auth.CanModify(identity, comment.UserID) {
		return c.JSON(http.StatusForbidden, echo.Map{"errorMessage": "You do not have permission to edit this comment."})
	}

	if err := h.commentRepository.UpdateComment(c.Request().Context(), commentID, req.Comment); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"errorMessage": "Failed to edit the comment."})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Comment updated."})
}

// DeleteComment removes a comment after the identity, lookup and ownership
// checks pass.
func (h *CommentHandler) DeleteComment(c echo.Context) error {
	identity, ok := middleware.IdentityFrom(c)
	if !ok {
		return c.JSON(http.StatusPreconditionFailed, echo.Map{"errorMessage": "Login is required."})
	}

	if _, ok := h.lookupPost(c); !ok {
		return c.JSON(http.StatusNotFound, echo.Map{"errorMessage": "Post does not exist."})
	}

	commentID, ok := parseID(c, "commentId")
	if !ok {
		return c.JSON(http.StatusNotFound, echo.Map{"errorMessage": "Comment does not exist."})
	}

	comment, err := h.commentRepository.GetCommentByID(c.Request().Context(), commentID)
	if err != nil {
		if err == repositories.ErrCommentNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"errorMessage": "Comment does not exist."})
		}
		return c.JSON(http.StatusBadRequest, echo.Map{"errorMessage": "Failed to delete the comment."})
	}

	if !auth.CanModify(identity, comment.UserID) {
		return c.JSON(http.StatusForbidden, echo.Map{"errorMessage": "You do not have permission to delete this comment."})
	}

	if err := h.commentRepository.DeleteComment(c.Request().Context(), commentID); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"errorMessage": "Failed to delete the comment."})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Comment deleted."})
}
