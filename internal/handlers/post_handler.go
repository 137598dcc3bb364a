package handlers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/soyeon-dev/sns-backend/internal/auth"
	"github.com/soyeon-dev/sns-backend/internal/middleware"
	"github.com/soyeon-dev/sns-backend/internal/models"
	"github.com/soyeon-dev/sns-backend/internal/repositories"
	"github.com/soyeon-dev/sns-backend/validators"
)

// PostHandler handles HTTP requests related to posts
type PostHandler struct {
	postRepository repositories.PostRepository
}

// NewPostHandler creates a new PostHandler
func NewPostHandler(postRepo repositories.PostRepository) *PostHandler {
	return &PostHandler{postRepository: postRepo}
}

// RegisterPostRoutes registers post routes. Reads need no identity and go on
// the public group; writes go on the protected group.
func (h *PostHandler) RegisterPostRoutes(public, protected *echo.Group) {
	public.GET("/posts", h.GetPosts)
	public.GET("/posts/:postId", h.GetPost)
	protected.POST("/posts", h.CreatePost)
	protected.PUT("/posts/:postId", h.UpdatePost)
	protected.DELETE("/posts/:postId", h.DeletePost)
}

// parseID turns a path parameter into a row ID. An unparsable value cannot
// name an existing resource, so callers treat the failure as not-found.
func parseID(c echo.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

func postValidationMessage(err error) string {
	if validators.FailedField(err) == "Title" {
		return "Post title format is invalid."
	}
	return "Post content format is invalid."
}

// CreatePost creates a post owned by the caller. No ownership check: the
// creator becomes the owner.
func (h *PostHandler) CreatePost(c echo.Context) error {
	identity, ok := middleware.IdentityFrom(c)
	if !ok {
		return c.JSON(http.StatusPreconditionFailed, echo.Map{"errorMessage": "Login is required."})
	}

	var req models.CreatePostRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"errorMessage": "Failed to write the post."})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusPreconditionFailed, echo.Map{"errorMessage": postValidationMessage(err)})
	}

	post := &models.Post{
		UserID:   identity.UserID,
		Nickname: identity.Nickname,
		Title:    req.Title,
		Content:  req.Content,
	}
	if err := h.postRepository.CreatePost(c.Request().Context(), post); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"errorMessage": "Failed to write the post."})
	}

	return c.JSON(http.StatusCreated, echo.Map{"message": "Post created successfully."})
}

// GetPosts lists all posts, newest first
func (h *PostHandler) GetPosts(c echo.Context) error {
	posts, err := h.postRepository.GetAllPosts(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"errorMessage": "Failed to fetch posts."})
	}
	return c.JSON(http.StatusOK, echo.Map{"posts": posts})
}

// GetPost retrieves one post with its current like count
func (h *PostHandler) GetPost(c echo.Context) error {
	postID, ok := parseID(c, "postId")
	if !ok {
		return c.JSON(http.StatusNotFound, echo.Map{"errorMessage": "Post does not exist."})
	}

	post, err := h.postRepository.GetPostByID(c.Request().Context(), postID)
	if err != nil {
		if err == repositories.ErrPostNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"errorMessage": "Post does not exist."})
		}
		return c.JSON(http.StatusBadRequest, echo.Map{"errorMessage": "Failed to fetch the post."})
	}
	return c.JSON(http.StatusOK, echo.Map{"post": post})
}

// UpdatePost edits a post after the identity, lookup and ownership checks
// pass, in that order.
func (h *PostHandler) UpdatePost(c echo.Context) error {
	identity, ok := middleware.IdentityFrom(c)
	if !ok {
		return c.JSON(http.StatusPreconditionFailed, echo.Map{"errorMessage": "Login is required."})
	}

	postID, ok := parseID(c, "postId")
	if !ok {
		return c.JSON(http.StatusNotFound, echo.Map{"errorMessage": "Post does not exist."})
	}

	var req models.UpdatePostRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"errorMessage": "Failed to edit the post."})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusPreconditionFailed, echo.Map{"errorMessage": postValidationMessage(err)})
	}

	post, err := h.postRepository.GetPostByID(c.Request().Context(), postID)
	if err != nil {
		if err == repositories.ErrPostNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"errorMessage": "Post does not exist."})
		}
		return c.JSON(http.StatusBadRequest, echo.Map{"errorMessage": "Failed to edit the post."})
	}

	if !auth.CanModify(identity, post.UserID) {
		return c.JSON(http.StatusForbidden, echo.Map{"errorMessage": "You do not have permission to edit this post."})
	}

	if err := h.postRepository.UpdatePost(c.Request().Context(), postID, req.Title, req.Content); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"errorMessage": "Failed to edit the post."})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Post updated."})
}

// DeletePost removes a post and, with it, its comments and likes
func (h *PostHandler) DeletePost(c echo.Context) error {
	identity, ok := middleware.IdentityFrom(c)
	if !ok {
		return c.JSON(http.StatusPreconditionFailed, echo.Map{"errorMessage": "Login is required."})
	}

	postID, ok := parseID(c, "postId")
	if !ok {
		return c.JSON(http.StatusNotFound, echo.Map{"errorMessage": "Post does not exist."})
	}

	post, err := h.postRepository.GetPostByID(c.Request().Context(), postID)
	if err != nil {
		if err == repositories.ErrPostNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"errorMessage": "Post does not exist."})
		}
		return c.JSON(http.StatusBadRequest, echo.Map{"errorMessage": "Failed to delete the post."})
	}

	if !auth.CanModify(identity, post.UserID) {
		return c.JSON(http.StatusForbidden, echo.Map{"errorMessage": "You do not have permission to delete this post."})
	}

	if err := h.postRepository.DeletePost(c.Request().Context(), postID); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"errorMessage": "Failed to delete the post."})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Post deleted."})
}
