package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/soyeon-dev/sns-backend/internal/middleware"
	"github.com/soyeon-dev/sns-backend/internal/repositories"
	"github.com/soyeon-dev/sns-backend/internal/services"
)

// LikeHandler handles the like toggle and the caller's liked-post listing
type LikeHandler struct {
	likeService    *services.LikeService
	postRepository repositories.PostRepository
}

// NewLikeHandler creates a new LikeHandler
func NewLikeHandler(likeService *services.LikeService, postRepo repositories.PostRepository) *LikeHandler {
	return &LikeHandler{
		likeService:    likeService,
		postRepository: postRepo,
	}
}

// RegisterLikeRoutes registers like-related routes; both require identity
func (h *LikeHandler) RegisterLikeRoutes(protected *echo.Group) {
	protected.PUT("/posts/:postId/like", h.ToggleLike)
	protected.GET("/like", h.GetLikedPosts)
}

// ToggleLike flips the caller's like on a post. The service runs the whole
// flip in one transaction; any failure there means nothing changed.
func (h *LikeHandler) ToggleLike(c echo.Context) error {
	identity, ok := middleware.IdentityFrom(c)
	if !ok {
		return c.JSON(http.StatusPreconditionFailed, echo.Map{"errorMessage": "Login is required."})
	}

	postID, ok := parseID(c, "postId")
	if !ok {
		return c.JSON(http.StatusNotFound, echo.Map{"errorMessage": "Post does not exist."})
	}

	outcome, err := h.likeService.Toggle(c.Request().Context(), postID, identity.UserID)
	if err != nil {
		if err == repositories.ErrPostNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"errorMessage": "Post does not exist."})
		}
		return c.JSON(http.StatusBadRequest, echo.Map{"errorMessage": "Failed to toggle the like on the post."})
	}

	if outcome == services.LikeRegistered {
		return c.JSON(http.StatusOK, echo.Map{"message": "Registered a like on the post."})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Cancelled the like on the post."})
}

// GetLikedPosts lists the posts the caller has liked, most liked first
func (h *LikeHandler) GetLikedPosts(c echo.Context) error {
	identity, ok := middleware.IdentityFrom(c)
	if !ok {
		return c.JSON(http.StatusPreconditionFailed, echo.Map{"errorMessage": "Login is required."})
	}

	posts, err := h.postRepository.GetPostsLikedByUser(c.Request().Context(), identity.UserID)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"errorMessage": "Failed to fetch liked posts."})
	}
	return c.JSON(http.StatusOK, echo.Map{"posts": posts})
}
