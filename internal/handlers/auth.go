package handlers

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/soyeon-dev/sns-backend/internal/auth"
	"github.com/soyeon-dev/sns-backend/internal/models"
	"github.com/soyeon-dev/sns-backend/internal/repositories"
	"github.com/soyeon-dev/sns-backend/validators"
)

// AuthHandler handles signup and login
type AuthHandler struct {
	userRepository repositories.UserRepository
	issuer         *auth.TokenIssuer
	passwords      auth.PasswordVerifier
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(userRepo repositories.UserRepository, issuer *auth.TokenIssuer, passwords auth.PasswordVerifier) *AuthHandler {
	return &AuthHandler{
		userRepository: userRepo,
		issuer:         issuer,
		passwords:      passwords,
	}
}

// RegisterAuthRoutes registers authentication-related routes
func (h *AuthHandler) RegisterAuthRoutes(g *echo.Group) {
	g.POST("/signup", h.Signup)
	g.POST("/login", h.Login)
}

// Signup handles user registration with nickname and password
func (h *AuthHandler) Signup(c echo.Context) error {
	var req models.SignupRequest

	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"errorMessage": "Request body is malformed."})
	}

	if err := c.Validate(&req); err != nil {
		switch validators.FailedField(err) {
		case "Nickname":
			return c.JSON(http.StatusPreconditionFailed, echo.Map{"errorMessage": "Nickname format is invalid."})
		case "Confirm":
			return c.JSON(http.StatusPreconditionFailed, echo.Map{"errorMessage": "Passwords do not match."})
		default:
			return c.JSON(http.StatusPreconditionFailed, echo.Map{"errorMessage": "Password format is invalid."})
		}
	}

	if req.Password != req.Confirm {
		return c.JSON(http.StatusPreconditionFailed, echo.Map{"errorMessage": "Passwords do not match."})
	}
	if strings.Contains(req.Password, req.Nickname) {
		return c.JSON(http.StatusPreconditionFailed, echo.Map{"errorMessage": "Password must not contain the nickname."})
	}

	if _, err := h.userRepository.GetUserByNickname(c.Request().Context(), req.Nickname); err == nil {
		return c.JSON(http.StatusPreconditionFailed, echo.Map{"errorMessage": "Nickname is already in use."})
	}

	stored, err := h.passwords.Hash(req.Password)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"errorMessage": "Signup failed."})
	}

	user := &models.User{Nickname: req.Nickname, Password: stored}
	if err := h.userRepository.CreateUser(c.Request().Context(), user); err != nil {
		if err == repositories.ErrDuplicateNickname {
			return c.JSON(http.StatusPreconditionFailed, echo.Map{"errorMessage": "Nickname is already in use."})
		}
		return c.JSON(http.StatusBadRequest, echo.Map{"errorMessage": "Signup failed."})
	}

	return c.JSON(http.StatusCreated, echo.Map{"message": "Signup succeeded."})
}

// Login authenticates a nickname/password pair and issues a bearer token.
// The token is returned in the body and mirrored into an Authorization
// cookie in the "Bearer <token>" shape.
func (h *AuthHandler) Login(c echo.Context) error {
	var req models.LoginRequest

	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"errorMessage": "Login failed."})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusPreconditionFailed, echo.Map{"errorMessage": "Check your nickname or password."})
	}

	// Unknown nickname and wrong password share one message so callers
	// cannot probe which nicknames exist.
	user, err := h.userRepository.GetUserByNickname(c.Request().Context(), req.Nickname)
	if err != nil {
		return c.JSON(http.StatusPreconditionFailed, echo.Map{"errorMessage": "Check your nickname or password."})
	}
	if err := h.passwords.Compare(user.Password, req.Password); err != nil {
		return c.JSON(http.StatusPreconditionFailed, echo.Map{"errorMessage": "Check your nickname or password."})
	}

	token, err := h.issuer.Issue(user.ID, user.Nickname)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"errorMessage": "Login failed."})
	}

	c.SetCookie(&http.Cookie{
		Name:  "Authorization",
		Value: "Bearer " + token,
		Path:  "/",
	})
	return c.JSON(http.StatusOK, echo.Map{"token": token})
}
