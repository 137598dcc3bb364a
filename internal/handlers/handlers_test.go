package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/soyeon-dev/sns-backend/internal/auth"
	"github.com/soyeon-dev/sns-backend/internal/middleware"
	"github.com/soyeon-dev/sns-backend/internal/models"
	"github.com/soyeon-dev/sns-backend/internal/repositories"
	"github.com/soyeon-dev/sns-backend/validators"
)

func newEcho() *echo.Echo {
	e := echo.New()
	e.Validator = validators.NewValidator()
	return e
}

func jsonRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	return req
}

// newContext builds an echo context carrying the given path parameters and,
// when identity is non-zero, the resolved identity the auth middleware would
// have attached.
func newContext(e *echo.Echo, req *http.Request, identity auth.Identity, params map[string]string) (echo.Context, *httptest.ResponseRecorder) {
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if !identity.IsZero() {
		c.Set(middleware.IdentityContextKey, identity)
	}
	names := make([]string, 0, len(params))
	values := make([]string, 0, len(params))
	for name, value := range params {
		names = append(names, name)
		values = append(values, value)
	}
	c.SetParamNames(names...)
	c.SetParamValues(values...)
	return c, rec
}

func createUser(t *testing.T, store *repositories.MemoryStore, nickname string) auth.Identity {
	t.Helper()

	user := &models.User{Nickname: nickname, Password: "secret99"}
	if err := store.CreateUser(context.Background(), user); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return auth.Identity{UserID: user.ID, Nickname: user.Nickname}
}

func createPost(t *testing.T, store *repositories.MemoryStore, owner auth.Identity, title string) *models.Post {
	t.Helper()

	post := &models.Post{UserID: owner.UserID, Nickname: owner.Nickname, Title: title, Content: "content of " + title}
	if err := store.CreatePost(context.Background(), post); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return post
}

func createComment(t *testing.T, store *repositories.MemoryStore, post *models.Post, owner auth.Identity, body string) *models.Comment {
	t.Helper()

	comment := &models.Comment{PostID: post.ID, UserID: owner.UserID, Nickname: owner.Nickname, Comment: body}
	if err := store.CreateComment(context.Background(), comment); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return comment
}
