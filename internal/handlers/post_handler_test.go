package handlers

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/soyeon-dev/sns-backend/internal/auth"
	"github.com/soyeon-dev/sns-backend/internal/repositories"
)

func TestCreatePost(t *testing.T) {
	t.Parallel()

	store := repositories.NewMemoryStore()
	h := NewPostHandler(store)
	e := newEcho()
	alice := createUser(t, store, "alice")

	req := jsonRequest(http.MethodPost, "/api/posts", `{"title":"hello","content":"world"}`)
	c, rec := newContext(e, req, alice, nil)

	if err := h.CreatePost(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201 but got %d: %s", rec.Code, rec.Body.String())
	}

	posts, err := store.GetAllPosts(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(posts) != 1 {
		t.Fatalf("expected 1 post but got %d", len(posts))
	}
	if posts[0].UserID != alice.UserID || posts[0].Nickname != "alice" {
		t.Fatalf("post must be owned by its creator: %+v", posts[0])
	}
	if posts[0].LikeCount != 0 {
		t.Fatalf("new post must start at zero likes, got %d", posts[0].LikeCount)
	}
}

func TestCreatePost_MissingFields(t *testing.T) {
	t.Parallel()

	store := repositories.NewMemoryStore()
	h := NewPostHandler(store)
	e := newEcho()
	alice := createUser(t, store, "alice")

	cases := []struct {
		body    string
		message string
	}{
		{`{"content":"world"}`, "Post title format is invalid."},
		{`{"title":"hello"}`, "Post content format is invalid."},
	}
	for _, tc := range cases {
		req := jsonRequest(http.MethodPost, "/api/posts", tc.body)
		c, rec := newContext(e, req, alice, nil)

		if err := h.CreatePost(c); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if rec.Code != http.StatusPreconditionFailed {
			t.Fatalf("expected 412 but got %d", rec.Code)
		}
		if !strings.Contains(rec.Body.String(), tc.message) {
			t.Fatalf("expected %q but got %s", tc.message, rec.Body.String())
		}
	}
}

func TestGetPost_NotFound(t *testing.T) {
	t.Parallel()

	store := repositories.NewMemoryStore()
	h := NewPostHandler(store)
	e := newEcho()

	for _, id := range []string{"99", "not-a-number"} {
		req := jsonRequest(http.MethodGet, "/api/posts/"+id, "")
		c, rec := newContext(e, req, auth.Identity{}, map[string]string{"postId": id})

		if err := h.GetPost(c); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404 for id %q but got %d", id, rec.Code)
		}
	}
}

func TestUpdatePost_NonOwnerForbidden(t *testing.T) {
	t.Parallel()

	store := repositories.NewMemoryStore()
	h := NewPostHandler(store)
	e := newEcho()
	alice := createUser(t, store, "alice")
	bob := createUser(t, store, "bob")
	post := createPost(t, store, alice, "original")

	req := jsonRequest(http.MethodPut, "/api/posts/1", `{"title":"hijacked","content":"hijacked"}`)
	c, rec := newContext(e, req, bob, map[string]string{"postId": fmt.Sprint(post.ID)})

	if err := h.UpdatePost(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403 but got %d: %s", rec.Code, rec.Body.String())
	}

	got, err := store.GetPostByID(context.Background(), post.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Title != "original" {
		t.Fatalf("post must be unchanged after a denied update, got title %q", got.Title)
	}
}

func TestUpdatePost_OwnerAllowed(t *testing.T) {
	t.Parallel()

	store := repositories.NewMemoryStore()
	h := NewPostHandler(store)
	e := newEcho()
	alice := createUser(t, store, "alice")
	post := createPost(t, store, alice, "original")

	req := jsonRequest(http.MethodPut, "/api/posts/1", `{"title":"edited","content":"edited body"}`)
	c, rec := newContext(e, req, alice, map[string]string{"postId": fmt.Sprint(post.ID)})

	if err := h.UpdatePost(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 but got %d: %s", rec.Code, rec.Body.String())
	}

	got, err := store.GetPostByID(context.Background(), post.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Title != "edited" || got.Content != "edited body" {
		t.Fatalf("unexpected post state: %+v", got)
	}
}

func TestDeletePost(t *testing.T) {
	t.Parallel()

	store := repositories.NewMemoryStore()
	h := NewPostHandler(store)
	e := newEcho()
	alice := createUser(t, store, "alice")
	bob := createUser(t, store, "bob")
	post := createPost(t, store, alice, "doomed")
	comment := createComment(t, store, post, bob, "so long")
	params := map[string]string{"postId": fmt.Sprint(post.ID)}

	// Non-owner denied first.
	req := jsonRequest(http.MethodDelete, "/api/posts/1", "")
	c, rec := newContext(e, req, bob, params)
	if err := h.DeletePost(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403 but got %d", rec.Code)
	}

	// Owner succeeds and the comments go with the post.
	req = jsonRequest(http.MethodDelete, "/api/posts/1", "")
	c, rec = newContext(e, req, alice, params)
	if err := h.DeletePost(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 but got %d: %s", rec.Code, rec.Body.String())
	}

	if _, err := store.GetPostByID(context.Background(), post.ID); err != repositories.ErrPostNotFound {
		t.Fatalf("expected post gone but got %v", err)
	}
	if _, err := store.GetCommentByID(context.Background(), comment.ID); err != repositories.ErrCommentNotFound {
		t.Fatalf("expected comment cascade-deleted but got %v", err)
	}
}
