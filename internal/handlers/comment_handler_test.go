package handlers

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/soyeon-dev/sns-backend/internal/repositories"
)

func TestCreateComment(t *testing.T) {
	t.Parallel()

	store := repositories.NewMemoryStore()
	h := NewCommentHandler(store, store)
	e := newEcho()
	alice := createUser(t, store, "alice")
	bob := createUser(t, store, "bob")
	post := createPost(t, store, alice, "title")

	req := jsonRequest(http.MethodPost, "/api/posts/1/comments", `{"comment":"nice post"}`)
	c, rec := newContext(e, req, bob, map[string]string{"postId": fmt.Sprint(post.ID)})

	if err := h.CreateComment(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 but got %d: %s", rec.Code, rec.Body.String())
	}

	comments, err := store.GetCommentsByPostID(context.Background(), post.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(comments) != 1 {
		t.Fatalf("expected 1 comment but got %d", len(comments))
	}
	if comments[0].UserID != bob.UserID || comments[0].Comment != "nice post" {
		t.Fatalf("unexpected comment: %+v", comments[0])
	}
}

func TestCreateComment_PostNotFound(t *testing.T) {
	t.Parallel()

	store := repositories.NewMemoryStore()
	h := NewCommentHandler(store, store)
	e := newEcho()
	bob := createUser(t, store, "bob")

	req := jsonRequest(http.MethodPost, "/api/posts/99/comments", `{"comment":"into the void"}`)
	c, rec := newContext(e, req, bob, map[string]string{"postId": "99"})

	if err := h.CreateComment(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 but got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Post does not exist.") {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestUpdateComment_NonOwnerForbidden(t *testing.T) {
	t.Parallel()

	store := repositories.NewMemoryStore()
	h := NewCommentHandler(store, store)
	e := newEcho()
	alice := createUser(t, store, "alice")
	bob := createUser(t, store, "bob")
	post := createPost(t, store, alice, "title")
	comment := createComment(t, store, post, alice, "mine")

	req := jsonRequest(http.MethodPut, "/api/posts/1/comments/1", `{"comment":"hijacked"}`)
	c, rec := newContext(e, req, bob, map[string]string{
		"postId":    fmt.Sprint(post.ID),
		"commentId": fmt.Sprint(comment.ID),
	})

	if err := h.UpdateComment(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403 but got %d: %s", rec.Code, rec.Body.String())
	}

	got, err := store.GetCommentByID(context.Background(), comment.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Comment != "mine" {
		t.Fatalf("comment must be unchanged after a denied update, got %q", got.Comment)
	}
}

func TestUpdateComment_OwnerAllowed(t *testing.T) {
	t.Parallel()

	store := repositories.NewMemoryStore()
	h := NewCommentHandler(store, store)
	e := newEcho()
	alice := createUser(t, store, "alice")
	post := createPost(t, store, alice, "title")
	comment := createComment(t, store, post, alice, "first draft")

	req := jsonRequest(http.MethodPut, "/api/posts/1/comments/1", `{"comment":"final"}`)
	c, rec := newContext(e, req, alice, map[string]string{
		"postId":    fmt.Sprint(post.ID),
		"commentId": fmt.Sprint(comment.ID),
	})

	if err := h.UpdateComment(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 but got %d: %s", rec.Code, rec.Body.String())
	}

	got, err := store.GetCommentByID(context.Background(), comment.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Comment != "final" {
		t.Fatalf("unexpected comment body: %q", got.Comment)
	}
}

func TestDeleteComment(t *testing.T) {
	t.Parallel()

	store := repositories.NewMemoryStore()
	h := NewCommentHandler(store, store)
	e := newEcho()
	alice := createUser(t, store, "alice")
	bob := createUser(t, store, "bob")
	post := createPost(t, store, alice, "title")
	comment := createComment(t, store, post, alice, "mine")
	params := map[string]string{
		"postId":    fmt.Sprint(post.ID),
		"commentId": fmt.Sprint(comment.ID),
	}

	req := jsonRequest(http.MethodDelete, "/api/posts/1/comments/1", "")
	c, rec := newContext(e, req, bob, params)
	if err := h.DeleteComment(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403 but got %d", rec.Code)
	}

	req = jsonRequest(http.MethodDelete, "/api/posts/1/comments/1", "")
	c, rec = newContext(e, req, alice, params)
	if err := h.DeleteComment(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 but got %d", rec.Code)
	}

	if _, err := store.GetCommentByID(context.Background(), comment.ID); err != repositories.ErrCommentNotFound {
		t.Fatalf("expected comment deleted but got %v", err)
	}
}

func TestDeleteComment_MissingComment(t *testing.T) {
	t.Parallel()

	store := repositories.NewMemoryStore()
	h := NewCommentHandler(store, store)
	e := newEcho()
	alice := createUser(t, store, "alice")
	post := createPost(t, store, alice, "title")

	req := jsonRequest(http.MethodDelete, "/api/posts/1/comments/99", "")
	c, rec := newContext(e, req, alice, map[string]string{
		"postId":    fmt.Sprint(post.ID),
		"commentId": "99",
	})

	if err := h.DeleteComment(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 but got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Comment does not exist.") {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}
