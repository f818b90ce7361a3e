package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/aaronlopez/review-board-be/internal/models"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCommentRouter(svc *stubCommentService) *chi.Mux {
	h := NewCommentHandler(svc)
	r := chi.NewRouter()
	r.Post("/items/{itemID}/reviews/{reviewID}/comments", h.Create)
	r.Get("/reviews/{reviewID}/comments", h.GetForReview)
	r.Put("/users/{userID}/comments/{commentID}", h.Update)
	r.Delete("/users/{userID}/comments/{commentID}", h.Delete)
	return r
}

// The comment owner comes from the resolved identity, never from the body.
func TestCommentCreateOwnerIsIdentity(t *testing.T) {
	var gotUserID, gotReviewID string
	svc := &stubCommentService{
		createFn: func(userID, reviewID, text string) (models.Comment, error) {
			gotUserID, gotReviewID = userID, reviewID
			return models.Comment{ID: "comment-1", UserID: userID, ReviewID: reviewID, Text: text}, nil
		},
	}

	req := httptest.NewRequest(http.MethodPost, "/items/item-1/reviews/review-9/comments",
		strings.NewReader(`{"user_id":"spoofed","text":"hello"}`))
	req = asUser(req, models.User{ID: "user-1", Username: "alice"})
	rec := httptest.NewRecorder()
	newCommentRouter(svc).ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "user-1", gotUserID)
	assert.Equal(t, "review-9", gotReviewID)
}

func TestCommentCreateWithoutIdentity(t *testing.T) {
	svc := &stubCommentService{}

	req := httptest.NewRequest(http.MethodPost, "/items/item-1/reviews/review-9/comments",
		strings.NewReader(`{"text":"hello"}`))
	rec := httptest.NewRecorder()
	newCommentRouter(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestCommentGetForReview(t *testing.T) {
	svc := &stubCommentService{
		listByReviewFn: func(reviewID string) ([]models.Comment, error) {
			return []models.Comment{{ID: "comment-1", ReviewID: reviewID, Text: "hi"}}, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/reviews/review-1/comments", nil)
	rec := httptest.NewRecorder()
	newCommentRouter(svc).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"comment-1"`)
}

func TestCommentUpdatePathUserMismatch(t *testing.T) {
	svc := &stubCommentService{
		updateFn: func(commentID, requesterID, text string) (models.Comment, error) {
			t.Fatal("service must not be called when the path user does not match")
			return models.Comment{}, nil
		},
	}

	req := httptest.NewRequest(http.MethodPut, "/users/someone-else/comments/comment-1",
		strings.NewReader(`{"text":"defaced"}`))
	req = asUser(req, models.User{ID: "user-1", Username: "alice"})
	rec := httptest.NewRecorder()
	newCommentRouter(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestCommentDelete(t *testing.T) {
	svc := &stubCommentService{
		deleteFn: func(commentID, requesterID string) (models.Comment, error) {
			return models.Comment{ID: commentID, UserID: requesterID, Text: "bye"}, nil
		},
	}

	req := httptest.NewRequest(http.MethodDelete, "/users/user-1/comments/comment-1", nil)
	req = asUser(req, models.User{ID: "user-1", Username: "alice"})
	rec := httptest.NewRecorder()
	newCommentRouter(svc).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Comment deleted")
}
