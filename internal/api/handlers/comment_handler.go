package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/aaronlopez/review-board-be/internal/apperror"
	"github.com/aaronlopez/review-board-be/internal/auth"
	"github.com/aaronlopez/review-board-be/internal/models"
	"github.com/aaronlopez/review-board-be/internal/services"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

// CommentHandler handles HTTP requests for review comments.
type CommentHandler struct {
	service services.CommentServiceProvider
}

// NewCommentHandler creates a new CommentHandler.
func NewCommentHandler(service services.CommentServiceProvider) *CommentHandler {
	return &CommentHandler{service: service}
}

// CommentPayload defines the structure for comment create/update requests.
type CommentPayload struct {
	Text string `json:"text"`
}

// Create handles posting a comment under a review. The comment's owner is the
// resolved identity, not a client-supplied field.
func (h *CommentHandler) Create(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.CurrentUser(r)
	if !ok {
		writeError(w, apperror.NewInternal("could not resolve user", nil))
		return
	}
	reviewID := chi.URLParam(r, "reviewID")

	var payload CommentPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, apperror.NewValidation("invalid request body"))
		return
	}

	comment, err := h.service.CreateComment(user.ID, reviewID, payload.Text)
	if err != nil {
		log.Warn().Err(err).Str("review_id", reviewID).Str("user_id", user.ID).Msg("Failed to create comment")
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, comment)
}

// GetForReview lists a review's comments, most recent first.
func (h *CommentHandler) GetForReview(w http.ResponseWriter, r *http.Request) {
	reviewID := chi.URLParam(r, "reviewID")

	comments, err := h.service.ListCommentsByReview(reviewID)
	if err != nil {
		log.Error().Err(err).Str("review_id", reviewID).Msg("Failed to list comments")
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, comments)
}

// GetMine lists the authenticated user's comments, most recent first.
func (h *CommentHandler) GetMine(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.CurrentUser(r)
	if !ok {
		writeError(w, apperror.NewInternal("could not resolve user", nil))
		return
	}

	comments, err := h.service.ListCommentsByUser(user.ID)
	if err != nil {
		log.Error().Err(err).Str("user_id", user.ID).Msg("Failed to list comments")
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, comments)
}

// Update handles editing a comment owned by the authenticated user.
func (h *CommentHandler) Update(w http.ResponseWriter, r *http.Request) {
	user, ok := h.requirePathUser(w, r)
	if !ok {
		return
	}
	commentID := chi.URLParam(r, "commentID")

	var payload CommentPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, apperror.NewValidation("invalid request body"))
		return
	}

	comment, err := h.service.UpdateComment(commentID, user.ID, payload.Text)
	if err != nil {
		log.Warn().Err(err).Str("comment_id", commentID).Str("user_id", user.ID).Msg("Failed to update comment")
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Comment updated",
		"comment": comment,
	})
}

// Delete handles removing a comment owned by the authenticated user.
func (h *CommentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	user, ok := h.requirePathUser(w, r)
	if !ok {
		return
	}
	commentID := chi.URLParam(r, "commentID")

	comment, err := h.service.DeleteComment(commentID, user.ID)
	if err != nil {
		log.Warn().Err(err).Str("comment_id", commentID).Str("user_id", user.ID).Msg("Failed to delete comment")
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Comment deleted",
		"comment": comment,
	})
}

func (h *CommentHandler) requirePathUser(w http.ResponseWriter, r *http.Request) (models.User, bool) {
	user, ok := auth.CurrentUser(r)
	if !ok {
		writeError(w, apperror.NewInternal("could not resolve user", nil))
		return models.User{}, false
	}
	if pathUserID := chi.URLParam(r, "userID"); pathUserID != user.ID {
		writeError(w, apperror.NewForbidden("cannot act on behalf of another user"))
		return models.User{}, false
	}
	return user, true
}
