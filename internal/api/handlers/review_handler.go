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

// ReviewHandler handles HTTP requests for item reviews.
type ReviewHandler struct {
	service services.ReviewServiceProvider
}

// NewReviewHandler creates a new ReviewHandler.
func NewReviewHandler(service services.ReviewServiceProvider) *ReviewHandler {
	return &ReviewHandler{service: service}
}

// CreateReviewPayload defines the structure for review creation requests.
type CreateReviewPayload struct {
	UserID string `json:"user_id"`
	Rating int    `json:"rating"`
	Text   string `json:"text"`
}

// UpdateReviewPayload defines the structure for review update requests.
type UpdateReviewPayload struct {
	Rating int    `json:"rating"`
	Text   string `json:"text"`
}

// Create handles posting a new review under an item.
func (h *ReviewHandler) Create(w http.ResponseWriter, r *http.Request) {
	itemID := chi.URLParam(r, "itemID")
	var payload CreateReviewPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, apperror.NewValidation("invalid request body"))
		return
	}

	review, err := h.service.CreateReview(payload.UserID, itemID, payload.Rating, payload.Text)
	if err != nil {
		log.Warn().Err(err).Str("item_id", itemID).Msg("Failed to create review")
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, review)
}

// Get handles retrieving a review scoped to its item.
func (h *ReviewHandler) Get(w http.ResponseWriter, r *http.Request) {
	itemID := chi.URLParam(r, "itemID")
	reviewID := chi.URLParam(r, "reviewID")

	review, err := h.service.GetReviewForItem(itemID, reviewID)
	if err != nil {
		log.Warn().Err(err).Str("review_id", reviewID).Msg("Failed to get review")
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, review)
}

// GetMine lists the authenticated user's reviews, most recent first.
func (h *ReviewHandler) GetMine(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.CurrentUser(r)
	if !ok {
		writeError(w, apperror.NewInternal("could not resolve user", nil))
		return
	}

	reviews, err := h.service.ListReviewsByUser(user.ID)
	if err != nil {
		log.Error().Err(err).Str("user_id", user.ID).Msg("Failed to list reviews")
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, reviews)
}

// Update handles editing a review. The path user must match the resolved
// identity, and the review must belong to that identity.
func (h *ReviewHandler) Update(w http.ResponseWriter, r *http.Request) {
	user, ok := h.requirePathUser(w, r)
	if !ok {
		return
	}
	reviewID := chi.URLParam(r, "reviewID")

	var payload UpdateReviewPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, apperror.NewValidation("invalid request body"))
		return
	}

	review, err := h.service.UpdateReview(reviewID, user.ID, payload.Rating, payload.Text)
	if err != nil {
		log.Warn().Err(err).Str("review_id", reviewID).Str("user_id", user.ID).Msg("Failed to update review")
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Review updated",
		"review":  review,
	})
}

// Delete handles removing a review owned by the authenticated user.
func (h *ReviewHandler) Delete(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.CurrentUser(r)
	if !ok {
		writeError(w, apperror.NewInternal("could not resolve user", nil))
		return
	}
	reviewID := chi.URLParam(r, "reviewID")

	review, err := h.service.DeleteReview(reviewID, user.ID)
	if err != nil {
		log.Warn().Err(err).Str("review_id", reviewID).Str("user_id", user.ID).Msg("Failed to delete review")
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Review deleted",
		"review":  review,
	})
}

// requirePathUser resolves the authenticated user and rejects the request
// when the {userID} path parameter names someone else.
func (h *ReviewHandler) requirePathUser(w http.ResponseWriter, r *http.Request) (models.User, bool) {
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
