package services

import (
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/aaronlopez/review-board-be/internal/apperror"
	"github.com/aaronlopez/review-board-be/internal/models"
	"github.com/google/uuid"
)

// ReviewServiceProvider defines the interface for review services.
type ReviewServiceProvider interface {
	CreateReview(userID, itemID string, rating int, text string) (models.Review, error)
	GetReviewForItem(itemID, reviewID string) (models.Review, error)
	ListReviewsByUser(userID string) ([]models.Review, error)
	UpdateReview(reviewID, requesterID string, rating int, text string) (models.Review, error)
	DeleteReview(reviewID, requesterID string) (models.Review, error)
}

// ReviewService provides business logic for item reviews.
type ReviewService struct {
	db *sql.DB
}

// NewReviewService creates a new ReviewService.
func NewReviewService(db *sql.DB) *ReviewService {
	return &ReviewService{db: db}
}

const reviewColumns = "id, user_id, items_id, rating, text, created_at, updated_at"

// CreateReview creates a new review of an item. Validation runs before any
// statement is issued so an invalid rating never reaches the store.
func (s *ReviewService) CreateReview(userID, itemID string, rating int, text string) (models.Review, error) {
	if userID == "" || itemID == "" || strings.TrimSpace(text) == "" {
		return models.Review{}, apperror.NewValidation("missing required fields")
	}
	if rating < 1 || rating > 5 {
		return models.Review{}, apperror.NewValidation("rating must be between 1 and 5")
	}

	review := models.Review{
		ID:        uuid.New().String(),
		UserID:    userID,
		ItemID:    itemID,
		Rating:    rating,
		Text:      text,
		CreatedAt: time.Now().UTC(),
	}

	_, err := s.db.Exec(
		"INSERT INTO reviews(id, user_id, items_id, rating, text, created_at) VALUES(?, ?, ?, ?, ?, ?)",
		review.ID, review.UserID, review.ItemID, review.Rating, review.Text, review.CreatedAt,
	)
	if err != nil {
		return models.Review{}, apperror.NewDatabase("failed to create review", err)
	}
	return review, nil
}

// GetReviewForItem retrieves a review only when it belongs to the given item.
func (s *ReviewService) GetReviewForItem(itemID, reviewID string) (models.Review, error) {
	row := s.db.QueryRow(
		"SELECT "+reviewColumns+" FROM reviews WHERE id = ? AND items_id = ?",
		reviewID, itemID,
	)
	review, err := scanReview(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Review{}, apperror.NewNotFound("review not found")
		}
		return models.Review{}, apperror.NewDatabase("failed to get review", err)
	}
	return review, nil
}

// ListReviewsByUser retrieves a user's reviews, most recent first.
func (s *ReviewService) ListReviewsByUser(userID string) ([]models.Review, error) {
	rows, err := s.db.Query(
		"SELECT "+reviewColumns+" FROM reviews WHERE user_id = ? ORDER BY created_at DESC",
		userID,
	)
	if err != nil {
		return nil, apperror.NewDatabase("failed to list reviews", err)
	}
	defer rows.Close()

	reviews := []models.Review{}
	for rows.Next() {
		review, err := scanReview(rows)
		if err != nil {
			return nil, apperror.NewDatabase("failed to scan review", err)
		}
		reviews = append(reviews, review)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewDatabase("failed to list reviews", err)
	}
	return reviews, nil
}

// UpdateReview changes a review's rating and text on behalf of requesterID.
// The ownership check happens before the update statement is issued.
func (s *ReviewService) UpdateReview(reviewID, requesterID string, rating int, text string) (models.Review, error) {
	if strings.TrimSpace(text) == "" {
		return models.Review{}, apperror.NewValidation("rating and text are required")
	}
	if rating < 1 || rating > 5 {
		return models.Review{}, apperror.NewValidation("rating must be between 1 and 5")
	}

	review, err := s.getReviewByID(reviewID)
	if err != nil {
		return models.Review{}, err
	}
	if review.UserID != requesterID {
		return models.Review{}, apperror.NewForbidden("review does not belong to the requesting user")
	}

	updatedAt := time.Now().UTC()
	_, err = s.db.Exec(
		"UPDATE reviews SET rating = ?, text = ?, updated_at = ? WHERE id = ?",
		rating, text, updatedAt, reviewID,
	)
	if err != nil {
		return models.Review{}, apperror.NewDatabase("failed to update review", err)
	}

	review.Rating = rating
	review.Text = text
	review.UpdatedAt = &updatedAt
	return review, nil
}

// DeleteReview removes a review on behalf of requesterID and returns the
// deleted row. Comments on the review are removed by the store's cascade.
func (s *ReviewService) DeleteReview(reviewID, requesterID string) (models.Review, error) {
	review, err := s.getReviewByID(reviewID)
	if err != nil {
		return models.Review{}, err
	}
	if review.UserID != requesterID {
		return models.Review{}, apperror.NewForbidden("review does not belong to the requesting user")
	}

	if _, err := s.db.Exec("DELETE FROM reviews WHERE id = ?", reviewID); err != nil {
		return models.Review{}, apperror.NewDatabase("failed to delete review", err)
	}
	return review, nil
}

func (s *ReviewService) getReviewByID(reviewID string) (models.Review, error) {
	row := s.db.QueryRow("SELECT "+reviewColumns+" FROM reviews WHERE id = ?", reviewID)
	review, err := scanReview(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Review{}, apperror.NewNotFound("review not found")
		}
		return models.Review{}, apperror.NewDatabase("failed to get review", err)
	}
	return review, nil
}

// rowScanner covers both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanReview(row rowScanner) (models.Review, error) {
	var review models.Review
	var updatedAt sql.NullTime
	err := row.Scan(
		&review.ID, &review.UserID, &review.ItemID,
		&review.Rating, &review.Text, &review.CreatedAt, &updatedAt,
	)
	if err != nil {
		return models.Review{}, err
	}
	if updatedAt.Valid {
		review.UpdatedAt = &updatedAt.Time
	}
	return review, nil
}
