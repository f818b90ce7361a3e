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

// CommentServiceProvider defines the interface for comment services.
type CommentServiceProvider interface {
	CreateComment(userID, reviewID, text string) (models.Comment, error)
	ListCommentsByReview(reviewID string) ([]models.Comment, error)
	ListCommentsByUser(userID string) ([]models.Comment, error)
	UpdateComment(commentID, requesterID, text string) (models.Comment, error)
	DeleteComment(commentID, requesterID string) (models.Comment, error)
}

// CommentService provides business logic for review comments.
type CommentService struct {
	db *sql.DB
}

// NewCommentService creates a new CommentService.
func NewCommentService(db *sql.DB) *CommentService {
	return &CommentService{db: db}
}

const commentColumns = "id, user_id, review_id, text, created_at, updated_at"

// CreateComment attaches a new comment to a review.
func (s *CommentService) CreateComment(userID, reviewID, text string) (models.Comment, error) {
	if userID == "" || reviewID == "" {
		return models.Comment{}, apperror.NewValidation("missing required fields")
	}
	if strings.TrimSpace(text) == "" {
		return models.Comment{}, apperror.NewValidation("comment text cannot be empty")
	}

	comment := models.Comment{
		ID:        uuid.New().String(),
		UserID:    userID,
		ReviewID:  reviewID,
		Text:      text,
		CreatedAt: time.Now().UTC(),
	}

	_, err := s.db.Exec(
		"INSERT INTO comments(id, user_id, review_id, text, created_at) VALUES(?, ?, ?, ?, ?)",
		comment.ID, comment.UserID, comment.ReviewID, comment.Text, comment.CreatedAt,
	)
	if err != nil {
		return models.Comment{}, apperror.NewDatabase("failed to create comment", err)
	}
	return comment, nil
}

// ListCommentsByReview retrieves a review's comments, most recent first.
func (s *CommentService) ListCommentsByReview(reviewID string) ([]models.Comment, error) {
	return s.listComments("review_id", reviewID)
}

// ListCommentsByUser retrieves a user's comments, most recent first.
func (s *CommentService) ListCommentsByUser(userID string) ([]models.Comment, error) {
	return s.listComments("user_id", userID)
}

// listComments runs the shared list query. The column name comes from the two
// callers above, never from user input.
func (s *CommentService) listComments(column, value string) ([]models.Comment, error) {
	rows, err := s.db.Query(
		"SELECT "+commentColumns+" FROM comments WHERE "+column+" = ? ORDER BY created_at DESC",
		value,
	)
	if err != nil {
		return nil, apperror.NewDatabase("failed to list comments", err)
	}
	defer rows.Close()

	comments := []models.Comment{}
	for rows.Next() {
		comment, err := scanComment(rows)
		if err != nil {
			return nil, apperror.NewDatabase("failed to scan comment", err)
		}
		comments = append(comments, comment)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewDatabase("failed to list comments", err)
	}
	return comments, nil
}

// UpdateComment changes a comment's text on behalf of requesterID. The
// ownership check happens before the update statement is issued.
func (s *CommentService) UpdateComment(commentID, requesterID, text string) (models.Comment, error) {
	if strings.TrimSpace(text) == "" {
		return models.Comment{}, apperror.NewValidation("text is required")
	}

	comment, err := s.getCommentByID(commentID)
	if err != nil {
		return models.Comment{}, err
	}
	if comment.UserID != requesterID {
		return models.Comment{}, apperror.NewForbidden("comment does not belong to the requesting user")
	}

	updatedAt := time.Now().UTC()
	_, err = s.db.Exec(
		"UPDATE comments SET text = ?, updated_at = ? WHERE id = ?",
		text, updatedAt, commentID,
	)
	if err != nil {
		return models.Comment{}, apperror.NewDatabase("failed to update comment", err)
	}

	comment.Text = text
	comment.UpdatedAt = &updatedAt
	return comment, nil
}

// DeleteComment removes a comment on behalf of requesterID and returns the
// deleted row.
func (s *CommentService) DeleteComment(commentID, requesterID string) (models.Comment, error) {
	comment, err := s.getCommentByID(commentID)
	if err != nil {
		return models.Comment{}, err
	}
	if comment.UserID != requesterID {
		return models.Comment{}, apperror.NewForbidden("comment does not belong to the requesting user")
	}

	if _, err := s.db.Exec("DELETE FROM comments WHERE id = ?", commentID); err != nil {
		return models.Comment{}, apperror.NewDatabase("failed to delete comment", err)
	}
	return comment, nil
}

func (s *CommentService) getCommentByID(commentID string) (models.Comment, error) {
	row := s.db.QueryRow("SELECT "+commentColumns+" FROM comments WHERE id = ?", commentID)
	comment, err := scanComment(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Comment{}, apperror.NewNotFound("comment not found")
		}
		return models.Comment{}, apperror.NewDatabase("failed to get comment", err)
	}
	return comment, nil
}

func scanComment(row rowScanner) (models.Comment, error) {
	var comment models.Comment
	var updatedAt sql.NullTime
	err := row.Scan(
		&comment.ID, &comment.UserID, &comment.ReviewID,
		&comment.Text, &comment.CreatedAt, &updatedAt,
	)
	if err != nil {
		return models.Comment{}, err
	}
	if updatedAt.Valid {
		comment.UpdatedAt = &updatedAt.Time
	}
	return comment, nil
}
