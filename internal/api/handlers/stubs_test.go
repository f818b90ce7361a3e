package handlers

import (
	"github.com/aaronlopez/review-board-be/internal/models"
)

// Function-backed stubs for the service interfaces, so handler tests control
// exactly what each call returns.

type stubItemService struct {
	createFn func(name, description string) (models.Item, error)
	getFn    func(id string) (models.Item, error)
	listFn   func() ([]models.Item, error)
}

func (s *stubItemService) CreateItem(name, description string) (models.Item, error) {
	return s.createFn(name, description)
}

func (s *stubItemService) GetItemByID(id string) (models.Item, error) {
	return s.getFn(id)
}

func (s *stubItemService) ListItems() ([]models.Item, error) {
	return s.listFn()
}

type stubUserService struct {
	createFn func(username, password string) (models.User, error)
	authFn   func(username, password string) (models.User, error)
	getFn    func(id string) (models.User, error)
}

func (s *stubUserService) CreateUser(username, password string) (models.User, error) {
	return s.createFn(username, password)
}

func (s *stubUserService) AuthenticateUser(username, password string) (models.User, error) {
	return s.authFn(username, password)
}

func (s *stubUserService) GetUserByID(id string) (models.User, error) {
	return s.getFn(id)
}

type stubReviewService struct {
	createFn func(userID, itemID string, rating int, text string) (models.Review, error)
	getFn    func(itemID, reviewID string) (models.Review, error)
	listFn   func(userID string) ([]models.Review, error)
	updateFn func(reviewID, requesterID string, rating int, text string) (models.Review, error)
	deleteFn func(reviewID, requesterID string) (models.Review, error)
}

func (s *stubReviewService) CreateReview(userID, itemID string, rating int, text string) (models.Review, error) {
	return s.createFn(userID, itemID, rating, text)
}

func (s *stubReviewService) GetReviewForItem(itemID, reviewID string) (models.Review, error) {
	return s.getFn(itemID, reviewID)
}

func (s *stubReviewService) ListReviewsByUser(userID string) ([]models.Review, error) {
	return s.listFn(userID)
}

func (s *stubReviewService) UpdateReview(reviewID, requesterID string, rating int, text string) (models.Review, error) {
	return s.updateFn(reviewID, requesterID, rating, text)
}

func (s *stubReviewService) DeleteReview(reviewID, requesterID string) (models.Review, error) {
	return s.deleteFn(reviewID, requesterID)
}

type stubCommentService struct {
	createFn       func(userID, reviewID, text string) (models.Comment, error)
	listByReviewFn func(reviewID string) ([]models.Comment, error)
	listByUserFn   func(userID string) ([]models.Comment, error)
	updateFn       func(commentID, requesterID, text string) (models.Comment, error)
	deleteFn       func(commentID, requesterID string) (models.Comment, error)
}

func (s *stubCommentService) CreateComment(userID, reviewID, text string) (models.Comment, error) {
	return s.createFn(userID, reviewID, text)
}

func (s *stubCommentService) ListCommentsByReview(reviewID string) ([]models.Comment, error) {
	return s.listByReviewFn(reviewID)
}

func (s *stubCommentService) ListCommentsByUser(userID string) ([]models.Comment, error) {
	return s.listByUserFn(userID)
}

func (s *stubCommentService) UpdateComment(commentID, requesterID, text string) (models.Comment, error) {
	return s.updateFn(commentID, requesterID, text)
}

func (s *stubCommentService) DeleteComment(commentID, requesterID string) (models.Comment, error) {
	return s.deleteFn(commentID, requesterID)
}
