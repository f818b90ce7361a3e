package services

import (
	"testing"
	"time"

	"github.com/aaronlopez/review-board-be/internal/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateReviewRejectsOutOfRangeRating(t *testing.T) {
	db := newTestDB(t)
	userID := insertUser(t, db, "alice")
	itemID := insertItem(t, db, "Widget A")
	svc := NewReviewService(db)

	for _, rating := range []int{-1, 0, 6, 100} {
		_, err := svc.CreateReview(userID, itemID, rating, "some text")
		assert.True(t, apperror.IsKind(err, apperror.Validation), "rating %d", rating)
	}

	assert.Equal(t, 0, countRows(t, db, "reviews"), "no row may be persisted for invalid ratings")
}

func TestCreateReviewRejectsMissingFields(t *testing.T) {
	svc := NewReviewService(nil) // validation fails before any query

	cases := []struct {
		name           string
		userID, itemID string
		text           string
	}{
		{"missing user", "", "item-1", "fine"},
		{"missing item", "user-1", "", "fine"},
		{"missing text", "user-1", "item-1", ""},
		{"blank text", "user-1", "item-1", "   "},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.CreateReview(tc.userID, tc.itemID, 3, tc.text)
			assert.True(t, apperror.IsKind(err, apperror.Validation))
		})
	}
}

func TestCreateReviewPersistsRatingExactly(t *testing.T) {
	db := newTestDB(t)
	userID := insertUser(t, db, "alice")
	itemID := insertItem(t, db, "Widget A")
	svc := NewReviewService(db)

	for _, rating := range []int{1, 3, 5} {
		review, err := svc.CreateReview(userID, itemID, rating, "solid")
		require.NoError(t, err)
		assert.Equal(t, rating, review.Rating)

		stored, err := svc.GetReviewForItem(itemID, review.ID)
		require.NoError(t, err)
		assert.Equal(t, rating, stored.Rating)
		assert.Nil(t, stored.UpdatedAt)
	}
}

func TestGetReviewForItemScopesToItem(t *testing.T) {
	db := newTestDB(t)
	userID := insertUser(t, db, "alice")
	itemA := insertItem(t, db, "Widget A")
	itemB := insertItem(t, db, "Gadget B")
	reviewID := insertReview(t, db, userID, itemA, 5, time.Now().UTC())
	svc := NewReviewService(db)

	_, err := svc.GetReviewForItem(itemA, reviewID)
	assert.NoError(t, err)

	_, err = svc.GetReviewForItem(itemB, reviewID)
	assert.True(t, apperror.IsKind(err, apperror.NotFound))
}

func TestListReviewsByUserNewestFirst(t *testing.T) {
	db := newTestDB(t)
	userID := insertUser(t, db, "alice")
	otherID := insertUser(t, db, "bob")
	itemID := insertItem(t, db, "Widget A")

	base := time.Now().UTC().Add(-time.Hour)
	oldest := insertReview(t, db, userID, itemID, 3, base)
	newest := insertReview(t, db, userID, itemID, 4, base.Add(2*time.Minute))
	middle := insertReview(t, db, userID, itemID, 5, base.Add(time.Minute))
	insertReview(t, db, otherID, itemID, 1, base.Add(3*time.Minute))

	reviews, err := NewReviewService(db).ListReviewsByUser(userID)
	require.NoError(t, err)

	require.Len(t, reviews, 3, "only the user's own reviews")
	assert.Equal(t, newest, reviews[0].ID)
	assert.Equal(t, middle, reviews[1].ID)
	assert.Equal(t, oldest, reviews[2].ID)
}

func TestUpdateReview(t *testing.T) {
	db := newTestDB(t)
	userID := insertUser(t, db, "alice")
	itemID := insertItem(t, db, "Widget A")
	reviewID := insertReview(t, db, userID, itemID, 3, time.Now().UTC())
	svc := NewReviewService(db)

	updated, err := svc.UpdateReview(reviewID, userID, 4, "changed my mind")
	require.NoError(t, err)

	assert.Equal(t, 4, updated.Rating)
	assert.Equal(t, "changed my mind", updated.Text)
	require.NotNil(t, updated.UpdatedAt)

	stored, err := svc.GetReviewForItem(itemID, reviewID)
	require.NoError(t, err)
	assert.Equal(t, 4, stored.Rating)
	assert.NotNil(t, stored.UpdatedAt)
}

func TestUpdateReviewByNonOwner(t *testing.T) {
	db := newTestDB(t)
	ownerID := insertUser(t, db, "alice")
	intruderID := insertUser(t, db, "mallory")
	itemID := insertItem(t, db, "Widget A")
	reviewID := insertReview(t, db, ownerID, itemID, 3, time.Now().UTC())
	svc := NewReviewService(db)

	_, err := svc.UpdateReview(reviewID, intruderID, 1, "trashed")
	assert.True(t, apperror.IsKind(err, apperror.Forbidden))

	stored, err := svc.GetReviewForItem(itemID, reviewID)
	require.NoError(t, err)
	assert.Equal(t, 3, stored.Rating, "review must be unchanged")
	assert.Equal(t, "some text", stored.Text)
}

func TestUpdateReviewValidation(t *testing.T) {
	svc := NewReviewService(nil)

	_, err := svc.UpdateReview("review-1", "user-1", 3, "")
	assert.True(t, apperror.IsKind(err, apperror.Validation))

	_, err = svc.UpdateReview("review-1", "user-1", 9, "text")
	assert.True(t, apperror.IsKind(err, apperror.Validation))
}

func TestDeleteReview(t *testing.T) {
	db := newTestDB(t)
	userID := insertUser(t, db, "alice")
	itemID := insertItem(t, db, "Widget A")
	reviewID := insertReview(t, db, userID, itemID, 5, time.Now().UTC())
	svc := NewReviewService(db)

	deleted, err := svc.DeleteReview(reviewID, userID)
	require.NoError(t, err)
	assert.Equal(t, reviewID, deleted.ID)

	// A second delete finds nothing.
	_, err = svc.DeleteReview(reviewID, userID)
	assert.True(t, apperror.IsKind(err, apperror.NotFound))
}

func TestDeleteReviewByNonOwner(t *testing.T) {
	db := newTestDB(t)
	ownerID := insertUser(t, db, "alice")
	intruderID := insertUser(t, db, "mallory")
	itemID := insertItem(t, db, "Widget A")
	reviewID := insertReview(t, db, ownerID, itemID, 5, time.Now().UTC())

	_, err := NewReviewService(db).DeleteReview(reviewID, intruderID)
	assert.True(t, apperror.IsKind(err, apperror.Forbidden))
	assert.Equal(t, 1, countRows(t, db, "reviews"))
}
