package database

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// Seed inserts the demo fixture set: three users, two items, a review per
// item and a couple of comments. Callers are expected to Reset and Migrate
// first so the inserts land in empty tables.
func Seed(db *sql.DB) error {
	users := []struct {
		id       string
		username string
		password string
	}{
		{uuid.New().String(), "alice", "password123"},
		{uuid.New().String(), "bob", "password123"},
		{uuid.New().String(), "charlie", "password123"},
	}
	for _, u := range users {
		hash, err := bcrypt.GenerateFromPassword([]byte(u.password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("failed to hash seed password: %w", err)
		}
		if _, err := db.Exec(
			"INSERT INTO users(id, username, password_hash) VALUES(?, ?, ?)",
			u.id, u.username, string(hash),
		); err != nil {
			return fmt.Errorf("failed to seed user %s: %w", u.username, err)
		}
	}

	itemA := uuid.New().String()
	itemB := uuid.New().String()
	for _, it := range []struct {
		id, name, description string
	}{
		{itemA, "Widget A", "A basic widget for daily tasks."},
		{itemB, "Gadget B", "A powerful gadget with multiple uses."},
	} {
		if _, err := db.Exec(
			"INSERT INTO items(id, name, description) VALUES(?, ?, ?)",
			it.id, it.name, it.description,
		); err != nil {
			return fmt.Errorf("failed to seed item %s: %w", it.name, err)
		}
	}

	now := time.Now().UTC()
	review1 := uuid.New().String()
	review2 := uuid.New().String()
	for _, rv := range []struct {
		id, userID, itemID string
		rating             int
		text               string
	}{
		{review1, users[0].id, itemA, 5, "This widget is fantastic!"},
		{review2, users[1].id, itemB, 4, "Gadget B is pretty good, but has some flaws."},
	} {
		if _, err := db.Exec(
			"INSERT INTO reviews(id, user_id, items_id, rating, text, created_at) VALUES(?, ?, ?, ?, ?, ?)",
			rv.id, rv.userID, rv.itemID, rv.rating, rv.text, now,
		); err != nil {
			return fmt.Errorf("failed to seed review: %w", err)
		}
	}

	for _, c := range []struct {
		userID, reviewID, text string
	}{
		{users[2].id, review1, "I agree, Widget A is great!"},
		{users[0].id, review2, "What flaws did you find?"},
	} {
		if _, err := db.Exec(
			"INSERT INTO comments(id, user_id, review_id, text, created_at) VALUES(?, ?, ?, ?, ?)",
			uuid.New().String(), c.userID, c.reviewID, c.text, now,
		); err != nil {
			return fmt.Errorf("failed to seed comment: %w", err)
		}
	}

	return nil
}
