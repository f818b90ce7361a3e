package services

import (
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/aaronlopez/review-board-be/internal/database"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// newTestDB opens a throwaway SQLite database with the real schema applied,
// so service tests exercise the actual constraints and cascades.
func newTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := database.New(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, database.Migrate(db))
	return db
}

func insertUser(t *testing.T, db *sql.DB, username string) string {
	t.Helper()
	id := uuid.New().String()
	_, err := db.Exec(
		"INSERT INTO users(id, username, password_hash) VALUES(?, ?, ?)",
		id, username, "x",
	)
	require.NoError(t, err)
	return id
}

func insertItem(t *testing.T, db *sql.DB, name string) string {
	t.Helper()
	id := uuid.New().String()
	_, err := db.Exec("INSERT INTO items(id, name) VALUES(?, ?)", id, name)
	require.NoError(t, err)
	return id
}

func insertReview(t *testing.T, db *sql.DB, userID, itemID string, rating int, createdAt time.Time) string {
	t.Helper()
	id := uuid.New().String()
	_, err := db.Exec(
		"INSERT INTO reviews(id, user_id, items_id, rating, text, created_at) VALUES(?, ?, ?, ?, ?, ?)",
		id, userID, itemID, rating, "some text", createdAt,
	)
	require.NoError(t, err)
	return id
}

func insertComment(t *testing.T, db *sql.DB, userID, reviewID, text string, createdAt time.Time) string {
	t.Helper()
	id := uuid.New().String()
	_, err := db.Exec(
		"INSERT INTO comments(id, user_id, review_id, text, created_at) VALUES(?, ?, ?, ?, ?)",
		id, userID, reviewID, text, createdAt,
	)
	require.NoError(t, err)
	return id
}

func countRows(t *testing.T, db *sql.DB, table string) int {
	t.Helper()
	var n int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM "+table).Scan(&n))
	return n
}
