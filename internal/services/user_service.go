package services

import (
	"database/sql"
	"errors"
	"strings"

	"github.com/aaronlopez/review-board-be/internal/apperror"
	"github.com/aaronlopez/review-board-be/internal/models"
	"github.com/google/uuid"
	"github.com/mattn/go-sqlite3"
	"golang.org/x/crypto/bcrypt"
)

// maxUsernameLen matches the length bound the schema historically enforced.
const maxUsernameLen = 20

// UserServiceProvider defines the interface for user services.
type UserServiceProvider interface {
	CreateUser(username, password string) (models.User, error)
	AuthenticateUser(username, password string) (models.User, error)
	GetUserByID(id string) (models.User, error)
}

// UserService provides business logic for user accounts.
type UserService struct {
	db *sql.DB
}

// NewUserService creates a new UserService.
func NewUserService(db *sql.DB) *UserService {
	return &UserService{db: db}
}

// CreateUser creates a new user, hashing their password.
func (s *UserService) CreateUser(username, password string) (models.User, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return models.User{}, apperror.NewValidation("username and password are required")
	}
	if len(username) > maxUsernameLen {
		return models.User{}, apperror.NewValidation("username must be at most 20 characters")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, apperror.NewInternal("failed to hash password", err)
	}

	user := models.User{
		ID:           uuid.New().String(),
		Username:     username,
		PasswordHash: string(hashedPassword),
	}

	_, err = s.db.Exec(
		"INSERT INTO users(id, username, password_hash) VALUES(?, ?, ?)",
		user.ID, user.Username, user.PasswordHash,
	)
	if err != nil {
		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique {
			return models.User{}, apperror.NewConflict("username already exists", err)
		}
		return models.User{}, apperror.NewDatabase("failed to create user", err)
	}

	// Return user without password hash
	user.PasswordHash = ""
	return user, nil
}

// AuthenticateUser verifies a user's credentials. Unknown usernames and wrong
// passwords produce the same error so callers cannot tell the two apart.
func (s *UserService) AuthenticateUser(username, password string) (models.User, error) {
	if username == "" || password == "" {
		return models.User{}, apperror.NewValidation("username and password are required")
	}

	var user models.User
	row := s.db.QueryRow("SELECT id, username, password_hash FROM users WHERE username = ?", username)
	err := row.Scan(&user.ID, &user.Username, &user.PasswordHash)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, apperror.NewAuth("invalid credentials", nil)
		}
		return models.User{}, apperror.NewDatabase("failed to look up user", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return models.User{}, apperror.NewAuth("invalid credentials", nil)
	}

	user.PasswordHash = ""
	return user, nil
}

// GetUserByID retrieves a single user by their ID.
func (s *UserService) GetUserByID(id string) (models.User, error) {
	var user models.User
	row := s.db.QueryRow("SELECT id, username FROM users WHERE id = ?", id)
	err := row.Scan(&user.ID, &user.Username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, apperror.NewNotFound("user not found")
		}
		return models.User{}, apperror.NewDatabase("failed to get user", err)
	}
	return user, nil
}
