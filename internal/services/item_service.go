package services

import (
	"database/sql"
	"errors"
	"strings"

	"github.com/aaronlopez/review-board-be/internal/apperror"
	"github.com/aaronlopez/review-board-be/internal/models"
	"github.com/google/uuid"
)

// ItemServiceProvider defines the interface for item services.
type ItemServiceProvider interface {
	CreateItem(name, description string) (models.Item, error)
	GetItemByID(id string) (models.Item, error)
	ListItems() ([]models.Item, error)
}

// ItemService provides business logic for catalog items.
type ItemService struct {
	db *sql.DB
}

// NewItemService creates a new ItemService.
func NewItemService(db *sql.DB) *ItemService {
	return &ItemService{db: db}
}

// CreateItem creates a new item. The name is required, the description is not.
func (s *ItemService) CreateItem(name, description string) (models.Item, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.Item{}, apperror.NewValidation("name is required")
	}

	item := models.Item{
		ID:          uuid.New().String(),
		Name:        name,
		Description: description,
	}

	_, err := s.db.Exec(
		"INSERT INTO items(id, name, description) VALUES(?, ?, ?)",
		item.ID, item.Name, item.Description,
	)
	if err != nil {
		return models.Item{}, apperror.NewDatabase("failed to create item", err)
	}
	return item, nil
}

// GetItemByID retrieves a single item by its ID.
func (s *ItemService) GetItemByID(id string) (models.Item, error) {
	var item models.Item
	var description sql.NullString
	row := s.db.QueryRow("SELECT id, name, description FROM items WHERE id = ?", id)
	err := row.Scan(&item.ID, &item.Name, &description)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Item{}, apperror.NewNotFound("item not found")
		}
		return models.Item{}, apperror.NewDatabase("failed to get item", err)
	}
	item.Description = description.String
	return item, nil
}

// ListItems retrieves every item in the catalog.
func (s *ItemService) ListItems() ([]models.Item, error) {
	rows, err := s.db.Query("SELECT id, name, description FROM items")
	if err != nil {
		return nil, apperror.NewDatabase("failed to list items", err)
	}
	defer rows.Close()

	items := []models.Item{}
	for rows.Next() {
		var item models.Item
		var description sql.NullString
		if err := rows.Scan(&item.ID, &item.Name, &description); err != nil {
			return nil, apperror.NewDatabase("failed to scan item", err)
		}
		item.Description = description.String
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewDatabase("failed to list items", err)
	}
	return items, nil
}
