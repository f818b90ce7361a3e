package models

import "time"

// Review is a user's rated write-up of an item. The items_id JSON name is the
// wire format clients already consume.
type Review struct {
	ID        string     `json:"id"`
	UserID    string     `json:"user_id"`
	ItemID    string     `json:"items_id"`
	Rating    int        `json:"rating"`
	Text      string     `json:"text"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}
