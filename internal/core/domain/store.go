package domain

import "time"

// Store is a rateable establishment. Its displayed rating is always derived
// from the current Rating rows, never trusted from a stored field.
type Store struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Address     string    `json:"address"`
	OwnerUserID string    `json:"owner_user_id,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}
