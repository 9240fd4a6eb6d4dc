package domain

import (
	"errors"
	"time"
)

const (
	MinRatingValue = 1
	MaxRatingValue = 5
)

var (
	ErrInvalidRating      = errors.New("rating must be an integer between 1 and 5")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailExists        = errors.New("email already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrStoreNotFound      = errors.New("store not found")
	ErrValidation         = errors.New("validation failed")
	ErrForbidden          = errors.New("access forbidden")
)

// Rating is a single user's 1-5 score for a store. At most one row exists per
// (UserID, StoreID) pair; resubmission overwrites Value in place and keeps
// the original ID and CreatedAt.
type Rating struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	StoreID   string    `json:"store_id"`
	Value     int       `json:"value"`
	CreatedAt time.Time `json:"created_at"`
}

// ValidRatingValue reports whether v is inside the accepted 1-5 range.
func ValidRatingValue(v int) bool {
	return v >= MinRatingValue && v <= MaxRatingValue
}
