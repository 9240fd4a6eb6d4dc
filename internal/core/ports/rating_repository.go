package ports

import (
	"context"
	"time"

	"github.com/ratewise/store-ratings/internal/core/domain"
)

// Rater is one rating row joined with the rater's identity, as shown on the
// owner dashboard.
type Rater struct {
	UserID    string    `json:"userId"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Value     int       `json:"value"`
	CreatedAt time.Time `json:"createdAt"`
}

// RatingRepository defines persistence operations for the rating ledger.
type RatingRepository interface {
	// Upsert atomically inserts or updates the single rating row keyed on
	// (userID, storeID). On update the value is overwritten and the row's
	// id and created_at are preserved. The uniqueness constraint on the
	// pair is the concurrency mechanism; implementations must not
	// check-then-write. The resulting row is returned.
	Upsert(ctx context.Context, userID, storeID string, value int) (*domain.Rating, error)
	// AverageForStore returns the arithmetic mean of all values for the
	// store, unrounded, or 0 when the store has no ratings.
	AverageForStore(ctx context.Context, storeID string) (float64, error)
	// AveragesForStores returns unrounded means keyed by store id; stores
	// without ratings are absent from the map.
	AveragesForStores(ctx context.Context, storeIDs []string) (map[string]float64, error)
	// UserValuesForStores returns the user's own rating values keyed by
	// store id; unrated stores are absent from the map.
	UserValuesForStores(ctx context.Context, userID string, storeIDs []string) (map[string]int, error)
	RatersForStore(ctx context.Context, storeID string) ([]Rater, error)
	Count(ctx context.Context) (int64, error)
}
