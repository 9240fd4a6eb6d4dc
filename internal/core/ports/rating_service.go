package ports

import (
	"context"

	"github.com/ratewise/store-ratings/internal/core/domain"
)

// OwnerStoreRatings is the owner dashboard payload: the owner's store, its
// rater list, and the live-computed average.
type OwnerStoreRatings struct {
	StoreID string  `json:"storeId"`
	Average float64 `json:"average"`
	Raters  []Rater `json:"raters"`
}

type RatingService interface {
	// Submit validates the value, upserts the caller's rating for the
	// store, and returns the resulting row.
	Submit(ctx context.Context, userID, storeID string, value int) (*domain.Rating, error)
	// ForOwner returns the rater list and average for the store owned by
	// ownerUserID, or domain.ErrStoreNotFound when no store is linked.
	ForOwner(ctx context.Context, ownerUserID string) (*OwnerStoreRatings, error)
}
