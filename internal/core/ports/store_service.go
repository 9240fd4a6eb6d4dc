package ports

import (
	"context"

	"github.com/ratewise/store-ratings/internal/core/domain"
)

// StoreListing is one row of the authenticated user's store list: the live
// overall average plus the caller's own rating when present.
type StoreListing struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Address       string  `json:"address"`
	OverallRating float64 `json:"overallRating"`
	MyRating      *int    `json:"myRating"`
}

// AdminStoreListing is one row of the admin store list.
type AdminStoreListing struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Email   string  `json:"email"`
	Address string  `json:"address"`
	Rating  float64 `json:"rating"`
}

// CreateStoreInput carries the admin store-creation fields. OwnerUserID is
// optional; when set it must reference an existing user.
type CreateStoreInput struct {
	Name        string
	Email       string
	Address     string
	OwnerUserID string
}

type StoreService interface {
	// ListForUser returns stores matching the search query, each annotated
	// with its overall average and the caller's own rating.
	ListForUser(ctx context.Context, userID, query string) ([]StoreListing, error)
	// AdminList returns stores matching the search query annotated with
	// their live-computed average.
	AdminList(ctx context.Context, query string) ([]AdminStoreListing, error)
	Create(ctx context.Context, input CreateStoreInput) (*domain.Store, error)
}
