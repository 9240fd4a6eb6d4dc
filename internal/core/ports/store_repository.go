package ports

import (
	"context"

	"github.com/ratewise/store-ratings/internal/core/domain"
)

// StoreFilter carries store-list query parameters. Query matches name and
// address case-insensitively; MatchEmail additionally matches email (the
// admin surface searches email, the public surface does not).
type StoreFilter struct {
	Query      string
	MatchEmail bool
}

// StoreRepository defines persistence operations for the store catalog.
type StoreRepository interface {
	Create(ctx context.Context, store *domain.Store) (*domain.Store, error)
	FindByID(ctx context.Context, id string) (*domain.Store, error)
	// FindByOwner returns the store owned by ownerUserID, or
	// domain.ErrStoreNotFound when the owner has no store linked.
	FindByOwner(ctx context.Context, ownerUserID string) (*domain.Store, error)
	Search(ctx context.Context, filter StoreFilter) ([]*domain.Store, error)
	Count(ctx context.Context) (int64, error)
}
