package ports

import (
	"context"

	"github.com/ratewise/store-ratings/internal/core/domain"
)

// UserFilter carries the admin user-list query parameters. Query matches
// name, email, or address case-insensitively; Role, when set, must equal the
// stored role exactly.
type UserFilter struct {
	Query string
	Role  string
}

// UserRepository defines persistence operations for user identities.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	// UpdatePassword replaces the stored hash for the given user only.
	UpdatePassword(ctx context.Context, id, passwordHash string) error
	Search(ctx context.Context, filter UserFilter) ([]*domain.User, error)
	Count(ctx context.Context) (int64, error)
}
