package ports

import (
	"context"

	"github.com/ratewise/store-ratings/internal/core/domain"
)

// SignupInput carries the public signup fields. Any role supplied by the
// caller is ignored; signup always creates a USER account.
type SignupInput struct {
	Name     string
	Email    string
	Address  string
	Password string
}

// CreateUserInput is the admin-only variant of SignupInput with an explicit
// role choice.
type CreateUserInput struct {
	Name     string
	Email    string
	Address  string
	Password string
	Role     string
}

type AuthService interface {
	Signup(ctx context.Context, input SignupInput) (*domain.User, error)
	CreateUser(ctx context.Context, input CreateUserInput) (*domain.User, error)
	// Login returns a signed token and the user's role. Unknown email and
	// wrong password both fail with domain.ErrInvalidCredentials so the
	// response does not reveal whether an account exists.
	Login(ctx context.Context, email, password string) (token, role string, err error)
	UpdatePassword(ctx context.Context, userID, password string) error
}
