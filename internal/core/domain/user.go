package domain

import "time"

const (
	RoleAdmin = "ADMIN"
	RoleOwner = "OWNER"
	RoleUser  = "USER"
)

// ValidRole reports whether role is one of the three known roles.
func ValidRole(role string) bool {
	return role == RoleAdmin || role == RoleOwner || role == RoleUser
}

// User models an authenticated actor. Role is fixed at creation; the only
// mutation after creation is a password change.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Address      string    `json:"address,omitempty"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
