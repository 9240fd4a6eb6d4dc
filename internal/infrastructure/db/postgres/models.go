package postgres

import (
	"time"

	"github.com/ratewise/store-ratings/internal/core/domain"
)

type userModel struct {
	ID           string `gorm:"primaryKey;type:uuid"`
	Name         string `gorm:"size:60;not null"`
	Email        string `gorm:"uniqueIndex;size:255;not null"`
	Address      string `gorm:"size:400"`
	PasswordHash string `gorm:"size:100;not null"`
	Role         string `gorm:"size:16;not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (userModel) TableName() string { return "users" }

type storeModel struct {
	ID          string  `gorm:"primaryKey;type:uuid"`
	Name        string  `gorm:"size:255;not null"`
	Email       string  `gorm:"size:255"`
	Address     string  `gorm:"size:400"`
	OwnerUserID *string `gorm:"type:uuid;index"`
	CreatedAt   time.Time
}

func (storeModel) TableName() string { return "stores" }

// ratingModel carries the composite unique index that makes the rating
// upsert atomic: two concurrent submissions for the same (user, store) pair
// serialize on this constraint instead of racing an application-level check.
type ratingModel struct {
	ID        string `gorm:"primaryKey;type:uuid"`
	UserID    string `gorm:"type:uuid;not null;uniqueIndex:idx_ratings_user_store"`
	StoreID   string `gorm:"type:uuid;not null;uniqueIndex:idx_ratings_user_store"`
	Value     int    `gorm:"not null"`
	CreatedAt time.Time
}

func (ratingModel) TableName() string { return "ratings" }

func (m *userModel) toDomain() *domain.User {
	return &domain.User{
		ID:           m.ID,
		Name:         m.Name,
		Email:        m.Email,
		Address:      m.Address,
		PasswordHash: m.PasswordHash,
		Role:         m.Role,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func fromDomainUser(u *domain.User) *userModel {
	return &userModel{
		ID:           u.ID,
		Name:         u.Name,
		Email:        u.Email,
		Address:      u.Address,
		PasswordHash: u.PasswordHash,
		Role:         u.Role,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}

func (m *storeModel) toDomain() *domain.Store {
	owner := ""
	if m.OwnerUserID != nil {
		owner = *m.OwnerUserID
	}
	return &domain.Store{
		ID:          m.ID,
		Name:        m.Name,
		Email:       m.Email,
		Address:     m.Address,
		OwnerUserID: owner,
		CreatedAt:   m.CreatedAt,
	}
}

func fromDomainStore(s *domain.Store) *storeModel {
	m := &storeModel{
		ID:        s.ID,
		Name:      s.Name,
		Email:     s.Email,
		Address:   s.Address,
		CreatedAt: s.CreatedAt,
	}
	if s.OwnerUserID != "" {
		owner := s.OwnerUserID
		m.OwnerUserID = &owner
	}
	return m
}

func (m *ratingModel) toDomain() *domain.Rating {
	return &domain.Rating{
		ID:        m.ID,
		UserID:    m.UserID,
		StoreID:   m.StoreID,
		Value:     m.Value,
		CreatedAt: m.CreatedAt,
	}
}
