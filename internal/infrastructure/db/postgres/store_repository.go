package postgres

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/ratewise/store-ratings/internal/core/domain"
	"github.com/ratewise/store-ratings/internal/core/ports"
)

type StoreRepository struct {
	db *gorm.DB
}

func NewStoreRepository(db *gorm.DB) *StoreRepository {
	return &StoreRepository{db: db}
}

func (r *StoreRepository) Create(ctx context.Context, store *domain.Store) (*domain.Store, error) {
	m := fromDomainStore(store)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return nil, fmt.Errorf("insert store: %w", err)
	}
	return m.toDomain(), nil
}

func (r *StoreRepository) FindByID(ctx context.Context, id string) (*domain.Store, error) {
	var m storeModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrStoreNotFound
		}
		return nil, fmt.Errorf("find store: %w", err)
	}
	return m.toDomain(), nil
}

func (r *StoreRepository) FindByOwner(ctx context.Context, ownerUserID string) (*domain.Store, error) {
	var m storeModel
	if err := r.db.WithContext(ctx).Where("owner_user_id = ?", ownerUserID).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrStoreNotFound
		}
		return nil, fmt.Errorf("find store by owner: %w", err)
	}
	return m.toDomain(), nil
}

func (r *StoreRepository) Search(ctx context.Context, filter ports.StoreFilter) ([]*domain.Store, error) {
	q := r.db.WithContext(ctx).Model(&storeModel{})
	if filter.Query != "" {
		pattern := "%" + filter.Query + "%"
		if filter.MatchEmail {
			q = q.Where("name ILIKE ? OR email ILIKE ? OR address ILIKE ?", pattern, pattern, pattern)
		} else {
			q = q.Where("name ILIKE ? OR address ILIKE ?", pattern, pattern)
		}
	}

	var models []storeModel
	if err := q.Order("name").Find(&models).Error; err != nil {
		return nil, fmt.Errorf("search stores: %w", err)
	}

	stores := make([]*domain.Store, len(models))
	for i := range models {
		stores[i] = models[i].toDomain()
	}
	return stores, nil
}

func (r *StoreRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&storeModel{}).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("count stores: %w", err)
	}
	return n, nil
}
