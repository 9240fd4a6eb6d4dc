package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/ratewise/store-ratings/internal/core/domain"
	"github.com/ratewise/store-ratings/internal/core/ports"
)

type RatingRepository struct {
	db *gorm.DB
}

func NewRatingRepository(db *gorm.DB) *RatingRepository {
	return &RatingRepository{db: db}
}

// Upsert inserts or updates the single rating row for (userID, storeID) in
// one statement. ON CONFLICT targets the composite unique index, so the
// database serializes concurrent submissions for the same pair; only value
// is assigned on conflict, which preserves the existing id and created_at.
func (r *RatingRepository) Upsert(ctx context.Context, userID, storeID string, value int) (*domain.Rating, error) {
	row := ratingModel{
		ID:        uuid.NewString(),
		UserID:    userID,
		StoreID:   storeID,
		Value:     value,
		CreatedAt: time.Now().UTC(),
	}

	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "store_id"}},
			DoUpdates: clause.Assignments(map[string]interface{}{"value": value}),
		}).
		Create(&row).Error
	if err != nil {
		return nil, fmt.Errorf("upsert rating: %w", err)
	}

	// Read the row back: on the update path the generated id and timestamp
	// above were discarded in favor of the existing ones.
	var saved ratingModel
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND store_id = ?", userID, storeID).
		First(&saved).Error; err != nil {
		return nil, fmt.Errorf("reload rating: %w", err)
	}
	return saved.toDomain(), nil
}

func (r *RatingRepository) AverageForStore(ctx context.Context, storeID string) (float64, error) {
	var avg float64
	err := r.db.WithContext(ctx).
		Model(&ratingModel{}).
		Where("store_id = ?", storeID).
		Select("COALESCE(AVG(value), 0)").
		Scan(&avg).Error
	if err != nil {
		return 0, fmt.Errorf("average for store: %w", err)
	}
	return avg, nil
}

func (r *RatingRepository) AveragesForStores(ctx context.Context, storeIDs []string) (map[string]float64, error) {
	averages := make(map[string]float64, len(storeIDs))
	if len(storeIDs) == 0 {
		return averages, nil
	}

	var rows []struct {
		StoreID string
		Avg     float64
	}
	err := r.db.WithContext(ctx).
		Model(&ratingModel{}).
		Select("store_id, AVG(value) AS avg").
		Where("store_id IN ?", storeIDs).
		Group("store_id").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("averages for stores: %w", err)
	}

	for _, row := range rows {
		averages[row.StoreID] = row.Avg
	}
	return averages, nil
}

func (r *RatingRepository) UserValuesForStores(ctx context.Context, userID string, storeIDs []string) (map[string]int, error) {
	values := make(map[string]int, len(storeIDs))
	if len(storeIDs) == 0 {
		return values, nil
	}

	var rows []ratingModel
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND store_id IN ?", userID, storeIDs).
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("user ratings: %w", err)
	}

	for _, row := range rows {
		values[row.StoreID] = row.Value
	}
	return values, nil
}

func (r *RatingRepository) RatersForStore(ctx context.Context, storeID string) ([]ports.Rater, error) {
	var raters []ports.Rater
	err := r.db.WithContext(ctx).
		Table("ratings").
		Select("ratings.user_id, users.name, users.email, ratings.value, ratings.created_at").
		Joins("JOIN users ON users.id = ratings.user_id").
		Where("ratings.store_id = ?", storeID).
		Order("ratings.created_at DESC").
		Scan(&raters).Error
	if err != nil {
		return nil, fmt.Errorf("raters for store: %w", err)
	}
	if raters == nil {
		raters = []ports.Rater{}
	}
	return raters, nil
}

func (r *RatingRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&ratingModel{}).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("count ratings: %w", err)
	}
	return n, nil
}
