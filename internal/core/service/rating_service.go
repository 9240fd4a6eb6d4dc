package service

import (
	"context"
	"math"

	"github.com/rs/zerolog"

	"github.com/ratewise/store-ratings/internal/core/domain"
	"github.com/ratewise/store-ratings/internal/core/ports"
)

// RatingService implements rating submission and the owner dashboard over
// the rating ledger.
type RatingService struct {
	ratings ports.RatingRepository
	stores  ports.StoreRepository
	logger  zerolog.Logger
}

func NewRatingService(ratings ports.RatingRepository, stores ports.StoreRepository, logger zerolog.Logger) *RatingService {
	return &RatingService{ratings: ratings, stores: stores, logger: logger}
}

// Submit upserts the caller's rating for a store. The (user, store)
// uniqueness constraint in the ledger makes the write atomic against a
// concurrent submission for the same pair.
func (s *RatingService) Submit(ctx context.Context, userID, storeID string, value int) (*domain.Rating, error) {
	if !domain.ValidRatingValue(value) {
		return nil, domain.ErrInvalidRating
	}

	if _, err := s.stores.FindByID(ctx, storeID); err != nil {
		return nil, err
	}

	rating, err := s.ratings.Upsert(ctx, userID, storeID, value)
	if err != nil {
		s.logger.Error().Err(err).Str("store_id", storeID).Msg("rating upsert failed")
		return nil, err
	}

	s.logger.Info().Str("store_id", storeID).Int("value", value).Msg("rating saved")
	return rating, nil
}

// ForOwner returns the rater list and average for the caller's store. The
// average is computed from the current ledger rows, never from a cached or
// pre-write snapshot.
func (s *RatingService) ForOwner(ctx context.Context, ownerUserID string) (*ports.OwnerStoreRatings, error) {
	store, err := s.stores.FindByOwner(ctx, ownerUserID)
	if err != nil {
		return nil, err
	}

	raters, err := s.ratings.RatersForStore(ctx, store.ID)
	if err != nil {
		return nil, err
	}

	avg, err := s.ratings.AverageForStore(ctx, store.ID)
	if err != nil {
		return nil, err
	}

	return &ports.OwnerStoreRatings{
		StoreID: store.ID,
		Average: round2(avg),
		Raters:  raters,
	}, nil
}

// round2 rounds to 2 decimal places for display consistency across every
// surface that shows an average.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
