package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/ratewise/store-ratings/internal/core/domain"
	"github.com/ratewise/store-ratings/internal/core/ports"
)

// StoreService implements the store catalog surfaces: the authenticated
// store list, the admin store list, and admin store creation.
type StoreService struct {
	stores  ports.StoreRepository
	ratings ports.RatingRepository
	users   ports.UserRepository
	logger  zerolog.Logger
}

func NewStoreService(stores ports.StoreRepository, ratings ports.RatingRepository, users ports.UserRepository, logger zerolog.Logger) *StoreService {
	return &StoreService{stores: stores, ratings: ratings, users: users, logger: logger}
}

// ListForUser returns stores matching query (name/address), each annotated
// with the overall average and the caller's own rating when present.
func (s *StoreService) ListForUser(ctx context.Context, userID, query string) ([]ports.StoreListing, error) {
	stores, err := s.stores.Search(ctx, ports.StoreFilter{Query: query})
	if err != nil {
		return nil, err
	}

	ids := storeIDs(stores)
	averages, err := s.ratings.AveragesForStores(ctx, ids)
	if err != nil {
		return nil, err
	}
	mine, err := s.ratings.UserValuesForStores(ctx, userID, ids)
	if err != nil {
		return nil, err
	}

	listings := make([]ports.StoreListing, len(stores))
	for i, st := range stores {
		listing := ports.StoreListing{
			ID:            st.ID,
			Name:          st.Name,
			Address:       st.Address,
			OverallRating: round2(averages[st.ID]),
		}
		if v, ok := mine[st.ID]; ok {
			value := v
			listing.MyRating = &value
		}
		listings[i] = listing
	}
	return listings, nil
}

// AdminList returns stores matching query (name/email/address) with their
// live-computed averages.
func (s *StoreService) AdminList(ctx context.Context, query string) ([]ports.AdminStoreListing, error) {
	stores, err := s.stores.Search(ctx, ports.StoreFilter{Query: query, MatchEmail: true})
	if err != nil {
		return nil, err
	}

	averages, err := s.ratings.AveragesForStores(ctx, storeIDs(stores))
	if err != nil {
		return nil, err
	}

	listings := make([]ports.AdminStoreListing, len(stores))
	for i, st := range stores {
		listings[i] = ports.AdminStoreListing{
			ID:      st.ID,
			Name:    st.Name,
			Email:   st.Email,
			Address: st.Address,
			Rating:  round2(averages[st.ID]),
		}
	}
	return listings, nil
}

// Create adds a store to the catalog. When an owner is given it must
// reference an existing user.
func (s *StoreService) Create(ctx context.Context, input ports.CreateStoreInput) (*domain.Store, error) {
	if input.OwnerUserID != "" {
		if _, err := s.users.FindByID(ctx, input.OwnerUserID); err != nil {
			return nil, err
		}
	}

	store := &domain.Store{
		ID:          uuid.NewString(),
		Name:        input.Name,
		Email:       input.Email,
		Address:     input.Address,
		OwnerUserID: input.OwnerUserID,
		CreatedAt:   time.Now().UTC(),
	}

	created, err := s.stores.Create(ctx, store)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("store_id", created.ID).Str("owner_user_id", input.OwnerUserID).Msg("store created")
	return created, nil
}

func storeIDs(stores []*domain.Store) []string {
	ids := make([]string, len(stores))
	for i, st := range stores {
		ids[i] = st.ID
	}
	return ids
}
