package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/ratewise/store-ratings/internal/core/domain"
	"github.com/ratewise/store-ratings/internal/core/ports"
)

// AdminService implements the admin read surfaces: dashboard counts, the
// filtered user list, and single-user detail.
type AdminService struct {
	users   ports.UserRepository
	stores  ports.StoreRepository
	ratings ports.RatingRepository
	cache   ports.CountsCache
	logger  zerolog.Logger
}

func NewAdminService(users ports.UserRepository, stores ports.StoreRepository, ratings ports.RatingRepository, cache ports.CountsCache, logger zerolog.Logger) *AdminService {
	return &AdminService{users: users, stores: stores, ratings: ratings, cache: cache, logger: logger}
}

// Dashboard returns system-wide row counts. Counts are served from the
// short-TTL cache when available; cache failures fall through to a direct
// query.
func (s *AdminService) Dashboard(ctx context.Context) (*ports.DashboardCounts, error) {
	if s.cache != nil {
		cached, err := s.cache.Get(ctx)
		if err != nil {
			s.logger.Warn().Err(err).Msg("dashboard counts cache read failed")
		} else if cached != nil {
			return cached, nil
		}
	}

	usersCount, err := s.users.Count(ctx)
	if err != nil {
		return nil, err
	}
	storesCount, err := s.stores.Count(ctx)
	if err != nil {
		return nil, err
	}
	ratingsCount, err := s.ratings.Count(ctx)
	if err != nil {
		return nil, err
	}

	counts := &ports.DashboardCounts{
		UsersCount:   usersCount,
		StoresCount:  storesCount,
		RatingsCount: ratingsCount,
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, counts); err != nil {
			s.logger.Warn().Err(err).Msg("dashboard counts cache write failed")
		}
	}

	return counts, nil
}

// Users returns users matching the text query and optional role filter.
func (s *AdminService) Users(ctx context.Context, query, role string) ([]ports.UserSummary, error) {
	if role != "" && !domain.ValidRole(role) {
		return nil, domain.ErrValidation
	}

	users, err := s.users.Search(ctx, ports.UserFilter{Query: query, Role: role})
	if err != nil {
		return nil, err
	}

	summaries := make([]ports.UserSummary, len(users))
	for i, u := range users {
		summaries[i] = ports.UserSummary{
			ID:      u.ID,
			Name:    u.Name,
			Email:   u.Email,
			Address: u.Address,
			Role:    u.Role,
		}
	}
	return summaries, nil
}

// UserDetail returns a single user. For an OWNER the linked store's
// live-computed average is included; an owner without a store linked yields
// a nil rating, matching any non-owner role.
func (s *AdminService) UserDetail(ctx context.Context, id string) (*ports.UserDetail, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	detail := &ports.UserDetail{
		ID:      user.ID,
		Name:    user.Name,
		Email:   user.Email,
		Address: user.Address,
		Role:    user.Role,
	}

	if user.Role == domain.RoleOwner {
		store, err := s.stores.FindByOwner(ctx, user.ID)
		switch {
		case err == nil:
			avg, err := s.ratings.AverageForStore(ctx, store.ID)
			if err != nil {
				return nil, err
			}
			rounded := round2(avg)
			detail.OwnerStoreRating = &rounded
		case errors.Is(err, domain.ErrStoreNotFound):
			// owner without a store linked
		default:
			return nil, err
		}
	}

	return detail, nil
}
