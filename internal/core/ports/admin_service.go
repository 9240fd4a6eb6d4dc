package ports

import "context"

// DashboardCounts is the admin dashboard summary. Plain row counts, no
// aggregation.
type DashboardCounts struct {
	UsersCount   int64 `json:"usersCount"`
	StoresCount  int64 `json:"storesCount"`
	RatingsCount int64 `json:"ratingsCount"`
}

// UserDetail is the single-user admin view. OwnerStoreRating is the
// live-computed average of the user's store when the user is an OWNER with a
// store linked, 0 for an OWNER without ratings, and nil for any other role.
type UserDetail struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	Email            string   `json:"email"`
	Address          string   `json:"address"`
	Role             string   `json:"role"`
	OwnerStoreRating *float64 `json:"ownerStoreRating"`
}

// UserSummary is one row of the admin user list.
type UserSummary struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Address string `json:"address"`
	Role    string `json:"role"`
}

// CountsCache is a best-effort cache for dashboard counts. Get returns
// (nil, nil) on a miss; failures are reported but callers degrade to a
// direct query.
type CountsCache interface {
	Get(ctx context.Context) (*DashboardCounts, error)
	Set(ctx context.Context, counts *DashboardCounts) error
}

type AdminService interface {
	Dashboard(ctx context.Context) (*DashboardCounts, error)
	Users(ctx context.Context, query, role string) ([]UserSummary, error)
	UserDetail(ctx context.Context, id string) (*UserDetail, error)
}
