package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/ratewise/store-ratings/internal/core/domain"
	"github.com/ratewise/store-ratings/internal/core/ports"
)

type stubStoreService struct {
	listForUserFn func(ctx context.Context, userID, query string) ([]ports.StoreListing, error)
	adminListFn   func(ctx context.Context, query string) ([]ports.AdminStoreListing, error)
	createFn      func(ctx context.Context, input ports.CreateStoreInput) (*domain.Store, error)
}

func (s *stubStoreService) ListForUser(ctx context.Context, userID, query string) ([]ports.StoreListing, error) {
	return s.listForUserFn(ctx, userID, query)
}

func (s *stubStoreService) AdminList(ctx context.Context, query string) ([]ports.AdminStoreListing, error) {
	return s.adminListFn(ctx, query)
}

func (s *stubStoreService) Create(ctx context.Context, input ports.CreateStoreInput) (*domain.Store, error) {
	return s.createFn(ctx, input)
}

type stubRatingService struct {
	submitFn   func(ctx context.Context, userID, storeID string, value int) (*domain.Rating, error)
	forOwnerFn func(ctx context.Context, ownerUserID string) (*ports.OwnerStoreRatings, error)
}

func (s *stubRatingService) Submit(ctx context.Context, userID, storeID string, value int) (*domain.Rating, error) {
	return s.submitFn(ctx, userID, storeID, value)
}

func (s *stubRatingService) ForOwner(ctx context.Context, ownerUserID string) (*ports.OwnerStoreRatings, error) {
	return s.forOwnerFn(ctx, ownerUserID)
}

func authedContext(e *echo.Echo, method, target, body, userID, role string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user_id", userID)
	c.Set("role", role)
	return c, rec
}

func TestStoreHandler_List(t *testing.T) {
	e := newEcho()
	four := 4
	storeSvc := &stubStoreService{
		listForUserFn: func(ctx context.Context, userID, query string) ([]ports.StoreListing, error) {
			if userID != "u1" {
				t.Fatalf("unexpected user id %q", userID)
			}
			if query != "corner" {
				t.Fatalf("unexpected query %q", query)
			}
			return []ports.StoreListing{
				{ID: "s1", Name: "Corner Cafe", Address: "1 Main St", OverallRating: 4.5, MyRating: &four},
			}, nil
		},
	}
	handler := NewStoreHandler(storeSvc, &stubRatingService{})

	c, rec := authedContext(e, http.MethodGet, "/stores?q=corner", "", "u1", domain.RoleUser)
	if err := handler.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var listings []ports.StoreListing
	if err := json.Unmarshal(rec.Body.Bytes(), &listings); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(listings) != 1 || listings[0].OverallRating != 4.5 {
		t.Fatalf("unexpected listings: %+v", listings)
	}
	if listings[0].MyRating == nil || *listings[0].MyRating != 4 {
		t.Fatalf("expected myRating 4, got %v", listings[0].MyRating)
	}
}

func TestStoreHandler_List_NoClaims(t *testing.T) {
	e := newEcho()
	handler := NewStoreHandler(&stubStoreService{}, &stubRatingService{})

	req := httptest.NewRequest(http.MethodGet, "/stores", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.List(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestStoreHandler_SubmitRating_Success(t *testing.T) {
	e := newEcho()
	ratingSvc := &stubRatingService{
		submitFn: func(ctx context.Context, userID, storeID string, value int) (*domain.Rating, error) {
			if userID != "u1" || storeID != "s1" || value != 4 {
				t.Fatalf("unexpected call: %s %s %d", userID, storeID, value)
			}
			return &domain.Rating{ID: "r1", UserID: userID, StoreID: storeID, Value: value, CreatedAt: time.Now()}, nil
		},
	}
	handler := NewStoreHandler(&stubStoreService{}, ratingSvc)

	c, rec := authedContext(e, http.MethodPost, "/stores/s1/ratings", `{"value":4}`, "u1", domain.RoleUser)
	c.SetParamNames("id")
	c.SetParamValues("s1")

	if err := handler.SubmitRating(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var rating domain.Rating
	if err := json.Unmarshal(rec.Body.Bytes(), &rating); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if rating.Value != 4 {
		t.Fatalf("expected value 4, got %d", rating.Value)
	}
}

func TestStoreHandler_SubmitRating_RejectsNonIntegerPayloads(t *testing.T) {
	e := newEcho()
	ratingSvc := &stubRatingService{
		submitFn: func(ctx context.Context, userID, storeID string, value int) (*domain.Rating, error) {
			t.Fatalf("service should not be called")
			return nil, nil
		},
	}
	handler := NewStoreHandler(&stubStoreService{}, ratingSvc)

	bodies := map[string]string{
		"fractional value": `{"value":3.5}`,
		"string value":     `{"value":"3"}`,
		"missing value":    `{}`,
		"null value":       `{"value":null}`,
	}

	for name, body := range bodies {
		t.Run(name, func(t *testing.T) {
			c, _ := authedContext(e, http.MethodPost, "/stores/s1/ratings", body, "u1", domain.RoleUser)
			c.SetParamNames("id")
			c.SetParamValues("s1")

			if err := handler.SubmitRating(c); !errors.Is(err, domain.ErrInvalidRating) {
				t.Fatalf("expected ErrInvalidRating, got %v", err)
			}
		})
	}
}

func TestStoreHandler_SubmitRating_ServiceErrors(t *testing.T) {
	e := newEcho()

	cases := []struct {
		name string
		err  error
	}{
		{"out of range", domain.ErrInvalidRating},
		{"unknown store", domain.ErrStoreNotFound},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ratingSvc := &stubRatingService{
				submitFn: func(ctx context.Context, userID, storeID string, value int) (*domain.Rating, error) {
					return nil, tc.err
				},
			}
			handler := NewStoreHandler(&stubStoreService{}, ratingSvc)

			c, _ := authedContext(e, http.MethodPost, "/stores/s1/ratings", `{"value":5}`, "u1", domain.RoleUser)
			c.SetParamNames("id")
			c.SetParamValues("s1")

			if err := handler.SubmitRating(c); !errors.Is(err, tc.err) {
				t.Fatalf("expected %v, got %v", tc.err, err)
			}
		})
	}
}
