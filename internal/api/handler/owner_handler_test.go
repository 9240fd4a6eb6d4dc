package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/ratewise/store-ratings/internal/core/domain"
	"github.com/ratewise/store-ratings/internal/core/ports"
)

func TestOwnerHandler_StoreRatings(t *testing.T) {
	e := newEcho()
	ratingSvc := &stubRatingService{
		forOwnerFn: func(ctx context.Context, ownerUserID string) (*ports.OwnerStoreRatings, error) {
			if ownerUserID != "owner1" {
				t.Fatalf("unexpected owner id %q", ownerUserID)
			}
			return &ports.OwnerStoreRatings{
				StoreID: "s1",
				Average: 4.33,
				Raters: []ports.Rater{
					{UserID: "u1", Name: "Alice", Email: "alice@example.com", Value: 5, CreatedAt: time.Now()},
				},
			}, nil
		},
	}
	handler := NewOwnerHandler(ratingSvc)

	c, rec := authedContext(e, http.MethodGet, "/owner/store/ratings", "", "owner1", domain.RoleOwner)
	if err := handler.StoreRatings(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp ports.OwnerStoreRatings
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.Average != 4.33 || len(resp.Raters) != 1 {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestOwnerHandler_StoreRatings_NoStoreLinked(t *testing.T) {
	e := newEcho()
	ratingSvc := &stubRatingService{
		forOwnerFn: func(ctx context.Context, ownerUserID string) (*ports.OwnerStoreRatings, error) {
			return nil, domain.ErrStoreNotFound
		},
	}
	handler := NewOwnerHandler(ratingSvc)

	c, rec := authedContext(e, http.MethodGet, "/owner/store/ratings", "", "owner1", domain.RoleOwner)
	if err := handler.StoreRatings(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	// the missing link is reported as a message, not a 404
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp messageResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.Message != "no store linked to this owner" {
		t.Fatalf("unexpected message: %q", resp.Message)
	}
}

func TestOwnerHandler_StoreRatings_UnexpectedError(t *testing.T) {
	e := newEcho()
	boom := errors.New("db exploded")
	ratingSvc := &stubRatingService{
		forOwnerFn: func(ctx context.Context, ownerUserID string) (*ports.OwnerStoreRatings, error) {
			return nil, boom
		},
	}
	handler := NewOwnerHandler(ratingSvc)

	c, _ := authedContext(e, http.MethodGet, "/owner/store/ratings", "", "owner1", domain.RoleOwner)
	if err := handler.StoreRatings(c); !errors.Is(err, boom) {
		t.Fatalf("expected error to propagate, got %v", err)
	}
}
