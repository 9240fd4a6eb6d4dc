package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ratewise/store-ratings/internal/core/domain"
	"github.com/ratewise/store-ratings/internal/core/ports"
)

// OwnerHandler serves the OWNER-only dashboard.
type OwnerHandler struct {
	ratingService ports.RatingService
}

func NewOwnerHandler(ratingService ports.RatingService) *OwnerHandler {
	return &OwnerHandler{ratingService: ratingService}
}

// StoreRatings returns the caller's store with its rater list and average.
// An owner without a store linked gets an explicit message, not an error.
//
// @Summary      Own store's raters and average
// @Tags         owner
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  ports.OwnerStoreRatings
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /owner/store/ratings [get]
func (h *OwnerHandler) StoreRatings(c echo.Context) error {
	userID, _, err := ctxClaims(c)
	if err != nil {
		return err
	}

	ratings, err := h.ratingService.ForOwner(c.Request().Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrStoreNotFound) {
			return c.JSON(http.StatusOK, messageResponse{Message: "no store linked to this owner"})
		}
		return err
	}

	return c.JSON(http.StatusOK, ratings)
}
