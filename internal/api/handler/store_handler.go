package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/ratewise/store-ratings/internal/api/metrics"
	"github.com/ratewise/store-ratings/internal/core/domain"
	"github.com/ratewise/store-ratings/internal/core/ports"
)

// StoreHandler serves the authenticated store list and rating submission.
type StoreHandler struct {
	storeService  ports.StoreService
	ratingService ports.RatingService
}

func NewStoreHandler(storeService ports.StoreService, ratingService ports.RatingService) *StoreHandler {
	return &StoreHandler{storeService: storeService, ratingService: ratingService}
}

// List returns stores matching the search query, annotated with the overall
// average and the caller's own rating.
//
// @Summary      List stores
// @Tags         stores
// @Produce      json
// @Security     BearerAuth
// @Param        q  query     string  false  "Substring match on name or address"
// @Success      200  {array}  ports.StoreListing
// @Failure      401  {object}  errorResponse
// @Router       /stores [get]
func (h *StoreHandler) List(c echo.Context) error {
	userID, _, err := ctxClaims(c)
	if err != nil {
		return err
	}

	listings, err := h.storeService.ListForUser(c.Request().Context(), userID, c.QueryParam("q"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, listings)
}

// SubmitRating creates or overwrites the caller's rating for a store.
//
// @Summary      Submit or update a rating
// @Tags         stores
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string         true  "Store id"
// @Param        body  body      ratingRequest  true  "Rating value (integer 1-5)"
// @Success      200   {object}  domain.Rating
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /stores/{id}/ratings [post]
func (h *StoreHandler) SubmitRating(c echo.Context) error {
	userID, _, err := ctxClaims(c)
	if err != nil {
		return err
	}

	var req ratingRequest
	if err := c.Bind(&req); err != nil {
		// non-numeric payloads (e.g. a quoted "3") fail the bind
		metrics.RatingsRejectedTotal.WithLabelValues("invalid_value").Inc()
		return domain.ErrInvalidRating
	}
	if req.Value == nil || *req.Value != float64(int(*req.Value)) {
		metrics.RatingsRejectedTotal.WithLabelValues("invalid_value").Inc()
		return domain.ErrInvalidRating
	}

	rating, err := h.ratingService.Submit(c.Request().Context(), userID, c.Param("id"), int(*req.Value))
	if err != nil {
		switch err {
		case domain.ErrInvalidRating:
			metrics.RatingsRejectedTotal.WithLabelValues("invalid_value").Inc()
		case domain.ErrStoreNotFound:
			metrics.RatingsRejectedTotal.WithLabelValues("store_not_found").Inc()
		}
		return err
	}

	metrics.RatingsSubmittedTotal.WithLabelValues(strconv.Itoa(rating.Value)).Inc()
	return c.JSON(http.StatusOK, rating)
}
