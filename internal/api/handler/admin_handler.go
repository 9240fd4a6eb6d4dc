package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ratewise/store-ratings/internal/api/metrics"
	"github.com/ratewise/store-ratings/internal/core/ports"
)

// AdminHandler serves the ADMIN-only management surfaces.
type AdminHandler struct {
	adminService ports.AdminService
	authService  ports.AuthService
	storeService ports.StoreService
}

func NewAdminHandler(adminService ports.AdminService, authService ports.AuthService, storeService ports.StoreService) *AdminHandler {
	return &AdminHandler{
		adminService: adminService,
		authService:  authService,
		storeService: storeService,
	}
}

// Dashboard returns system-wide counts.
//
// @Summary      Dashboard counts
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  ports.DashboardCounts
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /admin/dashboard [get]
func (h *AdminHandler) Dashboard(c echo.Context) error {
	counts, err := h.adminService.Dashboard(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, counts)
}

// Stores lists stores with search and live-computed averages.
//
// @Summary      List stores with averages
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        q  query     string  false  "Substring match on name, email, or address"
// @Success      200  {array}  ports.AdminStoreListing
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /admin/stores [get]
func (h *AdminHandler) Stores(c echo.Context) error {
	listings, err := h.storeService.AdminList(c.Request().Context(), c.QueryParam("q"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, listings)
}

// CreateStore adds a store to the catalog.
//
// @Summary      Create a store
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createStoreRequest  true  "Store details"
// @Success      201   {object}  domain.Store
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /admin/stores [post]
func (h *AdminHandler) CreateStore(c echo.Context) error {
	var req createStoreRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	store, err := h.storeService.Create(c.Request().Context(), ports.CreateStoreInput{
		Name:        req.Name,
		Email:       req.Email,
		Address:     req.Address,
		OwnerUserID: req.OwnerUserID,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, store)
}

// Users lists users with search and role filter.
//
// @Summary      List users
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        q     query     string  false  "Substring match on name, email, or address"
// @Param        role  query     string  false  "Exact role filter (ADMIN, OWNER, USER)"
// @Success      200  {array}  ports.UserSummary
// @Failure      400  {object}  errorResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /admin/users [get]
func (h *AdminHandler) Users(c echo.Context) error {
	users, err := h.adminService.Users(c.Request().Context(), c.QueryParam("q"), c.QueryParam("role"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, users)
}

// CreateUser creates a user with an explicit role.
//
// @Summary      Create a user
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createUserRequest  true  "User details"
// @Success      201   {object}  signupResponse
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /admin/users [post]
func (h *AdminHandler) CreateUser(c echo.Context) error {
	var req createUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.authService.CreateUser(c.Request().Context(), ports.CreateUserInput{
		Name:     req.Name,
		Email:    req.Email,
		Address:  req.Address,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		return err
	}

	metrics.SignupsTotal.WithLabelValues(user.Role).Inc()
	return c.JSON(http.StatusCreated, signupResponse{User: user})
}

// UserDetail returns a single user, with the owner's store average when the
// user is an OWNER.
//
// @Summary      User detail
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      string  true  "User id"
// @Success      200  {object}  ports.UserDetail
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /admin/users/{id} [get]
func (h *AdminHandler) UserDetail(c echo.Context) error {
	detail, err := h.adminService.UserDetail(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, detail)
}
