package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/shelftrack/reading-tracker/internal/core/ports"
)

type UserHandler struct {
	service ports.UserService
}

func NewUserHandler(service ports.UserService) *UserHandler {
	return &UserHandler{service: service}
}

type updateUserRequest struct {
	DisplayName *string `json:"display_name" validate:"omitempty,max=120"`
	AvatarURL   *string `json:"avatar_url" validate:"omitempty,url"`
}

// List handles GET /api/v1/users.
//
// @Summary      List user accounts
// @Tags         users
// @Produce      json
// @Param        skip         query     int   false  "Offset"
// @Param        limit        query     int   false  "Page size (max 100)"
// @Param        active_only  query     bool  false  "Only active accounts"
// @Success      200  {array}   domain.User
// @Failure      403  {object}  map[string]string
// @Router       /api/v1/users [get]
func (h *UserHandler) List(c echo.Context) error {
	skip, _ := strconv.Atoi(c.QueryParam("skip"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	activeOnly, _ := strconv.ParseBool(c.QueryParam("active_only"))

	users, err := h.service.List(c.Request().Context(), ports.ListUsersFilter{
		Skip:       skip,
		Limit:      limit,
		ActiveOnly: activeOnly,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, users)
}

// Get handles GET /api/v1/users/:id.
//
// @Summary      Get a user profile
// @Tags         users
// @Produce      json
// @Param        id   path      string  true  "User ID"
// @Success      200  {object}  domain.User
// @Failure      404  {object}  map[string]string
// @Router       /api/v1/users/{id} [get]
func (h *UserHandler) Get(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	user, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// Update handles PATCH /api/v1/users/:id. Profile fields only; activation
// state has dedicated endpoints.
//
// @Summary      Update a user profile
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        id    path      string             true  "User ID"
// @Param        body  body      updateUserRequest  true  "Fields to change"
// @Success      200   {object}  domain.User
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /api/v1/users/{id} [patch]
func (h *UserHandler) Update(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	var req updateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.service.Update(c.Request().Context(), id, ports.UpdateUserInput{
		DisplayName: req.DisplayName,
		AvatarURL:   req.AvatarURL,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// Deactivate handles POST /api/v1/users/:id/deactivate.
//
// @Summary      Deactivate a user account
// @Tags         users
// @Produce      json
// @Param        id   path      string  true  "User ID"
// @Success      200  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/v1/users/{id}/deactivate [post]
func (h *UserHandler) Deactivate(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	if err := h.service.Deactivate(c.Request().Context(), id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "user deactivated"})
}

// Activate handles POST /api/v1/users/:id/activate.
//
// @Summary      Reactivate a user account
// @Tags         users
// @Produce      json
// @Param        id   path      string  true  "User ID"
// @Success      200  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/v1/users/{id}/activate [post]
func (h *UserHandler) Activate(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	if err := h.service.Reactivate(c.Request().Context(), id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "user activated"})
}
