package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"storefront/internal/service"
)

// UserHandler handles user endpoints.
type UserHandler struct {
	userService service.UserService
}

// NewUserHandler creates a new user handler.
func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// UpdatePermissionsRequest represents a wholesale permission overwrite.
type UpdatePermissionsRequest struct {
	Permissions []string `json:"permissions" validate:"required,min=1,dive,oneof=USER ADMIN ITEMCREATE ITEMUPDATE ITEMDELETE PERMISSIONUPDATE"`
}

// Me godoc
// @Summary Get the current user
// @Tags users
// @Produce json
// @Success 200 {object} model.User
// @Failure 401 {object} errors.ErrorResponse
// @Router /me [get]
func (h *UserHandler) Me(c echo.Context) error {
	caller, err := callerID(c)
	if err != nil {
		return respondError(c, err)
	}
	user, err := h.userService.CurrentUser(c.Request().Context(), caller)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, user)
}

// ListUsers godoc
// @Summary List all users
// @Tags users
// @Produce json
// @Success 200 {array} model.User
// @Failure 403 {object} errors.ErrorResponse
// @Router /users [get]
func (h *UserHandler) ListUsers(c echo.Context) error {
	caller, err := callerID(c)
	if err != nil {
		return respondError(c, err)
	}
	users, err := h.userService.ListUsers(c.Request().Context(), caller)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, users)
}

// UpdatePermissions godoc
// @Summary Overwrite a user's permission set
// @Tags users
// @Accept json
// @Produce json
// @Param id path int true "Target user ID"
// @Param request body UpdatePermissionsRequest true "New permission set"
// @Success 200 {object} model.User
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /users/{id}/permissions [put]
func (h *UserHandler) UpdatePermissions(c echo.Context) error {
	caller, err := callerID(c)
	if err != nil {
		return respondError(c, err)
	}

	targetID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	var req UpdatePermissionsRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.userService.UpdatePermissions(c.Request().Context(), caller, uint(targetID), req.Permissions)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, user)
}
