package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"storefront/internal/service"
)

// AuthHandler handles signup, signin, signout and the password-reset flow.
type AuthHandler struct {
	authService  service.AuthService
	resetService service.ResetService
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(authService service.AuthService, resetService service.ResetService) *AuthHandler {
	return &AuthHandler{
		authService:  authService,
		resetService: resetService,
	}
}

// SignupRequest represents a signup request.
type SignupRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Name     string `json:"name" validate:"required"`
}

// SigninRequest represents a signin request.
type SigninRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RequestResetRequest represents a password-reset request.
type RequestResetRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// ResetPasswordRequest represents a password-reset redemption.
type ResetPasswordRequest struct {
	ResetToken        string `json:"resetToken" validate:"required"`
	Password          string `json:"password" validate:"required,min=6"`
	ConfirmedPassword string `json:"confirmedPassword" validate:"required"`
}

// StatusResponse is a plain status message.
type StatusResponse struct {
	Message string `json:"message"`
}

// Signup godoc
// @Summary Sign up a new user
// @Tags auth
// @Accept json
// @Produce json
// @Param request body SignupRequest true "Signup data"
// @Success 201 {object} model.User
// @Failure 400 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /auth/signup [post]
func (h *AuthHandler) Signup(c echo.Context) error {
	var req SignupRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, token, err := h.authService.Signup(c.Request().Context(), req.Email, req.Password, req.Name)
	if err != nil {
		return respondError(c, err)
	}

	setSessionCookie(c, token)
	return c.JSON(http.StatusCreated, user)
}

// Signin godoc
// @Summary Sign in with email and password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body SigninRequest true "Credentials"
// @Success 200 {object} model.User
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /auth/signin [post]
func (h *AuthHandler) Signin(c echo.Context) error {
	var req SigninRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, token, err := h.authService.Signin(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return respondError(c, err)
	}

	setSessionCookie(c, token)
	return c.JSON(http.StatusOK, user)
}

// Signout godoc
// @Summary Sign out
// @Tags auth
// @Produce json
// @Success 200 {object} StatusResponse
// @Router /auth/signout [post]
func (h *AuthHandler) Signout(c echo.Context) error {
	// No store interaction; the session is a stateless bearer token and
	// only the cookie is dropped.
	clearSessionCookie(c)
	return c.JSON(http.StatusOK, StatusResponse{Message: "signout successful"})
}

// RequestReset godoc
// @Summary Request a password reset token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body RequestResetRequest true "Account email"
// @Success 200 {object} StatusResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /auth/reset/request [post]
func (h *AuthHandler) RequestReset(c echo.Context) error {
	var req RequestResetRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.resetService.RequestReset(c.Request().Context(), req.Email); err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, StatusResponse{Message: "reset token sent"})
}

// ResetPassword godoc
// @Summary Redeem a reset token and set a new password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body ResetPasswordRequest true "Token and new password"
// @Success 200 {object} model.User
// @Failure 400 {object} errors.ErrorResponse
// @Router /auth/reset [post]
func (h *AuthHandler) ResetPassword(c echo.Context) error {
	var req ResetPasswordRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, token, err := h.resetService.ResetPassword(c.Request().Context(), req.ResetToken, req.Password, req.ConfirmedPassword)
	if err != nil {
		return respondError(c, err)
	}

	setSessionCookie(c, token)
	return c.JSON(http.StatusOK, user)
}
