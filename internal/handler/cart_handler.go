package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"storefront/internal/service"
)

// CartHandler handles cart endpoints.
type CartHandler struct {
	cartService service.CartService
}

// NewCartHandler creates a new cart handler.
func NewCartHandler(cartService service.CartService) *CartHandler {
	return &CartHandler{cartService: cartService}
}

// AddToCartRequest represents an add-to-cart request.
type AddToCartRequest struct {
	ItemID uint `json:"item_id" validate:"required"`
}

// AddToCart godoc
// @Summary Add one unit of an item to the caller's cart
// @Tags cart
// @Accept json
// @Produce json
// @Param request body AddToCartRequest true "Item reference"
// @Success 200 {object} model.CartItem
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /cart [post]
func (h *CartHandler) AddToCart(c echo.Context) error {
	caller, err := callerID(c)
	if err != nil {
		return respondError(c, err)
	}

	var req AddToCartRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	cartItem, err := h.cartService.AddToCart(c.Request().Context(), caller, req.ItemID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, cartItem)
}
