package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"storefront/internal/model"
	"storefront/internal/service"
)

// ItemHandler handles item endpoints.
type ItemHandler struct {
	itemService service.ItemService
}

// NewItemHandler creates a new item handler.
func NewItemHandler(itemService service.ItemService) *ItemHandler {
	return &ItemHandler{itemService: itemService}
}

// CreateItemRequest represents an item creation request.
type CreateItemRequest struct {
	Title       string          `json:"title" validate:"required"`
	Description string          `json:"description"`
	Image       string          `json:"image"`
	LargeImage  string          `json:"large_image"`
	Price       decimal.Decimal `json:"price" validate:"required"`
}

// UpdateItemRequest represents a partial item update. Nil fields are left
// untouched; ownership never changes.
type UpdateItemRequest struct {
	Title       *string          `json:"title"`
	Description *string          `json:"description"`
	Image       *string          `json:"image"`
	LargeImage  *string          `json:"large_image"`
	Price       *decimal.Decimal `json:"price"`
}

// CreateItem godoc
// @Summary Create an item owned by the caller
// @Tags items
// @Accept json
// @Produce json
// @Param request body CreateItemRequest true "Item fields"
// @Success 201 {object} model.Item
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /items [post]
func (h *ItemHandler) CreateItem(c echo.Context) error {
	caller, err := callerID(c)
	if err != nil {
		return respondError(c, err)
	}

	var req CreateItemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	item := &model.Item{
		Title:       req.Title,
		Description: req.Description,
		Image:       req.Image,
		LargeImage:  req.LargeImage,
		Price:       req.Price,
	}
	created, err := h.itemService.CreateItem(c.Request().Context(), caller, item)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, created)
}

// UpdateItem godoc
// @Summary Update item fields
// @Tags items
// @Accept json
// @Produce json
// @Param id path int true "Item ID"
// @Param request body UpdateItemRequest true "Updated fields"
// @Success 200 {object} model.Item
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /items/{id} [put]
func (h *ItemHandler) UpdateItem(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	var req UpdateItemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	updates := map[string]interface{}{}
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Image != nil {
		updates["image"] = *req.Image
	}
	if req.LargeImage != nil {
		updates["large_image"] = *req.LargeImage
	}
	if req.Price != nil {
		updates["price"] = *req.Price
	}
	if len(updates) == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "no fields to update")
	}

	item, err := h.itemService.UpdateItem(c.Request().Context(), uint(id), updates)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, item)
}

// DeleteItem godoc
// @Summary Delete an item
// @Tags items
// @Produce json
// @Param id path int true "Item ID"
// @Success 200 {object} model.Item
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /items/{id} [delete]
func (h *ItemHandler) DeleteItem(c echo.Context) error {
	caller, err := callerID(c)
	if err != nil {
		return respondError(c, err)
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	item, err := h.itemService.DeleteItem(c.Request().Context(), caller, uint(id))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, item)
}

// GetItem godoc
// @Summary Get item by id
// @Tags items
// @Produce json
// @Param id path int true "Item ID"
// @Success 200 {object} model.Item
// @Failure 404 {object} errors.ErrorResponse
// @Router /items/{id} [get]
func (h *ItemHandler) GetItem(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	item, err := h.itemService.GetItem(c.Request().Context(), uint(id))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, item)
}

// ListItems godoc
// @Summary List items
// @Tags items
// @Produce json
// @Success 200 {array} model.Item
// @Router /items [get]
func (h *ItemHandler) ListItems(c echo.Context) error {
	items, err := h.itemService.ListItems(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, items)
}
