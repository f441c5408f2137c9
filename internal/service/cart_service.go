package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	apperrors "storefront/internal/errors"
	"storefront/internal/model"
	"storefront/internal/repository"
)

// CartService handles idempotent cart aggregation.
type CartService interface {
	AddToCart(ctx context.Context, userID, itemID uint) (*model.CartItem, error)
}

type cartService struct {
	cartRepo repository.CartRepository
	itemRepo repository.ItemRepository
}

// NewCartService creates a new cart service.
func NewCartService(cartRepo repository.CartRepository, itemRepo repository.ItemRepository) CartService {
	return &cartService{
		cartRepo: cartRepo,
		itemRepo: itemRepo,
	}
}

// AddToCart adds one unit of the item to the user's cart. Repeated adds for
// the same (user, item) pair converge to a single row with an incrementing
// quantity; the write itself is a single atomic upsert in the repository.
func (s *cartService) AddToCart(ctx context.Context, userID, itemID uint) (*model.CartItem, error) {
	if _, err := s.itemRepo.FindByID(ctx, itemID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("find item: %w", err)
	}

	cartItem, err := s.cartRepo.AddOrIncrement(ctx, userID, itemID)
	if err != nil {
		return nil, fmt.Errorf("add to cart: %w", err)
	}
	return cartItem, nil
}
