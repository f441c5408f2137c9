package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"storefront/internal/auth"
	apperrors "storefront/internal/errors"
	"storefront/internal/model"
	"storefront/internal/repository"
)

// ItemService handles item mutations and reads.
type ItemService interface {
	CreateItem(ctx context.Context, callerID uint, item *model.Item) (*model.Item, error)
	UpdateItem(ctx context.Context, id uint, updates map[string]interface{}) (*model.Item, error)
	DeleteItem(ctx context.Context, callerID, id uint) (*model.Item, error)
	GetItem(ctx context.Context, id uint) (*model.Item, error)
	ListItems(ctx context.Context) ([]model.Item, error)
}

type itemService struct {
	itemRepo repository.ItemRepository
	userRepo repository.UserRepository
}

// NewItemService creates a new item service.
func NewItemService(itemRepo repository.ItemRepository, userRepo repository.UserRepository) ItemService {
	return &itemService{
		itemRepo: itemRepo,
		userRepo: userRepo,
	}
}

// CreateItem stores an item owned by the caller.
func (s *itemService) CreateItem(ctx context.Context, callerID uint, item *model.Item) (*model.Item, error) {
	item.UserID = callerID
	if err := s.itemRepo.Create(ctx, item); err != nil {
		return nil, fmt.Errorf("create item: %w", err)
	}
	return item, nil
}

// UpdateItem applies field updates. Any authenticated caller may update any
// item; no ownership check is performed here.
func (s *itemService) UpdateItem(ctx context.Context, id uint, updates map[string]interface{}) (*model.Item, error) {
	item, err := s.itemRepo.Update(ctx, id, updates)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("update item: %w", err)
	}
	return item, nil
}

// DeleteItem removes an item when the caller owns it or holds ADMIN or
// ITEMDELETE. The owner may delete regardless of permissions.
func (s *itemService) DeleteItem(ctx context.Context, callerID, id uint) (*model.Item, error) {
	item, err := s.itemRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("find item: %w", err)
	}

	if item.UserID != callerID {
		caller, err := s.userRepo.FindByID(ctx, callerID)
		if err != nil {
			return nil, fmt.Errorf("find caller: %w", err)
		}
		if err := auth.RequirePermission(caller, model.PermissionAdmin, model.PermissionItemDelete); err != nil {
			return nil, err
		}
	}

	if err := s.itemRepo.Delete(ctx, id); err != nil {
		return nil, fmt.Errorf("delete item: %w", err)
	}
	return item, nil
}

func (s *itemService) GetItem(ctx context.Context, id uint) (*model.Item, error) {
	item, err := s.itemRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("find item: %w", err)
	}
	return item, nil
}

func (s *itemService) ListItems(ctx context.Context) ([]model.Item, error) {
	return s.itemRepo.List(ctx)
}
