package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"storefront/internal/model"
)

// CartRepository defines cart persistence operations.
type CartRepository interface {
	AddOrIncrement(ctx context.Context, userID, itemID uint) (*model.CartItem, error)
	FindByUserAndItem(ctx context.Context, userID, itemID uint) (*model.CartItem, error)
	ListByUser(ctx context.Context, userID uint) ([]model.CartItem, error)
}

type cartRepository struct {
	db *gorm.DB
}

// NewCartRepository builds a GORM-backed repository.
func NewCartRepository(db *gorm.DB) CartRepository {
	return &cartRepository{db: db}
}

// AddOrIncrement inserts a quantity-1 row for (user, item) or increments the
// existing row's quantity by one, as a single conditional write against the
// composite unique index. Concurrent calls for the same pair serialize on
// the index, so N adds always converge to one row with quantity N.
func (r *cartRepository) AddOrIncrement(ctx context.Context, userID, itemID uint) (*model.CartItem, error) {
	row := &model.CartItem{UserID: userID, ItemID: itemID, Quantity: 1}
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "item_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"quantity": gorm.Expr("quantity + 1"),
		}),
	}).Create(row).Error
	if err != nil {
		return nil, err
	}
	return r.FindByUserAndItem(ctx, userID, itemID)
}

func (r *cartRepository) FindByUserAndItem(ctx context.Context, userID, itemID uint) (*model.CartItem, error) {
	var cartItem model.CartItem
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND item_id = ?", userID, itemID).
		First(&cartItem).Error; err != nil {
		return nil, err
	}
	return &cartItem, nil
}

func (r *cartRepository) ListByUser(ctx context.Context, userID uint) ([]model.CartItem, error) {
	var cartItems []model.CartItem
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Find(&cartItems).Error; err != nil {
		return nil, err
	}
	return cartItems, nil
}
