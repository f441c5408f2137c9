package model

import "time"

// CartItem aggregates an item in a user's cart. The composite unique index
// on (user_id, item_id) backs the atomic upsert-increment: at most one row
// per pair, quantity always >= 1.
type CartItem struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"not null;uniqueIndex:idx_cart_user_item"`
	ItemID    uint      `json:"item_id" gorm:"not null;uniqueIndex:idx_cart_user_item"`
	Quantity  int       `json:"quantity" gorm:"not null;default:1"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
