package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Item represents a product listed in the store. UserID is the owning
// user, set at creation and never changed afterwards.
type Item struct {
	ID          uint            `json:"id" gorm:"primaryKey"`
	Title       string          `json:"title" gorm:"size:255;not null"`
	Description string          `json:"description" gorm:"type:text"`
	Image       string          `json:"image" gorm:"size:512"`
	LargeImage  string          `json:"large_image" gorm:"size:512"`
	Price       decimal.Decimal `json:"price" gorm:"type:decimal(20,2);not null"`
	UserID      uint            `json:"user_id" gorm:"not null;index"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}
