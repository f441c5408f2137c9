package model

import "time"

// User represents a storefront account. Email is stored lowercase; the
// reset token and its expiry are either both set or both nil.
type User struct {
	ID                  uint        `json:"id" gorm:"primaryKey"`
	Name                string      `json:"name" gorm:"size:255;not null"`
	Email               string      `json:"email" gorm:"uniqueIndex;size:255;not null"`
	PasswordHash        string      `json:"-" gorm:"size:255;not null"` // Never expose in JSON
	Permissions         Permissions `json:"permissions" gorm:"type:varchar(255);not null"`
	ResetToken          *string     `json:"-" gorm:"size:64;index"`
	ResetTokenExpiresAt *time.Time  `json:"-"`
	CreatedAt           time.Time   `json:"created_at"`
	UpdatedAt           time.Time   `json:"updated_at"`
}
