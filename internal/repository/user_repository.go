package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"storefront/internal/model"
)

// UserRepository defines user persistence operations.
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	FindByID(ctx context.Context, id uint) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	List(ctx context.Context) ([]model.User, error)
	UpdatePermissions(ctx context.Context, id uint, perms model.Permissions) (*model.User, error)
	SetResetToken(ctx context.Context, email, token string, expiresAt time.Time) error
	RedeemResetToken(ctx context.Context, token, newPasswordHash string, now time.Time) (*model.User, error)
}

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository builds a GORM-backed repository.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *model.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepository) FindByID(ctx context.Context, id uint) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) List(ctx context.Context) ([]model.User, error) {
	var users []model.User
	if err := r.db.WithContext(ctx).Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// UpdatePermissions overwrites the user's permission set wholesale.
func (r *userRepository) UpdatePermissions(ctx context.Context, id uint, perms model.Permissions) (*model.User, error) {
	res := r.db.WithContext(ctx).Model(&model.User{}).
		Where("id = ?", id).
		Update("permissions", perms)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.FindByID(ctx, id)
}

// SetResetToken persists a pending reset token and its expiry on the user,
// overwriting any prior pending token.
func (r *userRepository) SetResetToken(ctx context.Context, email, token string, expiresAt time.Time) error {
	res := r.db.WithContext(ctx).Model(&model.User{}).
		Where("email = ?", email).
		Updates(map[string]interface{}{
			"reset_token":            token,
			"reset_token_expires_at": expiresAt,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// RedeemResetToken atomically validates and consumes a reset token: the row
// is locked while the expiry check, password update and token clearing run
// in one transaction, so a concurrent redeem of the same token cannot
// succeed twice. Returns gorm.ErrRecordNotFound when the token is unknown
// or past its window.
func (r *userRepository) RedeemResetToken(ctx context.Context, token, newPasswordHash string, now time.Time) (*model.User, error) {
	var user model.User
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("reset_token = ? AND reset_token_expires_at >= ?", token, now).
			First(&user).Error; err != nil {
			return err
		}
		updates := map[string]interface{}{
			"password_hash":          newPasswordHash,
			"reset_token":            nil,
			"reset_token_expires_at": nil,
		}
		if err := tx.Model(&user).Updates(updates).Error; err != nil {
			return err
		}
		user.PasswordHash = newPasswordHash
		user.ResetToken = nil
		user.ResetTokenExpiresAt = nil
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &user, nil
}
