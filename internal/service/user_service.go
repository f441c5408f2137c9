package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"storefront/internal/auth"
	"storefront/internal/cache"
	apperrors "storefront/internal/errors"
	"storefront/internal/model"
	"storefront/internal/repository"
)

const userCacheTTL = 5 * time.Minute

// UserService exposes user reads and the permission-update mutation.
type UserService interface {
	CurrentUser(ctx context.Context, id uint) (*model.User, error)
	ListUsers(ctx context.Context, callerID uint) ([]model.User, error)
	UpdatePermissions(ctx context.Context, callerID, targetID uint, tags []string) (*model.User, error)
}

type userService struct {
	userRepo repository.UserRepository
	cache    *cache.Client
}

// NewUserService builds a UserService with repository and cache.
func NewUserService(userRepo repository.UserRepository, cache *cache.Client) UserService {
	return &userService{userRepo: userRepo, cache: cache}
}

func (s *userService) cacheKey(id uint) string {
	return fmt.Sprintf("user:%d", id)
}

// CurrentUser returns the user behind a session, cache-aside through redis.
func (s *userService) CurrentUser(ctx context.Context, id uint) (*model.User, error) {
	if data, _ := s.cache.Get(ctx, s.cacheKey(id)); data != nil {
		var cached model.User
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	if payload, err := json.Marshal(user); err == nil {
		_ = s.cache.Set(ctx, s.cacheKey(id), payload, userCacheTTL)
	}
	return user, nil
}

// ListUsers returns all users; gated by ADMIN or PERMISSIONUPDATE.
func (s *userService) ListUsers(ctx context.Context, callerID uint) ([]model.User, error) {
	caller, err := s.userRepo.FindByID(ctx, callerID)
	if err != nil {
		return nil, fmt.Errorf("find caller: %w", err)
	}
	if err := auth.RequirePermission(caller, model.PermissionAdmin, model.PermissionPermissionUpdate); err != nil {
		return nil, err
	}
	return s.userRepo.List(ctx)
}

// UpdatePermissions overwrites the target user's permission set wholesale.
// The caller needs ADMIN or PERMISSIONUPDATE; tags outside the closed set
// are rejected before the store is touched.
func (s *userService) UpdatePermissions(ctx context.Context, callerID, targetID uint, tags []string) (*model.User, error) {
	caller, err := s.userRepo.FindByID(ctx, callerID)
	if err != nil {
		return nil, fmt.Errorf("find caller: %w", err)
	}
	if err := auth.RequirePermission(caller, model.PermissionAdmin, model.PermissionPermissionUpdate); err != nil {
		return nil, err
	}

	perms, err := model.ParsePermissions(tags)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.UpdatePermissions(ctx, targetID, perms)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("update permissions: %w", err)
	}

	_ = s.cache.Delete(ctx, s.cacheKey(targetID))
	return user, nil
}
