package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"storefront/internal/auth"
	apperrors "storefront/internal/errors"
	"storefront/internal/model"
	"storefront/internal/repository"
)

// AuthService handles signup and signin.
type AuthService interface {
	Signup(ctx context.Context, email, password, name string) (*model.User, string, error)
	Signin(ctx context.Context, email, password string) (*model.User, string, error)
}

type authService struct {
	userRepo   repository.UserRepository
	jwtService *auth.JWTService
}

// NewAuthService creates a new authentication service.
func NewAuthService(userRepo repository.UserRepository, jwtService *auth.JWTService) AuthService {
	return &authService{
		userRepo:   userRepo,
		jwtService: jwtService,
	}
}

// Signup creates a user with a hashed password and the default USER
// permission, then issues a session token. Emails are normalized to
// lowercase before anything touches the store.
func (s *authService) Signup(ctx context.Context, email, password, name string) (*model.User, string, error) {
	email = strings.ToLower(email)

	existing, err := s.userRepo.FindByEmail(ctx, email)
	if err == nil && existing != nil {
		return nil, "", apperrors.ErrUserAlreadyExists
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, "", fmt.Errorf("check user existence: %w", err)
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, "", err
	}

	user := &model.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Permissions:  model.Permissions{model.PermissionUser},
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		// Two concurrent signups can race past the pre-check; the unique
		// index on email decides the loser.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, "", apperrors.ErrUserAlreadyExists
		}
		return nil, "", fmt.Errorf("create user: %w", err)
	}

	token, err := s.jwtService.GenerateSessionToken(user.ID)
	if err != nil {
		return nil, "", fmt.Errorf("generate session token: %w", err)
	}
	return user, token, nil
}

// Signin authenticates by email and password and issues a session token.
// A missing user and a wrong password fail differently, matching the
// storefront's original behavior.
func (s *authService) Signin(ctx context.Context, email, password string) (*model.User, string, error) {
	email = strings.ToLower(email)

	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", apperrors.ErrUserNotFound
		}
		return nil, "", fmt.Errorf("find user: %w", err)
	}

	if !auth.VerifyPassword(password, user.PasswordHash) {
		return nil, "", apperrors.ErrInvalidCredentials
	}

	token, err := s.jwtService.GenerateSessionToken(user.ID)
	if err != nil {
		return nil, "", fmt.Errorf("generate session token: %w", err)
	}
	return user, token, nil
}
