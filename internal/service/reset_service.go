package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"gorm.io/gorm"

	"storefront/internal/auth"
	apperrors "storefront/internal/errors"
	"storefront/internal/mail"
	"storefront/internal/model"
	"storefront/internal/repository"
)

const (
	// resetTokenBytes is the entropy of a reset token; hex-encoded it is 40 chars.
	resetTokenBytes = 20
	// resetTokenTTL is how long a pending reset token stays redeemable.
	resetTokenTTL = time.Hour
)

// ResetService manages the single-use, time-bounded password reset flow.
type ResetService interface {
	RequestReset(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, token, password, confirmPassword string) (*model.User, string, error)
}

type resetService struct {
	userRepo    repository.UserRepository
	jwtService  *auth.JWTService
	mailer      mail.Mailer
	frontendURL string
}

// NewResetService creates a new reset service. frontendURL is the base for
// the recovery link embedded in the outbound email.
func NewResetService(userRepo repository.UserRepository, jwtService *auth.JWTService, mailer mail.Mailer, frontendURL string) ResetService {
	return &resetService{
		userRepo:    userRepo,
		jwtService:  jwtService,
		mailer:      mailer,
		frontendURL: frontendURL,
	}
}

// RequestReset generates a fresh token, persists it with a one-hour expiry
// (overwriting any pending token) and emails a recovery link. The token is
// persisted regardless of delivery outcome; mail failures are only logged.
func (s *resetService) RequestReset(ctx context.Context, email string) error {
	email = strings.ToLower(email)

	if _, err := s.userRepo.FindByEmail(ctx, email); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrUserNotFound
		}
		return fmt.Errorf("find user: %w", err)
	}

	token, err := generateResetToken()
	if err != nil {
		return err
	}

	expiresAt := time.Now().Add(resetTokenTTL)
	if err := s.userRepo.SetResetToken(ctx, email, token, expiresAt); err != nil {
		return fmt.Errorf("persist reset token: %w", err)
	}

	resetURL := fmt.Sprintf("%s/reset?resetToken=%s", s.frontendURL, token)
	if err := s.mailer.SendPasswordReset(ctx, email, resetURL); err != nil {
		log.Printf("reset mail delivery failed for %s: %v", email, err)
	}
	return nil
}

// ResetPassword redeems a token: the mismatch check runs before any store
// lookup, the validity check and token clearing are one atomic store
// operation, and success mirrors signin by issuing a fresh session token.
func (s *resetService) ResetPassword(ctx context.Context, token, password, confirmPassword string) (*model.User, string, error) {
	if password != confirmPassword {
		return nil, "", apperrors.ErrPasswordMismatch
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, "", err
	}

	user, err := s.userRepo.RedeemResetToken(ctx, token, hash, time.Now())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", apperrors.ErrTokenInvalidOrExpired
		}
		return nil, "", fmt.Errorf("redeem reset token: %w", err)
	}

	sessionToken, err := s.jwtService.GenerateSessionToken(user.ID)
	if err != nil {
		return nil, "", fmt.Errorf("generate session token: %w", err)
	}
	return user, sessionToken, nil
}

func generateResetToken() (string, error) {
	buf := make([]byte, resetTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate reset token: %w", err)
	}
	return hex.EncodeToString(buf), nil
}
