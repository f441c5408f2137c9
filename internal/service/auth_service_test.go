package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"storefront/internal/auth"
	apperrors "storefront/internal/errors"
	"storefront/internal/model"
)

func TestAuthService_Signup(t *testing.T) {
	tests := []struct {
		name          string
		email         string
		password      string
		userName      string
		setupMock     func(*MockUserRepository)
		expectedError error
		expectedEmail string
	}{
		{
			name:     "successful signup lowercases email",
			email:    "Foo@Example.com",
			password: "pw123456",
			userName: "Foo",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "foo@example.com").Return(nil, gorm.ErrRecordNotFound)
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)
			},
			expectedEmail: "foo@example.com",
		},
		{
			name:     "losing a signup race maps the unique-index violation",
			email:    "racer@example.com",
			password: "pw123456",
			userName: "Racer",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "racer@example.com").Return(nil, gorm.ErrRecordNotFound)
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(gorm.ErrDuplicatedKey)
			},
			expectedError: apperrors.ErrUserAlreadyExists,
		},
		{
			name:     "user already exists",
			email:    "existing@example.com",
			password: "pw123456",
			userName: "Existing",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "existing@example.com").
					Return(&model.User{Email: "existing@example.com"}, nil)
			},
			expectedError: apperrors.ErrUserAlreadyExists,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockUserRepository)
			tt.setupMock(mockRepo)

			jwtService := auth.NewJWTService("test-secret", 0)
			svc := NewAuthService(mockRepo, jwtService)

			user, token, err := svc.Signup(context.Background(), tt.email, tt.password, tt.userName)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, user)
				assert.Empty(t, token)
			} else {
				assert.NoError(t, err)
				assert.NotEmpty(t, token)
				assert.Equal(t, tt.expectedEmail, user.Email)
				assert.Equal(t, model.Permissions{model.PermissionUser}, user.Permissions)
				assert.NotEmpty(t, user.PasswordHash)
				assert.NotEqual(t, tt.password, user.PasswordHash)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestAuthService_Signin(t *testing.T) {
	hash, _ := auth.HashPassword("pw123")

	tests := []struct {
		name          string
		email         string
		password      string
		setupMock     func(*MockUserRepository)
		expectedError error
	}{
		{
			name:     "successful signin",
			email:    "foo@example.com",
			password: "pw123",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "foo@example.com").
					Return(&model.User{ID: 1, Email: "foo@example.com", PasswordHash: hash}, nil)
			},
		},
		{
			name:     "mixed-case email resolves the same user",
			email:    "FOO@Example.COM",
			password: "pw123",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "foo@example.com").
					Return(&model.User{ID: 1, Email: "foo@example.com", PasswordHash: hash}, nil)
			},
		},
		{
			name:     "unknown email",
			email:    "nobody@example.com",
			password: "pw123",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "nobody@example.com").Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: apperrors.ErrUserNotFound,
		},
		{
			name:     "wrong password",
			email:    "foo@example.com",
			password: "wrong",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "foo@example.com").
					Return(&model.User{ID: 1, Email: "foo@example.com", PasswordHash: hash}, nil)
			},
			expectedError: apperrors.ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockUserRepository)
			tt.setupMock(mockRepo)

			jwtService := auth.NewJWTService("test-secret", 0)
			svc := NewAuthService(mockRepo, jwtService)

			user, token, err := svc.Signin(context.Background(), tt.email, tt.password)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, user)
				assert.Empty(t, token)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, uint(1), user.ID)

				// the issued token binds the user identifier
				claims, err := jwtService.ValidateSessionToken(token)
				assert.NoError(t, err)
				assert.Equal(t, user.ID, claims.UserID)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

// Signup with a mixed-case email followed by a lowercase signin must resolve
// the same account.
func TestAuthService_SignupThenSigninScenario(t *testing.T) {
	mockRepo := new(MockUserRepository)
	jwtService := auth.NewJWTService("test-secret", 0)
	svc := NewAuthService(mockRepo, jwtService)

	var created *model.User
	mockRepo.On("FindByEmail", mock.Anything, "foo@example.com").Return(nil, gorm.ErrRecordNotFound).Once()
	mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Run(func(args mock.Arguments) {
		created = args.Get(1).(*model.User)
		created.ID = 17
	}).Return(nil)

	user, _, err := svc.Signup(context.Background(), "Foo@Example.com", "pw123", "Foo")
	assert.NoError(t, err)
	assert.Equal(t, "foo@example.com", user.Email)

	mockRepo.On("FindByEmail", mock.Anything, "foo@example.com").Return(created, nil)

	signedIn, _, err := svc.Signin(context.Background(), "foo@example.com", "pw123")
	assert.NoError(t, err)
	assert.Equal(t, user.ID, signedIn.ID)
}
