package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"storefront/internal/cache"
	apperrors "storefront/internal/errors"
	"storefront/internal/model"
)

// nil cache client behaves as a permanent miss, so service tests need no redis.
var noCache *cache.Client

func TestUserService_UpdatePermissions(t *testing.T) {
	tests := []struct {
		name          string
		callerPerms   model.Permissions
		tags          []string
		expectedError error
		expectStore   bool
	}{
		{
			name:        "caller with PERMISSIONUPDATE succeeds",
			callerPerms: model.Permissions{model.PermissionUser, model.PermissionPermissionUpdate},
			tags:        []string{"USER", "ITEMDELETE"},
			expectStore: true,
		},
		{
			name:        "caller with ADMIN succeeds",
			callerPerms: model.Permissions{model.PermissionAdmin},
			tags:        []string{"USER"},
			expectStore: true,
		},
		{
			name:          "caller without grant is denied and target is untouched",
			callerPerms:   model.Permissions{model.PermissionUser},
			tags:          []string{"ADMIN"},
			expectedError: apperrors.ErrAuthorizationDenied,
		},
		{
			name:          "unknown tag rejected before the store is touched",
			callerPerms:   model.Permissions{model.PermissionAdmin},
			tags:          []string{"SUPERUSER"},
			expectedError: nil, // plain parse error, asserted below
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockUserRepository)
			svc := NewUserService(mockRepo, noCache)

			mockRepo.On("FindByID", mock.Anything, uint(1)).
				Return(&model.User{ID: 1, Permissions: tt.callerPerms}, nil)

			if tt.expectStore {
				perms, _ := model.ParsePermissions(tt.tags)
				mockRepo.On("UpdatePermissions", mock.Anything, uint(2), perms).
					Return(&model.User{ID: 2, Permissions: perms}, nil)
			}

			user, err := svc.UpdatePermissions(context.Background(), 1, 2, tt.tags)

			switch {
			case tt.expectedError != nil:
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, user)
				mockRepo.AssertNotCalled(t, "UpdatePermissions", mock.Anything, mock.Anything, mock.Anything)
			case !tt.expectStore:
				assert.Error(t, err)
				assert.Nil(t, user)
				mockRepo.AssertNotCalled(t, "UpdatePermissions", mock.Anything, mock.Anything, mock.Anything)
			default:
				assert.NoError(t, err)
				assert.Equal(t, uint(2), user.ID)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestUserService_ListUsers(t *testing.T) {
	tests := []struct {
		name          string
		callerPerms   model.Permissions
		expectedError error
	}{
		{
			name:        "gated caller sees all users",
			callerPerms: model.Permissions{model.PermissionAdmin},
		},
		{
			name:          "plain user denied",
			callerPerms:   model.Permissions{model.PermissionUser},
			expectedError: apperrors.ErrAuthorizationDenied,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockUserRepository)
			svc := NewUserService(mockRepo, noCache)

			mockRepo.On("FindByID", mock.Anything, uint(1)).
				Return(&model.User{ID: 1, Permissions: tt.callerPerms}, nil)
			if tt.expectedError == nil {
				mockRepo.On("List", mock.Anything).
					Return([]model.User{{ID: 1}, {ID: 2}}, nil)
			}

			users, err := svc.ListUsers(context.Background(), 1)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, users)
				mockRepo.AssertNotCalled(t, "List", mock.Anything)
			} else {
				assert.NoError(t, err)
				assert.Len(t, users, 2)
			}
		})
	}
}

func TestUserService_CurrentUser(t *testing.T) {
	mockRepo := new(MockUserRepository)
	svc := NewUserService(mockRepo, noCache)

	mockRepo.On("FindByID", mock.Anything, uint(3)).
		Return(&model.User{ID: 3, Email: "foo@example.com"}, nil)

	user, err := svc.CurrentUser(context.Background(), 3)
	assert.NoError(t, err)
	assert.Equal(t, "foo@example.com", user.Email)
}
