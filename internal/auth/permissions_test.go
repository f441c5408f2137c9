package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"

	apperrors "storefront/internal/errors"
	"storefront/internal/model"
)

func TestRequirePermission(t *testing.T) {
	tests := []struct {
		name     string
		granted  model.Permissions
		required []model.Permission
		wantErr  error
	}{
		{
			name:     "direct match",
			granted:  model.Permissions{model.PermissionUser},
			required: []model.Permission{model.PermissionUser},
		},
		{
			name:     "intersection on one of several",
			granted:  model.Permissions{model.PermissionUser, model.PermissionItemDelete},
			required: []model.Permission{model.PermissionAdmin, model.PermissionItemDelete},
		},
		{
			name:     "no intersection",
			granted:  model.Permissions{model.PermissionUser},
			required: []model.Permission{model.PermissionAdmin, model.PermissionPermissionUpdate},
			wantErr:  apperrors.ErrAuthorizationDenied,
		},
		{
			name:     "admin is not implicit",
			granted:  model.Permissions{model.PermissionAdmin},
			required: []model.Permission{model.PermissionItemUpdate},
			wantErr:  apperrors.ErrAuthorizationDenied,
		},
		{
			name:     "empty granted set",
			granted:  model.Permissions{},
			required: []model.Permission{model.PermissionUser},
			wantErr:  apperrors.ErrAuthorizationDenied,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user := &model.User{Permissions: tt.granted}
			err := RequirePermission(user, tt.required...)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRequirePermission_NilUser(t *testing.T) {
	err := RequirePermission(nil, model.PermissionUser)
	assert.ErrorIs(t, err, apperrors.ErrAuthorizationDenied)
}
