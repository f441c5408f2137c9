package auth

import (
	apperrors "storefront/internal/errors"
	"storefront/internal/model"
)

// RequirePermission succeeds iff the user's capability set intersects the
// required set. There is no implicit super-admin: ADMIN only passes checks
// that list it explicitly.
func RequirePermission(user *model.User, required ...model.Permission) error {
	if user == nil || !user.Permissions.HasAny(required...) {
		return apperrors.ErrAuthorizationDenied
	}
	return nil
}
