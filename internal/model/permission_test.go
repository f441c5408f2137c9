package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePermissions(t *testing.T) {
	perms, err := ParsePermissions([]string{"user", "ADMIN", "user"})
	assert.NoError(t, err)
	assert.Equal(t, Permissions{PermissionUser, PermissionAdmin}, perms)

	_, err = ParsePermissions([]string{"SUPERUSER"})
	assert.Error(t, err)
}

func TestPermissions_ColumnRoundTrip(t *testing.T) {
	perms := Permissions{PermissionUser, PermissionItemDelete}

	value, err := perms.Value()
	assert.NoError(t, err)
	assert.Equal(t, "USER,ITEMDELETE", value)

	var scanned Permissions
	assert.NoError(t, scanned.Scan([]byte("USER,ITEMDELETE")))
	assert.Equal(t, perms, scanned)

	var empty Permissions
	assert.NoError(t, empty.Scan(""))
	assert.Nil(t, empty)
}
