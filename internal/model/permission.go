package model

import (
	"database/sql/driver"
	"fmt"
	"strings"
)

// Permission is a capability tag granted to a user.
type Permission string

// The closed set of permission tags. ADMIN carries no implicit override; it
// grants access only where an operation lists it in its required set.
const (
	PermissionUser             Permission = "USER"
	PermissionAdmin            Permission = "ADMIN"
	PermissionItemCreate       Permission = "ITEMCREATE"
	PermissionItemUpdate       Permission = "ITEMUPDATE"
	PermissionItemDelete       Permission = "ITEMDELETE"
	PermissionPermissionUpdate Permission = "PERMISSIONUPDATE"
)

var allPermissions = map[Permission]bool{
	PermissionUser:             true,
	PermissionAdmin:            true,
	PermissionItemCreate:       true,
	PermissionItemUpdate:       true,
	PermissionItemDelete:       true,
	PermissionPermissionUpdate: true,
}

// Permissions is a user's capability set, stored as a comma-separated column.
type Permissions []Permission

// HasAny reports whether the set intersects the required set.
func (p Permissions) HasAny(required ...Permission) bool {
	for _, have := range p {
		for _, want := range required {
			if have == want {
				return true
			}
		}
	}
	return false
}

// ParsePermissions converts raw tags into a Permissions set, rejecting
// anything outside the closed set and dropping duplicates.
func ParsePermissions(tags []string) (Permissions, error) {
	seen := make(map[Permission]bool, len(tags))
	perms := make(Permissions, 0, len(tags))
	for _, tag := range tags {
		perm := Permission(strings.ToUpper(strings.TrimSpace(tag)))
		if !allPermissions[perm] {
			return nil, fmt.Errorf("unknown permission %q", tag)
		}
		if seen[perm] {
			continue
		}
		seen[perm] = true
		perms = append(perms, perm)
	}
	return perms, nil
}

// Scan implements sql.Scanner.
func (p *Permissions) Scan(value interface{}) error {
	var raw string
	switch v := value.(type) {
	case nil:
		*p = nil
		return nil
	case []byte:
		raw = string(v)
	case string:
		raw = v
	default:
		return fmt.Errorf("unsupported permissions column type %T", value)
	}
	if raw == "" {
		*p = nil
		return nil
	}
	parts := strings.Split(raw, ",")
	perms := make(Permissions, 0, len(parts))
	for _, part := range parts {
		perms = append(perms, Permission(part))
	}
	*p = perms
	return nil
}

// Value implements driver.Valuer.
func (p Permissions) Value() (driver.Value, error) {
	parts := make([]string, len(p))
	for i, perm := range p {
		parts[i] = string(perm)
	}
	return strings.Join(parts, ","), nil
}
