// Package entity contains the core business objects of the project.
package entity

import (
	"slices"
	"strings"
)

// Role represents the class of principal an identity belongs to.
type Role string

const (
	// RoleAdmin manages users and has every permission.
	RoleAdmin Role = "ADMIN"
	// RoleManager manages containers and operations.
	RoleManager Role = "MANAGER"
	// RoleInspector records inspections.
	RoleInspector Role = "INSPECTOR"
)

// Permission is a capability granted through a Role.
type Permission string

const (
	PermissionAdmin     Permission = "ADMIN"
	PermissionManager   Permission = "MANAGER"
	PermissionInspector Permission = "INSPECTOR"
)

// rolePermissions is the fixed role to permission-set mapping.
var rolePermissions = map[Role]Permissions{
	RoleAdmin:     {PermissionAdmin, PermissionManager, PermissionInspector},
	RoleManager:   {PermissionManager, PermissionInspector},
	RoleInspector: {PermissionInspector},
}

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	_, ok := rolePermissions[r]

	return ok
}

// Permissions returns a copy of the permission set granted to the role.
// Unknown roles grant nothing.
func (r Role) Permissions() Permissions {
	return slices.Clone(rolePermissions[r])
}

// ParseRole accepts role names case-insensitively.
func ParseRole(s string) (Role, bool) {
	role := Role(strings.ToUpper(strings.TrimSpace(s)))

	return role, role.IsValid()
}

// Permissions is a slice of Permission for convenience.
type Permissions []Permission

// Contains checks if the set contains a specific permission.
func (ps Permissions) Contains(p Permission) bool {
	return slices.Contains(ps, p)
}

// ToStrings converts Permissions to []string for API responses.
func (ps Permissions) ToStrings() []string {
	result := make([]string, len(ps))
	for i, p := range ps {
		result[i] = string(p)
	}

	return result
}
