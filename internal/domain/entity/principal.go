package entity

// Principal is the authenticated caller attached to a request.
type Principal struct {
	Identity    string
	Role        Role
	Permissions Permissions
}

// NewPrincipal derives the permission set from the role.
func NewPrincipal(identity string, role Role) *Principal {
	return &Principal{
		Identity:    identity,
		Role:        role,
		Permissions: role.Permissions(),
	}
}

// Can reports whether the principal holds the permission.
func (p *Principal) Can(permission Permission) bool {
	return p != nil && p.Permissions.Contains(permission)
}
