package entities

import "strings"

// Role is the acting user's role, supplied by the identity provider.
type Role string

const (
	RoleAdmin      Role = "admin"
	RoleStaff      Role = "staff"
	RoleProduction Role = "production"
	RoleB2B        Role = "b2b"
)

// ParseRole normalizes a role claim. Unknown values are returned as-is and
// are granted nothing.
func ParseRole(raw string) Role {
	return Role(strings.ToLower(strings.TrimSpace(raw)))
}

// CanTransitionStages reports whether the role may move orders between
// stages. b2b clients only ever view.
func (r Role) CanTransitionStages() bool {
	switch r {
	case RoleAdmin, RoleStaff, RoleProduction:
		return true
	}
	return false
}

// CanManageEstimates reports whether the role may create, cancel or move
// estimates between versions.
func (r Role) CanManageEstimates() bool {
	return r == RoleAdmin || r == RoleStaff
}

// CanRunProduction reports whether a staff member holding this role can be
// assigned to an order.
func (r Role) CanRunProduction() bool {
	return r.CanTransitionStages()
}

// CanAssignProduction reports whether the role may put staff on an order.
func (r Role) CanAssignProduction() bool {
	return r == RoleAdmin || r == RoleStaff
}
