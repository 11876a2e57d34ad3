// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package sec

// # User Roles

// UserRole represents the authorization level granted to an account.
type UserRole string

const (
	// Owns the platform; implies every admin permission.
	RoleSuperAdmin UserRole = "super_admin"

	// Moderates ads and maintains the category tree.
	RoleAdmin UserRole = "admin"

	// Default role for registered accounts; may post ads once approved.
	RoleSeller UserRole = "seller"
)

// # Role Hierarchy

// AtLeast checks if the current role meets or exceeds the required target role.
func (r UserRole) AtLeast(target UserRole) bool {
	return r.level() > 0 && r.level() >= target.level()
}

// level maps a role to a numeric hierarchy level for comparison logic.
func (r UserRole) level() int {
	switch r {
	case RoleSuperAdmin:
		return 30
	case RoleAdmin:
		return 20
	case RoleSeller:
		return 10
	default:
		return 0
	}
}

// # Account Status

// AccountStatus is the moderation state of an account.
type AccountStatus string

const (
	StatusPending  AccountStatus = "pending"
	StatusApproved AccountStatus = "approved"
	StatusRejected AccountStatus = "rejected"
)
