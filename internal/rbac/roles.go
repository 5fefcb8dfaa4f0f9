package rbac

import "auditforce/internal/store"

// Role semantics live on the store types; this package only decides access.
// Administrators bypass every role check.

func IsAdministrator(role store.UserRole) bool { return role == store.RoleAdministrator }

// CanManageAudits covers creating audits and editing grids.
func CanManageAudits(role store.UserRole) bool {
	return IsAdministrator(role) || role == store.RoleAuditor || role == store.RoleManager
}

// CanManageUsers covers the user administration screens.
func CanManageUsers(role store.UserRole) bool { return IsAdministrator(role) }
