package auth

// UserRole is the user's role
type UserRole = string

const (
	// RoleAdmin may perform every administrative mutation and listing.
	RoleAdmin UserRole = "admin"
	// RoleBuyer is a regular shopper. Buyers are excluded from every
	// administrative endpoint; there is no resource-ownership model.
	RoleBuyer UserRole = "buyer"
)

// IsValid checks if the role is one of the predefined valid roles
func IsValidRole(r UserRole) bool {
	switch r {
	case RoleAdmin, RoleBuyer:
		return true
	default:
		return false
	}
}

// ParseRole safely parses a string into a UserRole
func ParseRole(roleStr string) (UserRole, bool) {
	role := UserRole(roleStr)
	return role, IsValidRole(role)
}
