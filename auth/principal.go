package auth

import "github.com/google/uuid"

// Principal is the verified identity attached to a request after the Gate
// succeeds. It is reconstructed on every request and never persisted: id and
// email come from the token claims, role and active from the fresh store
// record, so account changes after issuance are honored.
type Principal struct {
	ID     uuid.UUID
	Email  string
	Role   UserRole
	Active bool
}

// IsAdmin reports whether the principal carries the administrator role.
func (p *Principal) IsAdmin() bool {
	return p != nil && p.Role == RoleAdmin
}
