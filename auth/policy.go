package auth

// Rule is the declared access policy for an operation. Exactly two shapes
// exist in this system: Public (no check at all, declared explicitly so no
// route is accidentally open) and AdminOnly (allow iff the principal is an
// administrator). Liveness is enforced by the Gate, never re-checked here.
type Rule struct {
	public    bool
	operation string
}

// Public declares an operation that requires no principal. Registration,
// login, and catalog reads use this.
func Public() Rule {
	return Rule{public: true}
}

// AdminOnly declares an operation restricted to administrators. The operation
// label names the action in the denial message ("list categories", "delete
// users"); the decision logic is identical for every label.
func AdminOnly(operation string) Rule {
	return Rule{operation: operation}
}

// Protected reports whether the rule requires an authenticated principal.
func (r Rule) Protected() bool {
	return !r.public
}

// Operation returns the label used in denial messages.
func (r Rule) Operation() string {
	return r.operation
}

// Authorize decides allow or deny for the given principal. A nil principal on
// a protected rule is a missing credential, not an access denial.
func (r Rule) Authorize(principal *Principal) error {
	if r.public {
		return nil
	}

	if principal == nil {
		return ErrCredentialMissing
	}

	if !principal.IsAdmin() {
		return AccessDenied(r.operation)
	}

	return nil
}
