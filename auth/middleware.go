package auth

import (
	"github.com/gofiber/fiber/v2"
)

// PrincipalKey is the fiber locals key the middleware stores the verified
// Principal under.
const PrincipalKey = "principal"

// Protect binds a Gate and a Rule to a route. Public rules skip the gate
// entirely; protected rules run the full authenticate-then-authorize chain
// and short-circuit with the rejection before any handler logic executes.
func Protect(gate *Gate, rule Rule) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !rule.Protected() {
			return c.Next()
		}

		principal, err := gate.Authenticate(c.UserContext(), c.Get(fiber.HeaderAuthorization))
		if err != nil {
			return err
		}

		if err := rule.Authorize(principal); err != nil {
			return err
		}

		c.Locals(PrincipalKey, principal)
		c.SetUserContext(WithPrincipal(c.UserContext(), principal))

		return c.Next()
	}
}

// PrincipalFromFiber extracts the Principal stored by Protect, if any.
func PrincipalFromFiber(c *fiber.Ctx) (*Principal, bool) {
	principal, ok := c.Locals(PrincipalKey).(*Principal)
	return principal, ok
}
