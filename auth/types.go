package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type Logger interface {
	Debug(format string, args ...any)
	Info(format string, args ...any)
	Warn(format string, args ...any)
	Error(format string, args ...any)
}

// Identity holds the attributes of a stored account as the auth core sees
// them. The repository layer adapts its user model to this interface.
type Identity interface {
	ID() string
	Email() string
	Role() UserRole
	Active() bool
}

// IdentityStore is the fresh-lookup dependency of the Gate. Implementations
// return an error satisfying errors.IsNotFound for absent records; any other
// error is treated as the store being unavailable.
type IdentityStore interface {
	FindIdentityByID(ctx context.Context, id uuid.UUID) (Identity, error)
}

// IdentityProvider is the login-side dependency: it resolves credentials into
// an Identity, enforcing existence, liveness, and password checks in order.
type IdentityProvider interface {
	VerifyIdentity(ctx context.Context, email, password string) (Identity, error)
	FindIdentityByID(ctx context.Context, id uuid.UUID) (Identity, error)
}

// TokenService signs and verifies the bearer tokens issued at login.
type TokenService interface {
	Generate(identity Identity) (string, error)
	SignClaims(claims *Claims) (string, error)
	Validate(tokenString string) (*Claims, error)
}

// Authenticator holds methods to deal with authentication
type Authenticator interface {
	Login(ctx context.Context, email, password string) (string, Identity, error)
}

// Config holds the auth options consumed at construction time. The signing
// secret is read once at startup and never rotated at runtime.
type Config interface {
	GetSigningKey() string
	GetTokenExpiration() int
	GetIssuer() string
	GetStoreTimeout() time.Duration
}

type defLogger struct{}

func (d defLogger) Error(format string, args ...any) {
	fmt.Printf("[ERR] AUTH "+newline(format), args...)
}

func (d defLogger) Warn(format string, args ...any) {
	fmt.Printf("[WRN] AUTH "+newline(format), args...)
}

func (d defLogger) Info(format string, args ...any) {
	fmt.Printf("[INF] AUTH "+newline(format), args...)
}

func (d defLogger) Debug(format string, args ...any) {
	fmt.Printf("[DBG] AUTH "+newline(format), args...)
}

func newline(s string) string {
	if len(s) > 0 && s[len(s)-1] != '\n' {
		s += "\n"
	}
	return s
}
