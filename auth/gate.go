package auth

import (
	"context"
	"strings"
	"time"

	"github.com/goliatone/go-errors"
	"github.com/google/uuid"
)

// RequestState names the stage a request reached inside the Gate. Rejections
// carry the last state reached as metadata; the states are terminal per
// request, nothing is retried.
type RequestState string

const (
	StateUnauthenticated  RequestState = "unauthenticated"
	StateTokenVerified    RequestState = "token_verified"
	StateIdentityResolved RequestState = "identity_resolved"
	StateAuthorized       RequestState = "authorized"
)

const bearerScheme = "Bearer"

// DefaultStoreTimeout bounds the fresh identity lookup.
const DefaultStoreTimeout = 5 * time.Second

// Gate converts a raw request credential into a verified Principal. It is a
// pure function of the credential and the current store state; nothing is
// cached across requests.
type Gate struct {
	tokens       TokenService
	store        IdentityStore
	storeTimeout time.Duration
	logger       Logger
}

// GateOption customizes gate construction.
type GateOption func(*Gate)

// WithGateLogger overrides the default logger.
func WithGateLogger(logger Logger) GateOption {
	return func(g *Gate) {
		if logger != nil {
			g.logger = logger
		}
	}
}

// WithStoreTimeout bounds the identity lookup round-trip.
func WithStoreTimeout(d time.Duration) GateOption {
	return func(g *Gate) {
		if d > 0 {
			g.storeTimeout = d
		}
	}
}

// NewGate returns a Gate wired to the given codec and identity store.
func NewGate(tokens TokenService, store IdentityStore, opts ...GateOption) *Gate {
	g := &Gate{
		tokens:       tokens,
		store:        store,
		storeTimeout: DefaultStoreTimeout,
		logger:       defLogger{},
	}
	for _, opt := range opts {
		if opt != nil {
			opt(g)
		}
	}
	return g
}

// Authenticate performs the ordered checks that turn an Authorization header
// into a Principal:
//
//  1. Bearer presence check -> ErrCredentialMissing
//  2. signature and expiry check -> ErrCredentialInvalid
//  3. fresh identity lookup by the id claim -> ErrPrincipalNotFound or
//     ErrStoreUnavailable
//  4. liveness check on the current record -> ErrAccountInactive
//
// The ordering is load-bearing: an expired token fails at step 2 even for an
// active account, and a deactivated account fails at step 4 even with an
// unexpired token. Step 4 is the only immediate revocation mechanism.
func (g *Gate) Authenticate(ctx context.Context, header string) (*Principal, error) {
	raw, err := TokenFromHeader(header)
	if err != nil {
		return nil, rejectionAt(ErrCredentialMissing, StateUnauthenticated)
	}

	claims, err := g.tokens.Validate(raw)
	if err != nil {
		g.logger.Debug("gate token validation failed: %v", err)
		return nil, rejectionAt(ErrCredentialInvalid, StateUnauthenticated)
	}

	id, err := uuid.Parse(claims.UserID())
	if err != nil {
		// A verified token with an unparseable id claim can match no record.
		return nil, rejectionAt(ErrPrincipalNotFound, StateTokenVerified)
	}

	lookupCtx, cancel := context.WithTimeout(ctx, g.storeTimeout)
	defer cancel()

	identity, err := g.store.FindIdentityByID(lookupCtx, id)
	if err != nil {
		if errors.IsNotFound(err) {
			return nil, rejectionAt(ErrPrincipalNotFound, StateTokenVerified)
		}
		g.logger.Error("gate identity lookup failed for user %s: %v", id.String(), err)
		return nil, rejectionAt(ErrStoreUnavailable, StateTokenVerified)
	}

	if identity == nil {
		return nil, rejectionAt(ErrPrincipalNotFound, StateTokenVerified)
	}

	if !identity.Active() {
		g.logger.Warn("inactive user %s attempted access", id.String())
		return nil, rejectionAt(ErrAccountInactive, StateIdentityResolved)
	}

	email := claims.Email()
	if email == "" {
		email = identity.Email()
	}

	return &Principal{
		ID:     id,
		Email:  email,
		Role:   identity.Role(),
		Active: identity.Active(),
	}, nil
}

// TokenFromHeader extracts the raw token from an Authorization header value,
// requiring the Bearer scheme. Matches on scheme case-insensitively.
func TokenFromHeader(header string) (string, error) {
	l := len(bearerScheme)
	if len(header) > l+1 && strings.EqualFold(header[:l], bearerScheme) {
		token := strings.TrimSpace(header[l:])
		if token != "" {
			return token, nil
		}
	}
	return "", ErrCredentialMissing
}

func rejectionAt(err *errors.Error, state RequestState) error {
	return err.Clone().WithMetadata(map[string]any{"auth_state": string(state)})
}
