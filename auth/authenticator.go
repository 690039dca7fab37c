package auth

import (
	"context"
)

// Auther implements the login flow: resolve credentials through the identity
// provider, then issue a bearer token for the verified identity.
type Auther struct {
	provider IdentityProvider
	tokens   TokenService
	logger   Logger
}

// NewAuthenticator returns a new Authenticator
func NewAuthenticator(provider IdentityProvider, tokens TokenService) *Auther {
	return &Auther{
		provider: provider,
		tokens:   tokens,
		logger:   defLogger{},
	}
}

func (s *Auther) WithLogger(logger Logger) *Auther {
	if logger != nil {
		s.logger = logger
	}
	return s
}

// TokenService returns the TokenService instance used by this Authenticator
func (s *Auther) TokenService() TokenService {
	return s.tokens
}

// Login verifies the email/password pair and returns a signed token plus the
// verified identity. The provider enforces existence, liveness, and password
// checks in that order, so an unknown email surfaces as PrincipalNotFound and
// an inactive account as AccountInactive before any password comparison.
func (s *Auther) Login(ctx context.Context, email, password string) (string, Identity, error) {
	identity, err := s.provider.VerifyIdentity(ctx, email, password)
	if err != nil {
		s.logger.Warn("login verify identity failed for %s: %v", email, err)
		return "", nil, err
	}

	token, err := s.tokens.Generate(identity)
	if err != nil {
		s.logger.Error("login token generation failed for user %s: %v", identity.ID(), err)
		return "", nil, err
	}

	s.logger.Info("login succeeded for user %s", identity.ID())
	return token, identity, nil
}

var _ Authenticator = (*Auther)(nil)
