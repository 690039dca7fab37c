package repository

import (
	"context"

	"github.com/goliatone/go-errors"
	"github.com/google/uuid"

	"github.com/goliatone/go-shop/auth"
)

// UserProvider adapts the users repository to the auth package interfaces:
// the Gate's fresh-lookup store and the login-side credential verifier.
type UserProvider struct {
	users  Users
	logger auth.Logger
}

var (
	_ auth.IdentityStore    = (*UserProvider)(nil)
	_ auth.IdentityProvider = (*UserProvider)(nil)
)

// NewUserProvider will create a new UserProvider
func NewUserProvider(users Users) *UserProvider {
	return &UserProvider{users: users}
}

func (p *UserProvider) WithLogger(logger auth.Logger) *UserProvider {
	p.logger = logger
	return p
}

// FindIdentityByID performs the per-request fresh lookup the Gate depends
// on. Not-found passes through as a rich NotFound error the Gate detects.
func (p *UserProvider) FindIdentityByID(ctx context.Context, id uuid.UUID) (auth.Identity, error) {
	user, err := p.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return identityAdapter{user: user}, nil
}

// VerifyIdentity resolves login credentials, enforcing existence, liveness,
// and password checks in that order.
func (p *UserProvider) VerifyIdentity(ctx context.Context, email, password string) (auth.Identity, error) {
	user, err := p.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.IsNotFound(err) {
			return nil, auth.ErrPrincipalNotFound
		}
		return nil, errors.Wrap(err, errors.CategoryInternal, "failed to retrieve user during verification")
	}

	if !user.Active {
		return nil, auth.ErrAccountInactive
	}

	if err := auth.ComparePasswordAndHash(password, user.PasswordHash); err != nil {
		if p.logger != nil {
			p.logger.Warn("password mismatch for user %s", user.ID.String())
		}
		return nil, err
	}

	return identityAdapter{user: user}, nil
}

// identityAdapter exposes a stored user through the auth.Identity interface.
type identityAdapter struct {
	user *User
}

func (a identityAdapter) ID() string          { return a.user.ID.String() }
func (a identityAdapter) Email() string       { return a.user.Email }
func (a identityAdapter) Role() auth.UserRole { return a.user.Role }
func (a identityAdapter) Active() bool        { return a.user.Active }

var _ auth.Identity = identityAdapter{}
