package auth_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goliatone/go-shop/auth"
)

const testSigningKey = "test-signing-key"

func newTestIdentity() testIdentity {
	return testIdentity{
		id:     uuid.NewString(),
		email:  "buyer@example.com",
		role:   auth.RoleBuyer,
		active: true,
	}
}

func TestTokenService_GenerateAndValidate(t *testing.T) {
	ts := auth.NewTokenService([]byte(testSigningKey), 1, "go-shop", nil)
	identity := newTestIdentity()

	token, err := ts.Generate(identity)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ts.Validate(token)
	require.NoError(t, err)

	assert.Equal(t, identity.id, claims.UserID())
	assert.Equal(t, identity.email, claims.Email())
	assert.Equal(t, string(auth.RoleBuyer), claims.Role())
}

func TestTokenService_ValidateIsRepeatable(t *testing.T) {
	ts := auth.NewTokenService([]byte(testSigningKey), 1, "go-shop", nil)

	token, err := ts.Generate(newTestIdentity())
	require.NoError(t, err)

	first, err := ts.Validate(token)
	require.NoError(t, err)

	second, err := ts.Validate(token)
	require.NoError(t, err)

	assert.Equal(t, first.UserID(), second.UserID())
	assert.Equal(t, first.Expires(), second.Expires())
}

func TestTokenService_ExpiryIsOneHour(t *testing.T) {
	issued := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	ts := auth.NewTokenService([]byte(testSigningKey), 1, "go-shop", nil,
		auth.WithTokenClock(func() time.Time { return issued }),
	)

	token, err := ts.Generate(newTestIdentity())
	require.NoError(t, err)

	claims, err := ts.Validate(token)
	require.NoError(t, err)

	assert.Equal(t, issued.Add(time.Hour).Unix(), claims.Expires().Unix())
}

func TestTokenService_ExpiredToken(t *testing.T) {
	now := time.Now()

	issuer := auth.NewTokenService([]byte(testSigningKey), 1, "go-shop", nil,
		auth.WithTokenClock(func() time.Time { return now.Add(-61 * time.Minute) }),
	)

	token, err := issuer.Generate(newTestIdentity())
	require.NoError(t, err)

	verifier := auth.NewTokenService([]byte(testSigningKey), 1, "go-shop", nil,
		auth.WithTokenClock(func() time.Time { return now }),
	)

	_, err = verifier.Validate(token)
	require.Error(t, err)
	assert.Equal(t, auth.TextCodeTokenExpired, auth.TextCode(err))
}

func TestTokenService_WrongSigningKey(t *testing.T) {
	issuer := auth.NewTokenService([]byte(testSigningKey), 1, "go-shop", nil)
	verifier := auth.NewTokenService([]byte("a-different-key"), 1, "go-shop", nil)

	token, err := issuer.Generate(newTestIdentity())
	require.NoError(t, err)

	_, err = verifier.Validate(token)
	require.Error(t, err)
	assert.Equal(t, auth.TextCodeTokenMalformed, auth.TextCode(err))
}

func TestTokenService_GarbageToken(t *testing.T) {
	ts := auth.NewTokenService([]byte(testSigningKey), 1, "go-shop", nil)

	for _, token := range []string{"", "garbage", "a.b.c"} {
		_, err := ts.Validate(token)
		assert.Error(t, err, "token %q should not validate", token)
	}
}

func TestTokenService_NilIdentity(t *testing.T) {
	ts := auth.NewTokenService([]byte(testSigningKey), 1, "go-shop", nil)

	_, err := ts.Generate(nil)
	assert.Error(t, err)
}
