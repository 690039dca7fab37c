package auth_test

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"

	"github.com/goliatone/go-shop/auth"
)

func TestClaims_UserIDFallsBackToSubject(t *testing.T) {
	claims := &auth.Claims{
		RegisteredClaims: jwt.RegisteredClaims{Subject: "subject-id"},
	}
	assert.Equal(t, "subject-id", claims.UserID())

	claims.UID = "uid-claim"
	assert.Equal(t, "uid-claim", claims.UserID())
}

func TestClaims_ZeroTimes(t *testing.T) {
	claims := &auth.Claims{}

	assert.True(t, claims.Expires().IsZero())
	assert.True(t, claims.IssuedAt().IsZero())
}

func TestClaims_Accessors(t *testing.T) {
	expires := time.Now().Add(time.Hour)
	claims := &auth.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expires),
		},
		UserEmail: "admin@example.com",
		UserRole:  auth.RoleAdmin,
	}

	assert.Equal(t, "admin@example.com", claims.Email())
	assert.Equal(t, auth.RoleAdmin, claims.Role())
	assert.Equal(t, expires.Unix(), claims.Expires().Unix())
}
