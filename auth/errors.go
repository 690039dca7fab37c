package auth

import (
	"fmt"
	"net/http"

	"github.com/goliatone/go-errors"
)

// Stable text codes attached to every rejection the package produces. The
// transport layer and tests key off these instead of message strings.
const (
	TextCodeCredentialMissing = "CREDENTIAL_MISSING"
	TextCodeCredentialInvalid = "CREDENTIAL_INVALID"
	TextCodeTokenExpired      = "TOKEN_EXPIRED"
	TextCodeTokenMalformed    = "TOKEN_MALFORMED"
	TextCodePrincipalNotFound = "PRINCIPAL_NOT_FOUND"
	TextCodeAccountInactive   = "ACCOUNT_INACTIVE"
	TextCodeAccessDenied      = "ACCESS_DENIED"
	TextCodeStoreUnavailable  = "STORE_UNAVAILABLE"
	TextCodeIncorrectPassword = "INCORRECT_PASSWORD"
)

// ErrCredentialMissing is returned when a request carries no Authorization
// header or does not use the Bearer scheme.
var ErrCredentialMissing = errors.New("token required", errors.CategoryAuth).
	WithTextCode(TextCodeCredentialMissing).
	WithCode(errors.CodeForbidden)

// ErrCredentialInvalid merges the malformed, bad-signature, and expired cases
// so the client cannot distinguish them.
var ErrCredentialInvalid = errors.New("invalid or expired token", errors.CategoryAuth).
	WithTextCode(TextCodeCredentialInvalid).
	WithCode(errors.CodeUnauthorized)

// ErrTokenExpired is the codec-level expiry error. The gate collapses it into
// ErrCredentialInvalid before it reaches a client.
var ErrTokenExpired = errors.New("token is expired", errors.CategoryAuth).
	WithTextCode(TextCodeTokenExpired).
	WithCode(errors.CodeUnauthorized)

// ErrTokenMalformed is the codec-level parse/signature error.
var ErrTokenMalformed = errors.New("token is malformed or has an invalid signature", errors.CategoryAuth).
	WithTextCode(TextCodeTokenMalformed).
	WithCode(errors.CodeUnauthorized)

// ErrPrincipalNotFound is returned when the id claim of a verified token
// matches no account in the store.
var ErrPrincipalNotFound = errors.New("user not found", errors.CategoryNotFound).
	WithTextCode(TextCodePrincipalNotFound).
	WithCode(errors.CodeNotFound)

// ErrAccountInactive is returned when the account exists but its active flag
// is off. This is the only server-side revocation mechanism before the token
// expires on its own.
var ErrAccountInactive = errors.New("access denied: user is inactive", errors.CategoryAuthz).
	WithTextCode(TextCodeAccountInactive).
	WithCode(errors.CodeForbidden)

// ErrStoreUnavailable is returned when the fresh identity lookup fails for a
// reason other than the record being absent.
var ErrStoreUnavailable = errors.New("identity store unavailable", errors.CategoryOperation).
	WithTextCode(TextCodeStoreUnavailable).
	WithCode(http.StatusServiceUnavailable)

// ErrIncorrectPassword is returned by the login flow on a bcrypt mismatch.
var ErrIncorrectPassword = errors.New("incorrect password", errors.CategoryAuth).
	WithTextCode(TextCodeIncorrectPassword).
	WithCode(errors.CodeUnauthorized)

// AccessDenied builds the denial for an AdminOnly rule. The operation label
// only varies the message.
func AccessDenied(operation string) *errors.Error {
	return errors.New(fmt.Sprintf("access denied: only administrators may %s", operation), errors.CategoryAuthz).
		WithTextCode(TextCodeAccessDenied).
		WithCode(errors.CodeForbidden).
		WithMetadata(map[string]any{"operation": operation})
}

// TextCode extracts the stable code from a rejection, or "" for foreign errors.
func TextCode(err error) string {
	var rich *errors.Error
	if errors.As(err, &rich) {
		return rich.TextCode
	}
	return ""
}

// IsCredentialMissing reports whether err is a missing/malformed header rejection.
func IsCredentialMissing(err error) bool { return TextCode(err) == TextCodeCredentialMissing }

// IsCredentialInvalid reports whether err is a signature/expiry rejection.
func IsCredentialInvalid(err error) bool { return TextCode(err) == TextCodeCredentialInvalid }

// IsPrincipalNotFound reports whether err is an unknown-account rejection.
func IsPrincipalNotFound(err error) bool { return TextCode(err) == TextCodePrincipalNotFound }

// IsAccountInactive reports whether err is a liveness rejection.
func IsAccountInactive(err error) bool { return TextCode(err) == TextCodeAccountInactive }

// IsAccessDenied reports whether err is an authorization rejection.
func IsAccessDenied(err error) bool { return TextCode(err) == TextCodeAccessDenied }

// IsStoreUnavailable reports whether err is a store connectivity rejection.
func IsStoreUnavailable(err error) bool { return TextCode(err) == TextCodeStoreUnavailable }
