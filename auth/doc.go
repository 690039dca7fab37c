// Package auth implements the authentication and authorization core of the
// shop backend: JWT issuance and verification, the per-request authentication
// gate, and the role-based authorization rules routes declare.
//
// Request flow:
//   - The Gate turns a raw Authorization header into a Principal. It verifies
//     the token signature and expiry, then performs a fresh identity lookup so
//     that account deactivation takes effect before the token expires. Claims
//     embedded in the token are never trusted for role or liveness.
//   - A Rule (Public or AdminOnly) decides whether the Principal may perform
//     the operation. AdminOnly rules carry an operation label that only varies
//     the denial message, never the decision logic.
//
// Rejections are rich errors carrying the HTTP status the transport should
// return and the request state that was reached when the rejection happened.
package auth
