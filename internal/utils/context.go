// Package utils provides small helpers shared across layers: type-safe
// context keys, JWT token generation and validation, JSON response writing,
// and UUID generation for blob object keys.
package utils

import (
	"context"
)

// contextKey is a private type for context keys. A dedicated type prevents
// collisions with string-based keys set by other packages.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// UserIDCtxKey is the key under which the auth middleware stores the
// verified owner identifier (the JWT subject). Resource handlers read it
// back with [GetUserIDFromContext]; it is the only source of caller
// identity used for authorization decisions.
var UserIDCtxKey = contextKey("userID")

// GetUserIDFromContext retrieves the verified owner identifier from ctx.
//
// Returns the user ID and an ok flag:
//   - ok == true  — a verified identity is present
//   - ok == false — the request was not authenticated
func GetUserIDFromContext(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(UserIDCtxKey).(int64)
	return userID, ok
}
