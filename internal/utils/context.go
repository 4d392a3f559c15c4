// Package utils provides general-purpose helpers used across the
// application: context keys, JSON response writing, the resty HTTP client,
// trace id generation, JWT issuance/validation and bearer header parsing.
package utils

import (
	"context"
)

// contextKey is a private type for context keys, so keys never collide with
// string keys of other packages.
type contextKey string

// String implements fmt.Stringer.
func (c contextKey) String() string {
	return string(c)
}

// UserIDCtxKey is the context key of the authenticated user id (int64).
var UserIDCtxKey = contextKey("userID")

// WithUserID returns a copy of ctx that carries userID as the authenticated
// principal.
func WithUserID(ctx context.Context, userID int64) context.Context {
	return context.WithValue(ctx, UserIDCtxKey, userID)
}

// GetUserIDFromContext retrieves the authenticated user id.
//
// ok is false when the value is missing or is not an int64.
func GetUserIDFromContext(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(UserIDCtxKey).(int64)
	return userID, ok
}
