// Package utils provides general-purpose helpers shared across the
// application: context keys, JWT token generation and validation, password
// hashing, and HTTP response writing.
package utils

import (
	"context"

	"github.com/MKhiriev/recipe-manager/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents collisions with
// other packages that may store string-keyed values in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// IdentityCtxKey is the key under which the auth middleware stores the
// verified caller identity. Handlers retrieve it with GetIdentityFromContext.
var IdentityCtxKey = contextKey("identity")

// GetIdentityFromContext retrieves the verified caller identity from the
// context.
//
// ok == false means the request was not authenticated (preview mode) or the
// value has an unexpected type; callers must then treat the request as
// anonymous.
func GetIdentityFromContext(ctx context.Context) (models.Identity, bool) {
	identity, ok := ctx.Value(IdentityCtxKey).(models.Identity)
	return identity, ok
}
