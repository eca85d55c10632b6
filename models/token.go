// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Identity is the verified subject of a bearer token: the user ID plus the
// legacy email attribution. It is what the auth middleware stores in the
// request context and what data-access methods use for ownership scoping.
type Identity struct {
	UserID uuid.UUID
	Email  string
}

// Claims is the JWT claim set carried by every issued token. The subject
// registered claim holds the user ID in canonical UUID string form; Email is
// a private claim kept for legacy ownership matching.
type Claims struct {
	jwt.RegisteredClaims

	Email string `json:"email"`
}

// Token wraps a signed JWT with convenience accessors for authentication flows.
//
// SignedString holds the compact serialized form of the token
// (header.payload.signature) ready to be transmitted in HTTP bodies or
// Authorization headers. Identity is the parsed, verified subject, populated
// on issue and after successful validation so callers never re-parse claims.
type Token struct {
	// Token is the underlying JWT used for signing and claim inspection.
	// Excluded from JSON serialization because only the compact string form
	// is meaningful outside the server process.
	*jwt.Token `json:"-"`

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`

	// Identity is the verified subject extracted from the claims.
	Identity Identity `json:"-"`
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}
