package models

import (
	"time"

	"github.com/google/uuid"
)

// User represents an account entity used for authentication and authorization.
// It contains identity attributes and credential-related data.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// ID is the unique identifier of the user. Stored natively as a UUID,
	// serialized to clients as its canonical string form.
	ID uuid.UUID `json:"id"`

	// Name is the display name of the user.
	// It is non-sensitive and may be shown in UI.
	Name string `json:"name"`

	// Email is the unique login identifier of the account.
	// Uniqueness is enforced by the store at creation time.
	Email string `json:"email"`

	// PasswordHash is the bcrypt digest of the user's password.
	// It is never exposed via JSON and never leaves the service layer
	// in any returned representation.
	PasswordHash string `json:"-"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"createdAt"`

	// UpdatedAt is the timestamp of the last profile modification.
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// RegisterRequest is the JSON body accepted by POST /api/auth/register.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest is the JSON body accepted by POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserUpdate is a partial profile patch. Nil fields are left untouched.
//
// Changing Password additionally requires CurrentPassword: the service
// verifies it against the stored digest before accepting the new value.
type UserUpdate struct {
	Name            *string `json:"name"`
	Email           *string `json:"email"`
	Password        *string `json:"password"`
	CurrentPassword *string `json:"currentPassword"`
}
