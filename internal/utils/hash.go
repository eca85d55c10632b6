package utils

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// PasswordHashCost is the bcrypt work factor applied to every stored
// password digest.
const PasswordHashCost = 10

// HashPassword derives a salted one-way bcrypt digest from the plaintext
// password. The digest embeds its own random salt and cost, so no extra
// state is needed to verify it later.
//
// A hashing failure is fatal to the calling operation and is returned as a
// wrapped error.
func HashPassword(password string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(password), PasswordHashCost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(digest), nil
}

// VerifyPassword reports whether the plaintext password matches the stored
// bcrypt digest. A mismatch is a normal negative result, not an error.
func VerifyPassword(password, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(password)) == nil
}
