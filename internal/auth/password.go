// Package auth wraps one-way password hashing for credential storage.
package auth

import (
	"golang.org/x/crypto/bcrypt"
)

// HashPassword returns a salted bcrypt digest of the given plaintext.
// Signup is the only caller expected to hash; a password is hashed exactly
// once on the way into storage.
func HashPassword(plaintext string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

// CheckPassword reports whether plaintext matches the stored digest.
// It returns false for any mismatch or malformed digest; it never errors.
func CheckPassword(plaintext, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext)) == nil
}
