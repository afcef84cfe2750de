package utils

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"strings"
)

// HashPassword returns the hex SHA-256 digest of the lower-cased email
// concatenated with the password.  The email acts as the salt, so the same
// (email, password) pair always reproduces the same hash.  This is a demo
// scheme: it is one-way but fast, and unsuitable beyond development.
// Swapping in a slow per-user-random-salt algorithm invalidates every
// stored hash, so it must not be done silently.
func HashPassword(password, email string) string {
	sum := sha256.Sum256([]byte(strings.ToLower(email) + password))
	return hex.EncodeToString(sum[:])
}

// VerifyPassword compares a stored hash against the hash derived from the
// supplied credentials using a constant-time comparison.
func VerifyPassword(hash, password, email string) bool {
	derived := HashPassword(password, email)
	return subtle.ConstantTimeCompare([]byte(hash), []byte(derived)) == 1
}
