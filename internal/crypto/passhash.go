// Package crypto implements server-side password hashing and verification.
package crypto

import (
	"crypto/subtle"

	"golang.org/x/crypto/argon2"
)

// Argon2id parameters (tuned for server-side hashing).
const (
	argonTime    uint32 = 3         // iterations
	argonMemory  uint32 = 64 * 1024 // 64 MB
	argonThreads uint8  = 1
	argonKeyLen  uint32 = 32
)

// HashPassword returns the Argon2id hash of password using the provided salt.
// The salt is configured process-wide; its absence is a startup error, never a
// per-request one.
func HashPassword(password, salt []byte) []byte {
	return argon2.IDKey(password, salt, argonTime, argonMemory, argonThreads, argonKeyLen)
}

// VerifyPassword verifies password against the expected hash in constant time.
// A malformed or truncated stored hash is a non-match, never an error.
func VerifyPassword(password, salt, expected []byte) bool {
	if len(expected) != int(argonKeyLen) {
		return false
	}
	got := HashPassword(password, salt)
	return subtle.ConstantTimeCompare(got, expected) == 1
}
