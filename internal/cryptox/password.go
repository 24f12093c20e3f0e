// Package cryptox implements salted password hashing for the credential
// store. The digest is argon2id over (password, salt), hex-encoded; the same
// pair always produces the same digest, so verification is a recompute and
// constant-time compare.
package cryptox

import (
	"crypto/subtle"
	"encoding/hex"

	"golang.org/x/crypto/argon2"
)

const (
	argonTime    = 1
	argonMemory  = 64 * 1024
	argonThreads = 4
	argonKeyLen  = 32
)

// HashPassword derives the salted digest of password.
func HashPassword(password, salt []byte) string {
	sum := argon2.IDKey(password, salt, argonTime, argonMemory, argonThreads, argonKeyLen)
	return hex.EncodeToString(sum)
}

// VerifyPassword recomputes the digest for the candidate password and
// compares it against the stored value in constant time.
func VerifyPassword(stored string, password, salt []byte) bool {
	candidate := HashPassword(password, salt)
	return subtle.ConstantTimeCompare([]byte(stored), []byte(candidate)) == 1
}
