package common

import (
	"crypto/rand"
	"encoding/hex"
)

// GenerateRandByteArray returns size cryptographically random bytes.
// crypto/rand failures are not recoverable at this level, so it panics
// instead of returning an error.
func GenerateRandByteArray(size int) []byte {
	b := make([]byte, size)
	if _, err := rand.Read(b); err != nil {
		panic(err)
	}
	return b
}

// MakeRandHexString generates a random hexadecimal string from size random
// bytes; the resulting string is twice as long as size.
func MakeRandHexString(size int) string {
	return hex.EncodeToString(GenerateRandByteArray(size))
}
