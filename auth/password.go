// Package auth implements the demo password hashing scheme.
//
// This is a classroom-grade peppered SHA-256, not a password KDF. It exists so
// raw passwords are never stored or echoed back; it is not password security.
package auth

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
)

const pepper = "class-demo-not-secure"

// HashPassword derives the stored hash for a raw password.
func HashPassword(raw string) string {
	sum := sha256.Sum256([]byte(raw + pepper))
	return hex.EncodeToString(sum[:])
}

// VerifyPassword reports whether raw hashes to hashed.
func VerifyPassword(raw, hashed string) bool {
	computed := HashPassword(raw)
	return subtle.ConstantTimeCompare([]byte(computed), []byte(hashed)) == 1
}
