// Package crypto implements server-side password hashing and verification.
package crypto

import "golang.org/x/crypto/bcrypt"

// DefaultCost is the bcrypt work factor used when the config does not override it.
const DefaultCost = 12

// HashPassword returns the bcrypt hash of password (salt embedded in the hash).
func HashPassword(password []byte, cost int) ([]byte, error) {
	if cost == 0 {
		cost = DefaultCost
	}
	return bcrypt.GenerateFromPassword(password, cost)
}

// VerifyPassword reports whether password matches the stored bcrypt hash.
func VerifyPassword(password, hash []byte) bool {
	return bcrypt.CompareHashAndPassword(hash, password) == nil
}
