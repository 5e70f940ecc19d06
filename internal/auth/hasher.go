// Package auth implements credential hashing and the register/login flow.
package auth

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Hasher converts a password to a storable hash and verifies a password
// against a stored hash. Implementations must be interchangeable so the
// scheme can be upgraded without interface changes.
type Hasher interface {
	Hash(password string) (string, error)
	Verify(password, storedHash string) bool
}

// BcryptHasher is the default scheme for new credentials.
type BcryptHasher struct {
	Cost int
}

// NewBcryptHasher returns a bcrypt hasher at the default cost.
func NewBcryptHasher() *BcryptHasher {
	return &BcryptHasher{Cost: bcrypt.DefaultCost}
}

// Hash produces a bcrypt hash of the password.
func (h *BcryptHasher) Hash(password string) (string, error) {
	cost := h.Cost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hashed), nil
}

// Verify compares the password against a bcrypt hash.
func (h *BcryptHasher) Verify(password, storedHash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(storedHash), []byte(password)) == nil
}

// legacySalt is the fixed salt the first SpendWise release prepended before
// digesting. Kept so rows written by that release remain verifiable.
const legacySalt = "spendwise_salt__"

// LegacySHA256Hasher reproduces the original fixed-salt SHA-256 scheme. It
// is registered as a verification fallback only; new hashes should come
// from BcryptHasher.
type LegacySHA256Hasher struct{}

// Hash digests the salted password to lowercase hex.
func (LegacySHA256Hasher) Hash(password string) (string, error) {
	sum := sha256.Sum256([]byte(legacySalt + password))
	return hex.EncodeToString(sum[:]), nil
}

// Verify compares in constant time against the stored hex digest.
func (h LegacySHA256Hasher) Verify(password, storedHash string) bool {
	computed, err := h.Hash(password)
	if err != nil {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(computed), []byte(storedHash)) == 1
}
