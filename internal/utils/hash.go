package utils

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// resetSecretLength is the number of random bytes in a password-reset secret.
const resetSecretLength = 32

// HashPassword derives an irreversible bcrypt hash from a plaintext password.
// The plaintext never reaches the persistence layer.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(hash), nil
}

// CheckPasswordHash reports whether the plaintext password matches the stored
// bcrypt hash. bcrypt performs the comparison in constant time with respect
// to the password content.
func CheckPasswordHash(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// GenerateResetSecret produces a high-entropy one-time secret for the
// password-reset flow. The raw value is handed to the user out-of-band and
// never persisted; only its HashResetSecret digest is stored.
func GenerateResetSecret() (string, error) {
	b := make([]byte, resetSecretLength)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("error generating reset secret: %w", err)
	}

	return hex.EncodeToString(b), nil
}

// HashResetSecret computes the SHA-256 hex digest of a reset secret.
// Storing only the digest defeats theft of the persisted record: a leaked
// row cannot be replayed as a reset credential.
func HashResetSecret(secret string) string {
	sum := sha256.Sum256([]byte(secret))
	return hex.EncodeToString(sum[:])
}
