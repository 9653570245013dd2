package auth

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/appderecho/backend/internal/pkg/apperrors"
)

// passwordSalt is the fixed salt used by the legacy hashing scheme. It must
// not change, existing stored hashes depend on it.
const passwordSalt = "app_derecho_salt_2024"

// MinPasswordLength is the hard lower bound for passwords.
const MinPasswordLength = 3

// RecommendedPasswordLength is the length below which a suggestion is returned.
const RecommendedPasswordLength = 5

// HashPassword derives the legacy salted SHA-256 hex digest of a password.
func HashPassword(password string) string {
	sum := sha256.Sum256([]byte(passwordSalt + password + passwordSalt))
	return hex.EncodeToString(sum[:])
}

// CheckPassword verifies a password against a stored hash. Hashes produced by
// bcrypt are recognized by their "$2" prefix so accounts can be migrated off
// the legacy scheme without a reset.
func CheckPassword(password, storedHash string) bool {
	if strings.HasPrefix(storedHash, "$2") {
		return bcrypt.CompareHashAndPassword([]byte(storedHash), []byte(password)) == nil
	}
	computed := HashPassword(password)
	return subtle.ConstantTimeCompare([]byte(computed), []byte(storedHash)) == 1
}

// ValidatePassword checks the password policy. It returns a non-binding
// suggestion when the password passes but is shorter than recommended.
func ValidatePassword(password string) (suggestion string, err error) {
	if len(password) < MinPasswordLength {
		return "", apperrors.ErrWeakPassword
	}
	if len(password) < RecommendedPasswordLength {
		return "Se recomienda usar al menos 5 caracteres", nil
	}
	return "", nil
}
