package auth

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"

	"golang.org/x/crypto/bcrypt"
)

// BcryptCost is the hashing cost for newly provisioned passwords.
const BcryptCost = 12

// HashPassword hashes a password with bcrypt.
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), BcryptCost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

// CheckPassword verifies a password against a bcrypt hash.
func CheckPassword(hashedPassword, password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
	return err == nil
}

// LegacyHash computes the hex SHA-256 digest used by the legacy senha
// column. The digest is unsalted; accounts provisioned this way keep
// working but new accounts always get bcrypt hashes.
func LegacyHash(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}

// CheckLegacyPassword verifies a password against a stored legacy digest.
func CheckLegacyPassword(storedDigest, password string) bool {
	if storedDigest == "" {
		return false
	}
	computed := LegacyHash(password)
	return subtle.ConstantTimeCompare([]byte(storedDigest), []byte(computed)) == 1
}
