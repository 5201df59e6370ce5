package utils

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"strings"

	"golang.org/x/crypto/scrypt"
)

// Stored credentials have the form hex(hash) + "." + hex(salt).
const hashSaltSeparator = "."

const (
	scryptN      = 1 << 15
	scryptR      = 8
	scryptP      = 1
	scryptKeyLen = 32
	saltLen      = 16
)

// HashPassword derives a salted scrypt hash and returns it in the
// hash.salt storage format.
func HashPassword(password string) (string, error) {
	salt := make([]byte, saltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("failed to generate salt: %w", err)
	}

	key, err := scrypt.Key([]byte(password), salt, scryptN, scryptR, scryptP, scryptKeyLen)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	return hex.EncodeToString(key) + hashSaltSeparator + hex.EncodeToString(salt), nil
}

// VerifyPassword checks password against a stored hash.salt value. A stored
// value missing the separator, or otherwise malformed, fails closed: the
// check returns false rather than erroring out.
func VerifyPassword(stored, password string) bool {
	parts := strings.SplitN(stored, hashSaltSeparator, 2)
	if len(parts) != 2 {
		return false
	}

	want, err := hex.DecodeString(parts[0])
	if err != nil {
		return false
	}
	salt, err := hex.DecodeString(parts[1])
	if err != nil {
		return false
	}

	got, err := scrypt.Key([]byte(password), salt, scryptN, scryptR, scryptP, scryptKeyLen)
	if err != nil {
		return false
	}

	return subtle.ConstantTimeCompare(want, got) == 1
}
