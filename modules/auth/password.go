package auth

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

const bcryptCost = 12

// hashPassword derives a salted bcrypt digest from a plaintext credential.
func hashPassword(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcryptCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// checkPassword verifies a plaintext credential against a stored digest. An
// absent digest always fails: Google-only accounts cannot authenticate by
// password.
func checkPassword(plain, digest string) bool {
	if digest == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plain)) == nil
}
