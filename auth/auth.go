// Package auth checks the admin credential presented with every privileged
// call. There is one shared secret and no session or token; each call is
// verified on its own.
package auth

import (
	"crypto/subtle"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// Verifier decides whether a presented credential grants admin access.
type Verifier interface {
	Verify(credential string) bool
}

// SharedSecret compares the credential for exact equality with a plaintext secret.
type SharedSecret string

// Verify implements Verifier. An empty secret never matches.
func (s SharedSecret) Verify(credential string) bool {
	if s == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(credential), []byte(s)) == 1
}

// BcryptHash verifies the credential against a bcrypt hash of the secret.
type BcryptHash string

// Verify implements Verifier.
func (h BcryptHash) Verify(credential string) bool {
	if h == "" || credential == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(h), []byte(credential)) == nil
}

// NewVerifier picks the verifier for the configured secret. A hash wins over a
// plaintext secret when both are set.
func NewVerifier(secret, hash string) (Verifier, error) {
	if hash = strings.TrimSpace(hash); hash != "" {
		if _, err := bcrypt.Cost([]byte(hash)); err != nil {
			return nil, errors.New("admin password hash is not a bcrypt hash")
		}
		return BcryptHash(hash), nil
	}
	if secret == "" {
		return nil, errors.New("admin password is not configured")
	}
	return SharedSecret(secret), nil
}

// HashPassword returns a bcrypt hash suitable for ADMIN_PASSWORD_HASH.
func HashPassword(password string) (string, error) {
	if strings.TrimSpace(password) == "" {
		return "", errors.New("password is required")
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}
