// Package auth verifies admin credentials for the management endpoints.
package auth

import (
	"crypto/subtle"

	"golang.org/x/crypto/bcrypt"

	"github.com/technsat/storefront/internal/config"
)

type Authenticator interface {
	Authenticate(username, password string) bool
}

// StaticAuthenticator checks against the single configured admin account.
// When a bcrypt hash is configured it takes precedence over the plain
// password; otherwise comparison is constant-time over the plain value.
type StaticAuthenticator struct {
	username     string
	password     string
	passwordHash string
}

func NewStaticAuthenticator(cfg config.AdminConfig) *StaticAuthenticator {
	return &StaticAuthenticator{
		username:     cfg.Username,
		password:     cfg.Password,
		passwordHash: cfg.PasswordHash,
	}
}

func (a *StaticAuthenticator) Authenticate(username, password string) bool {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(a.username)) == 1

	if a.passwordHash != "" {
		err := bcrypt.CompareHashAndPassword([]byte(a.passwordHash), []byte(password))
		return userOK && err == nil
	}

	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(a.password)) == 1
	return userOK && passOK
}
