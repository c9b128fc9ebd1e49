// internal/auth/auth_test.go
package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/technsat/storefront/internal/config"
)

func TestAuthenticatePlainPassword(t *testing.T) {
	a := NewStaticAuthenticator(config.AdminConfig{
		Username: "wassim1",
		Password: "zed18666",
	})

	assert.True(t, a.Authenticate("wassim1", "zed18666"))
	assert.False(t, a.Authenticate("wassim1", "wrong"))
	assert.False(t, a.Authenticate("someone", "zed18666"))
	assert.False(t, a.Authenticate("", ""))
}

func TestAuthenticateHashedPasswordTakesPrecedence(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)

	a := NewStaticAuthenticator(config.AdminConfig{
		Username:     "wassim1",
		Password:     "zed18666",
		PasswordHash: string(hash),
	})

	assert.True(t, a.Authenticate("wassim1", "s3cret"))
	// The plain password no longer works once a hash is configured.
	assert.False(t, a.Authenticate("wassim1", "zed18666"))
	assert.False(t, a.Authenticate("other", "s3cret"))
}
