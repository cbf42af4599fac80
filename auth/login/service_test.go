package login

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mailblast/mailblast/auth/credentials"
	"github.com/mailblast/mailblast/auth/errors"
	"github.com/mailblast/mailblast/internal/auth/tokens"
	platformconfig "github.com/mailblast/mailblast/internal/platform/config"
)

const testSecret = "login-service-test-secret"

func newTestService() *Service {
	store := credentials.NewStore(credentials.Defaults())
	return NewService(store, &ServiceConfig{
		JWTConfig: platformconfig.JWTConfig{Secret: testSecret},
	})
}

func TestAuthenticate_AllKnownPairs(t *testing.T) {
	svc := newTestService()

	for username, password := range credentials.Defaults() {
		result, err := svc.Authenticate(username, password)
		require.NoError(t, err, "pair %s should authenticate", username)
		assert.Equal(t, username, result.Username)
		assert.Equal(t, "Bearer", result.TokenType)
		assert.Equal(t, "24h", result.ExpiresIn)
		assert.NotEmpty(t, result.Token)
	}
}

func TestAuthenticate_TokenVerifiesImmediately(t *testing.T) {
	svc := newTestService()

	result, err := svc.Authenticate("admin", "admin123")
	require.NoError(t, err)

	claims, err := tokens.Verify(result.Token, testSecret)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Username)
}

func TestAuthenticate_InvalidPairs(t *testing.T) {
	svc := newTestService()

	cases := []struct{ username, password string }{
		{"admin", "wrong"},
		{"unknown", "admin123"},
		{"", ""},
	}
	for _, tc := range cases {
		_, err := svc.Authenticate(tc.username, tc.password)
		require.ErrorIs(t, err, errors.ErrInvalidCredentials)
	}
}
