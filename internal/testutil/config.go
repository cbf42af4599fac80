package testutil

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/subosito/gotenv"

	platformconfig "github.com/mailblast/mailblast/internal/platform/config"
)

// TestJWTSecret is the fixture signing secret used across tests.
const TestJWTSecret = "test-secret-do-not-use"

// TestConfig builds an isolated configuration for tests without touching
// process environment variables. An optional .env.test file is applied
// first so local overrides (e.g. a real SMTP sandbox) still work.
func TestConfig(t *testing.T) *platformconfig.Config {
	t.Helper()

	_ = gotenv.Load(".env.test")

	cfg, err := platformconfig.LoadFromMap(map[string]string{
		"PORT":         "3000",
		"JWT_SECRET":   TestJWTSecret,
		"SMTP_HOST":    "smtp.test.local",
		"SMTP_PORT":    "2525",
		"MAIL_TIMEOUT": "5s",
		"APP_ENV":      "test",
	})
	require.NoError(t, err, "test config must load")
	return cfg
}
