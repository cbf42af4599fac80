package login_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mailblast/mailblast/auth"
	"github.com/mailblast/mailblast/auth/credentials"
	"github.com/mailblast/mailblast/auth/login"
	"github.com/mailblast/mailblast/internal/auth/tokens"
	"github.com/mailblast/mailblast/internal/testutil"
)

func newLoginApp(t *testing.T) *testutil.HTTPHelper {
	cfg := testutil.TestConfig(t)
	app := fiber.New()

	store := credentials.NewStore(credentials.Defaults())
	svc := login.NewService(store, &login.ServiceConfig{JWTConfig: cfg.JWT})
	auth.RegisterRoutes(app, &auth.AuthHandlers{
		LoginHandler: login.NewHandler(svc),
	}, cfg)

	return testutil.NewHTTPHelper(t, app)
}

func TestLogin_Success(t *testing.T) {
	helper := newLoginApp(t)

	resp := helper.NewRequest(http.MethodPost, "/api/login", map[string]string{
		"username": "admin",
		"password": "admin123",
	}).Send()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	envelope, data := testutil.DecodeEnvelope(t, resp)
	assert.True(t, envelope.Success)
	assert.Equal(t, "Login successful", envelope.Message)

	var result login.LoginResult
	require.NoError(t, json.Unmarshal(data, &result))
	assert.Equal(t, "admin", result.Username)
	assert.Equal(t, "Bearer", result.TokenType)
	assert.Equal(t, "24h", result.ExpiresIn)

	claims, err := tokens.Verify(result.Token, testutil.TestJWTSecret)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Username)
}

func TestLogin_WrongPassword(t *testing.T) {
	helper := newLoginApp(t)

	resp := helper.NewRequest(http.MethodPost, "/api/login", map[string]string{
		"username": "admin",
		"password": "nope",
	}).Send()
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	envelope, _ := testutil.DecodeEnvelope(t, resp)
	assert.False(t, envelope.Success)
	assert.Equal(t, "Invalid username or password", envelope.Message)
}

func TestLogin_UnknownUser(t *testing.T) {
	helper := newLoginApp(t)

	resp := helper.NewRequest(http.MethodPost, "/api/login", map[string]string{
		"username": "nobody",
		"password": "admin123",
	}).Send()
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestLogin_EmptyFieldsFailAsBadCredentials(t *testing.T) {
	helper := newLoginApp(t)

	// Empty fields are not pre-validated; they are simply pairs that
	// match no account and fail like any other wrong credentials.
	cases := []map[string]string{
		{"username": "admin"},
		{"password": "admin123"},
		{},
	}
	for _, body := range cases {
		resp := helper.NewRequest(http.MethodPost, "/api/login", body).Send()
		require.Equal(t, http.StatusUnauthorized, resp.StatusCode)

		envelope, _ := testutil.DecodeEnvelope(t, resp)
		assert.False(t, envelope.Success)
		assert.Equal(t, "Invalid username or password", envelope.Message)
	}
}

func TestLogin_MalformedBody(t *testing.T) {
	helper := newLoginApp(t)

	resp := helper.NewRequest(http.MethodPost, "/api/login", "{oops").Send()
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	envelope, _ := testutil.DecodeEnvelope(t, resp)
	assert.Equal(t, "Invalid request body", envelope.Message)
}
