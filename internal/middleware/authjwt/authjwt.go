package authjwt

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/mailblast/mailblast/internal/auth/tokens"
	"github.com/mailblast/mailblast/internal/types"
)

// Config defines the config for the JWT middleware.
type Config struct {
	// Secret is the process-wide HMAC signing secret.
	Secret string
	// The context key to store the authenticated username.
	UserCtxName string
}

// New creates a new middleware handler guarding protected routes.
// A missing token is a 401; a present-but-invalid token is a 403.
func New(cfg Config) fiber.Handler {
	userCtxName := cfg.UserCtxName
	if userCtxName == "" {
		userCtxName = types.UserCtxName
	}

	return func(c *fiber.Ctx) error {
		var tokenString string

		authHeader := c.Get(types.HeaderAuthorization)
		if authHeader != "" {
			// Whitespace split, second token; trailing junk is left for
			// verification to reject.
			parts := strings.Fields(authHeader)
			if len(parts) >= 2 && parts[0] == "Bearer" {
				tokenString = parts[1]
			}
		}

		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(
				types.Fail("Access denied. No token provided."))
		}

		claims, err := tokens.Verify(tokenString, cfg.Secret)
		if err != nil {
			return c.Status(fiber.StatusForbidden).JSON(
				types.Fail("Invalid token."))
		}

		c.Locals(userCtxName, claims.Username)
		return c.Next()
	}
}
