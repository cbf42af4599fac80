package auth

import (
	"github.com/gofiber/fiber/v2"

	"github.com/mailblast/mailblast/auth/login"
	platformconfig "github.com/mailblast/mailblast/internal/platform/config"
)

// AuthHandlers holds all the handlers this router needs.
type AuthHandlers struct {
	LoginHandler *login.Handler
}

// RegisterRoutes is the single entry point for setting up auth routes.
// It accepts all its dependencies and creates nothing.
func RegisterRoutes(app *fiber.App, handlers *AuthHandlers, cfg *platformconfig.Config) {
	group := app.Group("/api")
	group.Post("/login", handlers.LoginHandler.Handle)
}
