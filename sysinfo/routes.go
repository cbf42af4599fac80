package sysinfo

import (
	"github.com/gofiber/fiber/v2"

	platformconfig "github.com/mailblast/mailblast/internal/platform/config"
)

// SysinfoHandlers holds all the handlers this router needs.
type SysinfoHandlers struct {
	InfoHandler *Handler
}

// RegisterRoutes wires the unauthenticated read-only endpoints.
func RegisterRoutes(app *fiber.App, handlers *SysinfoHandlers, cfg *platformconfig.Config) {
	group := app.Group("/api")
	group.Get("/health", handlers.InfoHandler.Health)
	group.Get("/server-info", handlers.InfoHandler.ServerInfo)
}
