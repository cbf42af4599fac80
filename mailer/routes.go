package mailer

import (
	"github.com/gofiber/fiber/v2"

	authjwt "github.com/mailblast/mailblast/internal/middleware/authjwt"
	platformconfig "github.com/mailblast/mailblast/internal/platform/config"
	"github.com/mailblast/mailblast/internal/types"
)

// MailerHandlers holds all the handlers this router needs.
type MailerHandlers struct {
	SendHandler *Handler
}

// RegisterRoutes wires the send endpoint behind the JWT gate.
func RegisterRoutes(app *fiber.App, handlers *MailerHandlers, cfg *platformconfig.Config) {
	group := app.Group("/api")
	group.Post("/send-email",
		authjwt.New(authjwt.Config{
			Secret:      cfg.JWT.Secret,
			UserCtxName: types.UserCtxName,
		}),
		handlers.SendHandler.Handle,
	)
}
