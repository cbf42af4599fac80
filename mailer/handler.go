package mailer

import (
	stderrors "errors"

	"github.com/gofiber/fiber/v2"

	"github.com/mailblast/mailblast/auth/errors"
	"github.com/mailblast/mailblast/internal/pkg/log"
	platformemail "github.com/mailblast/mailblast/internal/platform/email"
	"github.com/mailblast/mailblast/internal/types"
)

type Handler struct {
	svc *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{svc: s}
}

// Handle processes POST /api/send-email. The authjwt middleware has
// already placed the authenticated username in Locals.
func (h *Handler) Handle(c *fiber.Ctx) error {
	model := &SendEmailRequest{}
	if err := c.BodyParser(model); err != nil {
		return errors.HandleValidationError(c, "Invalid request body")
	}

	if verr := ValidateSendEmailRequest(model); verr != nil {
		return errors.HandleValidationError(c, verr.Message)
	}

	sentBy, _ := c.Locals(types.UserCtxName).(string)

	result, err := h.svc.SendBulkEmail(c.UserContext(), model, sentBy)
	if err != nil {
		switch {
		case stderrors.Is(err, platformemail.ErrAuthFailed):
			log.WarnWithContext(c.UserContext(), "relay rejected credentials for %s", model.SenderEmail)
			return errors.HandleTransportAuthError(c,
				"Authentication failed. Please check your email and app password.")
		case stderrors.Is(err, platformemail.ErrConnectionFailed):
			log.ErrorWithContext(c.UserContext(), "relay unreachable: %v", err)
			return errors.HandleTransportConnectionError(c,
				"Connection failed. Please try again later.")
		default:
			log.ErrorWithContext(c.UserContext(), "send failed: %v", err)
			return errors.HandleSystemError(c, "Failed to send email", err.Error())
		}
	}

	return c.JSON(types.Ok("Email sent successfully", result))
}
