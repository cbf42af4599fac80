package login

import (
	stderrors "errors"

	"github.com/gofiber/fiber/v2"

	"github.com/mailblast/mailblast/auth/errors"
	"github.com/mailblast/mailblast/internal/pkg/log"
	"github.com/mailblast/mailblast/internal/types"
)

type Handler struct {
	svc *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{svc: s}
}

// Handle processes POST /api/login.
func (h *Handler) Handle(c *fiber.Ctx) error {
	model := &LoginRequest{}
	if err := c.BodyParser(model); err != nil {
		return errors.HandleValidationError(c, "Invalid request body")
	}

	// No pre-validation: an empty username or password is just another
	// pair that fails the store lookup.
	result, err := h.svc.Authenticate(model.Username, model.Password)
	if err != nil {
		if stderrors.Is(err, errors.ErrInvalidCredentials) {
			return errors.HandleAuthenticationError(c, "Invalid username or password")
		}
		log.ErrorWithContext(c.UserContext(), "login failed for %s: %v", model.Username, err)
		return errors.HandleSystemError(c, "Something went wrong!", errors.CodeSystemError)
	}

	log.InfoWithContext(c.UserContext(), "user %s logged in", result.Username)
	return c.JSON(types.Ok("Login successful", result))
}
