package sysinfo

import (
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

// Health processes GET /api/health.
func (h *Handler) Health(c *fiber.Ctx) error {
	return c.JSON(types.Ok("Server is running", h.svc.Health()))
}

// ServerInfo processes GET /api/server-info.
func (h *Handler) ServerInfo(c *fiber.Ctx) error {
	info, err := h.svc.GetServerInfo()
	if err != nil {
		log.ErrorWithContext(c.UserContext(), "server info lookup failed: %v", err)
		return errors.HandleSystemError(c, "Failed to retrieve server information", errors.CodeSystemError)
	}
	return c.JSON(types.Ok("Server information retrieved", info))
}
