package errors

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/mailblast/mailblast/internal/types"
)

// Error codes surfaced in the response envelope's error field.
const (
	CodeValidationFailed     = "VALIDATION_FAILED"
	CodeAuthenticationFailed = "AUTHENTICATION_FAILED"
	CodeTokenInvalid         = "TOKEN_INVALID"
	CodeTransportAuthFailed  = "TRANSPORT_AUTH_FAILED"
	CodeTransportUnreachable = "TRANSPORT_UNREACHABLE"
	CodeSystemError          = "SYSTEM_ERROR"
)

// Sentinel errors for service-layer results.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrSystemError        = errors.New("system error occurred")
)

// HandleValidationError handles validation errors with 400 Bad Request
func HandleValidationError(c *fiber.Ctx, message string) error {
	return c.Status(http.StatusBadRequest).JSON(
		types.FailWithError(message, CodeValidationFailed))
}

// HandleAuthenticationError handles authentication errors with 401 Unauthorized
func HandleAuthenticationError(c *fiber.Ctx, message string) error {
	return c.Status(http.StatusUnauthorized).JSON(
		types.FailWithError(message, CodeAuthenticationFailed))
}

// HandleTransportAuthError handles remote relay credential rejections with 401
func HandleTransportAuthError(c *fiber.Ctx, message string) error {
	return c.Status(http.StatusUnauthorized).JSON(
		types.FailWithError(message, CodeTransportAuthFailed))
}

// HandleTransportConnectionError handles unreachable relay errors with 503
func HandleTransportConnectionError(c *fiber.Ctx, message string) error {
	return c.Status(http.StatusServiceUnavailable).JSON(
		types.FailWithError(message, CodeTransportUnreachable))
}

// HandleSystemError handles system errors with 500 Internal Server Error.
// The detail string is returned to the caller verbatim; callers decide
// what is safe to expose.
func HandleSystemError(c *fiber.Ctx, message, detail string) error {
	return c.Status(http.StatusInternalServerError).JSON(
		types.FailWithError(message, detail))
}
