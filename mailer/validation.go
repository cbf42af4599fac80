package mailer

import (
	"fmt"
	"regexp"
	"strings"
)

// Basic address shape: local@domain.tld with no whitespace and at least
// one dot in the domain. Validation runs on raw input, no normalization.
var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidationError describes the first violated rule of a send request.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// ValidateSendEmailRequest checks a send request in a fixed order; the
// first failing check determines the single reported error.
func ValidateSendEmailRequest(req *SendEmailRequest) *ValidationError {
	if req == nil {
		return &ValidationError{Message: "Request body is required"}
	}

	if req.SenderEmail == "" || req.SenderName == "" || req.AppPassword == "" ||
		req.Recipients == nil || req.Subject == "" || req.Template == "" {
		return &ValidationError{
			Message: "All fields are required: senderEmail, senderName, appPassword, recipients, subject, template",
		}
	}

	if !emailRegex.MatchString(req.SenderEmail) {
		return &ValidationError{Message: "Invalid sender email format"}
	}

	if len(req.Recipients) == 0 {
		return &ValidationError{Message: "Recipients must be a non-empty array"}
	}

	if len(req.Recipients) > MaxRecipients {
		return &ValidationError{
			Message: fmt.Sprintf("Maximum %d recipients allowed per request", MaxRecipients),
		}
	}

	var invalid []string
	for _, recipient := range req.Recipients {
		if !emailRegex.MatchString(recipient) {
			invalid = append(invalid, recipient)
		}
	}
	if len(invalid) > 0 {
		return &ValidationError{
			Message: fmt.Sprintf("Invalid email format for: %s", strings.Join(invalid, ", ")),
		}
	}

	return nil
}
