package mailer

import (
	"context"
	"fmt"
	"time"

	"github.com/mailblast/mailblast/internal/pkg/log"
	platformconfig "github.com/mailblast/mailblast/internal/platform/config"
	platformemail "github.com/mailblast/mailblast/internal/platform/email"
)

// MaxRecipients bounds a single relay request.
const MaxRecipients = 25

type Service struct {
	transports platformemail.Factory
	config     *ServiceConfig
}

type ServiceConfig struct {
	MailConfig platformconfig.MailConfig
}

// NewService creates a service with a transport factory injected.
func NewService(transports platformemail.Factory, config *ServiceConfig) *Service {
	return &Service{transports: transports, config: config}
}

// SendBulkEmail relays one message to the whole recipient batch. The
// entire list travels as blind carbon copies with no To header; each
// recipient sees only the sender. Delivery is all-or-nothing.
//
// The transport call is bounded by the configured mail timeout. Errors
// bubble up wrapped in the transport taxonomy (ErrAuthFailed,
// ErrConnectionFailed) for the handler to map onto HTTP statuses.
func (s *Service) SendBulkEmail(ctx context.Context, req *SendEmailRequest, sentBy string) (*SendEmailResult, error) {
	transport, err := s.transports(req.SenderEmail, req.AppPassword)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize mail transport: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, s.config.MailConfig.Timeout)
	defer cancel()

	if err := transport.Verify(ctx); err != nil {
		return nil, err
	}

	msg := platformemail.Message{
		From:    fmt.Sprintf("%s <%s>", req.SenderName, req.SenderEmail),
		Sender:  req.SenderEmail,
		BCC:     req.Recipients,
		Subject: req.Subject,
		HTML:    req.Template,
	}

	messageID, err := transport.Send(ctx, msg)
	if err != nil {
		return nil, err
	}

	log.InfoWithContext(ctx, "relayed message %s from %s to %d recipients",
		messageID, req.SenderEmail, len(req.Recipients))

	return &SendEmailResult{
		MessageID:      messageID,
		SenderName:     req.SenderName,
		SenderEmail:    req.SenderEmail,
		RecipientCount: len(req.Recipients),
		SentBy:         sentBy,
		Timestamp:      time.Now().UTC().Format(time.RFC3339),
	}, nil
}
