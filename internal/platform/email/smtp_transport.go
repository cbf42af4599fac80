package email

import (
	"context"
	"crypto/tls"
	"fmt"
	"net"
	"net/smtp"
	"strings"
	"time"

	"github.com/gofrs/uuid"
)

// SMTPTransport is the production implementation of the Transport
// interface. One instance is bound to one sender's credentials.
type SMTPTransport struct {
	host     string
	port     string
	username string
	password string
}

// NewSMTPTransport creates a new SMTP transport. Host and port are required.
func NewSMTPTransport(host, port, username, password string) (*SMTPTransport, error) {
	if host == "" || port == "" {
		return nil, fmt.Errorf("SMTP host and port are required")
	}
	return &SMTPTransport{host: host, port: port, username: username, password: password}, nil
}

// NewFactory returns a Factory producing SMTP transports against the
// configured relay, bound to per-request sender credentials.
func NewFactory(host, port string) Factory {
	return func(username, password string) (Transport, error) {
		return NewSMTPTransport(host, port, username, password)
	}
}

// Verify dials the relay and authenticates without sending anything.
// A dial failure maps to ErrConnectionFailed, a rejected login to
// ErrAuthFailed.
func (t *SMTPTransport) Verify(ctx context.Context) error {
	client, err := t.dial(ctx)
	if err != nil {
		return err
	}
	return client.Quit()
}

// Send delivers the message and returns its Message-ID.
func (t *SMTPTransport) Send(ctx context.Context, msg Message) (string, error) {
	client, err := t.dial(ctx)
	if err != nil {
		return "", err
	}
	defer client.Close()

	sender := msg.Sender
	if sender == "" {
		sender = t.username
	}
	if err := client.Mail(sender); err != nil {
		return "", fmt.Errorf("MAIL FROM rejected: %w", err)
	}
	for _, rcpt := range msg.BCC {
		if err := client.Rcpt(rcpt); err != nil {
			return "", fmt.Errorf("RCPT TO %s rejected: %w", rcpt, err)
		}
	}

	messageID := newMessageID(sender)
	w, err := client.Data()
	if err != nil {
		return "", fmt.Errorf("DATA rejected: %w", err)
	}
	if _, err := w.Write(buildMessage(msg, messageID)); err != nil {
		return "", fmt.Errorf("failed to write message body: %w", err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("message not accepted: %w", err)
	}

	if err := client.Quit(); err != nil {
		return "", fmt.Errorf("failed to close session: %w", err)
	}
	return messageID, nil
}

// dial connects, upgrades to TLS when offered, and authenticates.
func (t *SMTPTransport) dial(ctx context.Context) (*smtp.Client, error) {
	addr := net.JoinHostPort(t.host, t.port)
	var d net.Dialer
	conn, err := d.DialContext(ctx, "tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConnectionFailed, err)
	}
	if deadline, ok := ctx.Deadline(); ok {
		_ = conn.SetDeadline(deadline)
	}

	client, err := smtp.NewClient(conn, t.host)
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("%w: %v", ErrConnectionFailed, err)
	}

	if ok, _ := client.Extension("STARTTLS"); ok {
		if err := client.StartTLS(&tls.Config{ServerName: t.host}); err != nil {
			client.Close()
			return nil, fmt.Errorf("%w: %v", ErrConnectionFailed, err)
		}
	}

	if t.username != "" {
		auth := smtp.PlainAuth("", t.username, t.password, t.host)
		if err := client.Auth(auth); err != nil {
			client.Close()
			return nil, fmt.Errorf("%w: %v", ErrAuthFailed, err)
		}
	}

	return client, nil
}

// buildMessage renders an RFC822 message with an HTML body. Recipients
// are blind copies and intentionally omitted from the headers.
func buildMessage(msg Message, messageID string) []byte {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("From: %s\r\n", msg.From))
	b.WriteString(fmt.Sprintf("Subject: %s\r\n", msg.Subject))
	b.WriteString(fmt.Sprintf("Message-ID: %s\r\n", messageID))
	b.WriteString(fmt.Sprintf("Date: %s\r\n", time.Now().Format(time.RFC1123Z)))
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n")
	b.WriteString("\r\n")
	b.WriteString(msg.HTML)
	return []byte(b.String())
}

func newMessageID(sender string) string {
	domain := "mailblast.local"
	if at := strings.LastIndex(sender, "@"); at >= 0 && at < len(sender)-1 {
		domain = sender[at+1:]
	}
	id, err := uuid.NewV4()
	if err != nil {
		return fmt.Sprintf("<%d@%s>", time.Now().UnixNano(), domain)
	}
	return fmt.Sprintf("<%s@%s>", id, domain)
}
