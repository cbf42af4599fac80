package email

import (
	"context"
	"errors"
)

// Message represents an outbound email. Recipients travel as blind
// carbon copies only; they never appear in the message headers.
type Message struct {
	From    string // display form, e.g. "Jane Doe <jane@example.com>"
	Sender  string // envelope sender address
	BCC     []string
	Subject string
	HTML    string
}

// Transport failure taxonomy. Implementations wrap their underlying
// errors with one of these so callers can map them to HTTP outcomes.
var (
	// ErrAuthFailed means the remote relay rejected the sender credentials.
	ErrAuthFailed = errors.New("transport authentication failed")
	// ErrConnectionFailed means the relay was unreachable.
	ErrConnectionFailed = errors.New("transport connection failed")
)

// Transport abstracts the outbound mail relay for DI and testing.
// Verify confirms connectivity and credentials without sending;
// Send delivers the message and returns an opaque message identifier.
type Transport interface {
	Verify(ctx context.Context) error
	Send(ctx context.Context, msg Message) (string, error)
}

// Factory builds a Transport bound to one sender's credentials. The
// credentials live only for the duration of a single request.
type Factory func(username, password string) (Transport, error)
