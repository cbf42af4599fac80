package testutil

import (
	"context"
	"sync"

	platformemail "github.com/mailblast/mailblast/internal/platform/email"
)

// FakeTransport captures outbound messages in memory for tests. Error
// fields can be preset to simulate the transport failure taxonomy.
type FakeTransport struct {
	mu        sync.Mutex
	Sent      []platformemail.Message
	VerifyErr error
	SendErr   error
	MessageID string

	// Credentials the factory was last asked to bind.
	BoundUsername string
	BoundPassword string
}

func NewFakeTransport() *FakeTransport {
	return &FakeTransport{
		Sent:      make([]platformemail.Message, 0),
		MessageID: "<fake-message-id@test.local>",
	}
}

// Factory returns a platformemail.Factory that always yields this fake,
// recording the credentials it was asked to bind.
func (f *FakeTransport) Factory() platformemail.Factory {
	return func(username, password string) (platformemail.Transport, error) {
		f.mu.Lock()
		defer f.mu.Unlock()
		f.BoundUsername = username
		f.BoundPassword = password
		return f, nil
	}
}

func (f *FakeTransport) Verify(ctx context.Context) error {
	return f.VerifyErr
}

func (f *FakeTransport) Send(ctx context.Context, msg platformemail.Message) (string, error) {
	if f.SendErr != nil {
		return "", f.SendErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Sent = append(f.Sent, msg)
	return f.MessageID, nil
}

func (f *FakeTransport) LastSent() *platformemail.Message {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.Sent) == 0 {
		return nil
	}
	return &f.Sent[len(f.Sent)-1]
}

func (f *FakeTransport) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Sent = make([]platformemail.Message, 0)
	f.VerifyErr = nil
	f.SendErr = nil
	f.BoundUsername = ""
	f.BoundPassword = ""
}
