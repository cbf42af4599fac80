package mailer

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRequest() *SendEmailRequest {
	return &SendEmailRequest{
		SenderEmail: "sender@example.com",
		SenderName:  "Sender",
		AppPassword: "app-password",
		Recipients:  []string{"a@b.com", "c@d.org"},
		Subject:     "Hello",
		Template:    "<h1>Hi</h1>",
	}
}

func TestValidate_ValidRequest(t *testing.T) {
	require.Nil(t, ValidateSendEmailRequest(validRequest()))
}

func TestValidate_MissingFieldWinsOverOtherFailures(t *testing.T) {
	// subject missing AND sender malformed: the missing-field check
	// runs first and determines the single reported error.
	req := validRequest()
	req.Subject = ""
	req.SenderEmail = "not-an-email"

	verr := ValidateSendEmailRequest(req)
	require.NotNil(t, verr)
	assert.Equal(t,
		"All fields are required: senderEmail, senderName, appPassword, recipients, subject, template",
		verr.Message)
}

func TestValidate_NilRecipientsIsMissingField(t *testing.T) {
	req := validRequest()
	req.Recipients = nil

	verr := ValidateSendEmailRequest(req)
	require.NotNil(t, verr)
	assert.Contains(t, verr.Message, "All fields are required")
}

func TestValidate_SenderFormat(t *testing.T) {
	cases := []string{"not-an-email", "a b@c.com", "a@b", "a@b .com", "@b.com"}
	for _, sender := range cases {
		req := validRequest()
		req.SenderEmail = sender

		verr := ValidateSendEmailRequest(req)
		require.NotNil(t, verr, "sender %q should fail", sender)
		assert.Equal(t, "Invalid sender email format", verr.Message)
	}
}

func TestValidate_EmptyRecipients(t *testing.T) {
	req := validRequest()
	req.Recipients = []string{}

	verr := ValidateSendEmailRequest(req)
	require.NotNil(t, verr)
	assert.Equal(t, "Recipients must be a non-empty array", verr.Message)
}

func TestValidate_TooManyRecipients(t *testing.T) {
	req := validRequest()
	req.Recipients = make([]string, 26)
	for i := range req.Recipients {
		req.Recipients[i] = fmt.Sprintf("user%d@example.com", i)
	}

	verr := ValidateSendEmailRequest(req)
	require.NotNil(t, verr)
	assert.Equal(t, "Maximum 25 recipients allowed per request", verr.Message)
}

func TestValidate_ExactlyMaxRecipientsIsAllowed(t *testing.T) {
	req := validRequest()
	req.Recipients = make([]string, 25)
	for i := range req.Recipients {
		req.Recipients[i] = fmt.Sprintf("user%d@example.com", i)
	}

	require.Nil(t, ValidateSendEmailRequest(req))
}

func TestValidate_CollectsAllInvalidRecipients(t *testing.T) {
	req := validRequest()
	req.Recipients = []string{"a@b.com", "bad", "also bad", "c@d.com"}

	verr := ValidateSendEmailRequest(req)
	require.NotNil(t, verr)
	assert.Equal(t, "Invalid email format for: bad, also bad", verr.Message)
}

func TestValidate_NoNormalization(t *testing.T) {
	// validation operates on raw input: a leading space is a failure,
	// not something to trim away.
	req := validRequest()
	req.Recipients = []string{" padded@example.com"}

	verr := ValidateSendEmailRequest(req)
	require.NotNil(t, verr)
	assert.Contains(t, verr.Message, " padded@example.com")
}
