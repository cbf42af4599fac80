package mailer

// SendEmailRequest is the POST /api/send-email body. It exists only for
// the duration of one request; the app password is never persisted.
type SendEmailRequest struct {
	SenderEmail string   `json:"senderEmail"`
	SenderName  string   `json:"senderName"`
	AppPassword string   `json:"appPassword"`
	Recipients  []string `json:"recipients"`
	Subject     string   `json:"subject"`
	Template    string   `json:"template"`
}

// SendEmailResult is the data payload returned after a successful relay.
type SendEmailResult struct {
	MessageID      string `json:"messageId"`
	SenderName     string `json:"senderName"`
	SenderEmail    string `json:"senderEmail"`
	RecipientCount int    `json:"recipientCount"`
	SentBy         string `json:"sentBy"`
	Timestamp      string `json:"timestamp"`
}
