package types

// HTTP Header Constants
const (
	HeaderAuthorization = "Authorization"
	HeaderContentType   = "Content-Type"
	HeaderRequestID     = "X-Request-ID"
)

// Authentication Constants
const (
	BearerPrefix = "Bearer "
	UserCtxName  = "username"
)

// Response is the uniform JSON envelope returned by every endpoint.
// Error carries a structured code, or raw transport detail on a 500.
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// Ok builds a success envelope.
func Ok(message string, data interface{}) Response {
	return Response{Success: true, Message: message, Data: data}
}

// Fail builds a failure envelope without detail.
func Fail(message string) Response {
	return Response{Success: false, Message: message}
}

// FailWithError builds a failure envelope carrying an error code or detail.
func FailWithError(message, errDetail string) Response {
	return Response{Success: false, Message: message, Error: errDetail}
}
