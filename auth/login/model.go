package login

// LoginRequest is the POST /api/login body.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResult is the data payload returned on successful login.
type LoginResult struct {
	Token     string `json:"token"`
	Username  string `json:"username"`
	ExpiresIn string `json:"expiresIn"`
	TokenType string `json:"tokenType"`
}
