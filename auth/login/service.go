package login

import (
	"github.com/mailblast/mailblast/auth/credentials"
	"github.com/mailblast/mailblast/auth/errors"
	"github.com/mailblast/mailblast/internal/auth/tokens"
	platformconfig "github.com/mailblast/mailblast/internal/platform/config"
)

type Service struct {
	store  *credentials.Store
	config *ServiceConfig
}

type ServiceConfig struct {
	JWTConfig platformconfig.JWTConfig
}

// NewService creates a service with the credential store injected
func NewService(store *credentials.Store, config *ServiceConfig) *Service {
	return &Service{store: store, config: config}
}

// Authenticate checks the pair against the static credential set and
// mints a signed 24-hour token on success. Failure never reveals which
// field was wrong.
func (s *Service) Authenticate(username, password string) (*LoginResult, error) {
	if !s.store.Authenticate(username, password) {
		return nil, errors.ErrInvalidCredentials
	}

	token, err := tokens.Create(username, s.config.JWTConfig.Secret)
	if err != nil {
		return nil, errors.ErrSystemError
	}

	return &LoginResult{
		Token:     token,
		Username:  username,
		ExpiresIn: tokens.ExpiryLabel,
		TokenType: "Bearer",
	}, nil
}
