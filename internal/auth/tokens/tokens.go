package tokens

import (
	"errors"
	"fmt"
	"time"

	"github.com/gofrs/uuid"
	"github.com/golang-jwt/jwt/v5"
)

// TokenTTL is the fixed validity window for issued tokens.
const TokenTTL = 24 * time.Hour

// ExpiryLabel is the human-readable expiry echoed to login callers.
const ExpiryLabel = "24h"

var (
	// ErrTokenInvalid means the token failed signature or claim checks.
	ErrTokenInvalid = errors.New("invalid token")
	// ErrTokenExpired means the token verified but its expiry has elapsed.
	ErrTokenExpired = errors.New("token expired")
)

// Claims is the signed claim set embedded in every issued token.
type Claims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// Create mints an HS256 signed token for username with a 24-hour expiry.
func Create(username, secret string) (string, error) {
	return create(username, secret, TokenTTL)
}

func create(username, secret string, ttl time.Duration) (string, error) {
	now := time.Now()
	jti, err := uuid.NewV4()
	if err != nil {
		return "", fmt.Errorf("failed to generate token id: %w", err)
	}
	claims := Claims{
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        jti.String(),
			Issuer:    "mailblast",
			Subject:   username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// Verify parses and validates a token string. It enforces the HS256
// signing method and the embedded expiry.
func Verify(tokenString, secret string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, fmt.Errorf("%w: %v", ErrTokenInvalid, err)
	}
	if !token.Valid || claims.Username == "" {
		return nil, ErrTokenInvalid
	}
	return claims, nil
}
