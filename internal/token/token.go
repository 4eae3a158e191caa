package token

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"net/http"
	"strings"
)

// tokenBytes is the number of random bytes per token (64 hex characters).
const tokenBytes = 32

// Service generates opaque bearer tokens and extracts them from requests.
// Tokens carry no claims; they are random identifiers resolved against
// the auth token store.
type Service struct{}

// New creates a new token Service.
func New() *Service {
	return &Service{}
}

// Generate returns a new opaque token: hex-encoded random bytes.
func (s *Service) Generate(ctx context.Context) (string, error) {
	buf := make([]byte, tokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}

// GetTokenFromRequest extracts the token string from the Authorization header.
func (s *Service) GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", errors.New("authorization header missing")
	}

	parts := strings.Fields(authHeader)
	if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
		return "", errors.New("invalid authorization header format")
	}

	return parts[1], nil
}
