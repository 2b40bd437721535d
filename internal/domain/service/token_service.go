package service

import (
	"errors"
	"time"
)

// Standard claim names carried by access tokens.
const (
	ClaimSubject = "sub"
	ClaimRole    = "role"
	ClaimExpiry  = "exp"
)

// ErrInvalidToken is returned when a token has a bad signature, malformed claims or has expired.
var ErrInvalidToken = errors.New("invalid token")

// TokenService signs and verifies bearer tokens.
type TokenService interface {
	// IssueToken signs claims plus an expiry of now+ttl. A non-positive ttl uses AccessTokenTTL.
	IssueToken(claims map[string]any, ttl time.Duration) (string, error)

	// DecodeToken verifies the token and returns its claims, or ErrInvalidToken.
	DecodeToken(token string) (map[string]any, error)

	// AccessTokenTTL returns the configured lifetime of access tokens.
	AccessTokenTTL() time.Duration
}
