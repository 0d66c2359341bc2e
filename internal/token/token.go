// Package token issues and verifies the signed bearer tokens that stand in
// for server-side sessions. Tokens are self-contained: they carry the owning
// user id and an expiration, signed with a process-wide secret.
package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/Preetham1508/DogHTTPImages/internal/shared"
)

// Claims is the claim set embedded in every issued token.
type Claims struct {
	jwt.RegisteredClaims
	UserID string `json:"user_id"`
}

// Service signs and verifies bearer tokens.
type Service struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewService constructs a Service. The secret is fixed for the process
// lifetime; rotating it invalidates all outstanding tokens.
func NewService(secret []byte, ttl time.Duration) *Service {
	return &Service{secret: secret, ttl: ttl, now: time.Now}
}

// WithClock overrides the time source. Used by tests.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// Issue produces a signed token for userID expiring after the service TTL.
func (s *Service) Issue(userID string) (string, error) {
	issued := s.now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(issued),
			ExpiresAt: jwt.NewNumericDate(issued.Add(s.ttl)),
		},
		UserID: userID,
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("token: sign: %w", err)
	}
	return signed, nil
}

// Verify checks signature and expiration and returns the embedded user id.
// Expired and invalid tokens fail with distinct errors so callers can tell
// a stale session apart from a tampered or garbage token.
func (s *Service) Verify(tokenString string) (string, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(s.now))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", shared.ErrTokenExpired
		}
		return "", shared.ErrTokenInvalid
	}
	if !parsed.Valid || claims.UserID == "" {
		return "", shared.ErrTokenInvalid
	}
	return claims.UserID, nil
}
