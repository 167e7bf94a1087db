// Package auth gates the admin API behind the configured password and a
// short-lived bearer token.
package auth

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const subjectAdmin = "admin"

var (
	// ErrInvalidCredentials is returned for a wrong password.
	ErrInvalidCredentials = errors.New("auth: invalid credentials")
	// ErrInvalidToken is returned for a missing, malformed, forged or
	// expired token.
	ErrInvalidToken = errors.New("auth: invalid token")
)

// Service issues and verifies admin tokens.
type Service struct {
	password []byte
	secret   []byte
	ttl      time.Duration
	now      func() time.Time
}

// Option configures the auth service.
type Option func(*Service)

func WithClock(clock func() time.Time) Option {
	return func(s *Service) {
		if clock != nil {
			s.now = clock
		}
	}
}

// NewService wires the configured admin password, signing secret and token
// lifetime.
func NewService(password, secret string, ttl time.Duration, opts ...Option) *Service {
	s := &Service{
		password: []byte(password),
		secret:   []byte(secret),
		ttl:      ttl,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Login checks the password in constant time and returns a signed HS256
// token valid for the configured TTL.
func (s *Service) Login(password string) (string, error) {
	if subtle.ConstantTimeCompare([]byte(password), s.password) != 1 {
		return "", ErrInvalidCredentials
	}

	now := s.now()
	claims := jwt.RegisteredClaims{
		Subject:   subjectAdmin,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("auth: sign token: %w", err)
	}
	return signed, nil
}

// Verify checks the signature, expiry and subject of a bearer token.
func (s *Service) Verify(raw string) error {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil || !token.Valid {
		return ErrInvalidToken
	}
	if claims.Subject != subjectAdmin {
		return ErrInvalidToken
	}
	return nil
}
