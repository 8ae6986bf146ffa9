// Package token issues and parses the HS256 bearer tokens used by the API.
// Access and refresh tokens share one format and are told apart by the
// token_type claim.
package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Type distinguishes access tokens from refresh tokens.
type Type string

const (
	Access  Type = "access"
	Refresh Type = "refresh"
)

var (
	ErrInvalid   = errors.New("token is invalid or expired")
	ErrWrongType = errors.New("token has wrong type")
)

// Claims are embedded in every issued token.
type Claims struct {
	TokenType Type `json:"token_type"`
	UserID    uint `json:"user_id"`
	jwt.RegisteredClaims
}

// Manager signs and verifies tokens with a shared secret.
type Manager struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
	now        func() time.Time
}

func NewManager(secret string, accessTTL, refreshTTL time.Duration) *Manager {
	return &Manager{
		secret:     []byte(secret),
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
		now:        time.Now,
	}
}

// Lifetime returns the configured lifetime for the token type.
func (m *Manager) Lifetime(t Type) time.Duration {
	if t == Refresh {
		return m.refreshTTL
	}
	return m.accessTTL
}

// Issue signs a new token of type t for userID.
func (m *Manager) Issue(t Type, userID uint) (string, *Claims, error) {
	now := m.now()
	claims := &Claims{
		TokenType: t,
		UserID:    userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.Lifetime(t))),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", nil, fmt.Errorf("sign %s token: %w", t, err)
	}
	return signed, claims, nil
}

// Parse validates signature and expiry. When want is non-empty the token
// must also carry that token_type.
func (m *Manager) Parse(raw string, want Type) (*Claims, error) {
	claims := &Claims{}
	tok, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return m.secret, nil
	}, jwt.WithTimeFunc(m.now), jwt.WithExpirationRequired())
	if err != nil || !tok.Valid {
		return nil, ErrInvalid
	}
	if claims.TokenType != Access && claims.TokenType != Refresh {
		return nil, ErrInvalid
	}
	if want != "" && claims.TokenType != want {
		return nil, ErrWrongType
	}
	return claims, nil
}
