// Package token issues and verifies the access/refresh JWT pair.
//
// Access and refresh tokens carry the same identity claims but are signed
// with independent secrets and expire after AccessTokenTTL and
// RefreshTokenTTL. Nothing is stored server-side: a token stays valid until
// it expires.
package token

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/healthguide/healthguide-api/internal/domain/user"
)

const (
	AccessTokenTTL  = 15 * time.Minute
	RefreshTokenTTL = 7 * 24 * time.Hour
)

const (
	typeAccess  = "access"
	typeRefresh = "refresh"
)

var (
	ErrSecretsNotConfigured = errors.New("JWT secrets are not configured")
	ErrInvalidToken         = errors.New("invalid token")
)

// Identity is the authenticated principal carried in both tokens.
type Identity struct {
	ID    uint
	Email string
	Name  string
	Role  user.Role
}

type Pair struct {
	AccessToken  string
	RefreshToken string
}

type Claims struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role,omitempty"`
	Type  string `json:"type,omitempty"`
	jwt.RegisteredClaims
}

type Manager struct {
	accessSecret  []byte
	refreshSecret []byte
	now           func() time.Time
}

func NewManager(accessSecret, refreshSecret string) *Manager {
	return &Manager{
		accessSecret:  []byte(accessSecret),
		refreshSecret: []byte(refreshSecret),
		now:           time.Now,
	}
}

// WithClock returns a copy of m that reads the current time from now.
func (m *Manager) WithClock(now func() time.Time) *Manager {
	cp := *m
	cp.now = now
	return &cp
}

// Configured reports whether both signing secrets are present.
func (m *Manager) Configured() bool {
	return len(m.accessSecret) > 0 && len(m.refreshSecret) > 0
}

// Issue mints a fresh access/refresh pair for id. Every call yields distinct
// tokens, even within the same second.
func (m *Manager) Issue(id Identity) (Pair, error) {
	if !m.Configured() {
		return Pair{}, ErrSecretsNotConfigured
	}

	now := m.now()

	access, err := m.sign(id, typeAccess, now, AccessTokenTTL, m.accessSecret)
	if err != nil {
		return Pair{}, fmt.Errorf("sign access token: %w", err)
	}

	refresh, err := m.sign(id, typeRefresh, now, RefreshTokenTTL, m.refreshSecret)
	if err != nil {
		return Pair{}, fmt.Errorf("sign refresh token: %w", err)
	}

	return Pair{AccessToken: access, RefreshToken: refresh}, nil
}

func (m *Manager) VerifyAccess(raw string) (Identity, error) {
	if len(m.accessSecret) == 0 {
		return Identity{}, ErrSecretsNotConfigured
	}
	return m.verify(raw, typeAccess, m.accessSecret)
}

func (m *Manager) VerifyRefresh(raw string) (Identity, error) {
	if len(m.refreshSecret) == 0 {
		return Identity{}, ErrSecretsNotConfigured
	}
	return m.verify(raw, typeRefresh, m.refreshSecret)
}

func (m *Manager) sign(
	id Identity,
	typ string,
	now time.Time,
	ttl time.Duration,
	secret []byte,
) (string, error) {
	claims := Claims{
		Email: id.Email,
		Name:  id.Name,
		Role:  string(id.Role),
		Type:  typ,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   strconv.FormatUint(uint64(id.ID), 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
}

func (m *Manager) verify(raw, typ string, secret []byte) (Identity, error) {
	var claims Claims

	tok, err := jwt.ParseWithClaims(
		raw,
		&claims,
		func(t *jwt.Token) (interface{}, error) {
			return secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil || !tok.Valid {
		return Identity{}, ErrInvalidToken
	}

	// Older tokens have no type claim; only a mismatched one is rejected.
	if claims.Type != "" && claims.Type != typ {
		return Identity{}, ErrInvalidToken
	}

	id, err := strconv.ParseUint(claims.Subject, 10, 64)
	if err != nil || id == 0 {
		return Identity{}, ErrInvalidToken
	}

	return Identity{
		ID:    uint(id),
		Email: claims.Email,
		Name:  claims.Name,
		Role:  user.RoleFromClaim(claims.Role),
	}, nil
}
