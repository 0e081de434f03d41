package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/rentiva/rentiva-admin/internal/shared"
)

// Tokens issues and verifies HS256 signed access tokens. The signing
// secret is process-wide configuration, set once at startup and never
// mutated afterwards.
type Tokens struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewTokens constructs a token issuer/verifier with a fixed lifetime.
func NewTokens(secret []byte, ttl time.Duration) *Tokens {
	return &Tokens{secret: secret, ttl: ttl, now: time.Now}
}

// TTL returns the configured token lifetime.
func (t *Tokens) TTL() time.Duration {
	return t.ttl
}

// Issue signs a token asserting the principal's identity. Expiry is
// issuance time plus the configured TTL; there is no refresh mechanism.
func (t *Tokens) Issue(principalID uuid.UUID) (string, error) {
	now := t.now()
	claims := jwt.MapClaims{
		"sub": principalID.String(),
		"iat": now.Unix(),
		"exp": now.Add(t.ttl).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
}

// Verify checks the signature and lifetime of a token and extracts the
// principal id from the sub claim.
func (t *Tokens) Verify(raw string) (uuid.UUID, error) {
	token, err := jwt.Parse(raw, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return t.secret, nil
	}, jwt.WithTimeFunc(t.now))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return uuid.Nil, shared.ErrTokenExpired
		}
		return uuid.Nil, fmt.Errorf("%w: %v", shared.ErrTokenInvalid, err)
	}
	if !token.Valid {
		return uuid.Nil, shared.ErrTokenInvalid
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return uuid.Nil, shared.ErrTokenInvalid
	}
	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return uuid.Nil, fmt.Errorf("%w: missing sub claim", shared.ErrTokenInvalid)
	}
	id, err := uuid.Parse(sub)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: malformed subject", shared.ErrTokenInvalid)
	}
	return id, nil
}
