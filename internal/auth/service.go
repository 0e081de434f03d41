package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/rentiva/rentiva-admin/internal/shared"
)

// Service wraps authentication business rules.
type Service struct {
	repo   Repository
	tokens *Tokens
}

// NewService constructs a new Service.
func NewService(repo Repository, tokens *Tokens) *Service {
	return &Service{repo: repo, tokens: tokens}
}

// Authenticate validates email/password credentials for an admin
// account. Unknown identity and non-admin role return the same error so
// the two causes cannot be told apart from outside.
func (s *Service) Authenticate(ctx context.Context, email, password string) (*Principal, error) {
	principal, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.ErrNotAdmin
		}
		return nil, err
	}
	if !principal.IsAdmin() {
		return nil, shared.ErrNotAdmin
	}
	if err := bcrypt.CompareHashAndPassword([]byte(principal.PasswordHash), []byte(password)); err != nil {
		return nil, shared.ErrInvalidCredentials
	}
	return principal, nil
}

// Login authenticates and issues a signed access token.
func (s *Service) Login(ctx context.Context, email, password string) (string, *Principal, error) {
	principal, err := s.Authenticate(ctx, email, password)
	if err != nil {
		return "", nil, err
	}
	token, err := s.tokens.Issue(principal.ID)
	if err != nil {
		return "", nil, fmt.Errorf("issue token: %w", err)
	}
	return token, principal, nil
}

// Identify resolves a verified token subject back to a stored principal
// and re-checks the admin role. This runs on every protected request;
// a token never grants durable trust beyond its own claims.
func (s *Service) Identify(ctx context.Context, id uuid.UUID) (*Principal, error) {
	principal, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.ErrForbidden
		}
		return nil, err
	}
	if !principal.IsAdmin() {
		return nil, shared.ErrForbidden
	}
	return principal, nil
}
