package auth

import (
	"time"

	"github.com/google/uuid"
)

// RoleAdmin is the only role allowed to use this service.
const RoleAdmin = "Admin"

// Principal represents a stored account with an associated role.
// Accounts are created elsewhere; this service only reads them.
type Principal struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	FirstName    string
	LastName     string
	Role         string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsAdmin reports whether the principal carries the admin role.
func (p *Principal) IsAdmin() bool {
	return p != nil && p.Role == RoleAdmin
}
