package users

import (
	"time"

	"github.com/google/uuid"
)

// User is a platform account as shown to the operator. Password material
// never leaves the repository layer.
type User struct {
	ID        uuid.UUID
	Email     string
	FirstName string
	LastName  string
	Role      string
	CreatedAt time.Time
}
