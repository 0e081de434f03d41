package properties

import (
	"time"

	"github.com/google/uuid"
)

// Property status values.
const (
	StatusListed   = "listed"
	StatusRented   = "rented"
	StatusInactive = "inactive"
)

// Property is a rental listing owned by a landlord account.
type Property struct {
	ID         uuid.UUID
	Title      string
	Address    string
	Status     string
	RentAmount float64
	OwnerID    uuid.UUID
	CreatedAt  time.Time
}

// StatusCounts carries the per-status sub-counts returned alongside a
// page of properties. Missing statuses count as zero, never null.
type StatusCounts struct {
	Listed int
	Rented int
}
