package payments

import (
	"time"

	"github.com/google/uuid"
)

// Payment status values.
const (
	StatusPending = "pending"
	StatusPaid    = "paid"
	StatusFailed  = "failed"
)

// PartyRef is a reduced read-only projection of a related account,
// substituted inline when a payment is listed.
type PartyRef struct {
	ID        uuid.UUID
	FirstName string
	LastName  string
	Email     string
}

// LeaseRef is a reduced projection of the lease a payment belongs to.
type LeaseRef struct {
	ID         uuid.UUID
	PropertyID uuid.UUID
}

// RentPayment is a rent transaction between a tenant and a landlord.
// Tenant, Landlord, and Lease are nil when the referenced record no
// longer exists.
type RentPayment struct {
	ID        uuid.UUID
	Amount    float64
	Status    string
	PaidAt    *time.Time
	CreatedAt time.Time
	Tenant    *PartyRef
	Landlord  *PartyRef
	Lease     *LeaseRef
}
