package commission

import (
	"time"

	"github.com/google/uuid"
)

// KindCommissionFee is the singleton configuration kind maintained by
// this module. The kind column carries a unique constraint, so at most
// one record of it can exist.
const KindCommissionFee = "commission_fee"

// Fee is the global commission fee configuration record.
type Fee struct {
	ID        uuid.UUID
	Kind      string
	Fee       float64
	CreatedAt time.Time
	UpdatedAt time.Time
}
