package obligation

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Kind represents the financial direction of an obligation (expense or revenue).
type Kind string

const (
	KindExpense Kind = "expense"
	KindRevenue Kind = "revenue"
)

// Status represents the lifecycle state of an obligation.
//
// Pending obligations await full or partial payment. Settled means the
// outstanding amount reached zero through partial payments. Paid means the
// obligation was fully paid in one shot; both settled and paid are terminal.
type Status string

const (
	StatusPending Status = "pending"
	StatusSettled Status = "settled"
	StatusPaid    Status = "paid"
)

var ErrNotFound = errors.New("obligation not found")

// Obligation represents a pending financial record owned by an account.
// Amount is the current outstanding value and is mutated only by payment
// operations; OriginalAmount is backfilled from Amount the first time a
// payment reduces it.
type Obligation struct {
	ID                  uuid.UUID
	OwnerID             uuid.UUID
	Title               string
	Amount              float64
	OriginalAmount      *float64
	Kind                Kind
	Status              Status
	Category            string
	RelatedFixedCostID  *uuid.UUID
	RelatedObligationID *uuid.UUID
	CreatedAt           time.Time
	UpdatedAt           *time.Time
	DeletedAt           *time.Time
}

// PaymentRecord is the immutable transaction produced each time a partial
// payment is applied against an obligation.
type PaymentRecord struct {
	ID                 uuid.UUID
	OwnerID            uuid.UUID
	Title              string
	Amount             float64
	Kind               Kind
	Status             Status
	PaymentDate        time.Time
	Category           string
	Notes              string
	PaymentMethod      string
	SourceObligationID uuid.UUID
	CreatedAt          time.Time
	UpdatedAt          *time.Time
}
