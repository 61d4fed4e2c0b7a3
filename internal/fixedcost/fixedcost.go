package fixedcost

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("fixed cost not found")

// FixedCost is a recurring monthly cost (rent, payroll, subscriptions) that
// materializes into one pending expense obligation per month.
type FixedCost struct {
	ID        uuid.UUID
	OwnerID   uuid.UUID
	Name      string
	Amount    float64
	Category  string
	Active    bool
	CreatedAt time.Time
	UpdatedAt *time.Time
	DeletedAt *time.Time
}
