package account

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotFound       = errors.New("account not found")
	ErrEmailInUse     = errors.New("email already in use")
	ErrBadCredentials = errors.New("invalid email or password")
)

// Account is an authenticated principal; every obligation and payment record
// is owned by exactly one account.
type Account struct {
	ID           uuid.UUID
	Name         string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    *time.Time
}
