package ledger

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/gestor-maestro/gestor/internal/obligation"
)

var (
	ErrObligationNotFound = errors.New("obligation not found")
	ErrPermissionDenied   = errors.New("permission denied")
	ErrNotPending         = errors.New("obligation is not pending payment")
	ErrAmountNotPositive  = errors.New("payment amount must be positive")
	ErrExceedsOutstanding = errors.New("payment exceeds outstanding balance")
	ErrInvalidDate        = errors.New("payment date is invalid")
	ErrTransactionFailed  = errors.New("payment transaction failed")
)

// settleEpsilon is the currency-rounding tolerance below which a remaining
// balance is treated as fully settled.
const settleEpsilon = 0.009

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=ledger
type Repository interface {
	Begin(ctx context.Context, obligationID uuid.UUID) (Tx, error)
}

// Tx is a single payment transaction against the store. ObligationForUpdate
// re-reads the obligation under a write lock, so no interleaved payment can
// act on a stale balance.
type Tx interface {
	ObligationForUpdate(ctx context.Context) (*obligation.Obligation, error)
	CreatePaymentRecord(ctx context.Context, rec *obligation.PaymentRecord) error
	UpdateObligation(ctx context.Context, ob *obligation.Obligation) error
	Commit() error
	Rollback() error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type ApplyParams struct {
	ObligationID  uuid.UUID
	Amount        float64
	PaymentDate   time.Time
	PaymentMethod string
	Notes         string
}

// Receipt is the outcome of a successful partial payment.
type Receipt struct {
	PaymentRecordID uuid.UUID
	RemainingAmount float64
	Settled         bool
	Obligation      *obligation.Obligation
}

// Apply registers a partial payment against a pending obligation owned by
// the caller: it creates one immutable payment record and reduces the
// obligation's outstanding amount, atomically. When the remainder falls
// within the rounding tolerance the obligation becomes settled.
//
// Retrying after ErrTransactionFailed is safe because no partial state is
// left behind. Retrying after a success registers a second payment, so
// callers must re-read the obligation before retrying an ambiguous failure.
func (s *Service) Apply(ctx context.Context, callerID uuid.UUID, params ApplyParams) (*Receipt, error) {
	if params.Amount <= 0 || math.IsNaN(params.Amount) || math.IsInf(params.Amount, 0) {
		return nil, ErrAmountNotPositive
	}

	if params.PaymentDate.IsZero() {
		return nil, ErrInvalidDate
	}

	tx, err := s.repo.Begin(ctx, params.ObligationID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTransactionFailed, err)
	}
	defer tx.Rollback()

	// Never trust a read taken before the transaction: a concurrent payment
	// may have changed the amount or status in the meantime.
	ob, err := tx.ObligationForUpdate(ctx)
	if err != nil {
		if errors.Is(err, obligation.ErrNotFound) {
			return nil, ErrObligationNotFound
		}

		return nil, fmt.Errorf("%w: %v", ErrTransactionFailed, err)
	}

	if ob.OwnerID != callerID {
		return nil, ErrPermissionDenied
	}

	if ob.Status != obligation.StatusPending {
		return nil, ErrNotPending
	}

	if params.Amount > ob.Amount {
		return nil, ErrExceedsOutstanding
	}

	remaining := ob.Amount - params.Amount
	settled := remaining <= settleEpsilon
	if settled {
		remaining = 0
	}

	notes := params.Notes
	if notes == "" {
		notes = fmt.Sprintf("Pagamento parcial de %q", ob.Title)
	}

	now := time.Now()
	rec := &obligation.PaymentRecord{
		ID:                 uuid.New(),
		OwnerID:            ob.OwnerID,
		Title:              "Pagamento - " + ob.Title,
		Amount:             params.Amount,
		Kind:               obligation.KindExpense,
		Status:             obligation.StatusPaid,
		PaymentDate:        params.PaymentDate,
		Category:           ob.Category,
		Notes:              notes,
		PaymentMethod:      params.PaymentMethod,
		SourceObligationID: ob.ID,
		CreatedAt:          now,
	}

	if err := tx.CreatePaymentRecord(ctx, rec); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTransactionFailed, err)
	}

	if ob.OriginalAmount == nil {
		prior := ob.Amount
		ob.OriginalAmount = &prior
	}

	ob.Amount = remaining
	if settled {
		ob.Status = obligation.StatusSettled
	}

	ob.UpdatedAt = &now

	if err := tx.UpdateObligation(ctx, ob); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTransactionFailed, err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTransactionFailed, err)
	}

	return &Receipt{
		PaymentRecordID: rec.ID,
		RemainingAmount: remaining,
		Settled:         settled,
		Obligation:      ob,
	}, nil
}
