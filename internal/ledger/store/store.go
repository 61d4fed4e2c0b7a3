package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/gestor-maestro/gestor/internal/ledger"
	"github.com/gestor-maestro/gestor/internal/obligation"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) Begin(ctx context.Context, obligationID uuid.UUID) (ledger.Tx, error) {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning payment tx: %w", err)
	}

	return &paymentTx{tx: dbTx, obligationID: obligationID}, nil
}

type paymentTx struct {
	tx           *sql.Tx
	obligationID uuid.UUID
}

func (p *paymentTx) Commit() error   { return p.tx.Commit() }
func (p *paymentTx) Rollback() error { return p.tx.Rollback() }

// ObligationForUpdate reads the obligation row under FOR UPDATE, so a
// concurrent payment against the same obligation blocks until this
// transaction commits or rolls back.
func (p *paymentTx) ObligationForUpdate(ctx context.Context) (*obligation.Obligation, error) {
	query := `
		SELECT id, owner_id, title, amount, original_amount, kind, status, category,
			related_fixed_cost_id, related_obligation_id, created_at, updated_at
		FROM obligations
		WHERE id = $1 AND deleted_at IS NULL
		FOR UPDATE
	`

	var (
		ob               obligation.Obligation
		kindStr, statStr string
	)

	err := p.tx.QueryRowContext(ctx, query, p.obligationID).Scan(
		&ob.ID, &ob.OwnerID, &ob.Title, &ob.Amount, &ob.OriginalAmount,
		&kindStr, &statStr, &ob.Category,
		&ob.RelatedFixedCostID, &ob.RelatedObligationID,
		&ob.CreatedAt, &ob.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, obligation.ErrNotFound
		}

		return nil, fmt.Errorf("locking obligation: %w", err)
	}

	ob.Kind = obligation.Kind(kindStr)
	ob.Status = obligation.Status(statStr)

	return &ob, nil
}

func (p *paymentTx) CreatePaymentRecord(ctx context.Context, rec *obligation.PaymentRecord) error {
	query := `
		INSERT INTO payment_records (id, owner_id, title, amount, kind, status,
			payment_date, category, notes, payment_method, source_obligation_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, NOW(), NOW())
	`

	_, err := p.tx.ExecContext(ctx, query,
		rec.ID,
		rec.OwnerID,
		rec.Title,
		rec.Amount,
		rec.Kind,
		rec.Status,
		rec.PaymentDate,
		rec.Category,
		rec.Notes,
		rec.PaymentMethod,
		rec.SourceObligationID,
	)
	if err != nil {
		return fmt.Errorf("creating payment record: %w", err)
	}

	return nil
}

func (p *paymentTx) UpdateObligation(ctx context.Context, ob *obligation.Obligation) error {
	query := `
		UPDATE obligations
		SET amount = $1, original_amount = $2, status = $3, updated_at = NOW()
		WHERE id = $4 AND deleted_at IS NULL
	`

	_, err := p.tx.ExecContext(ctx, query,
		ob.Amount,
		ob.OriginalAmount,
		ob.Status,
		ob.ID,
	)
	if err != nil {
		return fmt.Errorf("updating obligation: %w", err)
	}

	return nil
}
