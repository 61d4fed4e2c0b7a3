package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/gestor-maestro/gestor/internal/obligation"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

const selectObligationColumns = `
	id, owner_id, title, amount, original_amount, kind, status, category,
	related_fixed_cost_id, related_obligation_id, created_at, updated_at
`

func scanObligation(s scanner) (*obligation.Obligation, error) {
	var ob obligation.Obligation

	var kindStr, statusStr string

	if err := s.Scan(
		&ob.ID, &ob.OwnerID, &ob.Title, &ob.Amount, &ob.OriginalAmount,
		&kindStr, &statusStr, &ob.Category,
		&ob.RelatedFixedCostID, &ob.RelatedObligationID,
		&ob.CreatedAt, &ob.UpdatedAt,
	); err != nil {
		return nil, err
	}

	ob.Kind = obligation.Kind(kindStr)
	ob.Status = obligation.Status(statusStr)

	return &ob, nil
}

func (s *Store) CreateObligation(ctx context.Context, ob *obligation.Obligation) error {
	query := `
		INSERT INTO obligations (owner_id, title, amount, original_amount, kind, status,
			category, related_fixed_cost_id, related_obligation_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err := s.db.QueryRowContext(ctx, query,
		ob.OwnerID,
		ob.Title,
		ob.Amount,
		ob.OriginalAmount,
		ob.Kind,
		ob.Status,
		ob.Category,
		ob.RelatedFixedCostID,
		ob.RelatedObligationID,
	).Scan(&ob.ID, &ob.CreatedAt, &ob.UpdatedAt)
	if err != nil {
		return fmt.Errorf("creating obligation: %w", err)
	}

	return nil
}

func (s *Store) GetObligation(ctx context.Context, id uuid.UUID) (*obligation.Obligation, error) {
	query := `SELECT ` + selectObligationColumns + `
		FROM obligations
		WHERE id = $1 AND deleted_at IS NULL`

	ob, err := scanObligation(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, obligation.ErrNotFound
		}

		return nil, fmt.Errorf("getting obligation: %w", err)
	}

	return ob, nil
}

func (s *Store) ListObligations(ctx context.Context, filter obligation.ListFilter) ([]*obligation.Obligation, error) {
	query := `SELECT ` + selectObligationColumns + `
		FROM obligations
		WHERE owner_id = $1 AND deleted_at IS NULL`

	args := []any{filter.OwnerID}

	argIdx := 2

	if filter.Status != nil {
		query += fmt.Sprintf(" AND status = $%d", argIdx)

		args = append(args, *filter.Status)
		argIdx++
	}

	if filter.Kind != nil {
		query += fmt.Sprintf(" AND kind = $%d", argIdx)

		args = append(args, *filter.Kind)
		argIdx++
	}

	if filter.StartDate != nil {
		query += fmt.Sprintf(" AND created_at >= $%d", argIdx)

		args = append(args, *filter.StartDate)
		argIdx++
	}

	if filter.EndDate != nil {
		query += fmt.Sprintf(" AND created_at <= $%d", argIdx)

		args = append(args, *filter.EndDate)
		argIdx++
	}

	query += " ORDER BY created_at DESC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing obligations: %w", err)
	}
	defer rows.Close()

	var obs []*obligation.Obligation

	for rows.Next() {
		ob, err := scanObligation(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning obligation: %w", err)
		}

		obs = append(obs, ob)
	}

	return obs, rows.Err()
}

func (s *Store) UpdateObligation(ctx context.Context, ob *obligation.Obligation) error {
	query := `
		UPDATE obligations
		SET title = $1, category = $2, updated_at = NOW()
		WHERE id = $3 AND deleted_at IS NULL
	`

	_, err := s.db.ExecContext(ctx, query, ob.Title, ob.Category, ob.ID)
	if err != nil {
		return fmt.Errorf("updating obligation: %w", err)
	}

	return nil
}

func (s *Store) DeleteObligation(ctx context.Context, id uuid.UUID) error {
	query := `
		UPDATE obligations
		SET deleted_at = NOW()
		WHERE id = $1
	`

	_, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("deleting obligation: %w", err)
	}

	return nil
}

func (s *Store) ListPaymentRecords(ctx context.Context, filter obligation.PaymentFilter) ([]*obligation.PaymentRecord, error) {
	query := `
		SELECT id, owner_id, title, amount, kind, status, payment_date, category,
			notes, payment_method, source_obligation_id, created_at, updated_at
		FROM payment_records
		WHERE owner_id = $1`

	args := []any{filter.OwnerID}

	if filter.SourceObligationID != nil {
		query += " AND source_obligation_id = $2"

		args = append(args, *filter.SourceObligationID)
	}

	query += " ORDER BY payment_date DESC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing payment records: %w", err)
	}
	defer rows.Close()

	var recs []*obligation.PaymentRecord

	for rows.Next() {
		var rec obligation.PaymentRecord

		var kindStr, statusStr string

		if err := rows.Scan(
			&rec.ID, &rec.OwnerID, &rec.Title, &rec.Amount, &kindStr, &statusStr,
			&rec.PaymentDate, &rec.Category, &rec.Notes, &rec.PaymentMethod,
			&rec.SourceObligationID, &rec.CreatedAt, &rec.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning payment record: %w", err)
		}

		rec.Kind = obligation.Kind(kindStr)
		rec.Status = obligation.Status(statusStr)

		recs = append(recs, &rec)
	}

	return recs, rows.Err()
}
