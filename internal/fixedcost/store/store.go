package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/gestor-maestro/gestor/internal/fixedcost"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

const selectFixedCostColumns = `
	id, owner_id, name, amount, category, active, created_at, updated_at
`

type scanner interface {
	Scan(dest ...any) error
}

func scanFixedCost(s scanner) (*fixedcost.FixedCost, error) {
	var fc fixedcost.FixedCost

	if err := s.Scan(
		&fc.ID, &fc.OwnerID, &fc.Name, &fc.Amount, &fc.Category,
		&fc.Active, &fc.CreatedAt, &fc.UpdatedAt,
	); err != nil {
		return nil, err
	}

	return &fc, nil
}

func (s *Store) CreateFixedCost(ctx context.Context, fc *fixedcost.FixedCost) error {
	query := `
		INSERT INTO fixed_costs (owner_id, name, amount, category, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err := s.db.QueryRowContext(ctx, query,
		fc.OwnerID,
		fc.Name,
		fc.Amount,
		fc.Category,
		fc.Active,
	).Scan(&fc.ID, &fc.CreatedAt, &fc.UpdatedAt)
	if err != nil {
		return fmt.Errorf("creating fixed cost: %w", err)
	}

	return nil
}

func (s *Store) GetFixedCost(ctx context.Context, id uuid.UUID) (*fixedcost.FixedCost, error) {
	query := `SELECT ` + selectFixedCostColumns + `
		FROM fixed_costs
		WHERE id = $1 AND deleted_at IS NULL`

	fc, err := scanFixedCost(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fixedcost.ErrNotFound
		}

		return nil, fmt.Errorf("getting fixed cost: %w", err)
	}

	return fc, nil
}

func (s *Store) ListFixedCosts(ctx context.Context, ownerID uuid.UUID) ([]*fixedcost.FixedCost, error) {
	query := `SELECT ` + selectFixedCostColumns + `
		FROM fixed_costs
		WHERE owner_id = $1 AND deleted_at IS NULL
		ORDER BY name ASC`

	return s.list(ctx, query, ownerID)
}

func (s *Store) ListActive(ctx context.Context) ([]*fixedcost.FixedCost, error) {
	query := `SELECT ` + selectFixedCostColumns + `
		FROM fixed_costs
		WHERE active AND deleted_at IS NULL
		ORDER BY created_at ASC`

	return s.list(ctx, query)
}

func (s *Store) list(ctx context.Context, query string, args ...any) ([]*fixedcost.FixedCost, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing fixed costs: %w", err)
	}
	defer rows.Close()

	var fcs []*fixedcost.FixedCost

	for rows.Next() {
		fc, err := scanFixedCost(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning fixed cost: %w", err)
		}

		fcs = append(fcs, fc)
	}

	return fcs, rows.Err()
}

func (s *Store) DeleteFixedCost(ctx context.Context, id uuid.UUID) error {
	query := `
		UPDATE fixed_costs
		SET deleted_at = NOW(), active = FALSE
		WHERE id = $1
	`

	_, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("deleting fixed cost: %w", err)
	}

	return nil
}

// HasObligationForMonth reports whether the fixed cost was already
// materialized into an obligation for the month containing the given time.
func (s *Store) HasObligationForMonth(ctx context.Context, fixedCostID uuid.UUID, month time.Time) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM obligations
			WHERE related_fixed_cost_id = $1
				AND date_trunc('month', created_at) = date_trunc('month', $2::timestamptz)
				AND deleted_at IS NULL
		)
	`

	var exists bool
	if err := s.db.QueryRowContext(ctx, query, fixedCostID, month).Scan(&exists); err != nil {
		return false, fmt.Errorf("checking materialized month: %w", err)
	}

	return exists, nil
}
