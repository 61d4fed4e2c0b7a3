package fixedcost

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/gestor-maestro/gestor/internal/obligation"
)

// ObligationWriter is the slice of the obligation store the scheduler needs.
type ObligationWriter interface {
	CreateObligation(ctx context.Context, ob *obligation.Obligation) error
}

// Scheduler periodically materializes the month's pending obligations from
// active fixed costs. Materialization is idempotent per fixed cost and
// month, so overlapping runs never duplicate a charge.
type Scheduler struct {
	repo        Repository
	obligations ObligationWriter
	interval    time.Duration
}

func NewScheduler(repo Repository, obligations ObligationWriter, interval time.Duration) *Scheduler {
	return &Scheduler{
		repo:        repo,
		obligations: obligations,
		interval:    interval,
	}
}

// Start runs the scheduler until the context is cancelled. One pass runs
// immediately so a fresh deployment does not wait a full interval.
func (s *Scheduler) Start(ctx context.Context) {
	go func() {
		if err := s.runOnce(ctx); err != nil {
			slog.Error("fixed cost materialization failed", "error", err)
		}

		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if err := s.runOnce(ctx); err != nil {
					slog.Error("fixed cost materialization failed", "error", err)
				}
			}
		}
	}()
}

func (s *Scheduler) runOnce(ctx context.Context) error {
	costs, err := s.repo.ListActive(ctx)
	if err != nil {
		return fmt.Errorf("listing active fixed costs: %w", err)
	}

	month := time.Now()

	for _, fc := range costs {
		exists, err := s.repo.HasObligationForMonth(ctx, fc.ID, month)
		if err != nil {
			return fmt.Errorf("checking month for fixed cost %s: %w", fc.ID, err)
		}

		if exists {
			continue
		}

		fcID := fc.ID
		ob := &obligation.Obligation{
			OwnerID:            fc.OwnerID,
			Title:              fmt.Sprintf("%s - %s", fc.Name, month.Format("01/2006")),
			Amount:             fc.Amount,
			Kind:               obligation.KindExpense,
			Status:             obligation.StatusPending,
			Category:           fc.Category,
			RelatedFixedCostID: &fcID,
		}
		if err := s.obligations.CreateObligation(ctx, ob); err != nil {
			return fmt.Errorf("materializing fixed cost %s: %w", fc.ID, err)
		}

		slog.Info("materialized fixed cost", "fixed_cost", fc.ID, "obligation", ob.ID, "month", month.Format("01/2006"))
	}

	return nil
}
