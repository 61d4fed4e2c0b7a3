package fixedcost

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/gestor-maestro/gestor/internal/obligation"
)

type capturedObligations struct {
	created []*obligation.Obligation
	err     error
}

func (c *capturedObligations) CreateObligation(_ context.Context, ob *obligation.Obligation) error {
	if c.err != nil {
		return c.err
	}

	c.created = append(c.created, ob)

	return nil
}

func TestScheduler_RunOnce(t *testing.T) {
	rent := &FixedCost{
		ID:       uuid.New(),
		OwnerID:  uuid.New(),
		Name:     "Aluguel",
		Amount:   1200,
		Category: "Custos fixos",
		Active:   true,
	}
	internet := &FixedCost{
		ID:       uuid.New(),
		OwnerID:  rent.OwnerID,
		Name:     "Internet",
		Amount:   99.9,
		Category: "Custos fixos",
		Active:   true,
	}

	t.Run("MaterializesMissingMonth", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := NewMockRepository(ctrl)
		repo.EXPECT().ListActive(gomock.Any()).Return([]*FixedCost{rent, internet}, nil)
		repo.EXPECT().HasObligationForMonth(gomock.Any(), rent.ID, gomock.Any()).Return(false, nil)
		repo.EXPECT().HasObligationForMonth(gomock.Any(), internet.ID, gomock.Any()).Return(true, nil)

		sink := &capturedObligations{}
		sched := NewScheduler(repo, sink, time.Hour)

		err := sched.runOnce(context.Background())
		require.NoError(t, err)

		require.Len(t, sink.created, 1)

		got := sink.created[0]
		assert.Equal(t, rent.OwnerID, got.OwnerID)
		assert.Equal(t, rent.Amount, got.Amount)
		assert.Equal(t, obligation.StatusPending, got.Status)
		assert.Equal(t, obligation.KindExpense, got.Kind)
		require.NotNil(t, got.RelatedFixedCostID)
		assert.Equal(t, rent.ID, *got.RelatedFixedCostID)
		assert.Contains(t, got.Title, "Aluguel - ")
		assert.Contains(t, got.Title, time.Now().Format("01/2006"))
	})

	t.Run("SecondRunIsIdempotent", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := NewMockRepository(ctrl)
		repo.EXPECT().ListActive(gomock.Any()).Return([]*FixedCost{rent}, nil)
		repo.EXPECT().HasObligationForMonth(gomock.Any(), rent.ID, gomock.Any()).Return(true, nil)

		sink := &capturedObligations{}
		sched := NewScheduler(repo, sink, time.Hour)

		err := sched.runOnce(context.Background())
		require.NoError(t, err)
		assert.Empty(t, sink.created)
	})

	t.Run("ListFailureStopsTheRun", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := NewMockRepository(ctrl)
		repo.EXPECT().ListActive(gomock.Any()).Return(nil, errors.New("connection refused"))

		sink := &capturedObligations{}
		sched := NewScheduler(repo, sink, time.Hour)

		err := sched.runOnce(context.Background())
		assert.Error(t, err)
		assert.Empty(t, sink.created)
	})
}

func TestService_Create_Validation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := NewService(NewMockRepository(ctrl))

	_, err := svc.Create(context.Background(), CreateParams{
		OwnerID: uuid.New(),
		Name:    "Aluguel",
		Amount:  0,
	})
	assert.Error(t, err)
}
