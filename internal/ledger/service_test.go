package ledger_test

import (
	"context"
	"errors"
	"math"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/gestor-maestro/gestor/internal/ledger"
	"github.com/gestor-maestro/gestor/internal/obligation"
)

var (
	ownerID = uuid.New()
	otherID = uuid.New()
	obID    = uuid.New()
	payDate = time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
)

func pendingObligation(amount float64) *obligation.Obligation {
	return &obligation.Obligation{
		ID:        obID,
		OwnerID:   ownerID,
		Title:     "Aluguel - 03/2025",
		Amount:    amount,
		Kind:      obligation.KindExpense,
		Status:    obligation.StatusPending,
		Category:  "Custos fixos",
		CreatedAt: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestService_Apply(t *testing.T) {
	type args struct {
		callerID uuid.UUID
		params   ledger.ApplyParams
	}

	type testCase struct {
		name      string
		args      args
		setupMock func(repo *ledger.MockRepository, tx *ledger.MockTx)
		check     func(t *testing.T, got *ledger.Receipt)
		wantErr   error
	}

	expectTx := func(repo *ledger.MockRepository, tx *ledger.MockTx) {
		repo.EXPECT().Begin(gomock.Any(), obID).Return(tx, nil)
		tx.EXPECT().Rollback().Return(nil).AnyTimes()
	}

	tests := []testCase{
		{
			name: "PartialPaymentKeepsPending",
			args: args{
				callerID: ownerID,
				params:   ledger.ApplyParams{ObligationID: obID, Amount: 400, PaymentDate: payDate},
			},
			setupMock: func(repo *ledger.MockRepository, tx *ledger.MockTx) {
				expectTx(repo, tx)
				tx.EXPECT().ObligationForUpdate(gomock.Any()).Return(pendingObligation(1200), nil)
				tx.EXPECT().
					CreatePaymentRecord(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, rec *obligation.PaymentRecord) error {
						assert.Equal(t, 400.0, rec.Amount)
						assert.Equal(t, ownerID, rec.OwnerID)
						assert.Equal(t, obID, rec.SourceObligationID)
						assert.Equal(t, obligation.KindExpense, rec.Kind)
						assert.Equal(t, obligation.StatusPaid, rec.Status)
						assert.Equal(t, payDate, rec.PaymentDate)
						assert.Equal(t, "Custos fixos", rec.Category)
						assert.Equal(t, "Pagamento - Aluguel - 03/2025", rec.Title)
						assert.NotEmpty(t, rec.Notes)
						return nil
					})
				tx.EXPECT().
					UpdateObligation(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, ob *obligation.Obligation) error {
						assert.InDelta(t, 800, ob.Amount, 0.01)
						assert.Equal(t, obligation.StatusPending, ob.Status)
						require.NotNil(t, ob.OriginalAmount)
						assert.InDelta(t, 1200, *ob.OriginalAmount, 0.01)
						assert.NotNil(t, ob.UpdatedAt)
						return nil
					})
				tx.EXPECT().Commit().Return(nil)
			},
			check: func(t *testing.T, got *ledger.Receipt) {
				assert.InDelta(t, 800, got.RemainingAmount, 0.01)
				assert.False(t, got.Settled)
				assert.NotEqual(t, uuid.Nil, got.PaymentRecordID)
			},
		},
		{
			name: "FullPaymentSettles",
			args: args{
				callerID: ownerID,
				params:   ledger.ApplyParams{ObligationID: obID, Amount: 1200, PaymentDate: payDate},
			},
			setupMock: func(repo *ledger.MockRepository, tx *ledger.MockTx) {
				expectTx(repo, tx)
				tx.EXPECT().ObligationForUpdate(gomock.Any()).Return(pendingObligation(1200), nil)
				tx.EXPECT().CreatePaymentRecord(gomock.Any(), gomock.Any()).Return(nil)
				tx.EXPECT().
					UpdateObligation(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, ob *obligation.Obligation) error {
						assert.Zero(t, ob.Amount)
						assert.Equal(t, obligation.StatusSettled, ob.Status)
						return nil
					})
				tx.EXPECT().Commit().Return(nil)
			},
			check: func(t *testing.T, got *ledger.Receipt) {
				assert.Zero(t, got.RemainingAmount)
				assert.True(t, got.Settled)
			},
		},
		{
			name: "RemainderWithinEpsilonSettles",
			args: args{
				callerID: ownerID,
				params:   ledger.ApplyParams{ObligationID: obID, Amount: 100, PaymentDate: payDate},
			},
			setupMock: func(repo *ledger.MockRepository, tx *ledger.MockTx) {
				expectTx(repo, tx)
				tx.EXPECT().ObligationForUpdate(gomock.Any()).Return(pendingObligation(100.008), nil)
				tx.EXPECT().CreatePaymentRecord(gomock.Any(), gomock.Any()).Return(nil)
				tx.EXPECT().
					UpdateObligation(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, ob *obligation.Obligation) error {
						assert.Zero(t, ob.Amount)
						assert.Equal(t, obligation.StatusSettled, ob.Status)
						return nil
					})
				tx.EXPECT().Commit().Return(nil)
			},
			check: func(t *testing.T, got *ledger.Receipt) {
				assert.Zero(t, got.RemainingAmount)
				assert.True(t, got.Settled)
			},
		},
		{
			name: "RemainderAboveEpsilonStaysPending",
			args: args{
				callerID: ownerID,
				params:   ledger.ApplyParams{ObligationID: obID, Amount: 100, PaymentDate: payDate},
			},
			setupMock: func(repo *ledger.MockRepository, tx *ledger.MockTx) {
				expectTx(repo, tx)
				tx.EXPECT().ObligationForUpdate(gomock.Any()).Return(pendingObligation(100.02), nil)
				tx.EXPECT().CreatePaymentRecord(gomock.Any(), gomock.Any()).Return(nil)
				tx.EXPECT().
					UpdateObligation(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, ob *obligation.Obligation) error {
						assert.Equal(t, obligation.StatusPending, ob.Status)
						return nil
					})
				tx.EXPECT().Commit().Return(nil)
			},
			check: func(t *testing.T, got *ledger.Receipt) {
				assert.InDelta(t, 0.02, got.RemainingAmount, 0.001)
				assert.False(t, got.Settled)
			},
		},
		{
			name: "OriginalAmountNotOverwritten",
			args: args{
				callerID: ownerID,
				params:   ledger.ApplyParams{ObligationID: obID, Amount: 300, PaymentDate: payDate},
			},
			setupMock: func(repo *ledger.MockRepository, tx *ledger.MockTx) {
				expectTx(repo, tx)

				ob := pendingObligation(800)
				original := 2000.0
				ob.OriginalAmount = &original

				tx.EXPECT().ObligationForUpdate(gomock.Any()).Return(ob, nil)
				tx.EXPECT().CreatePaymentRecord(gomock.Any(), gomock.Any()).Return(nil)
				tx.EXPECT().
					UpdateObligation(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, ob *obligation.Obligation) error {
						require.NotNil(t, ob.OriginalAmount)
						assert.InDelta(t, 2000, *ob.OriginalAmount, 0.01)
						return nil
					})
				tx.EXPECT().Commit().Return(nil)
			},
			check: func(t *testing.T, got *ledger.Receipt) {
				assert.InDelta(t, 500, got.RemainingAmount, 0.01)
			},
		},
		{
			name: "CallerNotesKept",
			args: args{
				callerID: ownerID,
				params: ledger.ApplyParams{
					ObligationID:  obID,
					Amount:        50,
					PaymentDate:   payDate,
					PaymentMethod: "pix",
					Notes:         "primeira parcela",
				},
			},
			setupMock: func(repo *ledger.MockRepository, tx *ledger.MockTx) {
				expectTx(repo, tx)
				tx.EXPECT().ObligationForUpdate(gomock.Any()).Return(pendingObligation(500), nil)
				tx.EXPECT().
					CreatePaymentRecord(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, rec *obligation.PaymentRecord) error {
						assert.Equal(t, "primeira parcela", rec.Notes)
						assert.Equal(t, "pix", rec.PaymentMethod)
						return nil
					})
				tx.EXPECT().UpdateObligation(gomock.Any(), gomock.Any()).Return(nil)
				tx.EXPECT().Commit().Return(nil)
			},
		},
		{
			name: "ExceedsOutstanding",
			args: args{
				callerID: ownerID,
				params:   ledger.ApplyParams{ObligationID: obID, Amount: 501, PaymentDate: payDate},
			},
			setupMock: func(repo *ledger.MockRepository, tx *ledger.MockTx) {
				expectTx(repo, tx)
				tx.EXPECT().ObligationForUpdate(gomock.Any()).Return(pendingObligation(500), nil)
			},
			wantErr: ledger.ErrExceedsOutstanding,
		},
		{
			name: "AlreadySettled",
			args: args{
				callerID: ownerID,
				params:   ledger.ApplyParams{ObligationID: obID, Amount: 10, PaymentDate: payDate},
			},
			setupMock: func(repo *ledger.MockRepository, tx *ledger.MockTx) {
				expectTx(repo, tx)

				ob := pendingObligation(300)
				ob.Status = obligation.StatusSettled

				tx.EXPECT().ObligationForUpdate(gomock.Any()).Return(ob, nil)
			},
			wantErr: ledger.ErrNotPending,
		},
		{
			name: "AlreadyPaid",
			args: args{
				callerID: ownerID,
				params:   ledger.ApplyParams{ObligationID: obID, Amount: 10, PaymentDate: payDate},
			},
			setupMock: func(repo *ledger.MockRepository, tx *ledger.MockTx) {
				expectTx(repo, tx)

				ob := pendingObligation(300)
				ob.Status = obligation.StatusPaid

				tx.EXPECT().ObligationForUpdate(gomock.Any()).Return(ob, nil)
			},
			wantErr: ledger.ErrNotPending,
		},
		{
			name: "NotOwner",
			args: args{
				callerID: otherID,
				params:   ledger.ApplyParams{ObligationID: obID, Amount: 10, PaymentDate: payDate},
			},
			setupMock: func(repo *ledger.MockRepository, tx *ledger.MockTx) {
				expectTx(repo, tx)
				tx.EXPECT().ObligationForUpdate(gomock.Any()).Return(pendingObligation(300), nil)
			},
			wantErr: ledger.ErrPermissionDenied,
		},
		{
			name: "NotFound",
			args: args{
				callerID: ownerID,
				params:   ledger.ApplyParams{ObligationID: obID, Amount: 10, PaymentDate: payDate},
			},
			setupMock: func(repo *ledger.MockRepository, tx *ledger.MockTx) {
				expectTx(repo, tx)
				tx.EXPECT().ObligationForUpdate(gomock.Any()).Return(nil, obligation.ErrNotFound)
			},
			wantErr: ledger.ErrObligationNotFound,
		},
		{
			name: "ZeroAmount",
			args: args{
				callerID: ownerID,
				params:   ledger.ApplyParams{ObligationID: obID, Amount: 0, PaymentDate: payDate},
			},
			wantErr: ledger.ErrAmountNotPositive,
		},
		{
			name: "NegativeAmount",
			args: args{
				callerID: ownerID,
				params:   ledger.ApplyParams{ObligationID: obID, Amount: -20, PaymentDate: payDate},
			},
			wantErr: ledger.ErrAmountNotPositive,
		},
		{
			name: "NaNAmount",
			args: args{
				callerID: ownerID,
				params:   ledger.ApplyParams{ObligationID: obID, Amount: math.NaN(), PaymentDate: payDate},
			},
			wantErr: ledger.ErrAmountNotPositive,
		},
		{
			name: "InfiniteAmount",
			args: args{
				callerID: ownerID,
				params:   ledger.ApplyParams{ObligationID: obID, Amount: math.Inf(1), PaymentDate: payDate},
			},
			wantErr: ledger.ErrAmountNotPositive,
		},
		{
			name: "ZeroDate",
			args: args{
				callerID: ownerID,
				params:   ledger.ApplyParams{ObligationID: obID, Amount: 10},
			},
			wantErr: ledger.ErrInvalidDate,
		},
		{
			name: "BeginFails",
			args: args{
				callerID: ownerID,
				params:   ledger.ApplyParams{ObligationID: obID, Amount: 10, PaymentDate: payDate},
			},
			setupMock: func(repo *ledger.MockRepository, tx *ledger.MockTx) {
				repo.EXPECT().Begin(gomock.Any(), obID).Return(nil, errors.New("connection refused"))
			},
			wantErr: ledger.ErrTransactionFailed,
		},
		{
			name: "CommitFails",
			args: args{
				callerID: ownerID,
				params:   ledger.ApplyParams{ObligationID: obID, Amount: 10, PaymentDate: payDate},
			},
			setupMock: func(repo *ledger.MockRepository, tx *ledger.MockTx) {
				expectTx(repo, tx)
				tx.EXPECT().ObligationForUpdate(gomock.Any()).Return(pendingObligation(300), nil)
				tx.EXPECT().CreatePaymentRecord(gomock.Any(), gomock.Any()).Return(nil)
				tx.EXPECT().UpdateObligation(gomock.Any(), gomock.Any()).Return(nil)
				tx.EXPECT().Commit().Return(errors.New("serialization failure"))
			},
			wantErr: ledger.ErrTransactionFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := ledger.NewMockRepository(ctrl)
			tx := ledger.NewMockTx(ctrl)

			if tt.setupMock != nil {
				tt.setupMock(repo, tx)
			}

			svc := ledger.NewService(repo)
			got, err := svc.Apply(context.Background(), tt.args.callerID, tt.args.params)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)

				return
			}

			require.NoError(t, err)
			require.NotNil(t, got)

			if tt.check != nil {
				tt.check(t, got)
			}
		})
	}
}

// memoryLedger emulates the store's row lock: Begin takes the mutex, Commit
// or Rollback releases it, and writes only become visible on Commit.
type memoryLedger struct {
	mu      sync.Mutex
	ob      obligation.Obligation
	records []obligation.PaymentRecord
}

func (m *memoryLedger) Begin(_ context.Context, _ uuid.UUID) (ledger.Tx, error) {
	m.mu.Lock()
	return &memoryTx{ledger: m}, nil
}

type memoryTx struct {
	ledger    *memoryLedger
	done      bool
	stagedOb  *obligation.Obligation
	stagedRec *obligation.PaymentRecord
}

func (tx *memoryTx) ObligationForUpdate(_ context.Context) (*obligation.Obligation, error) {
	ob := tx.ledger.ob
	return &ob, nil
}

func (tx *memoryTx) CreatePaymentRecord(_ context.Context, rec *obligation.PaymentRecord) error {
	cp := *rec
	tx.stagedRec = &cp

	return nil
}

func (tx *memoryTx) UpdateObligation(_ context.Context, ob *obligation.Obligation) error {
	cp := *ob
	tx.stagedOb = &cp

	return nil
}

func (tx *memoryTx) Commit() error {
	if tx.stagedRec != nil {
		tx.ledger.records = append(tx.ledger.records, *tx.stagedRec)
	}

	if tx.stagedOb != nil {
		tx.ledger.ob = *tx.stagedOb
	}

	tx.done = true
	tx.ledger.mu.Unlock()

	return nil
}

func (tx *memoryTx) Rollback() error {
	if !tx.done {
		tx.done = true
		tx.ledger.mu.Unlock()
	}

	return nil
}

func TestService_Apply_ConcurrentOverdraw(t *testing.T) {
	store := &memoryLedger{ob: *pendingObligation(1200)}
	svc := ledger.NewService(store)

	// Two simultaneous payments that together would overdraw the obligation:
	// exactly one must succeed against the fresh balance.
	var wg sync.WaitGroup

	results := make([]error, 2)

	for i := range results {
		wg.Add(1)

		go func(i int) {
			defer wg.Done()

			_, err := svc.Apply(context.Background(), ownerID, ledger.ApplyParams{
				ObligationID: obID,
				Amount:       700,
				PaymentDate:  payDate,
			})
			results[i] = err
		}(i)
	}

	wg.Wait()

	var succeeded, overdrawn int

	for _, err := range results {
		switch {
		case err == nil:
			succeeded++
		case errors.Is(err, ledger.ErrExceedsOutstanding):
			overdrawn++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}

	assert.Equal(t, 1, succeeded)
	assert.Equal(t, 1, overdrawn)
	assert.Len(t, store.records, 1)
	assert.InDelta(t, 500, store.ob.Amount, 0.01)
	assert.GreaterOrEqual(t, store.ob.Amount, 0.0)
	assert.Equal(t, obligation.StatusPending, store.ob.Status)
}

func TestService_Apply_SequentialUntilSettled(t *testing.T) {
	store := &memoryLedger{ob: *pendingObligation(300)}
	svc := ledger.NewService(store)

	for _, amount := range []float64{100, 100, 100} {
		_, err := svc.Apply(context.Background(), ownerID, ledger.ApplyParams{
			ObligationID: obID,
			Amount:       amount,
			PaymentDate:  payDate,
		})
		require.NoError(t, err)
	}

	assert.Zero(t, store.ob.Amount)
	assert.Equal(t, obligation.StatusSettled, store.ob.Status)
	assert.Len(t, store.records, 3)

	// The settled obligation rejects any further payment.
	_, err := svc.Apply(context.Background(), ownerID, ledger.ApplyParams{
		ObligationID: obID,
		Amount:       1,
		PaymentDate:  payDate,
	})
	assert.ErrorIs(t, err, ledger.ErrNotPending)
}
