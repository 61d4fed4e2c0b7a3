package obligation_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/gestor-maestro/gestor/internal/obligation"
)

var ownerID = uuid.New()

func TestService_Create(t *testing.T) {
	type testCase struct {
		name      string
		params    obligation.CreateParams
		setupMock func(m *obligation.MockRepository)
		wantErr   bool
	}

	tests := []testCase{
		{
			name: "Success",
			params: obligation.CreateParams{
				OwnerID:  ownerID,
				Title:    "Aluguel - 03/2025",
				Amount:   1200,
				Kind:     obligation.KindExpense,
				Category: "Custos fixos",
			},
			setupMock: func(m *obligation.MockRepository) {
				m.EXPECT().
					CreateObligation(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, ob *obligation.Obligation) error {
						assert.Equal(t, obligation.StatusPending, ob.Status)
						assert.Equal(t, ownerID, ob.OwnerID)
						assert.Equal(t, 1200.0, ob.Amount)
						return nil
					})
			},
		},
		{
			name: "MissingTitle",
			params: obligation.CreateParams{
				OwnerID: ownerID,
				Amount:  100,
				Kind:    obligation.KindExpense,
			},
			wantErr: true,
		},
		{
			name: "ZeroAmount",
			params: obligation.CreateParams{
				OwnerID: ownerID,
				Title:   "Insumos",
				Kind:    obligation.KindExpense,
			},
			wantErr: true,
		},
		{
			name: "NegativeAmount",
			params: obligation.CreateParams{
				OwnerID: ownerID,
				Title:   "Insumos",
				Amount:  -50,
				Kind:    obligation.KindExpense,
			},
			wantErr: true,
		},
		{
			name: "UnknownKind",
			params: obligation.CreateParams{
				OwnerID: ownerID,
				Title:   "Insumos",
				Amount:  50,
				Kind:    obligation.Kind("transfer"),
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := obligation.NewMockRepository(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(repo)
			}

			svc := obligation.NewService(repo)
			got, err := svc.Create(context.Background(), tt.params)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, got)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, obligation.StatusPending, got.Status)
		})
	}
}

func TestService_Get(t *testing.T) {
	obID := uuid.New()

	type testCase struct {
		name      string
		callerID  uuid.UUID
		setupMock func(m *obligation.MockRepository)
		wantErr   error
	}

	tests := []testCase{
		{
			name:     "Success",
			callerID: ownerID,
			setupMock: func(m *obligation.MockRepository) {
				m.EXPECT().
					GetObligation(gomock.Any(), obID).
					Return(&obligation.Obligation{ID: obID, OwnerID: ownerID}, nil)
			},
		},
		{
			name:     "OtherOwnerLooksLikeNotFound",
			callerID: uuid.New(),
			setupMock: func(m *obligation.MockRepository) {
				m.EXPECT().
					GetObligation(gomock.Any(), obID).
					Return(&obligation.Obligation{ID: obID, OwnerID: ownerID}, nil)
			},
			wantErr: obligation.ErrNotFound,
		},
		{
			name:     "NotFound",
			callerID: ownerID,
			setupMock: func(m *obligation.MockRepository) {
				m.EXPECT().
					GetObligation(gomock.Any(), obID).
					Return(nil, obligation.ErrNotFound)
			},
			wantErr: obligation.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := obligation.NewMockRepository(ctrl)
			tt.setupMock(repo)

			svc := obligation.NewService(repo)
			got, err := svc.Get(context.Background(), tt.callerID, obID)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, obID, got.ID)
		})
	}
}

func TestService_Update(t *testing.T) {
	obID := uuid.New()
	newTitle := "Aluguel do galpão"

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := obligation.NewMockRepository(ctrl)
	repo.EXPECT().
		GetObligation(gomock.Any(), obID).
		Return(&obligation.Obligation{
			ID:       obID,
			OwnerID:  ownerID,
			Title:    "Aluguel",
			Amount:   1200,
			Status:   obligation.StatusPending,
			Category: "Custos fixos",
		}, nil)
	repo.EXPECT().
		UpdateObligation(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, ob *obligation.Obligation) error {
			assert.Equal(t, newTitle, ob.Title)
			assert.Equal(t, "Custos fixos", ob.Category)
			assert.Equal(t, 1200.0, ob.Amount)
			return nil
		})

	svc := obligation.NewService(repo)

	got, err := svc.Update(context.Background(), ownerID, obID, obligation.UpdateParams{Title: &newTitle})
	require.NoError(t, err)
	assert.Equal(t, newTitle, got.Title)
}

func TestService_Delete(t *testing.T) {
	obID := uuid.New()

	t.Run("Success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := obligation.NewMockRepository(ctrl)
		repo.EXPECT().
			GetObligation(gomock.Any(), obID).
			Return(&obligation.Obligation{ID: obID, OwnerID: ownerID}, nil)
		repo.EXPECT().DeleteObligation(gomock.Any(), obID).Return(nil)

		svc := obligation.NewService(repo)

		err := svc.Delete(context.Background(), ownerID, obID)
		assert.NoError(t, err)
	})

	t.Run("OtherOwnerNeverDeletes", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := obligation.NewMockRepository(ctrl)
		repo.EXPECT().
			GetObligation(gomock.Any(), obID).
			Return(&obligation.Obligation{ID: obID, OwnerID: ownerID}, nil)

		svc := obligation.NewService(repo)

		err := svc.Delete(context.Background(), uuid.New(), obID)
		assert.ErrorIs(t, err, obligation.ErrNotFound)
	})
}

func TestService_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	pending := obligation.StatusPending
	filter := obligation.ListFilter{OwnerID: ownerID, Status: &pending}

	repo := obligation.NewMockRepository(ctrl)
	repo.EXPECT().
		ListObligations(gomock.Any(), filter).
		Return([]*obligation.Obligation{{OwnerID: ownerID}}, nil)

	svc := obligation.NewService(repo)

	got, err := svc.List(context.Background(), filter)
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestService_ListPayments(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	sourceID := uuid.New()
	filter := obligation.PaymentFilter{OwnerID: ownerID, SourceObligationID: &sourceID}

	repo := obligation.NewMockRepository(ctrl)
	repo.EXPECT().
		ListPaymentRecords(gomock.Any(), filter).
		Return(nil, errors.New("connection refused"))

	svc := obligation.NewService(repo)

	_, err := svc.ListPayments(context.Background(), filter)
	assert.Error(t, err)
}
