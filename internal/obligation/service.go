package obligation

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=obligation
type Repository interface {
	CreateObligation(ctx context.Context, ob *Obligation) error
	GetObligation(ctx context.Context, id uuid.UUID) (*Obligation, error)
	UpdateObligation(ctx context.Context, ob *Obligation) error
	DeleteObligation(ctx context.Context, id uuid.UUID) error
	ListObligations(ctx context.Context, filter ListFilter) ([]*Obligation, error)

	ListPaymentRecords(ctx context.Context, filter PaymentFilter) ([]*PaymentRecord, error)
}

type Service struct {
	repo     Repository
	validate *validator.Validate
}

func NewService(repo Repository) *Service {
	return &Service{
		repo:     repo,
		validate: validator.New(),
	}
}

type CreateParams struct {
	OwnerID  uuid.UUID `validate:"required"`
	Title    string    `validate:"required"`
	Amount   float64   `validate:"required,gt=0"`
	Kind     Kind      `validate:"required,oneof=expense revenue"`
	Category string
}

type ListFilter struct {
	OwnerID   uuid.UUID
	Status    *Status
	Kind      *Kind
	StartDate *time.Time
	EndDate   *time.Time
}

type PaymentFilter struct {
	OwnerID            uuid.UUID
	SourceObligationID *uuid.UUID
}

func (s *Service) Create(ctx context.Context, params CreateParams) (*Obligation, error) {
	if err := s.validate.Struct(params); err != nil {
		return nil, fmt.Errorf("validating obligation: %w", err)
	}

	ob := &Obligation{
		OwnerID:  params.OwnerID,
		Title:    params.Title,
		Amount:   params.Amount,
		Kind:     params.Kind,
		Status:   StatusPending,
		Category: params.Category,
	}
	if err := s.repo.CreateObligation(ctx, ob); err != nil {
		return nil, err
	}

	return ob, nil
}

// Get returns the obligation only if it belongs to the caller. A record
// owned by someone else is reported as not found rather than forbidden.
func (s *Service) Get(ctx context.Context, callerID, id uuid.UUID) (*Obligation, error) {
	ob, err := s.repo.GetObligation(ctx, id)
	if err != nil {
		return nil, err
	}

	if ob.OwnerID != callerID {
		return nil, ErrNotFound
	}

	return ob, nil
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]*Obligation, error) {
	return s.repo.ListObligations(ctx, filter)
}

type UpdateParams struct {
	Title    *string
	Category *string
}

// Update changes the editable fields of a pending obligation. Amount and
// status are owned by the payment ledger and cannot be set here.
func (s *Service) Update(ctx context.Context, callerID, id uuid.UUID, params UpdateParams) (*Obligation, error) {
	ob, err := s.Get(ctx, callerID, id)
	if err != nil {
		return nil, err
	}

	if params.Title != nil {
		ob.Title = *params.Title
	}

	if params.Category != nil {
		ob.Category = *params.Category
	}

	if err := s.repo.UpdateObligation(ctx, ob); err != nil {
		return nil, err
	}

	return ob, nil
}

func (s *Service) Delete(ctx context.Context, callerID, id uuid.UUID) error {
	if _, err := s.Get(ctx, callerID, id); err != nil {
		return err
	}

	return s.repo.DeleteObligation(ctx, id)
}

func (s *Service) ListPayments(ctx context.Context, filter PaymentFilter) ([]*PaymentRecord, error) {
	return s.repo.ListPaymentRecords(ctx, filter)
}
