package fixedcost

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=fixedcost
type Repository interface {
	CreateFixedCost(ctx context.Context, fc *FixedCost) error
	GetFixedCost(ctx context.Context, id uuid.UUID) (*FixedCost, error)
	ListFixedCosts(ctx context.Context, ownerID uuid.UUID) ([]*FixedCost, error)
	DeleteFixedCost(ctx context.Context, id uuid.UUID) error

	ListActive(ctx context.Context) ([]*FixedCost, error)
	HasObligationForMonth(ctx context.Context, fixedCostID uuid.UUID, month time.Time) (bool, error)
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
	Name     string    `validate:"required"`
	Amount   float64   `validate:"required,gt=0"`
	Category string
}

func (s *Service) Create(ctx context.Context, params CreateParams) (*FixedCost, error) {
	if err := s.validate.Struct(params); err != nil {
		return nil, fmt.Errorf("validating fixed cost: %w", err)
	}

	fc := &FixedCost{
		OwnerID:  params.OwnerID,
		Name:     params.Name,
		Amount:   params.Amount,
		Category: params.Category,
		Active:   true,
	}
	if err := s.repo.CreateFixedCost(ctx, fc); err != nil {
		return nil, err
	}

	return fc, nil
}

func (s *Service) List(ctx context.Context, ownerID uuid.UUID) ([]*FixedCost, error) {
	return s.repo.ListFixedCosts(ctx, ownerID)
}

func (s *Service) Delete(ctx context.Context, callerID, id uuid.UUID) error {
	fc, err := s.repo.GetFixedCost(ctx, id)
	if err != nil {
		return err
	}

	if fc.OwnerID != callerID {
		return ErrNotFound
	}

	return s.repo.DeleteFixedCost(ctx, id)
}
