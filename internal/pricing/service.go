package pricing

import (
	"context"
	"log/slog"
)

// Advisor phrases a human-readable explanation for a computed quote.
type Advisor interface {
	ExplainPricing(ctx context.Context, q Quote) (string, error)
}

// Quote is the result of a single pricing evaluation. The numbers are
// computed once here; the advisor only explains them.
type Quote struct {
	ProductName    string
	UnitCost       float64
	TargetMargin   float64
	SuggestedPrice float64
	CurrentPrice   float64
	CurrentMargin  float64
	Explanation    string
}

type Service struct {
	advisor Advisor
}

// NewService creates the pricing service. The advisor may be nil, in which
// case quotes carry no explanation text.
func NewService(advisor Advisor) *Service {
	return &Service{advisor: advisor}
}

type QuoteParams struct {
	ProductName  string
	Batch        BatchInput
	TargetMargin float64
	CurrentPrice float64
}

func (s *Service) Evaluate(ctx context.Context, params QuoteParams) (*Quote, error) {
	unitCost, err := UnitCost(params.Batch)
	if err != nil {
		return nil, err
	}

	suggested, err := SuggestedPrice(unitCost, params.TargetMargin)
	if err != nil {
		return nil, err
	}

	quote := &Quote{
		ProductName:    params.ProductName,
		UnitCost:       unitCost,
		TargetMargin:   params.TargetMargin,
		SuggestedPrice: suggested,
		CurrentPrice:   params.CurrentPrice,
		CurrentMargin:  Margin(unitCost, params.CurrentPrice),
	}

	if s.advisor != nil {
		explanation, err := s.advisor.ExplainPricing(ctx, *quote)
		if err != nil {
			// The quote is still useful without the narrative.
			slog.Warn("pricing explanation unavailable", "product", params.ProductName, "error", err)
		} else {
			quote.Explanation = explanation
		}
	}

	return quote, nil
}
