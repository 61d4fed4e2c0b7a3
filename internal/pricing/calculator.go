package pricing

import (
	"errors"
	"math"
)

var (
	ErrZeroYield     = errors.New("batch yield must be positive")
	ErrMarginTooHigh = errors.New("target margin must be below 100%")
)

// BatchInput describes one production batch of a product.
type BatchInput struct {
	MaterialCost float64
	LaborCost    float64
	OverheadCost float64
	Yield        int
}

// UnitCost returns the cost to produce one unit of the batch.
func UnitCost(in BatchInput) (float64, error) {
	if in.Yield <= 0 {
		return 0, ErrZeroYield
	}

	total := in.MaterialCost + in.LaborCost + in.OverheadCost

	return total / float64(in.Yield), nil
}

// Margin returns the margin percentage a selling price yields over a unit cost.
func Margin(unitCost, price float64) float64 {
	if price == 0 {
		return 0
	}

	return (price - unitCost) / price * 100
}

// SuggestedPrice returns the price that achieves the target margin
// percentage over the unit cost.
func SuggestedPrice(unitCost, targetMargin float64) (float64, error) {
	if targetMargin >= 100 {
		return 0, ErrMarginTooHigh
	}

	price := unitCost / (1 - targetMargin/100)

	// Round to whole cents.
	return math.Round(price*100) / 100, nil
}

// BreakEvenUnits returns how many units must be sold at the given price to
// cover a fixed monthly cost. Returns 0 when the price does not exceed the
// unit cost.
func BreakEvenUnits(fixedCosts, unitCost, price float64) int {
	contribution := price - unitCost
	if contribution <= 0 {
		return 0
	}

	return int(math.Ceil(fixedCosts / contribution))
}
