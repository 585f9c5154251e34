package calc

import "github.com/shopspring/decimal"

// EMFThresholds are the running-total boundaries for EMF levels 2 through 5,
// in ascending order. Totals below the first threshold are level 1.
type EMFThresholds [4]decimal.Decimal

// DefaultEMFThresholds returns the stock boundaries: 500, 1000, 1500, 2000.
func DefaultEMFThresholds() EMFThresholds {
	return EMFThresholds{
		decimal.NewFromInt(500),
		decimal.NewFromInt(1000),
		decimal.NewFromInt(1500),
		decimal.NewFromInt(2000),
	}
}

// EMFLevel maps a session total to a 1..5 level against the thresholds.
func EMFLevel(total decimal.Decimal, t EMFThresholds) int {
	level := 1
	for _, bound := range t {
		if total.GreaterThanOrEqual(bound) {
			level++
		}
	}
	return level
}
