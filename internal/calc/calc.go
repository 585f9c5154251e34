// Package calc computes derived aggregates over a session. All functions
// are pure: they never mutate their inputs and hold no state, so totals are
// always recomputed from the entry list and can never drift from it.
package calc

import (
	"github.com/shopspring/decimal"

	"github.com/denikks/huntbook/internal/model"
)

// Aggregate is the derived view of a session. Never persisted.
type Aggregate struct {
	Total      decimal.Decimal
	ByCategory map[model.Category]decimal.Decimal
}

// Total returns the sum of all entry amounts, zero for an empty session.
func Total(s model.Session) decimal.Decimal {
	sum := decimal.Zero
	for _, e := range s.Entries {
		sum = sum.Add(e.Amount)
	}
	return sum
}

// ByCategory returns per-category subtotals. Categories with no entries are
// absent from the map, not zero-valued.
func ByCategory(s model.Session) map[model.Category]decimal.Decimal {
	out := make(map[model.Category]decimal.Decimal)
	for _, e := range s.Entries {
		out[e.Category] = out[e.Category].Add(e.Amount)
	}
	return out
}

// Diff returns Total(a) - Total(b), for run-to-run comparison.
func Diff(a, b model.Session) decimal.Decimal {
	return Total(a).Sub(Total(b))
}

// Aggregates returns the full derived view in one pass-equivalent call.
func Aggregates(s model.Session) Aggregate {
	return Aggregate{Total: Total(s), ByCategory: ByCategory(s)}
}
