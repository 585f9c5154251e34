package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Category classifies an expense entry. Free-form values are accepted;
// the constants below are the ones the app suggests out of the box.
type Category string

const (
	CategoryConsumable Category = "consumable"
	CategoryEquipment  Category = "equipment"
	CategoryContract   Category = "contract"
	CategoryMisc       Category = "misc"
)

// DefaultCategories returns the built-in category suggestions.
func DefaultCategories() []Category {
	return []Category{CategoryConsumable, CategoryEquipment, CategoryContract, CategoryMisc}
}

// Entry is a single expense row. Immutable once recorded; the only
// permitted mutation of a session is removing an entry by ID.
type Entry struct {
	ID        string
	Timestamp time.Time
	Label     string
	Category  Category
	Amount    decimal.Decimal // negative = spend, positive = income (sales, contract rewards)
}
