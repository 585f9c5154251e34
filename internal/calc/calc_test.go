package calc

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/denikks/huntbook/internal/model"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func session(entries ...model.Entry) model.Session {
	return model.Session{Name: "test", Entries: entries}
}

func TestTotal_Empty(t *testing.T) {
	assert.True(t, Total(session()).IsZero())
}

func TestTotal_SumsAmounts(t *testing.T) {
	s := session(
		model.Entry{Label: "Sage", Category: model.CategoryConsumable, Amount: dec("-20")},
		model.Entry{Label: "Sale", Category: model.CategoryContract, Amount: dec("100")},
	)
	assert.True(t, Total(s).Equal(dec("80")))
}

func TestByCategory(t *testing.T) {
	s := session(
		model.Entry{Label: "Sage", Category: model.CategoryConsumable, Amount: dec("-20")},
		model.Entry{Label: "Sale", Category: model.CategoryContract, Amount: dec("100")},
	)

	by := ByCategory(s)
	require.Len(t, by, 2)
	assert.True(t, by[model.CategoryConsumable].Equal(dec("-20")))
	assert.True(t, by[model.CategoryContract].Equal(dec("100")))
	_, present := by[model.CategoryEquipment]
	assert.False(t, present, "categories with no entries are absent")
}

func TestByCategory_SubtotalsSumToTotal(t *testing.T) {
	s := session(
		model.Entry{Label: "a", Category: model.CategoryConsumable, Amount: dec("-20")},
		model.Entry{Label: "b", Category: model.CategoryConsumable, Amount: dec("-5.25")},
		model.Entry{Label: "c", Category: model.CategoryEquipment, Amount: dec("-44")},
		model.Entry{Label: "d", Category: model.CategoryContract, Amount: dec("150")},
	)

	sum := decimal.Zero
	for _, sub := range ByCategory(s) {
		sum = sum.Add(sub)
	}
	assert.True(t, sum.Equal(Total(s)))
}

func TestDiff(t *testing.T) {
	a := session(model.Entry{Label: "x", Amount: dec("120")})
	b := session(model.Entry{Label: "y", Amount: dec("45.50")})

	assert.True(t, Diff(a, b).Equal(dec("74.50")))
	assert.True(t, Diff(b, a).Equal(dec("-74.50")))
	assert.True(t, Diff(a, a).IsZero())
}

func TestPure_NoInputMutation(t *testing.T) {
	s := session(
		model.Entry{Label: "a", Category: model.CategoryConsumable, Amount: dec("-20")},
		model.Entry{Label: "b", Category: model.CategoryContract, Amount: dec("100")},
	)

	first := Total(s)
	_ = ByCategory(s)
	second := Total(s)

	assert.True(t, first.Equal(second), "recomputation is deterministic")
	require.Len(t, s.Entries, 2)
	assert.Equal(t, "a", s.Entries[0].Label)
}

func TestEMFLevel(t *testing.T) {
	thresholds := DefaultEMFThresholds()

	cases := []struct {
		total string
		level int
	}{
		{"0", 1},
		{"-300", 1},
		{"499.99", 1},
		{"500", 2},
		{"999.99", 2},
		{"1000", 3},
		{"1500", 4},
		{"1999.99", 4},
		{"2000", 5},
		{"9999", 5},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.level, EMFLevel(dec(tc.total), thresholds), "total %s", tc.total)
	}
}
