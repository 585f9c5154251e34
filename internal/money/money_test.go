package money

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "£0.00", Format(dec("0"), "GBP"))
	assert.Equal(t, "£80.00", Format(dec("80"), "GBP"))
	assert.Equal(t, "-£20.00", Format(dec("-20"), "GBP"))
	assert.Equal(t, "£1,250.50", Format(dec("1250.50"), "GBP"))
	assert.Equal(t, "$12.34", Format(dec("12.34"), "USD"))
}

func TestFormatSigned(t *testing.T) {
	assert.Equal(t, "-", FormatSigned(dec("0"), "GBP"))
	assert.Equal(t, "+£80.00", FormatSigned(dec("80"), "GBP"))
	assert.Equal(t, "-£20.00", FormatSigned(dec("-20"), "GBP"))
}
