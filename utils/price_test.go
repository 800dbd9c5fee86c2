package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatPrice(t *testing.T) {
	assert.Equal(t, "", FormatPrice(0))
	assert.Equal(t, "5", FormatPrice(5))
	assert.Equal(t, "950", FormatPrice(950))
	assert.Equal(t, "1.500", FormatPrice(1500))
	assert.Equal(t, "1.650.000", FormatPrice(1650000))
	assert.Equal(t, "1.650.000,50", FormatPrice(1650000.5))
	assert.Equal(t, "1.650.000,85", FormatPrice(1650000.85))
	assert.Equal(t, "12,01", FormatPrice(12.01))
}

func TestParsePrice(t *testing.T) {
	assert.Equal(t, 0.0, ParsePrice(""))
	assert.Equal(t, 0.0, ParsePrice("   "))
	assert.Equal(t, 0.0, ParsePrice("abc"))
	assert.Equal(t, 1650000.85, ParsePrice("1.650.000,85"))
	assert.Equal(t, 1650000.0, ParsePrice("1.650.000"))
	assert.Equal(t, 1650000.0, ParsePrice("1650000"))
	assert.Equal(t, 1.5, ParsePrice("1,5"))
	// Dots are grouping, never decimal.
	assert.Equal(t, 1650.0, ParsePrice("1.650"))
	// A second comma makes the input non-numeric.
	assert.Equal(t, 0.0, ParsePrice("1,2,3"))
}

func TestPriceRoundTrip(t *testing.T) {
	assert.Equal(t, "1.650.000,85", FormatPrice(ParsePrice("1.650.000,85")))

	// Formatting then reparsing any accepted input is idempotent after the
	// first normalization pass, even with non-canonical separator placement.
	inputs := []string{
		"1.650.000,85",
		"1650000,85",
		"16.50.000",
		"950",
		"0,5",
		"12,3",
		"",
	}
	for _, s := range inputs {
		assert.True(t, IsValidPriceInput(s), "input %q should pass the live validator", s)
		once := ParsePrice(s)
		assert.Equal(t, once, ParsePrice(FormatPrice(once)), "round trip failed for %q", s)
	}
}

func TestIsValidPriceInput(t *testing.T) {
	assert.True(t, IsValidPriceInput("1.650.000,8"))
	assert.True(t, IsValidPriceInput("1650000,"))
	assert.True(t, IsValidPriceInput("..12"))
	assert.False(t, IsValidPriceInput("1,234,5"))
	assert.False(t, IsValidPriceInput("1,234"))
	assert.False(t, IsValidPriceInput("12a"))
	assert.False(t, IsValidPriceInput("$100"))
}
