package utils

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Argentine price convention: "." groups thousands, "," separates decimals.
// FormatPrice(1650000) == "1.650.000", FormatPrice(1650000.5) == "1.650.000,50".

// priceInputPattern accepts what the storefront lets the user type live:
// digits with arbitrary dot placement and at most one comma followed by at
// most two decimal digits.
var priceInputPattern = regexp.MustCompile(`^[0-9.]*(,[0-9]{0,2})?$`)

// FormatPrice renders an amount for display. The decimal portion is omitted
// entirely when the fractional part is zero, and zero renders as the empty
// string (an unset price input, not "0").
func FormatPrice(n float64) string {
	if n == 0 {
		return ""
	}

	negative := n < 0
	cents := int64(math.Round(math.Abs(n) * 100))
	intPart := cents / 100
	frac := cents % 100

	grouped := groupThousands(strconv.FormatInt(intPart, 10))
	out := grouped
	if frac != 0 {
		out = grouped + "," + pad2(frac)
	}
	if negative {
		out = "-" + out
	}
	return out
}

// ParsePrice reads a regional numeric string. Dots are always thousands
// grouping (never decimal) and a single comma is the decimal separator.
// Empty or non-numeric input parses to 0; it never returns an error.
func ParsePrice(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	s = strings.ReplaceAll(s, ".", "")
	s = strings.Replace(s, ",", ".", 1)
	n, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return n
}

// IsValidPriceInput validates a partial price string while the user types.
func IsValidPriceInput(s string) bool {
	return priceInputPattern.MatchString(s)
}

func groupThousands(digits string) string {
	n := len(digits)
	if n <= 3 {
		return digits
	}
	var b strings.Builder
	head := n % 3
	if head > 0 {
		b.WriteString(digits[:head])
	}
	for i := head; i < n; i += 3 {
		if b.Len() > 0 {
			b.WriteByte('.')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

func pad2(n int64) string {
	if n < 10 {
		return "0" + strconv.FormatInt(n, 10)
	}
	return strconv.FormatInt(n, 10)
}
