// Package currency formats, parses, and validates Indian Rupee amounts.
package currency

import (
	"strings"

	"github.com/shopspring/decimal"

	"rupaya/internal/domain"
)

// Business limits for payment amounts. The ten crore ceiling is policy, not
// a technical bound.
var (
	MinAmount = decimal.RequireFromString("1.00")
	MaxAmount = decimal.RequireFromString("100000000.00")
)

// Format renders an amount in the Indian numbering convention: the last
// three integer digits form one group, with two-digit groups to the left
// (12345678.90 -> "1,23,45,678.90"). The amount is quantized to two decimals
// first.
func Format(amount decimal.Decimal, includeSymbol bool) string {
	fixed := amount.Round(2).StringFixed(2)

	sign := ""
	if strings.HasPrefix(fixed, "-") {
		sign = "-"
		fixed = fixed[1:]
	}

	intPart, decPart, _ := strings.Cut(fixed, ".")

	var grouped string
	if len(intPart) <= 3 {
		grouped = intPart
	} else {
		lastThree := intPart[len(intPart)-3:]
		remaining := intPart[:len(intPart)-3]

		var groups []string
		for len(remaining) > 2 {
			groups = append([]string{remaining[len(remaining)-2:]}, groups...)
			remaining = remaining[:len(remaining)-2]
		}
		groups = append([]string{remaining}, groups...)
		grouped = strings.Join(groups, ",") + "," + lastThree
	}

	out := sign + grouped + "." + decPart
	if includeSymbol {
		out = "₹" + out
	}
	return out
}

// Validate checks an amount against the default ₹1.00 minimum.
func Validate(amount decimal.Decimal) error {
	return ValidateMin(amount, MinAmount)
}

// ValidateMin checks that an amount is positive, at least min, has no more
// than two decimal places, and does not exceed the ten crore ceiling.
func ValidateMin(amount, min decimal.Decimal) error {
	if amount.Sign() <= 0 {
		return domain.Invalidf("amount must be positive: %s", amount)
	}
	if amount.LessThan(min) {
		return domain.Invalidf("amount %s is below minimum %s", Format(amount, true), Format(min, true))
	}
	if amount.Exponent() < -2 {
		return domain.Invalidf("amount cannot have more than 2 decimal places")
	}
	if amount.GreaterThan(MaxAmount) {
		return domain.Invalidf("amount %s exceeds maximum %s", Format(amount, true), Format(MaxAmount, true))
	}
	return nil
}

// Parse reads an INR amount string, tolerating the "₹", "Rs.", "Rs", and
// "INR" markers and Indian-style comma grouping. The parsed amount must pass
// Validate.
func Parse(s string) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Decimal{}, domain.Invalidf("amount string is empty")
	}

	cleaned := strings.TrimSpace(s)
	for _, marker := range []string{"₹", "Rs.", "Rs", "INR"} {
		cleaned = strings.ReplaceAll(cleaned, marker, "")
	}
	cleaned = strings.ReplaceAll(cleaned, ",", "")
	cleaned = strings.TrimSpace(cleaned)

	amount, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Decimal{}, domain.Invalidf("cannot parse amount string: %s", s)
	}

	if err := Validate(amount); err != nil {
		return decimal.Decimal{}, err
	}
	return amount, nil
}

// ToPaisa converts rupees to paisa for gateway requests. The amount must
// pass Validate, which guarantees the conversion is exact.
func ToPaisa(amount decimal.Decimal) (int64, error) {
	if err := Validate(amount); err != nil {
		return 0, err
	}
	return amount.Mul(decimal.NewFromInt(100)).Round(0).IntPart(), nil
}

// FromPaisa converts paisa back to a two-decimal rupee amount.
func FromPaisa(paisa int64) (decimal.Decimal, error) {
	if paisa < 0 {
		return decimal.Decimal{}, domain.Invalidf("paisa cannot be negative: %d", paisa)
	}
	return decimal.NewFromInt(paisa).Div(decimal.NewFromInt(100)).Round(2), nil
}
