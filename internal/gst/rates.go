package gst

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Rate is one of the standard GST rate slabs. The set is closed: India
// publishes fixed slabs, so category mapping resolves to one of these rather
// than an arbitrary percentage.
type Rate int

const (
	RateZero Rate = iota
	RateFive
	RateTwelve
	RateEighteen
	RateTwentyEight
)

var rateValues = map[Rate]decimal.Decimal{
	RateZero:        decimal.RequireFromString("0.00"),
	RateFive:        decimal.RequireFromString("5.00"),
	RateTwelve:      decimal.RequireFromString("12.00"),
	RateEighteen:    decimal.RequireFromString("18.00"),
	RateTwentyEight: decimal.RequireFromString("28.00"),
}

// Decimal returns the slab's percentage value.
func (r Rate) Decimal() decimal.Decimal {
	return rateValues[r]
}

// Keyword rules evaluated in priority order; the first rule whose keyword
// appears in the category wins, defaulting to the 18% slab.
var categoryRules = []struct {
	keywords []string
	rate     Rate
}{
	{[]string{"food", "grocery", "essential", "medicine", "health"}, RateFive},
	{[]string{"clothing", "fabric", "footwear", "books"}, RateTwelve},
	{[]string{"luxury", "automobile", "electronics", "appliance"}, RateTwentyEight},
}

// RateForCategory maps a product category to its GST slab. This is a
// simplified keyword match; a production taxonomy would drive this from
// proper HSN classification.
func RateForCategory(category string) Rate {
	lower := strings.ToLower(category)
	for _, rule := range categoryRules {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				return rule.rate
			}
		}
	}
	return RateEighteen
}
