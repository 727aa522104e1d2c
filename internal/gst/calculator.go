package gst

import (
	"log"
	"strconv"

	"github.com/shopspring/decimal"

	"rupaya/internal/domain"
)

var (
	hundred = decimal.NewFromInt(100)
	two     = decimal.NewFromInt(2)
)

// Calculate produces the GST breakdown for an amount. When shippingStateCode
// is empty the supply is treated as intra-state (shipping defaults to
// billing). When amountIncludesTax is true the base is backed out of the
// amount before tax is computed.
//
// All monetary figures are quantized to two decimals with half-away-from-zero
// rounding. CGST and SGST are each rounded independently, so for odd-paisa
// totals their sum can differ from TotalGST by one paisa.
func Calculate(
	amount decimal.Decimal,
	gstRate decimal.Decimal,
	billingStateCode string,
	shippingStateCode string,
	amountIncludesTax bool,
) (domain.GSTBreakdown, error) {
	if amount.IsNegative() {
		return domain.GSTBreakdown{}, domain.Invalidf("amount cannot be negative: %s", amount)
	}
	if gstRate.IsNegative() || gstRate.GreaterThan(hundred) {
		return domain.GSTBreakdown{}, domain.Invalidf("GST rate must be between 0 and 100: %s", gstRate)
	}

	billingCode, err := parseStateCode(billingStateCode)
	if err != nil {
		return domain.GSTBreakdown{}, domain.Invalidf("invalid billing state code format: %s", billingStateCode)
	}

	isInterState := false
	if shippingStateCode != "" {
		shippingCode, err := parseStateCode(shippingStateCode)
		if err != nil {
			return domain.GSTBreakdown{}, domain.Invalidf("invalid shipping state code format: %s", shippingStateCode)
		}
		isInterState = billingCode != shippingCode
	}

	base := amount
	if amountIncludesTax {
		base = amount.Mul(hundred).Div(hundred.Add(gstRate))
	}
	base = base.Round(2)

	totalGST := base.Mul(gstRate).Div(hundred).Round(2)

	var cgst, sgst, igst decimal.Decimal
	if isInterState {
		igst = totalGST
		cgst = decimal.Zero
		sgst = decimal.Zero
		log.Printf("gst.Calculate: inter-state base=%s igst=%s rate=%s%%", base, igst, gstRate)
	} else {
		cgst = totalGST.Div(two).Round(2)
		sgst = totalGST.Div(two).Round(2)
		igst = decimal.Zero
		log.Printf("gst.Calculate: intra-state base=%s cgst=%s sgst=%s rate=%s%%", base, cgst, sgst, gstRate)
	}

	return domain.GSTBreakdown{
		BaseAmount:   base,
		GSTRate:      gstRate,
		CGST:         cgst,
		SGST:         sgst,
		IGST:         igst,
		TotalGST:     totalGST,
		TotalAmount:  base.Add(totalGST).Round(2),
		IsInterState: isInterState,
	}, nil
}

func parseStateCode(code string) (int, error) {
	n, err := strconv.Atoi(code)
	if err != nil {
		return 0, err
	}
	if n < 1 || n > 38 {
		return 0, domain.Invalidf("state code out of range: %s", code)
	}
	return n, nil
}
