// Package discount applies pre-tax discounts with GST recalculation.
package discount

import (
	"log"
	"sort"

	"github.com/shopspring/decimal"

	"rupaya/internal/currency"
	"rupaya/internal/domain"
	"rupaya/internal/gst"
)

var hundred = decimal.NewFromInt(100)

// Apply applies a discount to a tax-inclusive amount. The discount is taken
// on the base (pre-tax) amount and GST is recomputed on the discounted base,
// matching how Indian invoices show discounts. A fixed discount
// value is treated as tax-inclusive and backed out to its base equivalent.
func Apply(
	originalAmount decimal.Decimal,
	discountValue decimal.Decimal,
	discountType domain.DiscountType,
	gstRate decimal.Decimal,
	billingStateCode string,
	shippingStateCode string,
) (domain.DiscountResult, error) {
	if err := currency.Validate(originalAmount); err != nil {
		return domain.DiscountResult{}, domain.Invalidf("invalid original amount: %v", err)
	}

	switch discountType {
	case domain.DiscountPercentage:
		if discountValue.IsNegative() || discountValue.GreaterThan(hundred) {
			return domain.DiscountResult{}, domain.Invalidf(
				"discount percentage must be between 0 and 100: %s", discountValue)
		}
	case domain.DiscountFixed:
		if err := currency.ValidateMin(discountValue, decimal.Zero); err != nil {
			return domain.DiscountResult{}, domain.Invalidf("invalid discount value: %v", err)
		}
	default:
		return domain.DiscountResult{}, domain.Invalidf("invalid discount type: %s", discountType)
	}

	original, err := gst.Calculate(originalAmount, gstRate, billingStateCode, shippingStateCode, true)
	if err != nil {
		return domain.DiscountResult{}, err
	}

	var discountOnBase decimal.Decimal
	if discountType == domain.DiscountPercentage {
		discountOnBase = original.BaseAmount.Mul(discountValue).Div(hundred).Round(2)
	} else {
		discountOnBase = discountValue.Mul(hundred).Div(hundred.Add(gstRate)).Round(2)
	}

	newBase := original.BaseAmount.Sub(discountOnBase)
	if newBase.IsNegative() {
		newBase = decimal.Zero
	}

	final, err := gst.Calculate(newBase, gstRate, billingStateCode, shippingStateCode, false)
	if err != nil {
		return domain.DiscountResult{}, err
	}

	totalDiscount := originalAmount.Sub(final.TotalAmount)

	savingsPct := decimal.Zero
	if originalAmount.Sign() > 0 {
		savingsPct = totalDiscount.Div(originalAmount).Mul(hundred).Round(2)
	}

	log.Printf("discount.Apply: type=%s original=%s discount=%s final=%s",
		discountType,
		currency.Format(originalAmount, true),
		currency.Format(totalDiscount, true),
		currency.Format(final.TotalAmount, true))

	return domain.DiscountResult{
		Original: original,
		Discount: domain.DiscountAmounts{
			Type:   discountType,
			Value:  discountValue,
			OnBase: discountOnBase,
			OnGST:  original.TotalGST.Sub(final.TotalGST),
			Total:  totalDiscount,
		},
		Final: final,
		Savings: domain.Savings{
			Amount:     totalDiscount,
			Percentage: savingsPct,
		},
	}, nil
}

// ApplyBulk selects the deepest qualifying quantity tier (the largest MinQty
// not exceeding quantity) and applies its percentage discount to the order
// total. With no qualifying tier the original pricing passes through
// unchanged.
func ApplyBulk(
	itemPrice decimal.Decimal,
	quantity int,
	tiers []domain.DiscountTier,
	gstRate decimal.Decimal,
	billingStateCode string,
	shippingStateCode string,
) (domain.BulkDiscountResult, error) {
	if err := currency.Validate(itemPrice); err != nil {
		return domain.BulkDiscountResult{}, domain.Invalidf("invalid item price: %v", err)
	}
	if quantity <= 0 {
		return domain.BulkDiscountResult{}, domain.Invalidf("quantity must be positive: %d", quantity)
	}

	originalTotal := itemPrice.Mul(decimal.NewFromInt(int64(quantity)))

	var applied *domain.DiscountTier
	if len(tiers) > 0 {
		sorted := make([]domain.DiscountTier, len(tiers))
		copy(sorted, tiers)
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].MinQty > sorted[j].MinQty
		})
		for i := range sorted {
			if quantity >= sorted[i].MinQty {
				applied = &sorted[i]
				break
			}
		}
	}

	result := domain.BulkDiscountResult{
		ItemPrice:       itemPrice,
		Quantity:        quantity,
		OriginalTotal:   originalTotal,
		DiscountPercent: decimal.Zero,
		FinalTotal:      originalTotal,
		FinalPerItem:    itemPrice,
	}
	if applied == nil {
		return result, nil
	}

	details, err := Apply(
		originalTotal, applied.DiscountPct, domain.DiscountPercentage,
		gstRate, billingStateCode, shippingStateCode,
	)
	if err != nil {
		return domain.BulkDiscountResult{}, err
	}

	result.AppliedTier = applied
	result.DiscountPercent = applied.DiscountPct
	result.Details = &details
	result.FinalTotal = details.Final.TotalAmount
	result.FinalPerItem = details.Final.TotalAmount.
		Div(decimal.NewFromInt(int64(quantity))).Round(2)

	log.Printf("discount.ApplyBulk: qty=%d tier_min=%d pct=%s saved=%s",
		quantity, applied.MinQty, applied.DiscountPct,
		currency.Format(originalTotal.Sub(result.FinalTotal), true))

	return result, nil
}

// ValidateEligibility checks whether a discount code can be applied to an
// order amount. minOrderValue is optional (nil skips the check).
func ValidateEligibility(orderAmount decimal.Decimal, code string, minOrderValue *decimal.Decimal) error {
	if err := currency.Validate(orderAmount); err != nil {
		return err
	}
	if minOrderValue != nil && orderAmount.LessThan(*minOrderValue) {
		return domain.Invalidf("order amount %s is below minimum %s for discount '%s'",
			currency.Format(orderAmount, true), currency.Format(*minOrderValue, true), code)
	}
	if isBlank(code) {
		return domain.Invalidf("discount code is required")
	}
	return nil
}

// Clamp caps a discount amount at max, quantizing the result to two
// decimals. Used by callers enforcing per-coupon ceilings.
func Clamp(amount, max decimal.Decimal) decimal.Decimal {
	if amount.GreaterThan(max) {
		return max.Round(2)
	}
	return amount.Round(2)
}

func isBlank(s string) bool {
	for _, r := range s {
		if r != ' ' && r != '\t' && r != '\n' && r != '\r' {
			return false
		}
	}
	return true
}
