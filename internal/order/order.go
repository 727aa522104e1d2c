// Package order assembles India-specific order data: compliance checks,
// invoice-ready GST breakdowns, and per-line tax rollups.
package order

import (
	"fmt"
	"log"
	"strings"

	"github.com/shopspring/decimal"

	"rupaya/internal/currency"
	"rupaya/internal/domain"
	"rupaya/internal/gst"
)

// ValidateOrderData checks an order for Indian tax compliance: a valid INR
// amount, IN-country billing/shipping (empty country skips the check), and a
// structurally valid customer GSTIN when one is supplied.
func ValidateOrderData(orderAmount decimal.Decimal, billingCountry, shippingCountry, customerGSTIN string) error {
	if err := currency.Validate(orderAmount); err != nil {
		return err
	}
	if billingCountry != "" && !strings.EqualFold(billingCountry, "IN") {
		return domain.Invalidf("billing address must be in India, got: %s", billingCountry)
	}
	if shippingCountry != "" && !strings.EqualFold(shippingCountry, "IN") {
		return domain.Invalidf("shipping address must be in India, got: %s", shippingCountry)
	}
	if customerGSTIN != "" {
		if err := gst.ValidateGSTIN(customerGSTIN); err != nil {
			return domain.Invalidf("invalid customer GSTIN: %v", err)
		}
	}
	return nil
}

// Build produces the invoice-ready order view. A customer GSTIN marks the
// order B2B; place of supply is the shipping state, falling back to billing.
func Build(
	orderID, orderNumber string,
	amount, gstRate decimal.Decimal,
	billingStateCode, shippingStateCode string,
	customerGSTIN string,
	amountIncludesTax bool,
) (domain.OrderData, error) {
	isB2B := false
	if customerGSTIN != "" {
		if err := gst.ValidateGSTIN(customerGSTIN); err != nil {
			return domain.OrderData{}, domain.Invalidf("invalid customer GSTIN: %v", err)
		}
		isB2B = true
	}

	breakdown, err := gst.Calculate(amount, gstRate, billingStateCode, shippingStateCode, amountIncludesTax)
	if err != nil {
		return domain.OrderData{}, err
	}

	placeOfSupply := shippingStateCode
	if placeOfSupply == "" {
		placeOfSupply = billingStateCode
	}

	data := domain.OrderData{
		OrderID:       orderID,
		InvoiceNumber: fmt.Sprintf("INV-%s", orderNumber),
		CustomerGSTIN: customerGSTIN,
		IsB2B:         isB2B,
		PlaceOfSupply: placeOfSupply,
		GST:           breakdown,
	}

	log.Printf("order.Build: %s amount=%s gst=%s b2b=%t",
		data.InvoiceNumber,
		currency.Format(breakdown.TotalAmount, true),
		currency.Format(breakdown.TotalGST, true),
		isB2B)

	return data, nil
}

// LinesBreakdown computes the GST decomposition for each order line (prices
// tax-inclusive) and rolls the figures up into order totals. Line quantities
// must be positive.
func LinesBreakdown(
	lines []domain.OrderLine,
	gstRate decimal.Decimal,
	billingStateCode, shippingStateCode string,
) (domain.OrderGSTBreakdown, error) {
	out := domain.OrderGSTBreakdown{
		Lines:       make([]domain.LineBreakdown, 0, len(lines)),
		BaseAmount:  decimal.Zero,
		CGST:        decimal.Zero,
		SGST:        decimal.Zero,
		IGST:        decimal.Zero,
		TotalGST:    decimal.Zero,
		TotalAmount: decimal.Zero,
	}

	for i := range lines {
		line := &lines[i]
		if line.Quantity <= 0 {
			return domain.OrderGSTBreakdown{}, domain.Invalidf(
				"item quantity must be positive for line %s", line.ID)
		}

		lineGST, err := gst.Calculate(line.TotalPrice, gstRate, billingStateCode, shippingStateCode, true)
		if err != nil {
			return domain.OrderGSTBreakdown{}, err
		}

		out.BaseAmount = out.BaseAmount.Add(lineGST.BaseAmount)
		out.CGST = out.CGST.Add(lineGST.CGST)
		out.SGST = out.SGST.Add(lineGST.SGST)
		out.IGST = out.IGST.Add(lineGST.IGST)
		out.TotalGST = out.TotalGST.Add(lineGST.TotalGST)

		out.Lines = append(out.Lines, domain.LineBreakdown{
			LineID:      line.ID,
			ProductName: line.ProductName,
			Quantity:    line.Quantity,
			BaseAmount:  lineGST.BaseAmount,
			GSTRate:     gstRate,
			GSTAmount:   lineGST.TotalGST,
			TotalAmount: lineGST.TotalAmount,
		})
	}

	out.TotalAmount = out.BaseAmount.Add(out.TotalGST)
	out.IsInterState = out.IGST.Sign() > 0
	return out, nil
}
