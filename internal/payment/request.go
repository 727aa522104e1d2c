package payment

import (
	"fmt"
	"log"

	"github.com/go-playground/validator/v10"

	"rupaya/internal/currency"
	"rupaya/internal/domain"
)

var validate = validator.New()

// BuildUPIRequest validates a payment input and produces the gateway request
// shape (amount in paisa). Currency must be INR, the amount must pass the
// standard INR checks, and the VPA must be well formed.
func BuildUPIRequest(in domain.PaymentInput) (domain.UPIRequest, error) {
	if in.Currency != domain.CurrencyINR {
		return domain.UPIRequest{}, domain.Invalidf(
			"UPI payments only support INR currency, got: %s", in.Currency)
	}
	if in.Method != domain.PaymentMethodUPI {
		return domain.UPIRequest{}, domain.Invalidf(
			"only UPI method is supported, got: %s", in.Method)
	}
	if err := currency.Validate(in.Amount); err != nil {
		return domain.UPIRequest{}, err
	}
	if in.VPA == "" {
		return domain.UPIRequest{}, domain.Invalidf("UPI VPA is required in payment data")
	}
	if err := ValidateVPA(in.VPA); err != nil {
		return domain.UPIRequest{}, err
	}
	if in.OrderID == "" {
		return domain.UPIRequest{}, domain.Invalidf("order id is required")
	}

	paisa, err := currency.ToPaisa(in.Amount)
	if err != nil {
		return domain.UPIRequest{}, err
	}

	req := domain.UPIRequest{
		AmountPaisa: paisa,
		Currency:    domain.CurrencyINR,
		Method:      string(domain.PaymentMethodUPI),
		VPA:         in.VPA,
		OrderID:     in.OrderID,
		Description: in.Description,
	}
	if req.Description == "" {
		req.Description = fmt.Sprintf("Payment for order %s", in.OrderID)
	}

	if err := validate.Struct(&req); err != nil {
		return domain.UPIRequest{}, domain.Invalidf("UPI request is invalid: %v", err)
	}

	log.Printf("payment.BuildUPIRequest: %s to %s for order %s",
		currency.Format(in.Amount, true), maskVPA(in.VPA), in.OrderID)

	return req, nil
}
