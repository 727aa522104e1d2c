package payment

import (
	"log"

	"github.com/shopspring/decimal"

	"rupaya/internal/config"
	"rupaya/internal/domain"
)

// Gateway is the surface the payment flow needs from a UPI gateway. The mock
// implements it; a real Razorpay adapter would accept the same request shape
// and return a status plus transaction id.
type Gateway interface {
	CreateOrder(amount decimal.Decimal, receipt string) *domain.Order
	CaptureUPIPayment(orderID string, amount decimal.Decimal, vpa string) *domain.Payment
}

// Service runs the UPI payment flow: validate the input, create a gateway
// order, capture the payment, and map the outcome into a PaymentResult.
type Service struct {
	gateway Gateway
}

// NewService creates a payment Service backed by a fresh mock gateway
// configured from gateway settings.
func NewService(cfg *config.GatewayConfig) *Service {
	return &Service{gateway: NewMockGateway(cfg.MinCaptureAmount())}
}

// NewServiceWithGateway creates a Service over an existing gateway, letting
// tests seed orders directly.
func NewServiceWithGateway(gateway Gateway) *Service {
	return &Service{gateway: gateway}
}

// ProcessUPIPayment executes one payment attempt. Malformed input returns a
// ValidationError; gateway declines come back inside the PaymentResult so
// callers branch on Success rather than unwrapping errors. Each call is a
// single deterministic attempt with no retry.
func (s *Service) ProcessUPIPayment(in domain.PaymentInput) (domain.PaymentResult, error) {
	req, err := BuildUPIRequest(in)
	if err != nil {
		return domain.PaymentResult{}, err
	}

	order := s.gateway.CreateOrder(in.Amount, req.OrderID)
	pmt := s.gateway.CaptureUPIPayment(order.ID, in.Amount, in.VPA)

	if pmt.Status != domain.PaymentStatusCaptured {
		log.Printf("payment.Service: capture failed order=%s code=%s", order.ID, pmt.ErrorCode)
		return domain.PaymentResult{
			Success:      false,
			Status:       pmt.Status,
			PaymentID:    pmt.ID,
			OrderID:      order.ID,
			Amount:       in.Amount,
			ErrorCode:    pmt.ErrorCode,
			ErrorMessage: pmt.ErrorDescription,
		}, nil
	}

	log.Printf("payment.Service: captured payment=%s order=%s", pmt.ID, order.ID)
	return domain.PaymentResult{
		Success:   true,
		Status:    pmt.Status,
		PaymentID: pmt.ID,
		OrderID:   order.ID,
		Amount:    in.Amount,
	}, nil
}

// CapturePayment attempts to capture against an already-created gateway
// order. It validates the VPA up front (fatal on malformed input) and
// returns declines as structured results.
func (s *Service) CapturePayment(orderID string, in domain.PaymentInput) (domain.PaymentResult, error) {
	if err := ValidateVPA(in.VPA); err != nil {
		return domain.PaymentResult{}, err
	}

	pmt := s.gateway.CaptureUPIPayment(orderID, in.Amount, in.VPA)

	result := domain.PaymentResult{
		Success:      pmt.Status == domain.PaymentStatusCaptured,
		Status:       pmt.Status,
		PaymentID:    pmt.ID,
		OrderID:      orderID,
		Amount:       in.Amount,
		ErrorCode:    pmt.ErrorCode,
		ErrorMessage: pmt.ErrorDescription,
	}
	return result, nil
}
