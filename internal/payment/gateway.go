package payment

import (
	"log"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"rupaya/internal/domain"
)

// MockGateway is an in-memory stand-in for the Razorpay UPI endpoints. It
// tracks orders and payments for its own lifetime only; nothing is
// persisted.
//
// MockGateway is NOT safe for concurrent use. The design assumes a single
// logical caller per instance; share it across goroutines only behind
// external locking.
type MockGateway struct {
	minAmount decimal.Decimal
	orders    map[string]*domain.Order
	payments  map[string]*domain.Payment
}

// NewMockGateway creates an empty gateway with the given minimum capturable
// amount.
func NewMockGateway(minAmount decimal.Decimal) *MockGateway {
	return &MockGateway{
		minAmount: minAmount,
		orders:    make(map[string]*domain.Order),
		payments:  make(map[string]*domain.Payment),
	}
}

// CreateOrder registers a gateway order and returns it in created status.
func (g *MockGateway) CreateOrder(amount decimal.Decimal, receipt string) *domain.Order {
	order := &domain.Order{
		ID:       "order_" + shortID(),
		Amount:   amount,
		Currency: domain.CurrencyINR,
		Receipt:  receipt,
		Status:   domain.OrderStatusCreated,
	}
	g.orders[order.ID] = order
	log.Printf("payment.MockGateway: order created id=%s amount=%s receipt=%s",
		order.ID, amount, receipt)
	return order
}

// Order returns a previously created order.
func (g *MockGateway) Order(orderID string) (*domain.Order, bool) {
	o, ok := g.orders[orderID]
	return o, ok
}

// Payment returns a previously recorded payment attempt.
func (g *MockGateway) Payment(paymentID string) (*domain.Payment, bool) {
	p, ok := g.payments[paymentID]
	return p, ok
}

// CaptureUPIPayment attempts to capture a UPI payment for an order. Every
// call records a fresh payment in a terminal state: captured on success, or
// failed with ORDER_NOT_FOUND / AMOUNT_TOO_LOW. Declines are reported on the
// payment record, not as errors.
func (g *MockGateway) CaptureUPIPayment(orderID string, amount decimal.Decimal, vpa string) *domain.Payment {
	order, ok := g.orders[orderID]
	if !ok {
		return g.failPayment(orderID, amount, vpa,
			domain.GatewayCodeOrderNotFound, "Order not found")
	}

	if amount.LessThan(g.minAmount) {
		return g.failPayment(orderID, amount, vpa,
			domain.GatewayCodeAmountTooLow, "Amount below minimum threshold")
	}

	pmt := &domain.Payment{
		ID:       "pay_" + shortID(),
		OrderID:  orderID,
		Amount:   amount,
		Currency: domain.CurrencyINR,
		VPA:      vpa,
		Status:   domain.PaymentStatusCaptured,
	}
	g.payments[pmt.ID] = pmt
	order.Status = domain.OrderStatusPaid

	log.Printf("payment.MockGateway: payment captured id=%s order=%s amount=%s vpa=%s",
		pmt.ID, orderID, amount, maskVPA(vpa))
	return pmt
}

func (g *MockGateway) failPayment(orderID string, amount decimal.Decimal, vpa, code, desc string) *domain.Payment {
	pmt := &domain.Payment{
		ID:               "pay_" + shortID(),
		OrderID:          orderID,
		Amount:           amount,
		Currency:         domain.CurrencyINR,
		VPA:              vpa,
		Status:           domain.PaymentStatusFailed,
		ErrorCode:        code,
		ErrorDescription: desc,
	}
	g.payments[pmt.ID] = pmt
	log.Printf("payment.MockGateway: payment failed id=%s order=%s code=%s",
		pmt.ID, orderID, code)
	return pmt
}

func shortID() string {
	return strings.ReplaceAll(uuid.New().String(), "-", "")[:14]
}
