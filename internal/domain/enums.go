package domain

// DiscountType selects the discount strategy.
type DiscountType string

const (
	DiscountPercentage DiscountType = "percentage"
	DiscountFixed      DiscountType = "fixed"
)

// OrderStatus is the lifecycle of a gateway order.
type OrderStatus string

const (
	OrderStatusCreated OrderStatus = "created"
	OrderStatusPaid    OrderStatus = "paid"
	OrderStatusFailed  OrderStatus = "failed"
)

// PaymentStatus is the lifecycle of a payment attempt. Captured and failed
// are terminal; the mock gateway never leaves a payment in authorized.
type PaymentStatus string

const (
	PaymentStatusCreated    PaymentStatus = "created"
	PaymentStatusAuthorized PaymentStatus = "authorized"
	PaymentStatusCaptured   PaymentStatus = "captured"
	PaymentStatusFailed     PaymentStatus = "failed"
)

// PaymentMethod is the supported payment instrument. Only UPI is implemented.
type PaymentMethod string

const (
	PaymentMethodUPI PaymentMethod = "upi"
)
