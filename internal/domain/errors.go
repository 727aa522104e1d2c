package domain

import "fmt"

// ValidationError reports malformed caller input. Messages are deterministic
// and safe to display to end users; callers never retry these.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// Invalidf builds a ValidationError with a formatted message.
func Invalidf(format string, args ...any) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// Gateway failure codes surfaced by the payment gateway.
const (
	GatewayCodeOrderNotFound = "ORDER_NOT_FOUND"
	GatewayCodeAmountTooLow  = "AMOUNT_TOO_LOW"
	GatewayCodeServerError   = "SERVER_ERROR"
)

// GatewayError reports an unexpected payment gateway failure. Business-rule
// declines (unknown order, below-minimum amount) are carried on the Payment
// record itself, not as errors.
type GatewayError struct {
	Code        string
	Description string
}

func (e *GatewayError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("%s: %s", e.Code, e.Description)
	}
	return e.Description
}
