// Package payment implements the UPI payment flow against a mock gateway.
package payment

import (
	"strings"

	"rupaya/internal/domain"
)

// ValidateVPA validates a UPI Virtual Payment Address of the form
// username@handle: exactly one "@", username at least 3 characters, handle
// at least 2. Validation happens before any gateway call, so a malformed
// VPA is a caller error, never a gateway failure.
func ValidateVPA(vpa string) error {
	if vpa == "" {
		return domain.Invalidf("UPI VPA is required")
	}

	vpa = strings.TrimSpace(vpa)

	if !strings.Contains(vpa, "@") {
		return domain.Invalidf("UPI VPA must contain @ symbol")
	}

	parts := strings.Split(vpa, "@")
	if len(parts) != 2 {
		return domain.Invalidf("UPI VPA format is invalid (must be username@bank)")
	}

	username, handle := parts[0], parts[1]
	if len(username) < 3 {
		return domain.Invalidf("UPI VPA username must be at least 3 characters")
	}
	if len(handle) < 2 {
		return domain.Invalidf("UPI VPA bank code is invalid")
	}
	return nil
}

// maskVPA redacts a VPA for logging. Payment identifiers never reach logs in
// the clear.
func maskVPA(vpa string) string {
	if _, handle, ok := strings.Cut(vpa, "@"); ok {
		return "***@" + handle
	}
	return "***"
}
