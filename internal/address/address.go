// Package address validates Indian postal addresses: PIN codes, states, and
// complete address records.
package address

import (
	"regexp"
	"strings"

	"rupaya/internal/domain"
	"rupaya/internal/gst"
)

// Indian PIN codes are six digits; the leading digit is the postal region
// (1-9), so a leading zero is invalid.
var pincodePattern = regexp.MustCompile(`^[1-9][0-9]{5}$`)

// ValidatePincode checks a PIN code after stripping internal spaces and
// hyphens.
func ValidatePincode(pincode string) error {
	if pincode == "" {
		return domain.Invalidf("PIN code is required")
	}
	cleaned := cleanPincode(pincode)
	if !pincodePattern.MatchString(cleaned) {
		return domain.Invalidf("PIN code must be 6 digits and cannot start with 0")
	}
	return nil
}

// ValidateState resolves a state name or two-digit code to its canonical
// code and name.
func ValidateState(state string) (code, name string, err error) {
	if strings.TrimSpace(state) == "" {
		return "", "", domain.Invalidf("state is required")
	}
	trimmed := strings.TrimSpace(state)

	code, ok := gst.StateCodeForName(trimmed)
	if !ok {
		if len(trimmed) == 2 && isDigits(trimmed) {
			return "", "", domain.Invalidf("invalid state code: %s", trimmed)
		}
		return "", "", domain.Invalidf("invalid state name or code: %s", trimmed)
	}
	name, _ = gst.StateNameForCode(code)
	return code, name, nil
}

// Validate checks a complete Indian address. The country check fails
// immediately; every other rule is evaluated and all failures are joined
// into a single error so the caller sees the full list at once. On success
// the returned record carries trimmed fields, a cleaned PIN code, and the
// canonical state name and code.
func Validate(
	street1, street2, city, state, postalCode, country string,
) (domain.NormalizedAddress, error) {
	if !strings.EqualFold(country, "IN") {
		return domain.NormalizedAddress{}, domain.Invalidf(
			"invalid country code for Indian address: %s", country)
	}

	var errs []string

	if strings.TrimSpace(street1) == "" {
		errs = append(errs, "street address is required")
	}
	if strings.TrimSpace(city) == "" {
		errs = append(errs, "city is required")
	}
	if err := ValidatePincode(postalCode); err != nil {
		errs = append(errs, err.Error())
	}
	stateCode, stateName, stateErr := ValidateState(state)
	if stateErr != nil {
		errs = append(errs, stateErr.Error())
	}

	if len(errs) > 0 {
		return domain.NormalizedAddress{}, domain.Invalidf("%s", strings.Join(errs, "; "))
	}

	return domain.NormalizedAddress{
		StreetAddress1: strings.TrimSpace(street1),
		StreetAddress2: strings.TrimSpace(street2),
		City:           strings.TrimSpace(city),
		State:          stateName,
		StateCode:      stateCode,
		PostalCode:     cleanPincode(postalCode),
		Country:        "IN",
	}, nil
}

func cleanPincode(pincode string) string {
	cleaned := strings.TrimSpace(pincode)
	cleaned = strings.ReplaceAll(cleaned, " ", "")
	return strings.ReplaceAll(cleaned, "-", "")
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(s) > 0
}
