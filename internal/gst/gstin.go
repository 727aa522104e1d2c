package gst

import (
	"log"
	"regexp"
	"strconv"
	"strings"

	"rupaya/internal/domain"
)

// GSTIN format: 2-digit state code + 10-char PAN + entity code + literal 'Z'
// + checksum character.
var gstinPattern = regexp.MustCompile(`^\d{2}[A-Z]{5}\d{4}[A-Z][1-9A-Z]Z[0-9A-Z]$`)

const checksumAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// ValidateGSTIN validates a GST Identification Number. Checks run in order
// and short-circuit: presence, length, format, state code, checksum. The
// input is trimmed and uppercased before any structural check.
func ValidateGSTIN(gstin string) error {
	if gstin == "" {
		return domain.Invalidf("GSTIN is required")
	}

	gstin = strings.ToUpper(strings.TrimSpace(gstin))

	if len(gstin) != 15 {
		return domain.Invalidf("GSTIN must be 15 characters long, got %d", len(gstin))
	}

	if !gstinPattern.MatchString(gstin) {
		return domain.Invalidf("GSTIN format is invalid")
	}

	stateCode := gstin[:2]
	code, err := strconv.Atoi(stateCode)
	if err != nil || code < 1 || code > 38 {
		return domain.Invalidf("invalid state code: %s", stateCode)
	}

	if !validChecksum(gstin) {
		log.Printf("gst.ValidateGSTIN: checksum mismatch for %s", gstin)
		return domain.Invalidf("GSTIN checksum validation failed")
	}

	return nil
}

// validChecksum verifies the 15th character using the mod-36 scheme: each of
// the first 14 characters maps into the 0-9A-Z alphabet, values at even
// (0-indexed) positions are doubled, and quotient plus remainder by 36 are
// accumulated.
func validChecksum(gstin string) bool {
	sum := 0
	for i := 0; i < 14; i++ {
		v := strings.IndexByte(checksumAlphabet, gstin[i])
		if v < 0 {
			return false
		}
		if i%2 == 0 {
			v *= 2
		}
		sum += v/36 + v%36
	}
	expected := checksumAlphabet[(36-sum%36)%36]
	return gstin[14] == expected
}

// StateCodeFromGSTIN extracts the two-digit state code prefix. It does not
// re-run full validation; callers holding unvalidated input should call
// ValidateGSTIN first.
func StateCodeFromGSTIN(gstin string) (string, error) {
	if len(gstin) < 2 {
		return "", domain.Invalidf("invalid GSTIN for state code extraction")
	}
	return gstin[:2], nil
}
