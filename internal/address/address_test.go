package address_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rupaya/internal/address"
)

func TestValidatePincode(t *testing.T) {
	valid := []string{"400001", "110001", "560 001", "560-001", " 700001 "}
	for _, pin := range valid {
		t.Run(pin, func(t *testing.T) {
			assert.NoError(t, address.ValidatePincode(pin))
		})
	}
}

func TestValidatePincode_Errors(t *testing.T) {
	err := address.ValidatePincode("")
	require.Error(t, err)
	assert.Equal(t, "PIN code is required", err.Error())

	invalid := []string{"040001", "12345", "1234567", "4000A1"}
	for _, pin := range invalid {
		t.Run(pin, func(t *testing.T) {
			err := address.ValidatePincode(pin)
			require.Error(t, err)
			assert.Equal(t, "PIN code must be 6 digits and cannot start with 0", err.Error())
		})
	}
}

func TestValidateState(t *testing.T) {
	tests := []struct {
		name     string
		state    string
		wantCode string
		wantName string
	}{
		{"full name", "Maharashtra", "27", "Maharashtra"},
		{"lowercase name", "karnataka", "29", "Karnataka"},
		{"two-digit code", "07", "07", "Delhi"},
		{"trimmed input", "  Kerala  ", "32", "Kerala"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, name, err := address.ValidateState(tt.state)
			require.NoError(t, err)
			assert.Equal(t, tt.wantCode, code)
			assert.Equal(t, tt.wantName, name)
		})
	}
}

func TestValidateState_Errors(t *testing.T) {
	_, _, err := address.ValidateState("")
	require.Error(t, err)
	assert.Equal(t, "state is required", err.Error())

	_, _, err = address.ValidateState("99")
	require.Error(t, err)
	assert.Equal(t, "invalid state code: 99", err.Error())

	_, _, err = address.ValidateState("Atlantis")
	require.Error(t, err)
	assert.Equal(t, "invalid state name or code: Atlantis", err.Error())
}

func TestValidate(t *testing.T) {
	got, err := address.Validate(
		" 12 MG Road ", "Near City Mall", " Mumbai ", "Maharashtra", "400 001", "IN",
	)
	require.NoError(t, err)

	assert.Equal(t, "12 MG Road", got.StreetAddress1)
	assert.Equal(t, "Near City Mall", got.StreetAddress2)
	assert.Equal(t, "Mumbai", got.City)
	assert.Equal(t, "Maharashtra", got.State)
	assert.Equal(t, "27", got.StateCode)
	assert.Equal(t, "400001", got.PostalCode)
	assert.Equal(t, "IN", got.Country)
}

func TestValidate_LowercaseCountry(t *testing.T) {
	_, err := address.Validate("12 MG Road", "", "Mumbai", "Maharashtra", "400001", "in")
	assert.NoError(t, err)
}

func TestValidate_WrongCountryFailsImmediately(t *testing.T) {
	_, err := address.Validate("", "", "", "", "", "US")
	require.Error(t, err)
	assert.Equal(t, "invalid country code for Indian address: US", err.Error())
}

func TestValidate_CollectsAllFieldErrors(t *testing.T) {
	_, err := address.Validate("", "", "", "Atlantis", "0400", "IN")
	require.Error(t, err)

	msg := err.Error()
	assert.Contains(t, msg, "street address is required")
	assert.Contains(t, msg, "city is required")
	assert.Contains(t, msg, "PIN code must be 6 digits and cannot start with 0")
	assert.Contains(t, msg, "invalid state name or code: Atlantis")
	assert.Contains(t, msg, "; ")
}
