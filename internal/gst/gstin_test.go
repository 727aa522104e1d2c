package gst_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rupaya/internal/gst"
)

func TestValidateGSTIN_Valid(t *testing.T) {
	valid := []string{
		"27AAPFU0939F1ZT",
		"29AAACI1681G1ZS",
		"07AAACP0165G1ZP",
		"24AAACC1206D1ZJ",
	}
	for _, gstin := range valid {
		t.Run(gstin, func(t *testing.T) {
			assert.NoError(t, gst.ValidateGSTIN(gstin))
		})
	}
}

func TestValidateGSTIN_NormalizesCaseAndWhitespace(t *testing.T) {
	assert.NoError(t, gst.ValidateGSTIN("  27aapfu0939f1zt  "))
}

func TestValidateGSTIN_Required(t *testing.T) {
	err := gst.ValidateGSTIN("")
	require.Error(t, err)
	assert.Equal(t, "GSTIN is required", err.Error())
}

func TestValidateGSTIN_Length(t *testing.T) {
	err := gst.ValidateGSTIN("27AAPFU0939F1Z")
	require.Error(t, err)
	assert.Equal(t, "GSTIN must be 15 characters long, got 14", err.Error())
}

func TestValidateGSTIN_Format(t *testing.T) {
	tests := []struct {
		name  string
		gstin string
	}{
		{"letters in state code", "2XAAPFU0939F1ZT"},
		{"digits in PAN letters", "27AAP1U0939F1ZT"},
		{"missing Z at position 14", "27AAPFU0939F1XT"},
		{"zero entity code", "27AAPFU0939F0ZT"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := gst.ValidateGSTIN(tt.gstin)
			require.Error(t, err)
			assert.Equal(t, "GSTIN format is invalid", err.Error())
		})
	}
}

func TestValidateGSTIN_StateCode(t *testing.T) {
	err := gst.ValidateGSTIN("99AAPFU0939F1ZD")
	require.Error(t, err)
	assert.Equal(t, "invalid state code: 99", err.Error())

	err = gst.ValidateGSTIN("00AAPFU0939F1ZT")
	require.Error(t, err)
	assert.Equal(t, "invalid state code: 00", err.Error())
}

func TestValidateGSTIN_Checksum(t *testing.T) {
	err := gst.ValidateGSTIN("27AAPFU0939F1ZV")
	require.Error(t, err)
	assert.Equal(t, "GSTIN checksum validation failed", err.Error())
}

func TestStateCodeFromGSTIN(t *testing.T) {
	code, err := gst.StateCodeFromGSTIN("27AAPFU0939F1ZT")
	require.NoError(t, err)
	assert.Equal(t, "27", code)

	_, err = gst.StateCodeFromGSTIN("2")
	assert.Error(t, err)
}
