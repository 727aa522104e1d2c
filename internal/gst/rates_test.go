package gst_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"rupaya/internal/gst"
)

func TestRate_Decimal(t *testing.T) {
	assert.True(t, dec("5.00").Equal(gst.RateFive.Decimal()))
	assert.True(t, dec("12.00").Equal(gst.RateTwelve.Decimal()))
	assert.True(t, dec("18.00").Equal(gst.RateEighteen.Decimal()))
	assert.True(t, dec("28.00").Equal(gst.RateTwentyEight.Decimal()))
	assert.True(t, gst.RateZero.Decimal().IsZero())
}

func TestRateForCategory(t *testing.T) {
	tests := []struct {
		category string
		want     gst.Rate
	}{
		{"Packaged Food", gst.RateFive},
		{"grocery staples", gst.RateFive},
		{"Medicine", gst.RateFive},
		{"Men's Clothing", gst.RateTwelve},
		{"footwear", gst.RateTwelve},
		{"Books", gst.RateTwelve},
		{"Luxury Watches", gst.RateTwentyEight},
		{"Consumer Electronics", gst.RateTwentyEight},
		{"Furniture", gst.RateEighteen},
		{"", gst.RateEighteen},
	}
	for _, tt := range tests {
		t.Run(tt.category, func(t *testing.T) {
			assert.Equal(t, tt.want, gst.RateForCategory(tt.category))
		})
	}
}
