package gst_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rupaya/internal/gst"
)

func TestStateNameForCode(t *testing.T) {
	name, ok := gst.StateNameForCode("27")
	require.True(t, ok)
	assert.Equal(t, "Maharashtra", name)

	name, ok = gst.StateNameForCode("38")
	require.True(t, ok)
	assert.Equal(t, "Ladakh", name)

	_, ok = gst.StateNameForCode("99")
	assert.False(t, ok)
}

func TestStateNameForCode_AndhraPradeshDualCodes(t *testing.T) {
	name, ok := gst.StateNameForCode("28")
	require.True(t, ok)
	assert.Equal(t, "Andhra Pradesh", name)

	name, ok = gst.StateNameForCode("37")
	require.True(t, ok)
	assert.Equal(t, "Andhra Pradesh", name)
}

func TestStateCodeForName(t *testing.T) {
	tests := []struct {
		name  string
		state string
		want  string
	}{
		{"exact name", "Maharashtra", "27"},
		{"lowercase", "tamil nadu", "33"},
		{"uppercase", "KERALA", "32"},
		{"surrounding whitespace", "  Delhi  ", "07"},
		{"two-digit code passthrough", "07", "07"},
		{"partial name", "Jammu", "01"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, ok := gst.StateCodeForName(tt.state)
			require.True(t, ok)
			assert.Equal(t, tt.want, code)
		})
	}
}

// "Andhra Pradesh" appears at both 28 and 37; name lookup takes the first
// registry entry.
func TestStateCodeForName_AndhraPradeshResolvesTo28(t *testing.T) {
	code, ok := gst.StateCodeForName("Andhra Pradesh")
	require.True(t, ok)
	assert.Equal(t, "28", code)
}

func TestStateCodeForName_NotFound(t *testing.T) {
	_, ok := gst.StateCodeForName("Atlantis")
	assert.False(t, ok)

	_, ok = gst.StateCodeForName("99")
	assert.False(t, ok)

	_, ok = gst.StateCodeForName("")
	assert.False(t, ok)
}
