package money

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromProfile(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"INR (₹)", "INR"},
		{"USD ($)", "USD"},
		{"EUR (€)", "EUR"},
		{"GBP (£)", "GBP"},
		{"", "INR"},
		{"JPY (¥)", "INR"}, // unsupported falls back
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FromProfile(tt.in).Code)
	}
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "$1500", USD.Format(1500))
	assert.Equal(t, "$1500.50", USD.Format(1500.5))
	assert.Equal(t, "₹0", INR.Format(0))
	assert.Equal(t, "₹-42.25", INR.Format(-42.25))
}

func TestFormatPercent(t *testing.T) {
	assert.Equal(t, "350.00%", FormatPercent(350))
	assert.Equal(t, "433.33%", FormatPercent(433.3333333))
	assert.Equal(t, "0.00%", FormatPercent(0))
}

func TestLineAmount(t *testing.T) {
	assert.Equal(t, 250.0, LineAmount(2.5, 100))
	assert.Equal(t, 0.1, LineAmount(1, 0.1))
	// decimal math avoids the float drift of 3×0.1
	assert.Equal(t, 0.3, LineAmount(3, 0.1))
}
