package export

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"finance-ledger-go/internal/analytics"
)

func TestCSVRoundTrip(t *testing.T) {
	rows := RowsFromBuckets([]analytics.Bucket{
		{Label: "Jan", Investment: 150, Earnings: 800, Spending: 0, ToBeCredit: 0, Salary: 0, Profit: 650, ROI: 433.333333},
		{Label: "Feb", Investment: 0, Earnings: 0, Spending: 42.75, ToBeCredit: 10, Salary: 1000, Profit: 967.25, ROI: 0},
	})

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, rows))

	back, err := ReadCSV(&buf)
	require.NoError(t, err)
	require.Len(t, back, 2)

	// Numeric totals survive the formatting-only transform exactly.
	assert.Equal(t, rows[0].Investment, back[0].Investment)
	assert.Equal(t, rows[0].Earnings, back[0].Earnings)
	assert.Equal(t, rows[0].Profit, back[0].Profit)
	assert.Equal(t, rows[1].Spending, back[1].Spending)
	assert.Equal(t, rows[1].Salary, back[1].Salary)
	assert.Equal(t, "433.33", back[0].ROI)
	assert.Equal(t, "0.00", back[1].ROI)
}

func TestWriteCSV_Header(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, nil))
	assert.Equal(t, "Period,Investment,Earnings,Spending,To Be Credited,Salary,Profit,ROI", strings.TrimSpace(buf.String()))
}

func TestReadCSV_Malformed(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{name: "empty input", in: ""},
		{name: "bad amount", in: "Period,Investment,Earnings,Spending,To Be Credited,Salary,Profit,ROI\nJan,abc,0,0,0,0,0,0.00\n"},
		{name: "wrong column count", in: "Period,Investment\nJan,1\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadCSV(strings.NewReader(tt.in))
			assert.Error(t, err)
		})
	}
}
