package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"finance-ledger-go/internal/models"
)

func TestClassifyIncome(t *testing.T) {
	tests := []struct {
		purpose string
		want    string
	}{
		{"Freelance design work", "Freelancing"},
		{"contract gig", "Freelancing"},
		{"Dividend payout", "Investments"},
		{"stock investment", "Investments"},
		{"side hustle", "Side Business"},
		{"small business", "Side Business"},
		{"rent from flat", "Rental Income"},
		{"property income", "Rental Income"},
		{"", "Salary"},
		{"   ", "Salary"},
		{"monthly pay", "Salary"},
	}

	for _, tt := range tests {
		t.Run(tt.purpose, func(t *testing.T) {
			assert.Equal(t, tt.want, classifyIncome(tt.purpose))
		})
	}
}

func TestClassifyIncome_PriorityOrder(t *testing.T) {
	// "freelance" outranks "invest" because Freelancing comes first in the
	// rule list, regardless of keyword positions in the text.
	assert.Equal(t, "Freelancing", classifyIncome("investment freelance"))
}

func TestClassifySpending(t *testing.T) {
	tests := []struct {
		purpose string
		want    string
	}{
		{"Food delivery", "Food"},
		{"travel tickets", "Travel"},
		{"Rent for May", "Rent"},
		{"entertainment night", "Entertainment"},
		{"utilities bill", "Utilities"},
		{"shopping spree", "Shopping"},
		{"healthcare checkup", "Healthcare"},
		{"education fees", "Education"},
		{"", "Others"},
		{"misc stuff", "Others"},
	}

	for _, tt := range tests {
		t.Run(tt.purpose, func(t *testing.T) {
			assert.Equal(t, tt.want, classifySpending(tt.purpose))
		})
	}
}

func TestIncomeSources(t *testing.T) {
	txs := []models.Transaction{
		{
			Date:       "2025-05-01",
			Earnings:   1000, // untagged earnings land in Investments
			ToBeCredit: 200,  // uncredited amounts land in Freelancing
			SalaryEntries: []models.SalaryEntry{
				{Purpose: "Freelance design work", Amount: 300},
				{Purpose: "", Amount: 500},
			},
		},
	}

	shares := IncomeSources(txs)
	byName := map[string]CategoryShare{}
	for _, s := range shares {
		byName[s.Name] = s
	}

	require.Contains(t, byName, "Investments")
	require.Contains(t, byName, "Freelancing")
	require.Contains(t, byName, "Salary")
	assert.Equal(t, 1000.0, byName["Investments"].Amount)
	assert.Equal(t, 500.0, byName["Freelancing"].Amount) // 200 credit + 300 entry
	assert.Equal(t, 500.0, byName["Salary"].Amount)

	var pct float64
	for _, s := range shares {
		pct += s.Percentage
	}
	assert.InDelta(t, 100.0, pct, 0.0001)
}

func TestSpendingBreakdown_FiltersZeroCategories(t *testing.T) {
	txs := []models.Transaction{
		{
			Date:     "2025-05-01",
			Spending: 150,
			SalaryEntries: []models.SalaryEntry{
				{Purpose: "food delivery", Amount: 50},
			},
		},
	}

	shares := SpendingBreakdown(txs)
	require.Len(t, shares, 2)
	assert.Equal(t, "Others", shares[0].Name) // largest first
	assert.Equal(t, 150.0, shares[0].Amount)
	assert.InDelta(t, 75.0, shares[0].Percentage, 0.0001)
	assert.Equal(t, "Food", shares[1].Name)
	assert.InDelta(t, 25.0, shares[1].Percentage, 0.0001)
}

func TestSpendingBreakdown_Empty(t *testing.T) {
	assert.Empty(t, SpendingBreakdown(nil))
}
