package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"finance-ledger-go/internal/models"
)

func TestMonthlyInterest(t *testing.T) {
	// 12% annual on 10000 is 100 a month.
	assert.InDelta(t, 100.0, MonthlyInterest(10000, 12), 0.0001)
	assert.Equal(t, 0.0, MonthlyInterest(0, 12))
}

func TestMonthSummary(t *testing.T) {
	txs := []models.Transaction{
		tx("2025-05-03", 200, 1000, 100, 50, 0),
		tx("2025-05-20", 0, 0, 0, 0, 400),
		tx("2025-04-01", 0, 9999, 0, 0, 0), // other month, excluded
	}

	s := MonthSummary(txs, 2025, time.May, false, CreditCounted)
	assert.Equal(t, 1000.0, s.Income)
	assert.Equal(t, 700.0, s.Expenses) // 300 raw + 400 salary
	assert.Equal(t, 50.0, s.ToBeCredit)
	assert.Equal(t, 400.0, s.Salary)
	// income - raw expenses - salary + toBeCredit
	assert.InDelta(t, 1000-300-400+50, s.Remaining, 0.0001)
	assert.False(t, s.ShowDebt)
}

func TestMonthSummary_DebtInterestSubtractedHereOnly(t *testing.T) {
	txs := []models.Transaction{
		{Date: "2025-05-03", Earnings: 1000, Debt: 10000, InterestRate: 12},
	}

	s := MonthSummary(txs, 2025, time.May, true, CreditCounted)
	assert.Equal(t, 10000.0, s.Debt)
	assert.InDelta(t, 100.0, s.Interest, 0.0001)
	assert.InDelta(t, 900.0, s.Remaining, 0.0001)
	assert.True(t, s.ShowDebt)

	// The chart-level bucket profit must not subtract interest.
	buckets := GroupByMonth(txs, 2025, CreditCounted)
	require.Len(t, buckets, 1)
	assert.Equal(t, 1000.0, buckets[0].Profit)
}

func TestMonthSummary_DebtIgnoredWhenDisabled(t *testing.T) {
	txs := []models.Transaction{
		{Date: "2025-05-03", Earnings: 500, Debt: 10000, InterestRate: 12},
	}

	s := MonthSummary(txs, 2025, time.May, false, CreditCounted)
	assert.Equal(t, 0.0, s.Debt)
	assert.Equal(t, 0.0, s.Interest)
	assert.Equal(t, 500.0, s.Remaining)
}

func TestMonthSummary_CollectsSalaryEntries(t *testing.T) {
	txs := []models.Transaction{
		{
			Date:   "2025-05-03",
			Salary: 900,
			SalaryEntries: []models.SalaryEntry{
				{Name: "Acme", Purpose: "contract work", Amount: 600, Date: "2025-05-03"},
				{Name: "Beta", Purpose: "", Amount: 300, Date: "2025-05-03"},
			},
		},
	}

	s := MonthSummary(txs, 2025, time.May, false, CreditCounted)
	require.Len(t, s.SalaryEntries, 2)
	assert.Equal(t, "Acme", s.SalaryEntries[0].Name)
}

func TestAllAccountsSummary(t *testing.T) {
	byAccount := map[string][]models.Transaction{
		"personal": {tx("2025-01-01", 100, 500, 50, 25, 0)},
		"business": {tx("2024-06-06", 0, 200, 0, 0, 300)},
	}

	s := AllAccountsSummary(byAccount, CreditCounted)
	assert.Equal(t, 700.0, s.Income)
	assert.Equal(t, 150.0, s.Expenses)
	assert.Equal(t, 25.0, s.ToBeCredit)
	assert.Equal(t, 300.0, s.Salary)
	assert.InDelta(t, 700-150+300+25, s.Remaining, 0.0001)
}

func TestCalendarEntries(t *testing.T) {
	txs := []models.Transaction{
		{ID: "t1", Date: "2025-05-03", Earnings: 500, Spending: 100, ToBeCredit: 40},
		{ID: "t2", Date: "2025-05-04", Debt: 10000, InterestRate: 12},
	}

	entries := CalendarEntries(txs, true)
	require.Len(t, entries, 5)

	assert.Equal(t, CalendarEntry{"t1", "2025-05-03", 500, "income"}, entries[0])
	assert.Equal(t, CalendarEntry{"t1", "2025-05-03", -100, "expense"}, entries[1])
	assert.Equal(t, CalendarEntry{"t1", "2025-05-03", 40, "toBeCredit"}, entries[2])
	assert.Equal(t, CalendarEntry{"t2", "2025-05-04", 10000, "debt"}, entries[3])
	assert.Equal(t, "interest", entries[4].Type)
	assert.InDelta(t, -100.0, entries[4].Amount, 0.0001)
}

func TestCalendarEntries_NetFallback(t *testing.T) {
	// Every component zero except an uncredited debt with the feature off:
	// the transaction collapses to one net entry.
	txs := []models.Transaction{
		{ID: "t1", Date: "2025-05-03", Debt: 10000, InterestRate: 12},
	}

	entries := CalendarEntries(txs, false)
	require.Len(t, entries, 1)
	assert.Equal(t, "income", entries[0].Type)
	assert.Equal(t, 0.0, entries[0].Amount)
}

func TestMonthCalendar_FiltersViewedMonth(t *testing.T) {
	txs := []models.Transaction{
		{ID: "t1", Date: "2025-05-03", Earnings: 500},
		{ID: "t2", Date: "2025-06-03", Earnings: 900},
	}

	entries := MonthCalendar(txs, 2025, time.May, false)
	require.Len(t, entries, 1)
	assert.Equal(t, "t1", entries[0].TransactionID)
}
