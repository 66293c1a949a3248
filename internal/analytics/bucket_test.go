package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"finance-ledger-go/internal/models"
)

func tx(date string, investment, earnings, spending, toBeCredit, salary float64) models.Transaction {
	return models.Transaction{
		Date:       date,
		Investment: investment,
		Earnings:   earnings,
		Spending:   spending,
		ToBeCredit: toBeCredit,
		Salary:     salary,
	}
}

func TestGroupByDay_SingleDay(t *testing.T) {
	txs := []models.Transaction{
		tx("2025-03-10", 200, 1000, 100, 0, 0),
	}

	buckets := GroupByDay(txs, CreditCounted)
	require.Len(t, buckets, 1)

	b := buckets[0]
	assert.Equal(t, "2025-03-10", b.Label)
	assert.Equal(t, 700.0, b.Profit)
	assert.InDelta(t, 350.0, b.ROI, 0.001)
}

func TestGroupByDay_SortedChronologically(t *testing.T) {
	txs := []models.Transaction{
		tx("2025-03-12", 0, 50, 0, 0, 0),
		tx("2025-01-02", 0, 10, 0, 0, 0),
		tx("2025-03-12", 0, 25, 0, 0, 0),
		tx("2025-02-20", 0, 5, 0, 0, 0),
	}

	buckets := GroupByDay(txs, CreditCounted)
	require.Len(t, buckets, 3)
	assert.Equal(t, "2025-01-02", buckets[0].Label)
	assert.Equal(t, "2025-02-20", buckets[1].Label)
	assert.Equal(t, "2025-03-12", buckets[2].Label)
	assert.Equal(t, 75.0, buckets[2].Earnings)
}

func TestGroupByDay_SkipsMalformedDates(t *testing.T) {
	txs := []models.Transaction{
		tx("not-a-date", 0, 100, 0, 0, 0),
		tx("2025-05-01", 0, 40, 0, 0, 0),
	}

	buckets := GroupByDay(txs, CreditCounted)
	require.Len(t, buckets, 1)
	assert.Equal(t, "2025-05-01", buckets[0].Label)
}

func TestGroupByMonth_SumsWithinMonth(t *testing.T) {
	txs := []models.Transaction{
		tx("2025-04-05", 100, 500, 0, 0, 0),
		tx("2025-04-20", 50, 300, 0, 0, 0),
	}

	buckets := GroupByMonth(txs, 2025, CreditCounted)
	require.Len(t, buckets, 1)

	b := buckets[0]
	assert.Equal(t, "Apr", b.Label)
	assert.Equal(t, 3, b.MonthIndex)
	assert.Equal(t, 150.0, b.Investment)
	assert.Equal(t, 800.0, b.Earnings)
	assert.Equal(t, 650.0, b.Profit)
	assert.InDelta(t, 433.33, b.ROI, 0.01)
}

func TestGroupByMonth_ExcludesOtherYears(t *testing.T) {
	txs := []models.Transaction{
		tx("2024-12-31", 0, 999, 0, 0, 0),
		tx("2025-01-01", 0, 100, 0, 0, 0),
	}

	buckets := GroupByMonth(txs, 2025, CreditCounted)
	require.Len(t, buckets, 1)
	assert.Equal(t, "Jan", buckets[0].Label)
	assert.Equal(t, 100.0, buckets[0].Earnings)
}

func TestMonthlyTable_AlwaysTwelveRows(t *testing.T) {
	tests := []struct {
		name string
		txs  []models.Transaction
	}{
		{name: "no transactions", txs: nil},
		{name: "one month populated", txs: []models.Transaction{tx("2025-06-15", 10, 20, 5, 0, 0)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows := MonthlyTable(tt.txs, 2025, CreditCounted)
			require.Len(t, rows, 12)
			assert.Equal(t, "Jan", rows[0].Label)
			assert.Equal(t, "Dec", rows[11].Label)
			for i, r := range rows {
				assert.Equal(t, i, r.MonthIndex)
			}
		})
	}
}

func TestMonthlyProfitsSumToYearlyProfit(t *testing.T) {
	txs := []models.Transaction{
		tx("2025-01-10", 100, 400, 50, 20, 0),
		tx("2025-03-02", 200, 100, 10, 0, 300),
		tx("2025-03-28", 0, 0, 75, 0, 0),
		tx("2025-11-11", 50, 900, 0, 10, 0),
	}

	var monthSum float64
	for _, b := range GroupByMonth(txs, 2025, CreditCounted) {
		monthSum += b.Profit
	}

	years := GroupByYear(txs, CreditCounted)
	require.Len(t, years, 1)
	assert.InDelta(t, years[0].Profit, monthSum, 0.0001)
}

func TestROIZeroWhenNoInvestment(t *testing.T) {
	tests := []struct {
		name     string
		earnings float64
		spending float64
	}{
		{name: "positive profit", earnings: 500, spending: 0},
		{name: "negative profit", earnings: 0, spending: 500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buckets := GroupByYear([]models.Transaction{
				tx("2025-01-01", 0, tt.earnings, tt.spending, 0, 0),
			}, CreditCounted)
			require.Len(t, buckets, 1)
			assert.Equal(t, 0.0, buckets[0].ROI)
		})
	}
}

func TestGroupByYear_AllTimeAscending(t *testing.T) {
	txs := []models.Transaction{
		tx("2025-06-01", 0, 100, 0, 0, 0),
		tx("2023-01-01", 0, 10, 0, 0, 0),
		tx("2024-12-31", 0, 50, 0, 0, 0),
	}

	buckets := GroupByYear(txs, CreditCounted)
	require.Len(t, buckets, 3)
	assert.Equal(t, []string{"2023", "2024", "2025"}, []string{buckets[0].Label, buckets[1].Label, buckets[2].Label})
}

func TestCreditPolicyChangesProfit(t *testing.T) {
	txs := []models.Transaction{tx("2025-02-01", 0, 100, 0, 40, 0)}

	counted := GroupByYear(txs, CreditCounted)
	deferred := GroupByYear(txs, CreditDeferred)
	require.Len(t, counted, 1)
	require.Len(t, deferred, 1)
	assert.Equal(t, 140.0, counted[0].Profit)
	assert.Equal(t, 100.0, deferred[0].Profit)
}

func TestRankByROI_DescendingAndStable(t *testing.T) {
	buckets := []Bucket{
		{Label: "Jan", ROI: 10},
		{Label: "Feb", ROI: 40},
		{Label: "Mar", ROI: 10},
	}

	ranked := RankByROI(buckets)
	require.Len(t, ranked, 3)
	assert.Equal(t, "Feb", ranked[0].Label)
	assert.Equal(t, "Jan", ranked[1].Label) // equal ROI keeps input order
	assert.Equal(t, "Mar", ranked[2].Label)

	// input untouched
	assert.Equal(t, "Jan", buckets[0].Label)
}

func TestBestWorstByProfit(t *testing.T) {
	tests := []struct {
		name      string
		buckets   []Bucket
		wantBest  string
		wantWorst string
		wantOK    bool
	}{
		{
			name:   "empty",
			wantOK: false,
		},
		{
			name: "distinct profits",
			buckets: []Bucket{
				{Label: "Jan", Profit: 100},
				{Label: "Feb", Profit: -50},
				{Label: "Mar", Profit: 700},
			},
			wantBest:  "Mar",
			wantWorst: "Feb",
			wantOK:    true,
		},
		{
			name: "ties resolve to first encountered",
			buckets: []Bucket{
				{Label: "Jan", Profit: 100},
				{Label: "Feb", Profit: 100},
			},
			wantBest:  "Jan",
			wantWorst: "Jan",
			wantOK:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			best, worst, ok := BestWorstByProfit(tt.buckets)
			assert.Equal(t, tt.wantOK, ok)
			if !ok {
				return
			}
			assert.Equal(t, tt.wantBest, best.Label)
			assert.Equal(t, tt.wantWorst, worst.Label)
		})
	}
}
