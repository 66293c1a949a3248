// Package analytics is the aggregation engine behind the dashboards: it
// partitions flat transaction lists into day/month/year buckets, computes
// per-bucket reductions and derived metrics, classifies amounts into
// semantic categories, and distributes savings across goals.
//
// Everything here is pure and synchronous. Callers re-run the relevant
// computation in full whenever the underlying transaction set changes.
package analytics

import (
	"sort"
	"time"

	"finance-ledger-go/internal/models"
)

const dateLayout = "2006-01-02"

// CreditPolicy controls whether "to be credited" amounts count toward
// profit and remaining before they are explicitly transferred into
// earnings. The historical dashboards count them (CreditCounted); callers
// wanting strict realized-cash figures use CreditDeferred. Switching the
// policy changes reported totals, so it is an explicit argument rather
// than a hidden default.
type CreditPolicy int

const (
	CreditCounted CreditPolicy = iota
	CreditDeferred
)

// Bucket is a time-unit-keyed aggregation of transactions. Label is the
// presentation key: an ISO date for day buckets, a three-letter month name
// for month buckets, a four-digit year for year buckets.
type Bucket struct {
	Label      string `json:"label"`
	Year       int    `json:"year"`
	MonthIndex int    `json:"month_index"` // 0-11 for month buckets, -1 otherwise

	Investment float64 `json:"investment"`
	Earnings   float64 `json:"earnings"`
	Spending   float64 `json:"spending"`
	ToBeCredit float64 `json:"to_be_credit"`
	Salary     float64 `json:"salary"`

	Profit float64 `json:"profit"`
	ROI    float64 `json:"roi"`
}

func (b *Bucket) accumulate(t models.Transaction) {
	b.Investment += t.Investment
	b.Earnings += t.Earnings
	b.Spending += t.Spending
	b.ToBeCredit += t.ToBeCredit
	b.Salary += t.Salary
}

// finalize computes the derived metrics once the sums are complete.
// Profit at the bucket level never includes debt interest; only the
// account summary subtracts it.
func (b *Bucket) finalize(policy CreditPolicy) {
	b.Profit = b.Earnings - b.Investment - b.Spending + b.Salary
	if policy == CreditCounted {
		b.Profit += b.ToBeCredit
	}
	b.ROI = roi(b.Profit, b.Investment)
}

// roi returns profit over investment as a percentage. Zero investment
// yields 0, not NaN, so downstream sorts stay well defined.
func roi(profit, investment float64) float64 {
	if investment <= 0 {
		return 0
	}
	return profit / investment * 100
}

// parseDate returns the transaction date at day granularity. Transactions
// with unparseable dates cannot be bucketed and are skipped.
func parseDate(s string) (time.Time, bool) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// GroupByDay buckets transactions by calendar date, ascending. Empty days
// are omitted.
func GroupByDay(txs []models.Transaction, policy CreditPolicy) []Bucket {
	byDay := make(map[string]*Bucket)
	for _, t := range txs {
		if _, ok := parseDate(t.Date); !ok {
			continue
		}
		b, ok := byDay[t.Date]
		if !ok {
			d, _ := parseDate(t.Date)
			b = &Bucket{Label: t.Date, Year: d.Year(), MonthIndex: -1}
			byDay[t.Date] = b
		}
		b.accumulate(t)
	}

	out := make([]Bucket, 0, len(byDay))
	for _, b := range byDay {
		b.finalize(policy)
		out = append(out, *b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Label < out[j].Label })
	return out
}

// GroupByMonth buckets one calendar year's transactions by month,
// ascending by month index. Transactions dated outside the given year are
// excluded; months with no transactions are omitted. Use MonthlyTable for
// the zero-filled 12-row variant.
func GroupByMonth(txs []models.Transaction, year int, policy CreditPolicy) []Bucket {
	byMonth := make(map[int]*Bucket)
	for _, t := range txs {
		d, ok := parseDate(t.Date)
		if !ok || d.Year() != year {
			continue
		}
		idx := int(d.Month()) - 1
		b, ok := byMonth[idx]
		if !ok {
			b = &Bucket{Label: monthLabel(idx), Year: year, MonthIndex: idx}
			byMonth[idx] = b
		}
		b.accumulate(t)
	}

	out := make([]Bucket, 0, len(byMonth))
	for _, b := range byMonth {
		b.finalize(policy)
		out = append(out, *b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].MonthIndex < out[j].MonthIndex })
	return out
}

// MonthlyTable is GroupByMonth with all 12 months emitted regardless of
// data presence, for the monthly overview table.
func MonthlyTable(txs []models.Transaction, year int, policy CreditPolicy) []Bucket {
	out := make([]Bucket, 12)
	for i := range out {
		out[i] = Bucket{Label: monthLabel(i), Year: year, MonthIndex: i}
	}
	for _, t := range txs {
		d, ok := parseDate(t.Date)
		if !ok || d.Year() != year {
			continue
		}
		out[int(d.Month())-1].accumulate(t)
	}
	for i := range out {
		out[i].finalize(policy)
	}
	return out
}

// GroupByYear buckets all transactions by calendar year, ascending.
func GroupByYear(txs []models.Transaction, policy CreditPolicy) []Bucket {
	byYear := make(map[int]*Bucket)
	for _, t := range txs {
		d, ok := parseDate(t.Date)
		if !ok {
			continue
		}
		b, ok := byYear[d.Year()]
		if !ok {
			b = &Bucket{Label: d.Format("2006"), Year: d.Year(), MonthIndex: -1}
			byYear[d.Year()] = b
		}
		b.accumulate(t)
	}

	out := make([]Bucket, 0, len(byYear))
	for _, b := range byYear {
		b.finalize(policy)
		out = append(out, *b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Year < out[j].Year })
	return out
}

// RankByROI returns a copy of buckets sorted by descending ROI, for the
// performance-by-ROI view. The input order is preserved for equal ROI.
func RankByROI(buckets []Bucket) []Bucket {
	out := make([]Bucket, len(buckets))
	copy(out, buckets)
	sort.SliceStable(out, func(i, j int) bool { return out[i].ROI > out[j].ROI })
	return out
}

// BestWorstByProfit scans buckets for the maximum and minimum profit.
// Ties resolve to the first-encountered bucket. ok is false for an empty
// input.
func BestWorstByProfit(buckets []Bucket) (best, worst Bucket, ok bool) {
	if len(buckets) == 0 {
		return Bucket{}, Bucket{}, false
	}
	best, worst = buckets[0], buckets[0]
	for _, b := range buckets[1:] {
		if b.Profit > best.Profit {
			best = b
		}
		if b.Profit < worst.Profit {
			worst = b
		}
	}
	return best, worst, true
}

func monthLabel(idx int) string {
	return time.Month(idx + 1).String()[:3]
}
