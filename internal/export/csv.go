// Package export renders aggregated buckets to CSV and PDF. Currency and
// percent formatting happen here, at the presentation boundary; the
// aggregation engine upstream works in raw numeric units.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"finance-ledger-go/internal/analytics"
)

var csvHeader = []string{
	"Period", "Investment", "Earnings", "Spending",
	"To Be Credited", "Salary", "Profit", "ROI",
}

// Row is the record shape export consumers accept. ROI is a two-decimal
// display string; all other fields stay numeric.
type Row struct {
	PeriodLabel string  `json:"period_label"`
	Investment  float64 `json:"investment"`
	Earnings    float64 `json:"earnings"`
	Spending    float64 `json:"spending"`
	ToBeCredit  float64 `json:"to_be_credit"`
	Salary      float64 `json:"salary"`
	Profit      float64 `json:"profit"`
	ROI         string  `json:"roi"`
}

// RowsFromBuckets shapes engine buckets into export rows.
func RowsFromBuckets(buckets []analytics.Bucket) []Row {
	rows := make([]Row, len(buckets))
	for i, b := range buckets {
		rows[i] = Row{
			PeriodLabel: b.Label,
			Investment:  b.Investment,
			Earnings:    b.Earnings,
			Spending:    b.Spending,
			ToBeCredit:  b.ToBeCredit,
			Salary:      b.Salary,
			Profit:      b.Profit,
			ROI:         fmt.Sprintf("%.2f", b.ROI),
		}
	}
	return rows
}

// WriteCSV writes rows with a header line. Numeric fields use the shortest
// exact representation so a read-back restores the same totals.
func WriteCSV(w io.Writer, rows []Row) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}
	for _, r := range rows {
		record := []string{
			r.PeriodLabel,
			num(r.Investment),
			num(r.Earnings),
			num(r.Spending),
			num(r.ToBeCredit),
			num(r.Salary),
			num(r.Profit),
			r.ROI,
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("failed to write csv record: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// ReadCSV parses a file previously produced by WriteCSV.
func ReadCSV(r io.Reader) ([]Row, error) {
	cr := csv.NewReader(r)
	if _, err := cr.Read(); err != nil {
		return nil, fmt.Errorf("failed to read csv header: %w", err)
	}

	var rows []Row
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error reading csv record: %w", err)
		}
		if len(record) != len(csvHeader) {
			return nil, fmt.Errorf("expected %d columns, got %d", len(csvHeader), len(record))
		}

		row := Row{PeriodLabel: record[0], ROI: record[7]}
		for i, dst := range []*float64{
			&row.Investment, &row.Earnings, &row.Spending,
			&row.ToBeCredit, &row.Salary, &row.Profit,
		} {
			v, err := strconv.ParseFloat(record[i+1], 64)
			if err != nil {
				return nil, fmt.Errorf("could not parse amount '%s': %w", record[i+1], err)
			}
			*dst = v
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
