package export

import (
	"context"
	"fmt"
	"io"
	"time"

	"finance-ledger-go/internal/analytics"
	"finance-ledger-go/internal/money"
)

// Service builds export documents from a transaction source.
type Service struct {
	src    Source
	policy analytics.CreditPolicy
}

func NewService(src Source, policy analytics.CreditPolicy) *Service {
	return &Service{src: src, policy: policy}
}

// MonthlyCSV writes the 12-row monthly overview of one year.
func (s *Service) MonthlyCSV(ctx context.Context, accountID string, year int, w io.Writer) error {
	txs, err := s.src.Transactions(ctx, accountID)
	if err != nil {
		return fmt.Errorf("could not load transactions: %w", err)
	}
	rows := RowsFromBuckets(analytics.MonthlyTable(txs, year, s.policy))
	return WriteCSV(w, rows)
}

// YearlyCSV writes the all-time per-year rows.
func (s *Service) YearlyCSV(ctx context.Context, accountID string, w io.Writer) error {
	txs, err := s.src.Transactions(ctx, accountID)
	if err != nil {
		return fmt.Errorf("could not load transactions: %w", err)
	}
	rows := RowsFromBuckets(analytics.GroupByYear(txs, s.policy))
	return WriteCSV(w, rows)
}

// SummaryPDFReport writes the account summary for the viewed month plus
// the year's monthly table.
func (s *Service) SummaryPDFReport(ctx context.Context, accountID string, year int, month time.Month, debtEnabled bool, cur money.Currency, w io.Writer) error {
	txs, err := s.src.Transactions(ctx, accountID)
	if err != nil {
		return fmt.Errorf("could not load transactions: %w", err)
	}
	summary := analytics.MonthSummary(txs, year, month, debtEnabled, s.policy)
	rows := RowsFromBuckets(analytics.MonthlyTable(txs, year, s.policy))
	title := fmt.Sprintf("Financial Report %s %d", month.String(), year)
	return SummaryPDF(w, title, cur, summary, rows)
}
