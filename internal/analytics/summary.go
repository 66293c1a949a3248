package analytics

import (
	"time"

	"finance-ledger-go/internal/models"
)

// Summary carries the top-level account summary card figures for one
// viewed month. Remaining here is the only place debt interest is
// subtracted; bucket-level profit never includes it. Salary is folded into
// Expenses and subtracted from Remaining, matching the historical
// dashboard arithmetic.
type Summary struct {
	Remaining  float64 `json:"remaining"`
	Income     float64 `json:"income"`
	Expenses   float64 `json:"expenses"`
	ToBeCredit float64 `json:"to_be_credit"`
	Salary     float64 `json:"salary"`
	Debt       float64 `json:"debt"`
	Interest   float64 `json:"interest"`
	ShowDebt   bool    `json:"show_debt"`

	SalaryEntries []models.SalaryEntry `json:"salary_entries"`
}

// MonthlyInterest converts a principal and an annual percentage rate into
// the interest owed for one month.
func MonthlyInterest(debt, annualRate float64) float64 {
	return debt * annualRate / 1200
}

// MonthSummary reduces the transactions of one viewed month into the
// summary card figures. Debt and interest are computed only when the debt
// feature is enabled.
func MonthSummary(txs []models.Transaction, year int, month time.Month, debtEnabled bool, policy CreditPolicy) Summary {
	s := Summary{ShowDebt: debtEnabled, SalaryEntries: []models.SalaryEntry{}}

	var expenses float64
	for _, t := range txs {
		d, ok := parseDate(t.Date)
		if !ok || d.Year() != year || d.Month() != month {
			continue
		}
		s.Income += t.Earnings
		expenses += t.Investment + t.Spending
		s.ToBeCredit += t.ToBeCredit
		s.Salary += t.Salary
		s.SalaryEntries = append(s.SalaryEntries, t.SalaryEntries...)

		if debtEnabled {
			s.Debt += t.Debt
			if t.Debt > 0 && t.InterestRate > 0 {
				s.Interest += MonthlyInterest(t.Debt, t.InterestRate)
			}
		}
	}

	s.Remaining = s.Income - expenses - s.Salary - s.Interest
	if policy == CreditCounted {
		s.Remaining += s.ToBeCredit
	}
	s.Expenses = expenses + s.Salary
	return s
}

// AllAccountsSummary totals every account's transactions into one
// cross-account figure. Salary counts toward remaining here: the
// all-accounts view treats it as inflow rather than a payroll expense.
func AllAccountsSummary(txsByAccount map[string][]models.Transaction, policy CreditPolicy) Summary {
	var s Summary
	var expenses float64
	for _, txs := range txsByAccount {
		for _, t := range txs {
			s.Income += t.Earnings
			expenses += t.Investment + t.Spending
			s.ToBeCredit += t.ToBeCredit
			s.Salary += t.Salary
		}
	}
	s.Remaining = s.Income - expenses + s.Salary
	if policy == CreditCounted {
		s.Remaining += s.ToBeCredit
	}
	s.Expenses = expenses
	s.SalaryEntries = []models.SalaryEntry{}
	return s
}

// CalendarEntry is one signed amount placed on the calendar for a date.
type CalendarEntry struct {
	TransactionID string  `json:"transaction_id"`
	Date          string  `json:"date"`
	Amount        float64 `json:"amount"`
	Type          string  `json:"type"` // income, expense, salary, toBeCredit, debt, interest
}

// CalendarEntries explodes transactions into the signed per-date entries
// the calendar view renders. Expenses and interest come out negative. A
// transaction with no visible components collapses to a single net entry.
func CalendarEntries(txs []models.Transaction, debtEnabled bool) []CalendarEntry {
	var out []CalendarEntry
	for _, t := range txs {
		n := len(out)
		if t.Earnings > 0 {
			out = append(out, CalendarEntry{t.ID, t.Date, t.Earnings, "income"})
		}
		if t.Investment > 0 || t.Spending > 0 {
			out = append(out, CalendarEntry{t.ID, t.Date, -(t.Investment + t.Spending), "expense"})
		}
		if t.Salary > 0 {
			out = append(out, CalendarEntry{t.ID, t.Date, t.Salary, "salary"})
		}
		if t.ToBeCredit > 0 {
			out = append(out, CalendarEntry{t.ID, t.Date, t.ToBeCredit, "toBeCredit"})
		}
		if debtEnabled && t.Debt > 0 {
			out = append(out, CalendarEntry{t.ID, t.Date, t.Debt, "debt"})
			if t.InterestRate > 0 {
				out = append(out, CalendarEntry{t.ID, t.Date, -MonthlyInterest(t.Debt, t.InterestRate), "interest"})
			}
		}
		if len(out) == n {
			net := t.Earnings - t.Investment - t.Spending + t.Salary
			kind := "income"
			if net < 0 {
				kind = "expense"
			}
			out = append(out, CalendarEntry{t.ID, t.Date, net, kind})
		}
	}
	return out
}

// MonthCalendar filters CalendarEntries down to one viewed month.
func MonthCalendar(txs []models.Transaction, year int, month time.Month, debtEnabled bool) []CalendarEntry {
	all := CalendarEntries(txs, debtEnabled)
	out := make([]CalendarEntry, 0, len(all))
	for _, e := range all {
		d, ok := parseDate(e.Date)
		if !ok || d.Year() != year || d.Month() != month {
			continue
		}
		out = append(out, e)
	}
	return out
}
