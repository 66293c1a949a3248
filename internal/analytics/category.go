package analytics

import (
	"sort"
	"strings"

	"finance-ledger-go/internal/models"
)

// CategoryShare is one category's slice of a breakdown. Percentage is of
// the category total, not of all transactions.
type CategoryShare struct {
	Name       string  `json:"name"`
	Amount     float64 `json:"amount"`
	Percentage float64 `json:"percentage"`
}

// Income categories in priority order. Classification is case-insensitive
// substring matching over the trimmed purpose text; the first rule that
// matches wins, so reordering this list changes historical report output.
var incomeRules = []struct {
	category string
	keywords []string
}{
	{"Freelancing", []string{"freelance", "contract"}},
	{"Investments", []string{"invest", "dividend"}},
	{"Side Business", []string{"side", "business"}},
	{"Rental Income", []string{"rent", "property"}},
}

// Spending categories in priority order. The category name itself is the
// keyword ("Food" matches "food delivery").
var spendingCategories = []string{
	"Food", "Travel", "Rent", "Entertainment",
	"Utilities", "Shopping", "Healthcare", "Education",
}

func classifyIncome(purpose string) string {
	p := strings.ToLower(strings.TrimSpace(purpose))
	if p == "" {
		return "Salary"
	}
	for _, rule := range incomeRules {
		for _, kw := range rule.keywords {
			if strings.Contains(p, kw) {
				return rule.category
			}
		}
	}
	return "Salary"
}

func classifySpending(purpose string) string {
	p := strings.ToLower(strings.TrimSpace(purpose))
	if p == "" {
		return "Others"
	}
	for _, cat := range spendingCategories {
		if strings.Contains(p, strings.ToLower(cat)) {
			return cat
		}
	}
	return "Others"
}

// IncomeSources classifies income amounts into source categories. Raw
// earnings carry no purpose tag and are attributed wholesale to
// "Investments"; lump salary totals go to "Salary"; uncredited amounts to
// "Freelancing"; itemized salary entries are classified by purpose.
// Zero-value categories are dropped and the rest sorted by amount
// descending.
func IncomeSources(txs []models.Transaction) []CategoryShare {
	amounts := map[string]float64{}
	for _, t := range txs {
		if t.Earnings > 0 {
			amounts["Investments"] += t.Earnings
		}
		if t.Salary > 0 {
			amounts["Salary"] += t.Salary
		}
		if t.ToBeCredit > 0 {
			amounts["Freelancing"] += t.ToBeCredit
		}
		for _, e := range t.SalaryEntries {
			amounts[classifyIncome(e.Purpose)] += e.Amount
		}
	}
	return toShares(amounts)
}

// SpendingBreakdown classifies spending amounts into expense categories.
// Raw spending is untagged and lands in "Others"; salary entries with a
// purpose are matched against the category list.
func SpendingBreakdown(txs []models.Transaction) []CategoryShare {
	amounts := map[string]float64{}
	for _, t := range txs {
		if t.Spending > 0 {
			amounts["Others"] += t.Spending
		}
		for _, e := range t.SalaryEntries {
			amounts[classifySpending(e.Purpose)] += e.Amount
		}
	}
	return toShares(amounts)
}

func toShares(amounts map[string]float64) []CategoryShare {
	var total float64
	for _, v := range amounts {
		total += v
	}

	out := make([]CategoryShare, 0, len(amounts))
	for name, v := range amounts {
		if v <= 0 {
			continue
		}
		share := CategoryShare{Name: name, Amount: v}
		if total > 0 {
			share.Percentage = v / total * 100
		}
		out = append(out, share)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Amount != out[j].Amount {
			return out[i].Amount > out[j].Amount
		}
		return out[i].Name < out[j].Name
	})
	return out
}
