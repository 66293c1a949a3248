package analytics

import "finance-ledger-go/internal/models"

// Goal is a user-defined savings target. Goals live in client-local
// storage, not the database.
type Goal struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	TargetAmount  float64 `json:"target_amount"`
	CurrentAmount float64 `json:"current_amount"`
	Deadline      string  `json:"deadline"`
	Category      string  `json:"category"`
}

func (g Goal) remaining() float64 {
	if r := g.TargetAmount - g.CurrentAmount; r > 0 {
		return r
	}
	return 0
}

// AvailableSavings is the net inflow across the transaction set, floored
// at zero: a negative aggregate allocates nothing.
func AvailableSavings(txs []models.Transaction) float64 {
	var total float64
	for _, t := range txs {
		income := t.Earnings + t.Salary + t.ToBeCredit
		outgo := t.Spending + t.Investment
		total += income - outgo
	}
	if total < 0 {
		return 0
	}
	return total
}

// AllocateSavings distributes available savings across goals and returns
// the updated copies; the input slice is not mutated.
//
// If the savings cover every goal's remaining need, all goals are fully
// funded and any surplus is simply not carried anywhere. Otherwise each
// unfunded goal receives a single-pass proportional share of its remaining
// need, capped at the need itself. This is not iterative water-filling: a
// share freed by the cap is not redistributed to other goals.
func AllocateSavings(goals []Goal, available float64) []Goal {
	out := make([]Goal, len(goals))
	copy(out, goals)
	if available <= 0 || len(out) == 0 {
		return out
	}

	var totalNeeded float64
	for _, g := range out {
		totalNeeded += g.remaining()
	}
	if totalNeeded == 0 {
		return out
	}

	if available >= totalNeeded {
		for i := range out {
			out[i].CurrentAmount = out[i].TargetAmount
		}
		return out
	}

	for i := range out {
		need := out[i].remaining()
		if need == 0 {
			continue
		}
		share := need / totalNeeded * available
		if share > need {
			share = need
		}
		out[i].CurrentAmount += share
		if out[i].CurrentAmount > out[i].TargetAmount {
			out[i].CurrentAmount = out[i].TargetAmount
		}
	}
	return out
}
