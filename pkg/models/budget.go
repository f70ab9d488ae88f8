package models

// Money is an amount in a single ISO-4217 currency. Amounts are float64
// because generation costs arrive as fractional API prices; invariant
// checks use CostTolerance.
type Money struct {
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
}

// CostTolerance is the floating tolerance applied when comparing spent
// totals against summed artifact and task costs.
const CostTolerance = 1e-6

// Budget warning thresholds as fractions of the total, and the hard
// overrun ceiling past which the project is force-aborted.
const (
	BudgetWarnThreshold     = 0.8
	BudgetExhaustThreshold  = 1.0
	BudgetHardStopMultiple  = 1.2
)

// Budget tracks project spend against the operator-set total.
type Budget struct {
	Total              Money            `json:"total"`
	Spent              Money            `json:"spent"`
	EstimatedRemaining Money            `json:"estimated_remaining"`
	Breakdown          map[string]Money `json:"breakdown"`
}

// Remaining returns total minus spent, floored at zero.
func (b Budget) Remaining() float64 {
	r := b.Total.Amount - b.Spent.Amount
	if r < 0 {
		return 0
	}
	return r
}

// Fraction returns spent as a fraction of total. A zero total reads as
// fully spent so budget gates fail closed.
func (b Budget) Fraction() float64 {
	if b.Total.Amount <= 0 {
		return 1
	}
	return b.Spent.Amount / b.Total.Amount
}

// CanAfford reports whether an estimated cost fits in the remaining budget.
func (b Budget) CanAfford(estimated float64) bool {
	return estimated <= b.Remaining()
}

// OverHardStop reports whether spend has crossed the FORCE_ABORT ceiling
// (total × 1.2).
func (b Budget) OverHardStop() bool {
	return b.Spent.Amount > b.Total.Amount*BudgetHardStopMultiple
}

// PredictedFinal extrapolates the final spend linearly from task progress:
// spent / progress, clamped to [spent, total × 1.2]. With no completed
// tasks it returns the total as the best available guess.
func (b Budget) PredictedFinal(completedTasks, totalTasks int) float64 {
	if completedTasks <= 0 || totalTasks <= 0 {
		return b.Total.Amount
	}
	progress := float64(completedTasks) / float64(totalTasks)
	predicted := b.Spent.Amount / progress
	if predicted < b.Spent.Amount {
		predicted = b.Spent.Amount
	}
	ceiling := b.Total.Amount * BudgetHardStopMultiple
	if predicted > ceiling {
		predicted = ceiling
	}
	return predicted
}
