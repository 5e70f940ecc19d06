package model

// Budget is a per-user monthly cap for a single category. At most one row
// exists per (UserID, Category); setting a new amount replaces the old one.
type Budget struct {
	Category string
	UserID   int64
	Amount   float64
}

// BudgetTier classifies spend against budget for presentation.
type BudgetTier string

const (
	// TierUnset means no budget is set (absent and zero are equivalent).
	TierUnset BudgetTier = "unset"
	// TierOK means spending is below 80% of the budget.
	TierOK BudgetTier = "ok"
	// TierWarn means spending is at or above 80% but below 100%.
	TierWarn BudgetTier = "warn"
	// TierOver means spending has reached or exceeded the budget.
	TierOver BudgetTier = "over"
)

// BudgetStatus is the derived spend-to-budget view for one category.
type BudgetStatus struct {
	Category string
	Tier     BudgetTier
	Budget   float64
	Spent    float64
	Percent  float64
}

// StatusFor computes the spend status for a category. The 80 and 100
// thresholds are a fixed contract.
func StatusFor(category string, budget, spent float64) BudgetStatus {
	status := BudgetStatus{
		Category: category,
		Budget:   budget,
		Spent:    spent,
	}

	if budget <= 0 {
		status.Tier = TierUnset
		return status
	}

	status.Percent = spent / budget * 100
	switch {
	case status.Percent < 80:
		status.Tier = TierOK
	case status.Percent < 100:
		status.Tier = TierWarn
	default:
		status.Tier = TierOver
	}
	return status
}
