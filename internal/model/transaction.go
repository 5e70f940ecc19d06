package model

// Transaction is a single dated, categorized monetary entry owned by a
// user. Amounts are non-negative; income vs. expense is carried by the
// category, not the sign.
type Transaction struct {
	Date     Day
	Category string
	Note     string
	ID       int64
	UserID   int64
	Amount   float64
}

// TransactionFilter restricts a listing. Zero values mean no restriction;
// the date range is inclusive on both ends.
type TransactionFilter struct {
	Category string
	From     *Day
	To       *Day
}

// Matches reports whether t passes the filter.
func (f TransactionFilter) Matches(t Transaction) bool {
	if f.Category != "" && t.Category != f.Category {
		return false
	}
	if f.From != nil && t.Date.Before(f.From.Time) {
		return false
	}
	if f.To != nil && t.Date.After(f.To.Time) {
		return false
	}
	return true
}
