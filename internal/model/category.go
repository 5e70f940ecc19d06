package model

// CategoryKind distinguishes the fixed base set from user-created entries.
type CategoryKind string

const (
	// CategoryBase is one of the fixed global categories. Base categories
	// are never persisted per-user and can never be deleted.
	CategoryBase CategoryKind = "base"
	// CategoryCustom is owned by exactly one user and may be deleted.
	CategoryCustom CategoryKind = "custom"
)

// Category is a named spending category. OwnerID is zero for base
// categories.
type Category struct {
	Name    string
	Kind    CategoryKind
	OwnerID int64
}

// BaseCategories is the fixed global category set, in display order.
var BaseCategories = []string{
	"Food & Groceries",
	"Transport",
	"Housing",
	"Utilities",
	"Entertainment",
	"Shopping",
	"Health",
	"Education",
	"Travel",
	"Subscriptions",
	"Income",
	"Other",
}

// IsBaseCategory reports whether name matches a base category exactly.
func IsBaseCategory(name string) bool {
	for _, base := range BaseCategories {
		if base == name {
			return true
		}
	}
	return false
}
