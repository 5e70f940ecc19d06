// Package registry merges the fixed base category set with each user's
// custom categories and enforces the category-management rules.
package registry

import (
	"context"
	"fmt"
	"strings"

	"github.com/spendwise-app/spendwise/internal/common"
	"github.com/spendwise-app/spendwise/internal/model"
	"github.com/spendwise-app/spendwise/internal/service"
)

// Registry is the category registry for all users. Base categories are
// shared and immutable; custom ones live in storage per user.
type Registry struct {
	store service.Storage
}

// New creates a category registry backed by the given store.
func New(store service.Storage) *Registry {
	return &Registry{store: store}
}

// ListAll returns the merged category list: base categories in their fixed
// order, then the user's custom categories alphabetically. A custom entry
// whose name folds equal to a base one is dropped from the merge.
func (r *Registry) ListAll(ctx context.Context, userID int64) ([]model.Category, error) {
	custom, err := r.store.ListCustomCategories(ctx, userID)
	if err != nil {
		return nil, err
	}

	merged := make([]model.Category, 0, len(model.BaseCategories)+len(custom))
	for _, name := range model.BaseCategories {
		merged = append(merged, model.Category{Name: name, Kind: model.CategoryBase})
	}
	for _, cat := range custom {
		if foldMatchesBase(cat.Name) {
			continue
		}
		merged = append(merged, cat)
	}
	return merged, nil
}

// Names returns the merged list as plain names, for selectors and exports.
func (r *Registry) Names(ctx context.Context, userID int64) ([]string, error) {
	categories, err := r.ListAll(ctx, userID)
	if err != nil {
		return nil, err
	}
	names := make([]string, len(categories))
	for i, cat := range categories {
		names[i] = cat.Name
	}
	return names, nil
}

// Add registers a custom category. The name is trimmed and checked
// case-insensitively against the full merged list; the original casing is
// what gets stored.
func (r *Registry) Add(ctx context.Context, userID int64, name string) (*model.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: category name is required", common.ErrValidation)
	}

	existing, err := r.ListAll(ctx, userID)
	if err != nil {
		return nil, err
	}
	for _, cat := range existing {
		if strings.EqualFold(cat.Name, name) {
			return nil, fmt.Errorf("%w: category %q", common.ErrDuplicate, cat.Name)
		}
	}

	return r.store.CreateCustomCategory(ctx, userID, name)
}

// Remove deletes a custom category. Base categories are protected by kind;
// removing a custom category that does not exist is a no-op. Transactions
// already tagged with the name keep it.
func (r *Registry) Remove(ctx context.Context, userID int64, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("%w: category name is required", common.ErrValidation)
	}
	if model.IsBaseCategory(name) {
		return fmt.Errorf("%w: %q", common.ErrProtectedCategory, name)
	}

	return r.store.DeleteCustomCategory(ctx, userID, name)
}

func foldMatchesBase(name string) bool {
	for _, base := range model.BaseCategories {
		if strings.EqualFold(base, name) {
			return true
		}
	}
	return false
}
