// Package query provides the pure filter and sort functions the browse view
// runs over the catalog. Neither function mutates its input.
package query

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/pizzadesk/pizzadesk/internal/models"
)

// Filter returns the items matching all four predicates, preserving input
// order. The search query matches name or any ingredient, case-insensitively;
// the ingredient filter is an exact, case-sensitive membership test; the price
// ceiling is inclusive; the category filter is an exact match. Empty search,
// ingredient and category strings disable their predicates.
func Filter(items []*models.MenuItem, searchQuery, ingredient string, maxPrice float64, category string) []*models.MenuItem {
	search := strings.ToLower(searchQuery)

	var matched []*models.MenuItem
	for _, item := range items {
		if !matchesSearch(item, search) {
			continue
		}
		if ingredient != "" && !containsIngredient(item.Ingredients, ingredient) {
			continue
		}
		if item.Price > maxPrice {
			continue
		}
		if category != "" && item.Category != category {
			continue
		}
		matched = append(matched, item)
	}
	return matched
}

func matchesSearch(item *models.MenuItem, search string) bool {
	if strings.Contains(strings.ToLower(item.Name), search) {
		return true
	}
	for _, ingredient := range item.Ingredients {
		if strings.Contains(strings.ToLower(ingredient), search) {
			return true
		}
	}
	return false
}

func containsIngredient(ingredients []string, want string) bool {
	for _, ingredient := range ingredients {
		if ingredient == want {
			return true
		}
	}
	return false
}

// Sort returns a new slice ordered by the given sort key. Name ordering is
// collation-based, so accented names sort the way a reader expects rather
// than by code point. Price ordering is stable: equal prices keep their input
// order. An unknown key returns the items in input order.
func Sort(items []*models.MenuItem, sortBy string) []*models.MenuItem {
	sorted := make([]*models.MenuItem, len(items))
	copy(sorted, items)

	switch sortBy {
	case models.SortNameAsc:
		c := collate.New(language.Und)
		sort.SliceStable(sorted, func(i, j int) bool {
			return c.CompareString(sorted[i].Name, sorted[j].Name) < 0
		})
	case models.SortNameDesc:
		c := collate.New(language.Und)
		sort.SliceStable(sorted, func(i, j int) bool {
			return c.CompareString(sorted[i].Name, sorted[j].Name) > 0
		})
	case models.SortPriceAsc:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Price < sorted[j].Price
		})
	case models.SortPriceDesc:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Price > sorted[j].Price
		})
	}
	return sorted
}
