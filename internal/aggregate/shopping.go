package aggregate

import (
	"cmp"
	"slices"

	"github.com/osse101/MealPlanner_Go/internal/domain"
)

// ShoppingListStats summarizes a shopping list
type ShoppingListStats struct {
	Total                int                               `json:"total"`
	Checked              int                               `json:"checked"`
	Unchecked            int                               `json:"unchecked"`
	CompletionPercentage int                               `json:"completion_percentage"`
	ByCategory           map[domain.IngredientCategory]int `json:"by_category"`
}

// bucket maps a category outside the enum to CategoryOther
func bucket(c domain.IngredientCategory) domain.IngredientCategory {
	if c.IsValid() {
		return c
	}
	return domain.CategoryOther
}

// GroupItemsByCategory partitions items into the six categories. Every
// category is present, empty or not, and unknown categories count as other. Items within a category are ordered by
// ingredient name using locale collation.
func GroupItemsByCategory(items []domain.ShoppingListItem) map[domain.IngredientCategory][]domain.ShoppingListItem {
	groups := make(map[domain.IngredientCategory][]domain.ShoppingListItem, len(domain.IngredientCategories))
	for _, c := range domain.IngredientCategories {
		groups[c] = []domain.ShoppingListItem{}
	}
	for _, it := range items {
		c := bucket(it.Category)
		groups[c] = append(groups[c], it)
	}

	col := newNameCollator()
	for c := range groups {
		slices.SortStableFunc(groups[c], func(a, b domain.ShoppingListItem) int {
			return col.CompareString(a.IngredientName, b.IngredientName)
		})
	}
	return groups
}

// GroupIngredientsByCategory partitions ingredients into the six categories,
// ordered by name within each. Every category is present.
func GroupIngredientsByCategory(ingredients []domain.Ingredient) map[domain.IngredientCategory][]domain.Ingredient {
	groups := make(map[domain.IngredientCategory][]domain.Ingredient, len(domain.IngredientCategories))
	for _, c := range domain.IngredientCategories {
		groups[c] = []domain.Ingredient{}
	}
	for _, ing := range ingredients {
		c := bucket(ing.Category)
		groups[c] = append(groups[c], ing)
	}

	col := newNameCollator()
	for c := range groups {
		slices.SortStableFunc(groups[c], func(a, b domain.Ingredient) int {
			return col.CompareString(a.Name, b.Name)
		})
	}
	return groups
}

// PrioritizeUnchecked returns the unchecked items ordered by category priority
// (vegetables, meat, dairy, grains, spices, other) and then by name
func PrioritizeUnchecked(items []domain.ShoppingListItem) []domain.ShoppingListItem {
	out := []domain.ShoppingListItem{}
	for _, it := range items {
		if !it.IsChecked {
			out = append(out, it)
		}
	}

	col := newNameCollator()
	slices.SortStableFunc(out, func(a, b domain.ShoppingListItem) int {
		if c := cmp.Compare(categoryRank(a.Category), categoryRank(b.Category)); c != 0 {
			return c
		}
		return col.CompareString(a.IngredientName, b.IngredientName)
	})
	return out
}

// categoryRank sorts unknown categories last
func categoryRank(c domain.IngredientCategory) int {
	if p := c.Priority(); p >= 0 {
		return p
	}
	return len(domain.IngredientCategories)
}

// FilterChecked keeps items whose checked state equals checked
func FilterChecked(items []domain.ShoppingListItem, checked bool) []domain.ShoppingListItem {
	out := []domain.ShoppingListItem{}
	for _, it := range items {
		if it.IsChecked == checked {
			out = append(out, it)
		}
	}
	return out
}

// SearchShoppingList keeps items whose ingredient name contains query, ignoring
// case. An empty or whitespace query returns items unchanged.
func SearchShoppingList(items []domain.ShoppingListItem, query string) []domain.ShoppingListItem {
	m := newMatcher(query)
	if m == nil {
		return items
	}
	out := []domain.ShoppingListItem{}
	for _, it := range items {
		if m.matches(it.IngredientName) {
			out = append(out, it)
		}
	}
	return out
}

// TotalAmountFor sums TotalAmount over items whose ingredient name equals name,
// ignoring case only. Substrings and names differing in whitespace do not match.
func TotalAmountFor(items []domain.ShoppingListItem, name string) float64 {
	f := newFolder()
	want := f.String(name)

	var total float64
	for _, it := range items {
		if f.String(it.IngredientName) == want {
			total += it.TotalAmount
		}
	}
	return total
}

// ComputeShoppingListStats counts checked and unchecked items, the rounded
// completion percentage and items per category. All six categories are present.
func ComputeShoppingListStats(items []domain.ShoppingListItem) ShoppingListStats {
	stats := ShoppingListStats{
		Total:      len(items),
		ByCategory: make(map[domain.IngredientCategory]int, len(domain.IngredientCategories)),
	}
	for _, c := range domain.IngredientCategories {
		stats.ByCategory[c] = 0
	}

	for _, it := range items {
		if it.IsChecked {
			stats.Checked++
		}
		stats.ByCategory[bucket(it.Category)]++
	}
	stats.Unchecked = stats.Total - stats.Checked
	stats.CompletionPercentage = percentage(stats.Checked, stats.Total)
	return stats
}
