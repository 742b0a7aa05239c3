package aggregate

import (
	"cmp"
	"slices"
	"strings"

	"github.com/osse101/MealPlanner_Go/internal/domain"
)

// RecipeSort selects the order produced by SortRecipes
type RecipeSort string

const (
	SortByName        RecipeSort = "name"
	SortByCookingTime RecipeSort = "cookingTime"
	SortByServings    RecipeSort = "servings"
	SortByNewest      RecipeSort = "newest"
)

// RecipeStats summarizes a collection of recipes
type RecipeStats struct {
	Total              int            `json:"total"`
	AverageCookingTime int            `json:"average_cooking_time"`
	AverageServings    float64        `json:"average_servings"`
	ByCategory         map[string]int `json:"by_category"`
}

// recipeCategoryKey is the grouping key of a recipe; blank categories are uncategorized
func recipeCategoryKey(r domain.Recipe) string {
	c := strings.TrimSpace(r.CategoryOrEmpty())
	if c == "" {
		return domain.UncategorizedKey
	}
	return c
}

// SearchRecipes keeps recipes whose name, any ingredient name or any
// instruction contains query, ignoring case. An empty or whitespace query
// returns recipes unchanged.
func SearchRecipes(recipes []domain.Recipe, query string) []domain.Recipe {
	m := newMatcher(query)
	if m == nil {
		return recipes
	}
	out := []domain.Recipe{}
	for _, r := range recipes {
		if m.matches(r.Name) || m.matchesAny(r.Instructions) || matchesIngredient(m, r.Ingredients) {
			out = append(out, r)
		}
	}
	return out
}

func matchesIngredient(m *matcher, ingredients []domain.Ingredient) bool {
	for _, ing := range ingredients {
		if m.matches(ing.Name) {
			return true
		}
	}
	return false
}

// GroupRecipesByCategory partitions recipes by their free-form category.
// Recipes without one are grouped under domain.UncategorizedKey.
func GroupRecipesByCategory(recipes []domain.Recipe) map[string][]domain.Recipe {
	groups := make(map[string][]domain.Recipe)
	for _, r := range recipes {
		key := recipeCategoryKey(r)
		groups[key] = append(groups[key], r)
	}
	return groups
}

// SortRecipes returns a sorted copy of recipes. Name order uses locale
// collation; cooking time and servings ascend; newest orders by CreatedAt
// descending. Ties keep input order. An unknown sort returns an unsorted copy.
func SortRecipes(recipes []domain.Recipe, by RecipeSort) []domain.Recipe {
	out := slices.Clone(recipes)
	if out == nil {
		out = []domain.Recipe{}
	}

	switch by {
	case SortByName:
		col := newNameCollator()
		slices.SortStableFunc(out, func(a, b domain.Recipe) int {
			return col.CompareString(a.Name, b.Name)
		})
	case SortByCookingTime:
		slices.SortStableFunc(out, func(a, b domain.Recipe) int {
			return cmp.Compare(a.CookingTime, b.CookingTime)
		})
	case SortByServings:
		slices.SortStableFunc(out, func(a, b domain.Recipe) int {
			return cmp.Compare(a.Servings, b.Servings)
		})
	case SortByNewest:
		slices.SortStableFunc(out, func(a, b domain.Recipe) int {
			return b.CreatedAt.Compare(a.CreatedAt)
		})
	}
	return out
}

// FilterByMaxCookingTime keeps recipes that take at most maxMinutes
func FilterByMaxCookingTime(recipes []domain.Recipe, maxMinutes int) []domain.Recipe {
	out := []domain.Recipe{}
	for _, r := range recipes {
		if r.CookingTime <= maxMinutes {
			out = append(out, r)
		}
	}
	return out
}

// RecentRecipes returns up to limit recipes, most recently created first
func RecentRecipes(recipes []domain.Recipe, limit int) []domain.Recipe {
	sorted := SortRecipes(recipes, SortByNewest)
	if limit >= 0 && len(sorted) > limit {
		sorted = sorted[:limit]
	}
	return sorted
}

// ComputeRecipeStats averages cooking time (nearest minute) and servings (one
// decimal) and counts recipes per category
func ComputeRecipeStats(recipes []domain.Recipe) RecipeStats {
	stats := RecipeStats{
		Total:      len(recipes),
		ByCategory: make(map[string]int),
	}
	if len(recipes) == 0 {
		return stats
	}

	var cookingTime, servings int
	for _, r := range recipes {
		cookingTime += r.CookingTime
		servings += r.Servings
		stats.ByCategory[recipeCategoryKey(r)]++
	}

	n := float64(len(recipes))
	stats.AverageCookingTime = int(roundTo(float64(cookingTime)/n, 0))
	stats.AverageServings = roundTo(float64(servings)/n, 1)
	return stats
}

// IndexRecipes maps recipes by id
func IndexRecipes(recipes []domain.Recipe) map[string]domain.Recipe {
	index := make(map[string]domain.Recipe, len(recipes))
	for _, r := range recipes {
		index[r.ID] = r
	}
	return index
}
