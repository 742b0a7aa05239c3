package aggregate

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/MealPlanner_Go/internal/domain"
)

func strPtr(s string) *string {
	return &s
}

func recipeIDs(recipes []domain.Recipe) []string {
	ids := make([]string, 0, len(recipes))
	for _, r := range recipes {
		ids = append(ids, r.ID)
	}
	return ids
}

func sampleRecipes() []domain.Recipe {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	return []domain.Recipe{
		{
			ID: "soup", Name: "Tomato soup", CookingTime: 30, Servings: 4, Category: strPtr("dinner"),
			Ingredients:  []domain.Ingredient{{Name: "Tomato", Category: domain.CategoryVegetables}},
			Instructions: []string{"Simmer gently"},
			CreatedAt:    base.Add(2 * time.Hour),
		},
		{
			ID: "oats", Name: "overnight oats", CookingTime: 5, Servings: 1, Category: strPtr("breakfast"),
			Ingredients:  []domain.Ingredient{{Name: "Oats", Category: domain.CategoryGrains}},
			Instructions: []string{"Soak overnight"},
			CreatedAt:    base,
		},
		{
			ID: "stew", Name: "Beef stew", CookingTime: 120, Servings: 6,
			Ingredients:  []domain.Ingredient{{Name: "Beef", Category: domain.CategoryMeat}, {Name: "Carrot", Category: domain.CategoryVegetables}},
			Instructions: []string{"Brown the beef", "Add TOMATO paste"},
			CreatedAt:    base.Add(time.Hour),
		},
	}
}

func TestSearchRecipes(t *testing.T) {
	recipes := sampleRecipes()

	assert.Equal(t, []string{"soup", "stew"}, recipeIDs(SearchRecipes(recipes, "tomato")))
	assert.Equal(t, []string{"stew"}, recipeIDs(SearchRecipes(recipes, "CARROT")))
	assert.Equal(t, []string{"oats"}, recipeIDs(SearchRecipes(recipes, "overnight")))
	assert.Empty(t, SearchRecipes(recipes, "chocolate"))

	assert.Equal(t, recipes, SearchRecipes(recipes, ""))
	assert.Equal(t, recipes, SearchRecipes(recipes, "   "))
}

func TestGroupRecipesByCategory(t *testing.T) {
	recipes := append(sampleRecipes(), domain.Recipe{ID: "blank", Category: strPtr("  ")})

	groups := GroupRecipesByCategory(recipes)
	assert.Equal(t, []string{"soup"}, recipeIDs(groups["dinner"]))
	assert.Equal(t, []string{"oats"}, recipeIDs(groups["breakfast"]))
	assert.Equal(t, []string{"stew", "blank"}, recipeIDs(groups[domain.UncategorizedKey]))
}

func TestSortRecipes(t *testing.T) {
	recipes := sampleRecipes()

	assert.Equal(t, []string{"stew", "oats", "soup"}, recipeIDs(SortRecipes(recipes, SortByName)))
	assert.Equal(t, []string{"oats", "soup", "stew"}, recipeIDs(SortRecipes(recipes, SortByCookingTime)))
	assert.Equal(t, []string{"oats", "soup", "stew"}, recipeIDs(SortRecipes(recipes, SortByServings)))
	assert.Equal(t, []string{"soup", "stew", "oats"}, recipeIDs(SortRecipes(recipes, SortByNewest)))
	assert.Equal(t, []string{"soup", "oats", "stew"}, recipeIDs(SortRecipes(recipes, "unknown")))

	// input untouched
	assert.Equal(t, []string{"soup", "oats", "stew"}, recipeIDs(recipes))

	assert.Equal(t, []domain.Recipe{}, SortRecipes(nil, SortByName))
}

func TestFilterByMaxCookingTime(t *testing.T) {
	recipes := sampleRecipes()
	assert.Equal(t, []string{"soup", "oats"}, recipeIDs(FilterByMaxCookingTime(recipes, 30)))
	assert.Empty(t, FilterByMaxCookingTime(recipes, 1))
}

func TestRecentRecipes(t *testing.T) {
	recipes := sampleRecipes()
	assert.Equal(t, []string{"soup", "stew"}, recipeIDs(RecentRecipes(recipes, 2)))
	assert.Len(t, RecentRecipes(recipes, 10), 3)
	assert.Empty(t, RecentRecipes(recipes, 0))
}

func TestComputeRecipeStats(t *testing.T) {
	stats := ComputeRecipeStats(sampleRecipes())

	assert.Equal(t, 3, stats.Total)
	// (30 + 5 + 120) / 3 = 51.67
	assert.Equal(t, 52, stats.AverageCookingTime)
	// (4 + 1 + 6) / 3 = 3.67
	assert.InDelta(t, 3.7, stats.AverageServings, 1e-9)
	assert.Equal(t, map[string]int{"dinner": 1, "breakfast": 1, domain.UncategorizedKey: 1}, stats.ByCategory)

	empty := ComputeRecipeStats(nil)
	assert.Equal(t, 0, empty.Total)
	assert.Equal(t, 0, empty.AverageCookingTime)
	assert.Equal(t, 0.0, empty.AverageServings)
	require.NotNil(t, empty.ByCategory)
}

func TestIndexRecipes(t *testing.T) {
	index := IndexRecipes(sampleRecipes())
	require.Len(t, index, 3)
	assert.Equal(t, "Beef stew", index["stew"].Name)
}
