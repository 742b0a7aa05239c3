package aggregate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/MealPlanner_Go/internal/domain"
)

func item(id, name string, c domain.IngredientCategory, checked bool, amount float64) domain.ShoppingListItem {
	return domain.ShoppingListItem{ID: id, IngredientName: name, Category: c, IsChecked: checked, TotalAmount: amount, Unit: "g"}
}

func itemIDs(items []domain.ShoppingListItem) []string {
	ids := make([]string, 0, len(items))
	for _, it := range items {
		ids = append(ids, it.ID)
	}
	return ids
}

func TestGroupItemsByCategory_EmptyHasAllKeys(t *testing.T) {
	groups := GroupItemsByCategory(nil)
	require.Len(t, groups, 6)
	for _, c := range domain.IngredientCategories {
		list, ok := groups[c]
		assert.True(t, ok, "missing %s", c)
		assert.NotNil(t, list)
		assert.Empty(t, list)
	}
}

func TestGroupItemsByCategory_SortsByName(t *testing.T) {
	groups := GroupItemsByCategory([]domain.ShoppingListItem{
		item("1", "Onion", domain.CategoryVegetables, false, 1),
		item("2", "carrot", domain.CategoryVegetables, false, 1),
		item("3", "Milk", domain.CategoryDairy, true, 1),
		item("4", "Beans", domain.CategoryVegetables, false, 1),
	})

	assert.Equal(t, []string{"4", "2", "1"}, itemIDs(groups[domain.CategoryVegetables]))
	assert.Equal(t, []string{"3"}, itemIDs(groups[domain.CategoryDairy]))
	assert.Empty(t, groups[domain.CategoryMeat])
	assert.Len(t, groups, 6)
}

func TestGroupIngredientsByCategory(t *testing.T) {
	groups := GroupIngredientsByCategory([]domain.Ingredient{
		{Name: "Salt", Category: domain.CategorySpices},
		{Name: "Pepper", Category: domain.CategorySpices},
	})
	require.Len(t, groups, 6)
	require.Len(t, groups[domain.CategorySpices], 2)
	assert.Equal(t, "Pepper", groups[domain.CategorySpices][0].Name)
	assert.Empty(t, groups[domain.CategoryOther])
}

func TestPrioritizeUnchecked(t *testing.T) {
	items := []domain.ShoppingListItem{
		item("salt", "Salt", domain.CategorySpices, false, 1),
		item("milk", "Milk", domain.CategoryDairy, false, 1),
		item("done", "Apples", domain.CategoryVegetables, true, 1),
		item("soap", "Soap", domain.CategoryOther, false, 1),
		item("onion", "Onion", domain.CategoryVegetables, false, 1),
		item("beef", "Beef", domain.CategoryMeat, false, 1),
		item("rice", "Rice", domain.CategoryGrains, false, 1),
		item("carrot", "Carrot", domain.CategoryVegetables, false, 1),
	}

	assert.Equal(t,
		[]string{"carrot", "onion", "beef", "milk", "rice", "salt", "soap"},
		itemIDs(PrioritizeUnchecked(items)))
	assert.Equal(t, []domain.ShoppingListItem{}, PrioritizeUnchecked(nil))
}

func TestFilterChecked(t *testing.T) {
	items := []domain.ShoppingListItem{
		item("a", "A", domain.CategoryOther, true, 1),
		item("b", "B", domain.CategoryOther, false, 1),
		item("c", "C", domain.CategoryOther, true, 1),
	}
	assert.Equal(t, []string{"a", "c"}, itemIDs(FilterChecked(items, true)))
	assert.Equal(t, []string{"b"}, itemIDs(FilterChecked(items, false)))
}

func TestSearchShoppingList(t *testing.T) {
	items := []domain.ShoppingListItem{
		item("1", "Green Peppers", domain.CategoryVegetables, false, 1),
		item("2", "Black pepper", domain.CategorySpices, false, 1),
		item("3", "Milk", domain.CategoryDairy, false, 1),
	}
	assert.Equal(t, []string{"1", "2"}, itemIDs(SearchShoppingList(items, "PEPPER")))
	assert.Equal(t, items, SearchShoppingList(items, " "))
}

func TestTotalAmountFor(t *testing.T) {
	items := []domain.ShoppingListItem{
		item("1", "Flour", domain.CategoryGrains, false, 200),
		item("2", "flour", domain.CategoryGrains, true, 300),
		item("3", "Flour tortillas", domain.CategoryGrains, false, 8),
		item("4", "Sugar", domain.CategoryOther, false, 50),
	}

	assert.Equal(t, 500.0, TotalAmountFor(items, "FLOUR"))
	assert.Equal(t, 0.0, TotalAmountFor(items, "flo"))
	assert.Equal(t, 0.0, TotalAmountFor(nil, "flour"))
}

func TestTotalAmountFor_WhitespaceIsSignificant(t *testing.T) {
	items := []domain.ShoppingListItem{
		item("1", "tomato", domain.CategoryVegetables, false, 1),
		item("2", " tomato ", domain.CategoryVegetables, false, 2),
	}

	assert.Equal(t, 1.0, TotalAmountFor(items, "Tomato"))
	assert.Equal(t, 2.0, TotalAmountFor(items, " TOMATO "))
}

func TestUnknownCategoryCountsAsOther(t *testing.T) {
	items := []domain.ShoppingListItem{
		item("1", "Tofu", domain.IngredientCategory("protein"), false, 1),
		item("2", "Salt", domain.CategoryOther, true, 1),
	}

	groups := GroupItemsByCategory(items)
	assert.Len(t, groups, 6)
	assert.Equal(t, []string{"2", "1"}, itemIDs(groups[domain.CategoryOther]))

	stats := ComputeShoppingListStats(items)
	assert.Len(t, stats.ByCategory, 6)
	assert.Equal(t, 2, stats.ByCategory[domain.CategoryOther])

	ingredients := GroupIngredientsByCategory([]domain.Ingredient{{Name: "Tofu", Category: "protein"}})
	assert.Len(t, ingredients, 6)
	assert.Len(t, ingredients[domain.CategoryOther], 1)
}

func TestComputeShoppingListStats(t *testing.T) {
	stats := ComputeShoppingListStats([]domain.ShoppingListItem{
		item("1", "A", domain.CategoryVegetables, true, 1),
		item("2", "B", domain.CategoryVegetables, false, 1),
		item("3", "C", domain.CategoryMeat, false, 1),
	})

	assert.Equal(t, 3, stats.Total)
	assert.Equal(t, 1, stats.Checked)
	assert.Equal(t, 2, stats.Unchecked)
	assert.Equal(t, 33, stats.CompletionPercentage)
	assert.Equal(t, 2, stats.ByCategory[domain.CategoryVegetables])
	assert.Equal(t, 1, stats.ByCategory[domain.CategoryMeat])
	assert.Len(t, stats.ByCategory, 6)

	twoThirds := ComputeShoppingListStats([]domain.ShoppingListItem{
		item("1", "A", domain.CategoryOther, true, 1),
		item("2", "B", domain.CategoryOther, true, 1),
		item("3", "C", domain.CategoryOther, false, 1),
	})
	assert.Equal(t, 67, twoThirds.CompletionPercentage)

	empty := ComputeShoppingListStats(nil)
	assert.Equal(t, 0, empty.CompletionPercentage)
	assert.Equal(t, 0, empty.Total)
}
