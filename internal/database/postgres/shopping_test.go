package postgres

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/MealPlanner_Go/internal/domain"
)

func sampleItem(name string, category domain.IngredientCategory, checked bool, plans ...string) domain.CreateShoppingListItemInput {
	return domain.CreateShoppingListItemInput{
		IngredientName: name,
		TotalAmount:    1.5,
		Unit:           "kg",
		Category:       category,
		IsChecked:      checked,
		MealPlanIDs:    plans,
	}
}

func itemNames(items []domain.ShoppingListItem) []string {
	names := make([]string, 0, len(items))
	for _, it := range items {
		names = append(names, it.IngredientName)
	}
	return names
}

func TestShoppingListRepository_CreateAndFind(t *testing.T) {
	repo := NewShoppingListRepository(setupStore(t))
	ctx := context.Background()

	created, err := repo.Create(ctx, sampleItem("Carrots", domain.CategoryVegetables, false, "p1", "p2"))
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, []string{"p1", "p2"}, created.MealPlanIDs)
	assert.False(t, created.IsChecked)
	assert.Equal(t, created.CreatedAt, created.UpdatedAt)

	found, err := repo.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, found)

	manual, err := repo.Create(ctx, sampleItem("Soap", domain.CategoryOther, false))
	require.NoError(t, err)
	assert.Equal(t, []string{}, manual.MealPlanIDs)
}

func TestShoppingListRepository_CreateRejectsInvalidCategory(t *testing.T) {
	repo := NewShoppingListRepository(setupStore(t))
	ctx := context.Background()

	_, err := repo.Create(ctx, sampleItem("Candy", "sweets", false))
	var storageErr *domain.StorageError
	require.True(t, errors.As(err, &storageErr))
	assert.Equal(t, domain.OpCreate, storageErr.Op)
	assert.Equal(t, domain.EntityShoppingListItem, storageErr.Entity)
	assert.Contains(t, err.Error(), ErrMsgConstraintViolation)
}

func TestShoppingListRepository_Ordering(t *testing.T) {
	repo := NewShoppingListRepository(setupStore(t))
	ctx := context.Background()

	for _, in := range []domain.CreateShoppingListItemInput{
		sampleItem("Onion", domain.CategoryVegetables, false),
		sampleItem("Milk", domain.CategoryDairy, true),
		sampleItem("Carrot", domain.CategoryVegetables, true),
		sampleItem("Beef", domain.CategoryMeat, false),
	} {
		_, err := repo.Create(ctx, in)
		require.NoError(t, err)
	}

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Milk", "Beef", "Carrot", "Onion"}, itemNames(all))

	veg, err := repo.FindByCategory(ctx, domain.CategoryVegetables)
	require.NoError(t, err)
	assert.Equal(t, []string{"Carrot", "Onion"}, itemNames(veg))

	unchecked, err := repo.FindUnchecked(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Beef", "Onion"}, itemNames(unchecked))

	checked, err := repo.FindChecked(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Milk", "Carrot"}, itemNames(checked))

	grains, err := repo.FindByCategory(ctx, domain.CategoryGrains)
	require.NoError(t, err)
	assert.NotNil(t, grains)
	assert.Empty(t, grains)
}

func TestShoppingListRepository_ToggleTwiceRestores(t *testing.T) {
	repo := NewShoppingListRepository(setupStore(t))
	ctx := context.Background()

	item, err := repo.Create(ctx, sampleItem("Eggs", domain.CategoryDairy, false))
	require.NoError(t, err)

	first, err := repo.ToggleChecked(ctx, item.ID)
	require.NoError(t, err)
	assert.True(t, first.IsChecked)
	assert.True(t, first.UpdatedAt.After(item.UpdatedAt))

	second, err := repo.ToggleChecked(ctx, item.ID)
	require.NoError(t, err)
	assert.Equal(t, item.IsChecked, second.IsChecked)
	assert.True(t, second.UpdatedAt.After(first.UpdatedAt))
	assert.Equal(t, item.IngredientName, second.IngredientName)
	assert.Equal(t, item.TotalAmount, second.TotalAmount)
}

func TestShoppingListRepository_Update(t *testing.T) {
	repo := NewShoppingListRepository(setupStore(t))
	ctx := context.Background()

	item, err := repo.Create(ctx, sampleItem("Flour", domain.CategoryGrains, false, "p1"))
	require.NoError(t, err)

	updated, err := repo.Update(ctx, domain.ShoppingListItemPatch{
		ID:          item.ID,
		TotalAmount: domain.Some(3.25),
		Unit:        domain.Some("lb"),
		MealPlanIDs: domain.Some([]string{"p1", "p9"}),
	})
	require.NoError(t, err)
	assert.Equal(t, 3.25, updated.TotalAmount)
	assert.Equal(t, "lb", updated.Unit)
	assert.Equal(t, []string{"p1", "p9"}, updated.MealPlanIDs)
	assert.Equal(t, item.IngredientName, updated.IngredientName)
	assert.Equal(t, item.Category, updated.Category)
	assert.Equal(t, item.IsChecked, updated.IsChecked)
	assert.True(t, updated.UpdatedAt.After(item.UpdatedAt))
}

func TestShoppingListRepository_NotFound(t *testing.T) {
	repo := NewShoppingListRepository(setupStore(t))
	ctx := context.Background()
	missing := uuid.NewString()

	found, err := repo.FindByID(ctx, missing)
	assert.NoError(t, err)
	assert.Nil(t, found)

	toggled, err := repo.ToggleChecked(ctx, missing)
	assert.Nil(t, toggled)
	assert.ErrorIs(t, err, domain.ErrShoppingListItemNotFound)

	_, err = repo.Update(ctx, domain.ShoppingListItemPatch{ID: missing, IsChecked: domain.Some(true)})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	ok, err := repo.Delete(ctx, missing)
	assert.False(t, ok)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = repo.ToggleChecked(ctx, "bogus")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestShoppingListRepository_ClearChecked(t *testing.T) {
	repo := NewShoppingListRepository(setupStore(t))
	ctx := context.Background()

	_, err := repo.Create(ctx, sampleItem("a", domain.CategoryOther, true))
	require.NoError(t, err)
	b, err := repo.Create(ctx, sampleItem("b", domain.CategoryOther, false))
	require.NoError(t, err)
	_, err = repo.Create(ctx, sampleItem("c", domain.CategoryOther, true))
	require.NoError(t, err)

	removed, err := repo.ClearCheckedItems(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), removed)

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, b.ID, all[0].ID)

	removed, err = repo.ClearCheckedItems(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), removed)
}

func TestShoppingListRepository_SetAllChecked(t *testing.T) {
	repo := NewShoppingListRepository(setupStore(t))
	ctx := context.Background()

	for _, in := range []domain.CreateShoppingListItemInput{
		sampleItem("a", domain.CategoryOther, true),
		sampleItem("b", domain.CategoryOther, false),
		sampleItem("c", domain.CategoryOther, false),
	} {
		_, err := repo.Create(ctx, in)
		require.NoError(t, err)
	}

	changed, err := repo.SetAllChecked(ctx, true)
	require.NoError(t, err)
	assert.Equal(t, int64(2), changed)

	unchecked, err := repo.FindUnchecked(ctx)
	require.NoError(t, err)
	assert.Empty(t, unchecked)

	changed, err = repo.SetAllChecked(ctx, false)
	require.NoError(t, err)
	assert.Equal(t, int64(3), changed)
}

func TestShoppingListRepository_DeleteByMealPlan(t *testing.T) {
	repo := NewShoppingListRepository(setupStore(t))
	ctx := context.Background()

	only, err := repo.Create(ctx, sampleItem("Only p1", domain.CategoryMeat, false, "p1"))
	require.NoError(t, err)
	shared, err := repo.Create(ctx, sampleItem("Shared", domain.CategoryMeat, false, "p1", "p2"))
	require.NoError(t, err)
	other, err := repo.Create(ctx, sampleItem("Only p2", domain.CategoryMeat, false, "p2"))
	require.NoError(t, err)

	deleted, err := repo.DeleteByMealPlan(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)

	gone, err := repo.FindByID(ctx, only.ID)
	require.NoError(t, err)
	assert.Nil(t, gone)

	kept, err := repo.FindByID(ctx, shared.ID)
	require.NoError(t, err)
	require.NotNil(t, kept)
	assert.Equal(t, []string{"p2"}, kept.MealPlanIDs)

	untouched, err := repo.FindByID(ctx, other.ID)
	require.NoError(t, err)
	assert.Equal(t, other, untouched)
}
