package repository

import (
	"context"

	"github.com/osse101/MealPlanner_Go/internal/domain"
)

// ShoppingList defines the interface for shopping list persistence.
// Collections are ordered by category, then ingredient name.
type ShoppingList interface {
	Create(ctx context.Context, input domain.CreateShoppingListItemInput) (*domain.ShoppingListItem, error)
	FindByID(ctx context.Context, id string) (*domain.ShoppingListItem, error)
	FindAll(ctx context.Context) ([]domain.ShoppingListItem, error)
	FindByCategory(ctx context.Context, category domain.IngredientCategory) ([]domain.ShoppingListItem, error)
	FindUnchecked(ctx context.Context) ([]domain.ShoppingListItem, error)
	FindChecked(ctx context.Context) ([]domain.ShoppingListItem, error)

	Update(ctx context.Context, patch domain.ShoppingListItemPatch) (*domain.ShoppingListItem, error)
	Delete(ctx context.Context, id string) (bool, error)
	ToggleChecked(ctx context.Context, id string) (*domain.ShoppingListItem, error)

	// ClearCheckedItems deletes every checked item and returns how many were removed
	ClearCheckedItems(ctx context.Context) (int64, error)
	// SetAllChecked sets the checked state of every item and returns how many changed
	SetAllChecked(ctx context.Context, checked bool) (int64, error)
	// DeleteByMealPlan removes mealPlanID from every item, deletes items left without a
	// source and returns how many were deleted
	DeleteByMealPlan(ctx context.Context, mealPlanID string) (int64, error)
}
