package domain

import (
	"slices"
	"time"
)

// ShoppingListItem is an aggregated purchase need derived from one or more meal plans
type ShoppingListItem struct {
	ID             string             `json:"id"`
	IngredientName string             `json:"ingredient_name"`
	TotalAmount    float64            `json:"total_amount"`
	Unit           string             `json:"unit"`
	Category       IngredientCategory `json:"category"`
	IsChecked      bool               `json:"is_checked"`
	MealPlanIDs    []string           `json:"meal_plan_ids"`
	CreatedAt      time.Time          `json:"created_at"`
	UpdatedAt      time.Time          `json:"updated_at"`
}

// Clone returns a copy that shares no slices with it
func (it ShoppingListItem) Clone() ShoppingListItem {
	it.MealPlanIDs = slices.Clone(it.MealPlanIDs)
	return it
}

// CreateShoppingListItemInput carries the caller-supplied fields of a new item
type CreateShoppingListItemInput struct {
	IngredientName string             `json:"ingredient_name" validate:"required,notblank,max=255"`
	TotalAmount    float64            `json:"total_amount" validate:"gte=0.001,lte=10000"`
	Unit           string             `json:"unit" validate:"required,notblank,max=50"`
	Category       IngredientCategory `json:"category" validate:"required,category"`
	IsChecked      bool               `json:"is_checked"`
	MealPlanIDs    []string           `json:"meal_plan_ids" validate:"dive,required"`
}

// ShoppingListItemPatch updates only the fields that are set
type ShoppingListItemPatch struct {
	ID             string
	IngredientName Optional[string]
	TotalAmount    Optional[float64]
	Unit           Optional[string]
	Category       Optional[IngredientCategory]
	IsChecked      Optional[bool]
	MealPlanIDs    Optional[[]string]
}

// IsEmpty reports whether the patch changes no field
func (p ShoppingListItemPatch) IsEmpty() bool {
	return !p.IngredientName.IsSet() && !p.TotalAmount.IsSet() && !p.Unit.IsSet() &&
		!p.Category.IsSet() && !p.IsChecked.IsSet() && !p.MealPlanIDs.IsSet()
}
