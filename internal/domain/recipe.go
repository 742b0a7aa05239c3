package domain

import (
	"slices"
	"time"
)

// Ingredient is a quantified component owned by exactly one recipe
type Ingredient struct {
	ID       string             `json:"id"`
	RecipeID string             `json:"recipe_id"`
	Name     string             `json:"name"`
	Amount   float64            `json:"amount"`
	Unit     string             `json:"unit"`
	Category IngredientCategory `json:"category"`
}

// Recipe is a named set of ingredients and ordered instructions
type Recipe struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	Ingredients  []Ingredient `json:"ingredients"`
	Instructions []string     `json:"instructions"`
	CookingTime  int          `json:"cooking_time"`
	Servings     int          `json:"servings"`
	Category     *string      `json:"category,omitempty"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
}

// Clone returns a copy that shares no slices or pointers with r
func (r Recipe) Clone() Recipe {
	r.Ingredients = slices.Clone(r.Ingredients)
	r.Instructions = slices.Clone(r.Instructions)
	if r.Category != nil {
		c := *r.Category
		r.Category = &c
	}
	return r
}

// CategoryOrEmpty returns the recipe category or "" when unset
func (r Recipe) CategoryOrEmpty() string {
	if r.Category == nil {
		return ""
	}
	return *r.Category
}

// IngredientInput is an ingredient as submitted by a caller; ids are assigned on write
type IngredientInput struct {
	Name     string             `json:"name" validate:"required,notblank,max=255"`
	Amount   float64            `json:"amount" validate:"gte=0.001,lte=10000"`
	Unit     string             `json:"unit" validate:"required,notblank,max=50"`
	Category IngredientCategory `json:"category" validate:"required,category"`
}

// CreateRecipeInput carries the caller-supplied fields of a new recipe
type CreateRecipeInput struct {
	Name         string            `json:"name" validate:"required,notblank,max=255"`
	Ingredients  []IngredientInput `json:"ingredients" validate:"min=1,dive"`
	Instructions []string          `json:"instructions" validate:"min=1,dive,notblank"`
	CookingTime  int               `json:"cooking_time" validate:"gte=1,lte=1440"`
	Servings     int               `json:"servings" validate:"gte=1,lte=100"`
	Category     *string           `json:"category,omitempty" validate:"omitempty,max=255"`
}

// RecipePatch updates only the fields that are set.
// A set Ingredients field replaces the whole ingredient list.
type RecipePatch struct {
	ID           string
	Name         Optional[string]
	Ingredients  Optional[[]IngredientInput]
	Instructions Optional[[]string]
	CookingTime  Optional[int]
	Servings     Optional[int]
	Category     Optional[*string]
}

// IsEmpty reports whether the patch changes no field
func (p RecipePatch) IsEmpty() bool {
	return !p.Name.IsSet() && !p.Ingredients.IsSet() && !p.Instructions.IsSet() &&
		!p.CookingTime.IsSet() && !p.Servings.IsSet() && !p.Category.IsSet()
}
