package domain

import (
	"slices"
	"time"
)

// MealType is the meal slot of a plan. Its order is breakfast, lunch, dinner.
type MealType string

const (
	MealTypeBreakfast MealType = "breakfast"
	MealTypeLunch     MealType = "lunch"
	MealTypeDinner    MealType = "dinner"
)

// MealTypes lists every meal type in display order
var MealTypes = []MealType{MealTypeBreakfast, MealTypeLunch, MealTypeDinner}

// IsValid reports whether m is a known meal type
func (m MealType) IsValid() bool {
	return m.Order() >= 0
}

// Order returns the sort rank of the meal type, or -1 if unknown
func (m MealType) Order() int {
	for i, mt := range MealTypes {
		if mt == m {
			return i
		}
	}
	return -1
}

// ParseMealType converts a string into a meal type
func ParseMealType(s string) (MealType, error) {
	m := MealType(s)
	if !m.IsValid() {
		return "", ErrInvalidMealType
	}
	return m, nil
}

// MealPlan assigns zero or more recipes to a date and meal slot
type MealPlan struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Date      string    `json:"date"`
	MealType  MealType  `json:"meal_type"`
	RecipeIDs []string  `json:"recipe_ids"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Clone returns a copy that shares no slices with p
func (p MealPlan) Clone() MealPlan {
	p.RecipeIDs = slices.Clone(p.RecipeIDs)
	return p
}

// CreateMealPlanInput carries the caller-supplied fields of a new meal plan
type CreateMealPlanInput struct {
	Name      string   `json:"name" validate:"required,notblank,max=255"`
	Date      string   `json:"date" validate:"required,isodate"`
	MealType  MealType `json:"meal_type" validate:"required,mealtype"`
	RecipeIDs []string `json:"recipe_ids" validate:"dive,required"`
}

// MealPlanPatch updates only the fields that are set
type MealPlanPatch struct {
	ID        string
	Name      Optional[string]
	Date      Optional[string]
	MealType  Optional[MealType]
	RecipeIDs Optional[[]string]
}

// IsEmpty reports whether the patch changes no field
func (p MealPlanPatch) IsEmpty() bool {
	return !p.Name.IsSet() && !p.Date.IsSet() && !p.MealType.IsSet() && !p.RecipeIDs.IsSet()
}
