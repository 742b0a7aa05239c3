package domain

// IngredientCategory is the closed category enum shared by Ingredient and ShoppingListItem
type IngredientCategory string

const (
	CategoryVegetables IngredientCategory = "vegetables"
	CategoryMeat       IngredientCategory = "meat"
	CategoryDairy      IngredientCategory = "dairy"
	CategoryGrains     IngredientCategory = "grains"
	CategorySpices     IngredientCategory = "spices"
	CategoryOther      IngredientCategory = "other"
)

// IngredientCategories lists every category in shopping priority order
var IngredientCategories = []IngredientCategory{
	CategoryVegetables,
	CategoryMeat,
	CategoryDairy,
	CategoryGrains,
	CategorySpices,
	CategoryOther,
}

// IsValid reports whether c is one of the six categories
func (c IngredientCategory) IsValid() bool {
	return c.Priority() >= 0
}

// Priority returns the shopping priority of the category (lower first), or -1 if unknown
func (c IngredientCategory) Priority() int {
	for i, cat := range IngredientCategories {
		if cat == c {
			return i
		}
	}
	return -1
}

// ParseIngredientCategory converts a string into a category
func ParseIngredientCategory(s string) (IngredientCategory, error) {
	c := IngredientCategory(s)
	if !c.IsValid() {
		return "", ErrInvalidCategory
	}
	return c, nil
}
