package domain

// Date handling
const (
	// DateLayout is the calendar-date form used for meal plan dates and range bounds
	DateLayout = "2006-01-02"
	// DatePrefixLength is the length of a YYYY-MM-DD prefix of an ISO-8601 value
	DatePrefixLength = len(DateLayout)
)

// Field limits shared by validation and the storage schema
const (
	MaxNameLength    = 255
	MaxUnitLength    = 50
	MinAmount        = 0.001
	MaxAmount        = 10000
	MinCookingTime   = 1
	MaxCookingTime   = 1440
	MinServings      = 1
	MaxServings      = 100
	UncategorizedKey = "uncategorized"
)

// Entity names used in error context and metrics labels
const (
	EntityMealPlan         = "meal_plan"
	EntityRecipe           = "recipe"
	EntityIngredient       = "ingredient"
	EntityShoppingListItem = "shopping_list_item"
)
