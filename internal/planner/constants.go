package planner

import "time"

// Cache defaults
const (
	DefaultCacheSize = 256
	DefaultCacheTTL  = 5 * time.Minute
)

// Cache names, also used as metric label values
const (
	CacheMealPlans     = "meal_plans"
	CacheRecipes       = "recipes"
	CacheShoppingItems = "shopping_items"
)

// Log messages
const (
	LogMsgShoppingListGenerated = "Shopping list generated"
	LogMsgOptimisticRollback    = "Rolled back optimistic toggle"
	LogMsgMealPlanPruneFailed   = "Failed to remove deleted meal plan from shopping list"
	LogMsgDanglingRecipes       = "Meal plans reference recipes that no longer exist"
	LogMsgMealPlanDeleted       = "Meal plan deleted"
)
