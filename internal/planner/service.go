package planner

import (
	"context"

	"github.com/osse101/MealPlanner_Go/internal/aggregate"
	"github.com/osse101/MealPlanner_Go/internal/domain"
	"github.com/osse101/MealPlanner_Go/internal/repository"
	"github.com/osse101/MealPlanner_Go/internal/validation"
)

// Service is the call boundary for callers that keep planner state: every
// write is validated, sent to a repository, and reflected in the read caches
type Service interface {
	// Meal plans
	CreateMealPlan(ctx context.Context, input domain.CreateMealPlanInput) (*domain.MealPlan, error)
	GetMealPlan(ctx context.Context, id string) (*domain.MealPlan, error)
	ListMealPlans(ctx context.Context) ([]domain.MealPlan, error)
	MealPlansInRange(ctx context.Context, start, end string) ([]domain.MealPlan, error)
	MealPlansForWeek(ctx context.Context, date string) ([]domain.MealPlan, error)
	UpdateMealPlan(ctx context.Context, patch domain.MealPlanPatch) (*domain.MealPlan, error)
	DeleteMealPlan(ctx context.Context, id string) (bool, error)

	// Recipes
	CreateRecipe(ctx context.Context, input domain.CreateRecipeInput) (*domain.Recipe, error)
	GetRecipe(ctx context.Context, id string) (*domain.Recipe, error)
	ListRecipes(ctx context.Context) ([]domain.Recipe, error)
	RecipesByIDs(ctx context.Context, ids []string) ([]domain.Recipe, error)
	UpdateRecipe(ctx context.Context, patch domain.RecipePatch) (*domain.Recipe, error)
	DeleteRecipe(ctx context.Context, id string) (bool, error)

	// Shopping list
	CreateShoppingItem(ctx context.Context, input domain.CreateShoppingListItemInput) (*domain.ShoppingListItem, error)
	ListShoppingItems(ctx context.Context) ([]domain.ShoppingListItem, error)
	CachedShoppingItem(id string) (domain.ShoppingListItem, bool)
	UpdateShoppingItem(ctx context.Context, patch domain.ShoppingListItemPatch) (*domain.ShoppingListItem, error)
	DeleteShoppingItem(ctx context.Context, id string) (bool, error)
	ToggleItem(ctx context.Context, id string) (*domain.ShoppingListItem, error)
	ClearChecked(ctx context.Context) (int64, error)
	SetAllChecked(ctx context.Context, checked bool) (int64, error)
	GenerateShoppingList(ctx context.Context, start, end string) ([]domain.ShoppingListItem, error)

	// Summaries
	Summary(ctx context.Context) (*Summary, error)
	CacheStats() map[string]CacheStats
}

// Repositories groups the persistence dependencies of the service
type Repositories struct {
	MealPlans    repository.MealPlan
	Recipes      repository.Recipe
	ShoppingList repository.ShoppingList
}

// Summary collects the statistics of every collection
type Summary struct {
	MealPlans    aggregate.MealPlanStats     `json:"meal_plans"`
	Recipes      aggregate.RecipeStats       `json:"recipes"`
	ShoppingList aggregate.ShoppingListStats `json:"shopping_list"`
}

type service struct {
	mealPlans repository.MealPlan
	recipes   repository.Recipe
	shopping  repository.ShoppingList
	validator *validation.Validator

	mealPlanCache *entityCache[domain.MealPlan]
	recipeCache   *entityCache[domain.Recipe]
	itemCache     *entityCache[domain.ShoppingListItem]
}

// NewService creates a planner service over the given repositories
func NewService(repos Repositories, cacheCfg CacheConfig) Service {
	return &service{
		mealPlans:     repos.MealPlans,
		recipes:       repos.Recipes,
		shopping:      repos.ShoppingList,
		validator:     validation.Default(),
		mealPlanCache: newEntityCache[domain.MealPlan](CacheMealPlans, cacheCfg),
		recipeCache:   newEntityCache[domain.Recipe](CacheRecipes, cacheCfg),
		itemCache:     newEntityCache[domain.ShoppingListItem](CacheShoppingItems, cacheCfg),
	}
}

// Summary loads every collection and computes its statistics
func (s *service) Summary(ctx context.Context) (*Summary, error) {
	plans, err := s.ListMealPlans(ctx)
	if err != nil {
		return nil, err
	}
	recipes, err := s.ListRecipes(ctx)
	if err != nil {
		return nil, err
	}
	items, err := s.ListShoppingItems(ctx)
	if err != nil {
		return nil, err
	}
	return &Summary{
		MealPlans:    aggregate.ComputeMealPlanStats(plans),
		Recipes:      aggregate.ComputeRecipeStats(recipes),
		ShoppingList: aggregate.ComputeShoppingListStats(items),
	}, nil
}

func (s *service) CacheStats() map[string]CacheStats {
	return map[string]CacheStats{
		CacheMealPlans:     s.mealPlanCache.Stats(),
		CacheRecipes:       s.recipeCache.Stats(),
		CacheShoppingItems: s.itemCache.Stats(),
	}
}
