package planner

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/MealPlanner_Go/internal/domain"
)

// getAs returns the i-th return value as T, or the zero value when it is nil
func getAs[T any](args mock.Arguments, i int) T {
	var zero T
	if v := args.Get(i); v != nil {
		return v.(T)
	}
	return zero
}

type MockMealPlanRepository struct {
	mock.Mock
}

func (m *MockMealPlanRepository) Create(ctx context.Context, input domain.CreateMealPlanInput) (*domain.MealPlan, error) {
	args := m.Called(ctx, input)
	return getAs[*domain.MealPlan](args, 0), args.Error(1)
}

func (m *MockMealPlanRepository) FindByID(ctx context.Context, id string) (*domain.MealPlan, error) {
	args := m.Called(ctx, id)
	return getAs[*domain.MealPlan](args, 0), args.Error(1)
}

func (m *MockMealPlanRepository) FindAll(ctx context.Context) ([]domain.MealPlan, error) {
	args := m.Called(ctx)
	return getAs[[]domain.MealPlan](args, 0), args.Error(1)
}

func (m *MockMealPlanRepository) FindByDateRange(ctx context.Context, start, end string) ([]domain.MealPlan, error) {
	args := m.Called(ctx, start, end)
	return getAs[[]domain.MealPlan](args, 0), args.Error(1)
}

func (m *MockMealPlanRepository) FindByDate(ctx context.Context, date string) ([]domain.MealPlan, error) {
	args := m.Called(ctx, date)
	return getAs[[]domain.MealPlan](args, 0), args.Error(1)
}

func (m *MockMealPlanRepository) FindByMealType(ctx context.Context, mealType domain.MealType) ([]domain.MealPlan, error) {
	args := m.Called(ctx, mealType)
	return getAs[[]domain.MealPlan](args, 0), args.Error(1)
}

func (m *MockMealPlanRepository) Update(ctx context.Context, patch domain.MealPlanPatch) (*domain.MealPlan, error) {
	args := m.Called(ctx, patch)
	return getAs[*domain.MealPlan](args, 0), args.Error(1)
}

func (m *MockMealPlanRepository) Delete(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

type MockRecipeRepository struct {
	mock.Mock
}

func (m *MockRecipeRepository) Create(ctx context.Context, input domain.CreateRecipeInput) (*domain.Recipe, error) {
	args := m.Called(ctx, input)
	return getAs[*domain.Recipe](args, 0), args.Error(1)
}

func (m *MockRecipeRepository) FindByID(ctx context.Context, id string) (*domain.Recipe, error) {
	args := m.Called(ctx, id)
	return getAs[*domain.Recipe](args, 0), args.Error(1)
}

func (m *MockRecipeRepository) FindAll(ctx context.Context) ([]domain.Recipe, error) {
	args := m.Called(ctx)
	return getAs[[]domain.Recipe](args, 0), args.Error(1)
}

func (m *MockRecipeRepository) FindByCategory(ctx context.Context, category string) ([]domain.Recipe, error) {
	args := m.Called(ctx, category)
	return getAs[[]domain.Recipe](args, 0), args.Error(1)
}

func (m *MockRecipeRepository) FindByIDs(ctx context.Context, ids []string) ([]domain.Recipe, error) {
	args := m.Called(ctx, ids)
	return getAs[[]domain.Recipe](args, 0), args.Error(1)
}

func (m *MockRecipeRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return getAs[int64](args, 0), args.Error(1)
}

func (m *MockRecipeRepository) Update(ctx context.Context, patch domain.RecipePatch) (*domain.Recipe, error) {
	args := m.Called(ctx, patch)
	return getAs[*domain.Recipe](args, 0), args.Error(1)
}

func (m *MockRecipeRepository) Delete(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockRecipeRepository) FindIngredientByID(ctx context.Context, id string) (*domain.Ingredient, error) {
	args := m.Called(ctx, id)
	return getAs[*domain.Ingredient](args, 0), args.Error(1)
}

type MockShoppingListRepository struct {
	mock.Mock
}

// Create accepts either a fixed item or a func deriving the item from the input
func (m *MockShoppingListRepository) Create(ctx context.Context, input domain.CreateShoppingListItemInput) (*domain.ShoppingListItem, error) {
	args := m.Called(ctx, input)
	if fn, ok := args.Get(0).(func(domain.CreateShoppingListItemInput) *domain.ShoppingListItem); ok {
		return fn(input), args.Error(1)
	}
	return getAs[*domain.ShoppingListItem](args, 0), args.Error(1)
}

func (m *MockShoppingListRepository) FindByID(ctx context.Context, id string) (*domain.ShoppingListItem, error) {
	args := m.Called(ctx, id)
	return getAs[*domain.ShoppingListItem](args, 0), args.Error(1)
}

func (m *MockShoppingListRepository) FindAll(ctx context.Context) ([]domain.ShoppingListItem, error) {
	args := m.Called(ctx)
	return getAs[[]domain.ShoppingListItem](args, 0), args.Error(1)
}

func (m *MockShoppingListRepository) FindByCategory(ctx context.Context, category domain.IngredientCategory) ([]domain.ShoppingListItem, error) {
	args := m.Called(ctx, category)
	return getAs[[]domain.ShoppingListItem](args, 0), args.Error(1)
}

func (m *MockShoppingListRepository) FindUnchecked(ctx context.Context) ([]domain.ShoppingListItem, error) {
	args := m.Called(ctx)
	return getAs[[]domain.ShoppingListItem](args, 0), args.Error(1)
}

func (m *MockShoppingListRepository) FindChecked(ctx context.Context) ([]domain.ShoppingListItem, error) {
	args := m.Called(ctx)
	return getAs[[]domain.ShoppingListItem](args, 0), args.Error(1)
}

func (m *MockShoppingListRepository) Update(ctx context.Context, patch domain.ShoppingListItemPatch) (*domain.ShoppingListItem, error) {
	args := m.Called(ctx, patch)
	return getAs[*domain.ShoppingListItem](args, 0), args.Error(1)
}

func (m *MockShoppingListRepository) Delete(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockShoppingListRepository) ToggleChecked(ctx context.Context, id string) (*domain.ShoppingListItem, error) {
	args := m.Called(ctx, id)
	return getAs[*domain.ShoppingListItem](args, 0), args.Error(1)
}

func (m *MockShoppingListRepository) ClearCheckedItems(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return getAs[int64](args, 0), args.Error(1)
}

func (m *MockShoppingListRepository) SetAllChecked(ctx context.Context, checked bool) (int64, error) {
	args := m.Called(ctx, checked)
	return getAs[int64](args, 0), args.Error(1)
}

func (m *MockShoppingListRepository) DeleteByMealPlan(ctx context.Context, mealPlanID string) (int64, error) {
	args := m.Called(ctx, mealPlanID)
	return getAs[int64](args, 0), args.Error(1)
}
