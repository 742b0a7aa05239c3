package repository

import (
	"context"

	"github.com/osse101/MealPlanner_Go/internal/domain"
)

// MealPlan defines the interface for meal plan persistence.
// Single lookups return (nil, nil) when the row is absent; collections are never nil.
type MealPlan interface {
	Create(ctx context.Context, input domain.CreateMealPlanInput) (*domain.MealPlan, error)
	FindByID(ctx context.Context, id string) (*domain.MealPlan, error)

	// FindAll orders by date descending, then breakfast, lunch, dinner
	FindAll(ctx context.Context) ([]domain.MealPlan, error)
	// FindByDateRange is inclusive on both bounds and orders by date ascending
	FindByDateRange(ctx context.Context, start, end string) ([]domain.MealPlan, error)
	FindByDate(ctx context.Context, date string) ([]domain.MealPlan, error)
	FindByMealType(ctx context.Context, mealType domain.MealType) ([]domain.MealPlan, error)

	Update(ctx context.Context, patch domain.MealPlanPatch) (*domain.MealPlan, error)
	Delete(ctx context.Context, id string) (bool, error)
}
