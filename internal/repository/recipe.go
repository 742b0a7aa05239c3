package repository

import (
	"context"

	"github.com/osse101/MealPlanner_Go/internal/domain"
)

// Recipe defines the interface for recipe persistence, including the ingredients each recipe owns
type Recipe interface {
	Create(ctx context.Context, input domain.CreateRecipeInput) (*domain.Recipe, error)
	FindByID(ctx context.Context, id string) (*domain.Recipe, error)
	FindAll(ctx context.Context) ([]domain.Recipe, error)
	FindByCategory(ctx context.Context, category string) ([]domain.Recipe, error)
	// FindByIDs skips ids that do not exist
	FindByIDs(ctx context.Context, ids []string) ([]domain.Recipe, error)
	Count(ctx context.Context) (int64, error)

	// Update replaces the whole ingredient list when patch.Ingredients is set
	Update(ctx context.Context, patch domain.RecipePatch) (*domain.Recipe, error)
	Delete(ctx context.Context, id string) (bool, error)

	FindIngredientByID(ctx context.Context, id string) (*domain.Ingredient, error)
}
