package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/osse101/MealPlanner_Go/internal/catalog"
)

// SeedRecipes loads, validates and imports a recipe catalog.
// Recipes whose names already exist are left untouched.
func SeedRecipes(ctx context.Context, path string, store catalog.RecipeStore) (*catalog.ImportResult, error) {
	slog.Info(LogMsgSeedingRecipes, "path", path)
	loader := catalog.NewLoader()

	cfg, err := loader.Load(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedLoadRecipes, err)
	}

	if err := loader.Validate(cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgInvalidRecipes, err)
	}

	result, err := loader.Import(ctx, cfg, store)
	if err != nil {
		return result, fmt.Errorf("%s: %w", ErrMsgFailedSeedRecipes, err)
	}

	if result.Inserted > 0 {
		slog.Info(LogMsgRecipesSeeded,
			"inserted", result.Inserted,
			"skipped", result.Skipped)
	} else {
		slog.Info(LogMsgCatalogUnchanged, "skipped", result.Skipped)
	}

	return result, nil
}
