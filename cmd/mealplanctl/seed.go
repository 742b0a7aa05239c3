package main

import (
	"context"
	"path/filepath"

	"github.com/osse101/MealPlanner_Go/internal/bootstrap"
	"github.com/osse101/MealPlanner_Go/internal/catalog"
	"github.com/osse101/MealPlanner_Go/internal/config"
)

// DefaultCatalogPath is used when seed is run without a file argument
var DefaultCatalogPath = filepath.Join("configs", catalog.ConfigFileName)

// SeedCommand imports a recipe catalog, skipping names already stored
type SeedCommand struct {
	cfg *config.Config
}

func (c *SeedCommand) Name() string {
	return "seed"
}

func (c *SeedCommand) Description() string {
	return "Import recipes from a JSON catalog (default configs/recipes.json)"
}

func (c *SeedCommand) Run(ctx context.Context, args []string) error {
	if len(args) > 1 {
		return usageError(c, "[catalog.json]")
	}
	path := DefaultCatalogPath
	if len(args) == 1 {
		path = args[0]
	}

	PrintHeader("Seed Recipes")

	store, err := bootstrap.OpenStore(ctx, c.cfg)
	if err != nil {
		return err
	}
	defer closeStore(store)

	result, err := bootstrap.SeedRecipes(ctx, path, bootstrap.NewPlanner(c.cfg, store))
	if err != nil {
		return err
	}

	PrintSuccess("Inserted %d recipes, skipped %d existing", result.Inserted, result.Skipped)
	return nil
}
