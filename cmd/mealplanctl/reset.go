package main

import (
	"context"

	"github.com/osse101/MealPlanner_Go/internal/config"
)

// ResetCommand drops and recreates every table
type ResetCommand struct {
	cfg *config.Config
}

func (c *ResetCommand) Name() string {
	return "reset"
}

func (c *ResetCommand) Description() string {
	return "Drop and recreate all tables (requires --confirm, destroys data)"
}

func (c *ResetCommand) Run(ctx context.Context, args []string) error {
	if len(args) != 1 || args[0] != flagConfirm {
		return usageError(c, flagConfirm)
	}

	PrintHeader("Reset Store")
	PrintWarning("Dropping every table in %s", c.cfg.DBName)

	store, err := openExistingStore(ctx, c.cfg)
	if err != nil {
		return err
	}
	defer closeStore(store)

	if err := store.Reset(ctx); err != nil {
		return err
	}

	PrintSuccess("Database %s reset", c.cfg.DBName)
	return nil
}
