package main

import (
	"context"

	"github.com/osse101/MealPlanner_Go/internal/bootstrap"
	"github.com/osse101/MealPlanner_Go/internal/config"
	"github.com/osse101/MealPlanner_Go/internal/database"
)

// MigrateCommand runs the embedded goose migrations
type MigrateCommand struct {
	cfg *config.Config
}

func (c *MigrateCommand) Name() string {
	return "migrate"
}

func (c *MigrateCommand) Description() string {
	return "Manage database migrations (up, down, status)"
}

func (c *MigrateCommand) Run(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return usageError(c, "<up|down|status>")
	}
	subcmd := args[0]
	switch subcmd {
	case database.MigrateUp, database.MigrateDown, database.MigrateStatus:
	default:
		return usageError(c, "<up|down|status>")
	}

	PrintHeader("Migrate " + subcmd)

	pool, err := bootstrap.OpenPool(ctx, c.cfg)
	if err != nil {
		return err
	}
	defer pool.Close()

	if err := database.Migrate(ctx, pool, subcmd); err != nil {
		return err
	}

	PrintSuccess("Migration %s complete", subcmd)
	return nil
}
