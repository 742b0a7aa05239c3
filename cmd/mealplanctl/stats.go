package main

import (
	"context"
	"encoding/json"
	"io"

	"github.com/osse101/MealPlanner_Go/internal/bootstrap"
	"github.com/osse101/MealPlanner_Go/internal/config"
)

// StatsCommand prints the statistics of every collection as JSON
type StatsCommand struct {
	cfg *config.Config
	out io.Writer
}

func (c *StatsCommand) Name() string {
	return "stats"
}

func (c *StatsCommand) Description() string {
	return "Print meal plan, recipe and shopping list statistics as JSON"
}

func (c *StatsCommand) Run(ctx context.Context, args []string) error {
	if len(args) != 0 {
		return usageError(c, "")
	}

	store, err := bootstrap.OpenStore(ctx, c.cfg)
	if err != nil {
		return err
	}
	defer closeStore(store)

	summary, err := bootstrap.NewPlanner(c.cfg, store).Summary(ctx)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(c.out)
	enc.SetIndent("", "  ")
	return enc.Encode(summary)
}
