package main

import (
	"context"
	"time"

	"github.com/osse101/MealPlanner_Go/internal/config"
)

// HealthCommand reports whether every required table exists
type HealthCommand struct {
	cfg *config.Config
}

func (c *HealthCommand) Name() string {
	return "health"
}

func (c *HealthCommand) Description() string {
	return "Check that the database is reachable and the schema complete"
}

func (c *HealthCommand) Run(ctx context.Context, args []string) error {
	PrintHeader("Health Check")

	store, err := openExistingStore(ctx, c.cfg)
	if err != nil {
		return err
	}
	defer closeStore(store)

	start := time.Now()
	ok, err := store.HealthCheck(ctx)
	if err != nil {
		return err
	}
	if !ok {
		PrintError("Schema incomplete; run '%s init'", appName)
		return errStoreUnhealthy
	}

	duration := time.Since(start)
	if duration > time.Second {
		PrintWarning("Health check passed with slow response time (%v)", duration)
	} else {
		PrintSuccess("Health check passed (response time: %v)", duration)
	}
	return nil
}
