package main

import (
	"context"

	"github.com/osse101/MealPlanner_Go/internal/bootstrap"
	"github.com/osse101/MealPlanner_Go/internal/config"
)

// InitCommand creates every table and index, then verifies the schema
type InitCommand struct {
	cfg *config.Config
}

func (c *InitCommand) Name() string {
	return "init"
}

func (c *InitCommand) Description() string {
	return "Create the schema (idempotent) and verify it"
}

func (c *InitCommand) Run(ctx context.Context, args []string) error {
	PrintHeader("Initialize Store")

	store, err := bootstrap.OpenStore(ctx, c.cfg)
	if err != nil {
		return err
	}
	defer closeStore(store)

	ok, err := store.HealthCheck(ctx)
	if err != nil {
		return err
	}
	if !ok {
		return errStoreUnhealthy
	}

	PrintSuccess("Schema ready in %s", c.cfg.DBName)
	return nil
}
