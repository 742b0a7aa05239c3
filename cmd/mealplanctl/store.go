package main

import (
	"context"
	"errors"

	"github.com/osse101/MealPlanner_Go/internal/bootstrap"
	"github.com/osse101/MealPlanner_Go/internal/config"
	"github.com/osse101/MealPlanner_Go/internal/database"
)

var errStoreUnhealthy = errors.New(bootstrap.ErrMsgStoreNotHealthy)

// openExistingStore wraps a bare pool without creating the schema
func openExistingStore(ctx context.Context, cfg *config.Config) (*database.Store, error) {
	pool, err := bootstrap.OpenPool(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return database.NewStoreFromPool(pool), nil
}

// closeStore releases the store with a fresh deadline; the command context may already be cancelled
func closeStore(store *database.Store) {
	ctx, cancel := context.WithTimeout(context.Background(), bootstrap.DefaultShutdownTimeout)
	defer cancel()
	if err := store.Close(ctx); err != nil {
		PrintWarning("Failed to close store: %v", err)
	}
}
