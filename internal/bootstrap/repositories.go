package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/MealPlanner_Go/internal/config"
	"github.com/osse101/MealPlanner_Go/internal/database"
	"github.com/osse101/MealPlanner_Go/internal/database/postgres"
	"github.com/osse101/MealPlanner_Go/internal/planner"
)

// StoreConfig maps the application configuration onto the store settings
func StoreConfig(cfg *config.Config) database.StoreConfig {
	return database.StoreConfig{
		ConnString:      cfg.GetDBConnString(),
		MaxConns:        cfg.DBMaxConns,
		MaxConnIdleTime: cfg.DBMaxConnIdleTime,
		MaxConnLifetime: cfg.DBMaxConnLifetime,
		CloseTimeout:    cfg.DBCloseTimeout,
	}
}

// OpenStore creates the store and initializes its schema.
// The caller owns the returned store and must Close it.
func OpenStore(ctx context.Context, cfg *config.Config) (*database.Store, error) {
	slog.Info(LogMsgOpeningStore, "host", cfg.DBHost, "db", cfg.DBName)

	store := database.NewStore(StoreConfig(cfg))
	if err := store.Initialize(ctx); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedOpenStore, err)
	}
	return store, nil
}

// OpenPool opens a bare pool without touching the schema, for migrations
func OpenPool(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
	pool, err := database.NewPool(ctx, cfg.GetDBConnString(), cfg.DBMaxConns, cfg.DBMaxConnIdleTime, cfg.DBMaxConnLifetime)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedOpenPool, err)
	}
	return pool, nil
}

// InitializeRepositories creates the repositories of every collection over one store
func InitializeRepositories(store database.Handle) planner.Repositories {
	return planner.Repositories{
		MealPlans:    postgres.NewMealPlanRepository(store),
		Recipes:      postgres.NewRecipeRepository(store),
		ShoppingList: postgres.NewShoppingListRepository(store),
	}
}

// NewPlanner wires the planner service and its caches over store
func NewPlanner(cfg *config.Config, store database.Handle) planner.Service {
	return planner.NewService(InitializeRepositories(store), planner.CacheConfig{
		Size: cfg.CacheSize,
		TTL:  cfg.CacheTTL,
	})
}
