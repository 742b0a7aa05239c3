package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/osse101/MealPlanner_Go/internal/database/schema"
)

// Migrate runs a goose command against the embedded migrations.
// command is one of MigrateUp, MigrateDown or MigrateStatus.
func Migrate(ctx context.Context, pool *pgxpool.Pool, command string) error {
	db := stdlib.OpenDBFromPool(pool)
	defer db.Close()

	goose.SetBaseFS(schema.Migrations)
	defer goose.SetBaseFS(nil)

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToSetDialect, err)
	}

	switch command {
	case MigrateUp:
		return goose.UpContext(ctx, db, schema.MigrationsDir)
	case MigrateDown:
		return goose.DownContext(ctx, db, schema.MigrationsDir)
	case MigrateStatus:
		return goose.StatusContext(ctx, db, schema.MigrationsDir)
	default:
		return fmt.Errorf("%s: %q", ErrMsgUnknownMigrationCommand, command)
	}
}
