package schema

import (
	"embed"
	"fmt"
	"strings"
)

// Migrations holds the goose migration files
//
//go:embed migrations/*.sql
var Migrations embed.FS

// MigrationsDir is the directory of Migrations that goose reads from
const MigrationsDir = "migrations"

// InitialSchemaFile is the migration that creates every table and index
const InitialSchemaFile = "migrations/00001_initial_schema.sql"

const (
	gooseUpMarker   = "-- +goose Up"
	gooseDownMarker = "-- +goose Down"
)

// Table names
const (
	TableMealPlans         = "meal_plans"
	TableRecipes           = "recipes"
	TableIngredients       = "ingredients"
	TableShoppingListItems = "shopping_list_items"
)

// RequiredTables lists the tables the application needs, parents before children
var RequiredTables = []string{
	TableMealPlans,
	TableRecipes,
	TableIngredients,
	TableShoppingListItems,
}

// UpSQL returns the statements that create the schema.
// Every statement is IF NOT EXISTS so running it repeatedly is safe.
func UpSQL() (string, error) {
	up, _, err := sections()
	return up, err
}

// DownSQL returns the statements that drop the schema, children before parents
func DownSQL() (string, error) {
	_, down, err := sections()
	return down, err
}

func sections() (string, string, error) {
	content, err := Migrations.ReadFile(InitialSchemaFile)
	if err != nil {
		return "", "", fmt.Errorf("failed to read %s: %w", InitialSchemaFile, err)
	}
	return splitGooseSections(string(content))
}

// splitGooseSections strips goose markers and returns the Up and Down bodies
func splitGooseSections(content string) (string, string, error) {
	upIdx := strings.Index(content, gooseUpMarker)
	if upIdx == -1 {
		return "", "", fmt.Errorf("migration is missing %q", gooseUpMarker)
	}
	body := content[upIdx+len(gooseUpMarker):]

	var up, down string
	if downIdx := strings.Index(body, gooseDownMarker); downIdx != -1 {
		up = body[:downIdx]
		down = body[downIdx+len(gooseDownMarker):]
	} else {
		up = body
	}

	return strings.TrimSpace(up), strings.TrimSpace(down), nil
}
