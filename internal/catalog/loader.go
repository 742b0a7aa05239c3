// Package catalog loads recipe catalogs from JSON files and seeds them into
// the planner.
package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"golang.org/x/text/cases"

	"github.com/osse101/MealPlanner_Go/internal/domain"
	"github.com/osse101/MealPlanner_Go/internal/logger"
	"github.com/osse101/MealPlanner_Go/internal/validation"
)

// Sentinel errors for the catalog loader
var (
	ErrDuplicateRecipeName = errors.New("duplicate recipe name")
	ErrInvalidConfig       = errors.New("invalid configuration")
)

// Config is the JSON recipe catalog
type Config struct {
	Version     string                     `json:"version"`
	Description string                     `json:"description"`
	Recipes     []domain.CreateRecipeInput `json:"recipes"`
}

// RecipeStore is where imported recipes are written; planner.Service satisfies it
type RecipeStore interface {
	ListRecipes(ctx context.Context) ([]domain.Recipe, error)
	CreateRecipe(ctx context.Context, input domain.CreateRecipeInput) (*domain.Recipe, error)
}

// Loader handles loading, validating and importing recipe catalogs
type Loader interface {
	Load(path string) (*Config, error)
	Validate(config *Config) error
	Import(ctx context.Context, config *Config, store RecipeStore) (*ImportResult, error)
}

// ImportResult contains the outcome of an import
type ImportResult struct {
	Inserted int `json:"inserted"`
	Skipped  int `json:"skipped"`
}

type catalogLoader struct {
	schemaValidator validation.SchemaValidator
	validator       *validation.Validator
}

// NewLoader creates a new Loader instance
func NewLoader() Loader {
	return &catalogLoader{
		schemaValidator: validation.NewSchemaValidator(),
		validator:       validation.Default(),
	}
}

// Load reads a catalog file, checks it against the catalog schema and parses it
func (l *catalogLoader) Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgReadConfigFileFailed, err)
	}

	if !json.Valid(data) {
		return nil, fmt.Errorf(ErrMsgParseConfigFailed, errors.New("malformed JSON"))
	}

	if err := l.schemaValidator.ValidateBytes(data, validation.RecipeCatalogSchema); err != nil {
		return nil, fmt.Errorf(ErrMsgSchemaFailed, path, err)
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf(ErrMsgParseConfigFailed, err)
	}

	return &config, nil
}

// Validate checks every recipe against the write rules and rejects duplicate names
func (l *catalogLoader) Validate(config *Config) error {
	if config == nil {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, ErrMsgConfigNil)
	}
	if len(config.Recipes) == 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, ErrMsgNoRecipesDefined)
	}

	folder := cases.Fold()
	seen := make(map[string]bool, len(config.Recipes))
	for i, recipe := range config.Recipes {
		key := nameKey(folder, recipe.Name)
		if key == "" {
			return fmt.Errorf(ErrFmtRecipeAtIndexName, ErrInvalidConfig, i)
		}
		if seen[key] {
			return fmt.Errorf("%w: '%s'", ErrDuplicateRecipeName, recipe.Name)
		}
		seen[key] = true

		if err := l.validator.RecipeInput(recipe); err != nil {
			return fmt.Errorf(ErrFmtRecipeInvalid, ErrInvalidConfig, recipe.Name, err)
		}
	}

	return nil
}

// Import creates every catalog recipe whose name is not already stored.
// Names are compared trimmed and case-folded, so re-running an import is a no-op.
func (l *catalogLoader) Import(ctx context.Context, config *Config, store RecipeStore) (*ImportResult, error) {
	log := logger.FromContext(ctx)

	existing, err := store.ListRecipes(ctx)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgListExistingFailed, err)
	}

	folder := cases.Fold()
	present := make(map[string]bool, len(existing))
	for _, r := range existing {
		present[nameKey(folder, r.Name)] = true
	}

	result := &ImportResult{}
	for _, recipe := range config.Recipes {
		key := nameKey(folder, recipe.Name)
		if present[key] {
			log.Debug(LogMsgSkippedRecipe, "name", recipe.Name)
			result.Skipped++
			continue
		}

		created, err := store.CreateRecipe(ctx, recipe)
		if err != nil {
			return result, fmt.Errorf(ErrMsgInsertRecipeFailed, recipe.Name, err)
		}
		present[key] = true
		result.Inserted++
		log.Debug(LogMsgInsertedRecipe, "name", created.Name, "id", created.ID)
	}

	log.Info(LogMsgImportCompleted,
		"version", config.Version,
		"inserted", result.Inserted,
		"skipped", result.Skipped)

	return result, nil
}

func nameKey(folder cases.Caser, name string) string {
	return folder.String(strings.TrimSpace(name))
}
