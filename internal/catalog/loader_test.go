package catalog

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/MealPlanner_Go/internal/domain"
)

func createTempFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func sampleRecipe(name string) domain.CreateRecipeInput {
	return domain.CreateRecipeInput{
		Name: name,
		Ingredients: []domain.IngredientInput{
			{Name: "Flour", Amount: 200, Unit: "g", Category: domain.CategoryGrains},
		},
		Instructions: []string{"Mix", "Bake"},
		CookingTime:  30,
		Servings:     2,
	}
}

// fakeStore is an in-memory RecipeStore
type fakeStore struct {
	recipes   []domain.Recipe
	listErr   error
	createErr error
}

func (f *fakeStore) ListRecipes(ctx context.Context) ([]domain.Recipe, error) {
	return f.recipes, f.listErr
}

func (f *fakeStore) CreateRecipe(ctx context.Context, input domain.CreateRecipeInput) (*domain.Recipe, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	r := domain.Recipe{ID: input.Name + "-id", Name: input.Name}
	f.recipes = append(f.recipes, r)
	return &r, nil
}

func TestLoader_Load(t *testing.T) {
	loader := NewLoader()

	t.Run("valid catalog", func(t *testing.T) {
		path := createTempFile(t, `{
			"version": "1.0",
			"description": "Test recipes",
			"recipes": [
				{
					"name": "Pancakes",
					"category": "Breakfast",
					"cooking_time": 20,
					"servings": 2,
					"ingredients": [
						{"name": "Flour", "amount": 200, "unit": "g", "category": "grains"},
						{"name": "Milk", "amount": 300, "unit": "ml", "category": "dairy"}
					],
					"instructions": ["Whisk", "Fry"]
				}
			]
		}`)

		config, err := loader.Load(path)
		require.NoError(t, err)
		assert.Equal(t, "1.0", config.Version)
		assert.Equal(t, "Test recipes", config.Description)
		require.Len(t, config.Recipes, 1)

		r := config.Recipes[0]
		assert.Equal(t, "Pancakes", r.Name)
		require.NotNil(t, r.Category)
		assert.Equal(t, "Breakfast", *r.Category)
		assert.Equal(t, 20, r.CookingTime)
		require.Len(t, r.Ingredients, 2)
		assert.Equal(t, domain.CategoryDairy, r.Ingredients[1].Category)
		assert.InDelta(t, 300, r.Ingredients[1].Amount, 0.0001)
	})

	t.Run("file not found", func(t *testing.T) {
		_, err := loader.Load("/nonexistent/recipes.json")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to read recipe catalog")
	})

	t.Run("invalid JSON", func(t *testing.T) {
		_, err := loader.Load(createTempFile(t, `{invalid json}`))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to parse recipe catalog")
	})

	t.Run("schema violation", func(t *testing.T) {
		path := createTempFile(t, `{
			"version": "1.0",
			"recipes": [
				{
					"name": "Bad",
					"cooking_time": 20,
					"servings": 2,
					"ingredients": [{"name": "Rice", "amount": 1, "unit": "cup", "category": "starch"}],
					"instructions": ["Boil"]
				}
			]
		}`)

		_, err := loader.Load(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "schema validation failed")
	})

	t.Run("shipped catalog", func(t *testing.T) {
		config, err := loader.Load(filepath.Join("..", "..", "configs", ConfigFileName))
		require.NoError(t, err)
		assert.NotEmpty(t, config.Recipes)
		assert.NoError(t, loader.Validate(config))
	})
}

func TestLoader_Validate(t *testing.T) {
	loader := NewLoader()

	t.Run("valid config", func(t *testing.T) {
		config := &Config{Version: "1.0", Recipes: []domain.CreateRecipeInput{
			sampleRecipe("Bread"),
			sampleRecipe("Cake"),
		}}
		assert.NoError(t, loader.Validate(config))
	})

	t.Run("nil config", func(t *testing.T) {
		err := loader.Validate(nil)
		assert.ErrorIs(t, err, ErrInvalidConfig)
	})

	t.Run("no recipes", func(t *testing.T) {
		err := loader.Validate(&Config{Version: "1.0"})
		assert.ErrorIs(t, err, ErrInvalidConfig)
		assert.Contains(t, err.Error(), ErrMsgNoRecipesDefined)
	})

	t.Run("blank name", func(t *testing.T) {
		err := loader.Validate(&Config{Recipes: []domain.CreateRecipeInput{sampleRecipe("   ")}})
		assert.ErrorIs(t, err, ErrInvalidConfig)
		assert.Contains(t, err.Error(), "index 0")
	})

	t.Run("duplicate names ignore case and padding", func(t *testing.T) {
		config := &Config{Recipes: []domain.CreateRecipeInput{
			sampleRecipe("Bread"),
			sampleRecipe(" BREAD "),
		}}
		err := loader.Validate(config)
		assert.ErrorIs(t, err, ErrDuplicateRecipeName)
	})

	t.Run("recipe breaking write rules", func(t *testing.T) {
		bad := sampleRecipe("Soup")
		bad.Instructions = []string{"Stir", "  "}
		err := loader.Validate(&Config{Recipes: []domain.CreateRecipeInput{bad}})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidConfig)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
		assert.Contains(t, err.Error(), "'Soup'")
	})
}

func TestLoader_Import(t *testing.T) {
	loader := NewLoader()
	ctx := context.Background()

	t.Run("inserts new and skips existing names", func(t *testing.T) {
		store := &fakeStore{recipes: []domain.Recipe{{ID: "r1", Name: "bread"}}}
		config := &Config{Version: "1.0", Recipes: []domain.CreateRecipeInput{
			sampleRecipe("Bread"),
			sampleRecipe("Cake"),
			sampleRecipe("Pie"),
		}}

		result, err := loader.Import(ctx, config, store)
		require.NoError(t, err)
		assert.Equal(t, &ImportResult{Inserted: 2, Skipped: 1}, result)
		assert.Len(t, store.recipes, 3)
	})

	t.Run("second run is a no-op", func(t *testing.T) {
		store := &fakeStore{}
		config := &Config{Recipes: []domain.CreateRecipeInput{sampleRecipe("Cake")}}

		_, err := loader.Import(ctx, config, store)
		require.NoError(t, err)
		result, err := loader.Import(ctx, config, store)
		require.NoError(t, err)
		assert.Equal(t, &ImportResult{Inserted: 0, Skipped: 1}, result)
		assert.Len(t, store.recipes, 1)
	})

	t.Run("duplicates inside one catalog insert once", func(t *testing.T) {
		store := &fakeStore{}
		config := &Config{Recipes: []domain.CreateRecipeInput{sampleRecipe("Cake"), sampleRecipe("cake")}}

		result, err := loader.Import(ctx, config, store)
		require.NoError(t, err)
		assert.Equal(t, &ImportResult{Inserted: 1, Skipped: 1}, result)
	})

	t.Run("list failure", func(t *testing.T) {
		store := &fakeStore{listErr: errors.New("connection refused")}
		_, err := loader.Import(ctx, &Config{}, store)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to list existing recipes")
	})

	t.Run("insert failure reports partial progress", func(t *testing.T) {
		store := &fakeStore{createErr: domain.ErrStoreClosed}
		config := &Config{Recipes: []domain.CreateRecipeInput{sampleRecipe("Cake")}}

		result, err := loader.Import(ctx, config, store)
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrStoreClosed)
		assert.Equal(t, 0, result.Inserted)
	})
}
