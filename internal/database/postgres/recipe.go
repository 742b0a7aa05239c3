package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/MealPlanner_Go/internal/database"
	"github.com/osse101/MealPlanner_Go/internal/database/generated"
	"github.com/osse101/MealPlanner_Go/internal/domain"
	"github.com/osse101/MealPlanner_Go/internal/logger"
	"github.com/osse101/MealPlanner_Go/internal/metrics"
	"github.com/osse101/MealPlanner_Go/internal/repository"
)

// RecipeRepository implements repository.Recipe for PostgreSQL.
// Ingredients are child rows written and removed together with their recipe.
type RecipeRepository struct {
	store database.Handle
}

var _ repository.Recipe = (*RecipeRepository)(nil)

// NewRecipeRepository creates a new RecipeRepository
func NewRecipeRepository(store database.Handle) *RecipeRepository {
	return &RecipeRepository{store: store}
}

// Create inserts the recipe and its ingredients in one transaction
func (r *RecipeRepository) Create(ctx context.Context, input domain.CreateRecipeInput) (_ *domain.Recipe, err error) {
	defer metrics.ObserveStorage(domain.EntityRecipe, opCreate, time.Now(), &err)

	pool, q, err := conn(r.store)
	if err != nil {
		return nil, err
	}

	instructions, err := encodeStrings(input.Instructions)
	if err != nil {
		return nil, storageError(domain.OpCreate, domain.EntityRecipe, "", err)
	}

	tx, err := beginTx(ctx, pool, q)
	if err != nil {
		return nil, storageError(domain.OpCreate, domain.EntityRecipe, "", err)
	}
	defer SafeRollback(ctx, tx.Tx())

	recipeID := uuid.New()
	row, err := tx.Queries().InsertRecipe(ctx, generated.InsertRecipeParams{
		ID:           recipeID,
		Name:         input.Name,
		Instructions: instructions,
		CookingTime:  int32(input.CookingTime),
		Servings:     int32(input.Servings),
		Category:     ptrToText(input.Category),
		Now:          timestamptz(now()),
	})
	if err != nil {
		return nil, storageError(domain.OpCreate, domain.EntityRecipe, "", err)
	}

	ingredients, err := insertIngredients(ctx, tx.Queries(), recipeID, input.Ingredients)
	if err != nil {
		return nil, storageError(domain.OpCreate, domain.EntityRecipe, recipeID.String(), err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, storageError(domain.OpCreate, domain.EntityRecipe, recipeID.String(), err)
	}

	recipe, err := mapRecipe(row, ingredients)
	if err != nil {
		return nil, storageError(domain.OpCreate, domain.EntityRecipe, recipeID.String(), err)
	}

	logger.FromContext(ctx).Debug(LogMsgRecipeCreated, "id", recipe.ID, "ingredients", len(ingredients))
	return recipe, nil
}

// FindByID returns the recipe with its ingredients, or nil if it does not exist
func (r *RecipeRepository) FindByID(ctx context.Context, id string) (_ *domain.Recipe, err error) {
	defer metrics.ObserveStorage(domain.EntityRecipe, opFind, time.Now(), &err)

	_, q, err := conn(r.store)
	if err != nil {
		return nil, err
	}

	recipeID, ok := parseID(id)
	if !ok {
		return nil, nil
	}

	recipe, err := loadRecipe(ctx, q, recipeID)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, storageError(domain.OpFind, domain.EntityRecipe, id, err)
	}
	return recipe, nil
}

// FindAll returns every recipe ordered by name
func (r *RecipeRepository) FindAll(ctx context.Context) (_ []domain.Recipe, err error) {
	defer metrics.ObserveStorage(domain.EntityRecipe, opFindAll, time.Now(), &err)

	_, q, err := conn(r.store)
	if err != nil {
		return nil, err
	}

	rows, err := q.ListRecipes(ctx)
	if err != nil {
		return nil, storageError(domain.OpFind, domain.EntityRecipe, "", err)
	}
	return hydrateRecipes(ctx, q, rows)
}

// FindByCategory returns the recipes whose category equals category exactly
func (r *RecipeRepository) FindByCategory(ctx context.Context, category string) (_ []domain.Recipe, err error) {
	defer metrics.ObserveStorage(domain.EntityRecipe, opFindByCategory, time.Now(), &err)

	_, q, err := conn(r.store)
	if err != nil {
		return nil, err
	}

	rows, err := q.ListRecipesByCategory(ctx, strToText(category))
	if err != nil {
		return nil, storageError(domain.OpFind, domain.EntityRecipe, "", err)
	}
	return hydrateRecipes(ctx, q, rows)
}

// FindByIDs returns the recipes among ids that exist, ordered by name
func (r *RecipeRepository) FindByIDs(ctx context.Context, ids []string) (_ []domain.Recipe, err error) {
	defer metrics.ObserveStorage(domain.EntityRecipe, opFindByIDs, time.Now(), &err)

	_, q, err := conn(r.store)
	if err != nil {
		return nil, err
	}

	valid := validIDs(ids)
	if len(valid) == 0 {
		return []domain.Recipe{}, nil
	}

	rows, err := q.ListRecipesByIDs(ctx, valid)
	if err != nil {
		return nil, storageError(domain.OpFind, domain.EntityRecipe, "", err)
	}
	return hydrateRecipes(ctx, q, rows)
}

// Count returns the number of stored recipes
func (r *RecipeRepository) Count(ctx context.Context) (_ int64, err error) {
	defer metrics.ObserveStorage(domain.EntityRecipe, opCount, time.Now(), &err)

	_, q, err := conn(r.store)
	if err != nil {
		return 0, err
	}

	count, err := q.CountRecipes(ctx)
	if err != nil {
		return 0, storageError(domain.OpFind, domain.EntityRecipe, "", err)
	}
	return count, nil
}

// Update applies the set fields of patch. A set Ingredients field deletes every
// existing ingredient row and inserts the new list with fresh ids.
func (r *RecipeRepository) Update(ctx context.Context, patch domain.RecipePatch) (_ *domain.Recipe, err error) {
	defer metrics.ObserveStorage(domain.EntityRecipe, opUpdate, time.Now(), &err)

	pool, q, err := conn(r.store)
	if err != nil {
		return nil, err
	}

	recipeID, ok := parseID(patch.ID)
	if !ok {
		return nil, domain.NotFoundError(domain.ErrRecipeNotFound, patch.ID)
	}

	tx, err := beginTx(ctx, pool, q)
	if err != nil {
		return nil, storageError(domain.OpUpdate, domain.EntityRecipe, patch.ID, err)
	}
	defer SafeRollback(ctx, tx.Tx())

	current, err := tx.Queries().GetRecipeByIDForUpdate(ctx, recipeID)
	if err != nil {
		if isNoRows(err) {
			return nil, domain.NotFoundError(domain.ErrRecipeNotFound, patch.ID)
		}
		return nil, storageError(domain.OpUpdate, domain.EntityRecipe, patch.ID, err)
	}

	if ingredients, ok := patch.Ingredients.Get(); ok {
		if _, err := tx.Queries().DeleteIngredientsByRecipeID(ctx, recipeID); err != nil {
			return nil, storageError(domain.OpUpdate, domain.EntityRecipe, patch.ID,
				fmt.Errorf("%s: %w", ErrMsgFailedToDeleteIngredients, err))
		}
		if _, err := insertIngredients(ctx, tx.Queries(), recipeID, ingredients); err != nil {
			return nil, storageError(domain.OpUpdate, domain.EntityRecipe, patch.ID, err)
		}
		logger.FromContext(ctx).Debug(LogMsgIngredientsReplaced, "id", patch.ID, "ingredients", len(ingredients))
	}

	params, err := buildRecipeUpdate(recipeID, patch)
	if err != nil {
		return nil, storageError(domain.OpUpdate, domain.EntityRecipe, patch.ID, err)
	}
	params.UpdatedAt = timestamptz(nextUpdatedAt(current.UpdatedAt))

	if _, err := tx.Queries().UpdateRecipe(ctx, params); err != nil {
		return nil, storageError(domain.OpUpdate, domain.EntityRecipe, patch.ID, err)
	}

	recipe, err := loadRecipe(ctx, tx.Queries(), recipeID)
	if err != nil {
		return nil, storageError(domain.OpUpdate, domain.EntityRecipe, patch.ID, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, storageError(domain.OpUpdate, domain.EntityRecipe, patch.ID, err)
	}
	return recipe, nil
}

// Delete removes the ingredient rows and then the recipe in one transaction
func (r *RecipeRepository) Delete(ctx context.Context, id string) (_ bool, err error) {
	defer metrics.ObserveStorage(domain.EntityRecipe, opDelete, time.Now(), &err)

	pool, q, err := conn(r.store)
	if err != nil {
		return false, err
	}

	recipeID, ok := parseID(id)
	if !ok {
		return false, domain.NotFoundError(domain.ErrRecipeNotFound, id)
	}

	tx, err := beginTx(ctx, pool, q)
	if err != nil {
		return false, storageError(domain.OpDelete, domain.EntityRecipe, id, err)
	}
	defer SafeRollback(ctx, tx.Tx())

	removed, err := tx.Queries().DeleteIngredientsByRecipeID(ctx, recipeID)
	if err != nil {
		return false, storageError(domain.OpDelete, domain.EntityRecipe, id,
			fmt.Errorf("%s: %w", ErrMsgFailedToDeleteIngredients, err))
	}

	affected, err := tx.Queries().DeleteRecipe(ctx, recipeID)
	if err != nil {
		return false, storageError(domain.OpDelete, domain.EntityRecipe, id, err)
	}
	if affected == 0 {
		return false, domain.NotFoundError(domain.ErrRecipeNotFound, id)
	}

	if err := tx.Commit(ctx); err != nil {
		return false, storageError(domain.OpDelete, domain.EntityRecipe, id, err)
	}

	logger.FromContext(ctx).Debug(LogMsgRecipeDeleted, "id", id, "ingredients", removed)
	return true, nil
}

// FindIngredientByID returns a single ingredient row, or nil if it does not exist
func (r *RecipeRepository) FindIngredientByID(ctx context.Context, id string) (_ *domain.Ingredient, err error) {
	defer metrics.ObserveStorage(domain.EntityIngredient, opFind, time.Now(), &err)

	_, q, err := conn(r.store)
	if err != nil {
		return nil, err
	}

	ingredientID, ok := parseID(id)
	if !ok {
		return nil, nil
	}

	row, err := q.GetIngredientByID(ctx, ingredientID)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, storageError(domain.OpFind, domain.EntityIngredient, id, err)
	}

	ingredient := mapIngredient(row)
	return &ingredient, nil
}

// insertIngredients writes the list in order with fresh ids and returns the stored form
func insertIngredients(ctx context.Context, q *generated.Queries, recipeID uuid.UUID, inputs []domain.IngredientInput) ([]domain.Ingredient, error) {
	ingredients := make([]domain.Ingredient, 0, len(inputs))
	if len(inputs) == 0 {
		return ingredients, nil
	}

	params := make([]generated.InsertIngredientsParams, 0, len(inputs))
	for i, in := range inputs {
		id := uuid.New()
		params = append(params, generated.InsertIngredientsParams{
			ID:       id,
			RecipeID: recipeID,
			Position: int32(i),
			Name:     in.Name,
			Amount:   in.Amount,
			Unit:     in.Unit,
			Category: string(in.Category),
		})
		ingredients = append(ingredients, domain.Ingredient{
			ID:       id.String(),
			RecipeID: recipeID.String(),
			Name:     in.Name,
			Amount:   in.Amount,
			Unit:     in.Unit,
			Category: in.Category,
		})
	}

	inserted, err := q.InsertIngredients(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToInsertIngredients, err)
	}
	if inserted != int64(len(params)) {
		return nil, fmt.Errorf("%s: expected %d, got %d", ErrMsgIngredientCountMismatch, len(params), inserted)
	}
	return ingredients, nil
}

// loadRecipe reads the recipe row and its ingredient rows and merges them.
// It returns pgx.ErrNoRows when the recipe does not exist.
func loadRecipe(ctx context.Context, q *generated.Queries, recipeID uuid.UUID) (*domain.Recipe, error) {
	row, err := q.GetRecipeByID(ctx, recipeID)
	if err != nil {
		return nil, err
	}

	ingredientRows, err := q.ListIngredientsByRecipeID(ctx, recipeID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToLoadIngredients, err)
	}

	return mapRecipe(row, mapIngredients(ingredientRows))
}

// hydrateRecipes loads the ingredients of every row with a single query
func hydrateRecipes(ctx context.Context, q *generated.Queries, rows []generated.Recipe) ([]domain.Recipe, error) {
	recipes := make([]domain.Recipe, 0, len(rows))
	if len(rows) == 0 {
		return recipes, nil
	}

	ids := make([]string, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.ID.String())
	}

	ingredientRows, err := q.ListIngredientsByRecipeIDs(ctx, ids)
	if err != nil {
		return nil, storageError(domain.OpFind, domain.EntityRecipe, "",
			fmt.Errorf("%s: %w", ErrMsgFailedToLoadIngredients, err))
	}

	byRecipe := make(map[uuid.UUID][]domain.Ingredient, len(rows))
	for _, ir := range ingredientRows {
		byRecipe[ir.RecipeID] = append(byRecipe[ir.RecipeID], mapIngredient(ir))
	}

	for _, row := range rows {
		ingredients := byRecipe[row.ID]
		if ingredients == nil {
			ingredients = []domain.Ingredient{}
		}
		recipe, err := mapRecipe(row, ingredients)
		if err != nil {
			return nil, storageError(domain.OpFind, domain.EntityRecipe, row.ID.String(), err)
		}
		recipes = append(recipes, *recipe)
	}
	return recipes, nil
}

func buildRecipeUpdate(id uuid.UUID, patch domain.RecipePatch) (generated.UpdateRecipeParams, error) {
	params := generated.UpdateRecipeParams{ID: id}

	if name, ok := patch.Name.Get(); ok {
		params.Name = strToText(name)
	}
	if instructions, ok := patch.Instructions.Get(); ok {
		data, err := encodeStrings(instructions)
		if err != nil {
			return params, err
		}
		params.Instructions = data
	}
	if cookingTime, ok := patch.CookingTime.Get(); ok {
		params.CookingTime = intToInt4(cookingTime)
	}
	if servings, ok := patch.Servings.Get(); ok {
		params.Servings = intToInt4(servings)
	}
	if category, ok := patch.Category.Get(); ok {
		params.SetCategory = true
		params.Category = ptrToText(category)
	}
	return params, nil
}

func mapRecipe(row generated.Recipe, ingredients []domain.Ingredient) (*domain.Recipe, error) {
	instructions, err := decodeStrings(row.Instructions)
	if err != nil {
		return nil, err
	}
	if ingredients == nil {
		ingredients = []domain.Ingredient{}
	}
	return &domain.Recipe{
		ID:           row.ID.String(),
		Name:         row.Name,
		Ingredients:  ingredients,
		Instructions: instructions,
		CookingTime:  int(row.CookingTime),
		Servings:     int(row.Servings),
		Category:     textToPtr(row.Category),
		CreatedAt:    fromTimestamptz(row.CreatedAt),
		UpdatedAt:    fromTimestamptz(row.UpdatedAt),
	}, nil
}

func mapIngredient(row generated.Ingredient) domain.Ingredient {
	return domain.Ingredient{
		ID:       row.ID.String(),
		RecipeID: row.RecipeID.String(),
		Name:     row.Name,
		Amount:   row.Amount,
		Unit:     row.Unit,
		Category: domain.IngredientCategory(row.Category),
	}
}

func mapIngredients(rows []generated.Ingredient) []domain.Ingredient {
	ingredients := make([]domain.Ingredient, 0, len(rows))
	for _, row := range rows {
		ingredients = append(ingredients, mapIngredient(row))
	}
	return ingredients
}
