package planner

import (
	"context"

	"github.com/osse101/MealPlanner_Go/internal/domain"
)

func (s *service) CreateRecipe(ctx context.Context, input domain.CreateRecipeInput) (*domain.Recipe, error) {
	if err := s.validator.RecipeInput(input); err != nil {
		return nil, err
	}
	recipe, err := s.recipes.Create(ctx, input)
	if err != nil {
		return nil, err
	}
	s.recipeCache.Set(recipe.ID, *recipe)
	return recipe, nil
}

// GetRecipe returns (nil, nil) when the recipe does not exist
func (s *service) GetRecipe(ctx context.Context, id string) (*domain.Recipe, error) {
	if recipe, ok := s.recipeCache.Get(id); ok {
		return &recipe, nil
	}
	recipe, err := s.recipes.FindByID(ctx, id)
	if err != nil || recipe == nil {
		return nil, err
	}
	s.recipeCache.Set(recipe.ID, *recipe)
	return recipe, nil
}

func (s *service) ListRecipes(ctx context.Context) ([]domain.Recipe, error) {
	recipes, err := s.recipes.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	for _, r := range recipes {
		s.recipeCache.Set(r.ID, r)
	}
	return recipes, nil
}

// RecipesByIDs serves cached recipes and loads the rest in one query.
// Ids that do not exist are skipped; the result follows the order of ids.
func (s *service) RecipesByIDs(ctx context.Context, ids []string) ([]domain.Recipe, error) {
	found := make(map[string]domain.Recipe, len(ids))
	seen := make(map[string]struct{}, len(ids))
	var missing []string
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		if r, ok := s.recipeCache.Get(id); ok {
			found[id] = r
			continue
		}
		missing = append(missing, id)
	}

	if len(missing) > 0 {
		loaded, err := s.recipes.FindByIDs(ctx, missing)
		if err != nil {
			return nil, err
		}
		for _, r := range loaded {
			found[r.ID] = r
			s.recipeCache.Set(r.ID, r)
		}
	}

	out := make([]domain.Recipe, 0, len(found))
	emitted := make(map[string]bool, len(found))
	for _, id := range ids {
		r, ok := found[id]
		if !ok || emitted[id] {
			continue
		}
		emitted[id] = true
		out = append(out, r)
	}
	return out, nil
}

func (s *service) UpdateRecipe(ctx context.Context, patch domain.RecipePatch) (*domain.Recipe, error) {
	if err := s.validator.RecipePatch(patch); err != nil {
		return nil, err
	}
	recipe, err := s.recipes.Update(ctx, patch)
	if err != nil {
		s.recipeCache.Invalidate(patch.ID)
		return nil, err
	}
	s.recipeCache.Set(recipe.ID, *recipe)
	return recipe, nil
}

func (s *service) DeleteRecipe(ctx context.Context, id string) (bool, error) {
	s.recipeCache.Invalidate(id)
	return s.recipes.Delete(ctx, id)
}
