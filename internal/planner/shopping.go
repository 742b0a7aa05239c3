package planner

import (
	"context"
	"errors"

	"github.com/osse101/MealPlanner_Go/internal/aggregate"
	"github.com/osse101/MealPlanner_Go/internal/domain"
	"github.com/osse101/MealPlanner_Go/internal/logger"
	"github.com/osse101/MealPlanner_Go/internal/metrics"
)

func (s *service) CreateShoppingItem(ctx context.Context, input domain.CreateShoppingListItemInput) (*domain.ShoppingListItem, error) {
	if err := s.validator.ShoppingListItemInput(input); err != nil {
		return nil, err
	}
	item, err := s.shopping.Create(ctx, input)
	if err != nil {
		return nil, err
	}
	s.itemCache.Set(item.ID, *item)
	return item, nil
}

func (s *service) ListShoppingItems(ctx context.Context) ([]domain.ShoppingListItem, error) {
	items, err := s.shopping.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	for _, it := range items {
		s.itemCache.Set(it.ID, it)
	}
	return items, nil
}

// CachedShoppingItem returns the item as the service currently believes it
// to be, including an optimistic toggle still in flight
func (s *service) CachedShoppingItem(id string) (domain.ShoppingListItem, bool) {
	return s.itemCache.Peek(id)
}

func (s *service) UpdateShoppingItem(ctx context.Context, patch domain.ShoppingListItemPatch) (*domain.ShoppingListItem, error) {
	if err := s.validator.ShoppingListItemPatch(patch); err != nil {
		return nil, err
	}
	item, err := s.shopping.Update(ctx, patch)
	if err != nil {
		s.itemCache.Invalidate(patch.ID)
		return nil, err
	}
	s.itemCache.Set(item.ID, *item)
	return item, nil
}

func (s *service) DeleteShoppingItem(ctx context.Context, id string) (bool, error) {
	s.itemCache.Invalidate(id)
	return s.shopping.Delete(ctx, id)
}

// ToggleItem flips the cached checked state before the write and restores
// the previous cached item if the write fails
func (s *service) ToggleItem(ctx context.Context, id string) (*domain.ShoppingListItem, error) {
	prev, cached := s.itemCache.Get(id)
	if cached {
		optimistic := prev
		optimistic.IsChecked = !prev.IsChecked
		s.itemCache.Set(id, optimistic)
	}

	item, err := s.shopping.ToggleChecked(ctx, id)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			s.itemCache.Invalidate(id)
		case cached:
			s.itemCache.Set(id, prev)
			metrics.OptimisticRollbacks.WithLabelValues(domain.EntityShoppingListItem).Inc()
			logger.FromContext(ctx).Warn(LogMsgOptimisticRollback, "item_id", id, "error", err)
		}
		return nil, err
	}

	s.itemCache.Set(item.ID, *item)
	return item, nil
}

func (s *service) ClearChecked(ctx context.Context) (int64, error) {
	defer s.itemCache.Clear()
	return s.shopping.ClearCheckedItems(ctx)
}

func (s *service) SetAllChecked(ctx context.Context, checked bool) (int64, error) {
	defer s.itemCache.Clear()
	return s.shopping.SetAllChecked(ctx, checked)
}

// GenerateShoppingList consolidates the ingredients of every recipe planned
// between start and end (inclusive) and stores one item per ingredient and
// unit. Items are always appended: existing items are never merged or
// replaced, so generating the same range twice lists every need twice.
// Every consolidated need is validated before any item is written; if a
// write fails, the items already written are returned with the error.
func (s *service) GenerateShoppingList(ctx context.Context, start, end string) ([]domain.ShoppingListItem, error) {
	log := logger.FromContext(ctx)

	plans, err := s.MealPlansInRange(ctx, start, end)
	if err != nil {
		return nil, err
	}

	recipeIDs := aggregate.ReferencedRecipeIDs(plans)
	recipes, err := s.RecipesByIDs(ctx, recipeIDs)
	if err != nil {
		return nil, err
	}
	if len(recipes) < len(recipeIDs) {
		log.Debug(LogMsgDanglingRecipes, "referenced", len(recipeIDs), "found", len(recipes))
	}

	needs := aggregate.ConsolidateIngredients(plans, aggregate.IndexRecipes(recipes))
	for _, need := range needs {
		if err := s.validator.ShoppingListItemInput(need); err != nil {
			return nil, err
		}
	}

	items := make([]domain.ShoppingListItem, 0, len(needs))
	for _, need := range needs {
		item, err := s.shopping.Create(ctx, need)
		if err != nil {
			return items, err
		}
		s.itemCache.Set(item.ID, *item)
		items = append(items, *item)
		metrics.ShoppingItemsGenerated.Inc()
	}

	log.Info(LogMsgShoppingListGenerated,
		"start", start, "end", end, "meal_plans", len(plans), "items", len(items))
	return items, nil
}
