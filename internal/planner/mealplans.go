package planner

import (
	"context"
	"fmt"

	"github.com/osse101/MealPlanner_Go/internal/aggregate"
	"github.com/osse101/MealPlanner_Go/internal/domain"
	"github.com/osse101/MealPlanner_Go/internal/logger"
)

func (s *service) CreateMealPlan(ctx context.Context, input domain.CreateMealPlanInput) (*domain.MealPlan, error) {
	if err := s.validator.MealPlanInput(input); err != nil {
		return nil, err
	}
	plan, err := s.mealPlans.Create(ctx, input)
	if err != nil {
		return nil, err
	}
	s.mealPlanCache.Set(plan.ID, *plan)
	return plan, nil
}

// GetMealPlan returns (nil, nil) when the plan does not exist
func (s *service) GetMealPlan(ctx context.Context, id string) (*domain.MealPlan, error) {
	if plan, ok := s.mealPlanCache.Get(id); ok {
		return &plan, nil
	}
	plan, err := s.mealPlans.FindByID(ctx, id)
	if err != nil || plan == nil {
		return nil, err
	}
	s.mealPlanCache.Set(plan.ID, *plan)
	return plan, nil
}

func (s *service) ListMealPlans(ctx context.Context) ([]domain.MealPlan, error) {
	plans, err := s.mealPlans.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	s.cacheMealPlans(plans)
	return plans, nil
}

// MealPlansInRange returns the plans dated between start and end inclusive
func (s *service) MealPlansInRange(ctx context.Context, start, end string) ([]domain.MealPlan, error) {
	if err := checkRange(start, end); err != nil {
		return nil, err
	}
	plans, err := s.mealPlans.FindByDateRange(ctx, start, end)
	if err != nil {
		return nil, err
	}
	s.cacheMealPlans(plans)
	return plans, nil
}

// MealPlansForWeek returns the plans of the Monday to Sunday week containing date
func (s *service) MealPlansForWeek(ctx context.Context, date string) ([]domain.MealPlan, error) {
	monday, sunday, ok := aggregate.WeekBounds(date)
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidDate, date)
	}
	return s.MealPlansInRange(ctx, monday, sunday)
}

func (s *service) UpdateMealPlan(ctx context.Context, patch domain.MealPlanPatch) (*domain.MealPlan, error) {
	if err := s.validator.MealPlanPatch(patch); err != nil {
		return nil, err
	}
	plan, err := s.mealPlans.Update(ctx, patch)
	if err != nil {
		s.mealPlanCache.Invalidate(patch.ID)
		return nil, err
	}
	s.mealPlanCache.Set(plan.ID, *plan)
	return plan, nil
}

// DeleteMealPlan deletes the plan and then detaches it from the shopping list.
// A failure to detach is logged; the plan stays deleted.
func (s *service) DeleteMealPlan(ctx context.Context, id string) (bool, error) {
	log := logger.FromContext(ctx)

	s.mealPlanCache.Invalidate(id)
	deleted, err := s.mealPlans.Delete(ctx, id)
	if err != nil || !deleted {
		return deleted, err
	}

	removed, err := s.shopping.DeleteByMealPlan(ctx, id)
	// items that kept other sources were rewritten too
	s.itemCache.Clear()
	if err != nil {
		log.Warn(LogMsgMealPlanPruneFailed, "meal_plan_id", id, "error", err)
		return true, nil
	}
	log.Debug(LogMsgMealPlanDeleted, "meal_plan_id", id, "shopping_items_removed", removed)
	return true, nil
}

func (s *service) cacheMealPlans(plans []domain.MealPlan) {
	for _, p := range plans {
		s.mealPlanCache.Set(p.ID, p)
	}
}

// checkRange validates both bounds as dates. A start after end is not an
// error; the range is simply empty.
func checkRange(start, end string) error {
	for _, d := range []string{start, end} {
		if !domain.IsISODate(d) {
			return fmt.Errorf("%w: %s", domain.ErrInvalidDate, d)
		}
	}
	return nil
}
