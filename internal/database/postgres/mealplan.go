package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/MealPlanner_Go/internal/database"
	"github.com/osse101/MealPlanner_Go/internal/database/generated"
	"github.com/osse101/MealPlanner_Go/internal/domain"
	"github.com/osse101/MealPlanner_Go/internal/logger"
	"github.com/osse101/MealPlanner_Go/internal/metrics"
	"github.com/osse101/MealPlanner_Go/internal/repository"
)

// MealPlanRepository implements repository.MealPlan for PostgreSQL
type MealPlanRepository struct {
	store database.Handle
}

var _ repository.MealPlan = (*MealPlanRepository)(nil)

// NewMealPlanRepository creates a new MealPlanRepository
func NewMealPlanRepository(store database.Handle) *MealPlanRepository {
	return &MealPlanRepository{store: store}
}

// Create inserts a new meal plan and returns it with its generated fields
func (r *MealPlanRepository) Create(ctx context.Context, input domain.CreateMealPlanInput) (_ *domain.MealPlan, err error) {
	defer metrics.ObserveStorage(domain.EntityMealPlan, opCreate, time.Now(), &err)

	_, q, err := conn(r.store)
	if err != nil {
		return nil, err
	}

	date, err := toDate(input.Date)
	if err != nil {
		return nil, storageError(domain.OpCreate, domain.EntityMealPlan, "", err)
	}
	recipeIDs, err := encodeStrings(input.RecipeIDs)
	if err != nil {
		return nil, storageError(domain.OpCreate, domain.EntityMealPlan, "", err)
	}

	row, err := q.InsertMealPlan(ctx, generated.InsertMealPlanParams{
		ID:        uuid.New(),
		Name:      input.Name,
		Date:      date,
		MealType:  string(input.MealType),
		RecipeIds: recipeIDs,
		Now:       timestamptz(now()),
	})
	if err != nil {
		return nil, storageError(domain.OpCreate, domain.EntityMealPlan, "", err)
	}

	plan, err := mapMealPlan(row)
	if err != nil {
		return nil, storageError(domain.OpCreate, domain.EntityMealPlan, row.ID.String(), err)
	}

	logger.FromContext(ctx).Debug(LogMsgMealPlanCreated, "id", plan.ID, "date", plan.Date, "meal_type", plan.MealType)
	return plan, nil
}

// FindByID returns the meal plan, or nil if it does not exist
func (r *MealPlanRepository) FindByID(ctx context.Context, id string) (_ *domain.MealPlan, err error) {
	defer metrics.ObserveStorage(domain.EntityMealPlan, opFind, time.Now(), &err)

	_, q, err := conn(r.store)
	if err != nil {
		return nil, err
	}

	planID, ok := parseID(id)
	if !ok {
		return nil, nil
	}

	row, err := q.GetMealPlanByID(ctx, planID)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, storageError(domain.OpFind, domain.EntityMealPlan, id, err)
	}

	plan, err := mapMealPlan(row)
	if err != nil {
		return nil, storageError(domain.OpFind, domain.EntityMealPlan, id, err)
	}
	return plan, nil
}

// FindAll returns every meal plan, newest date first, breakfast before lunch before dinner
func (r *MealPlanRepository) FindAll(ctx context.Context) (_ []domain.MealPlan, err error) {
	defer metrics.ObserveStorage(domain.EntityMealPlan, opFindAll, time.Now(), &err)

	_, q, err := conn(r.store)
	if err != nil {
		return nil, err
	}

	rows, err := q.ListMealPlans(ctx)
	if err != nil {
		return nil, storageError(domain.OpFind, domain.EntityMealPlan, "", err)
	}
	return mapMealPlans(rows)
}

// FindByDateRange returns meal plans dated within [start, end], oldest first
func (r *MealPlanRepository) FindByDateRange(ctx context.Context, start, end string) (_ []domain.MealPlan, err error) {
	defer metrics.ObserveStorage(domain.EntityMealPlan, opFindByRange, time.Now(), &err)

	_, q, err := conn(r.store)
	if err != nil {
		return nil, err
	}

	startDate, err := toDate(start)
	if err != nil {
		return nil, storageError(domain.OpFind, domain.EntityMealPlan, "", err)
	}
	endDate, err := toDate(end)
	if err != nil {
		return nil, storageError(domain.OpFind, domain.EntityMealPlan, "", err)
	}

	rows, err := q.ListMealPlansByDateRange(ctx, generated.ListMealPlansByDateRangeParams{
		StartDate: startDate,
		EndDate:   endDate,
	})
	if err != nil {
		return nil, storageError(domain.OpFind, domain.EntityMealPlan, "", err)
	}
	return mapMealPlans(rows)
}

// FindByDate returns the meal plans of a single day in meal type order
func (r *MealPlanRepository) FindByDate(ctx context.Context, date string) ([]domain.MealPlan, error) {
	return r.FindByDateRange(ctx, date, date)
}

// FindByMealType returns meal plans of one meal type, newest date first
func (r *MealPlanRepository) FindByMealType(ctx context.Context, mealType domain.MealType) (_ []domain.MealPlan, err error) {
	defer metrics.ObserveStorage(domain.EntityMealPlan, opFindByType, time.Now(), &err)

	_, q, err := conn(r.store)
	if err != nil {
		return nil, err
	}

	rows, err := q.ListMealPlansByMealType(ctx, string(mealType))
	if err != nil {
		return nil, storageError(domain.OpFind, domain.EntityMealPlan, "", err)
	}
	return mapMealPlans(rows)
}

// Update applies the set fields of patch and returns the stored result.
// The row is locked for the duration of the read-modify-write.
func (r *MealPlanRepository) Update(ctx context.Context, patch domain.MealPlanPatch) (_ *domain.MealPlan, err error) {
	defer metrics.ObserveStorage(domain.EntityMealPlan, opUpdate, time.Now(), &err)

	pool, q, err := conn(r.store)
	if err != nil {
		return nil, err
	}

	planID, ok := parseID(patch.ID)
	if !ok {
		return nil, domain.NotFoundError(domain.ErrMealPlanNotFound, patch.ID)
	}

	tx, err := beginTx(ctx, pool, q)
	if err != nil {
		return nil, storageError(domain.OpUpdate, domain.EntityMealPlan, patch.ID, err)
	}
	defer SafeRollback(ctx, tx.Tx())

	current, err := tx.Queries().GetMealPlanByIDForUpdate(ctx, planID)
	if err != nil {
		if isNoRows(err) {
			return nil, domain.NotFoundError(domain.ErrMealPlanNotFound, patch.ID)
		}
		return nil, storageError(domain.OpUpdate, domain.EntityMealPlan, patch.ID, err)
	}

	params, err := buildMealPlanUpdate(planID, patch)
	if err != nil {
		return nil, storageError(domain.OpUpdate, domain.EntityMealPlan, patch.ID, err)
	}
	params.UpdatedAt = timestamptz(nextUpdatedAt(current.UpdatedAt))

	if _, err := tx.Queries().UpdateMealPlan(ctx, params); err != nil {
		return nil, storageError(domain.OpUpdate, domain.EntityMealPlan, patch.ID, err)
	}

	row, err := tx.Queries().GetMealPlanByID(ctx, planID)
	if err != nil {
		return nil, storageError(domain.OpUpdate, domain.EntityMealPlan, patch.ID, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, storageError(domain.OpUpdate, domain.EntityMealPlan, patch.ID, err)
	}

	plan, err := mapMealPlan(row)
	if err != nil {
		return nil, storageError(domain.OpUpdate, domain.EntityMealPlan, patch.ID, err)
	}
	return plan, nil
}

// Delete removes the meal plan. Recipes it references are untouched.
func (r *MealPlanRepository) Delete(ctx context.Context, id string) (_ bool, err error) {
	defer metrics.ObserveStorage(domain.EntityMealPlan, opDelete, time.Now(), &err)

	_, q, err := conn(r.store)
	if err != nil {
		return false, err
	}

	planID, ok := parseID(id)
	if !ok {
		return false, domain.NotFoundError(domain.ErrMealPlanNotFound, id)
	}

	affected, err := q.DeleteMealPlan(ctx, planID)
	if err != nil {
		return false, storageError(domain.OpDelete, domain.EntityMealPlan, id, err)
	}
	if affected == 0 {
		return false, domain.NotFoundError(domain.ErrMealPlanNotFound, id)
	}

	logger.FromContext(ctx).Debug(LogMsgMealPlanDeleted, "id", id)
	return true, nil
}

func buildMealPlanUpdate(id uuid.UUID, patch domain.MealPlanPatch) (generated.UpdateMealPlanParams, error) {
	params := generated.UpdateMealPlanParams{ID: id}

	if name, ok := patch.Name.Get(); ok {
		params.Name = strToText(name)
	}
	if date, ok := patch.Date.Get(); ok {
		d, err := toDate(date)
		if err != nil {
			return params, err
		}
		params.Date = d
	}
	if mealType, ok := patch.MealType.Get(); ok {
		params.MealType = strToText(string(mealType))
	}
	if recipeIDs, ok := patch.RecipeIDs.Get(); ok {
		data, err := encodeStrings(recipeIDs)
		if err != nil {
			return params, err
		}
		params.RecipeIds = data
	}
	return params, nil
}

func mapMealPlan(row generated.MealPlan) (*domain.MealPlan, error) {
	recipeIDs, err := decodeStrings(row.RecipeIds)
	if err != nil {
		return nil, err
	}
	return &domain.MealPlan{
		ID:        row.ID.String(),
		Name:      row.Name,
		Date:      fromDate(row.Date),
		MealType:  domain.MealType(row.MealType),
		RecipeIDs: recipeIDs,
		CreatedAt: fromTimestamptz(row.CreatedAt),
		UpdatedAt: fromTimestamptz(row.UpdatedAt),
	}, nil
}

func mapMealPlans(rows []generated.MealPlan) ([]domain.MealPlan, error) {
	plans := make([]domain.MealPlan, 0, len(rows))
	for _, row := range rows {
		plan, err := mapMealPlan(row)
		if err != nil {
			return nil, storageError(domain.OpFind, domain.EntityMealPlan, row.ID.String(), err)
		}
		plans = append(plans, *plan)
	}
	return plans, nil
}
