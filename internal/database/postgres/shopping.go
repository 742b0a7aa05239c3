package postgres

import (
	"context"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/osse101/MealPlanner_Go/internal/database"
	"github.com/osse101/MealPlanner_Go/internal/database/generated"
	"github.com/osse101/MealPlanner_Go/internal/domain"
	"github.com/osse101/MealPlanner_Go/internal/logger"
	"github.com/osse101/MealPlanner_Go/internal/metrics"
	"github.com/osse101/MealPlanner_Go/internal/repository"
)

// ShoppingListRepository implements repository.ShoppingList for PostgreSQL
type ShoppingListRepository struct {
	store database.Handle
}

var _ repository.ShoppingList = (*ShoppingListRepository)(nil)

// NewShoppingListRepository creates a new ShoppingListRepository
func NewShoppingListRepository(store database.Handle) *ShoppingListRepository {
	return &ShoppingListRepository{store: store}
}

// Create inserts a new shopping list item
func (r *ShoppingListRepository) Create(ctx context.Context, input domain.CreateShoppingListItemInput) (_ *domain.ShoppingListItem, err error) {
	defer metrics.ObserveStorage(domain.EntityShoppingListItem, opCreate, time.Now(), &err)

	_, q, err := conn(r.store)
	if err != nil {
		return nil, err
	}

	mealPlanIDs, err := encodeStrings(input.MealPlanIDs)
	if err != nil {
		return nil, storageError(domain.OpCreate, domain.EntityShoppingListItem, "", err)
	}

	row, err := q.InsertShoppingListItem(ctx, generated.InsertShoppingListItemParams{
		ID:             uuid.New(),
		IngredientName: input.IngredientName,
		TotalAmount:    input.TotalAmount,
		Unit:           input.Unit,
		Category:       string(input.Category),
		IsChecked:      input.IsChecked,
		MealPlanIds:    mealPlanIDs,
		Now:            timestamptz(now()),
	})
	if err != nil {
		return nil, storageError(domain.OpCreate, domain.EntityShoppingListItem, "", err)
	}

	item, err := mapShoppingListItem(row)
	if err != nil {
		return nil, storageError(domain.OpCreate, domain.EntityShoppingListItem, row.ID.String(), err)
	}

	logger.FromContext(ctx).Debug(LogMsgShoppingItemCreated, "id", item.ID, "ingredient", item.IngredientName)
	return item, nil
}

// FindByID returns the item, or nil if it does not exist
func (r *ShoppingListRepository) FindByID(ctx context.Context, id string) (_ *domain.ShoppingListItem, err error) {
	defer metrics.ObserveStorage(domain.EntityShoppingListItem, opFind, time.Now(), &err)

	_, q, err := conn(r.store)
	if err != nil {
		return nil, err
	}

	itemID, ok := parseID(id)
	if !ok {
		return nil, nil
	}

	row, err := q.GetShoppingListItemByID(ctx, itemID)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, storageError(domain.OpFind, domain.EntityShoppingListItem, id, err)
	}

	item, err := mapShoppingListItem(row)
	if err != nil {
		return nil, storageError(domain.OpFind, domain.EntityShoppingListItem, id, err)
	}
	return item, nil
}

// FindAll returns every item ordered by category, then ingredient name
func (r *ShoppingListRepository) FindAll(ctx context.Context) (_ []domain.ShoppingListItem, err error) {
	defer metrics.ObserveStorage(domain.EntityShoppingListItem, opFindAll, time.Now(), &err)

	_, q, err := conn(r.store)
	if err != nil {
		return nil, err
	}

	rows, err := q.ListShoppingListItems(ctx)
	if err != nil {
		return nil, storageError(domain.OpFind, domain.EntityShoppingListItem, "", err)
	}
	return mapShoppingListItems(rows)
}

// FindByCategory returns the items of one category ordered by ingredient name
func (r *ShoppingListRepository) FindByCategory(ctx context.Context, category domain.IngredientCategory) (_ []domain.ShoppingListItem, err error) {
	defer metrics.ObserveStorage(domain.EntityShoppingListItem, opFindByCategory, time.Now(), &err)

	_, q, err := conn(r.store)
	if err != nil {
		return nil, err
	}

	rows, err := q.ListShoppingListItemsByCategory(ctx, string(category))
	if err != nil {
		return nil, storageError(domain.OpFind, domain.EntityShoppingListItem, "", err)
	}
	return mapShoppingListItems(rows)
}

// FindUnchecked returns the items still to buy
func (r *ShoppingListRepository) FindUnchecked(ctx context.Context) ([]domain.ShoppingListItem, error) {
	return r.findByChecked(ctx, false)
}

// FindChecked returns the items already bought
func (r *ShoppingListRepository) FindChecked(ctx context.Context) ([]domain.ShoppingListItem, error) {
	return r.findByChecked(ctx, true)
}

func (r *ShoppingListRepository) findByChecked(ctx context.Context, checked bool) (_ []domain.ShoppingListItem, err error) {
	defer metrics.ObserveStorage(domain.EntityShoppingListItem, opFindByChecked, time.Now(), &err)

	_, q, err := conn(r.store)
	if err != nil {
		return nil, err
	}

	rows, err := q.ListShoppingListItemsByChecked(ctx, checked)
	if err != nil {
		return nil, storageError(domain.OpFind, domain.EntityShoppingListItem, "", err)
	}
	return mapShoppingListItems(rows)
}

// Update applies the set fields of patch and returns the stored result
func (r *ShoppingListRepository) Update(ctx context.Context, patch domain.ShoppingListItemPatch) (_ *domain.ShoppingListItem, err error) {
	defer metrics.ObserveStorage(domain.EntityShoppingListItem, opUpdate, time.Now(), &err)

	return r.lockAndUpdate(ctx, patch.ID, domain.OpUpdate, func(domain.ShoppingListItem) domain.ShoppingListItemPatch {
		return patch
	})
}

// ToggleChecked flips IsChecked under a row lock and returns the stored result
func (r *ShoppingListRepository) ToggleChecked(ctx context.Context, id string) (_ *domain.ShoppingListItem, err error) {
	defer metrics.ObserveStorage(domain.EntityShoppingListItem, opToggle, time.Now(), &err)

	return r.lockAndUpdate(ctx, id, domain.OpToggle, func(current domain.ShoppingListItem) domain.ShoppingListItemPatch {
		return domain.ShoppingListItemPatch{ID: id, IsChecked: domain.Some(!current.IsChecked)}
	})
}

// lockAndUpdate reads the row FOR UPDATE, derives a patch from it, applies the
// patch and re-reads the row, all in one transaction
func (r *ShoppingListRepository) lockAndUpdate(
	ctx context.Context,
	id string,
	op domain.StorageOp,
	derive func(current domain.ShoppingListItem) domain.ShoppingListItemPatch,
) (*domain.ShoppingListItem, error) {
	pool, q, err := conn(r.store)
	if err != nil {
		return nil, err
	}

	itemID, ok := parseID(id)
	if !ok {
		return nil, domain.NotFoundError(domain.ErrShoppingListItemNotFound, id)
	}

	tx, err := beginTx(ctx, pool, q)
	if err != nil {
		return nil, storageError(op, domain.EntityShoppingListItem, id, err)
	}
	defer SafeRollback(ctx, tx.Tx())

	currentRow, err := tx.Queries().GetShoppingListItemByIDForUpdate(ctx, itemID)
	if err != nil {
		if isNoRows(err) {
			return nil, domain.NotFoundError(domain.ErrShoppingListItemNotFound, id)
		}
		return nil, storageError(op, domain.EntityShoppingListItem, id, err)
	}
	current, err := mapShoppingListItem(currentRow)
	if err != nil {
		return nil, storageError(op, domain.EntityShoppingListItem, id, err)
	}

	params, err := buildShoppingListItemUpdate(itemID, derive(*current))
	if err != nil {
		return nil, storageError(op, domain.EntityShoppingListItem, id, err)
	}
	params.UpdatedAt = timestamptz(nextUpdatedAt(currentRow.UpdatedAt))

	if _, err := tx.Queries().UpdateShoppingListItem(ctx, params); err != nil {
		return nil, storageError(op, domain.EntityShoppingListItem, id, err)
	}

	row, err := tx.Queries().GetShoppingListItemByID(ctx, itemID)
	if err != nil {
		return nil, storageError(op, domain.EntityShoppingListItem, id, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, storageError(op, domain.EntityShoppingListItem, id, err)
	}

	item, err := mapShoppingListItem(row)
	if err != nil {
		return nil, storageError(op, domain.EntityShoppingListItem, id, err)
	}
	return item, nil
}

// Delete removes a single item
func (r *ShoppingListRepository) Delete(ctx context.Context, id string) (_ bool, err error) {
	defer metrics.ObserveStorage(domain.EntityShoppingListItem, opDelete, time.Now(), &err)

	_, q, err := conn(r.store)
	if err != nil {
		return false, err
	}

	itemID, ok := parseID(id)
	if !ok {
		return false, domain.NotFoundError(domain.ErrShoppingListItemNotFound, id)
	}

	affected, err := q.DeleteShoppingListItem(ctx, itemID)
	if err != nil {
		return false, storageError(domain.OpDelete, domain.EntityShoppingListItem, id, err)
	}
	if affected == 0 {
		return false, domain.NotFoundError(domain.ErrShoppingListItemNotFound, id)
	}

	logger.FromContext(ctx).Debug(LogMsgShoppingItemDeleted, "id", id)
	return true, nil
}

// ClearCheckedItems deletes every checked item and returns the number removed
func (r *ShoppingListRepository) ClearCheckedItems(ctx context.Context) (_ int64, err error) {
	defer metrics.ObserveStorage(domain.EntityShoppingListItem, opClearChecked, time.Now(), &err)

	_, q, err := conn(r.store)
	if err != nil {
		return 0, err
	}

	removed, err := q.DeleteCheckedShoppingListItems(ctx)
	if err != nil {
		return 0, storageError(domain.OpClear, domain.EntityShoppingListItem, "", err)
	}

	logger.FromContext(ctx).Debug(LogMsgCheckedItemsCleared, "count", removed)
	return removed, nil
}

// SetAllChecked sets the checked state of every item and returns how many changed
func (r *ShoppingListRepository) SetAllChecked(ctx context.Context, checked bool) (_ int64, err error) {
	defer metrics.ObserveStorage(domain.EntityShoppingListItem, opSetAllChecked, time.Now(), &err)

	_, q, err := conn(r.store)
	if err != nil {
		return 0, err
	}

	changed, err := q.SetAllShoppingListItemsChecked(ctx, generated.SetAllShoppingListItemsCheckedParams{
		IsChecked: checked,
		UpdatedAt: timestamptz(now()),
	})
	if err != nil {
		return 0, storageError(domain.OpUpdate, domain.EntityShoppingListItem, "", err)
	}
	return changed, nil
}

// DeleteByMealPlan removes mealPlanID from every item that lists it. Items left
// with no meal plan are deleted. It returns the number of items deleted.
func (r *ShoppingListRepository) DeleteByMealPlan(ctx context.Context, mealPlanID string) (_ int64, err error) {
	defer metrics.ObserveStorage(domain.EntityShoppingListItem, opDeleteByPlan, time.Now(), &err)

	pool, q, err := conn(r.store)
	if err != nil {
		return 0, err
	}

	tx, err := beginTx(ctx, pool, q)
	if err != nil {
		return 0, storageError(domain.OpDelete, domain.EntityShoppingListItem, "", err)
	}
	defer SafeRollback(ctx, tx.Tx())

	rows, err := tx.Queries().ListShoppingListItemsByMealPlanID(ctx, mealPlanID)
	if err != nil {
		return 0, storageError(domain.OpDelete, domain.EntityShoppingListItem, "", err)
	}

	var deleted, detached int64
	for _, row := range rows {
		ids, err := decodeStrings(row.MealPlanIds)
		if err != nil {
			return 0, storageError(domain.OpDelete, domain.EntityShoppingListItem, row.ID.String(), err)
		}
		remaining := slices.DeleteFunc(ids, func(id string) bool { return id == mealPlanID })

		if len(remaining) == 0 {
			if _, err := tx.Queries().DeleteShoppingListItem(ctx, row.ID); err != nil {
				return 0, storageError(domain.OpDelete, domain.EntityShoppingListItem, row.ID.String(), err)
			}
			deleted++
			continue
		}

		data, err := encodeStrings(remaining)
		if err != nil {
			return 0, storageError(domain.OpDelete, domain.EntityShoppingListItem, row.ID.String(), err)
		}
		if _, err := tx.Queries().UpdateShoppingListItem(ctx, generated.UpdateShoppingListItemParams{
			ID:          row.ID,
			MealPlanIds: data,
			UpdatedAt:   timestamptz(nextUpdatedAt(row.UpdatedAt)),
		}); err != nil {
			return 0, storageError(domain.OpDelete, domain.EntityShoppingListItem, row.ID.String(), err)
		}
		detached++
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, storageError(domain.OpDelete, domain.EntityShoppingListItem, "", err)
	}

	logger.FromContext(ctx).Debug(LogMsgMealPlanItemsDetached,
		"meal_plan_id", mealPlanID, "deleted", deleted, "detached", detached)
	return deleted, nil
}

func buildShoppingListItemUpdate(id uuid.UUID, patch domain.ShoppingListItemPatch) (generated.UpdateShoppingListItemParams, error) {
	params := generated.UpdateShoppingListItemParams{ID: id}

	if name, ok := patch.IngredientName.Get(); ok {
		params.IngredientName = strToText(name)
	}
	if amount, ok := patch.TotalAmount.Get(); ok {
		params.TotalAmount = pgtype.Float8{Float64: amount, Valid: true}
	}
	if unit, ok := patch.Unit.Get(); ok {
		params.Unit = strToText(unit)
	}
	if category, ok := patch.Category.Get(); ok {
		params.Category = strToText(string(category))
	}
	if checked, ok := patch.IsChecked.Get(); ok {
		params.IsChecked = pgtype.Bool{Bool: checked, Valid: true}
	}
	if mealPlanIDs, ok := patch.MealPlanIDs.Get(); ok {
		data, err := encodeStrings(mealPlanIDs)
		if err != nil {
			return params, err
		}
		params.MealPlanIds = data
	}
	return params, nil
}

func mapShoppingListItem(row generated.ShoppingListItem) (*domain.ShoppingListItem, error) {
	mealPlanIDs, err := decodeStrings(row.MealPlanIds)
	if err != nil {
		return nil, err
	}
	return &domain.ShoppingListItem{
		ID:             row.ID.String(),
		IngredientName: row.IngredientName,
		TotalAmount:    row.TotalAmount,
		Unit:           row.Unit,
		Category:       domain.IngredientCategory(row.Category),
		IsChecked:      row.IsChecked,
		MealPlanIDs:    mealPlanIDs,
		CreatedAt:      fromTimestamptz(row.CreatedAt),
		UpdatedAt:      fromTimestamptz(row.UpdatedAt),
	}, nil
}

func mapShoppingListItems(rows []generated.ShoppingListItem) ([]domain.ShoppingListItem, error) {
	items := make([]domain.ShoppingListItem, 0, len(rows))
	for _, row := range rows {
		item, err := mapShoppingListItem(row)
		if err != nil {
			return nil, storageError(domain.OpFind, domain.EntityShoppingListItem, row.ID.String(), err)
		}
		items = append(items, *item)
	}
	return items, nil
}
