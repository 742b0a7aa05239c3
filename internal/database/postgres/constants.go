package postgres

// Operation names used as metrics labels
const (
	opCreate         = "create"
	opFind           = "find"
	opFindAll        = "find_all"
	opFindByRange    = "find_by_date_range"
	opFindByType     = "find_by_meal_type"
	opFindByCategory = "find_by_category"
	opFindByIDs      = "find_by_ids"
	opFindByChecked  = "find_by_checked"
	opCount          = "count"
	opUpdate         = "update"
	opDelete         = "delete"
	opToggle         = "toggle_checked"
	opClearChecked   = "clear_checked"
	opSetAllChecked  = "set_all_checked"
	opDeleteByPlan   = "delete_by_meal_plan"
)

// PostgreSQL error codes classified by classifyPgError
const (
	pgCodeNotNullViolation    = "23502"
	pgCodeForeignKeyViolation = "23503"
	pgCodeUniqueViolation     = "23505"
	pgCodeCheckViolation      = "23514"
	pgCodeStringTooLong       = "22001"
	pgCodeInvalidText         = "22P02"
)

// Error Messages - encoding
const (
	ErrMsgFailedToEncodeArray = "failed to encode array column"
	ErrMsgFailedToDecodeArray = "failed to decode array column"
)

// Error Messages - transactions
const (
	ErrMsgFailedToBeginTransaction    = "failed to begin transaction"
	ErrMsgFailedToCommitTransaction   = "failed to commit transaction"
	ErrMsgFailedToRollbackTransaction = "Failed to rollback transaction"
)

// Error Messages - constraint classification
const (
	ErrMsgConstraintViolation = "constraint violation"
	ErrMsgForeignKeyViolation = "foreign key violation"
	ErrMsgUniqueViolation     = "duplicate key"
	ErrMsgNotNullViolation    = "missing required value"
	ErrMsgValueTooLong        = "value too long"
	ErrMsgInvalidValue        = "invalid value"
)

// Error Messages - ingredients
const (
	ErrMsgFailedToInsertIngredients = "failed to insert ingredients"
	ErrMsgFailedToDeleteIngredients = "failed to delete ingredients"
	ErrMsgFailedToLoadIngredients   = "failed to load ingredients"
	ErrMsgIngredientCountMismatch   = "inserted ingredient count mismatch"
)

// Log Messages
const (
	LogMsgMealPlanCreated       = "Meal plan created"
	LogMsgMealPlanDeleted       = "Meal plan deleted"
	LogMsgRecipeCreated         = "Recipe created"
	LogMsgRecipeDeleted         = "Recipe deleted"
	LogMsgIngredientsReplaced   = "Recipe ingredients replaced"
	LogMsgShoppingItemCreated   = "Shopping list item created"
	LogMsgShoppingItemDeleted   = "Shopping list item deleted"
	LogMsgCheckedItemsCleared   = "Checked shopping list items cleared"
	LogMsgMealPlanItemsDetached = "Shopping list items detached from meal plan"
)
