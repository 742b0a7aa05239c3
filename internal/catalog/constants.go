package catalog

// ConfigFileName is the default recipe catalog file
const ConfigFileName = "recipes.json"

// File operation error messages
const (
	ErrMsgReadConfigFileFailed = "failed to read recipe catalog: %w"
	ErrMsgParseConfigFailed    = "failed to parse recipe catalog: %w"
	ErrMsgSchemaFailed         = "schema validation failed for %s: %w"
)

// Validation error messages
const (
	ErrMsgConfigNil         = "config is nil"
	ErrMsgNoRecipesDefined  = "no recipes defined"
	ErrFmtRecipeInvalid     = "%w: recipe '%s': %w"
	ErrFmtRecipeAtIndexName = "%w: recipe at index %d has empty name"
)

// Import error messages
const (
	ErrMsgListExistingFailed = "failed to list existing recipes: %w"
	ErrMsgInsertRecipeFailed = "failed to insert recipe '%s': %w"
)

// Log messages
const (
	LogMsgImportCompleted = "Recipe catalog import completed"
	LogMsgInsertedRecipe  = "Inserted recipe"
	LogMsgSkippedRecipe   = "Recipe already present, skipping"
)
