package bootstrap

import "time"

// =============================================================================
// Logger Configuration
// =============================================================================

// Log messages for logger initialization
const (
	LogMsgLoggingInitialized  = "Logging initialized"
	LogMsgStartingPlanner     = "Starting meal planner"
	LogMsgConfigurationLoaded = "Configuration loaded"
)

// =============================================================================
// Store Lifecycle
// =============================================================================

const (
	LogMsgOpeningStore     = "Opening database store"
	ErrMsgFailedOpenStore  = "failed to open database store"
	ErrMsgFailedOpenPool   = "failed to open database pool"
	ErrMsgStoreNotHealthy  = "database store is missing required tables"
	ErrMsgFailedCheckStore = "failed to check database store"
)

// =============================================================================
// Config Sync Messages
// =============================================================================

const (
	LogMsgSeedingRecipes   = "Seeding recipes from JSON catalog..."
	LogMsgRecipesSeeded    = "Recipes seeded successfully"
	LogMsgCatalogUnchanged = "Recipe catalog already present, nothing inserted"

	ErrMsgFailedLoadRecipes = "failed to load recipe catalog"
	ErrMsgInvalidRecipes    = "invalid recipe catalog"
	ErrMsgFailedSeedRecipes = "failed to seed recipes"
)

// =============================================================================
// Shutdown
// =============================================================================

const (
	// DefaultShutdownTimeout bounds the whole shutdown sequence
	DefaultShutdownTimeout = 15 * time.Second

	LogMsgShuttingDownServer   = "Shutting down ops server..."
	LogMsgClosingStore         = "Closing database store..."
	LogMsgServerStopped        = "Shutdown complete"
	LogMsgServerForcedShutdown = "Ops server forced to shutdown"
	LogMsgStoreCloseFailed     = "Database store close failed"
)
