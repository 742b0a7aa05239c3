package database

import "time"

// Database Connection Pool Constants
const (
	// DefaultMinConnections is the minimum number of connections to maintain in the pool
	DefaultMinConnections = 1

	// DefaultMaxConnections keeps a single active connection to the store
	DefaultMaxConnections = 1

	DefaultMaxConnIdleTime = 5 * time.Minute
	DefaultMaxConnLifetime = 30 * time.Minute

	// DefaultCloseTimeout bounds how long Close waits for checked-out connections
	DefaultCloseTimeout = 10 * time.Second
)

// Error Messages - Database Operations
const (
	ErrMsgFailedToParseConnString     = "failed to parse connection string"
	ErrMsgFailedToCreatePool          = "failed to create connection pool"
	ErrMsgFailedToPingDatabase        = "failed to ping database"
	ErrMsgFailedToBeginTransaction    = "failed to begin transaction"
	ErrMsgFailedToCommitTransaction   = "failed to commit transaction"
	ErrMsgFailedToRollbackTransaction = "Failed to rollback transaction"
	ErrMsgFailedToLoadSchema          = "failed to load schema"
	ErrMsgFailedToCreateSchema        = "failed to create schema"
	ErrMsgFailedToDropSchema          = "failed to drop schema"
	ErrMsgFailedToListTables          = "failed to list tables"
	ErrMsgCloseTimedOut               = "timed out waiting for connections to be released"
	ErrMsgUnknownMigrationCommand     = "unknown migration command"
	ErrMsgFailedToSetDialect          = "failed to set migration dialect"
)

// Log Messages
const (
	LogMsgSuccessfullyConnectedToDatabase = "Successfully connected to the database"
	LogMsgSchemaInitialized               = "Database schema initialized"
	LogMsgStoreClosed                     = "Database connection closed"
	LogMsgStoreReset                      = "Database reset: all tables dropped and recreated"
	LogMsgMissingTables                   = "Database health check found missing tables"
)

// Migration commands understood by Migrate
const (
	MigrateUp     = "up"
	MigrateDown   = "down"
	MigrateStatus = "status"
)
