package database

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/MealPlanner_Go/internal/database/generated"
	"github.com/osse101/MealPlanner_Go/internal/database/schema"
	"github.com/osse101/MealPlanner_Go/internal/domain"
	"github.com/osse101/MealPlanner_Go/internal/logger"
)

// Handle gives repositories access to the live connection pool
type Handle interface {
	Handle() (*pgxpool.Pool, error)
}

// StoreConfig holds the connection settings for a Store
type StoreConfig struct {
	ConnString      string
	MaxConns        int
	MaxConnIdleTime time.Duration
	MaxConnLifetime time.Duration
	CloseTimeout    time.Duration
}

// Store owns the storage handle. It is created unopened; Initialize opens the
// pool and creates the schema, Close releases it. Repositories hold a reference
// to the Store and fail with domain.ErrNotInitialized when used outside that window.
type Store struct {
	cfg StoreConfig

	mu     sync.RWMutex
	pool   *pgxpool.Pool
	closed bool
}

// NewStore creates an unopened Store
func NewStore(cfg StoreConfig) *Store {
	if cfg.MaxConns < 1 {
		cfg.MaxConns = DefaultMaxConnections
	}
	if cfg.MaxConnIdleTime <= 0 {
		cfg.MaxConnIdleTime = DefaultMaxConnIdleTime
	}
	if cfg.MaxConnLifetime <= 0 {
		cfg.MaxConnLifetime = DefaultMaxConnLifetime
	}
	if cfg.CloseTimeout <= 0 {
		cfg.CloseTimeout = DefaultCloseTimeout
	}
	return &Store{cfg: cfg}
}

// NewStoreFromPool wraps an already open pool. Initialize still has to be
// called to create the schema. The pool's settings are kept so the store can
// reopen against the same database after Close.
func NewStoreFromPool(pool *pgxpool.Pool) *Store {
	pc := pool.Config()
	s := NewStore(StoreConfig{
		ConnString:      pc.ConnString(),
		MaxConns:        int(pc.MaxConns),
		MaxConnIdleTime: pc.MaxConnIdleTime,
		MaxConnLifetime: pc.MaxConnLifetime,
	})
	s.pool = pool
	return s
}

// Initialize opens the pool if needed and creates every table and index.
// It is safe to call repeatedly.
func (s *Store) Initialize(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.pool == nil {
		pool, err := NewPool(ctx, s.cfg.ConnString, s.cfg.MaxConns, s.cfg.MaxConnIdleTime, s.cfg.MaxConnLifetime)
		if err != nil {
			return &domain.InitializationError{Err: err}
		}
		s.pool = pool
	}
	s.closed = false

	if err := createSchema(ctx, s.pool); err != nil {
		return &domain.InitializationError{Err: err}
	}

	logger.FromContext(ctx).Info(LogMsgSchemaInitialized, "tables", schema.RequiredTables)
	return nil
}

// Handle returns the live pool
func (s *Store) Handle() (*pgxpool.Pool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.pool == nil {
		if s.closed {
			return nil, fmt.Errorf("%w: %w", domain.ErrNotInitialized, domain.ErrStoreClosed)
		}
		return nil, domain.ErrNotInitialized
	}
	return s.pool, nil
}

// Close releases the pool. Calling Close on a store that is not open is a no-op.
// It returns a ShutdownError when checked-out connections are not released
// before ctx or the configured close timeout expires.
func (s *Store) Close(ctx context.Context) error {
	s.mu.Lock()
	pool := s.pool
	s.pool = nil
	if pool != nil {
		s.closed = true
	}
	s.mu.Unlock()

	if pool == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, s.cfg.CloseTimeout)
	defer cancel()

	done := make(chan struct{})
	go func() {
		pool.Close()
		close(done)
	}()

	select {
	case <-done:
		slog.Default().Info(LogMsgStoreClosed)
		return nil
	case <-ctx.Done():
		return &domain.ShutdownError{Err: fmt.Errorf("%s: %w", ErrMsgCloseTimedOut, ctx.Err())}
	}
}

// HealthCheck reports whether all required tables exist.
// Missing tables yield false with a nil error.
func (s *Store) HealthCheck(ctx context.Context) (bool, error) {
	pool, err := s.Handle()
	if err != nil {
		return false, err
	}

	existing, err := generated.New(pool).ListExistingTables(ctx, schema.RequiredTables)
	if err != nil {
		return false, fmt.Errorf("%s: %w", ErrMsgFailedToListTables, err)
	}

	missing := missingTables(existing)
	if len(missing) > 0 {
		logger.FromContext(ctx).Warn(LogMsgMissingTables, "missing", missing)
		return false, nil
	}
	return true, nil
}

// Reset drops every table, children before parents, and recreates the schema.
// All data is lost. Both steps run in one transaction.
func (s *Store) Reset(ctx context.Context) error {
	pool, err := s.Handle()
	if err != nil {
		return err
	}

	down, err := schema.DownSQL()
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToLoadSchema, err)
	}
	up, err := schema.UpSQL()
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToLoadSchema, err)
	}

	tx, err := pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToBeginTransaction, err)
	}
	defer rollback(ctx, tx)

	if _, err := tx.Exec(ctx, down); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToDropSchema, err)
	}
	if _, err := tx.Exec(ctx, up); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToCreateSchema, err)
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToCommitTransaction, err)
	}

	logger.FromContext(ctx).Warn(LogMsgStoreReset)
	return nil
}

func createSchema(ctx context.Context, pool *pgxpool.Pool) error {
	up, err := schema.UpSQL()
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToLoadSchema, err)
	}

	tx, err := pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToBeginTransaction, err)
	}
	defer rollback(ctx, tx)

	if _, err := tx.Exec(ctx, up); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToCreateSchema, err)
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToCommitTransaction, err)
	}
	return nil
}

func missingTables(existing []string) []string {
	found := make(map[string]bool, len(existing))
	for _, name := range existing {
		found[name] = true
	}
	var missing []string
	for _, name := range schema.RequiredTables {
		if !found[name] {
			missing = append(missing, name)
		}
	}
	return missing
}

func rollback(ctx context.Context, tx pgx.Tx) {
	if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		logger.FromContext(ctx).Error(ErrMsgFailedToRollbackTransaction, "error", err)
	}
}
