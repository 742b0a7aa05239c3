package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/MealPlanner_Go/internal/database"
	"github.com/osse101/MealPlanner_Go/internal/database/generated"
	"github.com/osse101/MealPlanner_Go/internal/domain"
	"github.com/osse101/MealPlanner_Go/internal/logger"
)

// SafeRollback rolls back a transaction and logs any error that isn't ErrTxClosed
func SafeRollback(ctx context.Context, tx pgx.Tx) {
	if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		logger.FromContext(ctx).Error(ErrMsgFailedToRollbackTransaction, "error", err)
	}
}

// ---- Common Helper Functions ----

// conn resolves the live pool from the store. It fails with domain.ErrNotInitialized
// before Initialize and after Close.
func conn(h database.Handle) (*pgxpool.Pool, *generated.Queries, error) {
	pool, err := h.Handle()
	if err != nil {
		return nil, nil, err
	}
	return pool, generated.New(pool), nil
}

// parseID parses an entity id. Malformed ids cannot exist in the store,
// so callers treat a false result as absence.
func parseID(id string) (uuid.UUID, bool) {
	u, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil, false
	}
	return u, true
}

// validIDs keeps the well-formed ids, preserving order
func validIDs(ids []string) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := parseID(id); ok {
			out = append(out, id)
		}
	}
	return out
}

// txHelper wraps common transaction begin logic.
// Returns a transaction and queries instance with the transaction applied.
type txHelper struct {
	tx pgx.Tx
	q  *generated.Queries
}

// beginTx starts a new transaction and returns a txHelper for common operations.
// Use SafeRollback in defer to ensure proper cleanup.
func beginTx(ctx context.Context, db *pgxpool.Pool, q *generated.Queries) (*txHelper, error) {
	tx, err := db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToBeginTransaction, err)
	}
	return &txHelper{
		tx: tx,
		q:  q.WithTx(tx),
	}, nil
}

// Commit commits the transaction
func (h *txHelper) Commit(ctx context.Context) error {
	if err := h.tx.Commit(ctx); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToCommitTransaction, err)
	}
	return nil
}

// Tx returns the underlying transaction for SafeRollback
func (h *txHelper) Tx() pgx.Tx {
	return h.tx
}

// Queries returns the transaction-bound queries
func (h *txHelper) Queries() *generated.Queries {
	return h.q
}

// ---- Time ----

// now returns the current time at the precision the database stores
func now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

// nextUpdatedAt returns a timestamp strictly after prev
func nextUpdatedAt(prev pgtype.Timestamptz) time.Time {
	t := now()
	if prev.Valid && !t.After(prev.Time) {
		t = prev.Time.UTC().Add(time.Microsecond)
	}
	return t
}

func timestamptz(t time.Time) pgtype.Timestamptz {
	return pgtype.Timestamptz{Time: t, Valid: true}
}

func fromTimestamptz(t pgtype.Timestamptz) time.Time {
	if !t.Valid {
		return time.Time{}
	}
	return t.Time.UTC()
}

// ---- pgtype converters ----

// toDate parses the YYYY-MM-DD prefix of s
func toDate(s string) (pgtype.Date, error) {
	t, err := time.Parse(domain.DateLayout, domain.DatePrefix(s))
	if err != nil {
		return pgtype.Date{}, fmt.Errorf("%w: %q", domain.ErrInvalidDate, s)
	}
	return pgtype.Date{Time: t, Valid: true}, nil
}

func fromDate(d pgtype.Date) string {
	if !d.Valid {
		return ""
	}
	return domain.FormatDate(d.Time)
}

func strToText(s string) pgtype.Text {
	return pgtype.Text{String: s, Valid: true}
}

func ptrToText(s *string) pgtype.Text {
	if s == nil {
		return pgtype.Text{}
	}
	return pgtype.Text{String: *s, Valid: true}
}

func textToPtr(t pgtype.Text) *string {
	if !t.Valid {
		return nil
	}
	s := t.String
	return &s
}

func intToInt4(i int) pgtype.Int4 {
	return pgtype.Int4{Int32: int32(i), Valid: true}
}

// ---- JSON array columns ----

// encodeStrings serializes an ordered string list. A nil list encodes as [] so
// the column is never null.
func encodeStrings(values []string) ([]byte, error) {
	if values == nil {
		values = []string{}
	}
	data, err := json.Marshal(values)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToEncodeArray, err)
	}
	return data, nil
}

// decodeStrings deserializes an ordered string list, never returning nil
func decodeStrings(data []byte) ([]string, error) {
	values := []string{}
	if len(data) == 0 {
		return values, nil
	}
	if err := json.Unmarshal(data, &values); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToDecodeArray, err)
	}
	if values == nil {
		values = []string{}
	}
	return values, nil
}

// ---- Errors ----

// classifyPgError prefixes engine constraint failures with a readable kind,
// keeping the original error in the chain
func classifyPgError(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}

	var kind string
	switch pgErr.Code {
	case pgCodeCheckViolation:
		kind = ErrMsgConstraintViolation
	case pgCodeForeignKeyViolation:
		kind = ErrMsgForeignKeyViolation
	case pgCodeUniqueViolation:
		kind = ErrMsgUniqueViolation
	case pgCodeNotNullViolation:
		kind = ErrMsgNotNullViolation
	case pgCodeStringTooLong:
		kind = ErrMsgValueTooLong
	case pgCodeInvalidText:
		kind = ErrMsgInvalidValue
	default:
		return err
	}

	if pgErr.ConstraintName != "" {
		return fmt.Errorf("%s (%s): %w", kind, pgErr.ConstraintName, err)
	}
	return fmt.Errorf("%s: %w", kind, err)
}

// storageError tags err with the failing operation unless it is already a
// lifecycle or not-found error, which callers match on directly
func storageError(op domain.StorageOp, entity, id string, err error) error {
	if errors.Is(err, domain.ErrNotInitialized) || errors.Is(err, domain.ErrNotFound) {
		return err
	}
	var se *domain.StorageError
	if errors.As(err, &se) {
		return err
	}
	return domain.NewStorageError(op, entity, id, classifyPgError(err))
}

// isNoRows reports whether err is pgx.ErrNoRows
func isNoRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}
