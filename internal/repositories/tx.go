package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-movie-reviews/internal/logger"
)

var (
	// ErrNotFound is returned by update and delete statements that matched no row.
	ErrNotFound = errors.New("row not found")
	// ErrDuplicate is returned when an insert violates a unique constraint.
	ErrDuplicate = errors.New("duplicate key")
)

// pgUniqueViolation is the SQLSTATE of unique_violation.
const pgUniqueViolation = "23505"

// executor is implemented by both *sqlx.DB and *sqlx.Tx.
type executor interface {
	sqlx.ExtContext
	GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
}

// contextKey is an unexported type for keys in context
type contextKey struct{}

var txKey = contextKey{}

// setTxToContext stores a transaction in the context
func setTxToContext(ctx context.Context, tx *sqlx.Tx) context.Context {
	return context.WithValue(ctx, txKey, tx)
}

// GetTxFromContext retrieves the transaction from the context. Returns nil if not present.
func GetTxFromContext(ctx context.Context) *sqlx.Tx {
	tx, _ := ctx.Value(txKey).(*sqlx.Tx)
	return tx
}

// executorFor returns the transaction bound to ctx, falling back to db.
func executorFor(ctx context.Context, db *sqlx.DB) executor {
	if tx := GetTxFromContext(ctx); tx != nil {
		return tx
	}
	return db
}

// Transactor runs units of work inside a database transaction.
type Transactor struct {
	db *sqlx.DB
}

func NewTransactor(db *sqlx.DB) *Transactor {
	return &Transactor{db: db}
}

// WithinTx begins a transaction, runs fn with the transaction bound to its
// context and commits on success. Errors and panics roll back; panics are
// rethrown. A context that already carries a transaction is reused as is.
func (t *Transactor) WithinTx(ctx context.Context, fn func(ctx context.Context) error) (err error) {
	if GetTxFromContext(ctx) != nil {
		return fn(ctx)
	}

	tx, err := t.db.BeginTxx(ctx, nil)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to begin transaction", "error", err)
		return fmt.Errorf("begin transaction: %w", err)
	}

	defer func() {
		if rec := recover(); rec != nil {
			_ = tx.Rollback()
			panic(rec)
		}
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				logger.FromContext(ctx).Errorw("failed to rollback transaction", "error", rbErr)
			}
			return
		}
		if cErr := tx.Commit(); cErr != nil {
			logger.FromContext(ctx).Errorw("failed to commit transaction", "error", cErr)
			err = fmt.Errorf("commit transaction: %w", cErr)
		}
	}()

	return fn(setTxToContext(ctx, tx))
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}

// logQuery logs query in single line.
func logQuery(ctx context.Context, query string, args []any, result any, err error) {
	logger.FromContext(ctx).Debugw("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", result,
		"error", err,
	)
}
