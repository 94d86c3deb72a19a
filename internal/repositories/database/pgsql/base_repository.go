package pgsql

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/SscSPs/grn_tracker/internal/apperrors"
	"github.com/SscSPs/grn_tracker/internal/core/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgreSQL error codes the repositories translate.
const (
	pgForeignKeyViolation = "23503"
	pgUniqueViolation     = "23505"
	pgCheckViolation      = "23514"
)

// DBTX is satisfied by both *pgxpool.Pool and pgx.Tx.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults
}

// BaseRepository provides common functionality for all repositories
type BaseRepository struct {
	Pool *pgxpool.Pool
}

// Begin starts a new database transaction
func (r *BaseRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	tx, err := r.Pool.Begin(ctx)
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to begin transaction", err)
	}
	return tx, nil
}

// Commit commits a transaction
func (r *BaseRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	if err := tx.Commit(ctx); err != nil {
		return apperrors.NewAppError(http.StatusInternalServerError, "failed to commit transaction", err)
	}
	return nil
}

// Rollback rolls back a transaction
func (r *BaseRepository) Rollback(ctx context.Context, tx pgx.Tx) error {
	if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		return apperrors.NewAppError(http.StatusInternalServerError, "failed to rollback transaction", err)
	}
	return nil
}

// mapWriteError translates constraint violations on insert/update into application errors.
func mapWriteError(err error, msg string) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return apperrors.NewAppError(http.StatusConflict, msg, fmt.Errorf("%w: %s", apperrors.ErrDuplicate, pgErr.Detail))
		case pgForeignKeyViolation:
			return apperrors.NewAppError(http.StatusBadRequest, msg, fmt.Errorf("%w: referenced record does not exist (%s)", apperrors.ErrValidation, pgErr.ConstraintName))
		case pgCheckViolation:
			return apperrors.NewAppError(http.StatusBadRequest, msg, fmt.Errorf("%w: %s violated", apperrors.ErrValidation, pgErr.ConstraintName))
		}
	}
	return apperrors.NewAppError(http.StatusInternalServerError, msg, err)
}

// mapDeleteError reports deletes blocked by referencing rows as conflicts.
func mapDeleteError(err error, msg string) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation {
		return apperrors.NewAppError(http.StatusConflict, msg, fmt.Errorf("%w: record is still referenced", apperrors.ErrConflict))
	}
	return apperrors.NewAppError(http.StatusInternalServerError, msg, err)
}

// requireAffected turns an update or delete that touched no rows into ErrNotFound.
func requireAffected(tag pgconn.CommandTag) error {
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// filterBuilder accumulates WHERE clauses with numbered placeholders.
// Each "?" in a clause is bound to the clause's single argument.
type filterBuilder struct {
	clauses []string
	args    []any
}

func (f *filterBuilder) add(clause string, arg any) {
	f.args = append(f.args, arg)
	f.clauses = append(f.clauses, strings.ReplaceAll(clause, "?", "$"+strconv.Itoa(len(f.args))))
}

func (f *filterBuilder) where() string {
	if len(f.clauses) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(f.clauses, " AND ")
}

// paginate appends LIMIT/OFFSET placeholders and returns the suffix and full argument list.
func (f *filterBuilder) paginate(limit, offset int) (string, []any) {
	args := append(append([]any{}, f.args...), limit, offset)
	return fmt.Sprintf(" LIMIT $%d OFFSET $%d", len(args)-1, len(args)), args
}

// addSearch adds a case-insensitive substring match over columns.
func (f *filterBuilder) addSearch(search string, columns ...string) {
	search = strings.TrimSpace(search)
	if search == "" || len(columns) == 0 {
		return
	}
	parts := make([]string, len(columns))
	for i, col := range columns {
		parts[i] = col + ` ILIKE ? ESCAPE '\'`
	}
	f.add("("+strings.Join(parts, " OR ")+")", "%"+escapeLike(search)+"%")
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

// collectPage runs a count and a paged select sharing one FROM clause and filter,
// scanning rows into T by column name.
func collectPage[T any](ctx context.Context, db DBTX, selectCols, from string, f *filterBuilder, orderBy string, params domain.ListParams) ([]T, int, error) {
	var total int
	if err := db.QueryRow(ctx, "SELECT COUNT(*) "+from+f.where(), f.args...).Scan(&total); err != nil {
		return nil, 0, apperrors.NewAppError(http.StatusInternalServerError, "failed to count rows", err)
	}

	suffix, args := f.paginate(params.Limit, params.Offset())
	rows, err := db.Query(ctx, selectCols+" "+from+f.where()+" ORDER BY "+orderBy+suffix, args...)
	if err != nil {
		return nil, 0, apperrors.NewAppError(http.StatusInternalServerError, "failed to query rows", err)
	}
	items, err := pgx.CollectRows(rows, pgx.RowToStructByName[T])
	if err != nil {
		return nil, 0, apperrors.NewAppError(http.StatusInternalServerError, "failed to collect rows", err)
	}
	return items, total, nil
}

// collectOne selects a single row into T, mapping no rows to ErrNotFound.
func collectOne[T any](ctx context.Context, db DBTX, query string, args ...any) (*T, error) {
	rows, err := db.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to query row", err)
	}
	item, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[T])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to collect row", err)
	}
	return &item, nil
}

// startOfDay truncates t to midnight UTC of its calendar date.
func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
