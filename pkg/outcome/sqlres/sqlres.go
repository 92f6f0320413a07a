package sqlres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/ib-77/outcome/pkg/outcome"
)

// Scanner reads the current row into a value.
type Scanner[T any] func(rows *sql.Rows) (T, error)

// Querier is the query half of *sql.DB, *sql.Tx and *sql.Conn.
type Querier interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

// Execer is the exec half of *sql.DB, *sql.Tx and *sql.Conn.
type Execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// QueryRow runs the query and scans the first row. No row is an
// absence, not a failure.
func QueryRow[T any](ctx context.Context, q Querier, scan Scanner[T], query string, args ...any) outcome.Result[T] {
	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return outcome.Err[T](err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return outcome.Err[T](err)
		}
		return outcome.Nil[T]()
	}

	v, err := scan(rows)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return outcome.Nil[T]()
		}
		return outcome.Err[T](err)
	}
	return outcome.ResultOf(v)
}

// QueryBuffered runs the query and collects every row. An empty result
// set is an absence; the first scan error fails the whole read.
func QueryBuffered[T any](ctx context.Context, q Querier, scan Scanner[T], query string, args ...any) outcome.Result[[]T] {
	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return outcome.Err[[]T](err)
	}
	defer rows.Close()

	var vs []T
	for rows.Next() {
		v, err := scan(rows)
		if err != nil {
			return outcome.Err[[]T](err)
		}
		vs = append(vs, v)
	}
	if err := rows.Err(); err != nil {
		return outcome.Err[[]T](err)
	}
	if len(vs) == 0 {
		return outcome.Nil[[]T]()
	}
	return outcome.Ok(vs)
}

// Query streams the result set one container per row, so it can feed a
// pipeline directly. A query error arrives as the only item; a scan
// error fails its row and ends the stream. The channel closes when the
// rows are drained or ctx ends.
func Query[T any](ctx context.Context, q Querier, scan Scanner[T], query string, args ...any) <-chan outcome.Result[T] {
	out := make(chan outcome.Result[T])

	go func() {
		defer close(out)

		rows, err := q.QueryContext(ctx, query, args...)
		if err != nil {
			emit(ctx, out, outcome.Err[T](err))
			return
		}
		defer rows.Close()

		for rows.Next() {
			v, err := scan(rows)
			if err != nil {
				emit(ctx, out, outcome.Err[T](err))
				return
			}
			if !emit(ctx, out, outcome.ResultOf(v)) {
				return
			}
		}
		if err := rows.Err(); err != nil {
			emit(ctx, out, outcome.Err[T](err))
		}
	}()

	return out
}

func emit[T any](ctx context.Context, out chan<- outcome.Result[T], r outcome.Result[T]) bool {
	select {
	case out <- r:
		return true
	case <-ctx.Done():
		return false
	}
}

// Exec runs a statement and reports the rows affected. Zero affected
// rows is still a present count.
func Exec(ctx context.Context, e Execer, query string, args ...any) outcome.Result[int64] {
	res, err := e.ExecContext(ctx, query, args...)
	if err != nil {
		return outcome.Err[int64](err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return outcome.Err[int64](err)
	}
	return outcome.Ok(n)
}
