package db

import (
	"context"
	"database/sql"
	"strings"

	"github.com/bitswalk/retail/src/common/errors"
)

// NullValue is how a SQL NULL is rendered in row values
const NullValue = "null"

// querier is satisfied by both *sql.DB and *sql.Tx
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// TablePrinter renders a header row followed by data rows
type TablePrinter interface {
	PrintTable(headers []string, rows [][]string) error
}

// Table is a materialized result set with every value rendered as text
type Table struct {
	Columns []string
	Rows    [][]string
}

// Executor runs parameterized statements against the connection or an open
// transaction. Statements are written with ? placeholders.
type Executor struct {
	q       querier
	dialect Dialect
}

// Dialect returns the dialect statements are rebound for
func (e *Executor) Dialect() Dialect {
	return e.dialect
}

// Exec runs a statement that returns no rows and reports the affected row count
func (e *Executor) Exec(ctx context.Context, query string, args ...any) (int64, error) {
	result, err := e.q.ExecContext(ctx, e.dialect.Rebind(query), args...)
	if err != nil {
		return 0, translate(err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, errors.ErrDatabaseQuery.WithCause(err)
	}

	return affected, nil
}

// Query runs a statement and returns the column names and all rows as text
func (e *Executor) Query(ctx context.Context, query string, args ...any) (*Table, error) {
	rows, err := e.q.QueryContext(ctx, e.dialect.Rebind(query), args...)
	if err != nil {
		return nil, translate(err)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, errors.ErrDatabaseQuery.WithCause(err)
	}

	table := &Table{Columns: columns}
	values := make([]sql.NullString, len(columns))
	dest := make([]any, len(columns))
	for i := range values {
		dest[i] = &values[i]
	}

	for rows.Next() {
		if err := rows.Scan(dest...); err != nil {
			return nil, errors.ErrDatabaseQuery.WithCause(err)
		}
		row := make([]string, len(columns))
		for i, v := range values {
			if v.Valid {
				row[i] = strings.TrimSpace(v.String)
			} else {
				row[i] = NullValue
			}
		}
		table.Rows = append(table.Rows, row)
	}

	if err := rows.Err(); err != nil {
		return nil, translate(err)
	}

	return table, nil
}

// QueryRows returns every row as an ordered list of column values, without header
func (e *Executor) QueryRows(ctx context.Context, query string, args ...any) ([][]string, error) {
	table, err := e.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return table.Rows, nil
}

// QueryCount returns the number of rows a statement yields
func (e *Executor) QueryCount(ctx context.Context, query string, args ...any) (int, error) {
	rows, err := e.q.QueryContext(ctx, e.dialect.Rebind(query), args...)
	if err != nil {
		return 0, translate(err)
	}
	defer rows.Close()

	count := 0
	for rows.Next() {
		count++
	}

	if err := rows.Err(); err != nil {
		return 0, translate(err)
	}

	return count, nil
}

// QueryAndPrint runs a statement, prints the header and the rows through p
// and returns the row count. Nothing is printed for an empty result.
func (e *Executor) QueryAndPrint(ctx context.Context, p TablePrinter, query string, args ...any) (int, error) {
	table, err := e.Query(ctx, query, args...)
	if err != nil {
		return 0, err
	}

	if len(table.Rows) == 0 {
		return 0, nil
	}

	if err := p.PrintTable(table.Columns, table.Rows); err != nil {
		return 0, errors.ErrInternal.WithCause(err)
	}

	return len(table.Rows), nil
}

// QueryRow runs a statement expected to return at most one row.
// Scan errors are left to the caller, sql.ErrNoRows included.
func (e *Executor) QueryRow(ctx context.Context, query string, args ...any) *sql.Row {
	return e.q.QueryRowContext(ctx, e.dialect.Rebind(query), args...)
}

// InsertReturningID runs an INSERT and returns the generated value of idColumn.
// Both PostgreSQL and SQLite 3.35+ support the RETURNING clause.
func (e *Executor) InsertReturningID(ctx context.Context, query, idColumn string, args ...any) (int64, error) {
	var id int64
	q := strings.TrimRight(strings.TrimSpace(query), ";") + " RETURNING " + idColumn
	if err := e.QueryRow(ctx, q, args...).Scan(&id); err != nil {
		return 0, translate(err)
	}
	return id, nil
}
