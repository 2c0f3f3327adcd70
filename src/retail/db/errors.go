package db

import (
	"github.com/bitswalk/retail/src/common/errors"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"github.com/mattn/go-sqlite3"
)

// SQLSTATE codes shared by both PostgreSQL drivers
const (
	sqlStateUniqueViolation     = "23505"
	sqlStateForeignKeyViolation = "23503"
)

// translate maps a driver error onto the structured error set. Constraint
// violations keep their own codes so repositories can map them to domain
// errors; anything else becomes ErrDatabaseQuery.
func translate(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return fromSQLState(pgErr.Code, err)
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return fromSQLState(string(pqErr.Code), err)
	}

	var liteErr sqlite3.Error
	if errors.As(err, &liteErr) {
		switch liteErr.ExtendedCode {
		case sqlite3.ErrConstraintUnique, sqlite3.ErrConstraintPrimaryKey:
			return errors.ErrDuplicateKey.WithCause(err)
		case sqlite3.ErrConstraintForeignKey:
			return errors.ErrForeignKeyViolation.WithCause(err)
		}
	}

	return errors.ErrDatabaseQuery.WithCause(err)
}

func fromSQLState(code string, err error) error {
	switch code {
	case sqlStateUniqueViolation:
		return errors.ErrDuplicateKey.WithCause(err)
	case sqlStateForeignKeyViolation:
		return errors.ErrForeignKeyViolation.WithCause(err)
	default:
		return errors.ErrDatabaseQuery.WithCause(err)
	}
}
