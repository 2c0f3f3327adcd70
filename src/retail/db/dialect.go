package db

import (
	"strconv"
	"strings"

	"github.com/bitswalk/retail/src/common/errors"
)

// Dialect identifies the SQL flavour spoken by the connection
type Dialect string

const (
	DialectPostgres Dialect = "postgres"
	DialectSQLite   Dialect = "sqlite"
)

// DialectFor maps a database/sql driver name to its dialect
func DialectFor(driver string) (Dialect, error) {
	switch driver {
	case DriverPgx, DriverPq:
		return DialectPostgres, nil
	case DriverSQLite3:
		return DialectSQLite, nil
	default:
		return "", errors.ErrUnsupportedDriver.WithMessagef("Unsupported database driver %q", driver)
	}
}

// Rebind rewrites ? placeholders into the dialect's bind syntax.
// Question marks inside single-quoted literals are left alone.
func (d Dialect) Rebind(query string) string {
	if d != DialectPostgres || !strings.Contains(query, "?") {
		return query
	}

	var b strings.Builder
	b.Grow(len(query) + 8)

	n := 0
	quoted := false
	for i := 0; i < len(query); i++ {
		c := query[i]
		switch {
		case c == '\'':
			quoted = !quoted
			b.WriteByte(c)
		case c == '?' && !quoted:
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
		default:
			b.WriteByte(c)
		}
	}

	return b.String()
}

// AutoIncrementKey returns the column definition of a generated integer primary key
func (d Dialect) AutoIncrementKey() string {
	if d == DialectPostgres {
		return "SERIAL PRIMARY KEY"
	}
	return "INTEGER PRIMARY KEY AUTOINCREMENT"
}

// FloatType returns the column type used for coordinates and areas
func (d Dialect) FloatType() string {
	if d == DialectPostgres {
		return "DOUBLE PRECISION"
	}
	return "REAL"
}
