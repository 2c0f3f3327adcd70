// Package db provides the relational storage layer of the retail console:
// connection management for PostgreSQL and SQLite, a statement executor,
// and one repository per table of the retail schema.
package db

import (
	"context"
	"database/sql"
	"fmt"
	"net"
	"net/url"
	"sync"

	"github.com/bitswalk/retail/src/common/errors"
	"github.com/bitswalk/retail/src/common/paths"
	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
)

// Supported database/sql driver names
const (
	DriverPgx     = "pgx"
	DriverPq      = "postgres"
	DriverSQLite3 = "sqlite3"
)

// Config holds the database connection configuration
type Config struct {
	// Driver is one of pgx, postgres or sqlite3
	Driver string
	// Host is the PostgreSQL server host
	Host string
	// Port is the PostgreSQL server port
	Port string
	// Name is the database name, or the database file path for sqlite3
	Name string
	// User is the database role
	User string
	// Password is the database password, empty by default
	Password string
	// SSLMode is passed to PostgreSQL as sslmode
	SSLMode string
}

// DefaultConfig returns a default database configuration
func DefaultConfig() Config {
	return Config{
		Driver:  DriverPgx,
		Host:    "localhost",
		Port:    "5432",
		SSLMode: "disable",
	}
}

// DSN builds the driver specific data source name
func (c Config) DSN() (string, error) {
	switch c.Driver {
	case DriverPgx, DriverPq:
		u := url.URL{
			Scheme:   "postgres",
			Host:     net.JoinHostPort(c.Host, c.Port),
			Path:     "/" + c.Name,
			RawQuery: url.Values{"sslmode": {c.SSLMode}}.Encode(),
		}
		if c.Password != "" {
			u.User = url.UserPassword(c.User, c.Password)
		} else if c.User != "" {
			u.User = url.User(c.User)
		}
		return u.String(), nil
	case DriverSQLite3:
		path := c.Name
		if path != ":memory:" {
			path = paths.Expand(path)
			if err := paths.EnsureDir(path); err != nil {
				return "", fmt.Errorf("failed to create database directory: %w", err)
			}
		}
		return path + "?_foreign_keys=1&_busy_timeout=5000", nil
	default:
		return "", errors.ErrUnsupportedDriver.WithMessagef("Unsupported database driver %q", c.Driver)
	}
}

// Database wraps the single connection used by a console session
type Database struct {
	db           *sql.DB
	dialect      Dialect
	shutdownOnce sync.Once
	shutdownErr  error
}

// Open connects to the configured database and verifies the connection.
// Any failure is reported as errors.ErrDatabaseConnection.
func Open(ctx context.Context, cfg Config) (*Database, error) {
	dialect, err := DialectFor(cfg.Driver)
	if err != nil {
		return nil, err
	}

	dsn, err := cfg.DSN()
	if err != nil {
		return nil, errors.ErrDatabaseConnection.WithCause(err)
	}

	sqlDB, err := sql.Open(cfg.Driver, dsn)
	if err != nil {
		return nil, errors.ErrDatabaseConnection.WithCause(err)
	}

	if err := sqlDB.PingContext(ctx); err != nil {
		sqlDB.Close()
		return nil, errors.ErrDatabaseConnection.WithCause(err)
	}

	return New(sqlDB, dialect), nil
}

// New wraps an already opened handle. The pool is pinned to a single
// connection: the console is the only client of its connection.
func New(sqlDB *sql.DB, dialect Dialect) *Database {
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)
	return &Database{db: sqlDB, dialect: dialect}
}

// Dialect returns the SQL dialect of the connection
func (d *Database) Dialect() Dialect {
	return d.dialect
}

// Executor returns an executor running statements outside any transaction
func (d *Database) Executor() *Executor {
	return &Executor{q: d.db, dialect: d.dialect}
}

// WithTx runs fn inside a transaction. The transaction is committed when fn
// returns nil and rolled back otherwise.
func (d *Database) WithTx(ctx context.Context, fn func(*Executor) error) error {
	tx, err := d.db.BeginTx(ctx, nil)
	if err != nil {
		return errors.ErrDatabaseTransaction.WithCause(err)
	}
	defer func() { _ = tx.Rollback() }()

	if err := fn(&Executor{q: tx, dialect: d.dialect}); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return errors.ErrDatabaseTransaction.WithCause(err)
	}

	return nil
}

// Shutdown closes the connection. It is safe to call more than once; only
// the first call closes and every call returns its result.
func (d *Database) Shutdown() error {
	d.shutdownOnce.Do(func() {
		if err := d.db.Close(); err != nil {
			d.shutdownErr = fmt.Errorf("failed to close database: %w", err)
		}
	})
	return d.shutdownErr
}
