// Package migrations provides database schema versioning and migration support.
package migrations

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/bitswalk/retail/src/common/logs"
	"github.com/bitswalk/retail/src/retail/db"
)

// package-level logger, can be set via SetLogger
var log *logs.Logger

// SetLogger sets the logger for the migrations package
func SetLogger(l *logs.Logger) {
	log = l
}

// Migration represents a single database migration. Up runs inside the
// migration's transaction and receives the dialect through the executor.
type Migration struct {
	Version     int
	Description string
	Up          func(ctx context.Context, e *db.Executor) error
}

// Runner handles database migrations
type Runner struct {
	db         *db.Database
	migrations []Migration
}

// NewRunner creates a new migration runner
func NewRunner(database *db.Database) *Runner {
	r := &Runner{
		db:         database,
		migrations: []Migration{},
	}
	r.registerAll()
	return r
}

// registerAll registers all available migrations in order
func (r *Runner) registerAll() {
	r.migrations = []Migration{
		migration001InitialSchema(),
		migration002Indexes(),
	}

	sort.Slice(r.migrations, func(i, j int) bool {
		return r.migrations[i].Version < r.migrations[j].Version
	})
}

// ensureMigrationsTable creates the migrations tracking table if it doesn't exist
func (r *Runner) ensureMigrationsTable(ctx context.Context) error {
	_, err := r.db.Executor().Exec(ctx, `
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			description TEXT NOT NULL,
			applied_at TIMESTAMP NOT NULL
		)
	`)
	return err
}

// getAppliedVersions returns a set of already applied migration versions
func (r *Runner) getAppliedVersions(ctx context.Context) (map[int]bool, error) {
	rows, err := r.db.Executor().QueryRows(ctx, "SELECT version FROM schema_migrations ORDER BY version")
	if err != nil {
		return nil, err
	}

	applied := make(map[int]bool, len(rows))
	for _, row := range rows {
		version, err := strconv.Atoi(row[0])
		if err != nil {
			return nil, err
		}
		applied[version] = true
	}

	return applied, nil
}

// Run executes all pending migrations
func (r *Runner) Run(ctx context.Context) error {
	if err := r.ensureMigrationsTable(ctx); err != nil {
		return fmt.Errorf("failed to ensure migrations table: %w", err)
	}

	applied, err := r.getAppliedVersions(ctx)
	if err != nil {
		return fmt.Errorf("failed to get applied migrations: %w", err)
	}

	for _, m := range r.migrations {
		if applied[m.Version] {
			continue
		}

		if err := r.runMigration(ctx, m); err != nil {
			if log != nil {
				log.Error("Migration failed", "version", m.Version, "description", m.Description, "error", err)
			}
			return fmt.Errorf("migration %d (%s) failed: %w", m.Version, m.Description, err)
		}
	}

	return nil
}

// runMigration executes a single migration within a transaction
func (r *Runner) runMigration(ctx context.Context, m Migration) error {
	if log != nil {
		log.Debug("Applying migration", "version", m.Version, "description", m.Description)
	}

	err := r.db.WithTx(ctx, func(e *db.Executor) error {
		if err := m.Up(ctx, e); err != nil {
			return err
		}

		if _, err := e.Exec(ctx,
			"INSERT INTO schema_migrations (version, description, applied_at) VALUES (?, ?, ?)",
			m.Version, m.Description, time.Now().UTC(),
		); err != nil {
			return fmt.Errorf("failed to record migration: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	if log != nil {
		log.Debug("Migration applied successfully", "version", m.Version)
	}

	return nil
}

// CurrentVersion returns the highest applied migration version
func (r *Runner) CurrentVersion(ctx context.Context) (int, error) {
	if err := r.ensureMigrationsTable(ctx); err != nil {
		return 0, err
	}

	var version int
	err := r.db.Executor().QueryRow(ctx, "SELECT COALESCE(MAX(version), 0) FROM schema_migrations").Scan(&version)
	return version, err
}

// PendingCount returns the number of pending migrations
func (r *Runner) PendingCount(ctx context.Context) (int, error) {
	if err := r.ensureMigrationsTable(ctx); err != nil {
		return 0, err
	}

	applied, err := r.getAppliedVersions(ctx)
	if err != nil {
		return 0, err
	}

	pending := 0
	for _, m := range r.migrations {
		if !applied[m.Version] {
			pending++
		}
	}

	return pending, nil
}

// Latest returns the version the schema reaches once every migration is applied
func (r *Runner) Latest() int {
	if len(r.migrations) == 0 {
		return 0
	}
	return r.migrations[len(r.migrations)-1].Version
}
