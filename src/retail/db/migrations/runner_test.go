package migrations

import (
	"context"
	"strings"
	"testing"

	"github.com/bitswalk/retail/src/retail/db"
)

func openTestDB(t *testing.T) *db.Database {
	t.Helper()

	database, err := db.Open(context.Background(), db.Config{Driver: db.DriverSQLite3, Name: ":memory:"})
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	t.Cleanup(func() { database.Shutdown() })
	return database
}

func TestRunner_Run(t *testing.T) {
	database := openTestDB(t)
	ctx := context.Background()
	r := NewRunner(database)

	pending, err := r.PendingCount(ctx)
	if err != nil {
		t.Fatalf("PendingCount failed: %v", err)
	}
	if pending != len(r.migrations) {
		t.Errorf("expected %d pending migrations, got %d", len(r.migrations), pending)
	}

	if err := r.Run(ctx); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	version, err := r.CurrentVersion(ctx)
	if err != nil {
		t.Fatalf("CurrentVersion failed: %v", err)
	}
	if version != r.Latest() {
		t.Errorf("expected version %d, got %d", r.Latest(), version)
	}

	pending, err = r.PendingCount(ctx)
	if err != nil {
		t.Fatalf("PendingCount failed: %v", err)
	}
	if pending != 0 {
		t.Errorf("expected no pending migrations, got %d", pending)
	}
}

func TestRunner_Idempotent(t *testing.T) {
	database := openTestDB(t)
	ctx := context.Background()

	if err := NewRunner(database).Run(ctx); err != nil {
		t.Fatalf("first Run failed: %v", err)
	}
	if err := NewRunner(database).Run(ctx); err != nil {
		t.Fatalf("second Run failed: %v", err)
	}

	var n int
	if err := database.Executor().QueryRow(ctx, "SELECT COUNT(*) FROM schema_migrations").Scan(&n); err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if n != 2 {
		t.Errorf("expected 2 recorded migrations, got %d", n)
	}
}

func TestRunner_CreatesRetailTables(t *testing.T) {
	database := openTestDB(t)
	ctx := context.Background()

	if err := NewRunner(database).Run(ctx); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	for _, table := range []string{
		"Users", "Store", "Product", "Warehouse", "Orders", "ProductUpdates", "ProductSupplyRequests",
	} {
		n, err := database.Executor().QueryCount(ctx,
			"SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?", table)
		if err != nil {
			t.Fatalf("lookup of %s failed: %v", table, err)
		}
		if n != 1 {
			t.Errorf("table %s was not created", table)
		}
	}
}

func TestRunner_FailedMigrationRollsBack(t *testing.T) {
	database := openTestDB(t)
	ctx := context.Background()

	r := &Runner{db: database, migrations: []Migration{{
		Version:     1,
		Description: "broken",
		Up: func(ctx context.Context, e *db.Executor) error {
			if _, err := e.Exec(ctx, "CREATE TABLE half (id INTEGER)"); err != nil {
				return err
			}
			_, err := e.Exec(ctx, "THIS IS NOT SQL")
			return err
		},
	}}}

	if err := r.Run(ctx); err == nil {
		t.Fatal("expected Run to fail")
	}

	n, err := database.Executor().QueryCount(ctx, "SELECT name FROM sqlite_master WHERE name = 'half'")
	if err != nil {
		t.Fatalf("lookup failed: %v", err)
	}
	if n != 0 {
		t.Error("expected table from failed migration to be rolled back")
	}

	version, err := r.CurrentVersion(ctx)
	if err != nil {
		t.Fatalf("CurrentVersion failed: %v", err)
	}
	if version != 0 {
		t.Errorf("expected version 0, got %d", version)
	}
}

func TestRenderTable_AllDialects(t *testing.T) {
	templates := map[string]string{
		"Users":                 usersTableSQL,
		"Store":                 storeTableSQL,
		"Product":               productTableSQL,
		"Warehouse":             warehouseTableSQL,
		"Orders":                ordersTableSQL,
		"ProductUpdates":        productUpdatesTableSQL,
		"ProductSupplyRequests": productSupplyRequestsTableSQL,
	}

	for _, d := range []db.Dialect{db.DialectSQLite, db.DialectPostgres} {
		for table, tmpl := range templates {
			sql := renderTable(tmpl, d)
			if strings.Contains(sql, "%") {
				t.Errorf("%s/%s: unrendered placeholder in %q", d, table, sql)
			}
			if !strings.HasSuffix(strings.TrimSpace(sql), ")") {
				t.Errorf("%s/%s: trailing text after table definition in %q", d, table, sql)
			}
		}
	}

	if got := renderTable(productTableSQL, db.DialectSQLite); got != productTableSQL {
		t.Errorf("template without placeholders changed:\n%s", got)
	}
}

func TestRunner_ProductTableAcceptsRows(t *testing.T) {
	database := openTestDB(t)
	ctx := context.Background()

	if err := NewRunner(database).Run(ctx); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	e := database.Executor()
	if _, err := e.Exec(ctx, "INSERT INTO Users (name, password, latitude, longitude, type) VALUES (?, ?, ?, ?, ?)", "Mia", "x", 1.0, 2.0, "manager"); err != nil {
		t.Fatalf("insert user failed: %v", err)
	}
	if _, err := e.Exec(ctx, "INSERT INTO Store (name, latitude, longitude, managerID) VALUES (?, ?, ?, ?)", "Central", 1.0, 2.0, 1); err != nil {
		t.Fatalf("insert store failed: %v", err)
	}
	if _, err := e.Exec(ctx, "INSERT INTO Product (storeID, productName, numberOfUnits, pricePerUnit) VALUES (?, ?, ?, ?)", 1, "Widget", 5, "2.50"); err != nil {
		t.Fatalf("insert product failed: %v", err)
	}

	n, err := e.QueryCount(ctx, "SELECT productName FROM Product WHERE storeID = ?", 1)
	if err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if n != 1 {
		t.Errorf("expected 1 product, got %d", n)
	}
}
