// Package dbtest opens migrated in-memory SQLite databases and seeds rows for tests.
package dbtest

import (
	"context"
	"testing"
	"time"

	"github.com/bitswalk/retail/src/retail/db"
	"github.com/bitswalk/retail/src/retail/db/migrations"
	"github.com/shopspring/decimal"
)

// New returns a migrated in-memory database closed at the end of the test
func New(t testing.TB) *db.Database {
	t.Helper()

	ctx := context.Background()
	database, err := db.Open(ctx, db.Config{Driver: db.DriverSQLite3, Name: ":memory:"})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := migrations.NewRunner(database).Run(ctx); err != nil {
		database.Shutdown()
		t.Fatalf("failed to run migrations: %v", err)
	}

	t.Cleanup(func() {
		database.Shutdown()
	})

	return database
}

// User inserts a user with the given role and stored password value
func User(t testing.TB, d *db.Database, name, password string, role db.Role, lat, long float64) *db.User {
	t.Helper()

	u := &db.User{Name: name, Password: password, Latitude: lat, Longitude: long, Type: role}
	if err := db.NewUserRepository(d.Executor()).Create(context.Background(), u); err != nil {
		t.Fatalf("failed to create user %s: %v", name, err)
	}
	return u
}

// Store inserts a store managed by managerID
func Store(t testing.TB, d *db.Database, name string, managerID int64, lat, long float64) *db.Store {
	t.Helper()

	s := &db.Store{
		Name:            name,
		Latitude:        lat,
		Longitude:       long,
		ManagerID:       managerID,
		DateEstablished: time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	if err := db.NewStoreRepository(d.Executor()).Create(context.Background(), s); err != nil {
		t.Fatalf("failed to create store %s: %v", name, err)
	}
	return s
}

// Product inserts a product into a store
func Product(t testing.TB, d *db.Database, storeID int64, name string, units int, price string) *db.Product {
	t.Helper()

	p := &db.Product{
		StoreID:       storeID,
		Name:          name,
		NumberOfUnits: units,
		PricePerUnit:  decimal.RequireFromString(price),
	}
	if err := db.NewProductRepository(d.Executor()).Create(context.Background(), p); err != nil {
		t.Fatalf("failed to create product %s: %v", name, err)
	}
	return p
}

// Warehouse inserts a warehouse
func Warehouse(t testing.TB, d *db.Database, area, lat, long float64) *db.Warehouse {
	t.Helper()

	w := &db.Warehouse{Area: area, Latitude: lat, Longitude: long}
	if err := db.NewWarehouseRepository(d.Executor()).Create(context.Background(), w); err != nil {
		t.Fatalf("failed to create warehouse: %v", err)
	}
	return w
}

// Count returns the number of rows a query yields, failing the test on error
func Count(t testing.TB, d *db.Database, query string, args ...any) int {
	t.Helper()

	n, err := d.Executor().QueryCount(context.Background(), query, args...)
	if err != nil {
		t.Fatalf("failed to count rows: %v", err)
	}
	return n
}

// Units returns the stock of a store's product, failing the test when absent
func Units(t testing.TB, d *db.Database, storeID int64, name string) int {
	t.Helper()

	p, err := db.NewProductRepository(d.Executor()).Get(context.Background(), storeID, name)
	if err != nil {
		t.Fatalf("failed to get product %s: %v", name, err)
	}
	return p.NumberOfUnits
}
