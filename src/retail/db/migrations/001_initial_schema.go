package migrations

import (
	"context"
	"strings"

	"github.com/bitswalk/retail/src/retail/db"
)

// migration001InitialSchema creates the retail tables
func migration001InitialSchema() Migration {
	return Migration{
		Version:     1,
		Description: "Initial schema with users, stores, products, warehouses, orders and audit tables",
		Up:          migration001Up,
	}
}

func migration001Up(ctx context.Context, e *db.Executor) error {
	// Referenced tables first: Users, then Store and Warehouse, then Product
	for _, stmt := range []string{
		usersTableSQL,
		storeTableSQL,
		productTableSQL,
		warehouseTableSQL,
		ordersTableSQL,
		productUpdatesTableSQL,
		productSupplyRequestsTableSQL,
	} {
		if _, err := e.Exec(ctx, renderTable(stmt, e.Dialect())); err != nil {
			return err
		}
	}

	return nil
}

// renderTable fills the dialect placeholders a table template uses.
// Templates without placeholders are returned unchanged.
func renderTable(stmt string, d db.Dialect) string {
	return strings.NewReplacer("%[1]s", d.AutoIncrementKey(), "%[2]s", d.FloatType()).Replace(stmt)
}

// Table templates take the generated key definition as %[1]s and the
// floating point type as %[2]s.

const usersTableSQL = `
CREATE TABLE IF NOT EXISTS Users (
	userID %[1]s,
	name VARCHAR(50) NOT NULL,
	password VARCHAR(255) NOT NULL,
	latitude %[2]s NOT NULL,
	longitude %[2]s NOT NULL,
	type VARCHAR(8) NOT NULL DEFAULT 'customer'
)`

const storeTableSQL = `
CREATE TABLE IF NOT EXISTS Store (
	storeID %[1]s,
	name VARCHAR(30) NOT NULL,
	latitude %[2]s NOT NULL,
	longitude %[2]s NOT NULL,
	managerID INTEGER NOT NULL REFERENCES Users (userID),
	dateEstablished DATE
)`

const productTableSQL = `
CREATE TABLE IF NOT EXISTS Product (
	storeID INTEGER NOT NULL REFERENCES Store (storeID),
	productName VARCHAR(30) NOT NULL,
	numberOfUnits INTEGER NOT NULL CHECK (numberOfUnits >= 0),
	pricePerUnit NUMERIC(10, 2) NOT NULL,
	PRIMARY KEY (storeID, productName)
)`

const warehouseTableSQL = `
CREATE TABLE IF NOT EXISTS Warehouse (
	WarehouseID %[1]s,
	area %[2]s NOT NULL,
	latitude %[2]s NOT NULL,
	longitude %[2]s NOT NULL
)`

const ordersTableSQL = `
CREATE TABLE IF NOT EXISTS Orders (
	orderNumber %[1]s,
	customerID INTEGER NOT NULL REFERENCES Users (userID),
	storeID INTEGER NOT NULL REFERENCES Store (storeID),
	productName VARCHAR(30) NOT NULL,
	unitsOrdered INTEGER NOT NULL,
	orderTime TIMESTAMP NOT NULL
)`

const productUpdatesTableSQL = `
CREATE TABLE IF NOT EXISTS ProductUpdates (
	updateNumber %[1]s,
	managerID INTEGER NOT NULL REFERENCES Users (userID),
	storeID INTEGER NOT NULL REFERENCES Store (storeID),
	productName VARCHAR(30) NOT NULL,
	updatedOn TIMESTAMP NOT NULL
)`

const productSupplyRequestsTableSQL = `
CREATE TABLE IF NOT EXISTS ProductSupplyRequests (
	requestNumber %[1]s,
	managerID INTEGER NOT NULL REFERENCES Users (userID),
	warehouseID INTEGER NOT NULL REFERENCES Warehouse (WarehouseID),
	storeID INTEGER NOT NULL REFERENCES Store (storeID),
	productName VARCHAR(30) NOT NULL,
	unitsRequested INTEGER NOT NULL
)`
