package migrations

import (
	"context"

	"github.com/bitswalk/retail/src/retail/db"
)

// migration002Indexes adds the indexes used by the order and audit views
func migration002Indexes() Migration {
	return Migration{
		Version:     2,
		Description: "Indexes for order history, audit views and product name cascades",
		Up:          migration002Up,
	}
}

func migration002Up(ctx context.Context, e *db.Executor) error {
	for _, stmt := range []string{
		`CREATE INDEX IF NOT EXISTS idx_orders_customer ON Orders (customerID, orderTime)`,
		`CREATE INDEX IF NOT EXISTS idx_orders_store ON Orders (storeID)`,
		`CREATE INDEX IF NOT EXISTS idx_orders_product ON Orders (productName)`,
		`CREATE INDEX IF NOT EXISTS idx_product_updates_store ON ProductUpdates (storeID, updatedOn)`,
		`CREATE INDEX IF NOT EXISTS idx_product_updates_product ON ProductUpdates (productName)`,
		`CREATE INDEX IF NOT EXISTS idx_supply_requests_store ON ProductSupplyRequests (storeID)`,
		`CREATE INDEX IF NOT EXISTS idx_supply_requests_product ON ProductSupplyRequests (productName)`,
		`CREATE INDEX IF NOT EXISTS idx_store_manager ON Store (managerID)`,
	} {
		if _, err := e.Exec(ctx, stmt); err != nil {
			return err
		}
	}

	return nil
}
