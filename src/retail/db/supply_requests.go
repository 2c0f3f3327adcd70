package db

import (
	"context"

	"github.com/bitswalk/retail/src/common/errors"
)

// SupplyRequestRepository handles ProductSupplyRequests table operations
type SupplyRequestRepository struct {
	exec *Executor
}

// NewSupplyRequestRepository creates a new SupplyRequestRepository
func NewSupplyRequestRepository(exec *Executor) *SupplyRequestRepository {
	return &SupplyRequestRepository{exec: exec}
}

// Create inserts a supply request and sets its generated request number
func (r *SupplyRequestRepository) Create(ctx context.Context, req *SupplyRequest) error {
	id, err := r.exec.InsertReturningID(ctx, `
		INSERT INTO ProductSupplyRequests (managerID, warehouseID, storeID, productName, unitsRequested)
		VALUES (?, ?, ?, ?, ?)
	`, "requestNumber", req.ManagerID, req.WarehouseID, req.StoreID, req.ProductName, req.UnitsRequested)
	if errors.Is(err, errors.ErrForeignKeyViolation) {
		return errors.ErrInvalidSupplyData.WithCause(err)
	}
	if err != nil {
		return err
	}

	req.RequestNumber = id
	return nil
}

// DeleteByProductName removes every request for a product name, in all stores
func (r *SupplyRequestRepository) DeleteByProductName(ctx context.Context, name string) (int64, error) {
	return r.exec.Exec(ctx, `DELETE FROM ProductSupplyRequests WHERE productName = ?`, name)
}
