package db

import (
	"context"

	"github.com/bitswalk/retail/src/common/errors"
)

// OrderRepository handles Orders table operations
type OrderRepository struct {
	exec *Executor
}

// NewOrderRepository creates a new OrderRepository
func NewOrderRepository(exec *Executor) *OrderRepository {
	return &OrderRepository{exec: exec}
}

// Create inserts an order and sets its generated order number
func (r *OrderRepository) Create(ctx context.Context, o *Order) error {
	id, err := r.exec.InsertReturningID(ctx, `
		INSERT INTO Orders (customerID, storeID, productName, unitsOrdered, orderTime)
		VALUES (?, ?, ?, ?, ?)
	`, "orderNumber", o.CustomerID, o.StoreID, o.ProductName, o.UnitsOrdered, o.OrderTime)
	if errors.Is(err, errors.ErrForeignKeyViolation) {
		return errors.ErrInvalidOrderData.WithCause(err)
	}
	if err != nil {
		return err
	}

	o.OrderNumber = id
	return nil
}

// DeleteByCustomer removes every order placed by a customer
func (r *OrderRepository) DeleteByCustomer(ctx context.Context, customerID int64) (int64, error) {
	return r.exec.Exec(ctx, `DELETE FROM Orders WHERE customerID = ?`, customerID)
}

// DeleteByProductName removes every order for a product name, in all stores
func (r *OrderRepository) DeleteByProductName(ctx context.Context, name string) (int64, error) {
	return r.exec.Exec(ctx, `DELETE FROM Orders WHERE productName = ?`, name)
}
