package db

import "context"

// ProductUpdateRepository handles the ProductUpdates audit table
type ProductUpdateRepository struct {
	exec *Executor
}

// NewProductUpdateRepository creates a new ProductUpdateRepository
func NewProductUpdateRepository(exec *Executor) *ProductUpdateRepository {
	return &ProductUpdateRepository{exec: exec}
}

// Create appends an audit row and sets its generated update number
func (r *ProductUpdateRepository) Create(ctx context.Context, u *ProductUpdate) error {
	id, err := r.exec.InsertReturningID(ctx, `
		INSERT INTO ProductUpdates (managerID, storeID, productName, updatedOn)
		VALUES (?, ?, ?, ?)
	`, "updateNumber", u.ManagerID, u.StoreID, u.ProductName, u.UpdatedOn)
	if err != nil {
		return err
	}

	u.UpdateNumber = id
	return nil
}

// DeleteByProductName removes every audit row for a product name, in all stores
func (r *ProductUpdateRepository) DeleteByProductName(ctx context.Context, name string) (int64, error) {
	return r.exec.Exec(ctx, `DELETE FROM ProductUpdates WHERE productName = ?`, name)
}
