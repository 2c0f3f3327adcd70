package db

import (
	"context"
	"database/sql"

	"github.com/bitswalk/retail/src/common/errors"
	"github.com/shopspring/decimal"
)

// ProductRepository handles Product table operations
type ProductRepository struct {
	exec *Executor
}

// NewProductRepository creates a new ProductRepository
func NewProductRepository(exec *Executor) *ProductRepository {
	return &ProductRepository{exec: exec}
}

// Get retrieves the product a store carries under the given name
func (r *ProductRepository) Get(ctx context.Context, storeID int64, name string) (*Product, error) {
	var p Product

	err := r.exec.QueryRow(ctx, `
		SELECT storeID, productName, numberOfUnits, pricePerUnit
		FROM Product
		WHERE storeID = ? AND productName = ?
	`, storeID, name).Scan(&p.StoreID, &p.Name, &p.NumberOfUnits, &p.PricePerUnit)

	if err == sql.ErrNoRows {
		return nil, errors.ErrProductNotFound
	}
	if err != nil {
		return nil, translate(err)
	}

	return &p, nil
}

// Create inserts a product into a store
func (r *ProductRepository) Create(ctx context.Context, p *Product) error {
	_, err := r.exec.Exec(ctx, `
		INSERT INTO Product (storeID, productName, numberOfUnits, pricePerUnit)
		VALUES (?, ?, ?, ?)
	`, p.StoreID, p.Name, p.NumberOfUnits, p.PricePerUnit)

	switch {
	case errors.Is(err, errors.ErrDuplicateKey):
		return errors.ErrProductAlreadyExists.WithCause(err)
	case errors.Is(err, errors.ErrForeignKeyViolation):
		return errors.ErrStoreNotFound.WithCause(err)
	}
	return err
}

// Update overwrites the unit count and price of a store's product
func (r *ProductRepository) Update(ctx context.Context, storeID int64, name string, units int, price decimal.Decimal) error {
	affected, err := r.exec.Exec(ctx, `
		UPDATE Product
		SET numberOfUnits = ?, pricePerUnit = ?
		WHERE storeID = ? AND productName = ?
	`, units, price, storeID, name)
	if err != nil {
		return err
	}

	if affected == 0 {
		return errors.ErrProductNotFound
	}

	return nil
}

// Decrement removes units from stock in a single conditional statement, so
// the count can never go negative whatever other clients do concurrently.
// It fails with ErrInsufficientStock, or ErrProductNotFound when the store
// does not carry the product.
func (r *ProductRepository) Decrement(ctx context.Context, storeID int64, name string, units int) error {
	affected, err := r.exec.Exec(ctx, `
		UPDATE Product
		SET numberOfUnits = numberOfUnits - ?
		WHERE storeID = ? AND productName = ? AND numberOfUnits >= ?
	`, units, storeID, name, units)
	if err != nil {
		return err
	}

	if affected > 0 {
		return nil
	}

	if _, err := r.Get(ctx, storeID, name); err != nil {
		return err
	}
	return errors.ErrInsufficientStock
}

// Increment adds units to stock
func (r *ProductRepository) Increment(ctx context.Context, storeID int64, name string, units int) error {
	affected, err := r.exec.Exec(ctx, `
		UPDATE Product
		SET numberOfUnits = numberOfUnits + ?
		WHERE storeID = ? AND productName = ?
	`, units, storeID, name)
	if err != nil {
		return err
	}

	if affected == 0 {
		return errors.ErrProductNotFound
	}

	return nil
}

// DeleteByName removes every product with the given name, in all stores
func (r *ProductRepository) DeleteByName(ctx context.Context, name string) (int64, error) {
	return r.exec.Exec(ctx, `DELETE FROM Product WHERE productName = ?`, name)
}
