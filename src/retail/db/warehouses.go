package db

import "context"

// WarehouseRepository handles Warehouse table operations
type WarehouseRepository struct {
	exec *Executor
}

// NewWarehouseRepository creates a new WarehouseRepository
func NewWarehouseRepository(exec *Executor) *WarehouseRepository {
	return &WarehouseRepository{exec: exec}
}

// Create inserts a warehouse and sets its generated ID
func (r *WarehouseRepository) Create(ctx context.Context, w *Warehouse) error {
	id, err := r.exec.InsertReturningID(ctx, `
		INSERT INTO Warehouse (area, latitude, longitude)
		VALUES (?, ?, ?)
	`, "WarehouseID", w.Area, w.Latitude, w.Longitude)
	if err != nil {
		return err
	}

	w.ID = id
	return nil
}

// Exists reports whether a warehouse with the given id exists
func (r *WarehouseRepository) Exists(ctx context.Context, id int64) (bool, error) {
	count, err := r.exec.QueryCount(ctx, `SELECT WarehouseID FROM Warehouse WHERE WarehouseID = ?`, id)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
