package db

import (
	"context"
	"time"

	"github.com/bitswalk/retail/src/common/errors"
)

// StoreRepository handles Store table operations
type StoreRepository struct {
	exec *Executor
}

// NewStoreRepository creates a new StoreRepository
func NewStoreRepository(exec *Executor) *StoreRepository {
	return &StoreRepository{exec: exec}
}

// Create inserts a store and sets its generated ID
func (r *StoreRepository) Create(ctx context.Context, store *Store) error {
	if store.DateEstablished.IsZero() {
		store.DateEstablished = time.Now().UTC()
	}

	id, err := r.exec.InsertReturningID(ctx, `
		INSERT INTO Store (name, latitude, longitude, managerID, dateEstablished)
		VALUES (?, ?, ?, ?, ?)
	`, "storeID", store.Name, store.Latitude, store.Longitude, store.ManagerID, store.DateEstablished)
	if errors.Is(err, errors.ErrForeignKeyViolation) {
		return errors.ErrUserNotFound.WithCause(err)
	}
	if err != nil {
		return err
	}

	store.ID = id
	return nil
}

// InRange returns the stores strictly closer than radius to the user,
// nearest first. The squared distance is compared in SQL so the filter
// does not depend on a server-side sqrt.
func (r *StoreRepository) InRange(ctx context.Context, userID int64, radius float64) ([]StoreDistance, error) {
	rows, err := r.exec.q.QueryContext(ctx, r.exec.dialect.Rebind(`
		SELECT s.storeID, s.name, u.latitude, u.longitude, s.latitude, s.longitude,
			(s.latitude - u.latitude) * (s.latitude - u.latitude) +
			(s.longitude - u.longitude) * (s.longitude - u.longitude) AS dist2
		FROM Users u, Store s
		WHERE u.userID = ?
		AND (s.latitude - u.latitude) * (s.latitude - u.latitude) +
			(s.longitude - u.longitude) * (s.longitude - u.longitude) < ?
		ORDER BY dist2, s.storeID
	`), userID, radius*radius)
	if err != nil {
		return nil, translate(err)
	}
	defer rows.Close()

	var stores []StoreDistance
	for rows.Next() {
		var sd StoreDistance
		var uLat, uLong, sLat, sLong, dist2 float64
		if err := rows.Scan(&sd.StoreID, &sd.Name, &uLat, &uLong, &sLat, &sLong, &dist2); err != nil {
			return nil, errors.ErrDatabaseQuery.WithCause(err)
		}
		sd.Distance = Distance(uLat, uLong, sLat, sLong)
		stores = append(stores, sd)
	}

	if err := rows.Err(); err != nil {
		return nil, translate(err)
	}

	return stores, nil
}

// IsInRange reports whether a given store is strictly closer than radius to the user
func (r *StoreRepository) IsInRange(ctx context.Context, userID, storeID int64, radius float64) (bool, error) {
	stores, err := r.InRange(ctx, userID, radius)
	if err != nil {
		return false, err
	}

	for _, s := range stores {
		if s.StoreID == storeID {
			return true, nil
		}
	}
	return false, nil
}

// BelongsToManager reports whether a store row has both the given id and managerID
func (r *StoreRepository) BelongsToManager(ctx context.Context, storeID, managerID int64) (bool, error) {
	count, err := r.exec.QueryCount(ctx, `
		SELECT storeID FROM Store WHERE storeID = ? AND managerID = ?
	`, storeID, managerID)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
