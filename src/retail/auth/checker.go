package auth

import (
	"context"

	"github.com/bitswalk/retail/src/common/errors"
	"github.com/bitswalk/retail/src/retail/db"
)

// CheckerConfig holds role check settings
type CheckerConfig struct {
	// LegacyRoleCheck makes the manager check pass for any id as soon as an
	// admin exists, as the historical query did.
	LegacyRoleCheck bool
}

// Checker verifies role claims against the Users and Store tables.
// Nothing is cached: every call queries the database.
type Checker struct {
	db  *db.Database
	cfg CheckerConfig
}

// NewChecker creates a new Checker
func NewChecker(database *db.Database, cfg CheckerConfig) *Checker {
	return &Checker{db: database, cfg: cfg}
}

// CheckManager passes when the claimed id is a manager or an admin
func (c *Checker) CheckManager(ctx context.Context, claimedID int64) error {
	ok, err := c.managerOrAdmin(ctx, claimedID)
	if err != nil {
		return err
	}
	if !ok {
		return errors.ErrNotManager
	}
	return nil
}

// CheckAdmin passes when the claimed id is an admin
func (c *Checker) CheckAdmin(ctx context.Context, claimedID int64) error {
	ok, err := db.NewUserRepository(c.db.Executor()).HasRole(ctx, claimedID, db.RoleAdmin)
	if err != nil {
		return err
	}
	if !ok {
		return errors.ErrNotAdmin
	}
	return nil
}

// StoreBelongsToManager passes when a store row has both storeID and managerID
func (c *Checker) StoreBelongsToManager(ctx context.Context, storeID, managerID int64) error {
	ok, err := db.NewStoreRepository(c.db.Executor()).BelongsToManager(ctx, storeID, managerID)
	if err != nil {
		return err
	}
	if !ok {
		return errors.ErrInvalidStore
	}
	return nil
}

// IsPrivileged reports whether a user may run manager operations.
// Customer-only operations refuse privileged users.
func (c *Checker) IsPrivileged(ctx context.Context, userID int64) (bool, error) {
	return c.managerOrAdmin(ctx, userID)
}

func (c *Checker) managerOrAdmin(ctx context.Context, id int64) (bool, error) {
	users := db.NewUserRepository(c.db.Executor())
	if c.cfg.LegacyRoleCheck {
		n, err := users.UnscopedManagerCount(ctx, id)
		return n > 0, err
	}
	return users.HasRole(ctx, id, db.RoleManager, db.RoleAdmin)
}
