package menu

import (
	"context"
	stderrors "errors"

	"github.com/bitswalk/retail/src/common/errors"
	"github.com/bitswalk/retail/src/retail/auth"
	"github.com/bitswalk/retail/src/retail/db"
)

// errCancelled ends an operation quietly when the user picks Cancel
var errCancelled = stderrors.New("operation cancelled")

var roleEntries = []string{
	"1. Manager",
	"2. Admin",
	"3. Cancel",
}

// claimRole asks whether the user acts as manager or admin and verifies the
// claim. A manager must own the store it names; an admin is asked for a
// store only when withStore is set.
func (c *Console) claimRole(ctx context.Context, sess *auth.Session, withStore bool) (auth.Grant, error) {
	c.out.Menu("OPTIONS", roleEntries)

	choice, err := c.prompt.ReadChoice()
	if err != nil {
		return auth.Grant{}, err
	}

	switch choice {
	case 1:
		return c.claimManager(ctx, sess)
	case 2:
		g, err := c.claimAdmin(ctx, sess)
		if err != nil || !withStore {
			return g, err
		}
		if g.StoreID, err = c.prompt.ReadInt("\tEnter StoreID: "); err != nil {
			return auth.Grant{}, err
		}
		return g, nil
	case 3:
		return auth.Grant{}, errCancelled
	default:
		return auth.Grant{}, errors.ErrUnrecognizedChoice
	}
}

// claimManager verifies a manager id against the session and the store it names
func (c *Console) claimManager(ctx context.Context, sess *auth.Session) (auth.Grant, error) {
	id, err := c.prompt.ReadInt("Enter Manager ID: ")
	if err != nil {
		return auth.Grant{}, err
	}

	if err := c.checker.CheckManager(ctx, id); err != nil {
		return auth.Grant{}, err
	}
	if id != sess.UserID {
		return auth.Grant{}, errors.ErrWrongManager
	}

	storeID, err := c.prompt.ReadInt("Enter Store ID: ")
	if err != nil {
		return auth.Grant{}, err
	}

	if err := c.checker.StoreBelongsToManager(ctx, storeID, sess.UserID); err != nil {
		return auth.Grant{}, err
	}

	return auth.Grant{ActorID: id, Role: db.RoleManager, StoreID: storeID}, nil
}

// claimAdmin verifies an admin id against the session
func (c *Console) claimAdmin(ctx context.Context, sess *auth.Session) (auth.Grant, error) {
	id, err := c.prompt.ReadInt("Enter Admin ID: ")
	if err != nil {
		return auth.Grant{}, err
	}

	if err := c.checker.CheckAdmin(ctx, id); err != nil {
		return auth.Grant{}, err
	}
	if id != sess.UserID {
		return auth.Grant{}, errors.ErrWrongAdmin
	}

	return auth.Grant{ActorID: id, Role: db.RoleAdmin}, nil
}

// requireCustomer rejects managers and admins
func (c *Console) requireCustomer(ctx context.Context, sess *auth.Session) error {
	privileged, err := c.checker.IsPrivileged(ctx, sess.UserID)
	if err != nil {
		return err
	}
	if privileged {
		return errors.ErrCustomerOnly
	}
	return nil
}
