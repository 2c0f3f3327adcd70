package shop

import (
	"context"

	"github.com/bitswalk/retail/src/common/errors"
	"github.com/bitswalk/retail/src/retail/auth"
	"github.com/bitswalk/retail/src/retail/db"
)

// OrderInput holds the fields of a customer order
type OrderInput struct {
	StoreID     int64  `validate:"gt=0"`
	ProductName string `validate:"required,max=30"`
	Units       int    `validate:"gt=0"`
}

// StoresInRange lists the stores strictly closer than the configured range
// to the session user, nearest first
func (s *Service) StoresInRange(ctx context.Context, sess *auth.Session) ([]db.StoreDistance, error) {
	return db.NewStoreRepository(s.db.Executor()).InRange(ctx, sess.UserID, s.cfg.Range)
}

// PlaceOrder orders units of a product from a store in range. Stock is
// decremented and the order inserted in one transaction; when stock is
// short nothing changes.
func (s *Service) PlaceOrder(ctx context.Context, sess *auth.Session, input OrderInput) (*db.Order, error) {
	privileged, err := s.checker.IsPrivileged(ctx, sess.UserID)
	if err != nil {
		return nil, err
	}
	if privileged {
		return nil, errors.ErrCustomerOnly
	}

	if err := s.validate.Struct(input); err != nil {
		return nil, auth.ValidationError(errors.ErrInvalidOrderData, err)
	}

	inRange, err := db.NewStoreRepository(s.db.Executor()).IsInRange(ctx, sess.UserID, input.StoreID, s.cfg.Range)
	if err != nil {
		return nil, err
	}
	if !inRange {
		return nil, errors.ErrStoreOutOfRange
	}

	order := &db.Order{
		CustomerID:   sess.UserID,
		StoreID:      input.StoreID,
		ProductName:  input.ProductName,
		UnitsOrdered: input.Units,
		OrderTime:    s.now().UTC(),
	}

	err = s.db.WithTx(ctx, func(e *db.Executor) error {
		if err := db.NewProductRepository(e).Decrement(ctx, input.StoreID, input.ProductName, input.Units); err != nil {
			return err
		}
		return db.NewOrderRepository(e).Create(ctx, order)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Order placed", "session", sess.ID, "order", order.OrderNumber,
		"store", order.StoreID, "product", order.ProductName, "units", order.UnitsOrdered)
	return order, nil
}
