package shop

import (
	"context"

	"github.com/bitswalk/retail/src/common/errors"
	"github.com/bitswalk/retail/src/retail/auth"
	"github.com/bitswalk/retail/src/retail/db"
)

// UserUpdate holds every mutable column of a user
type UserUpdate struct {
	ID        int64   `validate:"gt=0"`
	Name      string  `validate:"required,max=50"`
	Password  string  `validate:"required"`
	Latitude  float64 `validate:"gte=0,lte=100"`
	Longitude float64 `validate:"gte=0,lte=100"`
	Type      string  `validate:"required"`
}

// ProductDeletion counts the rows removed by DeleteProductByName
type ProductDeletion struct {
	Orders         int64
	Updates        int64
	SupplyRequests int64
	Products       int64
}

// UpdateUser overwrites a user's name, password, coordinates and type
func (s *Service) UpdateUser(ctx context.Context, g auth.Grant, input UserUpdate) error {
	if err := requireAdmin(g); err != nil {
		return err
	}

	if err := s.validate.Struct(input); err != nil {
		return auth.ValidationError(errors.ErrInvalidUserData, err)
	}

	role, err := db.ParseRole(input.Type)
	if err != nil {
		return err
	}

	hash, err := s.hasher.HashPassword(input.Password)
	if err != nil {
		return err
	}

	user := &db.User{
		ID:        input.ID,
		Name:      input.Name,
		Password:  hash,
		Latitude:  input.Latitude,
		Longitude: input.Longitude,
		Type:      role,
	}

	if err := db.NewUserRepository(s.db.Executor()).Update(ctx, user); err != nil {
		return err
	}

	s.logger.Info("User updated", "admin", g.ActorID, "user", user.ID, "type", user.Type)
	return nil
}

// DeleteUser removes a user's orders and then the user, in one transaction
func (s *Service) DeleteUser(ctx context.Context, g auth.Grant, userID int64) error {
	if err := requireAdmin(g); err != nil {
		return err
	}

	var orders int64
	err := s.db.WithTx(ctx, func(e *db.Executor) error {
		var err error
		if orders, err = db.NewOrderRepository(e).DeleteByCustomer(ctx, userID); err != nil {
			return err
		}
		return db.NewUserRepository(e).Delete(ctx, userID)
	})
	if err != nil {
		return err
	}

	s.logger.Info("User deleted", "admin", g.ActorID, "user", userID, "orders", orders)
	return nil
}

// AddProduct inserts a product into a store
func (s *Service) AddProduct(ctx context.Context, g auth.Grant, input ProductInput) error {
	if err := requireAdmin(g); err != nil {
		return err
	}

	if err := s.validateProduct(input); err != nil {
		return err
	}

	p := &db.Product{
		StoreID:       input.StoreID,
		Name:          input.Name,
		NumberOfUnits: input.Units,
		PricePerUnit:  input.Price,
	}

	if err := db.NewProductRepository(s.db.Executor()).Create(ctx, p); err != nil {
		return err
	}

	s.logger.Info("Product added", "admin", g.ActorID, "store", p.StoreID, "product", p.Name)
	return nil
}

// DeleteProductByName removes every product carrying the name, in all
// stores, together with the orders, updates and supply requests that
// reference the name. All deletions share one transaction.
func (s *Service) DeleteProductByName(ctx context.Context, g auth.Grant, name string) (*ProductDeletion, error) {
	if err := requireAdmin(g); err != nil {
		return nil, err
	}

	if name == "" {
		return nil, errors.ErrInvalidProductData.WithMessage("Name is required")
	}

	var del ProductDeletion
	err := s.db.WithTx(ctx, func(e *db.Executor) error {
		var err error
		if del.Orders, err = db.NewOrderRepository(e).DeleteByProductName(ctx, name); err != nil {
			return err
		}
		if del.Updates, err = db.NewProductUpdateRepository(e).DeleteByProductName(ctx, name); err != nil {
			return err
		}
		if del.SupplyRequests, err = db.NewSupplyRequestRepository(e).DeleteByProductName(ctx, name); err != nil {
			return err
		}
		if del.Products, err = db.NewProductRepository(e).DeleteByName(ctx, name); err != nil {
			return err
		}
		if del.Products == 0 {
			return errors.ErrProductNotFound
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Product deleted", "admin", g.ActorID, "product", name, "stores", del.Products,
		"orders", del.Orders, "updates", del.Updates, "requests", del.SupplyRequests)
	return &del, nil
}
