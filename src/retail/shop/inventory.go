package shop

import (
	"context"

	"github.com/bitswalk/retail/src/common/errors"
	"github.com/bitswalk/retail/src/retail/auth"
	"github.com/bitswalk/retail/src/retail/db"
	"github.com/shopspring/decimal"
)

// ProductInput holds the fields of a product row
type ProductInput struct {
	StoreID int64           `validate:"gt=0"`
	Name    string          `validate:"required,max=30"`
	Units   int             `validate:"gte=0"`
	Price   decimal.Decimal `validate:"-"`
}

// SupplyInput holds the fields of a supply request
type SupplyInput struct {
	ProductName string `validate:"required,max=30"`
	Units       int    `validate:"gt=0"`
	WarehouseID int64  `validate:"gt=0"`
}

func (s *Service) validateProduct(input ProductInput) error {
	if err := s.validate.Struct(input); err != nil {
		return auth.ValidationError(errors.ErrInvalidProductData, err)
	}
	if input.Price.IsNegative() {
		return errors.ErrInvalidProductData.WithMessage("Price must be at least 0")
	}
	return nil
}

// UpdateProduct overwrites the unit count and price of a product in the
// granted store and records the change in ProductUpdates
func (s *Service) UpdateProduct(ctx context.Context, g auth.Grant, name string, units int, price decimal.Decimal) error {
	input := ProductInput{StoreID: g.StoreID, Name: name, Units: units, Price: price}
	if err := s.validateProduct(input); err != nil {
		return err
	}

	update := &db.ProductUpdate{
		ManagerID:   g.ActorID,
		StoreID:     g.StoreID,
		ProductName: name,
		UpdatedOn:   s.now().UTC(),
	}

	err := s.db.WithTx(ctx, func(e *db.Executor) error {
		if err := db.NewProductRepository(e).Update(ctx, g.StoreID, name, units, price); err != nil {
			return err
		}
		return db.NewProductUpdateRepository(e).Create(ctx, update)
	})
	if err != nil {
		return err
	}

	s.logger.Info("Product updated", "manager", g.ActorID, "store", g.StoreID, "product", name, "update", update.UpdateNumber)
	return nil
}

// PlaceSupplyRequest records a request to a warehouse. The requested units
// are added to the store's stock immediately, in the same transaction.
func (s *Service) PlaceSupplyRequest(ctx context.Context, g auth.Grant, input SupplyInput) (*db.SupplyRequest, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, auth.ValidationError(errors.ErrInvalidSupplyData, err)
	}

	exists, err := db.NewWarehouseRepository(s.db.Executor()).Exists(ctx, input.WarehouseID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, errors.ErrWarehouseNotFound
	}

	req := &db.SupplyRequest{
		ManagerID:      g.ActorID,
		WarehouseID:    input.WarehouseID,
		StoreID:        g.StoreID,
		ProductName:    input.ProductName,
		UnitsRequested: input.Units,
	}

	err = s.db.WithTx(ctx, func(e *db.Executor) error {
		if err := db.NewProductRepository(e).Increment(ctx, g.StoreID, input.ProductName, input.Units); err != nil {
			return err
		}
		return db.NewSupplyRequestRepository(e).Create(ctx, req)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Supply request placed", "manager", g.ActorID, "store", g.StoreID,
		"warehouse", input.WarehouseID, "product", input.ProductName, "units", input.Units)
	return req, nil
}
