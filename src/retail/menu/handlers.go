package menu

import (
	"context"
	"fmt"

	"github.com/bitswalk/retail/src/retail/auth"
	"github.com/bitswalk/retail/src/retail/shop"
)

// ============================================================================
// Logged out
// ============================================================================

func (c *Console) createUser(ctx context.Context) error {
	name, err := c.prompt.ReadLine("\tEnter name: ")
	if err != nil {
		return err
	}
	password, err := c.prompt.ReadPassword("\tEnter password: ")
	if err != nil {
		return err
	}
	lat, err := c.prompt.ReadFloat("\tEnter latitude: ")
	if err != nil {
		return err
	}
	long, err := c.prompt.ReadFloat("\tEnter longitude: ")
	if err != nil {
		return err
	}

	user, err := c.authn.CreateUser(ctx, auth.NewUserInput{
		Name:      name,
		Password:  password,
		Latitude:  lat,
		Longitude: long,
	})
	if err != nil {
		return err
	}

	c.out.PrintMessage(fmt.Sprintf("User successfully created with userID %d!", user.ID))
	return nil
}

func (c *Console) logIn(ctx context.Context) (*auth.Session, error) {
	name, err := c.prompt.ReadLine("\tEnter name: ")
	if err != nil {
		return nil, err
	}
	id, err := c.prompt.ReadInt("\tEnter user id: ")
	if err != nil {
		return nil, err
	}
	password, err := c.prompt.ReadPassword("\tEnter password: ")
	if err != nil {
		return nil, err
	}

	sess, err := c.authn.LogIn(ctx, name, id, password)
	if err != nil {
		return nil, err
	}

	c.out.PrintMessage(fmt.Sprintf("Welcome, %s!", sess.Name))
	return sess, nil
}

// ============================================================================
// Customer
// ============================================================================

func (c *Console) viewStores(ctx context.Context, sess *auth.Session) error {
	return c.printTotal(c.shop.ViewStoresInRange(ctx, sess, c.out))
}

func (c *Console) viewProducts(ctx context.Context, sess *auth.Session) error {
	storeID, err := c.prompt.ReadInt("Enter Store ID: ")
	if err != nil {
		return err
	}
	return c.printTotal(c.shop.ViewProducts(ctx, storeID, c.out))
}

func (c *Console) placeOrder(ctx context.Context, sess *auth.Session) error {
	if err := c.requireCustomer(ctx, sess); err != nil {
		return err
	}

	storeID, err := c.prompt.ReadInt("\tEnter StoreID: ")
	if err != nil {
		return err
	}
	product, err := c.prompt.ReadLine("\tEnter Product Name: ")
	if err != nil {
		return err
	}
	units, err := c.prompt.ReadInt("\tEnter # of Units: ")
	if err != nil {
		return err
	}

	order, err := c.shop.PlaceOrder(ctx, sess, shop.OrderInput{
		StoreID:     storeID,
		ProductName: product,
		Units:       int(units),
	})
	if err != nil {
		return err
	}

	c.out.PrintMessage(fmt.Sprintf("Order %d placed: %d x %s from store %d", order.OrderNumber, order.UnitsOrdered, order.ProductName, order.StoreID))
	return nil
}

func (c *Console) viewRecentOrders(ctx context.Context, sess *auth.Session) error {
	if err := c.requireCustomer(ctx, sess); err != nil {
		return err
	}
	return c.printTotal(c.shop.ViewRecentOrders(ctx, sess, c.out))
}

// ============================================================================
// Manager
// ============================================================================

func (c *Console) updateProduct(ctx context.Context, sess *auth.Session) error {
	g, err := c.claimRole(ctx, sess, true)
	if err != nil {
		return err
	}

	product, err := c.prompt.ReadLine("\tEnter Product Name: ")
	if err != nil {
		return err
	}
	units, err := c.prompt.ReadInt("\tEnter # of Units: ")
	if err != nil {
		return err
	}
	price, err := c.prompt.ReadDecimal("\tEnter cost: ")
	if err != nil {
		return err
	}

	if err := c.shop.UpdateProduct(ctx, g, product, int(units), price); err != nil {
		return err
	}

	c.out.PrintMessage("Product updated")
	return nil
}

func (c *Console) viewRecentUpdates(ctx context.Context, sess *auth.Session) error {
	g, err := c.claimRole(ctx, sess, true)
	if err != nil {
		return err
	}
	return c.printTotal(c.shop.ViewRecentUpdates(ctx, g, c.out))
}

func (c *Console) viewPopularProducts(ctx context.Context, sess *auth.Session) error {
	g, err := c.claimRole(ctx, sess, true)
	if err != nil {
		return err
	}
	return c.printTotal(c.shop.ViewPopularProducts(ctx, g, c.out))
}

func (c *Console) viewPopularCustomers(ctx context.Context, sess *auth.Session) error {
	g, err := c.claimRole(ctx, sess, true)
	if err != nil {
		return err
	}
	return c.printTotal(c.shop.ViewPopularCustomers(ctx, g, c.out))
}

func (c *Console) placeSupplyRequest(ctx context.Context, sess *auth.Session) error {
	g, err := c.claimRole(ctx, sess, true)
	if err != nil {
		return err
	}

	product, err := c.prompt.ReadLine("\tEnter Product Name: ")
	if err != nil {
		return err
	}
	units, err := c.prompt.ReadInt("\tEnter # of Units: ")
	if err != nil {
		return err
	}
	warehouseID, err := c.prompt.ReadInt("\tEnter Warehouse ID: ")
	if err != nil {
		return err
	}

	req, err := c.shop.PlaceSupplyRequest(ctx, g, shop.SupplyInput{
		ProductName: product,
		Units:       int(units),
		WarehouseID: warehouseID,
	})
	if err != nil {
		return err
	}

	c.out.PrintMessage(fmt.Sprintf("Supply request %d placed", req.RequestNumber))
	return nil
}

func (c *Console) viewOrders(ctx context.Context, sess *auth.Session) error {
	g, err := c.claimRole(ctx, sess, true)
	if err != nil {
		return err
	}
	return c.printTotal(c.shop.ViewOrders(ctx, g, c.out))
}

func (c *Console) viewSupplyRequests(ctx context.Context, sess *auth.Session) error {
	g, err := c.claimRole(ctx, sess, false)
	if err != nil {
		return err
	}
	return c.printTotal(c.shop.ViewSupplyRequests(ctx, g, c.out))
}
