package menu

import (
	"context"
	"fmt"

	"github.com/bitswalk/retail/src/common/errors"
	"github.com/bitswalk/retail/src/retail/auth"
	"github.com/bitswalk/retail/src/retail/shop"
)

var userOptions = []string{
	"1. Update User Info",
	"2. Remove User",
	"3. Cancel",
}

var productOptions = []string{
	"1. Add Product",
	"2. Remove Product",
	"3. Cancel",
}

func (c *Console) viewUsers(ctx context.Context, sess *auth.Session) error {
	g, err := c.claimAdmin(ctx, sess)
	if err != nil {
		return err
	}
	return c.printTotal(c.shop.ViewUsers(ctx, g, c.out))
}

func (c *Console) viewAllProducts(ctx context.Context, sess *auth.Session) error {
	g, err := c.claimAdmin(ctx, sess)
	if err != nil {
		return err
	}
	return c.printTotal(c.shop.ViewAllProducts(ctx, g, c.out))
}

func (c *Console) updateUserInformation(ctx context.Context, sess *auth.Session) error {
	g, err := c.claimAdmin(ctx, sess)
	if err != nil {
		return err
	}

	c.out.Menu("OPTIONS", userOptions)
	choice, err := c.prompt.ReadChoice()
	if err != nil {
		return err
	}

	switch choice {
	case 1:
		return c.updateUser(ctx, g)
	case 2:
		id, err := c.prompt.ReadInt("Input userID to delete: ")
		if err != nil {
			return err
		}
		if err := c.shop.DeleteUser(ctx, g, id); err != nil {
			return err
		}
		c.out.PrintMessage(fmt.Sprintf("User %d removed", id))
		return nil
	case 3:
		return nil
	default:
		return errors.ErrUnrecognizedChoice
	}
}

func (c *Console) updateUser(ctx context.Context, g auth.Grant) error {
	var in shop.UserUpdate
	var err error

	if in.ID, err = c.prompt.ReadInt("Input userID to update: "); err != nil {
		return err
	}
	if in.Name, err = c.prompt.ReadLine("Input name: "); err != nil {
		return err
	}
	if in.Password, err = c.prompt.ReadPassword("Input password: "); err != nil {
		return err
	}
	if in.Latitude, err = c.prompt.ReadFloat("Input latitude: "); err != nil {
		return err
	}
	if in.Longitude, err = c.prompt.ReadFloat("Input longitude: "); err != nil {
		return err
	}
	if in.Type, err = c.prompt.ReadLine("Input type: "); err != nil {
		return err
	}

	if err := c.shop.UpdateUser(ctx, g, in); err != nil {
		return err
	}

	c.out.PrintMessage(fmt.Sprintf("User %d updated", in.ID))
	return nil
}

func (c *Console) updateProductInformation(ctx context.Context, sess *auth.Session) error {
	g, err := c.claimAdmin(ctx, sess)
	if err != nil {
		return err
	}

	c.out.Menu("OPTIONS", productOptions)
	choice, err := c.prompt.ReadChoice()
	if err != nil {
		return err
	}

	switch choice {
	case 1:
		return c.addProduct(ctx, g)
	case 2:
		name, err := c.prompt.ReadLine("Input Product name to delete: ")
		if err != nil {
			return err
		}
		del, err := c.shop.DeleteProductByName(ctx, g, name)
		if err != nil {
			return err
		}
		c.out.PrintMessage(fmt.Sprintf("Removed %s from %d store(s), with %d order(s), %d update(s) and %d supply request(s)",
			name, del.Products, del.Orders, del.Updates, del.SupplyRequests))
		return nil
	case 3:
		return nil
	default:
		return errors.ErrUnrecognizedChoice
	}
}

func (c *Console) addProduct(ctx context.Context, g auth.Grant) error {
	var in shop.ProductInput
	var err error
	var units int64

	if in.Name, err = c.prompt.ReadLine("Input New Product Name: "); err != nil {
		return err
	}
	if in.StoreID, err = c.prompt.ReadInt("Input StoreID: "); err != nil {
		return err
	}
	if units, err = c.prompt.ReadInt("Input numberOfUnits: "); err != nil {
		return err
	}
	if in.Price, err = c.prompt.ReadDecimal("Input pricePerUnit: "); err != nil {
		return err
	}
	in.Units = int(units)

	if err := c.shop.AddProduct(ctx, g, in); err != nil {
		return err
	}

	c.out.PrintMessage(fmt.Sprintf("Product %s added to store %d", in.Name, in.StoreID))
	return nil
}
