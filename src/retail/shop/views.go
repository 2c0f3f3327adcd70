package shop

import (
	"context"
	"strconv"

	"github.com/bitswalk/retail/src/common/errors"
	"github.com/bitswalk/retail/src/retail/auth"
	"github.com/bitswalk/retail/src/retail/db"
)

// View statements. Each is run through Executor.QueryAndPrint, which prints
// the column names as the header.
const (
	productsForStoreSQL = `
		SELECT storeID, productName, numberOfUnits, pricePerUnit
		FROM Product
		WHERE storeID = ?
		ORDER BY productName`

	recentOrdersSQL = `
		SELECT O.storeID, S.name, O.productName, O.unitsOrdered, O.orderTime
		FROM Orders O, Store S
		WHERE O.customerID = ? AND S.storeID = O.storeID
		ORDER BY O.orderTime DESC, O.orderNumber DESC
		LIMIT ?`

	recentUpdatesSQL = `
		SELECT P.updateNumber, P.managerID, P.storeID, P.productName, P.updatedOn
		FROM ProductUpdates P
		WHERE P.storeID = ?
		ORDER BY P.updatedOn DESC, P.updateNumber DESC
		LIMIT ?`

	popularProductsSQL = `
		SELECT productName, COUNT(*) AS Orders_Made
		FROM Orders
		WHERE storeID = ?
		GROUP BY productName
		ORDER BY COUNT(*) DESC, productName
		LIMIT ?`

	popularCustomersSQL = `
		SELECT O.storeID, U.name, O.customerID, COUNT(*) AS Orders_Made
		FROM Users U, Orders O
		WHERE U.userID = O.customerID AND O.storeID = ?
		GROUP BY O.customerID, O.storeID, U.name
		ORDER BY COUNT(*) DESC, O.customerID
		LIMIT ?`

	storeOrdersSQL = `
		SELECT O.orderNumber, U.name, O.storeID, O.productName, O.orderTime
		FROM Orders O, Users U
		WHERE O.customerID = U.userID AND O.storeID = ?
		ORDER BY O.orderNumber`

	storeSupplyRequestsSQL = `
		SELECT requestNumber, managerID, warehouseID, storeID, productName, unitsRequested
		FROM ProductSupplyRequests
		WHERE storeID = ?
		ORDER BY requestNumber`

	allSupplyRequestsSQL = `
		SELECT requestNumber, managerID, warehouseID, storeID, productName, unitsRequested
		FROM ProductSupplyRequests
		ORDER BY requestNumber`

	allUsersSQL = `
		SELECT userID, name, latitude, longitude, type
		FROM Users
		ORDER BY userID`

	allProductsSQL = `
		SELECT storeID, productName, numberOfUnits, pricePerUnit
		FROM Product
		ORDER BY storeID, productName`
)

func (s *Service) print(ctx context.Context, p db.TablePrinter, query string, args ...any) (int, error) {
	return s.db.Executor().QueryAndPrint(ctx, p, query, args...)
}

// ViewStoresInRange prints the stores in range of the session user
func (s *Service) ViewStoresInRange(ctx context.Context, sess *auth.Session, p db.TablePrinter) (int, error) {
	stores, err := s.StoresInRange(ctx, sess)
	if err != nil {
		return 0, err
	}
	if len(stores) == 0 {
		return 0, nil
	}

	rows := make([][]string, 0, len(stores))
	for _, sd := range stores {
		rows = append(rows, []string{
			strconv.FormatInt(sd.StoreID, 10),
			sd.Name,
			strconv.FormatFloat(sd.Distance, 'f', 2, 64),
		})
	}

	if err := p.PrintTable([]string{"storeID", "name", "dist"}, rows); err != nil {
		return 0, errors.ErrInternal.WithCause(err)
	}
	return len(rows), nil
}

// ViewProducts prints the products a store carries
func (s *Service) ViewProducts(ctx context.Context, storeID int64, p db.TablePrinter) (int, error) {
	return s.print(ctx, p, productsForStoreSQL, storeID)
}

// ViewRecentOrders prints the session user's most recent orders
func (s *Service) ViewRecentOrders(ctx context.Context, sess *auth.Session, p db.TablePrinter) (int, error) {
	return s.print(ctx, p, recentOrdersSQL, sess.UserID, s.cfg.RecentLimit)
}

// ViewRecentUpdates prints the most recent product updates of the granted store
func (s *Service) ViewRecentUpdates(ctx context.Context, g auth.Grant, p db.TablePrinter) (int, error) {
	return s.print(ctx, p, recentUpdatesSQL, g.StoreID, s.cfg.RecentLimit)
}

// ViewPopularProducts prints the most ordered products of the granted store
func (s *Service) ViewPopularProducts(ctx context.Context, g auth.Grant, p db.TablePrinter) (int, error) {
	return s.print(ctx, p, popularProductsSQL, g.StoreID, s.cfg.RecentLimit)
}

// ViewPopularCustomers prints the customers with the most orders at the granted store
func (s *Service) ViewPopularCustomers(ctx context.Context, g auth.Grant, p db.TablePrinter) (int, error) {
	return s.print(ctx, p, popularCustomersSQL, g.StoreID, s.cfg.RecentLimit)
}

// ViewOrders prints every order of the granted store
func (s *Service) ViewOrders(ctx context.Context, g auth.Grant, p db.TablePrinter) (int, error) {
	return s.print(ctx, p, storeOrdersSQL, g.StoreID)
}

// ViewSupplyRequests prints the supply requests of the granted store, or
// of every store for an admin grant
func (s *Service) ViewSupplyRequests(ctx context.Context, g auth.Grant, p db.TablePrinter) (int, error) {
	if g.Admin() {
		return s.print(ctx, p, allSupplyRequestsSQL)
	}
	return s.print(ctx, p, storeSupplyRequestsSQL, g.StoreID)
}

// ViewUsers prints every user. Password hashes are not shown.
func (s *Service) ViewUsers(ctx context.Context, g auth.Grant, p db.TablePrinter) (int, error) {
	if err := requireAdmin(g); err != nil {
		return 0, err
	}
	return s.print(ctx, p, allUsersSQL)
}

// ViewAllProducts prints every product of every store
func (s *Service) ViewAllProducts(ctx context.Context, g auth.Grant, p db.TablePrinter) (int, error) {
	if err := requireAdmin(g); err != nil {
		return 0, err
	}
	return s.print(ctx, p, allProductsSQL)
}
