package db

import (
	"math"
	"strings"
	"time"

	"github.com/bitswalk/retail/src/common/errors"
	"github.com/shopspring/decimal"
)

// Role is the value stored in Users.type
type Role string

const (
	RoleCustomer Role = "customer"
	RoleManager  Role = "manager"
	RoleAdmin    Role = "admin"
)

// ParseRole parses a role name case-insensitively
func ParseRole(s string) (Role, error) {
	switch Role(strings.ToLower(strings.TrimSpace(s))) {
	case RoleCustomer:
		return RoleCustomer, nil
	case RoleManager:
		return RoleManager, nil
	case RoleAdmin:
		return RoleAdmin, nil
	default:
		return "", errors.ErrInvalidUserData.WithMessagef("Unknown user type %q", s)
	}
}

// Privileged reports whether the role may run manager operations
func (r Role) Privileged() bool {
	return r == RoleManager || r == RoleAdmin
}

// String returns the stored form of the role
func (r Role) String() string {
	return string(r)
}

// User is a row of the Users table. Password holds the bcrypt hash.
type User struct {
	ID        int64   `json:"userID" yaml:"userID"`
	Name      string  `json:"name" yaml:"name"`
	Password  string  `json:"-" yaml:"-"`
	Latitude  float64 `json:"latitude" yaml:"latitude"`
	Longitude float64 `json:"longitude" yaml:"longitude"`
	Type      Role    `json:"type" yaml:"type"`
}

// Store is a row of the Store table
type Store struct {
	ID              int64     `json:"storeID" yaml:"storeID"`
	Name            string    `json:"name" yaml:"name"`
	Latitude        float64   `json:"latitude" yaml:"latitude"`
	Longitude       float64   `json:"longitude" yaml:"longitude"`
	ManagerID       int64     `json:"managerID" yaml:"managerID"`
	DateEstablished time.Time `json:"dateEstablished" yaml:"dateEstablished"`
}

// StoreDistance is a store together with its distance from a user
type StoreDistance struct {
	StoreID  int64   `json:"storeID" yaml:"storeID"`
	Name     string  `json:"name" yaml:"name"`
	Distance float64 `json:"dist" yaml:"dist"`
}

// Product is a row of the Product table, keyed by (StoreID, Name)
type Product struct {
	StoreID       int64           `json:"storeID" yaml:"storeID"`
	Name          string          `json:"productName" yaml:"productName"`
	NumberOfUnits int             `json:"numberOfUnits" yaml:"numberOfUnits"`
	PricePerUnit  decimal.Decimal `json:"pricePerUnit" yaml:"pricePerUnit"`
}

// Order is a row of the Orders table
type Order struct {
	OrderNumber  int64     `json:"orderNumber" yaml:"orderNumber"`
	CustomerID   int64     `json:"customerID" yaml:"customerID"`
	StoreID      int64     `json:"storeID" yaml:"storeID"`
	ProductName  string    `json:"productName" yaml:"productName"`
	UnitsOrdered int       `json:"unitsOrdered" yaml:"unitsOrdered"`
	OrderTime    time.Time `json:"orderTime" yaml:"orderTime"`
}

// ProductUpdate is an audit row of the ProductUpdates table
type ProductUpdate struct {
	UpdateNumber int64     `json:"updateNumber" yaml:"updateNumber"`
	ManagerID    int64     `json:"managerID" yaml:"managerID"`
	StoreID      int64     `json:"storeID" yaml:"storeID"`
	ProductName  string    `json:"productName" yaml:"productName"`
	UpdatedOn    time.Time `json:"updatedOn" yaml:"updatedOn"`
}

// SupplyRequest is a row of the ProductSupplyRequests table
type SupplyRequest struct {
	RequestNumber  int64  `json:"requestNumber" yaml:"requestNumber"`
	ManagerID      int64  `json:"managerID" yaml:"managerID"`
	WarehouseID    int64  `json:"warehouseID" yaml:"warehouseID"`
	StoreID        int64  `json:"storeID" yaml:"storeID"`
	ProductName    string `json:"productName" yaml:"productName"`
	UnitsRequested int    `json:"unitsRequested" yaml:"unitsRequested"`
}

// Warehouse is a row of the Warehouse table
type Warehouse struct {
	ID        int64   `json:"WarehouseID" yaml:"WarehouseID"`
	Area      float64 `json:"area" yaml:"area"`
	Latitude  float64 `json:"latitude" yaml:"latitude"`
	Longitude float64 `json:"longitude" yaml:"longitude"`
}

// Distance is the planar Euclidean distance between two coordinate pairs.
// Latitude and longitude are used as plain x/y values.
func Distance(lat1, long1, lat2, long2 float64) float64 {
	return math.Sqrt(squaredDistance(lat1, long1, lat2, long2))
}

func squaredDistance(lat1, long1, lat2, long2 float64) float64 {
	dLat := lat2 - lat1
	dLong := long2 - long1
	return dLat*dLat + dLong*dLong
}
