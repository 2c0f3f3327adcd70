// Package auth handles user creation, log in and the role checks that
// gate manager and admin operations.
package auth

import (
	"time"

	"github.com/bitswalk/retail/src/retail/db"
)

// Session is the authenticated user of one log in. It is passed explicitly
// to every operation and dropped on log out.
type Session struct {
	// ID correlates the log lines of one session
	ID         string
	UserID     int64
	Name       string
	Role       db.Role
	LoggedInAt time.Time
}

// NewUserInput holds the fields prompted for when creating a user.
// Coordinates are limited to the [0, 100] grid stores are placed on.
type NewUserInput struct {
	Name      string  `validate:"required,max=50"`
	Password  string  `validate:"required"`
	Latitude  float64 `validate:"gte=0,lte=100"`
	Longitude float64 `validate:"gte=0,lte=100"`
}

// Grant is the outcome of a successful role claim: the acting user, the
// role it was verified for and, for managers, the store it owns.
type Grant struct {
	ActorID int64
	Role    db.Role
	StoreID int64
}

// Admin reports whether the grant was obtained through the admin check
func (g Grant) Admin() bool {
	return g.Role == db.RoleAdmin
}
