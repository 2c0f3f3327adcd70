// Package shop implements the retail operations offered once a user is
// logged in: customer ordering, manager inventory and supply actions, and
// admin user and product management.
package shop

import (
	"time"

	"github.com/bitswalk/retail/src/common/errors"
	"github.com/bitswalk/retail/src/common/logs"
	"github.com/bitswalk/retail/src/retail/auth"
	"github.com/bitswalk/retail/src/retail/db"
	"github.com/go-playground/validator/v10"
)

// Config holds shop settings
type Config struct {
	// Range is the radius a customer may order within
	Range float64
	// RecentLimit caps the recent and popular views
	RecentLimit int
}

// DefaultConfig returns the default shop configuration
func DefaultConfig() Config {
	return Config{
		Range:       30,
		RecentLimit: 5,
	}
}

// PasswordHasher hashes passwords before they are stored
type PasswordHasher interface {
	HashPassword(password string) (string, error)
}

// Service runs shop operations against the database
type Service struct {
	db       *db.Database
	checker  *auth.Checker
	hasher   PasswordHasher
	cfg      Config
	validate *validator.Validate
	logger   *logs.Logger
	now      func() time.Time
}

// NewService creates a new Service. Zero config values fall back to defaults.
func NewService(database *db.Database, checker *auth.Checker, hasher PasswordHasher, cfg Config, logger *logs.Logger) *Service {
	def := DefaultConfig()
	if cfg.Range <= 0 {
		cfg.Range = def.Range
	}
	if cfg.RecentLimit <= 0 {
		cfg.RecentLimit = def.RecentLimit
	}

	return &Service{
		db:       database,
		checker:  checker,
		hasher:   hasher,
		cfg:      cfg,
		validate: validator.New(),
		logger:   logger,
		now:      time.Now,
	}
}

// Config returns the effective configuration
func (s *Service) Config() Config {
	return s.cfg
}

func requireAdmin(g auth.Grant) error {
	if !g.Admin() {
		return errors.ErrNotAdmin
	}
	return nil
}
