package auth

import (
	"context"
	"time"

	"github.com/bitswalk/retail/src/common/errors"
	"github.com/bitswalk/retail/src/common/logs"
	"github.com/bitswalk/retail/src/retail/db"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// Config holds authenticator settings
type Config struct {
	// BcryptCost is the cost used when hashing passwords
	BcryptCost int
}

// DefaultConfig returns the default authenticator configuration
func DefaultConfig() Config {
	return Config{BcryptCost: bcrypt.DefaultCost}
}

// Authenticator creates users and logs them in
type Authenticator struct {
	db       *db.Database
	cfg      Config
	validate *validator.Validate
	logger   *logs.Logger
	now      func() time.Time
}

// NewAuthenticator creates a new Authenticator
func NewAuthenticator(database *db.Database, cfg Config, logger *logs.Logger) *Authenticator {
	if cfg.BcryptCost == 0 {
		cfg.BcryptCost = bcrypt.DefaultCost
	}
	return &Authenticator{
		db:       database,
		cfg:      cfg,
		validate: validator.New(),
		logger:   logger,
		now:      time.Now,
	}
}

// HashPassword returns the bcrypt hash stored for a password
func (a *Authenticator) HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), a.cfg.BcryptCost)
	if err != nil {
		return "", errors.ErrInternal.WithCause(err)
	}
	return string(hash), nil
}

// CreateUser inserts a customer and returns it with its generated ID.
// Names are not unique: the ID is what identifies a user at log in.
func (a *Authenticator) CreateUser(ctx context.Context, input NewUserInput) (*db.User, error) {
	if err := a.validate.Struct(input); err != nil {
		return nil, ValidationError(errors.ErrInvalidUserData, err)
	}

	hash, err := a.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	user := &db.User{
		Name:      input.Name,
		Password:  hash,
		Latitude:  input.Latitude,
		Longitude: input.Longitude,
		Type:      db.RoleCustomer,
	}

	if err := db.NewUserRepository(a.db.Executor()).Create(ctx, user); err != nil {
		return nil, err
	}

	a.logger.Info("User created", "user", user.ID)
	return user, nil
}

// LogIn returns a session when a user with that id exists under exactly
// that name and the password matches. Every mismatch is reported the same way.
func (a *Authenticator) LogIn(ctx context.Context, name string, id int64, password string) (*Session, error) {
	user, err := db.NewUserRepository(a.db.Executor()).GetByID(ctx, id)
	if errors.Is(err, errors.ErrUserNotFound) {
		return nil, errors.ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	if user.Name != name {
		return nil, errors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, errors.ErrInvalidCredentials
	}

	sess := &Session{
		ID:         uuid.NewString(),
		UserID:     user.ID,
		Name:       user.Name,
		Role:       user.Type,
		LoggedInAt: a.now().UTC(),
	}

	a.logger.Info("User logged in", "session", sess.ID, "user", sess.UserID, "role", sess.Role)
	return sess, nil
}

// ValidationError turns validator output into a user-facing message naming
// the first offending field
func ValidationError(base *errors.Error, err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		switch fe.Tag() {
		case "required":
			return base.WithMessagef("%s is required", fe.Field()).WithCause(err)
		case "gte":
			return base.WithMessagef("%s must be at least %s", fe.Field(), fe.Param()).WithCause(err)
		case "gt":
			return base.WithMessagef("%s must be greater than %s", fe.Field(), fe.Param()).WithCause(err)
		case "lte":
			return base.WithMessagef("%s must be at most %s", fe.Field(), fe.Param()).WithCause(err)
		case "max":
			return base.WithMessagef("%s must be at most %s characters", fe.Field(), fe.Param()).WithCause(err)
		default:
			return base.WithMessagef("Invalid %s", fe.Field()).WithCause(err)
		}
	}
	return base.WithCause(err)
}
