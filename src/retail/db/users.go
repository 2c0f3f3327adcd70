package db

import (
	"context"
	"database/sql"
	"strings"

	"github.com/bitswalk/retail/src/common/errors"
)

// UserRepository handles Users table operations
type UserRepository struct {
	exec *Executor
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(exec *Executor) *UserRepository {
	return &UserRepository{exec: exec}
}

// Create inserts a user and sets its generated ID
func (r *UserRepository) Create(ctx context.Context, user *User) error {
	id, err := r.exec.InsertReturningID(ctx, `
		INSERT INTO Users (name, password, latitude, longitude, type)
		VALUES (?, ?, ?, ?, ?)
	`, "userID", user.Name, user.Password, user.Latitude, user.Longitude, string(user.Type))
	if err != nil {
		return err
	}

	user.ID = id
	return nil
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(ctx context.Context, id int64) (*User, error) {
	var user User
	var role string

	err := r.exec.QueryRow(ctx, `
		SELECT userID, name, password, latitude, longitude, type
		FROM Users
		WHERE userID = ?
	`, id).Scan(&user.ID, &user.Name, &user.Password, &user.Latitude, &user.Longitude, &role)

	if err == sql.ErrNoRows {
		return nil, errors.ErrUserNotFound
	}
	if err != nil {
		return nil, translate(err)
	}

	user.Type, err = ParseRole(role)
	if err != nil {
		return nil, errors.ErrDatabaseQuery.WithCause(err)
	}

	return &user, nil
}

// HasRole reports whether the user exists with one of the given roles
func (r *UserRepository) HasRole(ctx context.Context, id int64, roles ...Role) (bool, error) {
	if len(roles) == 0 {
		return false, nil
	}

	query := `SELECT userID FROM Users WHERE userID = ? AND LOWER(TRIM(type)) IN (?` +
		strings.Repeat(", ?", len(roles)-1) + `)`

	args := make([]any, 0, len(roles)+1)
	args = append(args, id)
	for _, role := range roles {
		args = append(args, string(role))
	}

	count, err := r.exec.QueryCount(ctx, query, args...)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// UnscopedManagerCount reproduces the historical manager check, where the
// admin alternative is not bound to the id: any admin row makes it pass.
func (r *UserRepository) UnscopedManagerCount(ctx context.Context, id int64) (int, error) {
	return r.exec.QueryCount(ctx, `
		SELECT type FROM Users
		WHERE userID = ? AND LOWER(TRIM(type)) = 'manager' OR LOWER(TRIM(type)) = 'admin'
	`, id)
}

// Update overwrites every mutable column of a user
func (r *UserRepository) Update(ctx context.Context, user *User) error {
	affected, err := r.exec.Exec(ctx, `
		UPDATE Users
		SET name = ?, password = ?, latitude = ?, longitude = ?, type = ?
		WHERE userID = ?
	`, user.Name, user.Password, user.Latitude, user.Longitude, string(user.Type), user.ID)
	if err != nil {
		return err
	}

	if affected == 0 {
		return errors.ErrUserNotFound
	}

	return nil
}

// Delete removes a user row. Orders must be deleted first; a user still
// referenced by stores or audit rows is reported as ErrUserInUse.
func (r *UserRepository) Delete(ctx context.Context, id int64) error {
	affected, err := r.exec.Exec(ctx, `DELETE FROM Users WHERE userID = ?`, id)
	if errors.Is(err, errors.ErrForeignKeyViolation) {
		return errors.ErrUserInUse.WithCause(err)
	}
	if err != nil {
		return err
	}

	if affected == 0 {
		return errors.ErrUserNotFound
	}

	return nil
}
