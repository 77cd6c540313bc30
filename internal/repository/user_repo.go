package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"churchapi/internal/database"
	"churchapi/internal/models"
)

const userColumns = "id, name, email, password, role, is_active"

// ErrDuplicateEmail is returned when a write collides with another account's email
var ErrDuplicateEmail = errors.New("email already exists")

// UserRepository handles database operations for user accounts
type UserRepository struct {
	db *database.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *database.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create inserts a new user. The unique index on email is the source of
// truth for duplicates, whatever the caller checked beforehand.
func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO users (id, name, email, password, role, is_active)
		VALUES (?, ?, ?, ?, ?, ?)
	`
	_, err := r.db.ExecContext(ctx, query, user.ID, user.Name, user.Email, user.Password, user.Role, user.IsActive)
	if r.db.IsUniqueViolation(err) {
		return ErrDuplicateEmail
	}
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// GetByEmail retrieves a user by email address
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.getOne(ctx, "SELECT "+userColumns+" FROM users WHERE email = ?", email)
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	return r.getOne(ctx, "SELECT "+userColumns+" FROM users WHERE id = ?", id)
}

func (r *UserRepository) getOne(ctx context.Context, query string, arg string) (*models.User, error) {
	user := &models.User{}
	err := r.db.GetContext(ctx, user, query, arg)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}

// List returns every user ordered by name
func (r *UserRepository) List(ctx context.Context) ([]models.User, error) {
	users := []models.User{}
	if err := r.db.SelectContext(ctx, &users, "SELECT "+userColumns+" FROM users ORDER BY name, id"); err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

// UpdateProfile changes a user's name and email
func (r *UserRepository) UpdateProfile(ctx context.Context, id, name, email string) error {
	_, err := r.db.ExecContext(ctx, "UPDATE users SET name = ?, email = ? WHERE id = ?", name, email, id)
	if r.db.IsUniqueViolation(err) {
		return ErrDuplicateEmail
	}
	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}
	return nil
}

// UpdateRole changes a user's role, reporting whether the user exists
func (r *UserRepository) UpdateRole(ctx context.Context, id, role string) (bool, error) {
	result, err := r.db.ExecContext(ctx, "UPDATE users SET role = ? WHERE id = ?", role, id)
	if err != nil {
		return false, fmt.Errorf("failed to update user role: %w", err)
	}
	return affected(result)
}

// affected reports whether a statement touched at least one row
func affected(result sql.Result) (bool, error) {
	rows, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return rows > 0, nil
}
