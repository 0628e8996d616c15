// Package users declares the repository contract for user accounts.
package users

import (
	"context"

	"github.com/dsavelev/garagekeeper/internal/server/models"
)

type Repository interface {
	// Create stores a new user and returns it with the generated ID.
	// A duplicate email yields common.ErrorAlreadyExists.
	Create(ctx context.Context, user *models.User) (*models.User, error)

	// GetByEmail returns the user with the given email or common.ErrorNotFound.
	GetByEmail(ctx context.Context, email string) (*models.User, error)

	// GetByID returns the user with the given id or common.ErrorNotFound.
	GetByID(ctx context.Context, id string) (*models.User, error)

	// UpdatePassword replaces the stored password hash.
	UpdatePassword(ctx context.Context, userID string, passwordHash string) error
}
