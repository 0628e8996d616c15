// Package vehicles declares the repository contract for the vehicle registry.
package vehicles

import (
	"context"

	"github.com/dsavelev/garagekeeper/internal/server/models"
)

// Repository operations are scoped to the owning user: a vehicle that exists
// but belongs to someone else reads as common.ErrorNotFound.
type Repository interface {
	Create(ctx context.Context, v *models.Vehicle) (*models.Vehicle, error)
	GetByID(ctx context.Context, userID, id string) (*models.Vehicle, error)
	SelectAll(ctx context.Context, userID string) ([]*models.Vehicle, error)
	Update(ctx context.Context, v *models.Vehicle) (*models.Vehicle, error)
	Delete(ctx context.Context, userID, id string) error
}
