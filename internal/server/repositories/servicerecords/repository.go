// Package servicerecords declares the repository contract for the per-vehicle
// service history log.
package servicerecords

import (
	"context"

	"github.com/dsavelev/garagekeeper/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, rec *models.ServiceRecord) (*models.ServiceRecord, error)
	GetByID(ctx context.Context, userID, id string) (*models.ServiceRecord, error)
	// SelectAll returns the user's records, newest service date first,
	// optionally restricted to one vehicle.
	SelectAll(ctx context.Context, userID string, vehicleID *string) ([]*models.ServiceRecord, error)
	Update(ctx context.Context, rec *models.ServiceRecord) (*models.ServiceRecord, error)
	Delete(ctx context.Context, userID, id string) error
	// SelectTotalCost sums cost over the filtered set; an empty set is 0.
	SelectTotalCost(ctx context.Context, userID string, vehicleID *string) (float64, error)
}
