// Package bookings declares the repository contract for workshop
// appointments.
package bookings

import (
	"context"

	"github.com/dsavelev/garagekeeper/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, b *models.Booking) (*models.Booking, error)
	GetByID(ctx context.Context, userID, id string) (*models.Booking, error)
	// SelectAll returns the user's bookings, soonest first, optionally
	// restricted to one vehicle.
	SelectAll(ctx context.Context, userID string, vehicleID *string) ([]*models.Booking, error)
	// SetStatus updates the stored lifecycle status and returns the row.
	SetStatus(ctx context.Context, userID, id string, status models.BookingStatus) (*models.Booking, error)
	Delete(ctx context.Context, userID, id string) error
}
