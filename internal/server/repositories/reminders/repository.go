// Package reminders declares the repository contract for maintenance
// reminders. Status is derived at read time, so only the vehicle and
// category filters are pushed down to SQL; status filtering happens in the
// service layer where "now" is known.
package reminders

import (
	"context"

	"github.com/dsavelev/garagekeeper/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, rem *models.Reminder) (*models.Reminder, error)
	GetByID(ctx context.Context, userID, id string) (*models.Reminder, error)
	SelectAll(ctx context.Context, userID string, vehicleID *string, category *models.ReminderCategory) ([]*models.Reminder, error)
	Update(ctx context.Context, rem *models.Reminder) (*models.Reminder, error)
	// SetCompleted flips the completion flag and returns the updated row.
	SetCompleted(ctx context.Context, userID, id string, completed bool) (*models.Reminder, error)
	Delete(ctx context.Context, userID, id string) error
}
