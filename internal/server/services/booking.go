package services

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/dsavelev/garagekeeper/internal/common"
	"github.com/dsavelev/garagekeeper/internal/server/models"
	"github.com/dsavelev/garagekeeper/internal/server/repositories/repomanager"
)

// BookingService manages workshop appointments and exposes the read-only
// workshop catalog.
type BookingService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	now         func() time.Time
}

func NewBookingService(db *sql.DB, m repomanager.RepositoryManager) *BookingService {
	return &BookingService{db: db, repomanager: m, now: time.Now}
}

// Workshops lists the bookable workshop catalog.
func (s *BookingService) Workshops(ctx context.Context) ([]*models.Workshop, error) {
	return s.repomanager.Workshops(s.db).SelectAll(ctx)
}

// Create books an appointment. The vehicle must belong to the user, the
// workshop must exist, the service type must be one of the offered set, and
// the slot must be in the future.
func (s *BookingService) Create(ctx context.Context, b *models.Booking) (*models.Booking, error) {
	if !models.ValidBookingServiceType(b.ServiceType) {
		return nil, fmt.Errorf("%w: unknown service type %q", common.ErrorValidation, b.ServiceType)
	}
	if !b.ScheduledAt.After(s.now()) {
		return nil, fmt.Errorf("%w: scheduled time must be in the future", common.ErrorValidation)
	}
	if _, err := s.repomanager.Vehicles(s.db).GetByID(ctx, b.UserID, b.VehicleID); err != nil {
		return nil, err
	}
	if _, err := s.repomanager.Workshops(s.db).GetByID(ctx, b.WorkshopID); err != nil {
		return nil, err
	}

	b.Status = models.BookingPending
	created, err := s.repomanager.Bookings(s.db).Create(ctx, b)
	if err != nil {
		return nil, fmt.Errorf("error creating booking: %v", err)
	}
	return created, nil
}

func (s *BookingService) Get(ctx context.Context, userID, id string) (*models.Booking, error) {
	return s.repomanager.Bookings(s.db).GetByID(ctx, userID, id)
}

// List returns the user's bookings, soonest first, optionally restricted to
// one vehicle.
func (s *BookingService) List(ctx context.Context, userID string, vehicleID *string) ([]*models.Booking, error) {
	return s.repomanager.Bookings(s.db).SelectAll(ctx, userID, vehicleID)
}

// Cancel moves a pending booking to cancelled. Cancelling twice is a no-op
// at the caller's level; the row keeps its cancelled status.
func (s *BookingService) Cancel(ctx context.Context, userID, id string) (*models.Booking, error) {
	return s.repomanager.Bookings(s.db).SetStatus(ctx, userID, id, models.BookingCancelled)
}

func (s *BookingService) Delete(ctx context.Context, userID, id string) error {
	return s.repomanager.Bookings(s.db).Delete(ctx, userID, id)
}
