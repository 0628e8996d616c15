package services

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/dsavelev/garagekeeper/internal/common"
	"github.com/dsavelev/garagekeeper/internal/logging"
	"github.com/dsavelev/garagekeeper/internal/server/models"
	"github.com/dsavelev/garagekeeper/internal/server/repositories/repomanager"
)

// objectRemover is the slice of StorageService the vehicle service needs for
// photo cleanup.
type objectRemover interface {
	DeleteObject(ctx context.Context, key string) error
}

// VehicleService manages the per-user vehicle registry. All operations are
// scoped to the authenticated user; foreign vehicles read as not found.
type VehicleService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	storage     objectRemover
	logger      logging.Logger
}

func NewVehicleService(db *sql.DB, m repomanager.RepositoryManager, storage objectRemover, logger logging.Logger) *VehicleService {
	return &VehicleService{
		db:          db,
		repomanager: m,
		storage:     storage,
		logger:      logger.With("service", "vehicle"),
	}
}

func validateVehicle(v *models.Vehicle) error {
	if v.Make == "" || v.Model == "" {
		return fmt.Errorf("%w: make and model are required", common.ErrorValidation)
	}
	if v.Year < 1900 || v.Year > time.Now().Year()+1 {
		return fmt.Errorf("%w: year %d out of range", common.ErrorValidation, v.Year)
	}
	if v.Mileage < 0 {
		return fmt.Errorf("%w: mileage must not be negative", common.ErrorValidation)
	}
	return nil
}

func (s *VehicleService) Create(ctx context.Context, v *models.Vehicle) (*models.Vehicle, error) {
	if err := validateVehicle(v); err != nil {
		return nil, err
	}
	repo := s.repomanager.Vehicles(s.db)
	created, err := repo.Create(ctx, v)
	if err != nil {
		return nil, fmt.Errorf("error creating vehicle: %v", err)
	}
	return created, nil
}

func (s *VehicleService) Get(ctx context.Context, userID, id string) (*models.Vehicle, error) {
	repo := s.repomanager.Vehicles(s.db)
	return repo.GetByID(ctx, userID, id)
}

func (s *VehicleService) List(ctx context.Context, userID string) ([]*models.Vehicle, error) {
	repo := s.repomanager.Vehicles(s.db)
	return repo.SelectAll(ctx, userID)
}

// Update replaces the vehicle's fields. When the photo key changes, the
// superseded object is removed best-effort after the row is written.
func (s *VehicleService) Update(ctx context.Context, v *models.Vehicle) (*models.Vehicle, error) {
	if err := validateVehicle(v); err != nil {
		return nil, err
	}
	repo := s.repomanager.Vehicles(s.db)

	prev, err := repo.GetByID(ctx, v.UserID, v.ID)
	if err != nil {
		return nil, err
	}

	updated, err := repo.Update(ctx, v)
	if err != nil {
		return nil, err
	}

	if prev.PhotoKey != "" && prev.PhotoKey != updated.PhotoKey {
		if err := s.storage.DeleteObject(ctx, prev.PhotoKey); err != nil {
			s.logger.Warn(ctx, "superseded photo cleanup failed", "vehicle_id", v.ID, "key", prev.PhotoKey, "error", err)
		}
	}
	return updated, nil
}

// Delete removes a vehicle. The database cascades the vehicle's records,
// expenses, reminders, and bookings; the stored photo is removed best-effort
// afterwards, a cleanup failure is logged and does not fail the delete.
func (s *VehicleService) Delete(ctx context.Context, userID, id string) error {
	repo := s.repomanager.Vehicles(s.db)

	v, err := repo.GetByID(ctx, userID, id)
	if err != nil {
		return err
	}

	if err := repo.Delete(ctx, userID, id); err != nil {
		return err
	}

	if v.PhotoKey != "" {
		if err := s.storage.DeleteObject(ctx, v.PhotoKey); err != nil {
			s.logger.Warn(ctx, "vehicle photo cleanup failed", "vehicle_id", id, "key", v.PhotoKey, "error", err)
		}
	}
	return nil
}
