package services

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dsavelev/garagekeeper/internal/common"
	"github.com/dsavelev/garagekeeper/internal/server/models"
	"github.com/dsavelev/garagekeeper/internal/server/repositories/repomanager"
)

// ServiceRecordService manages the per-vehicle service history log.
type ServiceRecordService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewServiceRecordService(db *sql.DB, m repomanager.RepositoryManager) *ServiceRecordService {
	return &ServiceRecordService{db: db, repomanager: m}
}

func validateServiceRecord(rec *models.ServiceRecord) error {
	if rec.ServiceType == "" {
		return fmt.Errorf("%w: service type is required", common.ErrorValidation)
	}
	if rec.ServiceDate.IsZero() {
		return fmt.Errorf("%w: service date is required", common.ErrorValidation)
	}
	if rec.Cost < 0 {
		return fmt.Errorf("%w: cost must not be negative", common.ErrorValidation)
	}
	if rec.Mileage < 0 {
		return fmt.Errorf("%w: mileage must not be negative", common.ErrorValidation)
	}
	return nil
}

// Create validates the record and checks the target vehicle belongs to the
// user before inserting.
func (s *ServiceRecordService) Create(ctx context.Context, rec *models.ServiceRecord) (*models.ServiceRecord, error) {
	if err := validateServiceRecord(rec); err != nil {
		return nil, err
	}
	if _, err := s.repomanager.Vehicles(s.db).GetByID(ctx, rec.UserID, rec.VehicleID); err != nil {
		return nil, err
	}
	created, err := s.repomanager.ServiceRecords(s.db).Create(ctx, rec)
	if err != nil {
		return nil, fmt.Errorf("error creating service record: %v", err)
	}
	return created, nil
}

func (s *ServiceRecordService) Get(ctx context.Context, userID, id string) (*models.ServiceRecord, error) {
	return s.repomanager.ServiceRecords(s.db).GetByID(ctx, userID, id)
}

// List returns the user's records, newest service date first, optionally
// restricted to one vehicle.
func (s *ServiceRecordService) List(ctx context.Context, userID string, vehicleID *string) ([]*models.ServiceRecord, error) {
	return s.repomanager.ServiceRecords(s.db).SelectAll(ctx, userID, vehicleID)
}

func (s *ServiceRecordService) Update(ctx context.Context, rec *models.ServiceRecord) (*models.ServiceRecord, error) {
	if err := validateServiceRecord(rec); err != nil {
		return nil, err
	}
	return s.repomanager.ServiceRecords(s.db).Update(ctx, rec)
}

func (s *ServiceRecordService) Delete(ctx context.Context, userID, id string) error {
	return s.repomanager.ServiceRecords(s.db).Delete(ctx, userID, id)
}

// TotalCost sums cost over the user's records, optionally per vehicle.
// An empty history totals 0.
func (s *ServiceRecordService) TotalCost(ctx context.Context, userID string, vehicleID *string) (float64, error) {
	return s.repomanager.ServiceRecords(s.db).SelectTotalCost(ctx, userID, vehicleID)
}
