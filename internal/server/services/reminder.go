package services

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/dsavelev/garagekeeper/internal/common"
	"github.com/dsavelev/garagekeeper/internal/filterx"
	"github.com/dsavelev/garagekeeper/internal/server/models"
	"github.com/dsavelev/garagekeeper/internal/server/repositories/repomanager"
)

// ReminderService manages maintenance reminders. Status is derived from the
// due date at read time, so the status filter is applied here rather than in
// SQL; the clock is a field so tests can pin "now".
type ReminderService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	now         func() time.Time
}

func NewReminderService(db *sql.DB, m repomanager.RepositoryManager) *ReminderService {
	return &ReminderService{db: db, repomanager: m, now: time.Now}
}

func validateReminder(rem *models.Reminder) error {
	if !models.ValidReminderCategory(rem.Category) {
		return fmt.Errorf("%w: unknown reminder category %q", common.ErrorValidation, rem.Category)
	}
	if rem.Title == "" {
		return fmt.Errorf("%w: title is required", common.ErrorValidation)
	}
	if rem.DueDate.IsZero() {
		return fmt.Errorf("%w: due date is required", common.ErrorValidation)
	}
	if rem.NotifyBefore != nil && *rem.NotifyBefore < 0 {
		return fmt.Errorf("%w: notify-before days must not be negative", common.ErrorValidation)
	}
	return nil
}

func (s *ReminderService) Create(ctx context.Context, rem *models.Reminder) (*models.Reminder, error) {
	if err := validateReminder(rem); err != nil {
		return nil, err
	}
	if _, err := s.repomanager.Vehicles(s.db).GetByID(ctx, rem.UserID, rem.VehicleID); err != nil {
		return nil, err
	}
	created, err := s.repomanager.Reminders(s.db).Create(ctx, rem)
	if err != nil {
		return nil, fmt.Errorf("error creating reminder: %v", err)
	}
	return created, nil
}

func (s *ReminderService) Get(ctx context.Context, userID, id string) (*models.Reminder, error) {
	return s.repomanager.Reminders(s.db).GetByID(ctx, userID, id)
}

// List returns the user's reminders ordered for display: incomplete before
// completed, then ascending due date. Vehicle and category filters are
// pushed down to SQL; the status filter is evaluated against the current
// clock after the rows are loaded.
func (s *ReminderService) List(ctx context.Context, userID string, vehicleID *string, category *models.ReminderCategory, status *models.ReminderStatus) ([]*models.Reminder, error) {
	if category != nil && !models.ValidReminderCategory(*category) {
		return nil, fmt.Errorf("%w: unknown reminder category %q", common.ErrorValidation, *category)
	}
	if status != nil && !models.ValidReminderStatus(*status) {
		return nil, fmt.Errorf("%w: unknown reminder status %q", common.ErrorValidation, *status)
	}

	items, err := s.repomanager.Reminders(s.db).SelectAll(ctx, userID, vehicleID, category)
	if err != nil {
		return nil, err
	}

	now := s.now()
	items = filterx.Apply(items, func(r *models.Reminder) bool {
		return filterx.Match(status, r.Status(now))
	})

	models.SortReminders(items)
	return items, nil
}

func (s *ReminderService) Update(ctx context.Context, rem *models.Reminder) (*models.Reminder, error) {
	if err := validateReminder(rem); err != nil {
		return nil, err
	}
	return s.repomanager.Reminders(s.db).Update(ctx, rem)
}

// SetCompleted marks a reminder done or reopens it. Both transitions are
// allowed; completion is not a delete, the row stays queryable.
func (s *ReminderService) SetCompleted(ctx context.Context, userID, id string, completed bool) (*models.Reminder, error) {
	return s.repomanager.Reminders(s.db).SetCompleted(ctx, userID, id, completed)
}

func (s *ReminderService) Delete(ctx context.Context, userID, id string) error {
	return s.repomanager.Reminders(s.db).Delete(ctx, userID, id)
}
