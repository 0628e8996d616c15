package services

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dsavelev/garagekeeper/internal/common"
	"github.com/dsavelev/garagekeeper/internal/server/models"
	"github.com/dsavelev/garagekeeper/internal/server/repositories/repomanager"
)

// ExpenseService manages the expense ledger.
type ExpenseService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewExpenseService(db *sql.DB, m repomanager.RepositoryManager) *ExpenseService {
	return &ExpenseService{db: db, repomanager: m}
}

func validateExpense(e *models.Expense) error {
	if !models.ValidExpenseCategory(e.Category) {
		return fmt.Errorf("%w: unknown expense category %q", common.ErrorValidation, e.Category)
	}
	if e.Amount < 0 {
		return fmt.Errorf("%w: amount must not be negative", common.ErrorValidation)
	}
	if e.Date.IsZero() {
		return fmt.Errorf("%w: date is required", common.ErrorValidation)
	}
	return nil
}

func (s *ExpenseService) Create(ctx context.Context, e *models.Expense) (*models.Expense, error) {
	if err := validateExpense(e); err != nil {
		return nil, err
	}
	if _, err := s.repomanager.Vehicles(s.db).GetByID(ctx, e.UserID, e.VehicleID); err != nil {
		return nil, err
	}
	created, err := s.repomanager.Expenses(s.db).Create(ctx, e)
	if err != nil {
		return nil, fmt.Errorf("error creating expense: %v", err)
	}
	return created, nil
}

func (s *ExpenseService) Get(ctx context.Context, userID, id string) (*models.Expense, error) {
	return s.repomanager.Expenses(s.db).GetByID(ctx, userID, id)
}

// List returns the user's expenses, newest first. Vehicle and category
// filters are optional and combine with AND.
func (s *ExpenseService) List(ctx context.Context, userID string, vehicleID *string, category *models.ExpenseCategory) ([]*models.Expense, error) {
	if category != nil && !models.ValidExpenseCategory(*category) {
		return nil, fmt.Errorf("%w: unknown expense category %q", common.ErrorValidation, *category)
	}
	return s.repomanager.Expenses(s.db).SelectAll(ctx, userID, vehicleID, category)
}

func (s *ExpenseService) Update(ctx context.Context, e *models.Expense) (*models.Expense, error) {
	if err := validateExpense(e); err != nil {
		return nil, err
	}
	return s.repomanager.Expenses(s.db).Update(ctx, e)
}

func (s *ExpenseService) Delete(ctx context.Context, userID, id string) error {
	return s.repomanager.Expenses(s.db).Delete(ctx, userID, id)
}

// Total sums amount over the filtered set; the same filters as List apply
// and an empty set totals 0.
func (s *ExpenseService) Total(ctx context.Context, userID string, vehicleID *string, category *models.ExpenseCategory) (float64, error) {
	if category != nil && !models.ValidExpenseCategory(*category) {
		return 0, fmt.Errorf("%w: unknown expense category %q", common.ErrorValidation, *category)
	}
	return s.repomanager.Expenses(s.db).SelectTotal(ctx, userID, vehicleID, category)
}
