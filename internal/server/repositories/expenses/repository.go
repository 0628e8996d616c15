// Package expenses declares the repository contract for the expense ledger.
package expenses

import (
	"context"

	"github.com/dsavelev/garagekeeper/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, e *models.Expense) (*models.Expense, error)
	GetByID(ctx context.Context, userID, id string) (*models.Expense, error)
	// SelectAll returns the user's expenses, newest first, with optional
	// vehicle and category filters combined with AND.
	SelectAll(ctx context.Context, userID string, vehicleID *string, category *models.ExpenseCategory) ([]*models.Expense, error)
	Update(ctx context.Context, e *models.Expense) (*models.Expense, error)
	Delete(ctx context.Context, userID, id string) error
	// SelectTotal sums amount over the filtered set; an empty set is 0.
	SelectTotal(ctx context.Context, userID string, vehicleID *string, category *models.ExpenseCategory) (float64, error)
}
