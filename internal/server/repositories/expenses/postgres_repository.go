package expenses

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dsavelev/garagekeeper/internal/common"
	"github.com/dsavelev/garagekeeper/internal/dbx"
	"github.com/dsavelev/garagekeeper/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const expenseColumns = `id, user_id, vehicle_id, category, amount, date, notes, receipt_key, created_at, updated_at`

func scanExpense(row interface{ Scan(...any) error }) (*models.Expense, error) {
	e := &models.Expense{}
	err := row.Scan(&e.ID, &e.UserID, &e.VehicleID, &e.Category, &e.Amount, &e.Date,
		&e.Notes, &e.ReceiptKey, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return e, nil
}

// filterClause appends optional vehicle/category conditions to a query that
// already filters by user_id as $1.
func filterClause(query string, args []any, vehicleID *string, category *models.ExpenseCategory) (string, []any) {
	if vehicleID != nil {
		args = append(args, *vehicleID)
		query += fmt.Sprintf(" AND vehicle_id = $%d", len(args))
	}
	if category != nil {
		args = append(args, *category)
		query += fmt.Sprintf(" AND category = $%d", len(args))
	}
	return query, args
}

func (r *PostgresRepository) Create(ctx context.Context, e *models.Expense) (*models.Expense, error) {

	query :=
		`INSERT INTO expenses (user_id, vehicle_id, category, amount, date, notes, receipt_key)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING ` + expenseColumns

	created, err := scanExpense(r.db.QueryRowContext(ctx, query,
		e.UserID, e.VehicleID, e.Category, e.Amount, e.Date, e.Notes, e.ReceiptKey))
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return created, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, userID, id string) (*models.Expense, error) {
	query := `SELECT ` + expenseColumns + ` FROM expenses WHERE user_id = $1 AND id = $2`

	e, err := scanExpense(r.db.QueryRowContext(ctx, query, userID, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return e, nil
}

func (r *PostgresRepository) SelectAll(ctx context.Context, userID string, vehicleID *string, category *models.ExpenseCategory) ([]*models.Expense, error) {
	query := `SELECT ` + expenseColumns + ` FROM expenses WHERE user_id = $1`
	args := []any{userID}
	query, args = filterClause(query, args, vehicleID, category)
	query += ` ORDER BY date DESC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.Expense
	for rows.Next() {
		e, err := scanExpense(rows)
		if err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

func (r *PostgresRepository) Update(ctx context.Context, e *models.Expense) (*models.Expense, error) {

	query :=
		`UPDATE expenses
		 SET category = $3, amount = $4, date = $5, notes = $6, receipt_key = $7, updated_at = now()
		 WHERE user_id = $1 AND id = $2
		 RETURNING ` + expenseColumns

	updated, err := scanExpense(r.db.QueryRowContext(ctx, query,
		e.UserID, e.ID, e.Category, e.Amount, e.Date, e.Notes, e.ReceiptKey))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return updated, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, userID, id string) error {
	query := `DELETE FROM expenses WHERE user_id = $1 AND id = $2`

	res, err := r.db.ExecContext(ctx, query, userID, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return common.ErrorNotFound
	}

	return nil
}

func (r *PostgresRepository) SelectTotal(ctx context.Context, userID string, vehicleID *string, category *models.ExpenseCategory) (float64, error) {
	query := `SELECT COALESCE(SUM(amount), 0) FROM expenses WHERE user_id = $1`
	args := []any{userID}
	query, args = filterClause(query, args, vehicleID, category)

	var total float64
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}

	return total, nil
}
