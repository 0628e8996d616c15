package reminders

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

const reminderColumns = `id, user_id, vehicle_id, category, title, due_date, notify_before, completed, notes, created_at, updated_at`

func scanReminder(row interface{ Scan(...any) error }) (*models.Reminder, error) {
	rem := &models.Reminder{}
	err := row.Scan(&rem.ID, &rem.UserID, &rem.VehicleID, &rem.Category, &rem.Title, &rem.DueDate,
		&rem.NotifyBefore, &rem.Completed, &rem.Notes, &rem.CreatedAt, &rem.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return rem, nil
}

func (r *PostgresRepository) Create(ctx context.Context, rem *models.Reminder) (*models.Reminder, error) {

	query :=
		`INSERT INTO reminders (user_id, vehicle_id, category, title, due_date, notify_before, completed, notes)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING ` + reminderColumns

	created, err := scanReminder(r.db.QueryRowContext(ctx, query,
		rem.UserID, rem.VehicleID, rem.Category, rem.Title, rem.DueDate, rem.NotifyBefore, rem.Completed, rem.Notes))
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return created, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, userID, id string) (*models.Reminder, error) {
	query := `SELECT ` + reminderColumns + ` FROM reminders WHERE user_id = $1 AND id = $2`

	rem, err := scanReminder(r.db.QueryRowContext(ctx, query, userID, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return rem, nil
}

func (r *PostgresRepository) SelectAll(ctx context.Context, userID string, vehicleID *string, category *models.ReminderCategory) ([]*models.Reminder, error) {
	query := `SELECT ` + reminderColumns + ` FROM reminders WHERE user_id = $1`
	args := []any{userID}

	if vehicleID != nil {
		args = append(args, *vehicleID)
		query += fmt.Sprintf(" AND vehicle_id = $%d", len(args))
	}
	if category != nil {
		args = append(args, *category)
		query += fmt.Sprintf(" AND category = $%d", len(args))
	}
	// Presentation order (incomplete first, then due date) is applied by
	// models.SortReminders; created_at here just keeps ties deterministic.
	query += ` ORDER BY created_at`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.Reminder
	for rows.Next() {
		rem, err := scanReminder(rows)
		if err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, rem)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

func (r *PostgresRepository) Update(ctx context.Context, rem *models.Reminder) (*models.Reminder, error) {

	query :=
		`UPDATE reminders
		 SET category = $3, title = $4, due_date = $5, notify_before = $6, completed = $7, notes = $8, updated_at = now()
		 WHERE user_id = $1 AND id = $2
		 RETURNING ` + reminderColumns

	updated, err := scanReminder(r.db.QueryRowContext(ctx, query,
		rem.UserID, rem.ID, rem.Category, rem.Title, rem.DueDate, rem.NotifyBefore, rem.Completed, rem.Notes))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return updated, nil
}

func (r *PostgresRepository) SetCompleted(ctx context.Context, userID, id string, completed bool) (*models.Reminder, error) {

	query :=
		`UPDATE reminders
		 SET completed = $3, updated_at = now()
		 WHERE user_id = $1 AND id = $2
		 RETURNING ` + reminderColumns

	updated, err := scanReminder(r.db.QueryRowContext(ctx, query, userID, id, completed))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return updated, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, userID, id string) error {
	query := `DELETE FROM reminders WHERE user_id = $1 AND id = $2`

	res, err := r.db.ExecContext(ctx, query, userID, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return common.ErrorNotFound
	}

	return nil
}
