package bookings

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

const bookingColumns = `id, user_id, vehicle_id, workshop_id, scheduled_at, service_type, notes, status, created_at, updated_at`

func scanBooking(row interface{ Scan(...any) error }) (*models.Booking, error) {
	b := &models.Booking{}
	err := row.Scan(&b.ID, &b.UserID, &b.VehicleID, &b.WorkshopID, &b.ScheduledAt,
		&b.ServiceType, &b.Notes, &b.Status, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return b, nil
}

func (r *PostgresRepository) Create(ctx context.Context, b *models.Booking) (*models.Booking, error) {

	query :=
		`INSERT INTO bookings (user_id, vehicle_id, workshop_id, scheduled_at, service_type, notes, status)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING ` + bookingColumns

	created, err := scanBooking(r.db.QueryRowContext(ctx, query,
		b.UserID, b.VehicleID, b.WorkshopID, b.ScheduledAt, b.ServiceType, b.Notes, b.Status))
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return created, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, userID, id string) (*models.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE user_id = $1 AND id = $2`

	b, err := scanBooking(r.db.QueryRowContext(ctx, query, userID, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return b, nil
}

func (r *PostgresRepository) SelectAll(ctx context.Context, userID string, vehicleID *string) ([]*models.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE user_id = $1`
	args := []any{userID}

	if vehicleID != nil {
		query += ` AND vehicle_id = $2`
		args = append(args, *vehicleID)
	}
	query += ` ORDER BY scheduled_at`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

func (r *PostgresRepository) SetStatus(ctx context.Context, userID, id string, status models.BookingStatus) (*models.Booking, error) {

	query :=
		`UPDATE bookings
		 SET status = $3, updated_at = now()
		 WHERE user_id = $1 AND id = $2
		 RETURNING ` + bookingColumns

	updated, err := scanBooking(r.db.QueryRowContext(ctx, query, userID, id, status))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return updated, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, userID, id string) error {
	query := `DELETE FROM bookings WHERE user_id = $1 AND id = $2`

	res, err := r.db.ExecContext(ctx, query, userID, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return common.ErrorNotFound
	}

	return nil
}
