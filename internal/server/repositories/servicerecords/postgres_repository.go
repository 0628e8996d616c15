package servicerecords

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

const recordColumns = `id, user_id, vehicle_id, service_type, service_date, mileage, cost, workshop_name, notes, receipt_key, created_at, updated_at`

func scanRecord(row interface{ Scan(...any) error }) (*models.ServiceRecord, error) {
	rec := &models.ServiceRecord{}
	err := row.Scan(&rec.ID, &rec.UserID, &rec.VehicleID, &rec.ServiceType, &rec.ServiceDate,
		&rec.Mileage, &rec.Cost, &rec.WorkshopName, &rec.Notes, &rec.ReceiptKey, &rec.CreatedAt, &rec.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return rec, nil
}

func (r *PostgresRepository) Create(ctx context.Context, rec *models.ServiceRecord) (*models.ServiceRecord, error) {

	query :=
		`INSERT INTO service_records (user_id, vehicle_id, service_type, service_date, mileage, cost, workshop_name, notes, receipt_key)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		 RETURNING ` + recordColumns

	created, err := scanRecord(r.db.QueryRowContext(ctx, query,
		rec.UserID, rec.VehicleID, rec.ServiceType, rec.ServiceDate, rec.Mileage, rec.Cost,
		rec.WorkshopName, rec.Notes, rec.ReceiptKey))
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return created, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, userID, id string) (*models.ServiceRecord, error) {
	query := `SELECT ` + recordColumns + ` FROM service_records WHERE user_id = $1 AND id = $2`

	rec, err := scanRecord(r.db.QueryRowContext(ctx, query, userID, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return rec, nil
}

func (r *PostgresRepository) SelectAll(ctx context.Context, userID string, vehicleID *string) ([]*models.ServiceRecord, error) {
	query := `SELECT ` + recordColumns + ` FROM service_records WHERE user_id = $1`
	args := []any{userID}

	if vehicleID != nil {
		query += ` AND vehicle_id = $2`
		args = append(args, *vehicleID)
	}
	query += ` ORDER BY service_date DESC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.ServiceRecord
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

func (r *PostgresRepository) Update(ctx context.Context, rec *models.ServiceRecord) (*models.ServiceRecord, error) {

	query :=
		`UPDATE service_records
		 SET service_type = $3, service_date = $4, mileage = $5, cost = $6,
		     workshop_name = $7, notes = $8, receipt_key = $9, updated_at = now()
		 WHERE user_id = $1 AND id = $2
		 RETURNING ` + recordColumns

	updated, err := scanRecord(r.db.QueryRowContext(ctx, query,
		rec.UserID, rec.ID, rec.ServiceType, rec.ServiceDate, rec.Mileage, rec.Cost,
		rec.WorkshopName, rec.Notes, rec.ReceiptKey))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return updated, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, userID, id string) error {
	query := `DELETE FROM service_records WHERE user_id = $1 AND id = $2`

	res, err := r.db.ExecContext(ctx, query, userID, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return common.ErrorNotFound
	}

	return nil
}

func (r *PostgresRepository) SelectTotalCost(ctx context.Context, userID string, vehicleID *string) (float64, error) {
	query := `SELECT COALESCE(SUM(cost), 0) FROM service_records WHERE user_id = $1`
	args := []any{userID}

	if vehicleID != nil {
		query += ` AND vehicle_id = $2`
		args = append(args, *vehicleID)
	}

	var total float64
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}

	return total, nil
}
