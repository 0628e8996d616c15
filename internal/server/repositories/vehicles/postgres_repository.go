package vehicles

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

const vehicleColumns = `id, user_id, make, model, year, license_plate, color, fuel_type, mileage, purchase_date, photo_key, created_at, updated_at`

func scanVehicle(row interface{ Scan(...any) error }) (*models.Vehicle, error) {
	v := &models.Vehicle{}
	err := row.Scan(&v.ID, &v.UserID, &v.Make, &v.Model, &v.Year, &v.LicensePlate,
		&v.Color, &v.FuelType, &v.Mileage, &v.PurchaseDate, &v.PhotoKey, &v.CreatedAt, &v.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return v, nil
}

func (r *PostgresRepository) Create(ctx context.Context, v *models.Vehicle) (*models.Vehicle, error) {

	query :=
		`INSERT INTO vehicles (user_id, make, model, year, license_plate, color, fuel_type, mileage, purchase_date, photo_key)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		 RETURNING ` + vehicleColumns

	created, err := scanVehicle(r.db.QueryRowContext(ctx, query,
		v.UserID, v.Make, v.Model, v.Year, v.LicensePlate, v.Color, v.FuelType, v.Mileage, v.PurchaseDate, v.PhotoKey))
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return created, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, userID, id string) (*models.Vehicle, error) {
	query := `SELECT ` + vehicleColumns + ` FROM vehicles WHERE user_id = $1 AND id = $2`

	v, err := scanVehicle(r.db.QueryRowContext(ctx, query, userID, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return v, nil
}

func (r *PostgresRepository) SelectAll(ctx context.Context, userID string) ([]*models.Vehicle, error) {
	query := `SELECT ` + vehicleColumns + ` FROM vehicles WHERE user_id = $1 ORDER BY created_at`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.Vehicle
	for rows.Next() {
		v, err := scanVehicle(rows)
		if err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

func (r *PostgresRepository) Update(ctx context.Context, v *models.Vehicle) (*models.Vehicle, error) {

	query :=
		`UPDATE vehicles
		 SET make = $3, model = $4, year = $5, license_plate = $6, color = $7,
		     fuel_type = $8, mileage = $9, purchase_date = $10, photo_key = $11,
		     updated_at = now()
		 WHERE user_id = $1 AND id = $2
		 RETURNING ` + vehicleColumns

	updated, err := scanVehicle(r.db.QueryRowContext(ctx, query,
		v.UserID, v.ID, v.Make, v.Model, v.Year, v.LicensePlate, v.Color, v.FuelType, v.Mileage, v.PurchaseDate, v.PhotoKey))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return updated, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, userID, id string) error {
	query := `DELETE FROM vehicles WHERE user_id = $1 AND id = $2`

	res, err := r.db.ExecContext(ctx, query, userID, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return common.ErrorNotFound
	}

	return nil
}
