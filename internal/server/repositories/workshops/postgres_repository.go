package workshops

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

func (r *PostgresRepository) SelectAll(ctx context.Context) ([]*models.Workshop, error) {
	query := `SELECT id, name, address, rating FROM workshops ORDER BY rating DESC, name`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.Workshop
	for rows.Next() {
		w := &models.Workshop{}
		if err := rows.Scan(&w.ID, &w.Name, &w.Address, &w.Rating); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.Workshop, error) {
	query := `SELECT id, name, address, rating FROM workshops WHERE id = $1`

	w := &models.Workshop{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(&w.ID, &w.Name, &w.Address, &w.Rating)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return w, nil
}
