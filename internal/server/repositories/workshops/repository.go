// Package workshops declares the read-only repository for the workshop
// catalog. The catalog is seeded by migration.
package workshops

import (
	"context"

	"github.com/dsavelev/garagekeeper/internal/server/models"
)

type Repository interface {
	SelectAll(ctx context.Context) ([]*models.Workshop, error)
	GetByID(ctx context.Context, id string) (*models.Workshop, error)
}
