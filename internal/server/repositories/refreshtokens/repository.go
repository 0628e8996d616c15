// Package refreshtokens declares the repository contract for refresh tokens.
package refreshtokens

import (
	"context"
	"time"

	"github.com/dsavelev/garagekeeper/internal/server/models"
)

type Repository interface {
	// Create stores a new refresh token for userID expiring at now+validity.
	Create(ctx context.Context, userID string, token string, validity time.Duration) error

	// Find looks up a token by its opaque string; absent tokens yield
	// common.ErrorNotFound.
	Find(ctx context.Context, token string) (*models.RefreshToken, error)

	// Delete revokes a token. Deleting a non-existent token is not an error.
	Delete(ctx context.Context, token string) error
}
