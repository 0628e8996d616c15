// Package passwordresets declares the repository contract for password
// reset tokens.
package passwordresets

import (
	"context"
	"time"

	"github.com/dsavelev/garagekeeper/internal/server/models"
)

type Repository interface {
	// Create stores a reset token for userID expiring at now+validity.
	Create(ctx context.Context, userID string, token string, validity time.Duration) error

	// Find looks up a token; absent tokens yield common.ErrorNotFound.
	Find(ctx context.Context, token string) (*models.PasswordReset, error)

	// Delete consumes a token after a successful reset.
	Delete(ctx context.Context, token string) error
}
