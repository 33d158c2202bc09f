package repositories

import (
	"context"

	"github.com/ysfrando/SQLOtter/internal/models"
)

// UserRepository defines validated, parameterized user operations.
// Not-found is reported as a nil result, never as an error.
type UserRepository interface {
	// Create inserts a new user. Email and username must be format-valid
	// and globally unique.
	Create(ctx context.Context, email, username, passwordHash string) (*models.User, error)

	// GetByID retrieves a user by UUID, or nil when absent.
	GetByID(ctx context.Context, id string) (*models.User, error)

	// GetByEmail retrieves a user by email, or nil when absent.
	GetByEmail(ctx context.Context, email string) (*models.User, error)

	// Search finds users whose username or email contains the sanitized
	// term, case-insensitively. Limit is clamped to 1..100.
	Search(ctx context.Context, term string, limit int) ([]*models.User, error)

	// Update applies a field map restricted to email, username, is_active
	// and is_verified. Unknown fields are skipped; it reports false when
	// nothing allowed remains or no row matched.
	Update(ctx context.Context, id string, fields map[string]interface{}) (bool, error)

	// List retrieves users with pagination, ordered by a whitelisted
	// column.
	List(ctx context.Context, offset, limit int, orderBy string) ([]*models.User, int64, error)
}

// Implementation is in user_repository_impl.go.
