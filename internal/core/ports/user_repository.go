package ports

import (
	"context"

	"zapshift/internal/core/domain/model/kernel"
	"zapshift/internal/core/domain/model/user"
)

// UserRepository defines the persistence contract for user aggregates.
// Email is the unique external identity, so lookups exist for both the
// internal identifier and the email.
type UserRepository interface {
	// Add persists a new user aggregate to storage.
	// Fails if a user with the same email already exists.
	Add(ctx context.Context, aggregate *user.User) error

	// Update persists changes to an existing user aggregate.
	Update(ctx context.Context, aggregate *user.User) error

	// Get retrieves a user aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*user.User, error)

	// GetByEmail retrieves a user aggregate by its unique email.
	GetByEmail(ctx context.Context, email string) (*user.User, error)
}
