// Package ports defines the contracts between the application core and
// infrastructure: per-aggregate repositories, the UnitOfWork transaction
// boundary, and the external payment-processor and identity capabilities.
// These interfaces enable dependency inversion and testability.
package ports

import (
	"context"

	"zapshift/internal/core/domain/model/kernel"
	"zapshift/internal/core/domain/model/parcel"
)

// ParcelRepository defines the persistence contract for parcel aggregates.
type ParcelRepository interface {
	// Add persists a new parcel aggregate to storage.
	// The parcel must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *parcel.Parcel) error

	// Update persists changes to an existing parcel aggregate.
	// The parcel must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *parcel.Parcel) error

	// Get retrieves a parcel aggregate by its unique identifier,
	// including status fields, tracking identifier, and rider snapshot.
	Get(ctx context.Context, id kernel.UUID) (*parcel.Parcel, error)

	// Remove deletes a parcel by its unique identifier.
	Remove(ctx context.Context, id kernel.UUID) error
}
