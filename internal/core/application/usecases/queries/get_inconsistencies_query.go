package queries

import (
	"errors"

	"zapshift/internal/core/domain/model/kernel"
	"zapshift/internal/pkg/guard"
)

var ErrGetInconsistenciesQueryIsNotConstructed = errors.New(
	"GetInconsistenciesQuery must be created via NewGetInconsistenciesQuery constructor",
)

// Inconsistency kinds reported by the audit query.
const (
	// InconsistencyMissingLedgerRecord flags a paid parcel with no matching
	// payment ledger record.
	InconsistencyMissingLedgerRecord = "missing-ledger-record"
	// InconsistencyRiderNotInDelivery flags an assigned parcel whose rider
	// is not marked as carrying a parcel.
	InconsistencyRiderNotInDelivery = "rider-not-in-delivery"
)

// GetInconsistenciesQuery finds parcels whose coupled writes did not land
// together: paid parcels missing their ledger record and assigned parcels
// whose rider is not in delivery. Both should be empty sets at all times;
// findings indicate a partial write that needs operator attention.
type GetInconsistenciesQuery struct {
	guard guard.ConstructorGuard
}

// NewGetInconsistenciesQuery creates a consistency audit query.
// This is a parameterless query scanning the whole store.
func NewGetInconsistenciesQuery() GetInconsistenciesQuery {
	return GetInconsistenciesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetInconsistenciesQueryIsNotConstructed if validation fails.
func (q GetInconsistenciesQuery) Validate() error {
	return q.guard.Validate(ErrGetInconsistenciesQueryIsNotConstructed)
}

// InconsistencyResponse describes one parcel that violates a cross-entity
// invariant. Kind is one of the Inconsistency* constants.
type InconsistencyResponse struct {
	ParcelID   kernel.UUID
	TrackingID string
	Kind       string
}
