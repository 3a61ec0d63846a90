package ports

import (
	"context"

	"zapshift/internal/core/domain/model/payment"
)

// PaymentRepository defines the persistence contract for the append-only
// payment ledger. Records are inserted and read, never updated or deleted.
type PaymentRepository interface {
	// Add inserts a new ledger record. The storage layer enforces a
	// uniqueness constraint on the transaction identity, so a concurrent
	// duplicate insert fails rather than double-crediting.
	Add(ctx context.Context, record *payment.Record) error

	// GetByTransactionID retrieves the record created for an external
	// transaction identity. This lookup is the idempotency check of payment
	// reconciliation and is re-evaluated on every call.
	GetByTransactionID(ctx context.Context, transactionID string) (*payment.Record, error)
}
