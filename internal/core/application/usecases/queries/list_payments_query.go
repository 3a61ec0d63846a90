package queries

import (
	"errors"
	"time"

	"zapshift/internal/core/domain/model/kernel"
	"zapshift/internal/pkg/guard"
)

var ErrListPaymentsQueryIsNotConstructed = errors.New(
	"ListPaymentsQuery must be created via NewListPaymentsQuery constructor",
)

// ListPaymentsQuery retrieves ledger records, optionally scoped to one payer.
// Results are most recent payment first.
type ListPaymentsQuery struct {
	payerEmail string

	guard guard.ConstructorGuard
}

// NewListPaymentsQuery creates a payment history query.
// An empty payer email returns the full ledger (admin view).
func NewListPaymentsQuery(payerEmail string) ListPaymentsQuery {
	return ListPaymentsQuery{
		payerEmail: payerEmail,
		guard:      guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
// Returns ErrListPaymentsQueryIsNotConstructed if validation fails.
func (q ListPaymentsQuery) Validate() error {
	return q.guard.Validate(ErrListPaymentsQueryIsNotConstructed)
}

// PayerEmail returns the payer scope, empty for the full ledger.
func (q ListPaymentsQuery) PayerEmail() string {
	return q.payerEmail
}

// PaymentResponse is the flat read model for a ledger record.
type PaymentResponse struct {
	ID            kernel.UUID
	Amount        int64
	Currency      string
	PayerEmail    string
	ParcelID      kernel.UUID
	ParcelName    string
	TransactionID string
	TrackingID    string
	PaidAt        time.Time
}
