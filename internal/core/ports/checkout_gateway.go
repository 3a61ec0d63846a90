package ports

import (
	"context"
	"errors"

	"zapshift/internal/core/domain/model/kernel"
)

// ErrSessionNotFound is returned by RetrieveSession when the payment processor
// knows no session under the given identifier.
var ErrSessionNotFound = errors.New("checkout session not found")

// CreateSessionRequest carries everything the processor needs to open a
// checkout session for one parcel. ParcelID and ParcelName travel as session
// metadata so reconciliation can recover them without a second lookup.
type CreateSessionRequest struct {
	ParcelID    kernel.UUID
	ParcelName  string
	AmountUnits int64 // whole currency units; adapters convert to minor units
	SenderEmail string
}

// SessionHandle is the payer-facing result of opening a session: the session
// identifier and the processor-hosted redirect URL.
type SessionHandle struct {
	ID          string
	RedirectURL string
}

// CheckoutSession is the typed contract between the checkout initiator and
// payment reconciliation: the session fields reconciliation consumes, with the
// parcel metadata round-tripped through the processor already parsed.
type CheckoutSession struct {
	ID            string
	TransactionID string
	Paid          bool
	AmountUnits   int64
	Currency      string
	CustomerEmail string
	ParcelID      kernel.UUID
	ParcelName    string
}

// CheckoutGateway is the payment-processor capability. Implementations talk to
// the external processor; the core never sees processor-specific types.
type CheckoutGateway interface {
	// CreateSession opens a payment session scoped to one parcel and returns
	// the redirect handle for the payer. No store is mutated.
	CreateSession(ctx context.Context, req CreateSessionRequest) (SessionHandle, error)

	// RetrieveSession fetches a session by identifier.
	// Returns ErrSessionNotFound if the processor knows no such session.
	RetrieveSession(ctx context.Context, sessionID string) (CheckoutSession, error)
}
