// Package queries contains read-side operations of the CQRS architecture.
// Query handlers read the database directly with raw SQL and return flat
// read models, bypassing the domain aggregates.
package queries

import (
	"errors"
	"time"

	"zapshift/internal/core/domain/model/kernel"
	"zapshift/internal/core/domain/model/parcel"
	"zapshift/internal/pkg/guard"
)

var ErrListParcelsQueryIsNotConstructed = errors.New(
	"ListParcelsQuery must be created via NewListParcelsQuery constructor",
)

// ListParcelsQuery retrieves parcels, optionally scoped to a sender and
// filtered by delivery status. Results are newest first.
//
// Example:
//
//	query, err := NewListParcelsQuery("alice@example.com", "pending-pickup")
//	if err != nil {
//	    return fmt.Errorf("invalid filter: %w", err)
//	}
//
//	handler := NewListParcelsQueryHandler(db)
//	parcels, err := handler.Handle(ctx, query)
type ListParcelsQuery struct {
	senderEmail    string
	deliveryStatus string

	guard guard.ConstructorGuard
}

// NewListParcelsQuery creates a parcel listing query.
// Both filters are optional; an empty string means no filtering on that field.
// A non-empty delivery status must be a known status string.
func NewListParcelsQuery(senderEmail, deliveryStatus string) (ListParcelsQuery, error) {
	if deliveryStatus != "" {
		if _, err := parcel.DeliveryStatusFromString(deliveryStatus); err != nil {
			return ListParcelsQuery{}, err
		}
	}

	return ListParcelsQuery{
		senderEmail:    senderEmail,
		deliveryStatus: deliveryStatus,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrListParcelsQueryIsNotConstructed if validation fails.
func (q ListParcelsQuery) Validate() error {
	return q.guard.Validate(ErrListParcelsQueryIsNotConstructed)
}

// SenderEmail returns the sender scope filter, empty for no scoping.
func (q ListParcelsQuery) SenderEmail() string {
	return q.senderEmail
}

// DeliveryStatus returns the delivery status filter, empty for no filtering.
func (q ListParcelsQuery) DeliveryStatus() string {
	return q.deliveryStatus
}

// ParcelResponse is the flat read model for a parcel.
// TrackingID is empty until the parcel is paid; the rider fields are empty
// until a rider is assigned.
type ParcelResponse struct {
	ID             kernel.UUID
	Name           string
	SenderEmail    string
	Cost           int64
	DeliveryStatus string
	PaymentStatus  string
	TrackingID     string
	RiderID        string
	RiderName      string
	RiderEmail     string
	CreatedAt      time.Time
}
