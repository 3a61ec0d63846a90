package payment

import (
	"errors"
	"fmt"
	"time"

	"zapshift/internal/core/domain/model/kernel"
	"zapshift/internal/pkg/errs"
	"zapshift/internal/pkg/guard"
)

// StatusPaid is the only payment status a ledger record can carry: records are
// created exclusively for settled checkout sessions.
const StatusPaid = "paid"

// ErrRecordIsNotConstructed is returned when using an improperly initialized Record.
var ErrRecordIsNotConstructed = errors.New("Record must be created via NewRecord constructor")

// Record is one immutable entry in the payment ledger. It ties an external
// transaction identity to the parcel it paid for and the tracking identifier
// issued on reconciliation.
//
// At most one Record exists per transaction identity; the persistence layer
// backs this with a uniqueness constraint, and reconciliation checks for an
// existing record before inserting. Records are never updated or deleted.
type Record struct {
	// id uniquely identifies the ledger entry
	id kernel.UUID
	// amount is the settled amount in whole currency units
	amount int64
	// currency is the ISO currency code reported by the processor
	currency string
	// payerEmail is the email the processor charged
	payerEmail string
	// parcelID references the parcel this payment settled
	parcelID kernel.UUID
	// parcelName is the shipment description snapshot from the session metadata
	parcelName string
	// transactionID is the processor's transaction identity (unique)
	transactionID string
	// trackingID is the shipment identifier issued on reconciliation
	trackingID kernel.TrackingID
	// paidAt is the reconciliation timestamp
	paidAt time.Time
	// guard ensures the record was properly constructed
	guard guard.ConstructorGuard
}

// NewRecord creates a validated ledger entry. All fields are required and the
// amount must be positive.
func NewRecord(
	id kernel.UUID,
	amount int64,
	currency, payerEmail string,
	parcelID kernel.UUID,
	parcelName, transactionID string,
	trackingID kernel.TrackingID,
	paidAt time.Time,
) (*Record, error) {
	r := &Record{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		r.setID(id),
		r.setAmount(amount),
		r.setCurrency(currency),
		r.setPayerEmail(payerEmail),
		r.setParcelID(parcelID),
		r.setParcelName(parcelName),
		r.setTransactionID(transactionID),
		r.setTrackingID(trackingID),
		r.setPaidAt(paidAt),
	); err != nil {
		return nil, err
	}

	return r, nil
}

// RestoreRecord reconstructs a ledger entry from persistent storage.
// Records are immutable, so restore applies the same validation as NewRecord.
func RestoreRecord(
	id kernel.UUID,
	amount int64,
	currency, payerEmail string,
	parcelID kernel.UUID,
	parcelName, transactionID string,
	trackingID kernel.TrackingID,
	paidAt time.Time,
) (*Record, error) {
	return NewRecord(id, amount, currency, payerEmail, parcelID, parcelName, transactionID, trackingID, paidAt)
}

// Validate ensures the Record instance was properly constructed.
func (r *Record) Validate() error {
	if r == nil {
		return ErrRecordIsNotConstructed
	}
	return r.guard.Validate(ErrRecordIsNotConstructed)
}

// ID returns the ledger entry's unique identifier.
func (r *Record) ID() kernel.UUID { return r.id }

// Amount returns the settled amount in whole currency units.
func (r *Record) Amount() int64 { return r.amount }

// Currency returns the ISO currency code.
func (r *Record) Currency() string { return r.currency }

// PayerEmail returns the email the processor charged.
func (r *Record) PayerEmail() string { return r.payerEmail }

// ParcelID returns the parcel this payment settled.
func (r *Record) ParcelID() kernel.UUID { return r.parcelID }

// ParcelName returns the shipment description snapshot.
func (r *Record) ParcelName() string { return r.parcelName }

// TransactionID returns the processor's transaction identity.
func (r *Record) TransactionID() string { return r.transactionID }

// TrackingID returns the shipment identifier issued on reconciliation.
func (r *Record) TrackingID() kernel.TrackingID { return r.trackingID }

// PaidAt returns the reconciliation timestamp.
func (r *Record) PaidAt() time.Time { return r.paidAt }

// Status returns the ledger status, which is always StatusPaid.
func (r *Record) Status() string { return StatusPaid }

func (r *Record) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Record) setAmount(amount int64) error {
	if amount <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("amount", fmt.Errorf("%d is not greater than 0", amount))
	}
	r.amount = amount
	return nil
}

func (r *Record) setCurrency(currency string) error {
	if currency == "" {
		return errs.NewValueIsRequiredError("currency")
	}
	r.currency = currency
	return nil
}

func (r *Record) setPayerEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("payerEmail")
	}
	r.payerEmail = email
	return nil
}

func (r *Record) setParcelID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("parcelId", err)
	}
	r.parcelID = id
	return nil
}

func (r *Record) setParcelName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("parcelName")
	}
	r.parcelName = name
	return nil
}

func (r *Record) setTransactionID(id string) error {
	if id == "" {
		return errs.NewValueIsRequiredError("transactionId")
	}
	r.transactionID = id
	return nil
}

func (r *Record) setTrackingID(id kernel.TrackingID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.trackingID = id
	return nil
}

func (r *Record) setPaidAt(paidAt time.Time) error {
	if paidAt.IsZero() {
		return errs.NewValueIsRequiredError("paidAt")
	}
	r.paidAt = paidAt
	return nil
}
