package parcel

import (
	"errors"
	"fmt"
	"time"

	"zapshift/internal/core/domain/model/kernel"
	"zapshift/internal/pkg/errs"
	"zapshift/internal/pkg/guard"
)

// Domain errors for parcel operations.
var (
	// ErrParcelIsNotConstructed is returned when using an improperly initialized Parcel.
	ErrParcelIsNotConstructed = errors.New("Parcel must be created via NewParcel constructor")
	// ErrRiderRefIsNotConstructed is returned when using an improperly initialized RiderRef.
	ErrRiderRefIsNotConstructed = errors.New("RiderRef must be created via NewRiderRef constructor")
	// ErrTrackingWithoutPayment is returned when restoring a parcel whose tracking
	// identifier and payment status disagree.
	ErrTrackingWithoutPayment = errors.New("tracking ID is present if and only if the parcel is paid")
)

// RiderRef is a snapshot of the rider bound to a parcel at assignment time.
// It is denormalized onto the parcel so shipment views need no rider lookup.
type RiderRef struct {
	id    kernel.UUID
	name  string
	email string
	guard guard.ConstructorGuard
}

// NewRiderRef creates a validated rider snapshot.
func NewRiderRef(id kernel.UUID, name, email string) (RiderRef, error) {
	if err := id.Validate(); err != nil {
		return RiderRef{}, err
	}
	if name == "" {
		return RiderRef{}, errs.NewValueIsRequiredError("riderName")
	}
	if email == "" {
		return RiderRef{}, errs.NewValueIsRequiredError("riderEmail")
	}

	return RiderRef{
		id:    id,
		name:  name,
		email: email,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// ID returns the referenced rider's identifier.
func (r RiderRef) ID() kernel.UUID { return r.id }

// Name returns the rider's name as of assignment time.
func (r RiderRef) Name() string { return r.name }

// Email returns the rider's email as of assignment time.
func (r RiderRef) Email() string { return r.email }

// Validate ensures the RiderRef was created via NewRiderRef.
func (r RiderRef) Validate() error {
	return r.guard.Validate(ErrRiderRefIsNotConstructed)
}

// Parcel is the aggregate root for a shipment. It owns the delivery and
// payment status fields and enforces their transitions:
//
//   - MarkPaid is performed only by payment reconciliation and moves the
//     parcel to pending-pickup while attaching its tracking identifier.
//   - AssignRider is performed only by the assignment coordinator, requires a
//     paid parcel, and moves it to deliver-assigned.
//
// Invariants:
//   - tracking ID is present if and only if payment status is paid
//   - rider reference is present if and only if delivery status is deliver-assigned
//   - cost is a positive integral currency amount
//
// Parcels can only be created through NewParcel or restored from persistence
// through RestoreParcel, both of which validate every invariant.
type Parcel struct {
	// id uniquely identifies the parcel
	id kernel.UUID
	// name is the sender-facing shipment description used on checkout
	name string
	// senderEmail identifies the sender; only the sender may create the parcel
	senderEmail string
	// cost is the shipping price in whole currency units
	cost int64
	// deliveryStatus is the current state in the shipment lifecycle
	deliveryStatus DeliveryStatus
	// paymentStatus records whether the shipping cost has been settled
	paymentStatus PaymentStatus
	// trackingID is set on first successful payment reconciliation
	trackingID *kernel.TrackingID
	// rider is the assigned courier snapshot (nil until assignment)
	rider *RiderRef
	// createdAt is the creation timestamp
	createdAt time.Time
	// guard ensures the parcel was properly constructed
	guard guard.ConstructorGuard
}

// NewParcel creates a new Parcel in pending-payment/unpaid state.
//
// Parameters:
//   - id: unique identifier (must be a valid UUID)
//   - name: shipment description (must be non-empty)
//   - senderEmail: sender's email (must be non-empty)
//   - cost: shipping price in whole currency units (must be positive)
//   - createdAt: creation timestamp (must be non-zero)
//
// Returns the parcel, or an aggregated validation error if any parameter is
// invalid.
func NewParcel(id kernel.UUID, name, senderEmail string, cost int64, createdAt time.Time) (*Parcel, error) {
	p := &Parcel{
		deliveryStatus: PendingPayment,
		paymentStatus:  Unpaid,
		guard:          guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setID(id),
		p.setName(name),
		p.setSenderEmail(senderEmail),
		p.setCost(cost),
		p.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestoreParcel reconstructs a Parcel from persistent storage, including its
// status fields, tracking identifier, and rider snapshot. Unlike NewParcel it
// accepts any valid status combination, but it still enforces the cross-field
// invariants so corrupt rows cannot enter the domain.
func RestoreParcel(
	id kernel.UUID,
	name, senderEmail string,
	cost int64,
	deliveryStatus DeliveryStatus,
	paymentStatus PaymentStatus,
	trackingID *kernel.TrackingID,
	rider *RiderRef,
	createdAt time.Time,
) (*Parcel, error) {
	p := &Parcel{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setID(id),
		p.setName(name),
		p.setSenderEmail(senderEmail),
		p.setCost(cost),
		p.setCreatedAt(createdAt),
		deliveryStatus.Validate(),
		paymentStatus.Validate(),
	); err != nil {
		return nil, err
	}

	if err := deliveryStatus.ValidateCanHaveRider(rider != nil); err != nil {
		return nil, err
	}
	if (trackingID != nil) != (paymentStatus == Paid) {
		return nil, ErrTrackingWithoutPayment
	}
	if rider != nil {
		if err := rider.Validate(); err != nil {
			return nil, err
		}
	}
	if trackingID != nil {
		if err := trackingID.Validate(); err != nil {
			return nil, err
		}
	}

	p.deliveryStatus = deliveryStatus
	p.paymentStatus = paymentStatus
	p.trackingID = trackingID
	p.rider = rider
	return p, nil
}

// Validate ensures the Parcel instance was properly constructed.
func (p *Parcel) Validate() error {
	if p == nil {
		return ErrParcelIsNotConstructed
	}
	return p.guard.Validate(ErrParcelIsNotConstructed)
}

// IsEqual compares two parcels by their unique identifiers.
func (p *Parcel) IsEqual(other *Parcel) bool {
	return other != nil && p.id.IsEqual(other.id)
}

// ID returns the parcel's unique identifier.
func (p *Parcel) ID() kernel.UUID { return p.id }

// Name returns the shipment description.
func (p *Parcel) Name() string { return p.name }

// SenderEmail returns the sender's email.
func (p *Parcel) SenderEmail() string { return p.senderEmail }

// Cost returns the shipping price in whole currency units.
func (p *Parcel) Cost() int64 { return p.cost }

// DeliveryStatus returns the current delivery status.
func (p *Parcel) DeliveryStatus() DeliveryStatus { return p.deliveryStatus }

// PaymentStatus returns the current payment status.
func (p *Parcel) PaymentStatus() PaymentStatus { return p.paymentStatus }

// TrackingID returns the tracking identifier, or nil while unpaid.
func (p *Parcel) TrackingID() *kernel.TrackingID { return p.trackingID }

// Rider returns the assigned rider snapshot, or nil while unassigned.
func (p *Parcel) Rider() *RiderRef { return p.rider }

// CreatedAt returns the creation timestamp.
func (p *Parcel) CreatedAt() time.Time { return p.createdAt }

// MarkPaid records a successful payment: payment status becomes paid, delivery
// status becomes pending-pickup, and the tracking identifier is attached.
// Both status transitions must be legal, which means a parcel can be marked
// paid exactly once.
func (p *Parcel) MarkPaid(trackingID kernel.TrackingID) error {
	if err := trackingID.Validate(); err != nil {
		return err
	}

	newPaymentStatus, err := p.paymentStatus.MarkPaid()
	if err != nil {
		return err
	}
	newDeliveryStatus, err := p.deliveryStatus.MarkPaid()
	if err != nil {
		return err
	}

	p.paymentStatus = newPaymentStatus
	p.deliveryStatus = newDeliveryStatus
	p.trackingID = &trackingID
	return nil
}

// AssignRider binds a rider to the parcel and moves it to deliver-assigned.
// The parcel must be paid and waiting for pickup; assigning a rider to an
// unpaid parcel is rejected.
func (p *Parcel) AssignRider(ref RiderRef) error {
	if err := ref.Validate(); err != nil {
		return err
	}

	newStatus, err := p.deliveryStatus.Assign()
	if err != nil {
		return err
	}

	p.deliveryStatus = newStatus
	p.rider = &ref
	return nil
}

// setID validates and sets the parcel's unique identifier.
func (p *Parcel) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

// setName validates and sets the shipment description.
func (p *Parcel) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	p.name = name
	return nil
}

// setSenderEmail validates and sets the sender's email.
func (p *Parcel) setSenderEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("senderEmail")
	}
	p.senderEmail = email
	return nil
}

// setCost validates and sets the shipping price.
// Cost must be a positive integral currency amount.
func (p *Parcel) setCost(cost int64) error {
	if cost <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("cost", fmt.Errorf("%d is not greater than 0", cost))
	}
	p.cost = cost
	return nil
}

// setCreatedAt validates and sets the creation timestamp.
func (p *Parcel) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("createdAt")
	}
	p.createdAt = createdAt
	return nil
}
