package rider

import (
	"errors"
	"time"

	"zapshift/internal/core/domain/model/kernel"
	"zapshift/internal/pkg/errs"
	"zapshift/internal/pkg/guard"
)

// Domain errors for rider operations.
var (
	// ErrNameIsRequired is returned when attempting to create a rider without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrEmailIsRequired is returned when attempting to create a rider without an email.
	ErrEmailIsRequired = errs.NewValueIsRequiredError("email")
	// ErrDistrictIsRequired is returned when attempting to create a rider without a district.
	ErrDistrictIsRequired = errs.NewValueIsRequiredError("district")
	// ErrRiderIsNotConstructed is returned when using an improperly initialized Rider.
	ErrRiderIsNotConstructed = errors.New("Rider must be created via NewRider constructor")
)

// Rider is the aggregate root for a courier. It owns the approval status and
// the work status and enforces their coupling:
//
//   - Approve moves a pending application to approved and, as the coupled side
//     effect, makes the rider available for work.
//   - Reject closes a pending application without touching availability.
//   - StartDelivery is performed only by the assignment coordinator and
//     requires an approved, available rider.
//
// Riders register in pending/unavailable state and can only be created through
// NewRider or restored from persistence through RestoreRider.
type Rider struct {
	// id uniquely identifies the rider
	id kernel.UUID
	// name is the rider's display name
	name string
	// email links the rider to their user account
	email string
	// district is the area the rider serves
	district string
	// approvalStatus tracks the vetting decision
	approvalStatus ApprovalStatus
	// workStatus tracks availability for deliveries
	workStatus WorkStatus
	// createdAt is the registration timestamp
	createdAt time.Time
	// guard ensures the rider was properly constructed
	guard guard.ConstructorGuard
}

// NewRider registers a new Rider in pending/unavailable state.
// All parameters are required; validation errors are aggregated.
func NewRider(id kernel.UUID, name, email, district string, createdAt time.Time) (*Rider, error) {
	r := &Rider{
		approvalStatus: ApprovalPending,
		workStatus:     Unavailable,
		guard:          guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		r.setID(id),
		r.setName(name),
		r.setEmail(email),
		r.setDistrict(district),
		r.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	return r, nil
}

// RestoreRider reconstructs a Rider from persistent storage.
func RestoreRider(
	id kernel.UUID,
	name, email, district string,
	approvalStatus ApprovalStatus,
	workStatus WorkStatus,
	createdAt time.Time,
) (*Rider, error) {
	r := &Rider{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		r.setID(id),
		r.setName(name),
		r.setEmail(email),
		r.setDistrict(district),
		r.setCreatedAt(createdAt),
		approvalStatus.Validate(),
		workStatus.Validate(),
	); err != nil {
		return nil, err
	}

	r.approvalStatus = approvalStatus
	r.workStatus = workStatus
	return r, nil
}

// Validate ensures the Rider instance was properly constructed.
func (r *Rider) Validate() error {
	if r == nil {
		return ErrRiderIsNotConstructed
	}
	return r.guard.Validate(ErrRiderIsNotConstructed)
}

// IsEqual compares two riders by their unique identifiers.
func (r *Rider) IsEqual(other *Rider) bool {
	return other != nil && r.id.IsEqual(other.id)
}

// ID returns the rider's unique identifier.
func (r *Rider) ID() kernel.UUID { return r.id }

// Name returns the rider's display name.
func (r *Rider) Name() string { return r.name }

// Email returns the rider's email.
func (r *Rider) Email() string { return r.email }

// District returns the area the rider serves.
func (r *Rider) District() string { return r.district }

// ApprovalStatus returns the current vetting status.
func (r *Rider) ApprovalStatus() ApprovalStatus { return r.approvalStatus }

// WorkStatus returns the current availability status.
func (r *Rider) WorkStatus() WorkStatus { return r.workStatus }

// CreatedAt returns the registration timestamp.
func (r *Rider) CreatedAt() time.Time { return r.createdAt }

// Approve accepts a pending application and makes the rider available for
// work. The two changes are coupled: an approved rider is always immediately
// available.
func (r *Rider) Approve() error {
	newStatus, err := r.approvalStatus.Decide(Approved)
	if err != nil {
		return err
	}

	r.approvalStatus = newStatus
	r.workStatus = Available
	return nil
}

// Reject closes a pending application. Work status is left untouched: the
// rider was never available and stays that way.
func (r *Rider) Reject() error {
	newStatus, err := r.approvalStatus.Decide(Rejected)
	if err != nil {
		return err
	}

	r.approvalStatus = newStatus
	return nil
}

// StartDelivery marks the rider as carrying a parcel.
// The rider must be available, which implies an approved application.
func (r *Rider) StartDelivery() error {
	newStatus, err := r.workStatus.StartDelivery()
	if err != nil {
		return err
	}

	r.workStatus = newStatus
	return nil
}

// setID validates and sets the rider's unique identifier.
func (r *Rider) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

// setName validates and sets the rider's display name.
func (r *Rider) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	r.name = name
	return nil
}

// setEmail validates and sets the rider's email.
func (r *Rider) setEmail(email string) error {
	if email == "" {
		return ErrEmailIsRequired
	}
	r.email = email
	return nil
}

// setDistrict validates and sets the rider's district.
func (r *Rider) setDistrict(district string) error {
	if district == "" {
		return ErrDistrictIsRequired
	}
	r.district = district
	return nil
}

// setCreatedAt validates and sets the registration timestamp.
func (r *Rider) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("createdAt")
	}
	r.createdAt = createdAt
	return nil
}
