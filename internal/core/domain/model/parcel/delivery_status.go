package parcel

import (
	"fmt"

	"zapshift/internal/pkg/errs"
)

// DeliveryStatus represents the lifecycle state of a parcel shipment.
// It implements a state machine with defined transitions so parcels follow
// the correct business workflow.
//
// State transitions:
//
//	PendingPayment ──> PendingPickup ──> DeliverAssigned
//	  (payment            (rider
//	   reconciled)         assigned)
//
// DeliverAssigned is the terminal state managed by this core; final
// delivered/cancelled states belong to operational tooling outside it.
type DeliveryStatus int

const (
	// DeliveryStatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized DeliveryStatus values.
	DeliveryStatusUnknown DeliveryStatus = iota

	// PendingPayment is the initial status of a freshly created parcel.
	// The sender has not completed checkout yet.
	PendingPayment

	// PendingPickup indicates the parcel is paid and waiting for a rider.
	// Set exclusively by payment reconciliation.
	PendingPickup

	// DeliverAssigned indicates a rider has been bound to the parcel.
	// Set exclusively by rider assignment.
	DeliverAssigned
)

func getDeliveryStatusStrings() map[DeliveryStatus]string {
	return map[DeliveryStatus]string{
		DeliveryStatusUnknown: "unknown",
		PendingPayment:        "pending-payment",
		PendingPickup:         "pending-pickup",
		DeliverAssigned:       "deliver-assigned",
	}
}

func getValidDeliveryStatusStrings() map[DeliveryStatus]string {
	//nolint:exhaustive // DeliveryStatusUnknown is intentionally excluded as it's invalid
	return map[DeliveryStatus]string{
		PendingPayment:  "pending-payment",
		PendingPickup:   "pending-pickup",
		DeliverAssigned: "deliver-assigned",
	}
}

// DeliveryStatusFromString parses the wire/persistence form of a status.
// Returns an error for anything outside the valid set.
func DeliveryStatusFromString(s string) (DeliveryStatus, error) {
	for status, str := range getValidDeliveryStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return DeliveryStatusUnknown, errs.NewValueIsInvalidErrorWithCause("deliveryStatus",
		fmt.Errorf("%q is not a valid delivery status", s))
}

// Validate checks that the status is one of the valid values.
func (s DeliveryStatus) Validate() error {
	if _, ok := getValidDeliveryStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("deliveryStatus",
			fmt.Errorf("%d is not a valid delivery status", s))
	}
	return nil
}

// String returns the kebab-case name used on the wire and in persistence.
// Implements fmt.Stringer and is safe on any value.
func (s DeliveryStatus) String() string {
	if str, ok := getDeliveryStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// MarkPaid transitions the status to PendingPickup.
//
// Valid transitions:
//   - PendingPayment -> PendingPickup
//
// Any other source status is rejected: a parcel cannot be paid twice, and an
// assigned parcel cannot fall back to waiting for pickup.
func (s DeliveryStatus) MarkPaid() (DeliveryStatus, error) {
	if s != PendingPayment {
		return 0, errs.NewValueIsInvalidErrorWithCause("deliveryStatus",
			fmt.Errorf("%s is not a valid status to mark paid", s.String()))
	}
	return PendingPickup, nil
}

// ValidateAssign checks whether a rider may be bound from the current status
// without performing the transition. Only paid parcels waiting for pickup are
// assignable; in particular, assignment to an unpaid parcel is rejected.
func (s DeliveryStatus) ValidateAssign() error {
	if s != PendingPickup {
		return errs.NewValueIsInvalidErrorWithCause("deliveryStatus",
			fmt.Errorf("%s is not a valid status to assign a rider", s.String()))
	}
	return nil
}

// Assign transitions the status to DeliverAssigned.
//
// Valid transitions:
//   - PendingPickup -> DeliverAssigned
func (s DeliveryStatus) Assign() (DeliveryStatus, error) {
	if err := s.ValidateAssign(); err != nil {
		return 0, err
	}
	return DeliverAssigned, nil
}

// ValidateCanHaveRider validates consistency between the status and the
// presence of an assigned rider.
//
// Business rules:
//   - PendingPayment and PendingPickup parcels must not carry a rider
//   - DeliverAssigned parcels must carry a rider
func (s DeliveryStatus) ValidateCanHaveRider(rider bool) error {
	if rider && s != DeliverAssigned {
		return errs.NewValueIsInvalidErrorWithCause("deliveryStatus",
			fmt.Errorf("%s is not a valid status to have a rider", s.String()))
	}

	if !rider && s == DeliverAssigned {
		return errs.NewValueIsInvalidErrorWithCause("deliveryStatus",
			fmt.Errorf("%s is not a valid status to have no rider", s.String()))
	}

	return nil
}
