package rider

import (
	"fmt"

	"zapshift/internal/pkg/errs"
)

// WorkStatus represents a rider's availability for deliveries.
//
// State transitions:
//
//	Unavailable ──> Available ──> InDelivery
//	  (approval)     (assignment)
//
// Unavailable is the initial state; approval makes a rider available, and the
// assignment coordinator moves an available rider into delivery.
type WorkStatus int

const (
	// WorkStatusUnknown represents an invalid or undefined status.
	WorkStatusUnknown WorkStatus = iota

	// Unavailable means the rider cannot take deliveries (not yet approved,
	// or off shift).
	Unavailable

	// Available means the rider is approved and free for assignment.
	Available

	// InDelivery means the rider is currently carrying a parcel.
	InDelivery
)

func getValidWorkStatusStrings() map[WorkStatus]string {
	//nolint:exhaustive // WorkStatusUnknown is intentionally excluded as it's invalid
	return map[WorkStatus]string{
		Unavailable: "unavailable",
		Available:   "available",
		InDelivery:  "in-delivery",
	}
}

// WorkStatusFromString parses the wire/persistence form of a work status.
func WorkStatusFromString(s string) (WorkStatus, error) {
	for status, str := range getValidWorkStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return WorkStatusUnknown, errs.NewValueIsInvalidErrorWithCause("workStatus",
		fmt.Errorf("%q is not a valid work status", s))
}

// Validate checks that the status is one of the valid values.
func (s WorkStatus) Validate() error {
	if _, ok := getValidWorkStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("workStatus",
			fmt.Errorf("%d is not a valid work status", s))
	}
	return nil
}

// String returns the kebab-case name used on the wire and in persistence.
func (s WorkStatus) String() string {
	if str, ok := getValidWorkStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// StartDelivery transitions the status to InDelivery.
// Only available riders can start a delivery.
func (s WorkStatus) StartDelivery() (WorkStatus, error) {
	if s != Available {
		return 0, errs.NewValueIsInvalidErrorWithCause("workStatus",
			fmt.Errorf("%s is not a valid status to start a delivery", s.String()))
	}
	return InDelivery, nil
}
