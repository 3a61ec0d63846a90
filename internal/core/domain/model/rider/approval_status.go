package rider

import (
	"fmt"

	"zapshift/internal/pkg/errs"
)

// ApprovalStatus represents where a rider stands in the vetting process.
//
// State transitions:
//
//	Pending ──┬──> Approved
//	          └──> Rejected
//
// Approval and rejection are both decided by an administrator. This core does
// not re-open decided applications.
type ApprovalStatus int

const (
	// ApprovalStatusUnknown represents an invalid or undefined status.
	ApprovalStatusUnknown ApprovalStatus = iota

	// ApprovalPending is the initial status of every registered rider.
	ApprovalPending

	// Approved means the rider passed vetting and may take deliveries.
	Approved

	// Rejected means the rider failed vetting.
	Rejected
)

func getValidApprovalStatusStrings() map[ApprovalStatus]string {
	//nolint:exhaustive // ApprovalStatusUnknown is intentionally excluded as it's invalid
	return map[ApprovalStatus]string{
		ApprovalPending: "pending",
		Approved:        "approved",
		Rejected:        "rejected",
	}
}

// ApprovalStatusFromString parses the wire/persistence form of an approval status.
func ApprovalStatusFromString(s string) (ApprovalStatus, error) {
	for status, str := range getValidApprovalStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return ApprovalStatusUnknown, errs.NewValueIsInvalidErrorWithCause("approvalStatus",
		fmt.Errorf("%q is not a valid approval status", s))
}

// Validate checks that the status is one of the valid values.
func (s ApprovalStatus) Validate() error {
	if _, ok := getValidApprovalStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("approvalStatus",
			fmt.Errorf("%d is not a valid approval status", s))
	}
	return nil
}

// String returns the lowercase name used on the wire and in persistence.
func (s ApprovalStatus) String() string {
	if str, ok := getValidApprovalStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// Decide transitions a pending application to Approved or Rejected.
// Only pending applications can be decided.
func (s ApprovalStatus) Decide(decision ApprovalStatus) (ApprovalStatus, error) {
	if decision != Approved && decision != Rejected {
		return 0, errs.NewValueIsInvalidErrorWithCause("approvalStatus",
			fmt.Errorf("%s is not a valid approval decision", decision.String()))
	}
	if s != ApprovalPending {
		return 0, errs.NewValueIsInvalidErrorWithCause("approvalStatus",
			fmt.Errorf("%s is not a valid status to decide from", s.String()))
	}
	return decision, nil
}
