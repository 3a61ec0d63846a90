package parcel

import (
	"fmt"

	"zapshift/internal/pkg/errs"
)

// PaymentStatus represents whether a parcel's shipping cost has been settled.
// The only transition is Unpaid -> Paid, performed by payment reconciliation.
type PaymentStatus int

const (
	// PaymentStatusUnknown represents an invalid or undefined status.
	PaymentStatusUnknown PaymentStatus = iota

	// Unpaid is the initial payment status of every parcel.
	Unpaid

	// Paid indicates the external checkout session settled successfully.
	Paid
)

func getValidPaymentStatusStrings() map[PaymentStatus]string {
	//nolint:exhaustive // PaymentStatusUnknown is intentionally excluded as it's invalid
	return map[PaymentStatus]string{
		Unpaid: "unpaid",
		Paid:   "paid",
	}
}

// PaymentStatusFromString parses the wire/persistence form of a payment status.
func PaymentStatusFromString(s string) (PaymentStatus, error) {
	for status, str := range getValidPaymentStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return PaymentStatusUnknown, errs.NewValueIsInvalidErrorWithCause("paymentStatus",
		fmt.Errorf("%q is not a valid payment status", s))
}

// Validate checks that the status is one of the valid values.
func (s PaymentStatus) Validate() error {
	if _, ok := getValidPaymentStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("paymentStatus",
			fmt.Errorf("%d is not a valid payment status", s))
	}
	return nil
}

// String returns the lowercase name used on the wire and in persistence.
func (s PaymentStatus) String() string {
	if str, ok := getValidPaymentStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// MarkPaid transitions the status to Paid. Only Unpaid parcels may be paid;
// reconciliation idempotency is enforced upstream by the payment ledger, so a
// second transition attempt signals a logic error.
func (s PaymentStatus) MarkPaid() (PaymentStatus, error) {
	if s != Unpaid {
		return 0, errs.NewValueIsInvalidErrorWithCause("paymentStatus",
			fmt.Errorf("%s is not a valid status to mark paid", s.String()))
	}
	return Paid, nil
}
