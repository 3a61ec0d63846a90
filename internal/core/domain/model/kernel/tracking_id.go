package kernel

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"regexp"
	"strings"
	"time"

	"zapshift/internal/pkg/errs"
)

// trackingIDPrefix is the fixed prefix of every shipment tracking identifier.
const trackingIDPrefix = "ZAP"

// ErrTrackingIDIsNotConstructed indicates that a TrackingID was not initialized
// through GenerateTrackingID or TrackingIDFromString.
var ErrTrackingIDIsNotConstructed = errs.NewValueIsRequiredError("TrackingID must be created via GenerateTrackingID or TrackingIDFromString")

var trackingIDPattern = regexp.MustCompile(`^` + trackingIDPrefix + `-\d{8}-[0-9A-F]{6}$`)

// TrackingID is the human-facing shipment identifier handed to senders once a
// parcel is paid. Format: a fixed prefix, an 8-digit UTC date stamp, and a
// 6-hex-digit random suffix, e.g. "ZAP-20240521-9F3C1A".
//
// The 24-bit random suffix gives a 1-in-16M collision chance per day, which is
// accepted rather than enforced: TrackingID carries no global-uniqueness
// guarantee, and callers that need strict uniqueness must add their own check.
type TrackingID struct {
	value string
}

// GenerateTrackingID produces a new tracking identifier from the current UTC
// date and a cryptographically random 24-bit value. It holds no shared state
// and has no failure mode.
func GenerateTrackingID() TrackingID {
	var b [3]byte
	// crypto/rand.Read never returns an error on supported platforms.
	_, _ = rand.Read(b[:])

	return TrackingID{
		value: fmt.Sprintf("%s-%s-%s",
			trackingIDPrefix,
			time.Now().UTC().Format("20060102"),
			strings.ToUpper(hex.EncodeToString(b[:])),
		),
	}
}

// TrackingIDFromString parses a tracking identifier from its string form.
// Used when reconstructing parcels and payment records from persistence.
func TrackingIDFromString(s string) (TrackingID, error) {
	if !trackingIDPattern.MatchString(s) {
		return TrackingID{}, errs.NewValueIsInvalidErrorWithCause("trackingId",
			fmt.Errorf("%q does not match %s-YYYYMMDD-XXXXXX", s, trackingIDPrefix))
	}
	return TrackingID{value: s}, nil
}

// String returns the identifier in its wire form.
func (t TrackingID) String() string {
	return t.value
}

// IsEqual reports whether two tracking identifiers are the same.
func (t TrackingID) IsEqual(other TrackingID) bool {
	return t.value == other.value
}

// Validate returns ErrTrackingIDIsNotConstructed for the zero value, nil otherwise.
func (t TrackingID) Validate() error {
	if t.value == "" {
		return ErrTrackingIDIsNotConstructed
	}
	return nil
}
