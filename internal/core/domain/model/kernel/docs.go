// Package kernel contains shared value objects used across the domain model:
// entity identifiers (UUID) and human-facing shipment tracking identifiers
// (TrackingID). Value objects in this package are immutable and validated
// at construction.
package kernel
