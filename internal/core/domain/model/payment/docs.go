// Package payment contains the immutable payment ledger Record. Exactly one
// record exists per external transaction identity; records are created by
// payment reconciliation and never updated or deleted.
package payment
