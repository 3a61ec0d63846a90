// Package parcel contains the Parcel aggregate and its delivery/payment status
// state machines. A parcel moves from pending-payment through pending-pickup
// (set by payment reconciliation) to deliver-assigned (set by rider
// assignment), which is the terminal state this core manages. Cross-field
// invariants: a tracking identifier is present if and only if the parcel is
// paid, and rider details are present if and only if a rider was assigned.
package parcel
