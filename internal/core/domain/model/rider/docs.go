// Package rider contains the Rider aggregate: a courier with an approval
// lifecycle (pending/approved/rejected) and an availability lifecycle
// (unavailable/available/in-delivery). Approval makes a rider available for
// work; assignment moves an available rider into delivery.
package rider
