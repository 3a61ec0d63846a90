// Package guard implements the constructor-guard pattern used by domain objects
// to detect zero-value instances that bypassed their designated constructors.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when a nil validation error
// is supplied. Validation must always fail with a meaningful message.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard ensures value objects and entities are only created through
// their designated constructor functions. Embedding a guard in a struct lets
// Validate distinguish a properly constructed instance from a zero value.
//
// Example usage:
//
//	var ErrRecordNotConstructed = errors.New("Record must be created via NewRecord")
//
//	type Record struct {
//	    amount int64
//	    guard  guard.ConstructorGuard
//	}
//
//	func NewRecord(amount int64) (Record, error) {
//	    if amount <= 0 {
//	        return Record{}, errors.New("amount must be positive")
//	    }
//	    return Record{amount: amount, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (r Record) Validate() error {
//	    return r.guard.Validate(ErrRecordNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard marking the containing object as properly
// constructed. Call it from the object's constructor only.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil if the guarded object was created through its constructor,
// the supplied validationError otherwise. A nil validationError falls back to
// ErrDefaultConstructorGuard.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
