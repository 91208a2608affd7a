// Package guard provides a defensive programming primitive that ensures value
// objects, entities, commands, and queries are only created through their
// designated constructor functions.
package guard

import "errors"

// ErrDefaultConstructorGuard is the default error returned by ConstructorGuard.Validate()
// when a nil error is passed as the validation error. This ensures that validation
// always fails with a meaningful message even if no specific error is provided.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard detects whether a struct was properly initialized through its
// constructor or created as a zero value. Embedding it in a domain object and
// calling Validate before operations keeps invariants intact.
//
// The guard works by maintaining an internal flag that is only set to true when
// the object is created through the proper constructor function. Any attempt to
// use a zero-value struct will fail validation.
//
// Example usage:
//
//	var ErrWeightNotConstructed = errors.New("Weight must be created via NewWeight")
//
//	type Weight struct {
//	    grams int64
//	    guard guard.ConstructorGuard
//	}
//
//	func NewWeight(grams int64) (Weight, error) {
//	    if grams < 0 {
//	        return Weight{}, errors.New("grams cannot be negative")
//	    }
//	    return Weight{
//	        grams: grams,
//	        guard: guard.NewConstructorGuard(),
//	    }, nil
//	}
//
//	func (w Weight) Validate() error {
//	    return w.guard.Validate(ErrWeightNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a ConstructorGuard that marks an object as
// properly constructed. Call it in the constructor of domain objects so they
// can be distinguished from zero-value instances.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate checks whether the guarded object was properly constructed through
// its designated constructor function.
//
// If the object was created as a zero value, this method returns the provided
// validation error. If validationError is nil, ErrDefaultConstructorGuard is
// returned instead.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
