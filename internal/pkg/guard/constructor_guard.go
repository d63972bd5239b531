// Package guard provides the ConstructorGuard pattern used to ensure that
// domain objects are only created through their designated constructor
// functions. Embedding a ConstructorGuard in a struct makes zero-value
// instances detectable, so validation can reject objects that bypassed
// construction.
package guard

import "errors"

// ErrDefaultConstructorGuard is the default error returned by Validate
// when a nil error is passed as the validation error.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard distinguishes properly constructed objects from zero values.
// The guard holds an internal flag that is only set by NewConstructorGuard,
// so any struct embedding it can detect direct initialization.
//
// Example usage:
//
//	type Phone struct {
//	    number string
//	    guard  guard.ConstructorGuard
//	}
//
//	func NewPhone(number string) (Phone, error) {
//	    if number == "" {
//	        return Phone{}, errors.New("number is required")
//	    }
//	    return Phone{number: number, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (p Phone) Validate() error {
//	    return p.guard.Validate(ErrPhoneIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard marking an object as properly constructed.
// Call it inside the object's constructor function.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil when the object was created through its constructor.
// For zero-value guards it returns validationError, or
// ErrDefaultConstructorGuard when validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
