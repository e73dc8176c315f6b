package dispatch

import (
	"errors"
	"fmt"
)

// Errors returned by registry operations.
var (
	// ErrNoMatch indicates no registered variant matches the dynamic
	// argument types of a call.
	ErrNoMatch = errors.New("dispatch: no variant matches argument types")

	// ErrNotFunc indicates a registration with something other than a
	// function.
	ErrNotFunc = errors.New("dispatch: not a function")

	// ErrVariadic indicates a registration with a variadic function,
	// which has no fixed argument-type signature.
	ErrVariadic = errors.New("dispatch: variadic functions are not supported")

	// ErrDuplicate indicates a registration whose name and signature are
	// already taken.
	ErrDuplicate = errors.New("dispatch: variant already registered")
)

// MismatchError carries the name and dynamic signature of a failed call.
// It unwraps to ErrNoMatch.
type MismatchError struct {
	// Name is the function name that was called.
	Name string

	// Signature is the dynamic argument-type signature of the call.
	Signature string
}

// Error implements the error interface.
func (e *MismatchError) Error() string {
	return fmt.Sprintf("dispatch: function %q: no variant for signature [%s]", e.Name, e.Signature)
}

// Unwrap makes errors.Is(err, ErrNoMatch) work.
func (e *MismatchError) Unwrap() error {
	return ErrNoMatch
}
