package advanced

import "github.com/pkg/errors"

// The kernels only fail when one of their own invariants breaks, and threading
// an error return through every scan and worker for that would bury the
// algorithms. Instead, we panic with a HullError, and the public API recovers
// to convert it to an error.

// HullError is a concrete type so that runtime errors, which also satisfy the
// error interface, are never mistaken for one.
type HullError struct {
	error
}

// Panic with a HullError.
func fatalf(format string, args ...interface{}) {
	panic(HullError{errors.Errorf(format, args...)})
}

// HandleHullPanicRecover converts a recovered HullError back into the error it
// wraps. Any other panic, including a runtime error, is re-raised.
func HandleHullPanicRecover(r interface{}) error {
	if r != nil {
		if hullError, ok := r.(HullError); ok {
			return hullError.error
		}
		panic(r)
	}
	return nil
}
