package internal

import "github.com/pkg/errors"

// Threading errors up and down the sweep handlers and the DCEL surgery would
// add a ton of complexity to the code. Instead, we use panics, and the public
// API recovers to convert to an error.

type TriangulateError error

// Panic with a TriangulateError.
func fatalf(format string, args ...interface{}) {
	panic(errors.Errorf(format, args...))
}

func HandlePanicRecover(r interface{}) error {
	if r != nil {
		if triangulateError, ok := r.(TriangulateError); ok {
			return triangulateError
		}
		panic(r)
	}
	return nil
}
