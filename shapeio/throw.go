package shapeio

import (
	"github.com/osuushi/planar/advanced"
	"github.com/pkg/errors"
)

// Threading errors through the recursive element walks would add an error
// check to every handler. Instead, the walks panic with a LoadError, and the
// public entry points recover it into an ordinary error.

type LoadError struct {
	Err error
}

func (e LoadError) Error() string {
	return e.Err.Error()
}

// Cause lets errors.Cause see through to the underlying sentinel.
func (e LoadError) Cause() error {
	return e.Err
}

// Panic with a LoadError wrapping advanced.ErrInvalidArgument.
func fatalf(format string, args ...interface{}) {
	panic(LoadError{errors.Wrapf(advanced.ErrInvalidArgument, format, args...)})
}

// HandleLoadPanicRecover converts a recovered LoadError back into an error.
// Any other panic is re-raised.
func HandleLoadPanicRecover(r interface{}) error {
	if r != nil {
		if loadError, ok := r.(LoadError); ok {
			return loadError
		}
		panic(r)
	}
	return nil
}
