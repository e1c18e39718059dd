package advanced

import "github.com/pkg/errors"

// ErrInvalidArgument is the cause of every precondition error returned by this
// package. Geometric degeneracies are never errors; they are reported through
// return values.
var ErrInvalidArgument = errors.New("invalid argument")
