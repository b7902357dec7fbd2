package proxy

import (
	"errors"
	"fmt"
	"reflect"
)

// ErrUnsupportedOperation is the error that [*UnsupportedOperationError]
// values match when tested with errors.Is.
var ErrUnsupportedOperation = errors.New("unsupported operation")

// ErrArgument is the error that [*ArgumentError] values match when tested
// with errors.Is.
var ErrArgument = errors.New("invalid argument")

// UnsupportedOperationError is returned when an operation is invoked on a
// value that neither has a method with that name nor dispatches it
// dynamically.
type UnsupportedOperationError struct {
	// Type is the dynamic type of the value the operation was invoked on.
	// It is nil if that value was nil.
	Type reflect.Type
	// Op is the name of the operation.
	Op string
}

func (e *UnsupportedOperationError) Error() string {
	if e.Type == nil {
		return fmt.Sprintf("unsupported operation %q on nil value", e.Op)
	}
	return fmt.Sprintf("unsupported operation %q on %v", e.Op, e.Type)
}

// Is returns true if target is ErrUnsupportedOperation.
func (e *UnsupportedOperationError) Is(target error) bool {
	return target == ErrUnsupportedOperation
}

// IsUnsupportedOperation determines if the given error indicates that an
// operation was invoked on a value that does not support it.
func IsUnsupportedOperation(err error) bool {
	return errors.Is(err, ErrUnsupportedOperation)
}

// ArgumentError is returned when the arguments given for an operation cannot
// be passed to the method that implements it.
type ArgumentError struct {
	Op string
	// Index of the offending argument, or -1 if the number of arguments
	// is wrong.
	Index int
	// Want describes what the method accepts: a parameter type, or an
	// argument count when Index is -1.
	Want string
	// Got describes what was given.
	Got string
}

func (e *ArgumentError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("%s: wrong number of arguments: want %s, got %s", e.Op, e.Want, e.Got)
	}
	return fmt.Sprintf("%s: argument %d: cannot use %s as %s", e.Op, e.Index, e.Got, e.Want)
}

func (e *ArgumentError) Unwrap() error {
	return ErrArgument
}
