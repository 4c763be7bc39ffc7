package bounded

import (
	"errors"
	"fmt"
)

// Kinds of range violation. Every *Error unwraps to one of them, so callers
// test with errors.Is.
var (
	ErrOutOfRange    = errors.New("value out of range")
	ErrRangeMismatch = errors.New("ranges are unequal")
)

// Error is the single error type of the package.
//
// Numbers are kept in their display form so the type carries no type
// parameter and can be matched with errors.As regardless of T.
type Error struct {
	Kind  error
	Value string
	Lower string
	Upper string
	// Set only for ErrRangeMismatch: the bounds of the right-hand operand.
	OtherLower string
	OtherUpper string
}

func (e *Error) Error() string {
	if e.Kind == ErrRangeMismatch {
		return fmt.Sprintf("ranges are unequal: %s..%s and %s..%s",
			e.Lower, e.Upper, e.OtherLower, e.OtherUpper)
	}
	return fmt.Sprintf("%s is not in the range %s..%s", e.Value, e.Lower, e.Upper)
}

func (e *Error) Unwrap() error {
	return e.Kind
}

func outOfRange[T Number](value, lower, upper T) *Error {
	return &Error{
		Kind:  ErrOutOfRange,
		Value: fmt.Sprint(value),
		Lower: fmt.Sprint(lower),
		Upper: fmt.Sprint(upper),
	}
}

func rangeMismatch[T Number](a, b Bounds[T]) *Error {
	return &Error{
		Kind:       ErrRangeMismatch,
		Lower:      fmt.Sprint(a.Lower),
		Upper:      fmt.Sprint(a.Upper),
		OtherLower: fmt.Sprint(b.Lower),
		OtherUpper: fmt.Sprint(b.Upper),
	}
}
