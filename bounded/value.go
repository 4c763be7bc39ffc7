// Package bounded provides Value, a numeric payload that carries the
// inclusive bounds it must stay within.
//
// The bounds are enforced on construction and after every operation. Nothing
// is ever clamped or saturated: an operation either yields a Value inside the
// bounds or reports a range violation.
//
// Two relations are defined on Value and they are deliberately independent:
// Equal compares the payload and both bounds, while Compare and Less look at
// the payload only. Values with equal payloads and different bounds are
// therefore ordered as equal but are not Equal.
//
// Overflow, precision loss, NaN and division by zero behave exactly as they do
// for T; the only check added on top is containment in the bounds.
package bounded

import (
	"cmp"
	"fmt"
)

// Value is a T that lies within [lower, upper]. The zero Value is 0 in [0,0].
//
// A Value is never modified after construction; every method returns a new
// one, so it is safe to share between goroutines whenever T is.
type Value[T Number] struct {
	value T
	lower T
	upper T
}

// New returns value bounded by [lower, upper], or an *Error of kind
// ErrOutOfRange when value < lower or value > upper.
func New[T Number](value, lower, upper T) (Value[T], error) {
	if value < lower || value > upper {
		return Value[T]{}, outOfRange(value, lower, upper)
	}
	return Value[T]{value: value, lower: lower, upper: upper}, nil
}

// FromBounds is New with the bounds given as a pair.
func FromBounds[T Number](value T, b Bounds[T]) (Value[T], error) {
	return New(value, b.Lower, b.Upper)
}

// MustNew is like New but panics with the *Error. It is meant for
// package-level values built from constants, where a violation is a
// programming error that should stop the program at initialisation:
//
//	var percent = bounded.MustNew(50, 0, 100)
func MustNew[T Number](value, lower, upper T) Value[T] {
	return Must(New(value, lower, upper))
}

// Must panics if err is not nil and returns v otherwise.
//
//	sum := bounded.Must(a.Add(b))
func Must[T Number](v Value[T], err error) Value[T] {
	if err != nil {
		panic(err)
	}
	return v
}

// Raw returns the payload.
func (v Value[T]) Raw() T {
	return v.value
}

// Bounds returns the lower and upper bound.
func (v Value[T]) Bounds() (lower, upper T) {
	return v.lower, v.upper
}

// Range returns the bounds as a pair.
func (v Value[T]) Range() Bounds[T] {
	return NewBounds(v.lower, v.upper)
}

// WithBounds re-validates the payload against [lower, upper] and returns it
// with the new bounds.
func (v Value[T]) WithBounds(lower, upper T) (Value[T], error) {
	return New(v.value, lower, upper)
}

// WithRange is WithBounds with the bounds given as a pair.
func (v Value[T]) WithRange(b Bounds[T]) (Value[T], error) {
	return New(v.value, b.Lower, b.Upper)
}

// Neg returns -v checked against the same bounds as v. The bounds are not
// mirrored: 1 in [0,1] cannot be negated, 1 in [-1,1] can.
func (v Value[T]) Neg() (Value[T], error) {
	return New(-v.value, v.lower, v.upper)
}

// Add returns v+other. Both must carry the same bounds.
func (v Value[T]) Add(other Value[T]) (Value[T], error) {
	return v.binary(other, func(a, b T) T { return a + b })
}

// Sub returns v-other. Both must carry the same bounds.
func (v Value[T]) Sub(other Value[T]) (Value[T], error) {
	return v.binary(other, func(a, b T) T { return a - b })
}

// Mul returns v*other. Both must carry the same bounds.
func (v Value[T]) Mul(other Value[T]) (Value[T], error) {
	return v.binary(other, func(a, b T) T { return a * b })
}

// Div divides with T's own semantics: integer division truncates and panics
// on a zero divisor, float division yields Inf or NaN.
func (v Value[T]) Div(other Value[T]) (Value[T], error) {
	return v.binary(other, func(a, b T) T { return a / b })
}

// Apply runs the arithmetic operation named by op.
func (v Value[T]) Apply(op Op, other Value[T]) (Value[T], error) {
	switch op {
	case OpAdd:
		return v.Add(other)
	case OpSub:
		return v.Sub(other)
	case OpMul:
		return v.Mul(other)
	case OpDiv:
		return v.Div(other)
	default:
		return Value[T]{}, fmt.Errorf("unsupported operation: %v", op)
	}
}

// binary requires identical bounds on both operands before computing fn, then
// checks the result against those shared bounds.
func (v Value[T]) binary(other Value[T], fn func(a, b T) T) (Value[T], error) {
	if v.lower != other.lower || v.upper != other.upper {
		return Value[T]{}, rangeMismatch(v.Range(), other.Range())
	}
	return New(fn(v.value, other.value), v.lower, v.upper)
}

// Compare orders by payload only and returns -1, 0 or +1 as cmp.Compare does.
// Bounds take no part in it.
func (v Value[T]) Compare(other Value[T]) int {
	return cmp.Compare(v.value, other.value)
}

// Less reports whether v's payload is less than other's. Bounds are ignored.
func (v Value[T]) Less(other Value[T]) bool {
	return cmp.Less(v.value, other.value)
}

// Equal reports whether payload and both bounds are identical.
// It is not derived from Compare.
func (v Value[T]) Equal(other Value[T]) bool {
	return v.value == other.value && v.lower == other.lower && v.upper == other.upper
}

// String renders the payload only.
func (v Value[T]) String() string {
	return fmt.Sprint(v.value)
}

// GoString renders the payload in Go syntax, the debug form used by %#v.
func (v Value[T]) GoString() string {
	return fmt.Sprintf("%#v", v.value)
}

// Format hands numeric verbs and their flags to the payload, so "%.2f" or
// "%5d" format a Value the way they format a T. %s and %q format String().
// Bounds are never printed.
func (v Value[T]) Format(f fmt.State, verb rune) {
	switch verb {
	case 's', 'q':
		fmt.Fprintf(f, fmt.FormatString(f, verb), v.String())
	default:
		fmt.Fprintf(f, fmt.FormatString(f, verb), v.value)
	}
}
