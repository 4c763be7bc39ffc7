package bounded

import (
	"fmt"
	"strings"

	"golang.org/x/exp/constraints"
)

// Number is the payload constraint of Value and Bounds: any integer or
// floating-point kind, including named types built on them.
type Number interface {
	constraints.Integer | constraints.Float
}

// Bounds is an inclusive [Lower, Upper] pair.
//
// A pair with Lower > Upper is representable but contains nothing, so every
// Value constructed against it is rejected.
type Bounds[T Number] struct {
	Lower T
	Upper T
}

func NewBounds[T Number](lower, upper T) Bounds[T] {
	return Bounds[T]{Lower: lower, Upper: upper}
}

// Contains reports whether v lies inside the pair, both ends included.
//
// The test is written as the negation of the rejection rule used by New, so
// values that compare false against everything (NaN) are accepted exactly as
// New accepts them.
func (b Bounds[T]) Contains(v T) bool {
	return !(v < b.Lower || v > b.Upper)
}

// IsEmpty reports whether no value can satisfy the pair.
func (b Bounds[T]) IsEmpty() bool {
	return b.Lower > b.Upper
}

// String renders the pair as "[lower,upper]", which ParseBounds reads back.
func (b Bounds[T]) String() string {
	return fmt.Sprintf("[%v,%v]", b.Lower, b.Upper)
}

// ParseBounds parses s into a Bounds using parse for each side.
//
// Supported formats:
//   - [lower,upper]
//   - lower..upper
//
// Spaces are ignored. Both sides must be present and both are inclusive;
// '(' or ')' is rejected because exclusive ends are not representable.
//
// Examples:
//
//	ParseBounds("[0,10]", parseInt)    -> {0 10}
//	ParseBounds("-1..1", parseFloat)   -> {-1 1}
//	ParseBounds("(0,10]", parseInt)    -> error
func ParseBounds[T Number](s string, parse func(string) (T, error)) (Bounds[T], error) {
	value := strings.TrimSpace(s)
	if value == "" {
		return Bounds[T]{}, fmt.Errorf("empty range")
	}

	var left, right string
	switch {
	case value[0] == '(' || value[len(value)-1] == ')':
		return Bounds[T]{}, fmt.Errorf("exclusive bounds are not supported: %s", s)
	case len(value) >= 2 && value[0] == '[' && value[len(value)-1] == ']':
		parts := strings.SplitN(value[1:len(value)-1], ",", 2)
		if len(parts) != 2 {
			return Bounds[T]{}, fmt.Errorf("invalid interval syntax: %s", s)
		}
		left, right = parts[0], parts[1]
	case strings.Contains(value, ".."):
		parts := strings.SplitN(value, "..", 2)
		left, right = parts[0], parts[1]
	default:
		return Bounds[T]{}, fmt.Errorf("unrecognized range format: %s", s)
	}

	left = strings.TrimSpace(left)
	right = strings.TrimSpace(right)
	if left == "" || right == "" {
		return Bounds[T]{}, fmt.Errorf("unbounded side in range: %s", s)
	}

	lower, err := parse(left)
	if err != nil {
		return Bounds[T]{}, fmt.Errorf("invalid lower bound %q: %w", left, err)
	}
	upper, err := parse(right)
	if err != nil {
		return Bounds[T]{}, fmt.Errorf("invalid upper bound %q: %w", right, err)
	}

	b := NewBounds(lower, upper)
	if b.IsEmpty() {
		return Bounds[T]{}, fmt.Errorf("empty range: lower > upper in %s", s)
	}
	return b, nil
}
