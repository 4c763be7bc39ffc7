package bounded

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_InsideBounds(t *testing.T) {
	cases := []struct {
		name  string
		v     int
		lower int
		upper int
	}{
		{"middle", 5, 0, 10},
		{"lower_edge", 0, 0, 10},
		{"upper_edge", 10, 0, 10},
		{"single_point", 7, 7, 7},
		{"negative", -3, -5, -1},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := New(tc.v, tc.lower, tc.upper)
			require.NoError(t, err)
			assert.Equal(t, tc.v, got.Raw())
			lower, upper := got.Bounds()
			assert.Equal(t, tc.lower, lower)
			assert.Equal(t, tc.upper, upper)
		})
	}
}

func TestNew_OutsideBounds(t *testing.T) {
	cases := []struct {
		name  string
		v     int
		lower int
		upper int
		msg   string
	}{
		{"below", -1, 0, 10, "-1 is not in the range 0..10"},
		{"above", 11, 0, 10, "11 is not in the range 0..10"},
		{"inverted_bounds", 5, 10, 0, "5 is not in the range 10..0"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := New(tc.v, tc.lower, tc.upper)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrOutOfRange)
			assert.NotErrorIs(t, err, ErrRangeMismatch)
			assert.EqualError(t, err, tc.msg)
			assert.Equal(t, Value[int]{}, got)

			var rangeErr *Error
			require.True(t, errors.As(err, &rangeErr))
			assert.Equal(t, fmt.Sprint(tc.v), rangeErr.Value)
			assert.Equal(t, fmt.Sprint(tc.lower), rangeErr.Lower)
			assert.Equal(t, fmt.Sprint(tc.upper), rangeErr.Upper)
		})
	}
}

func TestNew_Float(t *testing.T) {
	v, err := New(1.0, 0.0, 10.0)
	require.NoError(t, err)
	assert.Equal(t, 1.0, v.Raw())

	_, err = New(10.5, 0.0, 10.0)
	assert.EqualError(t, err, "10.5 is not in the range 0..10")
}

func TestNew_NaNPassesContainment(t *testing.T) {
	// NaN compares false against both bounds, so it is not rejected.
	v, err := New(math.NaN(), 0, 1)
	require.NoError(t, err)
	assert.True(t, math.IsNaN(v.Raw()))
}

func TestMustNew(t *testing.T) {
	assert.Equal(t, 3, MustNew(3, 0, 5).Raw())

	assert.PanicsWithError(t, "6 is not in the range 0..5", func() {
		MustNew(6, 0, 5)
	})
}

func TestMust(t *testing.T) {
	a := MustNew(1, 0, 1)
	b := MustNew(0, 0, 1)
	assert.Equal(t, 1, Must(a.Add(b)).Raw())

	assert.Panics(t, func() {
		Must(a.Add(a))
	})
}

func TestFromBounds(t *testing.T) {
	b := NewBounds(0, 100)
	v, err := FromBounds(42, b)
	require.NoError(t, err)
	assert.Equal(t, b, v.Range())

	_, err = FromBounds(101, b)
	assert.ErrorIs(t, err, ErrOutOfRange)
}

func TestWithBounds(t *testing.T) {
	v := MustNew(3, 0, 10)

	same, err := v.WithBounds(0, 10)
	require.NoError(t, err)
	assert.True(t, same.Equal(v))

	narrow, err := v.WithBounds(2, 4)
	require.NoError(t, err)
	assert.Equal(t, 3, narrow.Raw())
	lower, upper := narrow.Bounds()
	assert.Equal(t, 2, lower)
	assert.Equal(t, 4, upper)

	_, err = v.WithBounds(4, 10)
	assert.EqualError(t, err, "3 is not in the range 4..10")

	wide, err := v.WithRange(NewBounds(-100, 100))
	require.NoError(t, err)
	assert.Equal(t, NewBounds(-100, 100), wide.Range())
}

func TestWithBounds_RoundTrip(t *testing.T) {
	orig := MustNew(2.5, 0.0, 5.0)
	back := Must(Must(orig.WithBounds(2.0, 3.0)).WithBounds(0.0, 5.0))
	assert.True(t, back.Equal(orig))
	assert.Equal(t, orig, back)
}

func TestNeg(t *testing.T) {
	got, err := MustNew(1, -1, 1).Neg()
	require.NoError(t, err)
	assert.Equal(t, -1, got.Raw())
	assert.Equal(t, NewBounds(-1, 1), got.Range())

	// The bounds are kept as they are, not mirrored.
	_, err = MustNew(1, 0, 1).Neg()
	assert.ErrorIs(t, err, ErrOutOfRange)
	assert.EqualError(t, err, "-1 is not in the range 0..1")

	zero, err := MustNew(0, 0, 1).Neg()
	require.NoError(t, err)
	assert.Equal(t, 0, zero.Raw())
}

func TestArithmetic(t *testing.T) {
	cases := []struct {
		name string
		op   Op
		a    int
		b    int
		want int
		ok   bool
	}{
		{"add_within", OpAdd, 1, 0, 1, true},
		{"add_overflow_bounds", OpAdd, 1, 1, 0, false},
		{"sub_within", OpSub, 1, 1, 0, true},
		{"sub_below", OpSub, 0, 1, 0, false},
		{"mul_within", OpMul, 1, 1, 1, true},
		{"mul_zero", OpMul, 1, 0, 0, true},
		{"div_within", OpDiv, 1, 1, 1, true},
		{"div_truncates", OpDiv, 0, 1, 0, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			a := MustNew(tc.a, 0, 1)
			b := MustNew(tc.b, 0, 1)
			got, err := a.Apply(tc.op, b)
			if !tc.ok {
				assert.ErrorIs(t, err, ErrOutOfRange)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got.Raw())
			assert.Equal(t, NewBounds(0, 1), got.Range())
		})
	}
}

func TestArithmetic_Methods(t *testing.T) {
	a := MustNew(6.0, -10.0, 10.0)
	b := MustNew(3.0, -10.0, 10.0)

	sum, err := a.Add(b)
	require.NoError(t, err)
	assert.Equal(t, 9.0, sum.Raw())

	diff, err := b.Sub(a)
	require.NoError(t, err)
	assert.Equal(t, -3.0, diff.Raw())

	_, err = a.Mul(b)
	assert.EqualError(t, err, "18 is not in the range -10..10")

	quot, err := a.Div(b)
	require.NoError(t, err)
	assert.Equal(t, 2.0, quot.Raw())
}

func TestArithmetic_MismatchedBounds(t *testing.T) {
	a := MustNew(1, 0, 1)
	b := MustNew(1, 0, 2)

	for _, op := range OpValues() {
		t.Run(op.String(), func(t *testing.T) {
			_, err := a.Apply(op, b)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrRangeMismatch)
			assert.NotErrorIs(t, err, ErrOutOfRange)
			assert.EqualError(t, err, "ranges are unequal: 0..1 and 0..2")
		})
	}
}

func TestArithmetic_MismatchCheckedFirst(t *testing.T) {
	// 0/0 would panic for ints; the mismatch must be reported before the
	// division is attempted.
	a := MustNew(0, 0, 1)
	b := MustNew(0, 0, 2)
	assert.NotPanics(t, func() {
		_, err := a.Div(b)
		assert.ErrorIs(t, err, ErrRangeMismatch)
	})
}

func TestArithmetic_NativeSemantics(t *testing.T) {
	// Integer wrap-around happens before the containment check.
	a := MustNew[int8](127, math.MinInt8, math.MaxInt8)
	b := MustNew[int8](1, math.MinInt8, math.MaxInt8)
	got, err := a.Add(b)
	require.NoError(t, err)
	assert.Equal(t, int8(-128), got.Raw())

	// Integer division by zero panics as it does for int.
	zero := MustNew(0, 0, 10)
	ten := MustNew(10, 0, 10)
	assert.Panics(t, func() {
		_, _ = ten.Div(zero)
	})

	// Float division by zero yields +Inf, which is then out of range.
	fzero := MustNew(0.0, 0.0, 10.0)
	fone := MustNew(1.0, 0.0, 10.0)
	_, err = fone.Div(fzero)
	assert.EqualError(t, err, "+Inf is not in the range 0..10")
}

func TestApply_UnknownOp(t *testing.T) {
	a := MustNew(1, 0, 1)
	_, err := a.Apply(Op(42), a)
	assert.EqualError(t, err, "unsupported operation: Op(42)")
}

func TestEqual(t *testing.T) {
	assert.True(t, MustNew(1, 0, 1).Equal(MustNew(1, 0, 1)))
	assert.False(t, MustNew(1, 0, 1).Equal(MustNew(1, 0, 3)))
	assert.False(t, MustNew(1, 0, 3).Equal(MustNew(1, -1, 3)))
	assert.False(t, MustNew(0, 0, 1).Equal(MustNew(1, 0, 1)))
	assert.True(t, MustNew(1, 0, 1) == MustNew(1, 0, 1))
}

func TestOrdering_IgnoresBounds(t *testing.T) {
	a := MustNew(1, 0, 3)
	b := MustNew(2, 1, 4)
	assert.True(t, a.Less(b))
	assert.False(t, b.Less(a))
	assert.Equal(t, -1, a.Compare(b))
	assert.Equal(t, 1, b.Compare(a))

	// Equal payloads compare as equal even though the values are not Equal.
	c := MustNew(1, 0, 1)
	d := MustNew(1, 0, 3)
	assert.Equal(t, 0, c.Compare(d))
	assert.False(t, c.Less(d))
	assert.False(t, c.Equal(d))
}

func TestFormatting(t *testing.T) {
	i := MustNew(42, 0, 100)
	f := MustNew(2.5, 0.0, 10.0)

	assert.Equal(t, "42", i.String())
	assert.Equal(t, "2.5", f.String())
	assert.Equal(t, "42", i.GoString())
	assert.Equal(t, "2.5", f.GoString())

	assert.Equal(t, "42", fmt.Sprint(i))
	assert.Equal(t, "42", fmt.Sprintf("%v", i))
	assert.Equal(t, "42", fmt.Sprintf("%d", i))
	assert.Equal(t, "   42", fmt.Sprintf("%5d", i))
	assert.Equal(t, "2a", fmt.Sprintf("%x", i))
	assert.Equal(t, "2.50", fmt.Sprintf("%.2f", f))
	assert.Equal(t, "42", fmt.Sprintf("%#v", i))
	assert.Equal(t, "42", fmt.Sprintf("%s", i))
	assert.Equal(t, "2.5", fmt.Sprintf("%s", f))
	assert.Equal(t, "  42", fmt.Sprintf("%4s", i))
	assert.Equal(t, `"42"`, fmt.Sprintf("%q", i))
	assert.Equal(t, `"2.5"`, fmt.Sprintf("%q", f))
	assert.Equal(t, "[42 2]", fmt.Sprint([]Value[int]{i, MustNew(2, 0, 100)}))
}

type celsius float64

func TestNamedPayloadType(t *testing.T) {
	freezing := MustNew[celsius](0, -273.15, 1000)
	delta := MustNew[celsius](21.5, -273.15, 1000)
	room, err := freezing.Add(delta)
	require.NoError(t, err)
	assert.Equal(t, celsius(21.5), room.Raw())
}
