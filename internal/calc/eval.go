package calc

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pingcap/errors"

	"github.com/vipcxj/rangetype/bounded"
	"github.com/vipcxj/rangetype/internal/log"
)

// negToken negates the running result in an eval expression.
const negToken = "neg"

// calculator runs the subcommands for one payload type. Inputs and outputs
// are text so the cobra layer never sees T.
type calculator interface {
	Eval(bounds string, tokens []string) (string, error)
	Check(bounds string, values []string) ([]string, error)
	Rerange(from, to, value string) (string, error)
}

type typed[T bounded.Number] struct {
	parse func(string) (T, error)
}

func newCalculator(t NumType) (calculator, error) {
	switch t {
	case NumTypeInt:
		return typed[int]{parse: strconv.Atoi}, nil
	case NumTypeInt64:
		return typed[int64]{parse: parseInt64}, nil
	case NumTypeUint:
		return typed[uint]{parse: parseUint}, nil
	case NumTypeFloat64:
		return typed[float64]{parse: parseFloat64}, nil
	default:
		return nil, errors.Errorf("unsupported number type: %v", t)
	}
}

func parseInt64(s string) (int64, error) {
	return strconv.ParseInt(s, 10, 64)
}

func parseUint(s string) (uint, error) {
	n, err := strconv.ParseUint(s, 10, strconv.IntSize)
	return uint(n), err
}

func parseFloat64(s string) (float64, error) {
	return strconv.ParseFloat(s, 64)
}

func (c typed[T]) bounds(s string) (bounded.Bounds[T], error) {
	b, err := bounded.ParseBounds(s, c.parse)
	if err != nil {
		return b, errors.Annotatef(err, "invalid range %q", s)
	}
	return b, nil
}

func (c typed[T]) operand(b bounded.Bounds[T], s string) (bounded.Value[T], error) {
	n, err := c.parse(strings.TrimSpace(s))
	if err != nil {
		return bounded.Value[T]{}, errors.Annotatef(err, "invalid value %q", s)
	}
	v, err := bounded.FromBounds(n, b)
	if err != nil {
		return v, errors.Trace(err)
	}
	return v, nil
}

// Eval folds "<value> [<op> <value> | neg]..." from left to right. Every
// operand is constructed with the same bounds, so a failure is always either
// an operand outside them or an intermediate result leaving them.
func (c typed[T]) Eval(bounds string, tokens []string) (string, error) {
	if len(tokens) == 0 {
		return "", errors.New("no operand given")
	}
	b, err := c.bounds(bounds)
	if err != nil {
		return "", err
	}
	acc, err := c.operand(b, tokens[0])
	if err != nil {
		return "", err
	}
	log.Debug().Stringer("bounds", b).Stringer("value", acc).Msg("start")

	for i := 1; i < len(tokens); i++ {
		tok := tokens[i]
		if tok == negToken {
			next, err := acc.Neg()
			if err != nil {
				return "", errors.Annotatef(err, "neg %v", acc)
			}
			log.Debug().Str("op", negToken).Stringer("result", next).Msg("step")
			acc = next
			continue
		}

		op, err := bounded.ParseOp(tok)
		if err != nil {
			return "", errors.Trace(err)
		}
		if i+1 >= len(tokens) {
			return "", errors.Errorf("missing operand after %q", tok)
		}
		i++
		rhs, err := c.operand(b, tokens[i])
		if err != nil {
			return "", err
		}
		if op == bounded.OpDiv && rhs.Raw() == 0 && isInteger[T]() {
			return "", errors.Errorf("%v / %v: integer division by zero", acc, rhs)
		}
		next, err := acc.Apply(op, rhs)
		if err != nil {
			return "", errors.Annotatef(err, "%v %s %v", acc, op.Symbol(), rhs)
		}
		log.Debug().Str("op", op.String()).Stringer("rhs", rhs).Stringer("result", next).Msg("step")
		acc = next
	}
	return acc.String(), nil
}

// Check validates every value against bounds and returns them in display
// form. It stops at the first value that is rejected.
func (c typed[T]) Check(bounds string, values []string) ([]string, error) {
	if len(values) == 0 {
		return nil, errors.New("no value given")
	}
	b, err := c.bounds(bounds)
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, len(values))
	for _, s := range values {
		v, err := c.operand(b, s)
		if err != nil {
			return nil, err
		}
		out = append(out, v.String())
	}
	log.Debug().Stringer("bounds", b).Int("count", len(out)).Msg("checked")
	return out, nil
}

// Rerange builds value in from and moves it into to.
func (c typed[T]) Rerange(from, to, value string) (string, error) {
	src, err := c.bounds(from)
	if err != nil {
		return "", err
	}
	dst, err := c.bounds(to)
	if err != nil {
		return "", err
	}
	v, err := c.operand(src, value)
	if err != nil {
		return "", err
	}
	moved, err := v.WithRange(dst)
	if err != nil {
		return "", errors.Annotatef(err, "rerange %s to %s", src, dst)
	}
	log.Debug().Stringer("from", src).Stringer("to", dst).Stringer("value", moved).Msg("reranged")
	return moved.String(), nil
}

// isInteger reports whether T truncates division, i.e. whether dividing by
// zero panics instead of yielding Inf or NaN.
func isInteger[T bounded.Number]() bool {
	var one T = 1
	return one/2 == 0
}

func describeTypes() string {
	return fmt.Sprintf("Number type of operands, one of %v", NumTypeStrings())
}
