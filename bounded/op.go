//go:generate go run github.com/dmarkham/enumer -type=Op -trimprefix=Op -transform=lower
package bounded

import "fmt"

// Op names a binary arithmetic operation on Value.
type Op int

const (
	OpAdd Op = iota
	OpSub
	OpMul
	OpDiv
)

var opSymbols = [...]string{
	OpAdd: "+",
	OpSub: "-",
	OpMul: "*",
	OpDiv: "/",
}

// Symbol returns the operator as written in an expression, e.g. "+".
func (i Op) Symbol() string {
	if !i.IsAOp() {
		return i.String()
	}
	return opSymbols[i]
}

// ParseOp accepts either the symbol ("+", "-", "*", "/", "x") or the name
// ("add", "sub", "mul", "div", any case).
func ParseOp(s string) (Op, error) {
	switch s {
	case "+":
		return OpAdd, nil
	case "-":
		return OpSub, nil
	case "*", "x":
		return OpMul, nil
	case "/":
		return OpDiv, nil
	}
	op, err := OpString(s)
	if err != nil {
		return 0, fmt.Errorf("unknown operation %q", s)
	}
	return op, nil
}
