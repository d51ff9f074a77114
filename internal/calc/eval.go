package calc

import (
	"fmt"

	"bigint/bignum"
)

// Value is an evaluation result: an integer, or a boolean when the
// expression's top level is a comparison.
type Value struct {
	IsBool bool
	Bool   bool
	Num    bignum.BigInt
}

func numValue(n bignum.BigInt) Value { return Value{Num: n} }
func boolValue(b bool) Value         { return Value{IsBool: true, Bool: b} }

func (v Value) String() string {
	if v.IsBool {
		if v.Bool {
			return "true"
		}
		return "false"
	}
	return v.Num.String()
}

// Kind names the value's type for diagnostics and structured output.
func (v Value) Kind() string {
	if v.IsBool {
		return "bool"
	}
	return "int"
}

// Eval parses and evaluates a single expression.
func Eval(src string) (Value, error) {
	e, err := ParseExpr(src)
	if err != nil {
		return Value{}, err
	}
	return evalExpr(e)
}

func evalExpr(e Expr) (Value, error) {
	switch e := e.(type) {
	case *Literal:
		return numValue(e.Value), nil
	case *Unary:
		x, err := evalNum(e.X, e.Op)
		if err != nil {
			return Value{}, err
		}
		return numValue(x.Neg()), nil
	case *Binary:
		if e.Op.Kind == EqEq || e.Op.Kind == BangEq {
			return evalEquality(e)
		}
		x, err := evalNum(e.X, e.Op)
		if err != nil {
			return Value{}, err
		}
		y, err := evalNum(e.Y, e.Op)
		if err != nil {
			return Value{}, err
		}
		switch e.Op.Kind {
		case Plus:
			return numValue(x.Add(y)), nil
		case Minus:
			return numValue(x.Sub(y)), nil
		case Star:
			return numValue(x.Mul(y)), nil
		case Lt:
			return boolValue(x.Cmp(y) < 0), nil
		case LtEq:
			return boolValue(x.Cmp(y) <= 0), nil
		case Gt:
			return boolValue(x.Cmp(y) > 0), nil
		case GtEq:
			return boolValue(x.Cmp(y) >= 0), nil
		default:
			return Value{}, fmt.Errorf("offset %d: %s is not a binary operator", e.Op.Start, e.Op.Kind)
		}
	default:
		return Value{}, fmt.Errorf("unknown expression node %T", e)
	}
}

// evalEquality handles == and !=, which accept two integers or two booleans;
// mixing the two is an error.
func evalEquality(e *Binary) (Value, error) {
	x, err := evalExpr(e.X)
	if err != nil {
		return Value{}, err
	}
	y, err := evalExpr(e.Y)
	if err != nil {
		return Value{}, err
	}
	if x.IsBool != y.IsBool {
		return Value{}, fmt.Errorf("offset %d: operands of %s mix a boolean and an integer", e.Op.Start, e.Op.Kind)
	}
	var eq bool
	if x.IsBool {
		eq = x.Bool == y.Bool
	} else {
		eq = x.Num.Equal(y.Num)
	}
	if e.Op.Kind == BangEq {
		return boolValue(!eq), nil
	}
	return boolValue(eq), nil
}

// evalNum evaluates an operand and requires it to be numeric.
func evalNum(e Expr, op Token) (bignum.BigInt, error) {
	v, err := evalExpr(e)
	if err != nil {
		return bignum.BigInt{}, err
	}
	if v.IsBool {
		return bignum.BigInt{}, fmt.Errorf("offset %d: operand of %s is a boolean, want an integer", op.Start, op.Kind)
	}
	return v.Num, nil
}
