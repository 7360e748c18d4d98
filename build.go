package goexpr

import (
	"fmt"
	"math"
	"math/big"
)

// Lift returns v as an Expr. Expressions pass through unchanged; Go integers,
// finite floats, *big.Int and *big.Rat are wrapped in a Num.
func Lift(v any) (Expr, error) {
	switch x := v.(type) {
	case Expr:
		if x.isNil() {
			return nil, ErrNilExpr
		}
		return x, nil
	case int:
		return N(int64(x)), nil
	case int8:
		return N(int64(x)), nil
	case int16:
		return N(int64(x)), nil
	case int32:
		return N(int64(x)), nil
	case int64:
		return N(x), nil
	case uint:
		return NRat(new(big.Rat).SetUint64(uint64(x))), nil
	case uint8:
		return N(int64(x)), nil
	case uint16:
		return N(int64(x)), nil
	case uint32:
		return N(int64(x)), nil
	case uint64:
		return NRat(new(big.Rat).SetUint64(x)), nil
	case float32:
		return liftFloat(float64(x))
	case float64:
		return liftFloat(x)
	case *big.Int:
		if x == nil {
			return nil, fmt.Errorf("%w: nil *big.Int", ErrUnsupportedOperand)
		}
		return NRat(new(big.Rat).SetInt(x)), nil
	case *big.Rat:
		if x == nil {
			return nil, fmt.Errorf("%w: nil *big.Rat", ErrUnsupportedOperand)
		}
		return NRat(x), nil
	case nil:
		return nil, ErrNilExpr
	}
	return nil, fmt.Errorf("%w: %T", ErrUnsupportedOperand, v)
}

func liftFloat(f float64) (Expr, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, fmt.Errorf("%w: non-finite %v", ErrUnsupportedOperand, f)
	}
	return NFloat(f), nil
}

func lift2(l, r any) (Expr, Expr, error) {
	le, err := Lift(l)
	if err != nil {
		return nil, nil, err
	}
	re, err := Lift(r)
	if err != nil {
		return nil, nil, err
	}
	return le, re, nil
}

// AddOf builds l + r. Either side may be a number, so AddOf(x, 1) and
// AddOf(1, x) both hold a Num(1) operand.
func AddOf(l, r any) (Expr, error) {
	le, re, err := lift2(l, r)
	if err != nil {
		return nil, err
	}
	return NewAdd(le, re), nil
}

// SubOf builds l - r.
func SubOf(l, r any) (Expr, error) {
	le, re, err := lift2(l, r)
	if err != nil {
		return nil, err
	}
	return NewSub(le, re), nil
}

// MulOf builds l * r.
func MulOf(l, r any) (Expr, error) {
	le, re, err := lift2(l, r)
	if err != nil {
		return nil, err
	}
	return NewMul(le, re), nil
}

// DivOf builds l / r.
func DivOf(l, r any) (Expr, error) {
	le, re, err := lift2(l, r)
	if err != nil {
		return nil, err
	}
	return NewDiv(le, re), nil
}

// PowOf builds l ^ r.
func PowOf(l, r any) (Expr, error) {
	le, re, err := lift2(l, r)
	if err != nil {
		return nil, err
	}
	return NewPow(le, re), nil
}

// Must panics if err is non-nil. It is intended for literal expressions:
//
//	e := goexpr.Must(goexpr.MulOf(3, x))
func Must(e Expr, err error) Expr {
	if err != nil {
		panic(err)
	}
	return e
}
