package goexpr

import "fmt"

// derivative is the per-node result of the differentiation fold.
type derivative struct {
	expr    Expr
	depends bool // whether the node mentions the variable at all
}

// Differentiate returns d(root)/d(wrt) as a new expression. root is not
// modified and shares unchanged sub-expressions with the result.
//
// Powers are differentiated only when the exponent is independent of wrt;
// otherwise ErrUnsupportedCase is returned.
func Differentiate(root Expr, wrt string) (Expr, error) {
	if wrt == "" {
		return nil, ErrEmptyVariable
	}
	d, err := PostVisit(root, diffRule, wrt)
	if err != nil {
		return nil, err
	}
	return d.expr, nil
}

// DiffN returns the n-th derivative of e with respect to wrt.
func DiffN(e Expr, wrt string, n int) (Expr, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidOrder, n)
	}
	if isNil(e) {
		return nil, ErrNilExpr
	}
	var err error
	for i := 0; i < n; i++ {
		if e, err = Differentiate(e, wrt); err != nil {
			return nil, err
		}
	}
	return e, nil
}

func diffRule(e Expr, ops []derivative, wrt string) (derivative, error) {
	switch v := e.(type) {
	case *Num:
		return derivative{expr: N(0)}, nil

	case *Sym:
		if v.name == wrt {
			return derivative{expr: N(1), depends: true}, nil
		}
		return derivative{expr: N(0)}, nil

	case *Add:
		return derivative{expr: NewAdd(ops[0].expr, ops[1].expr), depends: anyDepends(ops)}, nil

	case *Sub:
		return derivative{expr: NewSub(ops[0].expr, ops[1].expr), depends: anyDepends(ops)}, nil

	case *Mul:
		return diffMul(v, ops), nil

	case *Div:
		dl, dr := ops[0].expr, ops[1].expr
		num := NewSub(NewMul(dl, v.right), NewMul(v.left, dr))
		return derivative{expr: NewDiv(num, NewPow(v.right, N(2))), depends: anyDepends(ops)}, nil

	case *Pow:
		return diffPow(v, ops, wrt)
	}
	return derivative{}, fmt.Errorf("%w: %T", ErrUnsupportedNode, e)
}

// diffMul applies the product rule. A constant times a symbol folds to a
// single Num: d(k*x) is k times the symbol's 0 or 1.
func diffMul(m *Mul, ops []derivative) derivative {
	depends := anyDepends(ops)
	if k, ok := m.left.(*Num); ok {
		if _, ok := m.right.(*Sym); ok {
			return derivative{expr: numMul(k, ops[1].expr.(*Num)), depends: depends}
		}
	}
	if k, ok := m.right.(*Num); ok {
		if _, ok := m.left.(*Sym); ok {
			return derivative{expr: numMul(ops[0].expr.(*Num), k), depends: depends}
		}
	}
	sum := NewAdd(NewMul(ops[0].expr, m.right), NewMul(m.left, ops[1].expr))
	return derivative{expr: sum, depends: depends}
}

// diffPow applies the power rule for an exponent constant in wrt, times the
// derivative of the base.
func diffPow(p *Pow, ops []derivative, wrt string) (derivative, error) {
	if ops[1].depends {
		return derivative{}, fmt.Errorf("%w: exponent %s depends on %q", ErrUnsupportedCase, p.right, wrt)
	}
	if !ops[0].depends {
		return derivative{expr: N(0)}, nil
	}

	var lowered Expr
	if k, ok := p.right.(*Num); ok {
		lowered = numSub(k, N(1))
	} else {
		lowered = NewSub(p.right, N(1))
	}
	var d Expr = NewMul(p.right, NewPow(p.left, lowered))

	if dl, ok := ops[0].expr.(*Num); !ok || !dl.IsOne() {
		d = NewMul(d, ops[0].expr)
	}
	return derivative{expr: d, depends: true}, nil
}

func anyDepends(ops []derivative) bool {
	for _, o := range ops {
		if o.depends {
			return true
		}
	}
	return false
}
