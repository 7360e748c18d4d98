// Package goexpr models arithmetic expressions as immutable node graphs and
// differentiates them symbolically.
//
// Design goals:
//   - Exact rational constants (math/big.Rat)
//   - Nodes are never mutated; sub-expressions may be shared freely
//   - Bottom-up folds run on an explicit stack, so depth is bounded only by memory
//   - JSON, LaTeX and tool-call APIs for services and agent backends
package goexpr

import (
	"fmt"
	"math"
	"math/big"
)

// ============================================================
// Core Interface
// ============================================================

// Expr is a node in an expression graph. The set of implementations is
// closed: *Num, *Sym, *Add, *Sub, *Mul, *Div and *Pow.
type Expr interface {
	Kind() Kind
	// Operands returns the node's children in order. The slice is a copy.
	Operands() []Expr
	Precedence() Precedence
	String() string
	// isNil reports a typed nil pointer stored in the interface.
	isNil() bool
}

// Kind identifies the concrete variant of an Expr.
type Kind int

const (
	KindNum Kind = iota
	KindSym
	KindAdd
	KindSub
	KindMul
	KindDiv
	KindPow
)

var kindNames = [...]string{
	KindNum: "num",
	KindSym: "sym",
	KindAdd: "add",
	KindSub: "sub",
	KindMul: "mul",
	KindDiv: "div",
	KindPow: "pow",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// Precedence is the binding strength of a node, used only for rendering.
type Precedence int

const (
	AddPrecedence Precedence = iota
	MulPrecedence
	PowPrecedence
	AtomPrecedence
)

// ============================================================
// Num — exact rational constant
// ============================================================

type Num struct{ val *big.Rat }

func N(n int64) *Num { return &Num{val: new(big.Rat).SetInt64(n)} }

func F(p, q int64) *Num {
	if q == 0 {
		panic("goexpr: denominator is zero")
	}
	return &Num{val: new(big.Rat).SetFrac(big.NewInt(p), big.NewInt(q))}
}

func NFloat(f float64) *Num {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		panic("goexpr: non-finite constant")
	}
	return &Num{val: new(big.Rat).SetFloat64(f)}
}

// NRat returns a Num holding a copy of r.
func NRat(r *big.Rat) *Num { return &Num{val: new(big.Rat).Set(r)} }

func (n *Num) Kind() Kind             { return KindNum }
func (n *Num) Operands() []Expr       { return nil }
func (n *Num) Precedence() Precedence { return AtomPrecedence }
func (n *Num) isNil() bool            { return n == nil }
func (n *Num) Rat() *big.Rat          { return new(big.Rat).Set(n.val) }
func (n *Num) Float64() float64       { f, _ := n.val.Float64(); return f }
func (n *Num) IsZero() bool           { return n.val.Sign() == 0 }
func (n *Num) IsOne() bool            { return n.val.Cmp(big.NewRat(1, 1)) == 0 }

func (n *Num) String() string {
	if n.val.IsInt() {
		return n.val.Num().String()
	}
	return n.val.RatString()
}

func numMul(a, b *Num) *Num { return &Num{val: new(big.Rat).Mul(a.val, b.val)} }
func numSub(a, b *Num) *Num { return &Num{val: new(big.Rat).Sub(a.val, b.val)} }

// ============================================================
// Sym — unbound variable
// ============================================================

type Sym struct{ name string }

func S(name string) *Sym { return &Sym{name: name} }

func (s *Sym) Kind() Kind             { return KindSym }
func (s *Sym) Operands() []Expr       { return nil }
func (s *Sym) Precedence() Precedence { return AtomPrecedence }
func (s *Sym) String() string         { return s.name }
func (s *Sym) Name() string           { return s.name }
func (s *Sym) isNil() bool            { return s == nil }

// ============================================================
// Binary operators
// ============================================================

type binary struct{ left, right Expr }

func (b *binary) Operands() []Expr { return []Expr{b.left, b.right} }
func (b *binary) Left() Expr       { return b.left }
func (b *binary) Right() Expr      { return b.right }

// Add is left + right.
type Add struct{ binary }

func NewAdd(l, r Expr) *Add { return &Add{binary{l, r}} }

func (a *Add) Kind() Kind             { return KindAdd }
func (a *Add) Precedence() Precedence { return AddPrecedence }
func (a *Add) Symbol() string         { return "+" }
func (a *Add) String() string         { return render(a) }
func (a *Add) isNil() bool            { return a == nil }

// Sub is left - right.
type Sub struct{ binary }

func NewSub(l, r Expr) *Sub { return &Sub{binary{l, r}} }

func (s *Sub) Kind() Kind             { return KindSub }
func (s *Sub) Precedence() Precedence { return AddPrecedence }
func (s *Sub) Symbol() string         { return "-" }
func (s *Sub) String() string         { return render(s) }
func (s *Sub) isNil() bool            { return s == nil }

// Mul is left * right.
type Mul struct{ binary }

func NewMul(l, r Expr) *Mul { return &Mul{binary{l, r}} }

func (m *Mul) Kind() Kind             { return KindMul }
func (m *Mul) Precedence() Precedence { return MulPrecedence }
func (m *Mul) Symbol() string         { return "*" }
func (m *Mul) String() string         { return render(m) }
func (m *Mul) isNil() bool            { return m == nil }

// Div is left / right.
type Div struct{ binary }

func NewDiv(l, r Expr) *Div { return &Div{binary{l, r}} }

func (d *Div) Kind() Kind             { return KindDiv }
func (d *Div) Precedence() Precedence { return MulPrecedence }
func (d *Div) Symbol() string         { return "/" }
func (d *Div) String() string         { return render(d) }
func (d *Div) isNil() bool            { return d == nil }

// Pow is left ^ right.
type Pow struct{ binary }

func NewPow(l, r Expr) *Pow { return &Pow{binary{l, r}} }

func (p *Pow) Kind() Kind             { return KindPow }
func (p *Pow) Precedence() Precedence { return PowPrecedence }
func (p *Pow) Symbol() string         { return "^" }
func (p *Pow) String() string         { return render(p) }
func (p *Pow) isNil() bool            { return p == nil }

// operator is implemented by the five binary node types.
type operator interface {
	Expr
	Left() Expr
	Right() Expr
	Symbol() string
}

var (
	_ operator = (*Add)(nil)
	_ operator = (*Sub)(nil)
	_ operator = (*Mul)(nil)
	_ operator = (*Div)(nil)
	_ operator = (*Pow)(nil)
)
