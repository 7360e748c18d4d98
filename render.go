package goexpr

import "strings"

// needsParens reports whether operand must be bracketed under parent: only an
// operator that binds strictly looser than its parent is wrapped.
func needsParens(parent Expr, operand Expr) bool {
	if _, ok := operand.(operator); !ok {
		return false
	}
	return operand.Precedence() < parent.Precedence()
}

func render(op operator) string {
	var b strings.Builder
	writeText(&b, op)
	return b.String()
}

func writeText(b *strings.Builder, e Expr) {
	op, ok := e.(operator)
	if !ok {
		b.WriteString(e.String())
		return
	}
	writeTextOperand(b, op, op.Left())
	b.WriteByte(' ')
	b.WriteString(op.Symbol())
	b.WriteByte(' ')
	writeTextOperand(b, op, op.Right())
}

func writeTextOperand(b *strings.Builder, parent, operand Expr) {
	if needsParens(parent, operand) {
		b.WriteByte('(')
		writeText(b, operand)
		b.WriteByte(')')
		return
	}
	writeText(b, operand)
}

// ============================================================
// LaTeX
// ============================================================

// LaTeX renders e as a LaTeX math fragment.
func LaTeX(e Expr) string {
	var b strings.Builder
	writeLaTeX(&b, e)
	return b.String()
}

func writeLaTeX(b *strings.Builder, e Expr) {
	switch v := e.(type) {
	case *Num:
		writeNumLaTeX(b, v)
	case *Sym:
		b.WriteString(v.name)
	case *Div:
		b.WriteString(`\frac{`)
		writeLaTeX(b, v.left)
		b.WriteString(`}{`)
		writeLaTeX(b, v.right)
		b.WriteString(`}`)
	case *Pow:
		writeLaTeXOperand(b, v, v.left)
		b.WriteString(`^{`)
		writeLaTeX(b, v.right)
		b.WriteString(`}`)
	case *Mul:
		writeLaTeXOperand(b, v, v.left)
		b.WriteString(` \cdot `)
		writeLaTeXOperand(b, v, v.right)
	case operator:
		writeLaTeXOperand(b, v, v.Left())
		b.WriteString(" " + v.Symbol() + " ")
		writeLaTeXOperand(b, v, v.Right())
	default:
		b.WriteString(e.String())
	}
}

func writeLaTeXOperand(b *strings.Builder, parent, operand Expr) {
	if needsParens(parent, operand) {
		b.WriteString(`\left(`)
		writeLaTeX(b, operand)
		b.WriteString(`\right)`)
		return
	}
	writeLaTeX(b, operand)
}

func writeNumLaTeX(b *strings.Builder, n *Num) {
	if n.val.IsInt() {
		b.WriteString(n.val.Num().String())
		return
	}
	v := n.Rat()
	if v.Sign() < 0 {
		b.WriteByte('-')
		v.Neg(v)
	}
	b.WriteString(`\frac{`)
	b.WriteString(v.Num().String())
	b.WriteString(`}{`)
	b.WriteString(v.Denom().String())
	b.WriteString(`}`)
}
