package goexpr

import "errors"

var (
	// ErrUnsupportedOperand indicates a value that is neither an Expr nor a number
	// was passed to a constructor.
	ErrUnsupportedOperand = errors.New("cannot combine with non-expression, non-numeric operand")

	// ErrUnsupportedNode indicates a node type with no differentiation rule.
	ErrUnsupportedNode = errors.New("unsupported node kind")

	// ErrUnsupportedCase indicates a derivative the rules cannot express,
	// such as a power whose exponent depends on the variable.
	ErrUnsupportedCase = errors.New("unsupported differentiation case")

	// ErrNilExpr indicates a nil root or operand.
	ErrNilExpr = errors.New("nil expression")

	// ErrEmptyVariable indicates differentiation with respect to an empty name.
	ErrEmptyVariable = errors.New("empty differentiation variable")

	// ErrInvalidOrder indicates a negative derivative order, or one above
	// MaxOrder in a tool call.
	ErrInvalidOrder = errors.New("invalid derivative order")

	// ErrTooLarge indicates a tool result over MaxResultSize nodes.
	ErrTooLarge = errors.New("expression too large")

	// ErrDecode indicates a malformed serialized expression.
	ErrDecode = errors.New("decode error")
)
