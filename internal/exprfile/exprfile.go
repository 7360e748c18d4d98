// Package exprfile reads expression documents: a differentiation request
// stored as YAML (or JSON, which YAML accepts).
//
//	variable: x
//	order: 2
//	expr:
//	  type: pow
//	  left: {type: sym, name: x}
//	  right: {type: num, value: 3}
package exprfile

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/njchilds90/goexpr"
)

// ErrInvalidDocument wraps every validation failure of a document.
var ErrInvalidDocument = errors.New("invalid expression document")

// Document is a decoded expression document.
type Document struct {
	// Variable is the differentiation variable; optional for rendering.
	Variable string
	// Order is the derivative order, 1 when absent.
	Order int
	Expr  goexpr.Expr
}

type rawDocument struct {
	Variable string                 `yaml:"variable"`
	Order    *int                   `yaml:"order"`
	Expr     map[string]interface{} `yaml:"expr"`
}

// Load reads and parses the document at path.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	doc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// Parse decodes a document. Unknown top-level keys are rejected.
func Parse(data []byte) (*Document, error) {
	var raw rawDocument
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrInvalidDocument)
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	if raw.Expr == nil {
		return nil, fmt.Errorf("%w: missing expr", ErrInvalidDocument)
	}

	e, err := goexpr.FromJSON(raw.Expr)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDocument, err)
	}

	doc := &Document{Variable: raw.Variable, Order: 1, Expr: e}
	if raw.Order != nil {
		if *raw.Order < 0 {
			return nil, fmt.Errorf("%w: order must be non-negative, got %d", ErrInvalidDocument, *raw.Order)
		}
		doc.Order = *raw.Order
	}
	return doc, nil
}

// Derive differentiates the document's expression Order times.
func (d *Document) Derive() (goexpr.Expr, error) {
	if d.Variable == "" {
		return nil, fmt.Errorf("%w: missing variable", ErrInvalidDocument)
	}
	return goexpr.DiffN(d.Expr, d.Variable, d.Order)
}

// Marshal encodes e in the document expression form as YAML.
func Marshal(e goexpr.Expr) ([]byte, error) {
	m, err := goexpr.ToMap(e)
	if err != nil {
		return nil, err
	}
	return yaml.Marshal(m)
}
