package exprfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/njchilds90/goexpr"
)

const cubeDoc = `
variable: x
expr:
  type: pow
  left: {type: sym, name: x}
  right: {type: num, value: 3}
`

func TestParse_YAML(t *testing.T) {
	doc, err := Parse([]byte(cubeDoc))
	require.NoError(t, err)
	assert.Equal(t, "x", doc.Variable)
	assert.Equal(t, 1, doc.Order)
	assert.Equal(t, "x ^ 3", doc.Expr.String())

	d, err := doc.Derive()
	require.NoError(t, err)
	assert.Equal(t, "3 * x ^ 2", d.String())
}

func TestParse_JSON(t *testing.T) {
	doc, err := Parse([]byte(`{"variable":"y","order":0,"expr":{"type":"mul","left":{"type":"num","value":"1/2"},"right":{"type":"sym","name":"y"}}}`))
	require.NoError(t, err)
	assert.Equal(t, 0, doc.Order)

	d, err := doc.Derive()
	require.NoError(t, err)
	assert.Same(t, doc.Expr, d)
	assert.Equal(t, "1/2 * y", d.String())
}

func TestParse_FractionAndFloatValues(t *testing.T) {
	doc, err := Parse([]byte(`
expr:
  type: add
  left: {type: num, value: 1/3}
  right: {type: num, value: 0.5}
`))
	require.NoError(t, err)
	assert.Equal(t, "1/3 + 1/2", doc.Expr.String())
}

func TestParse_Errors(t *testing.T) {
	cases := map[string]string{
		"empty":        ``,
		"no expr":      `variable: x`,
		"unknown key":  "variable: x\nfoo: 1\nexpr: {type: sym, name: x}",
		"bad expr":     "expr: {type: frob}",
		"neg order":    "order: -1\nexpr: {type: sym, name: x}",
		"not yaml map": "- 1\n- 2",
	}
	for name, in := range cases {
		_, err := Parse([]byte(in))
		assert.ErrorIs(t, err, ErrInvalidDocument, name)
	}

	_, err := Parse([]byte("expr: {type: frob}"))
	assert.ErrorIs(t, err, goexpr.ErrDecode)
}

func TestDerive_MissingVariable(t *testing.T) {
	doc, err := Parse([]byte("expr: {type: sym, name: x}"))
	require.NoError(t, err)
	_, err = doc.Derive()
	assert.ErrorIs(t, err, ErrInvalidDocument)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cube.yaml")
	require.NoError(t, os.WriteFile(path, []byte(cubeDoc), 0o644))

	doc, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "x ^ 3", doc.Expr.String())

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestMarshal_RoundTrip(t *testing.T) {
	x := goexpr.S("x")
	e := goexpr.NewDiv(goexpr.NewAdd(x, goexpr.F(2, 3)), goexpr.NewPow(x, goexpr.N(2)))

	out, err := Marshal(e)
	require.NoError(t, err)

	doc, err := Parse(append([]byte("expr:\n"), indent(out)...))
	require.NoError(t, err)
	assert.Equal(t, e.String(), doc.Expr.String())
}

func indent(b []byte) []byte {
	var out []byte
	out = append(out, ' ', ' ')
	for i, c := range b {
		out = append(out, c)
		if c == '\n' && i < len(b)-1 {
			out = append(out, ' ', ' ')
		}
	}
	return out
}
