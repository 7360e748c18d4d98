package goexpr

import (
	"encoding/json"
	"fmt"
)

// ============================================================
// Tool Interface
// ============================================================

type ToolRequest struct {
	Tool   string                 `json:"tool"`
	Params map[string]interface{} `json:"params"`
}

type ToolResponse struct {
	Result interface{} `json:"result,omitempty"`
	LaTeX  string      `json:"latex,omitempty"`
	String string      `json:"string,omitempty"`
	Error  string      `json:"error,omitempty"`
}

// Tool names accepted by HandleToolCall.
const (
	ToolDifferentiate = "differentiate"
	ToolRender        = "render"
	ToolFreeSymbols   = "free_symbols"
	ToolSize          = "size"
)

// Limits applied by HandleToolCall. Repeated product rules roughly double
// the derivative graph per order.
const (
	MaxOrder      = 16
	MaxResultSize = 1 << 18
)

// HandleToolCall runs a single tool request. Failures are reported in
// ToolResponse.Error; it never panics on malformed params.
func HandleToolCall(req ToolRequest) ToolResponse {
	getExpr := func(key string) (Expr, error) {
		v, ok := req.Params[key]
		if !ok {
			return nil, fmt.Errorf("missing param: %s", key)
		}
		val, ok := v.(map[string]interface{})
		if !ok {
			return nil, fmt.Errorf("invalid type for param %s", key)
		}
		return FromJSON(val)
	}
	getString := func(key string) (string, error) {
		v, ok := req.Params[key]
		if !ok {
			return "", fmt.Errorf("missing param: %s", key)
		}
		s, ok := v.(string)
		if !ok {
			return "", fmt.Errorf("param %s must be a string", key)
		}
		return s, nil
	}
	getInt := func(key string, def int) (int, error) {
		v, ok := req.Params[key]
		if !ok {
			return def, nil
		}
		switch n := v.(type) {
		case float64:
			if n != float64(int(n)) {
				return 0, fmt.Errorf("param %s must be an integer", key)
			}
			return int(n), nil
		case int:
			return n, nil
		case json.Number:
			i, err := n.Int64()
			if err != nil {
				return 0, fmt.Errorf("param %s must be an integer", key)
			}
			return int(i), nil
		}
		return 0, fmt.Errorf("param %s must be an integer", key)
	}
	fail := func(err error) ToolResponse { return ToolResponse{Error: err.Error()} }
	exprResponse := func(e Expr) ToolResponse {
		m, err := ToMap(e)
		if err != nil {
			return fail(err)
		}
		return ToolResponse{Result: m, String: e.String(), LaTeX: LaTeX(e)}
	}

	switch req.Tool {
	case ToolDifferentiate:
		e, err := getExpr("expr")
		if err != nil {
			return fail(err)
		}
		v, err := getString("var")
		if err != nil {
			return fail(err)
		}
		order, err := getInt("order", 1)
		if err != nil {
			return fail(err)
		}
		d, err := diffBounded(e, v, order)
		if err != nil {
			return fail(err)
		}
		return exprResponse(d)

	case ToolRender:
		e, err := getExpr("expr")
		if err != nil {
			return fail(err)
		}
		return exprResponse(e)

	case ToolFreeSymbols:
		e, err := getExpr("expr")
		if err != nil {
			return fail(err)
		}
		names, err := FreeSymbols(e)
		if err != nil {
			return fail(err)
		}
		return ToolResponse{Result: names}

	case ToolSize:
		e, err := getExpr("expr")
		if err != nil {
			return fail(err)
		}
		n, err := Size(e)
		if err != nil {
			return fail(err)
		}
		return ToolResponse{Result: n}
	}
	return ToolResponse{Error: fmt.Sprintf("unknown tool: %s", req.Tool)}
}

// diffBounded is DiffN for untrusted input: the order is capped at MaxOrder
// and every intermediate derivative at MaxResultSize nodes.
func diffBounded(e Expr, wrt string, order int) (Expr, error) {
	if order < 0 || order > MaxOrder {
		return nil, fmt.Errorf("%w: %d (allowed 0..%d)", ErrInvalidOrder, order, MaxOrder)
	}
	for i := 0; i < order; i++ {
		d, err := Differentiate(e, wrt)
		if err != nil {
			return nil, err
		}
		n, err := Size(d)
		if err != nil {
			return nil, err
		}
		if n > MaxResultSize {
			return nil, fmt.Errorf("%w: order %d derivative has %d nodes (limit %d)", ErrTooLarge, i+1, n, MaxResultSize)
		}
		e = d
	}
	return e, nil
}

// MCPToolSpec returns a JSON description of the tools for agent registration.
func MCPToolSpec() string {
	exprProp := map[string]interface{}{
		"type":        "object",
		"description": `Expression object, e.g. {"type":"mul","left":{"type":"num","value":"3"},"right":{"type":"sym","name":"x"}}`,
	}
	tools := []map[string]interface{}{
		ts(ToolDifferentiate, "Differentiate an expression with respect to one variable", []string{"expr", "var"}, map[string]interface{}{
			"expr":  exprProp,
			"var":   map[string]interface{}{"type": "string", "description": "Differentiation variable"},
			"order": map[string]interface{}{"type": "integer", "description": fmt.Sprintf("Derivative order, 0 to %d (default 1)", MaxOrder)},
		}),
		ts(ToolRender, "Render an expression as text and LaTeX", []string{"expr"}, map[string]interface{}{"expr": exprProp}),
		ts(ToolFreeSymbols, "List the symbols occurring in an expression", []string{"expr"}, map[string]interface{}{"expr": exprProp}),
		ts(ToolSize, "Count the distinct nodes of an expression", []string{"expr"}, map[string]interface{}{"expr": exprProp}),
	}
	b, _ := json.MarshalIndent(map[string]interface{}{"tools": tools}, "", "  ")
	return string(b)
}

func ts(name, description string, required []string, props map[string]interface{}) map[string]interface{} {
	return map[string]interface{}{
		"name":        name,
		"description": description,
		"input_schema": map[string]interface{}{
			"type":       "object",
			"properties": props,
			"required":   required,
		},
	}
}
