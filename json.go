package goexpr

import (
	"encoding/json"
	"fmt"
	"math"
	"math/big"
)

// ============================================================
// JSON Serialization
// ============================================================

// ToJSON encodes e as nested objects tagged with "type":
//
//	{"type":"add","left":{"type":"sym","name":"x"},"right":{"type":"num","value":"1"}}
func ToJSON(e Expr) (string, error) {
	m, err := ToMap(e)
	if err != nil {
		return "", err
	}
	b, err := json.Marshal(m)
	return string(b), err
}

// ToMap returns the object form used by ToJSON. Shared sub-expressions share
// the same map.
func ToMap(e Expr) (map[string]interface{}, error) {
	return PostVisit(e, toMap, struct{}{})
}

func toMap(e Expr, ops []map[string]interface{}, _ struct{}) (map[string]interface{}, error) {
	switch v := e.(type) {
	case *Num:
		return map[string]interface{}{"type": "num", "value": v.String()}, nil
	case *Sym:
		return map[string]interface{}{"type": "sym", "name": v.name}, nil
	case operator:
		return map[string]interface{}{"type": v.Kind().String(), "left": ops[0], "right": ops[1]}, nil
	}
	return nil, fmt.Errorf("%w: %T", ErrUnsupportedNode, e)
}

// ParseJSON decodes the output of ToJSON.
func ParseJSON(data []byte) (Expr, error) {
	var m map[string]interface{}
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return FromJSON(m)
}

// FromJSON builds an expression from its object form. Number values may be
// strings ("3", "-1/3", "0.25") or JSON/YAML numbers.
func FromJSON(data map[string]interface{}) (Expr, error) {
	return fromJSON(data, "$")
}

func fromJSON(data map[string]interface{}, path string) (Expr, error) {
	if data == nil {
		return nil, fmt.Errorf("%w: %s: expression must be an object", ErrDecode, path)
	}
	typAny, ok := data["type"]
	if !ok {
		return nil, fmt.Errorf("%w: %s: missing 'type' field", ErrDecode, path)
	}
	typ, ok := typAny.(string)
	if !ok || typ == "" {
		return nil, fmt.Errorf("%w: %s: field 'type' must be a non-empty string", ErrDecode, path)
	}

	subObj := func(field string) (Expr, error) {
		v, ok := data[field]
		if !ok {
			return nil, fmt.Errorf("%w: %s: %s: missing %q", ErrDecode, path, typ, field)
		}
		m, ok := v.(map[string]interface{})
		if !ok {
			return nil, fmt.Errorf("%w: %s: %s: %q must be an object", ErrDecode, path, typ, field)
		}
		return fromJSON(m, path+"."+field)
	}

	switch typ {
	case "num":
		v, ok := data["value"]
		if !ok {
			return nil, fmt.Errorf("%w: %s: num: missing \"value\"", ErrDecode, path)
		}
		r, err := parseValue(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: num: %v", ErrDecode, path, err)
		}
		return &Num{val: r}, nil
	case "sym":
		name, ok := data["name"].(string)
		if !ok || name == "" {
			return nil, fmt.Errorf("%w: %s: sym: \"name\" must be a non-empty string", ErrDecode, path)
		}
		return S(name), nil
	case "add", "sub", "mul", "div", "pow":
		l, err := subObj("left")
		if err != nil {
			return nil, err
		}
		r, err := subObj("right")
		if err != nil {
			return nil, err
		}
		switch typ {
		case "add":
			return NewAdd(l, r), nil
		case "sub":
			return NewSub(l, r), nil
		case "mul":
			return NewMul(l, r), nil
		case "div":
			return NewDiv(l, r), nil
		default:
			return NewPow(l, r), nil
		}
	}
	return nil, fmt.Errorf("%w: %s: unknown type %q", ErrDecode, path, typ)
}

func parseValue(v interface{}) (*big.Rat, error) {
	switch x := v.(type) {
	case string:
		r, ok := new(big.Rat).SetString(x)
		if !ok {
			return nil, fmt.Errorf("invalid number %q", x)
		}
		return r, nil
	case float64:
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return nil, fmt.Errorf("non-finite number %v", x)
		}
		return new(big.Rat).SetFloat64(x), nil
	case int:
		return new(big.Rat).SetInt64(int64(x)), nil
	case int64:
		return new(big.Rat).SetInt64(x), nil
	case uint64:
		return new(big.Rat).SetUint64(x), nil
	case json.Number:
		return parseValue(x.String())
	}
	return nil, fmt.Errorf("\"value\" must be a string or number, got %T", v)
}
