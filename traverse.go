package goexpr

import "sort"

// Visitor combines a node with the results already computed for its operands.
// operands is in operand order; extra is whatever was handed to PostVisit.
type Visitor[R, A any] func(e Expr, operands []R, extra A) (R, error)

// PostVisit folds the graph rooted at root bottom-up. fn runs exactly once per
// distinct node, after all of that node's operands, and its result is reused
// wherever the node is shared. The walk uses an explicit stack, so deep chains
// do not grow the goroutine stack.
//
// A nil root or operand, including a typed nil such as (*Sym)(nil), yields
// ErrNilExpr. The first error returned by fn aborts the walk and is returned
// unchanged.
func PostVisit[R, A any](root Expr, fn Visitor[R, A], extra A) (R, error) {
	var zero R
	if isNil(root) {
		return zero, ErrNilExpr
	}

	memo := make(map[Expr]R)
	stack := []Expr{root}

	for len(stack) > 0 {
		e := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		// A shared operand may be pushed by several parents before it is
		// reached; only the first pop computes it.
		if _, done := memo[e]; done {
			continue
		}

		ops := e.Operands()
		ready := true
		for _, o := range ops {
			if isNil(o) {
				return zero, ErrNilExpr
			}
			if _, done := memo[o]; !done {
				ready = false
			}
		}

		if !ready {
			stack = append(stack, e)
			for _, o := range ops {
				if _, done := memo[o]; !done {
					stack = append(stack, o)
				}
			}
			continue
		}

		results := make([]R, len(ops))
		for i, o := range ops {
			results[i] = memo[o]
		}
		r, err := fn(e, results, extra)
		if err != nil {
			return zero, err
		}
		memo[e] = r
	}

	return memo[root], nil
}

func isNil(e Expr) bool { return e == nil || e.isNil() }

// Size returns the number of distinct nodes reachable from e.
func Size(e Expr) (int, error) {
	n := 0
	_, err := PostVisit(e, func(Expr, []struct{}, struct{}) (struct{}, error) {
		n++
		return struct{}{}, nil
	}, struct{}{})
	if err != nil {
		return 0, err
	}
	return n, nil
}

// FreeSymbols returns the sorted names of the symbols occurring in e.
func FreeSymbols(e Expr) ([]string, error) {
	seen := map[string]struct{}{}
	_, err := PostVisit(e, func(n Expr, _ []struct{}, _ struct{}) (struct{}, error) {
		if s, ok := n.(*Sym); ok {
			seen[s.name] = struct{}{}
		}
		return struct{}{}, nil
	}, struct{}{})
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// DependsOn reports whether the symbol name occurs in e.
func DependsOn(e Expr, name string) (bool, error) {
	return PostVisit(e, dependsOn, name)
}

func dependsOn(e Expr, operands []bool, name string) (bool, error) {
	if s, ok := e.(*Sym); ok {
		return s.name == name, nil
	}
	for _, d := range operands {
		if d {
			return true, nil
		}
	}
	return false, nil
}
