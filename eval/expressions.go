/*
File    : gomix/eval/expressions.go
Package : eval
*/
package eval

import (
	"errors"

	"github.com/gomix-lang/gomix/ast"
	"github.com/gomix-lang/gomix/scope"
	"github.com/gomix-lang/gomix/value"
)

func (e *Evaluator) evalIdentifier(n *ast.Identifier, sc *scope.Scope) (value.Value, *Signal, *EvalError) {
	v, ok := sc.Lookup(n.Name)
	if !ok {
		return nil, nil, newError(n.Line, "unresolved identifier: %s", n.Name)
	}
	return v, nil, nil
}

func (e *Evaluator) evalListExpression(n *ast.ListExpression, sc *scope.Scope) (value.Value, *Signal, *EvalError) {
	items := make([]value.Value, 0, len(n.Elems))
	for _, elem := range n.Elems {
		v, sig, err := e.eval(elem, sc)
		if err != nil {
			return nil, nil, err
		}
		if sig != nil {
			return nil, sig, nil
		}
		items = append(items, v)
	}
	return value.NewList(items), nil, nil
}

// evalRangeExpression requires both bounds to be the same type, and that
// type to be Number or Char — any other pairing is a runtime type error.
func (e *Evaluator) evalRangeExpression(n *ast.RangeExpression, sc *scope.Scope) (value.Value, *Signal, *EvalError) {
	lo, sig, err := e.eval(n.Lo, sc)
	if err != nil || sig != nil {
		return nil, sig, err
	}
	hi, sig, err := e.eval(n.Hi, sc)
	if err != nil || sig != nil {
		return nil, sig, err
	}
	validBounds := false
	if _, ok := lo.(value.Number); ok {
		_, ok2 := hi.(value.Number)
		validBounds = ok2
	} else if _, ok := lo.(value.Char); ok {
		_, ok2 := hi.(value.Char)
		validBounds = ok2
	}
	if !validBounds {
		return nil, nil, newError(0, "range bounds must both be numbers or both be characters, got %s and %s", lo.Kind(), hi.Kind())
	}
	return &value.Range{Start: lo, End: hi, Inclusive: n.Inclusive}, nil, nil
}

func (e *Evaluator) evalNot(n *ast.Not, sc *scope.Scope) (value.Value, *Signal, *EvalError) {
	v, sig, err := e.eval(n.Expr, sc)
	if err != nil || sig != nil {
		return nil, sig, err
	}
	b, ok := v.(value.Boolean)
	if !ok {
		return nil, nil, newError(n.Line, "'!' requires a boolean, got %s", v.Kind())
	}
	return value.Boolean(!bool(b)), nil, nil
}

func (e *Evaluator) evalNegation(n *ast.Negation, sc *scope.Scope) (value.Value, *Signal, *EvalError) {
	v, sig, err := e.eval(n.Expr, sc)
	if err != nil || sig != nil {
		return nil, sig, err
	}
	num, ok := v.(value.Number)
	if !ok {
		return nil, nil, newError(n.Line, "unary '-' requires a number, got %s", v.Kind())
	}
	return -num, nil, nil
}

// arithOp identifies which arithmetic operator evalArith is combining its
// operands with. An explicit tag is used rather than comparing func values,
// which Go forbids.
type arithOp int

const (
	addOp arithOp = iota
	subOp
	mulOp
	divOp
)

func (op arithOp) apply(a, b value.Number) (value.Value, error) {
	switch op {
	case addOp:
		return a + b, nil
	case subOp:
		return a - b, nil
	case mulOp:
		return a * b, nil
	case divOp:
		if b == 0 {
			return nil, errDivByZero
		}
		return a / b, nil
	default:
		return nil, errDivByZero
	}
}

var errDivByZero = errors.New("division by zero")

type cmpOp int

const (
	lessOp cmpOp = iota
	greaterOp
)

func (op cmpOp) apply(a, b value.Number) value.Value {
	switch op {
	case lessOp:
		return value.Boolean(a < b)
	default:
		return value.Boolean(a > b)
	}
}

// evalArith evaluates a left/right pair and combines them with op. Both
// operands must be numbers; string concatenation uses String.concat, not '+'.
func (e *Evaluator) evalArith(left, right ast.Expr, line int, sc *scope.Scope, op arithOp) (value.Value, *Signal, *EvalError) {
	lv, sig, err := e.eval(left, sc)
	if err != nil || sig != nil {
		return nil, sig, err
	}
	rv, sig, err := e.eval(right, sc)
	if err != nil || sig != nil {
		return nil, sig, err
	}

	ln, lok := lv.(value.Number)
	rn, rok := rv.(value.Number)
	if !lok || !rok {
		return nil, nil, newError(line, "arithmetic operator requires numbers, got %s and %s", lv.Kind(), rv.Kind())
	}
	result, applyErr := op.apply(ln, rn)
	if applyErr != nil {
		return nil, nil, newError(line, applyErr.Error())
	}
	return result, nil, nil
}

func (e *Evaluator) evalComparison(left, right ast.Expr, line int, sc *scope.Scope, op cmpOp) (value.Value, *Signal, *EvalError) {
	lv, sig, err := e.eval(left, sc)
	if err != nil || sig != nil {
		return nil, sig, err
	}
	rv, sig, err := e.eval(right, sc)
	if err != nil || sig != nil {
		return nil, sig, err
	}
	ln, lok := lv.(value.Number)
	rn, rok := rv.(value.Number)
	if !lok || !rok {
		return nil, nil, newError(line, "comparison operator requires numbers, got %s and %s", lv.Kind(), rv.Kind())
	}
	return op.apply(ln, rn), nil, nil
}

func (e *Evaluator) evalEquality(n *ast.Equality, sc *scope.Scope) (value.Value, *Signal, *EvalError) {
	lv, sig, err := e.eval(n.Left, sc)
	if err != nil || sig != nil {
		return nil, sig, err
	}
	rv, sig, err := e.eval(n.Right, sc)
	if err != nil || sig != nil {
		return nil, sig, err
	}
	return value.Boolean(lv.Equal(rv)), nil, nil
}

// evalOr and evalAnd short-circuit: the right operand is only evaluated if
// the left one didn't already settle the result.
func (e *Evaluator) evalOr(n *ast.Or, sc *scope.Scope) (value.Value, *Signal, *EvalError) {
	lv, sig, err := e.eval(n.Left, sc)
	if err != nil || sig != nil {
		return nil, sig, err
	}
	lb, ok := lv.(value.Boolean)
	if !ok {
		return nil, nil, newError(0, "'or' requires booleans, got %s", lv.Kind())
	}
	if bool(lb) {
		return value.Boolean(true), nil, nil
	}
	rv, sig, err := e.eval(n.Right, sc)
	if err != nil || sig != nil {
		return nil, sig, err
	}
	rb, ok := rv.(value.Boolean)
	if !ok {
		return nil, nil, newError(0, "'or' requires booleans, got %s", rv.Kind())
	}
	return rb, nil, nil
}

func (e *Evaluator) evalAnd(n *ast.And, sc *scope.Scope) (value.Value, *Signal, *EvalError) {
	lv, sig, err := e.eval(n.Left, sc)
	if err != nil || sig != nil {
		return nil, sig, err
	}
	lb, ok := lv.(value.Boolean)
	if !ok {
		return nil, nil, newError(0, "'and' requires booleans, got %s", lv.Kind())
	}
	if !bool(lb) {
		return value.Boolean(false), nil, nil
	}
	rv, sig, err := e.eval(n.Right, sc)
	if err != nil || sig != nil {
		return nil, sig, err
	}
	rb, ok := rv.(value.Boolean)
	if !ok {
		return nil, nil, newError(0, "'and' requires booleans, got %s", rv.Kind())
	}
	return rb, nil, nil
}

func (e *Evaluator) evalSubscript(n *ast.Subscript, sc *scope.Scope) (value.Value, *Signal, *EvalError) {
	lv, sig, err := e.eval(n.List, sc)
	if err != nil || sig != nil {
		return nil, sig, err
	}
	iv, sig, err := e.eval(n.Index, sc)
	if err != nil || sig != nil {
		return nil, sig, err
	}
	idxNum, ok := iv.(value.Number)
	if !ok {
		return nil, nil, newError(n.Line, "subscript index must be a number, got %s", iv.Kind())
	}
	idx := idxNum.Int()

	switch coll := lv.(type) {
	case *value.List:
		if idx < 0 || idx >= len(coll.Items) {
			return nil, nil, newError(n.Line, "list index %d out of range (len %d)", idx, len(coll.Items))
		}
		return coll.Items[idx], nil, nil
	case *value.String:
		if idx < 0 || idx >= len(coll.Runes) {
			return nil, nil, newError(n.Line, "string index %d out of range (len %d)", idx, len(coll.Runes))
		}
		return value.Char(coll.Runes[idx]), nil, nil
	default:
		return nil, nil, newError(n.Line, "'[]' requires a list or string, got %s", lv.Kind())
	}
}
