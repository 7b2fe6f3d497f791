/*
File    : gomix/eval/assignment.go
Package : eval
*/
package eval

import (
	"github.com/gomix-lang/gomix/ast"
	"github.com/gomix-lang/gomix/scope"
	"github.com/gomix-lang/gomix/value"
)

func (e *Evaluator) evalVariableInstantiation(n *ast.VariableInstantiation, sc *scope.Scope) (value.Value, *Signal, *EvalError) {
	v, sig, err := e.eval(n.Init, sc)
	if err != nil || sig != nil {
		return nil, sig, err
	}
	if declErr := sc.DeclareVariable(n.Name, v); declErr != nil {
		return nil, nil, errAsEval(declErr, 0)
	}
	return v, nil, nil
}

func (e *Evaluator) evalConstantInstantiation(n *ast.ConstantInstantiation, sc *scope.Scope) (value.Value, *Signal, *EvalError) {
	v, sig, err := e.eval(n.Init, sc)
	if err != nil || sig != nil {
		return nil, sig, err
	}
	if declErr := sc.DeclareConstant(n.Name, v); declErr != nil {
		return nil, nil, errAsEval(declErr, 0)
	}
	return v, nil, nil
}

func (e *Evaluator) evalVariableAssignment(n *ast.VariableAssignment, sc *scope.Scope) (value.Value, *Signal, *EvalError) {
	v, sig, err := e.eval(n.RHS, sc)
	if err != nil || sig != nil {
		return nil, sig, err
	}
	if assignErr := sc.Assign(n.Name, v); assignErr != nil {
		return nil, nil, errAsEval(assignErr, n.Line)
	}
	return v, nil, nil
}

func (e *Evaluator) evalSubscriptAssignment(n *ast.SubscriptAssignment, sc *scope.Scope) (value.Value, *Signal, *EvalError) {
	lv, sig, err := e.eval(n.List, sc)
	if err != nil || sig != nil {
		return nil, sig, err
	}
	iv, sig, err := e.eval(n.Index, sc)
	if err != nil || sig != nil {
		return nil, sig, err
	}
	rv, sig, err := e.eval(n.RHS, sc)
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
		coll.Items[idx] = rv
		return rv, nil, nil
	case *value.String:
		ch, ok := rv.(value.Char)
		if !ok {
			return nil, nil, newError(n.Line, "assigning into a string requires a char, got %s", rv.Kind())
		}
		if idx < 0 || idx >= len(coll.Runes) {
			return nil, nil, newError(n.Line, "string index %d out of range (len %d)", idx, len(coll.Runes))
		}
		coll.Runes[idx] = rune(ch)
		return rv, nil, nil
	default:
		return nil, nil, newError(n.Line, "'[]=' requires a list or string, got %s", lv.Kind())
	}
}

func (e *Evaluator) evalMemberAssignment(n *ast.MemberReferenceAssignment, sc *scope.Scope) (value.Value, *Signal, *EvalError) {
	recv, sig, err := e.eval(n.Recv, sc)
	if err != nil || sig != nil {
		return nil, sig, err
	}
	rv, sig, err := e.eval(n.RHS, sc)
	if err != nil || sig != nil {
		return nil, sig, err
	}
	inst, ok := recv.(*value.Instance)
	if !ok {
		return nil, nil, newError(n.Line, "'.%s = ...' requires an instance, got %s", n.Member, recv.Kind())
	}
	inst.Object.Fields.Set(n.Member, rv)
	return rv, nil, nil
}
