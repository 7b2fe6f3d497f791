/*
File    : gomix/eval/functions.go
Package : eval
*/
package eval

import (
	"github.com/gomix-lang/gomix/ast"
	"github.com/gomix-lang/gomix/scope"
	"github.com/gomix-lang/gomix/value"
)

// evalArgs evaluates an argument-expression list left to right, short
// circuiting on the first error or signal.
func (e *Evaluator) evalArgs(exprs []ast.Expr, sc *scope.Scope) ([]value.Value, *Signal, *EvalError) {
	args := make([]value.Value, 0, len(exprs))
	for _, expr := range exprs {
		v, sig, err := e.eval(expr, sc)
		if err != nil || sig != nil {
			return nil, sig, err
		}
		args = append(args, v)
	}
	return args, nil, nil
}

// evalInvocation dispatches by callee shape: a BoundMethod callee (the only
// form `recv.member(...)` ever parses to) goes through bound-method
// dispatch; anything else is evaluated to a Value first and must be a
// Lambda (ordinary call) or a Class (construction).
func (e *Evaluator) evalInvocation(n *ast.Invocation, sc *scope.Scope) (value.Value, *Signal, *EvalError) {
	if bm, ok := n.Callee.(*ast.BoundMethod); ok {
		return e.evalBoundMethodInvocation(bm, n.Args, sc)
	}

	calleeVal, sig, err := e.eval(n.Callee, sc)
	if err != nil || sig != nil {
		return nil, sig, err
	}
	args, sig, err := e.evalArgs(n.Args, sc)
	if err != nil || sig != nil {
		return nil, sig, err
	}

	switch callee := calleeVal.(type) {
	case *value.Lambda:
		return e.callLambda(callee, args, nil, n.Line)
	case *value.Class:
		return e.instantiate(callee, args, n.Line)
	default:
		return nil, nil, newError(n.Line, "cannot call a %s", calleeVal.Kind())
	}
}

// selfBinding names the constant under which a method call scope exposes
// its receiver, per spec.md §4.3's "implicit self-reference (for methods)".
const selfBinding = "self"

// callLambda builds a fresh call scope (parent = nil, global = e.Global),
// binds positional parameters (collecting the tail into a list when the
// lambda is varargs), optionally binds self, and always binds the lambda's
// own name for non-anonymous recursion before evaluating its body.
func (e *Evaluator) callLambda(fn *value.Lambda, args []value.Value, self value.Value, line int) (value.Value, *Signal, *EvalError) {
	params := fn.Node.Params
	fixed := len(params)
	if fn.Node.Varargs {
		fixed--
	}
	if fn.Node.Varargs {
		if len(args) < fixed {
			return nil, nil, newError(line, "%s expects at least %d argument(s), got %d", lambdaLabel(fn), fixed, len(args))
		}
	} else if len(args) != fixed {
		return nil, nil, newError(line, "%s expects %d argument(s), got %d", lambdaLabel(fn), fixed, len(args))
	}

	callScope := scope.NewCallScope(e.Global)
	for i := 0; i < fixed; i++ {
		if declErr := callScope.DeclareVariable(params[i], args[i]); declErr != nil {
			return nil, nil, errAsEval(declErr, line)
		}
	}
	if fn.Node.Varargs {
		rest := append([]value.Value{}, args[fixed:]...)
		if declErr := callScope.DeclareVariable(params[fixed], value.NewList(rest)); declErr != nil {
			return nil, nil, errAsEval(declErr, line)
		}
	}
	if self != nil {
		if declErr := callScope.DeclareConstant(selfBinding, self); declErr != nil {
			return nil, nil, errAsEval(declErr, line)
		}
	}
	if fn.Node.Name != "" {
		// A duplicate only happens if a parameter is literally named the
		// same as the function; ignore in that vanishingly unlikely case
		// rather than fail a legitimate call over a naming coincidence.
		_ = callScope.DeclareConstant(fn.Node.Name, fn)
	}

	_, sig, err := e.evalBlock(fn.Node.Body, callScope)
	if err != nil {
		return nil, nil, err
	}
	if sig != nil {
		switch sig.Kind {
		case SigReturn:
			return sig.Value, nil, nil
		default:
			return nil, nil, newError(line, "break/continue used outside of a loop")
		}
	}
	return value.Nil{}, nil, nil
}

func lambdaLabel(fn *value.Lambda) string {
	if fn.Node.Name != "" {
		return "function " + fn.Node.Name
	}
	return "lambda"
}

// instantiate builds a new Instance of class and, if it defines init, runs
// it with self bound to the new instance. init must not return a value.
func (e *Evaluator) instantiate(class *value.Class, args []value.Value, line int) (value.Value, *Signal, *EvalError) {
	inst := &value.Instance{Object: value.NewInstanceObject(class.Object)}
	init, ok := class.Object.LookupMethod("init")
	if !ok {
		if len(args) != 0 {
			return nil, nil, newError(line, "%s has no init and takes no arguments, got %d", class.Object.Name, len(args))
		}
		return inst, nil, nil
	}
	result, sig, err := e.callLambda(init, args, inst, line)
	if err != nil || sig != nil {
		return nil, sig, err
	}
	if _, isNil := result.(value.Nil); !isNil {
		return nil, nil, newError(line, "init must not return a value")
	}
	return inst, nil, nil
}

// evalBoundMethodInvocation dispatches `recv.member(args...)` by receiver
// kind: instances invoke the matching method with self bound; classes only
// expose class methods; lists and strings expose a small set of built-ins
// implemented natively in Go.
func (e *Evaluator) evalBoundMethodInvocation(bm *ast.BoundMethod, argExprs []ast.Expr, sc *scope.Scope) (value.Value, *Signal, *EvalError) {
	recv, sig, err := e.eval(bm.Recv, sc)
	if err != nil || sig != nil {
		return nil, sig, err
	}
	args, sig, err := e.evalArgs(argExprs, sc)
	if err != nil || sig != nil {
		return nil, sig, err
	}

	switch r := recv.(type) {
	case *value.Instance:
		method, ok := r.Object.CurrentClass.LookupMethod(bm.Member)
		if !ok {
			return nil, nil, newError(bm.Line, "%s has no method named %s", r.Object.CurrentClass.Name, bm.Member)
		}
		return e.callLambda(method, args, r, bm.Line)
	case *value.Class:
		if _, isInstanceMethod := r.Object.Methods[bm.Member]; isInstanceMethod {
			return nil, nil, newError(bm.Line, "%s.%s requires an instance of the class", r.Object.Name, bm.Member)
		}
		method, ok := r.Object.ClassMethods[bm.Member]
		if !ok {
			return nil, nil, newError(bm.Line, "%s has no class method named %s", r.Object.Name, bm.Member)
		}
		return e.callLambda(method, args, r, bm.Line)
	case *value.List:
		return e.callListBuiltin(r, bm.Member, args, bm.Line)
	case *value.String:
		return e.callStringBuiltin(r, bm.Member, args, bm.Line)
	default:
		return nil, nil, newError(bm.Line, "cannot call a method on a %s", recv.Kind())
	}
}
