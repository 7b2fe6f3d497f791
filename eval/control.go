/*
File    : gomix/eval/control.go
Package : eval
*/
package eval

import (
	"fmt"

	"github.com/gomix-lang/gomix/ast"
	"github.com/gomix-lang/gomix/scope"
	"github.com/gomix-lang/gomix/value"
)

func (e *Evaluator) evalIf(n *ast.IfStatement, sc *scope.Scope) (value.Value, *Signal, *EvalError) {
	cond, sig, err := e.eval(n.Cond, sc)
	if err != nil || sig != nil {
		return nil, sig, err
	}
	b, ok := cond.(value.Boolean)
	if !ok {
		return nil, nil, newError(0, "'if' condition must be a boolean, got %s", cond.Kind())
	}
	if bool(b) {
		return e.eval(n.Then, sc)
	}
	if n.Else != nil {
		return e.eval(n.Else, sc)
	}
	return value.Nil{}, nil, nil
}

func (e *Evaluator) evalWhile(n *ast.WhileStatement, sc *scope.Scope) (value.Value, *Signal, *EvalError) {
	var result value.Value = value.Nil{}
	for {
		cond, sig, err := e.eval(n.Cond, sc)
		if err != nil || sig != nil {
			return nil, sig, err
		}
		b, ok := cond.(value.Boolean)
		if !ok {
			return nil, nil, newError(0, "'while' condition must be a boolean, got %s", cond.Kind())
		}
		if !bool(b) {
			break
		}
		v, sig, err := e.eval(n.Body, sc)
		if err != nil {
			return nil, nil, err
		}
		if sig != nil {
			switch sig.Kind {
			case SigBreak:
				return result, nil, nil
			case SigContinue:
				continue
			default: // SigReturn escapes the loop to the enclosing call
				return nil, sig, nil
			}
		}
		result = v
	}
	return result, nil, nil
}

// loopOutcome tells a for-loop's driver whether to keep iterating, stop
// (break or a runtime error — the caller distinguishes those via err), or
// unwind further (a return escaping the loop into the enclosing call).
type loopOutcome int

const (
	loopContinue loopOutcome = iota
	loopStop
	loopUnwind
)

// evalFor iterates over a List, String, or Range. List/String iteration
// writes each element back through the loop variable into the underlying
// collection after the body runs, so mutating the loop variable mutates
// the source in place — the writeback semantics described for for-loops.
func (e *Evaluator) evalFor(n *ast.ForStatement, sc *scope.Scope) (value.Value, *Signal, *EvalError) {
	iterable, sig, err := e.eval(n.Iterable, sc)
	if err != nil || sig != nil {
		return nil, sig, err
	}

	switch coll := iterable.(type) {
	case *value.List:
		for i := range coll.Items {
			outcome, retSig, rerr := e.runForBody(n, sc, coll.Items[i], i, func(v value.Value) { coll.Items[i] = v })
			if rerr != nil {
				return nil, nil, rerr
			}
			if outcome == loopUnwind {
				return nil, retSig, nil
			}
			if outcome == loopStop {
				break
			}
		}
	case *value.String:
		for i := range coll.Runes {
			outcome, retSig, rerr := e.runForBody(n, sc, value.Char(coll.Runes[i]), i, func(v value.Value) {
				if ch, ok := v.(value.Char); ok {
					coll.Runes[i] = rune(ch)
				}
			})
			if rerr != nil {
				return nil, nil, rerr
			}
			if outcome == loopUnwind {
				return nil, retSig, nil
			}
			if outcome == loopStop {
				break
			}
		}
	case *value.Range:
		if lo, ok := coll.Start.(value.Number); ok {
			hi := coll.End.(value.Number)
			i := 0
			for v := lo; rangeContinues(v, hi, coll.Inclusive); v++ {
				outcome, retSig, rerr := e.runForBody(n, sc, v, i, nil)
				if rerr != nil {
					return nil, nil, rerr
				}
				if outcome == loopUnwind {
					return nil, retSig, nil
				}
				if outcome == loopStop {
					break
				}
				i++
			}
		} else {
			lo := coll.Start.(value.Char)
			hi := coll.End.(value.Char)
			i := 0
			for v := lo; charRangeContinues(v, hi, coll.Inclusive); v++ {
				outcome, retSig, rerr := e.runForBody(n, sc, v, i, nil)
				if rerr != nil {
					return nil, nil, rerr
				}
				if outcome == loopUnwind {
					return nil, retSig, nil
				}
				if outcome == loopStop {
					break
				}
				i++
			}
		}
	default:
		return nil, nil, newError(n.Line, "'for ... in' requires a list, string, or range, got %s", iterable.Kind())
	}
	return value.Nil{}, nil, nil
}

func rangeContinues(v, hi value.Number, inclusive bool) bool {
	if inclusive {
		return v <= hi
	}
	return v < hi
}

func charRangeContinues(v, hi value.Char, inclusive bool) bool {
	if inclusive {
		return v <= hi
	}
	return v < hi
}

// runForBody runs one loop iteration in a fresh child scope binding
// IterName (and CounterName, if requested) to elem/idx. After the body
// runs, if writeback is non-nil, the (possibly mutated) value bound to
// IterName is written back into the source collection.
func (e *Evaluator) runForBody(n *ast.ForStatement, sc *scope.Scope, elem value.Value, idx int, writeback func(value.Value)) (loopOutcome, *Signal, *EvalError) {
	bodyScope := scope.NewChild(sc)
	if err := bodyScope.DeclareVariable(n.IterName, elem); err != nil {
		return loopStop, nil, errAsEval(err, n.Line)
	}
	if n.CounterName != "" {
		if err := bodyScope.DeclareVariable(n.CounterName, value.Number(idx)); err != nil {
			return loopStop, nil, errAsEval(err, n.Line)
		}
	}
	_, sig, err := e.evalBlock(n.Body, bodyScope)
	if err != nil {
		return loopStop, nil, err
	}
	if writeback != nil {
		if cur, ok := bodyScope.Variables[n.IterName]; ok {
			writeback(cur)
		}
	}
	if sig != nil {
		switch sig.Kind {
		case SigBreak:
			return loopStop, nil, nil
		case SigContinue:
			return loopContinue, nil, nil
		default:
			return loopUnwind, sig, nil
		}
	}
	return loopContinue, nil, nil
}

func (e *Evaluator) evalReturn(n *ast.ReturnStatement, sc *scope.Scope) (value.Value, *Signal, *EvalError) {
	if n.Expr == nil {
		return nil, &Signal{Kind: SigReturn, Value: value.Nil{}}, nil
	}
	v, sig, err := e.eval(n.Expr, sc)
	if err != nil || sig != nil {
		return nil, sig, err
	}
	return nil, &Signal{Kind: SigReturn, Value: v}, nil
}

func (e *Evaluator) evalPrint(n *ast.PrintStatement, sc *scope.Scope) (value.Value, *Signal, *EvalError) {
	v, sig, err := e.eval(n.Expr, sc)
	if err != nil || sig != nil {
		return nil, sig, err
	}
	fmt.Fprintln(e.Out, value.Display(v))
	return value.Nil{}, nil, nil
}
