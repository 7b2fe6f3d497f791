/*
File    : gomix/eval/eval.go
Package : eval
*/

// Package eval implements a tree-walking evaluator over the ast package's
// closed node set. It switches on concrete node type rather than using a
// visitor, mirrors the lexer/parser's indentation- and scope-driven
// design, and keeps control-flow outcomes (Signal) entirely separate from
// runtime errors (EvalError) instead of using panic/recover for either.
package eval

import (
	"fmt"
	"io"
	"os"

	"github.com/gomix-lang/gomix/ast"
	"github.com/gomix-lang/gomix/scope"
	"github.com/gomix-lang/gomix/value"
)

// Evaluator runs a Gomix program against a single global scope. Re-using
// one Evaluator across multiple Run calls (as the REPL does) lets
// definitions from one input persist into the next.
type Evaluator struct {
	Global *scope.Scope
	Out    io.Writer
}

// New creates an Evaluator whose print statements write to out. A nil out
// defaults to os.Stdout.
func New(out io.Writer) *Evaluator {
	if out == nil {
		out = os.Stdout
	}
	return &Evaluator{Global: scope.NewGlobal(), Out: out}
}

// Run evaluates a top-level program. Unlike a nested Block, the program
// does not get its own child scope — its declarations land directly in
// Global, which is what lets every function and class in a file see every
// other one regardless of declaration order within a single Run call.
//
// It returns the value of the last statement, mirroring what a REPL wants
// to echo back, or a runtime error. A stray break/continue/return that
// escapes every enclosing loop or call is reported as a runtime error
// here, since the program itself isn't a loop or a call.
func (e *Evaluator) Run(program *ast.Block) (value.Value, *EvalError) {
	var result value.Value = value.Nil{}
	for _, stmt := range program.Stmts {
		v, sig, err := e.eval(stmt, e.Global)
		if err != nil {
			return nil, err
		}
		if sig != nil {
			return nil, stratifySignal(sig)
		}
		result = v
	}
	return result, nil
}

func stratifySignal(sig *Signal) *EvalError {
	switch sig.Kind {
	case SigBreak:
		return &EvalError{Msg: "break used outside of a loop"}
	case SigContinue:
		return &EvalError{Msg: "continue used outside of a loop"}
	case SigReturn:
		return &EvalError{Msg: "return used outside of a function"}
	default:
		return &EvalError{Msg: "unreachable signal"}
	}
}

// eval is the single dispatch point every other file in this package
// feeds into and is fed by. It returns exactly one of: a value (normal
// completion), a Signal (break/continue/return propagating outward), or
// an EvalError (a runtime error, which always takes precedence and halts
// evaluation up the call stack).
func (e *Evaluator) eval(node ast.Node, sc *scope.Scope) (value.Value, *Signal, *EvalError) {
	switch n := node.(type) {
	case *ast.Literal:
		return literalValue(n), nil, nil
	case *ast.Identifier:
		return e.evalIdentifier(n, sc)
	case *ast.Block:
		return e.evalBlock(n, scope.NewChild(sc))
	case *ast.ListExpression:
		return e.evalListExpression(n, sc)
	case *ast.RangeExpression:
		return e.evalRangeExpression(n, sc)

	case *ast.Not:
		return e.evalNot(n, sc)
	case *ast.Negation:
		return e.evalNegation(n, sc)
	case *ast.Addition:
		return e.evalArith(n.Left, n.Right, n.Line, sc, addOp)
	case *ast.Subtraction:
		return e.evalArith(n.Left, n.Right, n.Line, sc, subOp)
	case *ast.Multiplication:
		return e.evalArith(n.Left, n.Right, n.Line, sc, mulOp)
	case *ast.Division:
		return e.evalArith(n.Left, n.Right, n.Line, sc, divOp)
	case *ast.Equality:
		return e.evalEquality(n, sc)
	case *ast.LessThan:
		return e.evalComparison(n.Left, n.Right, n.Line, sc, lessOp)
	case *ast.GreaterThan:
		return e.evalComparison(n.Left, n.Right, n.Line, sc, greaterOp)
	case *ast.Or:
		return e.evalOr(n, sc)
	case *ast.And:
		return e.evalAnd(n, sc)
	case *ast.Subscript:
		return e.evalSubscript(n, sc)

	case *ast.VariableDeclaration:
		return nil, nil, errAsEval(sc.DeclareVariable(n.Name, value.Nil{}), 0)
	case *ast.VariableInstantiation:
		return e.evalVariableInstantiation(n, sc)
	case *ast.ConstantInstantiation:
		return e.evalConstantInstantiation(n, sc)
	case *ast.VariableAssignment:
		return e.evalVariableAssignment(n, sc)
	case *ast.SubscriptAssignment:
		return e.evalSubscriptAssignment(n, sc)
	case *ast.MemberReferenceAssignment:
		return e.evalMemberAssignment(n, sc)

	case *ast.IfStatement:
		return e.evalIf(n, sc)
	case *ast.WhileStatement:
		return e.evalWhile(n, sc)
	case *ast.ForStatement:
		return e.evalFor(n, sc)
	case *ast.BreakStatement:
		return nil, &Signal{Kind: SigBreak}, nil
	case *ast.ContinueStatement:
		return nil, &Signal{Kind: SigContinue}, nil
	case *ast.ReturnStatement:
		return e.evalReturn(n, sc)
	case *ast.PrintStatement:
		return e.evalPrint(n, sc)

	case *ast.LambdaExpression:
		return &value.Lambda{Node: n}, nil, nil
	case *ast.ClassDeclaration:
		return e.evalClassDeclaration(n, sc)
	case *ast.MemberReference:
		return e.evalMemberReference(n, sc)
	case *ast.BoundMethod:
		return nil, nil, newError(n.Line, "a method reference must be called, not used as a value")
	case *ast.Invocation:
		return e.evalInvocation(n, sc)
	case *ast.SuperStatement:
		return e.evalSuperStatement(n, sc)

	default:
		return nil, nil, newError(0, "internal: unhandled AST node %T", node)
	}
}

// evalBlock evaluates stmts against sc in order, stopping as soon as a
// runtime error or a Signal surfaces.
func (e *Evaluator) evalBlock(block *ast.Block, sc *scope.Scope) (value.Value, *Signal, *EvalError) {
	var result value.Value = value.Nil{}
	for _, stmt := range block.Stmts {
		v, sig, err := e.eval(stmt, sc)
		if err != nil {
			return nil, nil, err
		}
		if sig != nil {
			return nil, sig, nil
		}
		result = v
	}
	return result, nil, nil
}

func literalValue(lit *ast.Literal) value.Value {
	switch v := lit.Value.(type) {
	case nil:
		return value.Nil{}
	case bool:
		return value.Boolean(v)
	case float32:
		return value.Number(v)
	case string:
		return value.NewString(v)
	case rune:
		return value.Char(v)
	default:
		panic(fmt.Sprintf("internal: unexpected literal payload %T", lit.Value))
	}
}

// asEval adapts a plain error from package scope into an *EvalError
// carrying a source line, or returns nil unchanged.
func errAsEval(err error, line int) *EvalError {
	if err == nil {
		return nil
	}
	return &EvalError{Line: line, Msg: err.Error()}
}
