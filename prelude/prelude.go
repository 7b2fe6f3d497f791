/*
File    : gomix/prelude/prelude.go
Package : prelude
*/

// Package prelude holds the small built-in Gomix source fragment that's
// evaluated into the global scope before every user program (spec.md §6).
// It is parsed and run by the same lexer/parser/evaluator as user code —
// there is no special-cased Go builtin standing in for it.
package prelude

import (
	"github.com/gomix-lang/gomix/eval"
	"github.com/gomix-lang/gomix/parser"
)

// Source defines the String class with its one class method, concat,
// which folds the textual form of every argument into an accumulator
// using the native concat method already exposed on String receivers.
const Source = `
class String
    class.fn concat(*ss)
        var acc = ""
        for s in ss
            acc.concat(s)
        return acc
`

// Run parses and evaluates Source into e's global scope. Called once, by
// the CLI and the REPL, before any user input is evaluated.
func Run(e *eval.Evaluator) *eval.EvalError {
	p := parser.New(Source, nil)
	program := p.Parse()
	if p.HasErrors() {
		panic("internal: prelude source failed to parse: " + p.Errors()[0])
	}
	_, err := e.Run(program)
	return err
}
