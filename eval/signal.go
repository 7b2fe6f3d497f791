/*
File    : gomix/eval/signal.go
Package : eval
*/
package eval

import "github.com/gomix-lang/gomix/value"

// SignalKind names an outcome of evaluating a statement that isn't a
// normal fall-through: break, continue, and return each unwind the call
// stack differently, but none of them is a runtime error.
type SignalKind int

const (
	SigNone SignalKind = iota
	SigBreak
	SigContinue
	SigReturn
)

// Signal is the explicit, non-error control-flow outcome of evaluating a
// statement. It is threaded back up through eval as an ordinary return
// value rather than unwound via panic/recover, so a while loop can tell
// "this block wants to break" apart from "this block raised an error"
// without resorting to sentinel error values.
type Signal struct {
	Kind  SignalKind
	Value value.Value // meaningful only when Kind == SigReturn
}
