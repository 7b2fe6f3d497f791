/*
File    : gomix/repl/repl.go
Package : repl
*/

// Package repl implements the interactive Read-Eval-Print Loop for Gomix:
// line editing and history via chzyer/readline, colored output via
// fatih/color, and per-line panic recovery so a single bad input can't
// kill the session.
package repl

import (
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/gomix-lang/gomix/eval"
	"github.com/gomix-lang/gomix/parser"
	"github.com/gomix-lang/gomix/prelude"
	"github.com/gomix-lang/gomix/value"
)

var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// Repl holds the cosmetic configuration for one interactive session. The
// same zero-value-safe fields the teacher's REPL exposed are kept so a
// caller (cmd/gomix) can brand the banner without touching this package.
type Repl struct {
	Banner  string
	Version string
	Author  string
	Line    string
	License string
	Prompt  string
}

// New creates a Repl with the given cosmetic fields.
func New(banner, version, author, line, license, prompt string) *Repl {
	return &Repl{Banner: banner, Version: version, Author: author, Line: line, License: license, Prompt: prompt}
}

func (r *Repl) printBanner(w io.Writer) {
	blueColor.Fprintf(w, "%s\n", r.Line)
	greenColor.Fprintf(w, "%s\n", r.Banner)
	blueColor.Fprintf(w, "%s\n", r.Line)
	yellowColor.Fprintln(w, "Version: "+r.Version+" | Author: "+r.Author+" | License: "+r.License)
	blueColor.Fprintf(w, "%s\n", r.Line)
	cyanColor.Fprintf(w, "%s\n", "Welcome to Gomix!")
	cyanColor.Fprintf(w, "%s\n", "Type your code and press enter")
	cyanColor.Fprintf(w, "%s\n", "Type '.exit' to quit")
	cyanColor.Fprintf(w, "%s\n", "Use up/down arrows to navigate command history")
	blueColor.Fprintf(w, "%s\n", r.Line)
}

// Start runs the REPL loop over w until the user exits or the input
// stream ends. One Evaluator is reused across every line, so definitions
// from earlier lines persist into later ones.
func (r *Repl) Start(w io.Writer) {
	r.printBanner(w)

	rl, err := readline.New(r.Prompt)
	if err != nil {
		panic(err)
	}
	defer rl.Close()

	evaluator := eval.New(w)
	if preludeErr := prelude.Run(evaluator); preludeErr != nil {
		redColor.Fprintf(w, "[PRELUDE ERROR] %s\n", preludeErr.Error())
	}

	for {
		line, err := rl.Readline()
		if err != nil {
			io.WriteString(w, "Good Bye!\n")
			return
		}

		line = strings.Trim(line, " \n\t\r")
		if line == "" {
			continue
		}
		if line == ".exit" {
			io.WriteString(w, "Good Bye!\n")
			return
		}
		rl.SaveHistory(line)

		r.executeLine(w, line, evaluator)
	}
}

// executeLine parses and evaluates one line of input, recovering from any
// panic so a bug in a single statement never takes down the session.
func (r *Repl) executeLine(w io.Writer, line string, evaluator *eval.Evaluator) {
	defer func() {
		if recovered := recover(); recovered != nil {
			redColor.Fprintf(w, "[RUNTIME ERROR] %v\n", recovered)
		}
	}()

	p := parser.New(line, nil)
	program := p.Parse()

	if p.HasErrors() {
		for _, msg := range p.Errors() {
			redColor.Fprintf(w, "%s\n", msg)
		}
		return
	}

	result, evalErr := evaluator.Run(program)
	if evalErr != nil {
		redColor.Fprintf(w, "%s\n", evalErr.Error())
		return
	}
	if _, isNil := result.(value.Nil); !isNil {
		yellowColor.Fprintf(w, "%s\n", value.Display(result))
	}
}
