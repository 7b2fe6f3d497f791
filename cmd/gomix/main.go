/*
File    : gomix/cmd/gomix/main.go
Package : main
*/

// Command gomix is the Gomix interpreter's entry point. It supports file
// mode, interactive REPL mode, a line-oriented TCP REPL server mode, and
// --help/--version flags, modeled on the teacher's main/main.go.
package main

import (
	"net"
	"os"

	"github.com/fatih/color"

	"github.com/gomix-lang/gomix/eval"
	"github.com/gomix-lang/gomix/parser"
	"github.com/gomix-lang/gomix/prelude"
	"github.com/gomix-lang/gomix/repl"
	"github.com/gomix-lang/gomix/value"
)

// VERSION is the interpreter's version string.
var VERSION = "v0.1.0"

// AUTHOR is shown by --version and in the REPL banner.
var AUTHOR = "gomix-lang"

// LICENSE is shown by --version and in the REPL banner.
var LICENSE = "MIT"

// PROMPT is the REPL's line prompt.
var PROMPT = "gomix> "

// BANNER is the ASCII banner printed at REPL startup.
var BANNER = `
   ____                _
  / ___| ___  _ __ ___ (_)_  __
 | |  _ / _ \| '_ ` + "`" + ` _ \| \ \/ /
 | |_| | (_) | | | | | | |>  <
  \____|\___/|_| |_| |_|_/_/\_\
`

// LINE is the banner separator.
var LINE = "----------------------------------------------------------------"

var (
	redColor    = color.New(color.FgRed)
	yellowColor = color.New(color.FgYellow)
	cyanColor   = color.New(color.FgCyan)
)

func main() {
	if len(os.Args) > 1 {
		arg := os.Args[1]

		switch arg {
		case "--help", "-h":
			showHelp()
			os.Exit(0)
		case "--version", "-v":
			showVersion()
			os.Exit(0)
		case "server":
			if len(os.Args) < 3 {
				redColor.Fprintf(os.Stderr, "[USAGE ERROR] missing port for server mode. Usage: gomix server <port>\n")
				os.Exit(1)
			}
			startServer(os.Args[2])
			return
		}

		runFile(arg)
		return
	}

	repler := repl.New(BANNER, VERSION, AUTHOR, LINE, LICENSE, PROMPT)
	repler.Start(os.Stdout)
}

func showHelp() {
	cyanColor.Println("Gomix - a dynamically-typed, class-based scripting language")
	cyanColor.Println("")
	cyanColor.Println("USAGE:")
	yellowColor.Println("  gomix                     Start interactive REPL mode")
	yellowColor.Println("  gomix <path-to-file>      Execute a Gomix source file")
	yellowColor.Println("  gomix server <port>       Start a REPL server on the given port")
	yellowColor.Println("  gomix --help              Display this help message")
	yellowColor.Println("  gomix --version           Display version information")
	cyanColor.Println("")
	cyanColor.Println("REPL COMMANDS:")
	yellowColor.Println("  .exit                     Exit the REPL")
}

func showVersion() {
	cyanColor.Println("Gomix - a dynamically-typed, class-based scripting language")
	cyanColor.Printf("Version: %s\n", VERSION)
	cyanColor.Printf("License: %s\n", LICENSE)
	cyanColor.Printf("Author : %s\n", AUTHOR)
}

// runFile reads, parses and evaluates one source file, exiting 1 on any
// read/parse/prelude/runtime error per spec.md §6's exit-code rules.
func runFile(fileName string) {
	source, err := os.ReadFile(fileName)
	if err != nil {
		redColor.Fprintf(os.Stderr, "[FILE ERROR] could not read file '%s': %v\n", fileName, err)
		os.Exit(1)
	}
	executeWithRecovery(os.Stdout, string(source))
}

// startServer listens on port, handing each accepted connection its own
// Evaluator and REPL instance on a dedicated goroutine — connections never
// share interpreter state.
func startServer(port string) {
	listener, err := net.Listen("tcp", ":"+port)
	if err != nil {
		redColor.Fprintf(os.Stderr, "[SERVER ERROR] failed to start server on port %s: %v\n", port, err)
		os.Exit(1)
	}
	cyanColor.Printf("Gomix REPL server listening on :%s\n", port)
	defer listener.Close()

	for {
		conn, err := listener.Accept()
		if err != nil {
			redColor.Fprintf(os.Stderr, "[SERVER ERROR] failed to accept connection: %v\n", err)
			continue
		}
		go handleClient(conn)
	}
}

func handleClient(conn net.Conn) {
	defer conn.Close()
	cyanColor.Printf("new client connected from %s\n", conn.RemoteAddr())
	repler := repl.New(BANNER, VERSION, AUTHOR, LINE, LICENSE, PROMPT)
	repler.Start(conn)
	cyanColor.Printf("client disconnected from %s\n", conn.RemoteAddr())
}

// executeWithRecovery parses and evaluates source with panic recovery, the
// same defense the teacher's executeFileWithRecovery applies, and exits
// non-zero on any parse or runtime error.
func executeWithRecovery(w *os.File, source string) {
	defer func() {
		if recovered := recover(); recovered != nil {
			redColor.Fprintf(os.Stderr, "[RUNTIME ERROR] %v\n", recovered)
			os.Exit(1)
		}
	}()

	p := parser.New(source, nil)
	program := p.Parse()
	if p.HasErrors() {
		for _, msg := range p.Errors() {
			redColor.Fprintf(os.Stderr, "[PARSE ERROR] %s\n", msg)
		}
		os.Exit(1)
	}

	evaluator := eval.New(w)
	if preludeErr := prelude.Run(evaluator); preludeErr != nil {
		redColor.Fprintf(os.Stderr, "[PRELUDE ERROR] %s\n", preludeErr.Error())
		os.Exit(1)
	}

	result, evalErr := evaluator.Run(program)
	if evalErr != nil {
		redColor.Fprintf(os.Stderr, "%s\n", evalErr.Error())
		os.Exit(1)
	}
	if _, isNil := result.(value.Nil); !isNil {
		yellowColor.Fprintf(w, "%s\n", value.Display(result))
	}
}
