/*
File    : gomix/parser/parser.go
Package : parser
*/

// Package parser implements a Pratt parser (top-down operator precedence)
// for Gomix. It turns a token stream from the lexer into the closed AST
// node set defined in package ast.
//
// The parser never panics on a malformed program: it records every error
// it finds (on itself and, if one was supplied, on an ErrorReporter) and
// recovers by skipping to the next end-of-statement token, so a single
// typo doesn't prevent the rest of the file from being checked.
//
// Blocks are delimited by indentation rather than braces or an `end`
// keyword: a header line (if/while/for/fn/class) is followed by one or
// more statement lines all sharing one indentation level strictly greater
// than the header's own.
package parser

import (
	"fmt"

	"github.com/gomix-lang/gomix/ast"
	"github.com/gomix-lang/gomix/lexer"
	"github.com/gomix-lang/gomix/token"
)

// Parser holds the token lookahead window and the parsing state for one
// source text.
type Parser struct {
	lex  *lexer.Lexer
	cur  token.Token
	next token.Token

	prefixFuncs map[token.Kind]prefixParseFn
	infixFuncs  map[token.Kind]infixParseFn
	precedences map[token.Kind]Precedence

	errors   []string
	reporter ErrorReporter

	loopDepth   int // > 0 while parsing a while/for body; gates break/continue
	lambdaDepth int // > 0 while parsing a fn/lambda body; gates return
}

type prefixParseFn func() ast.Expr
type infixParseFn func(left ast.Expr) ast.Expr

// New creates a Parser over src. reporter may be nil; errors are always
// collected on the Parser regardless.
func New(src string, reporter ErrorReporter) *Parser {
	p := &Parser{lex: lexer.New(src), reporter: reporter}
	p.prefixFuncs = make(map[token.Kind]prefixParseFn)
	p.infixFuncs = make(map[token.Kind]infixParseFn)
	p.precedences = make(map[token.Kind]Precedence)
	p.registerGrammar()
	p.advance()
	p.advance()
	return p
}

// advance shifts the two-token lookahead window forward by one.
func (p *Parser) advance() {
	p.cur = p.next
	p.next = p.lex.NextToken()
}

// errorf records a syntax error at line, forwarding it to the reporter if
// one was supplied.
func (p *Parser) errorf(line int, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	p.errors = append(p.errors, fmt.Sprintf("line %d: %s", line, msg))
	if p.reporter != nil {
		p.reporter.Report(line, msg)
	}
}

// HasErrors reports whether any syntax error was recorded.
func (p *Parser) HasErrors() bool { return len(p.errors) > 0 }

// Errors returns every syntax error recorded during parsing, in the order
// they were found.
func (p *Parser) Errors() []string { return p.errors }

// Parse consumes the entire token stream and returns the program as a
// top-level Block, the same node type used for every nested block — the
// evaluator walks both identically.
func (p *Parser) Parse() *ast.Block {
	program := &ast.Block{}
	for p.cur.Kind != token.EOF {
		stmt := p.parseStatement()
		if stmt != nil {
			program.Stmts = append(program.Stmts, stmt)
		}
		p.finishStatement()
	}
	return program
}
