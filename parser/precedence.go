/*
File    : gomix/parser/precedence.go
Package : parser
*/
package parser

import (
	"github.com/gomix-lang/gomix/ast"
	"github.com/gomix-lang/gomix/token"
)

// Precedence levels, lowest to highest binding. Assignment is
// right-associative; every other binary level is left-associative.
type Precedence int

const (
	LOWEST Precedence = iota
	ASSIGNMENT
	OR
	AND
	EQUALITY
	COMPARISON
	RANGE
	TERM
	FACTOR
	UNARY
	CALL
	PRIMARY
)

// registerGrammar wires every token kind to its prefix and/or infix
// parsing function and precedence. Called once from New.
func (p *Parser) registerGrammar() {
	// Prefix (nud) positions: literals, identifiers, grouping, unary
	// operators, list literals, lambda literals.
	p.registerPrefix(p.parseLiteralExpr, token.NIL, token.BOOL, token.NUMBER, token.STRING, token.CHAR)
	p.registerPrefix(p.parseIdentifierExpr, token.IDENT)
	p.registerPrefix(p.parseGrouping, token.LPAREN)
	p.registerPrefix(p.parseNot, token.NOT)
	p.registerPrefix(p.parseNegation, token.MINUS)
	p.registerPrefix(p.parseListLiteral, token.LBRACK)
	p.registerPrefix(p.parseLambdaLiteral, token.PIPE)

	// Infix (led) positions and their precedence.
	p.registerInfix(p.parseBinary, TERM, token.PLUS, token.MINUS)
	p.registerInfix(p.parseBinary, FACTOR, token.STAR, token.SLASH)
	p.registerInfix(p.parseBinary, EQUALITY, token.EQ, token.NEQ)
	p.registerInfix(p.parseBinary, COMPARISON, token.LT, token.GT, token.LE, token.GE)
	p.registerInfix(p.parseBinary, OR, token.OR)
	p.registerInfix(p.parseBinary, AND, token.AND)
	p.registerInfix(p.parseRange, RANGE, token.RANGE, token.RANGE_EQ)
	p.registerInfix(p.parseAssignment, ASSIGNMENT, token.ASSIGN)
	p.registerInfix(p.parseMemberAccess, CALL, token.DOT)
	p.registerInfix(p.parseSubscript, CALL, token.LBRACK)
	p.registerInfix(p.parseInvocation, CALL, token.LPAREN)
}

func (p *Parser) registerPrefix(fn prefixParseFn, kinds ...token.Kind) {
	for _, k := range kinds {
		p.prefixFuncs[k] = fn
	}
}

func (p *Parser) registerInfix(fn infixParseFn, prec Precedence, kinds ...token.Kind) {
	for _, k := range kinds {
		p.infixFuncs[k] = fn
		p.precedences[k] = prec
	}
}

// parseExpr is the Pratt loop: parse one prefix expression, then keep
// folding in infix operators whose precedence is strictly greater than
// minPrec. Callers pass an operator's own precedence to get left
// associativity, or one less than it to get right associativity.
func (p *Parser) parseExpr(minPrec Precedence) ast.Expr {
	prefix, ok := p.prefixFuncs[p.cur.Kind]
	if !ok {
		p.errorf(p.cur.Line, "unexpected token %s in expression", p.cur.Kind)
		p.advance()
		return &ast.Literal{}
	}
	left := prefix()

	for p.cur.Kind != token.EOS && p.cur.Kind != token.EOF {
		prec, ok := p.precedences[p.cur.Kind]
		if !ok || prec <= minPrec {
			break
		}
		infix, ok := p.infixFuncs[p.cur.Kind]
		if !ok {
			break
		}
		left = infix(left)
	}
	return left
}
