/*
File    : gomix/parser/control.go
Package : parser
*/
package parser

import (
	"github.com/gomix-lang/gomix/ast"
	"github.com/gomix-lang/gomix/token"
)

// parseIf parses `if cond <EOS> then-block`, followed optionally by a
// chain of `elif cond <EOS> block` at the same indentation as the `if`,
// and/or a trailing `else <EOS> block`. The elif chain is desugared into
// nested IfStatements held in Else.
func (p *Parser) parseIf() ast.Stmt {
	headerIndent := p.cur.Indentation
	p.advance() // 'if'
	cond := p.parseExpr(LOWEST)
	then := p.parseHeaderBlock(headerIndent)
	stmt := &ast.IfStatement{Cond: cond, Then: then}
	stmt.Else = p.parseElseChain(headerIndent)
	return stmt
}

func (p *Parser) parseElseChain(headerIndent int) ast.Stmt {
	switch {
	case p.cur.Kind == token.ELIF && p.cur.Indentation == headerIndent:
		p.advance() // 'elif'
		cond := p.parseExpr(LOWEST)
		then := p.parseHeaderBlock(headerIndent)
		nested := &ast.IfStatement{Cond: cond, Then: then}
		nested.Else = p.parseElseChain(headerIndent)
		return nested
	case p.cur.Kind == token.ELSE && p.cur.Indentation == headerIndent:
		p.advance() // 'else'
		return p.parseHeaderBlock(headerIndent)
	default:
		return nil
	}
}

func (p *Parser) parseWhile() ast.Stmt {
	headerIndent := p.cur.Indentation
	p.advance() // 'while'
	cond := p.parseExpr(LOWEST)
	p.loopDepth++
	body := p.parseHeaderBlock(headerIndent)
	p.loopDepth--
	return &ast.WhileStatement{Cond: cond, Body: body}
}

// parseFor parses `for iter[, counter] in iterable <EOS> body`.
func (p *Parser) parseFor() ast.Stmt {
	headerIndent := p.cur.Indentation
	line := p.cur.Line
	p.advance() // 'for'

	if p.cur.Kind != token.IDENT {
		p.errorf(p.cur.Line, "expected loop variable name, got %s", p.cur.Kind)
	}
	iterName := p.cur.Source
	p.advance()

	counterName := ""
	if p.cur.Kind == token.COMMA {
		p.advance()
		if p.cur.Kind != token.IDENT {
			p.errorf(p.cur.Line, "expected counter variable name, got %s", p.cur.Kind)
		} else {
			counterName = p.cur.Source
			p.advance()
		}
	}

	if p.cur.Kind != token.IN {
		p.errorf(p.cur.Line, "expected 'in' in for statement, got %s", p.cur.Kind)
	} else {
		p.advance()
	}

	iterable := p.parseExpr(LOWEST)
	p.loopDepth++
	body := p.parseHeaderBlock(headerIndent)
	p.loopDepth--
	return &ast.ForStatement{IterName: iterName, CounterName: counterName, Iterable: iterable, Body: body, Line: line}
}
