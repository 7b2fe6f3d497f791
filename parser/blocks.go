/*
File    : gomix/parser/blocks.go
Package : parser
*/
package parser

import (
	"github.com/gomix-lang/gomix/ast"
	"github.com/gomix-lang/gomix/token"
)

// finishStatement consumes the EOS that ends the statement just parsed.
// If the next token isn't EOS or EOF, something was left unconsumed on the
// line — record it and skip forward to the next statement boundary so one
// bad line doesn't cascade into spurious errors for the rest of the file.
func (p *Parser) finishStatement() {
	if p.cur.Kind == token.EOS {
		p.advance()
		return
	}
	if p.cur.Kind == token.EOF {
		return
	}
	p.errorf(p.cur.Line, "expected end of statement, got %s", p.cur.Kind)
	p.recover()
}

func (p *Parser) recover() {
	for p.cur.Kind != token.EOS && p.cur.Kind != token.EOF {
		p.advance()
	}
	if p.cur.Kind == token.EOS {
		p.advance()
	}
}

// parseHeaderBlock consumes the EOS ending a header line (if/while/for/fn/
// class/method/lambda) and parses the indented block that follows it.
func (p *Parser) parseHeaderBlock(headerIndent int) *ast.Block {
	p.finishStatement()
	return p.parseBlock(headerIndent)
}

// parseBlock reads statements whose indentation is strictly greater than
// headerIndent. The first such statement's indentation fixes the block's
// indentation; any later statement at a different (but still deeper)
// indentation is a syntax error rather than a silently nested sub-block —
// Gomix has no braces or end keywords to disambiguate that any other way.
func (p *Parser) parseBlock(headerIndent int) *ast.Block {
	block := &ast.Block{}
	blockIndent := -1

	for p.cur.Kind != token.EOF {
		if p.cur.Indentation <= headerIndent {
			break
		}
		if blockIndent == -1 {
			blockIndent = p.cur.Indentation
		} else if p.cur.Indentation != blockIndent {
			p.errorf(p.cur.Line, "inconsistent indentation in block")
			break
		}
		stmt := p.parseStatement()
		if stmt != nil {
			block.Stmts = append(block.Stmts, stmt)
		}
		p.finishStatement()
	}

	if blockIndent == -1 {
		p.errorf(p.cur.Line, "expected an indented block")
	}
	return block
}
