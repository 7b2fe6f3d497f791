/*
File    : gomix/parser/statements.go
Package : parser
*/
package parser

import (
	"github.com/gomix-lang/gomix/ast"
	"github.com/gomix-lang/gomix/token"
)

// parseStatement dispatches on the current token's keyword, falling back
// to a plain expression statement (which covers bare calls and, via the
// `=` infix operator, assignment).
func (p *Parser) parseStatement() ast.Stmt {
	switch p.cur.Kind {
	case token.VAR:
		return p.parseVarDecl()
	case token.CONST:
		return p.parseConstDecl()
	case token.FN:
		return p.parseNamedFn()
	case token.CLASS:
		return p.parseClassDecl()
	case token.IF:
		return p.parseIf()
	case token.WHILE:
		return p.parseWhile()
	case token.FOR:
		return p.parseFor()
	case token.BREAK:
		line := p.cur.Line
		if p.loopDepth == 0 {
			p.errorf(line, "'break' used outside of a loop")
		}
		p.advance()
		return &ast.BreakStatement{}
	case token.CONTINUE:
		line := p.cur.Line
		if p.loopDepth == 0 {
			p.errorf(line, "'continue' used outside of a loop")
		}
		p.advance()
		return &ast.ContinueStatement{}
	case token.RETURN:
		return p.parseReturn()
	case token.PRINT:
		return p.parsePrint()
	case token.SUPER:
		return p.parseSuperStatement()
	default:
		return p.parseExpr(LOWEST)
	}
}

func (p *Parser) parseVarDecl() ast.Stmt {
	p.advance() // 'var'
	if p.cur.Kind != token.IDENT {
		p.errorf(p.cur.Line, "expected identifier after 'var', got %s", p.cur.Kind)
		return &ast.VariableDeclaration{}
	}
	name := p.cur.Source
	p.advance()
	if p.cur.Kind == token.ASSIGN {
		p.advance()
		return &ast.VariableInstantiation{Name: name, Init: p.parseExpr(LOWEST)}
	}
	return &ast.VariableDeclaration{Name: name}
}

func (p *Parser) parseConstDecl() ast.Stmt {
	p.advance() // 'const'
	if p.cur.Kind != token.IDENT {
		p.errorf(p.cur.Line, "expected identifier after 'const', got %s", p.cur.Kind)
		return &ast.ConstantInstantiation{}
	}
	name := p.cur.Source
	p.advance()
	if p.cur.Kind != token.ASSIGN {
		p.errorf(p.cur.Line, "const %s requires an initializer", name)
		return &ast.ConstantInstantiation{Name: name}
	}
	p.advance()
	return &ast.ConstantInstantiation{Name: name, Init: p.parseExpr(LOWEST)}
}

func (p *Parser) parseReturn() ast.Stmt {
	line := p.cur.Line
	if p.lambdaDepth == 0 {
		p.errorf(line, "'return' used outside of a function")
	}
	p.advance() // 'return'
	if p.cur.Kind == token.EOS || p.cur.Kind == token.EOF {
		return &ast.ReturnStatement{}
	}
	return &ast.ReturnStatement{Expr: p.parseExpr(LOWEST)}
}

func (p *Parser) parsePrint() ast.Stmt {
	p.advance() // 'print'
	return &ast.PrintStatement{Expr: p.parseExpr(LOWEST)}
}

// parseSuperStatement parses a bare `super(args...)` call. It's only
// meaningful inside a subclass's init method; that constraint is enforced
// by the evaluator, not the parser.
func (p *Parser) parseSuperStatement() ast.Stmt {
	line := p.cur.Line
	p.advance() // 'super'
	if p.cur.Kind != token.LPAREN {
		p.errorf(p.cur.Line, "expected '(' after 'super', got %s", p.cur.Kind)
		return &ast.SuperStatement{Line: line}
	}
	return &ast.SuperStatement{Args: p.parseArgList(), Line: line}
}
