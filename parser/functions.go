/*
File    : gomix/parser/functions.go
Package : parser
*/
package parser

import (
	"github.com/gomix-lang/gomix/ast"
	"github.com/gomix-lang/gomix/token"
)

// parseParamList parses a parenthesized parameter list. A parameter
// prefixed with `*` is variadic and must be last; it collects the
// remaining call arguments into a list.
func (p *Parser) parseParamList() ([]string, bool) {
	if p.cur.Kind != token.LPAREN {
		p.errorf(p.cur.Line, "expected '(' to begin parameter list, got %s", p.cur.Kind)
		return nil, false
	}
	p.advance()

	var params []string
	varargs := false
	for p.cur.Kind != token.RPAREN && p.cur.Kind != token.EOF {
		isVar := false
		if p.cur.Kind == token.STAR {
			isVar = true
			p.advance()
		}
		if p.cur.Kind != token.IDENT {
			p.errorf(p.cur.Line, "expected parameter name, got %s", p.cur.Kind)
			break
		}
		params = append(params, p.cur.Source)
		p.advance()
		if isVar {
			varargs = true
		}
		if p.cur.Kind != token.COMMA {
			break
		}
		p.advance()
	}
	if p.cur.Kind == token.RPAREN {
		p.advance()
	} else {
		p.errorf(p.cur.Line, "expected ')' to close parameter list, got %s", p.cur.Kind)
	}
	return params, varargs
}

// parseNamedFn parses `fn name(params) <EOS> body`, desugared into a
// ConstantInstantiation so a named function is just sugar for binding a
// Lambda to a constant — the same as `const name = |params| ...` would be,
// but with a block body and a name the lambda itself carries.
func (p *Parser) parseNamedFn() ast.Stmt {
	headerIndent := p.cur.Indentation
	p.advance() // 'fn'
	if p.cur.Kind != token.IDENT {
		p.errorf(p.cur.Line, "expected function name after 'fn', got %s", p.cur.Kind)
		return &ast.ConstantInstantiation{}
	}
	name := p.cur.Source
	p.advance()

	params, varargs := p.parseParamList()
	p.lambdaDepth++
	body := p.parseHeaderBlock(headerIndent)
	p.lambdaDepth--
	lambda := &ast.LambdaExpression{Name: name, Params: params, Varargs: varargs, Body: body}
	return &ast.ConstantInstantiation{Name: name, Init: lambda}
}

// parseLambdaLiteral parses an anonymous `|params| expr` or
// `|params| <EOS> body`. The single-expression form implicitly returns
// the expression's value, equivalent to a body of just `return expr`.
func (p *Parser) parseLambdaLiteral() ast.Expr {
	headerIndent := p.cur.Indentation
	p.advance() // '|'

	var params []string
	varargs := false
	for p.cur.Kind != token.PIPE && p.cur.Kind != token.EOF {
		isVar := false
		if p.cur.Kind == token.STAR {
			isVar = true
			p.advance()
		}
		if p.cur.Kind != token.IDENT {
			p.errorf(p.cur.Line, "expected parameter name in lambda, got %s", p.cur.Kind)
			break
		}
		params = append(params, p.cur.Source)
		p.advance()
		if isVar {
			varargs = true
		}
		if p.cur.Kind != token.COMMA {
			break
		}
		p.advance()
	}
	if p.cur.Kind == token.PIPE {
		p.advance()
	} else {
		p.errorf(p.cur.Line, "expected closing '|' in lambda parameters, got %s", p.cur.Kind)
	}

	var body *ast.Block
	if p.cur.Kind == token.EOS {
		p.lambdaDepth++
		body = p.parseHeaderBlock(headerIndent)
		p.lambdaDepth--
	} else {
		expr := p.parseExpr(LOWEST)
		body = &ast.Block{Stmts: []ast.Stmt{&ast.ReturnStatement{Expr: expr}}}
	}
	return &ast.LambdaExpression{Params: params, Varargs: varargs, Body: body}
}
