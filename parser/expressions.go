/*
File    : gomix/parser/expressions.go
Package : parser
*/
package parser

import (
	"github.com/gomix-lang/gomix/ast"
	"github.com/gomix-lang/gomix/token"
)

// parseLiteralExpr handles nil, true/false, numbers, strings, and chars —
// the lexer already computed the Go-native value, so the AST just carries
// it through.
func (p *Parser) parseLiteralExpr() ast.Expr {
	lit := &ast.Literal{Value: p.cur.Literal}
	p.advance()
	return lit
}

func (p *Parser) parseIdentifierExpr() ast.Expr {
	name := p.cur.Source
	line := p.cur.Line
	p.advance()
	return &ast.Identifier{Name: name, Line: line}
}

func (p *Parser) parseGrouping() ast.Expr {
	p.advance() // '('
	expr := p.parseExpr(LOWEST)
	if p.cur.Kind == token.RPAREN {
		p.advance()
	} else {
		p.errorf(p.cur.Line, "expected ')' to close grouped expression, got %s", p.cur.Kind)
	}
	return expr
}

func (p *Parser) parseNot() ast.Expr {
	line := p.cur.Line
	p.advance() // '!'
	return &ast.Not{Expr: p.parseExpr(UNARY), Line: line}
}

func (p *Parser) parseNegation() ast.Expr {
	line := p.cur.Line
	p.advance() // '-'
	return &ast.Negation{Expr: p.parseExpr(UNARY), Line: line}
}

func (p *Parser) parseListLiteral() ast.Expr {
	p.advance() // '['
	var elems []ast.Expr
	for p.cur.Kind != token.RBRACK && p.cur.Kind != token.EOF {
		elems = append(elems, p.parseExpr(LOWEST))
		if p.cur.Kind != token.COMMA {
			break
		}
		p.advance()
	}
	if p.cur.Kind == token.RBRACK {
		p.advance()
	} else {
		p.errorf(p.cur.Line, "expected ']' to close list literal, got %s", p.cur.Kind)
	}
	return &ast.ListExpression{Elems: elems}
}

// parseBinary handles every binop that maps directly, or via a small
// desugaring, onto the closed ast binary-op set: <= and >= desugar to a
// negated GreaterThan/LessThan, and != desugars to a negated Equality, so
// the AST never needs its own node for them.
func (p *Parser) parseBinary(left ast.Expr) ast.Expr {
	opKind := p.cur.Kind
	line := p.cur.Line
	prec := p.precedences[opKind]
	p.advance()
	right := p.parseExpr(prec)

	switch opKind {
	case token.PLUS:
		return &ast.Addition{Left: left, Right: right, Line: line}
	case token.MINUS:
		return &ast.Subtraction{Left: left, Right: right, Line: line}
	case token.STAR:
		return &ast.Multiplication{Left: left, Right: right, Line: line}
	case token.SLASH:
		return &ast.Division{Left: left, Right: right, Line: line}
	case token.EQ:
		return &ast.Equality{Left: left, Right: right}
	case token.NEQ:
		return &ast.Not{Expr: &ast.Equality{Left: left, Right: right}, Line: line}
	case token.LT:
		return &ast.LessThan{Left: left, Right: right, Line: line}
	case token.GT:
		return &ast.GreaterThan{Left: left, Right: right, Line: line}
	case token.LE:
		return &ast.Not{Expr: &ast.GreaterThan{Left: left, Right: right, Line: line}, Line: line}
	case token.GE:
		return &ast.Not{Expr: &ast.LessThan{Left: left, Right: right, Line: line}, Line: line}
	case token.OR:
		return &ast.Or{Left: left, Right: right}
	case token.AND:
		return &ast.And{Left: left, Right: right}
	default:
		p.errorf(line, "internal: unhandled binary operator %s", opKind)
		return left
	}
}

func (p *Parser) parseRange(left ast.Expr) ast.Expr {
	inclusive := p.cur.Kind == token.RANGE_EQ
	p.advance()
	right := p.parseExpr(RANGE)
	return &ast.RangeExpression{Lo: left, Hi: right, Inclusive: inclusive}
}

// parseAssignment is right-associative (`a = b = c` assigns c to b, then
// b's value to a), so the RHS is parsed one level below ASSIGNMENT. The
// left operand, already parsed as a plain expression, must collapse to an
// assignable form; anything else is a syntax error.
func (p *Parser) parseAssignment(left ast.Expr) ast.Expr {
	line := p.cur.Line
	p.advance() // '='
	rhs := p.parseExpr(ASSIGNMENT - 1)

	switch l := left.(type) {
	case *ast.Identifier:
		return &ast.VariableAssignment{Name: l.Name, RHS: rhs, Line: line}
	case *ast.Subscript:
		return &ast.SubscriptAssignment{List: l.List, Index: l.Index, RHS: rhs, Line: line}
	case *ast.MemberReference:
		return &ast.MemberReferenceAssignment{Recv: l.Recv, Member: l.Member, RHS: rhs, Line: line}
	default:
		p.errorf(line, "left side of '=' is not assignable")
		return rhs
	}
}

func (p *Parser) parseMemberAccess(left ast.Expr) ast.Expr {
	line := p.cur.Line
	p.advance() // '.'
	if p.cur.Kind != token.IDENT {
		p.errorf(p.cur.Line, "expected member name after '.', got %s", p.cur.Kind)
		return left
	}
	member := p.cur.Source
	p.advance()
	return &ast.MemberReference{Recv: left, Member: member, Line: line}
}

func (p *Parser) parseSubscript(left ast.Expr) ast.Expr {
	line := p.cur.Line
	p.advance() // '['
	index := p.parseExpr(LOWEST)
	if p.cur.Kind == token.RBRACK {
		p.advance()
	} else {
		p.errorf(p.cur.Line, "expected ']' to close subscript, got %s", p.cur.Kind)
	}
	return &ast.Subscript{List: left, Index: index, Line: line}
}

// parseInvocation is the `(` infix handler. A MemberReference callee is
// rewritten to a BoundMethod here — that variant only ever exists as an
// Invocation's callee (§ast.BoundMethod).
func (p *Parser) parseInvocation(left ast.Expr) ast.Expr {
	line := p.cur.Line
	if mr, ok := left.(*ast.MemberReference); ok {
		left = &ast.BoundMethod{Recv: mr.Recv, Member: mr.Member, Line: mr.Line}
	}
	args := p.parseArgList()
	return &ast.Invocation{Callee: left, Args: args, Line: line}
}

// parseArgList parses a parenthesized, comma-separated expression list.
// Assumes p.cur is the opening '('.
func (p *Parser) parseArgList() []ast.Expr {
	p.advance() // '('
	var args []ast.Expr
	for p.cur.Kind != token.RPAREN && p.cur.Kind != token.EOF {
		args = append(args, p.parseExpr(LOWEST))
		if p.cur.Kind != token.COMMA {
			break
		}
		p.advance()
	}
	if p.cur.Kind == token.RPAREN {
		p.advance()
	} else {
		p.errorf(p.cur.Line, "expected ')' to close argument list, got %s", p.cur.Kind)
	}
	return args
}
