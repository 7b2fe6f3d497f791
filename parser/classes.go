/*
File    : gomix/parser/classes.go
Package : parser
*/
package parser

import (
	"github.com/gomix-lang/gomix/ast"
	"github.com/gomix-lang/gomix/token"
)

// parseClassDecl parses:
//
//	class Name[(Super)] <EOS>
//	    method(params) <EOS>
//	        ...
//	    class.classMethod(params) <EOS>
//	        ...
//
// Instance methods and class methods (prefixed `class.`) may be freely
// interleaved; order is preserved in the resulting ClassDeclaration.
func (p *Parser) parseClassDecl() ast.Stmt {
	headerIndent := p.cur.Indentation
	line := p.cur.Line
	p.advance() // 'class'

	if p.cur.Kind != token.IDENT {
		p.errorf(p.cur.Line, "expected class name, got %s", p.cur.Kind)
		return &ast.ClassDeclaration{}
	}
	name := p.cur.Source
	p.advance()

	superName := ""
	if p.cur.Kind == token.LPAREN {
		p.advance()
		if p.cur.Kind != token.IDENT {
			p.errorf(p.cur.Line, "expected superclass name, got %s", p.cur.Kind)
		} else {
			superName = p.cur.Source
			p.advance()
		}
		if p.cur.Kind == token.RPAREN {
			p.advance()
		} else {
			p.errorf(p.cur.Line, "expected ')' after superclass name, got %s", p.cur.Kind)
		}
	}

	decl := &ast.ClassDeclaration{Name: name, SuperName: superName, Line: line}
	p.finishStatement()

	bodyIndent := -1
	for p.cur.Kind != token.EOF {
		if p.cur.Indentation <= headerIndent {
			break
		}
		if bodyIndent == -1 {
			bodyIndent = p.cur.Indentation
		} else if p.cur.Indentation != bodyIndent {
			p.errorf(p.cur.Line, "inconsistent indentation in class body")
			break
		}
		p.parseClassMember(&decl.Methods, &decl.ClassMethods)
	}
	if bodyIndent == -1 {
		p.errorf(p.cur.Line, "expected at least one method in class %s", name)
	}
	return decl
}

// parseClassMember parses one `fn`-headed method (optionally prefixed
// `class.` for a class method) and its body, appending the resulting
// lambda to *methods or *classMethods accordingly.
func (p *Parser) parseClassMember(methods, classMethods *[]*ast.LambdaExpression) *ast.LambdaExpression {
	headerIndent := p.cur.Indentation
	isClassMethod := false
	if p.cur.Kind == token.CLASS {
		isClassMethod = true
		p.advance()
		if p.cur.Kind == token.DOT {
			p.advance()
		} else {
			p.errorf(p.cur.Line, "expected '.' after 'class' in class-method header, got %s", p.cur.Kind)
		}
	}

	if p.cur.Kind != token.FN {
		p.errorf(p.cur.Line, "expected 'fn' in method header, got %s", p.cur.Kind)
		p.recover()
		return nil
	}
	p.advance() // 'fn'

	if p.cur.Kind != token.IDENT {
		p.errorf(p.cur.Line, "expected method name, got %s", p.cur.Kind)
		p.recover()
		return nil
	}
	name := p.cur.Source
	p.advance()

	params, varargs := p.parseParamList()
	p.lambdaDepth++
	body := p.parseHeaderBlock(headerIndent)
	p.lambdaDepth--
	lambda := &ast.LambdaExpression{Name: name, Params: params, Varargs: varargs, Body: body}

	if isClassMethod {
		*classMethods = append(*classMethods, lambda)
	} else {
		*methods = append(*methods, lambda)
	}
	return lambda
}
