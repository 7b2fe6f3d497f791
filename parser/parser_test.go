package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gomix-lang/gomix/ast"
)

func parseProgram(t *testing.T, src string) (*ast.Block, *Parser) {
	t.Helper()
	p := New(src, nil)
	block := p.Parse()
	return block, p
}

func TestParser_ArithmeticPrecedence(t *testing.T) {
	block, p := parseProgram(t, "1 + 2 * 3\n")
	require.False(t, p.HasErrors(), p.Errors())
	require.Len(t, block.Stmts, 1)

	add, ok := block.Stmts[0].(*ast.Addition)
	require.True(t, ok)
	assert.IsType(t, &ast.Literal{}, add.Left)
	mul, ok := add.Right.(*ast.Multiplication)
	require.True(t, ok)
	assert.IsType(t, &ast.Literal{}, mul.Left)
	assert.IsType(t, &ast.Literal{}, mul.Right)
}

func TestParser_ComparisonDesugarsLEandGE(t *testing.T) {
	block, p := parseProgram(t, "a <= b\n")
	require.False(t, p.HasErrors(), p.Errors())
	not, ok := block.Stmts[0].(*ast.Not)
	require.True(t, ok)
	_, ok = not.Expr.(*ast.GreaterThan)
	assert.True(t, ok)
}

func TestParser_AssignmentIsRightAssociative(t *testing.T) {
	block, p := parseProgram(t, "a = b = 1\n")
	require.False(t, p.HasErrors(), p.Errors())
	outer, ok := block.Stmts[0].(*ast.VariableAssignment)
	require.True(t, ok)
	assert.Equal(t, "a", outer.Name)
	inner, ok := outer.RHS.(*ast.VariableAssignment)
	require.True(t, ok)
	assert.Equal(t, "b", inner.Name)
}

func TestParser_CallOnMemberBecomesBoundMethod(t *testing.T) {
	block, p := parseProgram(t, "obj.method(1, 2)\n")
	require.False(t, p.HasErrors(), p.Errors())
	inv, ok := block.Stmts[0].(*ast.Invocation)
	require.True(t, ok)
	bm, ok := inv.Callee.(*ast.BoundMethod)
	require.True(t, ok)
	assert.Equal(t, "method", bm.Member)
	assert.Len(t, inv.Args, 2)
}

func TestParser_MemberReferenceWithoutCallStaysPlain(t *testing.T) {
	block, p := parseProgram(t, "obj.field\n")
	require.False(t, p.HasErrors(), p.Errors())
	_, ok := block.Stmts[0].(*ast.MemberReference)
	assert.True(t, ok)
}

func TestParser_SubscriptAssignment(t *testing.T) {
	block, p := parseProgram(t, "xs[0] = 9\n")
	require.False(t, p.HasErrors(), p.Errors())
	_, ok := block.Stmts[0].(*ast.SubscriptAssignment)
	assert.True(t, ok)
}

func TestParser_IfElifElse(t *testing.T) {
	src := "if a\n    print 1\nelif b\n    print 2\nelse\n    print 3\n"
	block, p := parseProgram(t, src)
	require.False(t, p.HasErrors(), p.Errors())
	require.Len(t, block.Stmts, 1)

	top, ok := block.Stmts[0].(*ast.IfStatement)
	require.True(t, ok)
	require.Len(t, top.Then.Stmts, 1)

	mid, ok := top.Else.(*ast.IfStatement)
	require.True(t, ok)
	require.Len(t, mid.Then.Stmts, 1)

	elseBlock, ok := mid.Else.(*ast.Block)
	require.True(t, ok)
	require.Len(t, elseBlock.Stmts, 1)
}

func TestParser_WhileLoop(t *testing.T) {
	block, p := parseProgram(t, "while x\n    x = x - 1\n")
	require.False(t, p.HasErrors(), p.Errors())
	ws, ok := block.Stmts[0].(*ast.WhileStatement)
	require.True(t, ok)
	require.Len(t, ws.Body.Stmts, 1)
}

func TestParser_ForLoopWithCounter(t *testing.T) {
	block, p := parseProgram(t, "for item, i in items\n    print item\n")
	require.False(t, p.HasErrors(), p.Errors())
	fs, ok := block.Stmts[0].(*ast.ForStatement)
	require.True(t, ok)
	assert.Equal(t, "item", fs.IterName)
	assert.Equal(t, "i", fs.CounterName)
}

func TestParser_RangeInclusiveAndExclusive(t *testing.T) {
	block, p := parseProgram(t, "1..5\n1..=5\n")
	require.False(t, p.HasErrors(), p.Errors())
	r1, ok := block.Stmts[0].(*ast.RangeExpression)
	require.True(t, ok)
	assert.False(t, r1.Inclusive)
	r2, ok := block.Stmts[1].(*ast.RangeExpression)
	require.True(t, ok)
	assert.True(t, r2.Inclusive)
}

func TestParser_NamedFnDesugarsToConstant(t *testing.T) {
	block, p := parseProgram(t, "fn add(a, b)\n    return a + b\n")
	require.False(t, p.HasErrors(), p.Errors())
	decl, ok := block.Stmts[0].(*ast.ConstantInstantiation)
	require.True(t, ok)
	assert.Equal(t, "add", decl.Name)
	lambda, ok := decl.Init.(*ast.LambdaExpression)
	require.True(t, ok)
	assert.Equal(t, []string{"a", "b"}, lambda.Params)
}

func TestParser_VarargsParameter(t *testing.T) {
	block, p := parseProgram(t, "fn collect(*rest)\n    return rest\n")
	require.False(t, p.HasErrors(), p.Errors())
	decl := block.Stmts[0].(*ast.ConstantInstantiation)
	lambda := decl.Init.(*ast.LambdaExpression)
	assert.True(t, lambda.Varargs)
	assert.Equal(t, []string{"rest"}, lambda.Params)
}

func TestParser_AnonymousLambdaExpressionBodyImplicitlyReturns(t *testing.T) {
	block, p := parseProgram(t, "const inc = |x| x + 1\n")
	require.False(t, p.HasErrors(), p.Errors())
	decl := block.Stmts[0].(*ast.ConstantInstantiation)
	lambda := decl.Init.(*ast.LambdaExpression)
	require.Len(t, lambda.Body.Stmts, 1)
	ret, ok := lambda.Body.Stmts[0].(*ast.ReturnStatement)
	require.True(t, ok)
	assert.IsType(t, &ast.Addition{}, ret.Expr)
}

func TestParser_ClassWithInheritanceAndClassMethod(t *testing.T) {
	src := "class Dog(Animal)\n    fn init(name)\n        self.name = name\n    class.fn make()\n        return Dog(\"Rex\")\n"
	block, p := parseProgram(t, src)
	require.False(t, p.HasErrors(), p.Errors())
	decl, ok := block.Stmts[0].(*ast.ClassDeclaration)
	require.True(t, ok)
	assert.Equal(t, "Dog", decl.Name)
	assert.Equal(t, "Animal", decl.SuperName)
	require.Len(t, decl.Methods, 1)
	assert.Equal(t, "init", decl.Methods[0].Name)
	require.Len(t, decl.ClassMethods, 1)
	assert.Equal(t, "make", decl.ClassMethods[0].Name)
}

func TestParser_SuperStatementInsideInit(t *testing.T) {
	src := "class Dog(Animal)\n    fn init(name)\n        super(name)\n"
	block, p := parseProgram(t, src)
	require.False(t, p.HasErrors(), p.Errors())
	decl := block.Stmts[0].(*ast.ClassDeclaration)
	body := decl.Methods[0].Body
	require.Len(t, body.Stmts, 1)
	_, ok := body.Stmts[0].(*ast.SuperStatement)
	assert.True(t, ok)
}

func TestParser_InconsistentIndentationIsReported(t *testing.T) {
	src := "if a\n    print 1\n      print 2\n"
	_, p := parseProgram(t, src)
	assert.True(t, p.HasErrors())
}

func TestParser_MissingParenRecoversAtNextStatement(t *testing.T) {
	src := "print (1\nprint 2\n"
	block, p := parseProgram(t, src)
	assert.True(t, p.HasErrors())
	require.Len(t, block.Stmts, 2)
	_, ok := block.Stmts[1].(*ast.PrintStatement)
	assert.True(t, ok)
}

func TestParser_ListLiteral(t *testing.T) {
	block, p := parseProgram(t, "[1, 2, 3]\n")
	require.False(t, p.HasErrors(), p.Errors())
	lst, ok := block.Stmts[0].(*ast.ListExpression)
	require.True(t, ok)
	assert.Len(t, lst.Elems, 3)
}
