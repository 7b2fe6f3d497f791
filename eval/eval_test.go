/*
File    : gomix/eval/eval_test.go
Package : eval
*/
package eval

import (
	"bytes"
	"testing"

	"github.com/gomix-lang/gomix/parser"
	"github.com/gomix-lang/gomix/value"
)

// run parses and evaluates src against a fresh Evaluator, failing the test
// immediately on a parse error so a test's assertions only ever deal with
// runtime behavior.
func run(t *testing.T, src string) (value.Value, *bytes.Buffer, *EvalError) {
	t.Helper()
	p := parser.New(src, nil)
	program := p.Parse()
	if p.HasErrors() {
		t.Fatalf("unexpected parse errors for %q: %v", src, p.Errors())
	}
	var out bytes.Buffer
	e := New(&out)
	result, err := e.Run(program)
	return result, &out, err
}

func TestScenarioA_ArithmeticAndPrint(t *testing.T) {
	_, out, err := run(t, "print 1 + 2 * 3\n")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.String() != "7\n" {
		t.Errorf("expected %q, got %q", "7\n", out.String())
	}
}

func TestScenarioB_FunctionAndRecursion(t *testing.T) {
	src := "fn fact(n)\n" +
		"    if n == 0\n" +
		"        return 1\n" +
		"    n * fact(n - 1)\n" +
		"print fact(5)\n"
	_, out, err := run(t, src)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.String() != "120\n" {
		t.Errorf("expected %q, got %q", "120\n", out.String())
	}
}

func TestScenarioC_ForOverRange(t *testing.T) {
	src := "for i in 1..=3\n    print i\n"
	_, out, err := run(t, src)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.String() != "1\n2\n3\n" {
		t.Errorf("expected %q, got %q", "1\n2\n3\n", out.String())
	}
}

func TestScenarioD_ListMutationViaFor(t *testing.T) {
	src := "var L = [1, 2, 3]\n" +
		"for x in L\n" +
		"    x = x * 10\n" +
		"print L\n"
	_, out, err := run(t, src)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.String() != "[10, 20, 30]\n" {
		t.Errorf("expected %q, got %q", "[10, 20, 30]\n", out.String())
	}
}

func TestScenarioE_ClassWithSuper(t *testing.T) {
	src := "class A\n" +
		"    fn init(x)\n" +
		"        self.x = x\n" +
		"class B(A)\n" +
		"    fn init(x, y)\n" +
		"        super(x)\n" +
		"        self.y = y\n" +
		"var b = B(1, 2)\n" +
		"print b\n"
	_, out, err := run(t, src)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.String() != "B(x: 1, y: 2)\n" {
		t.Errorf("expected %q, got %q", "B(x: 1, y: 2)\n", out.String())
	}
}

func TestScenarioF_PreludeStringConcat(t *testing.T) {
	p := parser.New(`print String.concat("a", 1, true)`+"\n", nil)
	program := p.Parse()
	if p.HasErrors() {
		t.Fatalf("unexpected parse errors: %v", p.Errors())
	}
	var out bytes.Buffer
	e := New(&out)
	if preludeErr := runPrelude(e); preludeErr != nil {
		t.Fatalf("unexpected prelude error: %v", preludeErr)
	}
	if _, err := e.Run(program); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.String() != "a1true\n" {
		t.Errorf("expected %q, got %q", "a1true\n", out.String())
	}
}

func TestProperty_PrecedenceCorrectness(t *testing.T) {
	result, _, err := run(t, "1 + 2 * 3 == 7")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result != value.Boolean(true) {
		t.Errorf("expected true, got %v", result)
	}

	result, _, err = run(t, "a = 1 + 2\na")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result != value.Number(3) {
		t.Errorf("expected 3, got %v", result)
	}
}

func TestProperty_ScopeIsolationAtCalls(t *testing.T) {
	src := "var secret = 1\n" +
		"fn peek()\n" +
		"    return secret\n" +
		"peek()\n"
	_, _, err := run(t, src)
	if err == nil {
		t.Fatalf("expected an unresolved-identifier error, got none")
	}
}

func TestProperty_ScopeIsolationSeesGlobals(t *testing.T) {
	src := "const LIMIT = 10\n" +
		"fn peek()\n" +
		"    return LIMIT\n" +
		"peek()\n"
	result, _, err := run(t, src)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result != value.Number(10) {
		t.Errorf("expected 10, got %v", result)
	}
}

func TestProperty_ConstantsAreWriteOnce(t *testing.T) {
	_, _, err := run(t, "const x = 1\nx = 2\n")
	if err == nil {
		t.Fatalf("expected a constant-rebinding error, got none")
	}

	_, _, err = run(t, "const x = 1\nconst x = 2\n")
	if err == nil {
		t.Fatalf("expected a duplicate-declaration error, got none")
	}
}

func TestProperty_ControlFlowBreakAndContinue(t *testing.T) {
	src := "var total = 0\n" +
		"for i in 1..=5\n" +
		"    if i == 4\n" +
		"        break\n" +
		"    if i == 2\n" +
		"        continue\n" +
		"    total = total + i\n" +
		"print total\n"
	_, out, err := run(t, src)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// i=1 adds 1, i=2 is skipped via continue, i=3 adds 3, i=4 breaks.
	if out.String() != "4\n" {
		t.Errorf("expected %q, got %q", "4\n", out.String())
	}
}

func TestProperty_ForLoopWriteBackOnString(t *testing.T) {
	src := `var s = "abc"` + "\n" +
		"for c in s\n" +
		"    c = 'z'\n" +
		"print s\n"
	_, out, err := run(t, src)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.String() != "zzz\n" {
		t.Errorf("expected %q, got %q", "zzz\n", out.String())
	}
}

func TestProperty_InheritanceMethodLookup(t *testing.T) {
	src := "class A\n" +
		"    fn init()\n" +
		"        self.tag = \"A\"\n" +
		"    fn f()\n" +
		"        return self.tag\n" +
		"class B(A)\n" +
		"    fn init()\n" +
		"        super()\n" +
		"print B().f()\n"
	_, out, err := run(t, src)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.String() != "A\n" {
		t.Errorf("expected %q, got %q", "A\n", out.String())
	}
}

func TestProperty_EqualityAcrossKinds(t *testing.T) {
	result, _, err := run(t, "class A\n    fn init()\n        self.v = 1\nclass B\n    fn init()\n        self.v = 1\nA() == B()")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result != value.Boolean(false) {
		t.Errorf("instances of different classes must never be equal, got %v", result)
	}

	result, _, err = run(t, "[1, 2] == [1, 2]")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result != value.Boolean(true) {
		t.Errorf("expected equal lists to compare equal, got %v", result)
	}

	result, _, err = run(t, "[1, 2] == [2, 1]")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result != value.Boolean(false) {
		t.Errorf("expected differently-ordered lists to compare unequal, got %v", result)
	}

	result, _, err = run(t, "(1..=3) == (1..=3)")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result != value.Boolean(true) {
		t.Errorf("expected identical ranges to compare equal, got %v", result)
	}
}

func TestProperty_ErrorContainmentAcrossTopLevelStatements(t *testing.T) {
	p := parser.New("var a = 1\nprint b\nprint a\n", nil)
	program := p.Parse()
	if p.HasErrors() {
		t.Fatalf("unexpected parse errors: %v", p.Errors())
	}
	e := New(&bytes.Buffer{})

	// First Run call hits the unresolved identifier in statement two and
	// halts without touching statement three.
	_, err := e.Run(program)
	if err == nil {
		t.Fatalf("expected an unresolved-identifier error, got none")
	}

	// But the binding from statement one survived, since Run evaluates
	// directly into Global rather than a scope that gets discarded.
	if v, ok := e.Global.Lookup("a"); !ok || v != value.Number(1) {
		t.Errorf("expected prior binding 'a' = 1 to survive the later error, got %v, %v", v, ok)
	}
}

func TestRangeExpression_RejectsMixedBoundTypes(t *testing.T) {
	_, _, err := run(t, `1..'a'`)
	if err == nil {
		t.Fatalf("expected a type error for mixed range bounds, got none")
	}
}

func TestForLoop_IteratesCharacterRange(t *testing.T) {
	src := "for c in 'a'..='c'\n    print c\n"
	_, out, err := run(t, src)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.String() != "a\nb\nc\n" {
		t.Errorf("expected %q, got %q", "a\nb\nc\n", out.String())
	}
}

func TestListBuiltins_AddInsertFindRemove(t *testing.T) {
	src := "var L = [1, 2]\n" +
		"L.add(3)\n" +
		"L.insert(0, 0)\n" +
		"var idx = L.find(2)\n" +
		"L.remove(idx)\n" +
		"print L\n"
	_, out, err := run(t, src)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.String() != "[0, 1, 3]\n" {
		t.Errorf("expected %q, got %q", "[0, 1, 3]\n", out.String())
	}
}

func TestMemberReference_LengthAndCapacity(t *testing.T) {
	result, _, err := run(t, `"hello".length`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result != value.Number(5) {
		t.Errorf("expected 5, got %v", result)
	}

	result, _, err = run(t, "[1, 2, 3].length")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result != value.Number(3) {
		t.Errorf("expected 3, got %v", result)
	}
}

func TestArityMismatch_LambdaCall(t *testing.T) {
	_, _, err := run(t, "fn add(a, b)\n    return a + b\nadd(1)\n")
	if err == nil {
		t.Fatalf("expected an arity-mismatch error, got none")
	}
}

func TestInitializerMisuse_NonNilReturnFromInit(t *testing.T) {
	_, _, err := run(t, "class A\n    fn init()\n        return 1\nA()\n")
	if err == nil {
		t.Fatalf("expected an initializer-misuse error, got none")
	}
}

func TestLambda_SelfNameEnablesRecursionWithoutClosures(t *testing.T) {
	// Named fn declarations desugar to a constant binding of themselves, so
	// a lambda can call itself by name without capturing any enclosing
	// scope — there is no closure over surrounding variables.
	result, _, err := run(t, "fn countdown(n)\n    if n == 0\n        return 0\n    return countdown(n - 1)\ncountdown(3)\n")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result != value.Number(0) {
		t.Errorf("expected 0, got %v", result)
	}
}

// runPrelude mirrors prelude.Run without importing the prelude package,
// which would create an import cycle (prelude imports eval).
func runPrelude(e *Evaluator) *EvalError {
	p := parser.New(`
class String
    class.fn concat(*ss)
        var acc = ""
        for s in ss
            acc.concat(s)
        return acc
`, nil)
	program := p.Parse()
	if p.HasErrors() {
		panic("prelude source failed to parse: " + p.Errors()[0])
	}
	_, err := e.Run(program)
	return err
}
