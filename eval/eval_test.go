package eval

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wisplang/wisp/lexer"
	"github.com/wisplang/wisp/objects"
	"github.com/wisplang/wisp/parser"
)

// run scans, parses, and evaluates src against a fresh Evaluator,
// returning captured stdout and the final statement's result.
func run(t *testing.T, src string) (string, objects.Value) {
	t.Helper()
	tokens, err := lexer.New(src).ScanTokens()
	require.NoError(t, err)
	stmts, err := parser.New(tokens).Parse()
	require.NoError(t, err)

	var buf bytes.Buffer
	ev := New()
	ev.SetWriter(&buf)
	result := ev.Run(stmts)
	return buf.String(), result
}

// TestScenario1_PrecedenceAndPrint covers spec.md §8 scenario 1.
func TestScenario1_PrecedenceAndPrint(t *testing.T) {
	out, _ := run(t, `print 1 + 2 * 3;`)
	assert.Equal(t, "7\n", out)
}

// TestScenario2_BlockShadowing covers spec.md §8 scenario 2.
func TestScenario2_BlockShadowing(t *testing.T) {
	out, _ := run(t, `var a = 1; { var a = 2; print a; } print a;`)
	assert.Equal(t, "2\n1\n", out)
}

// TestScenario3_ForLoop covers spec.md §8 scenario 3.
func TestScenario3_ForLoop(t *testing.T) {
	out, _ := run(t, `for (var i = 0; i < 3; i = i + 1) print i;`)
	assert.Equal(t, "0\n1\n2\n", out)
}

// TestScenario4_FunctionCall covers spec.md §8 scenario 4.
func TestScenario4_FunctionCall(t *testing.T) {
	out, _ := run(t, `fun add(a,b){ return a+b; } print add(2,3);`)
	assert.Equal(t, "5\n", out)
}

// TestScenario5_ClosureLaw covers spec.md §8 scenario 5 and the
// closure law: successive calls to a closure sharing a captured
// variable observe the mutation from the previous call.
func TestScenario5_ClosureLaw(t *testing.T) {
	out, _ := run(t, `fun mk(){ var n = 0; fun inc(){ n = n + 1; return n; } return inc; } var c = mk(); print c(); print c();`)
	assert.Equal(t, "1\n2\n", out)
}

// TestScenario6_ShortCircuitOr covers spec.md §8 scenario 6: `or`
// returns the untouched left operand, not a coerced Boolean.
func TestScenario6_ShortCircuitOr(t *testing.T) {
	out, _ := run(t, `print "hi" or 2;`)
	assert.Equal(t, "hi\n", out)
}

func TestShortCircuit_AndDoesNotEvaluateRight(t *testing.T) {
	out, _ := run(t, `fun boom(){ print "evaluated"; return true; } print false and boom();`)
	assert.Equal(t, "false\n", out, "boom() must not run once the left operand is falsy")
}

func TestShortCircuit_OrDoesNotEvaluateRight(t *testing.T) {
	out, _ := run(t, `fun boom(){ print "evaluated"; return true; } print true or boom();`)
	assert.Equal(t, "true\n", out)
}

func TestAssignWritesToDefiningScope(t *testing.T) {
	out, _ := run(t, `var x = 1; fun incr() { x = x + 1; } incr(); incr(); print x;`)
	assert.Equal(t, "3\n", out)
}

func TestUndefinedVariable_IsRuntimeError(t *testing.T) {
	_, result := run(t, `print missing;`)
	errVal, ok := result.(*objects.Error)
	require.True(t, ok)
	assert.Contains(t, errVal.Message, "Undefined variable 'missing'.")
}

func TestCallNonFunction_IsRuntimeError(t *testing.T) {
	_, result := run(t, `var x = 1; x();`)
	errVal, ok := result.(*objects.Error)
	require.True(t, ok)
	assert.Equal(t, "Can only call functions and classes.", errVal.Message)
}

func TestArityMismatch_ReportsExpectedAndGot(t *testing.T) {
	_, result := run(t, `fun add(a, b) { return a + b; } add(1);`)
	errVal, ok := result.(*objects.Error)
	require.True(t, ok)
	assert.Equal(t, "Expected 2 arguments but got 1.", errVal.Message)
}

func TestDivisionByZero_ProducesInfNotError(t *testing.T) {
	out, _ := run(t, `print 1 / 0;`)
	assert.Equal(t, "+Inf\n", out)
}

func TestAddTypeMismatch_IsRuntimeError(t *testing.T) {
	_, result := run(t, `1 + "two";`)
	errVal, ok := result.(*objects.Error)
	require.True(t, ok)
	assert.Equal(t, "Operands must be two numbers or two strings.", errVal.Message)
}

func TestStringConcatenation(t *testing.T) {
	out, _ := run(t, `print "foo" + "bar";`)
	assert.Equal(t, "foobar\n", out)
}

func TestEquality_NaNNeverEqualsNaN(t *testing.T) {
	out, _ := run(t, `print (0/0) == (0/0);`)
	assert.Equal(t, "false\n", out)
}

func TestEquality_DifferentVariantsNeverEqual(t *testing.T) {
	out, _ := run(t, `print nil == false;`)
	assert.Equal(t, "false\n", out)
}

func TestTruthiness_ZeroAndEmptyStringAreTruthy(t *testing.T) {
	out, _ := run(t, `if (0) print "zero is truthy"; if ("") print "empty string is truthy";`)
	assert.Equal(t, "zero is truthy\nempty string is truthy\n", out)
}

func TestReturnFromTopLevel_IsRuntimeError(t *testing.T) {
	_, result := run(t, `return 1;`)
	errVal, ok := result.(*objects.Error)
	require.True(t, ok)
	assert.Equal(t, "return from top-level", errVal.Message)
}

func TestRecursion_SelfReferenceThroughClosureEnv(t *testing.T) {
	out, _ := run(t, `fun fact(n) { if (n <= 1) return 1; return n * fact(n - 1); } print fact(5);`)
	assert.Equal(t, "120\n", out)
}

func TestWhileLoop(t *testing.T) {
	out, _ := run(t, `var i = 0; while (i < 3) { print i; i = i + 1; }`)
	assert.Equal(t, "0\n1\n2\n", out)
}

func TestUnaryMinusOnNonNumber_IsRuntimeError(t *testing.T) {
	_, result := run(t, `-"x";`)
	errVal, ok := result.(*objects.Error)
	require.True(t, ok)
	assert.Equal(t, "Operand must be a number.", errVal.Message)
}

func TestClockNative_ReturnsNumber(t *testing.T) {
	out, _ := run(t, `print clock() > 0;`)
	assert.Equal(t, "true\n", out)
}

func TestNumberStringification_DropsTrailingZero(t *testing.T) {
	out, _ := run(t, `print 4.0; print 3.5;`)
	assert.Equal(t, "4\n3.5\n", out)
}

func TestFunctionStringification(t *testing.T) {
	out, _ := run(t, `fun add(a, b) { return a + b; } print add;`)
	assert.Equal(t, "<fn add>\n", out)
}
