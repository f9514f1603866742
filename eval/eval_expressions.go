package eval

import (
	"fmt"

	"github.com/wisplang/wisp/environment"
	"github.com/wisplang/wisp/function"
	"github.com/wisplang/wisp/lexer"
	"github.com/wisplang/wisp/objects"
	"github.com/wisplang/wisp/parser"
)

// evalExpr dispatches a single expression to its handler, per the
// teacher's Eval type switch adapted to Wisp's closed Expr set
// (spec.md §3, §4.3).
func (e *Evaluator) evalExpr(expr parser.Expr) objects.Value {
	switch n := expr.(type) {
	case *parser.Literal:
		return n.Value
	case *parser.Grouping:
		return e.evalExpr(n.Expression)
	case *parser.Variable:
		return e.evalVariable(n)
	case *parser.Assign:
		return e.evalAssign(n)
	case *parser.Unary:
		return e.evalUnary(n)
	case *parser.Binary:
		return e.evalBinary(n)
	case *parser.Logical:
		return e.evalLogical(n)
	case *parser.Call:
		return e.evalCall(n)
	default:
		return objects.Nil{}
	}
}

func (e *Evaluator) evalVariable(n *parser.Variable) objects.Value {
	value, err := e.env.Get(n.Name.Lexeme)
	if err != nil {
		return e.runtimeError(err.Error())
	}
	return value
}

func (e *Evaluator) evalAssign(n *parser.Assign) objects.Value {
	value := e.evalExpr(n.Value)
	if isError(value) {
		return value
	}
	if err := e.env.Assign(n.Name.Lexeme, value); err != nil {
		return e.runtimeError(err.Error())
	}
	return value
}

func (e *Evaluator) evalUnary(n *parser.Unary) objects.Value {
	right := e.evalExpr(n.Right)
	if isError(right) {
		return right
	}
	switch n.Op.Kind {
	case lexer.Minus:
		num, ok := right.(objects.Number)
		if !ok {
			return e.runtimeError("Operand must be a number.")
		}
		return objects.Number{Value: -num.Value}
	case lexer.Bang:
		return objects.Boolean{Value: !objects.IsTruthy(right)}
	default:
		return objects.Nil{}
	}
}

// evalBinary evaluates both operands left-to-right before dispatching
// on the operator, per spec.md §4.3.
func (e *Evaluator) evalBinary(n *parser.Binary) objects.Value {
	left := e.evalExpr(n.Left)
	if isError(left) {
		return left
	}
	right := e.evalExpr(n.Right)
	if isError(right) {
		return right
	}

	switch n.Op.Kind {
	case lexer.Plus:
		return e.evalAdd(left, right)
	case lexer.Minus:
		return numericBinary(e, left, right, func(a, b float64) float64 { return a - b })
	case lexer.Star:
		return numericBinary(e, left, right, func(a, b float64) float64 { return a * b })
	case lexer.Slash:
		return numericBinary(e, left, right, func(a, b float64) float64 { return a / b })
	case lexer.Greater:
		return comparisonBinary(e, left, right, func(a, b float64) bool { return a > b })
	case lexer.GreaterEqual:
		return comparisonBinary(e, left, right, func(a, b float64) bool { return a >= b })
	case lexer.Less:
		return comparisonBinary(e, left, right, func(a, b float64) bool { return a < b })
	case lexer.LessEqual:
		return comparisonBinary(e, left, right, func(a, b float64) bool { return a <= b })
	case lexer.EqualEqual:
		return objects.Boolean{Value: objects.Equal(left, right)}
	case lexer.BangEqual:
		return objects.Boolean{Value: !objects.Equal(left, right)}
	default:
		return objects.Nil{}
	}
}

// evalAdd implements spec.md §4.3's strict `+` typing: both numbers add
// numerically, both strings concatenate, any other pairing is a
// runtime error — see DESIGN.md's Open Question 1 decision.
func (e *Evaluator) evalAdd(left, right objects.Value) objects.Value {
	if l, ok := left.(objects.Number); ok {
		if r, ok := right.(objects.Number); ok {
			return objects.Number{Value: l.Value + r.Value}
		}
	}
	if l, ok := left.(objects.String); ok {
		if r, ok := right.(objects.String); ok {
			return objects.String{Value: l.Value + r.Value}
		}
	}
	return e.runtimeError("Operands must be two numbers or two strings.")
}

func numericBinary(e *Evaluator, left, right objects.Value, op func(a, b float64) float64) objects.Value {
	l, lok := left.(objects.Number)
	r, rok := right.(objects.Number)
	if !lok || !rok {
		return e.runtimeError("Operands must be numbers.")
	}
	return objects.Number{Value: op(l.Value, r.Value)}
}

func comparisonBinary(e *Evaluator, left, right objects.Value, op func(a, b float64) bool) objects.Value {
	l, lok := left.(objects.Number)
	r, rok := right.(objects.Number)
	if !lok || !rok {
		return e.runtimeError("Operands must be numbers.")
	}
	return objects.Boolean{Value: op(l.Value, r.Value)}
}

// evalLogical implements short-circuit `and`/`or` without coercing the
// short-circuited operand to Boolean, per spec.md §4.3.
func (e *Evaluator) evalLogical(n *parser.Logical) objects.Value {
	left := e.evalExpr(n.Left)
	if isError(left) {
		return left
	}
	if n.Op.Kind == lexer.Or {
		if objects.IsTruthy(left) {
			return left
		}
	} else {
		if !objects.IsTruthy(left) {
			return left
		}
	}
	return e.evalExpr(n.Right)
}

// evalCall evaluates the callee then each argument left-to-right,
// dispatching to either a UserFunction or a NativeFunction, per
// spec.md §4.3's Call rule.
func (e *Evaluator) evalCall(n *parser.Call) objects.Value {
	callee := e.evalExpr(n.Callee)
	if isError(callee) {
		return callee
	}

	args := make([]objects.Value, len(n.Args))
	for i, argExpr := range n.Args {
		arg := e.evalExpr(argExpr)
		if isError(arg) {
			return arg
		}
		args[i] = arg
	}

	switch fn := callee.(type) {
	case *function.UserFunction:
		return e.callUserFunction(fn, args)
	case *objects.NativeFunction:
		return e.callNativeFunction(fn, args)
	default:
		return e.runtimeError("Can only call functions and classes.")
	}
}

func (e *Evaluator) callUserFunction(fn *function.UserFunction, args []objects.Value) objects.Value {
	if len(args) != fn.Arity() {
		return e.runtimeError(fmt.Sprintf("Expected %d arguments but got %d.", fn.Arity(), len(args)))
	}

	callEnv := environment.NewEnclosed(fn.Closure)
	for i, param := range fn.Params {
		callEnv.Define(param.Lexeme, args[i])
	}

	result := e.ExecuteBlock(fn.Body, callEnv)
	if isError(result) {
		return result
	}
	if ret, ok := result.(*objects.ReturnValue); ok {
		return ret.Value
	}
	return objects.Nil{}
}

func (e *Evaluator) callNativeFunction(fn *objects.NativeFunction, args []objects.Value) objects.Value {
	if len(args) != fn.Arity {
		return e.runtimeError(fmt.Sprintf("Expected %d arguments but got %d.", fn.Arity, len(args)))
	}
	result, err := fn.Fn(args)
	if err != nil {
		return e.runtimeError(err.Error())
	}
	return result
}
