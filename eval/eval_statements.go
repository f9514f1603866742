package eval

import (
	"fmt"

	"github.com/wisplang/wisp/environment"
	"github.com/wisplang/wisp/function"
	"github.com/wisplang/wisp/objects"
	"github.com/wisplang/wisp/parser"
)

// Run executes a top-level statement list in the evaluator's current
// environment (the global scope for a fresh Evaluator, or whichever
// scope a REPL line reuses). A *objects.ReturnValue escaping every
// statement is converted to the "return from top-level" runtime error
// spec.md §7 names, since Return may only unwind up to a function call
// boundary (spec.md §4.3).
func (e *Evaluator) Run(statements []parser.Stmt) objects.Value {
	result := e.execStatements(statements)
	if _, ok := result.(*objects.ReturnValue); ok {
		return &objects.Error{Message: "return from top-level"}
	}
	return result
}

// execStatements runs stmts in order, stopping early on the first
// error or return signal, mirroring the teacher's evalStatements.
func (e *Evaluator) execStatements(statements []parser.Stmt) objects.Value {
	var result objects.Value = objects.Nil{}
	for _, stmt := range statements {
		result = e.Eval(stmt)
		if isError(result) || isReturn(result) {
			return result
		}
	}
	return result
}

// Eval dispatches a single statement to its handler, returning Nil for
// statements that produce no useful value (Expression, Print, Var),
// the block's/branch's result for Block/If/While, or a *ReturnValue /
// *Error signal that the caller must check for.
func (e *Evaluator) Eval(stmt parser.Stmt) objects.Value {
	switch n := stmt.(type) {
	case *parser.ExpressionStmt:
		return e.evalExpressionStmt(n)
	case *parser.PrintStmt:
		return e.evalPrintStmt(n)
	case *parser.VarStmt:
		return e.evalVarStmt(n)
	case *parser.BlockStmt:
		return e.ExecuteBlock(n.Statements, environment.NewEnclosed(e.env))
	case *parser.IfStmt:
		return e.evalIfStmt(n)
	case *parser.WhileStmt:
		return e.evalWhileStmt(n)
	case *parser.FunctionStmt:
		return e.evalFunctionStmt(n)
	case *parser.ReturnStmt:
		return e.evalReturnStmt(n)
	default:
		return objects.Nil{}
	}
}

// ExecuteBlock runs statements in env, restoring the evaluator's
// previous environment before returning — including on an early
// error/return exit, since deferred restoration must run regardless of
// which branch returns (spec.md §4.3's Block rule).
func (e *Evaluator) ExecuteBlock(statements []parser.Stmt, env *environment.Environment) objects.Value {
	previous := e.env
	e.env = env
	defer func() { e.env = previous }()
	return e.execStatements(statements)
}

func (e *Evaluator) evalExpressionStmt(n *parser.ExpressionStmt) objects.Value {
	result := e.evalExpr(n.Expression)
	if isError(result) {
		return result
	}
	return objects.Nil{}
}

func (e *Evaluator) evalPrintStmt(n *parser.PrintStmt) objects.Value {
	value := e.evalExpr(n.Expression)
	if isError(value) {
		return value
	}
	fmt.Fprintln(e.Writer, value.String())
	return objects.Nil{}
}

func (e *Evaluator) evalVarStmt(n *parser.VarStmt) objects.Value {
	var value objects.Value = objects.Nil{}
	if n.Initializer != nil {
		value = e.evalExpr(n.Initializer)
		if isError(value) {
			return value
		}
	}
	e.env.Define(n.Name.Lexeme, value)
	return objects.Nil{}
}

func (e *Evaluator) evalIfStmt(n *parser.IfStmt) objects.Value {
	condition := e.evalExpr(n.Condition)
	if isError(condition) {
		return condition
	}
	if objects.IsTruthy(condition) {
		return e.Eval(n.Then)
	}
	if n.Else != nil {
		return e.Eval(n.Else)
	}
	return objects.Nil{}
}

func (e *Evaluator) evalWhileStmt(n *parser.WhileStmt) objects.Value {
	for {
		condition := e.evalExpr(n.Condition)
		if isError(condition) {
			return condition
		}
		if !objects.IsTruthy(condition) {
			return objects.Nil{}
		}
		result := e.Eval(n.Body)
		if isError(result) || isReturn(result) {
			return result
		}
	}
}

// evalFunctionStmt constructs a closure capturing the environment
// active right now — e.env, not a copy of it — so that later writes to
// outer variables (including the function's own name, enabling
// recursion) are visible on every call, per spec.md §4.3's Function
// rule and the closure law in spec.md §8. This follows the teacher's
// RegisterFunction, which binds `Scp: e.Scp` directly rather than
// through Scope.Copy() (see DESIGN.md's "Deviations" section).
func (e *Evaluator) evalFunctionStmt(n *parser.FunctionStmt) objects.Value {
	fn := &function.UserFunction{
		Name:    n.Name.Lexeme,
		Params:  n.Params,
		Body:    n.Body,
		Closure: e.env,
	}
	e.env.Define(n.Name.Lexeme, fn)
	return objects.Nil{}
}

func (e *Evaluator) evalReturnStmt(n *parser.ReturnStmt) objects.Value {
	var value objects.Value = objects.Nil{}
	if n.Value != nil {
		value = e.evalExpr(n.Value)
		if isError(value) {
			return value
		}
	}
	return &objects.ReturnValue{Value: value}
}
