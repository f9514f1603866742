/*
Package function defines the user-defined function value, kept out of
package objects to avoid an objects -> environment -> objects import
cycle (environment.Environment and parser's AST types both depend on
objects).

UserFunction is grounded on the teacher's function.Function
(_examples/akashmaji946-go-mix/function/function.go): name, parameter
list, body, and a captured defining scope. The call-mechanics half of
the teacher's Function — binding arguments into a fresh child scope and
unwrapping the return signal — lives in package eval's
callUserFunction, matching the teacher's own split between the Function
value and Evaluator.CallFunction.
*/
package function

import (
	"fmt"

	"github.com/wisplang/wisp/environment"
	"github.com/wisplang/wisp/lexer"
	"github.com/wisplang/wisp/objects"
	"github.com/wisplang/wisp/parser"
)

// UserFunction is a closure: a name, formal parameters, a body, and the
// *environment.Environment active when `fun` was executed. Params are
// kept as lexer.Token (not just names) so arity and redeclaration
// errors can point at the parameter's source line if needed later.
type UserFunction struct {
	Name    string
	Params  []lexer.Token
	Body    []parser.Stmt
	Closure *environment.Environment
}

func (f *UserFunction) Type() objects.Type { return objects.FunctionType }

// String renders exactly "<fn NAME>" per spec.md §6.2, matching
// original_source/src/types.rs's Display impl for Function (name only,
// no parameter list).
func (f *UserFunction) String() string {
	return fmt.Sprintf("<fn %s>", f.Name)
}

// Arity returns the number of formal parameters, used by the caller to
// enforce spec.md §4.3's "wrong number of arguments" runtime error.
func (f *UserFunction) Arity() int {
	return len(f.Params)
}
