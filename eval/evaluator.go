/*
Package eval implements the tree-walking evaluator for Wisp: statement
execution (eval_statements.go), expression evaluation
(eval_expressions.go), and the shared helpers used by both
(evaluator_helpers.go).

Evaluator is grounded on the teacher's eval.Evaluator
(_examples/akashmaji946-go-mix/eval/evaluator.go) — a struct holding the
current environment plus an io.Writer for `print` output, with results
threaded back as objects.Value rather than a separate Go error channel
(errors are *objects.Error values, return-unwinding is *objects.
ReturnValue — see DESIGN.md). Unlike the teacher, there is no Builtins
registry: Wisp has exactly one native function (clock, spec.md §6.4),
bound directly into the global environment at construction, the way the
teacher's std/time.go builtins are plain objects.NativeFunction-shaped
callbacks.
*/
package eval

import (
	"io"
	"os"
	"time"

	"github.com/wisplang/wisp/environment"
	"github.com/wisplang/wisp/objects"
)

// Evaluator holds the mutable state of one evaluation session: the
// global environment (which persists across REPL lines, spec.md §7),
// the environment currently in scope, and the output sink for `print`.
type Evaluator struct {
	Globals *environment.Environment
	env     *environment.Environment
	Writer  io.Writer
}

// New creates an Evaluator with a fresh global environment seeded with
// the clock() native (spec.md §6.4), writing print output to os.Stdout.
func New() *Evaluator {
	globals := environment.New()
	e := &Evaluator{Globals: globals, env: globals, Writer: os.Stdout}
	e.defineNatives()
	return e
}

// SetWriter redirects `print` output, mirroring the teacher's
// Evaluator.SetWriter — used by tests to capture output into a buffer.
func (e *Evaluator) SetWriter(w io.Writer) {
	e.Writer = w
}

func (e *Evaluator) defineNatives() {
	e.Globals.Define("clock", &objects.NativeFunction{
		Name:  "clock",
		Arity: 0,
		Fn: func(args []objects.Value) (objects.Value, error) {
			return objects.Number{Value: float64(time.Now().UnixNano()) / 1e9}, nil
		},
	})
}
