/*
Package environment implements Wisp's lexically nested variable scope
(spec.md §3, §4.4), grounded on the teacher's scope.Scope
(_examples/akashmaji946-go-mix/scope/scope.go) with its const/let
type-tracking trimmed away — Wisp has exactly one declaration form.

Environments are heap-allocated structs reached only through pointers,
so sharing one *Environment between a closure and its enclosing block
is automatic Go reference semantics: no explicit Rc/RefCell bookkeeping
is needed to satisfy spec.md §4.4 and §5's shared-ownership /
interior-mutability requirements.
*/
package environment

import (
	"fmt"

	"github.com/wisplang/wisp/objects"
)

// Environment is one lexical scope: a binding map plus a link to the
// enclosing scope. The root environment (Enclosing == nil) holds native
// bindings such as clock.
type Environment struct {
	values    map[string]objects.Value
	Enclosing *Environment
}

// New creates a root environment with no enclosing scope.
func New() *Environment {
	return &Environment{values: make(map[string]objects.Value)}
}

// NewEnclosed creates a scope nested inside enclosing — used for block
// bodies, loop bodies, and function call frames.
func NewEnclosed(enclosing *Environment) *Environment {
	return &Environment{values: make(map[string]objects.Value), Enclosing: enclosing}
}

// Define binds name to value in the current (innermost) scope,
// creating or overwriting the binding, per spec.md §3's invariants.
func (e *Environment) Define(name string, value objects.Value) {
	e.values[name] = value
}

// Get walks the enclosing chain outward and returns the innermost
// binding for name, or a runtime error if name is unbound anywhere in
// the chain (spec.md §4.3: "Undefined variable 'x'.").
func (e *Environment) Get(name string) (objects.Value, error) {
	if v, ok := e.values[name]; ok {
		return v, nil
	}
	if e.Enclosing != nil {
		return e.Enclosing.Get(name)
	}
	return nil, fmt.Errorf("Undefined variable '%s'.", name)
}

// Assign writes value into the innermost scope that already contains
// name, per spec.md §3's invariant, failing if name is nowhere bound.
func (e *Environment) Assign(name string, value objects.Value) error {
	if _, ok := e.values[name]; ok {
		e.values[name] = value
		return nil
	}
	if e.Enclosing != nil {
		return e.Enclosing.Assign(name, value)
	}
	return fmt.Errorf("Undefined variable '%s'.", name)
}
