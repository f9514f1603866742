package eval

import "github.com/wisplang/wisp/objects"

// isError reports whether v is the evaluator's error signal, mirroring
// the teacher's IsError helper (eval/evaluator_helpers.go).
func isError(v objects.Value) bool {
	_, ok := v.(*objects.Error)
	return ok
}

// isReturn reports whether v is an in-flight return-unwinding signal
// that a statement sequence must stop and propagate rather than
// discard (spec.md §4.3).
func isReturn(v objects.Value) bool {
	_, ok := v.(*objects.ReturnValue)
	return ok
}

// runtimeError builds the evaluator's error-as-value signal (see
// DESIGN.md: errors are threaded back through Eval's return channel,
// not a separate Go `error`, mirroring the teacher's objects.Error /
// CreateError technique).
func (e *Evaluator) runtimeError(message string) *objects.Error {
	return &objects.Error{Message: message}
}
