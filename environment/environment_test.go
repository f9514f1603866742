package environment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wisplang/wisp/objects"
)

func TestDefineAndGet(t *testing.T) {
	env := New()
	env.Define("x", objects.Number{Value: 10})

	v, err := env.Get("x")
	require.NoError(t, err)
	assert.Equal(t, objects.Number{Value: 10}, v)
}

func TestGetUndefined(t *testing.T) {
	env := New()
	_, err := env.Get("missing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Undefined variable 'missing'.")
}

func TestNestedLookupWalksOutward(t *testing.T) {
	outer := New()
	outer.Define("x", objects.Number{Value: 1})
	inner := NewEnclosed(outer)

	v, err := inner.Get("x")
	require.NoError(t, err)
	assert.Equal(t, objects.Number{Value: 1}, v)
}

func TestShadowing(t *testing.T) {
	outer := New()
	outer.Define("a", objects.Number{Value: 1})
	inner := NewEnclosed(outer)
	inner.Define("a", objects.Number{Value: 2})

	innerVal, _ := inner.Get("a")
	outerVal, _ := outer.Get("a")
	assert.Equal(t, objects.Number{Value: 2}, innerVal)
	assert.Equal(t, objects.Number{Value: 1}, outerVal)
}

// TestAssignWritesToDefiningScope exercises spec.md §8's scope-preservation
// property: assignment from a nested scope must mutate the scope that
// originally defined the variable, not create a new shadow.
func TestAssignWritesToDefiningScope(t *testing.T) {
	outer := New()
	outer.Define("counter", objects.Number{Value: 0})
	inner := NewEnclosed(outer)

	err := inner.Assign("counter", objects.Number{Value: 1})
	require.NoError(t, err)

	_, hadOwnBinding := inner.values["counter"]
	assert.False(t, hadOwnBinding)

	outerVal, _ := outer.Get("counter")
	assert.Equal(t, objects.Number{Value: 1}, outerVal)
}

func TestAssignUndefinedFails(t *testing.T) {
	env := New()
	err := env.Assign("ghost", objects.Nil{})
	require.Error(t, err)
}

// TestSharedMutationVisibleThroughClosureReference models spec.md §4.4's
// interior-mutability requirement: a later write through one holder of
// an *Environment is visible through another holder of the same pointer.
func TestSharedMutationVisibleThroughClosureReference(t *testing.T) {
	outer := New()
	outer.Define("n", objects.Number{Value: 0})

	closureRef := outer // a closure would capture this same pointer
	outer.Assign("n", objects.Number{Value: 5})

	v, err := closureRef.Get("n")
	require.NoError(t, err)
	assert.Equal(t, objects.Number{Value: 5}, v)
}
