package eval

import (
	"testing"

	"github.com/shadowCow/lox-go/internal/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvironmentDefineAndGet(t *testing.T) {
	env := NewEnvironment(nil)
	env.Define("x", float64(42))

	v, err := env.Get("x", token.Span{})
	require.NoError(t, err)
	assert.Equal(t, float64(42), v)
}

func TestEnvironmentGetUndefinedErrors(t *testing.T) {
	env := NewEnvironment(nil)
	_, err := env.Get("missing", token.Span{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing")
}

func TestEnvironmentGetSearchesEnclosing(t *testing.T) {
	outer := NewEnvironment(nil)
	outer.Define("x", "outer-value")
	inner := NewEnvironment(outer)

	v, err := inner.Get("x", token.Span{})
	require.NoError(t, err)
	assert.Equal(t, "outer-value", v)
}

// A binding in an inner frame shadows the same name in an outer frame.
func TestEnvironmentShadowing(t *testing.T) {
	outer := NewEnvironment(nil)
	outer.Define("x", "outer-value")
	inner := NewEnvironment(outer)
	inner.Define("x", "inner-value")

	v, err := inner.Get("x", token.Span{})
	require.NoError(t, err)
	assert.Equal(t, "inner-value", v)

	outerV, err := outer.Get("x", token.Span{})
	require.NoError(t, err)
	assert.Equal(t, "outer-value", outerV)
}

func TestEnvironmentAssignUpdatesEnclosingFrame(t *testing.T) {
	outer := NewEnvironment(nil)
	outer.Define("x", float64(1))
	inner := NewEnvironment(outer)

	require.NoError(t, inner.Assign("x", float64(2), token.Span{}))

	v, err := outer.Get("x", token.Span{})
	require.NoError(t, err)
	assert.Equal(t, float64(2), v)
}

func TestEnvironmentAssignUndefinedErrors(t *testing.T) {
	env := NewEnvironment(nil)
	err := env.Assign("missing", float64(1), token.Span{})
	require.Error(t, err)
}

// Two Environments that both hold a pointer to the same enclosing frame
// observe each other's mutations through it — the sharing property
// closures depend on.
func TestEnvironmentSharedFrameIsObservable(t *testing.T) {
	shared := NewEnvironment(nil)
	shared.Define("counter", float64(0))

	holderA := NewEnvironment(shared)
	holderB := NewEnvironment(shared)

	require.NoError(t, holderA.Assign("counter", float64(1), token.Span{}))

	v, err := holderB.Get("counter", token.Span{})
	require.NoError(t, err)
	assert.Equal(t, float64(1), v)
}
