package runner

import (
	"bytes"
	"testing"

	"github.com/shadowCow/lox-go/internal/diag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunSuccessProducesNoDiagnostics(t *testing.T) {
	var out bytes.Buffer
	diags := Run("test", "print 1 + 1;", &out)
	require.Empty(t, diags)
	assert.Equal(t, "2\n", out.String())
}

func TestRunScannerErrorShortCircuitsParsing(t *testing.T) {
	var out bytes.Buffer
	diags := Run("test", "@", &out)
	require.Len(t, diags, 1)
	assert.Equal(t, diag.Scanner, diags[0].Kind)
}

func TestRunParserErrorReturnsSingleDiagnostic(t *testing.T) {
	var out bytes.Buffer
	diags := Run("test", "var x = ;", &out)
	require.Len(t, diags, 1)
	assert.Equal(t, diag.Parser, diags[0].Kind)
}

func TestRunInterpreterErrorReturnsSingleDiagnostic(t *testing.T) {
	var out bytes.Buffer
	diags := Run("test", "print missing;", &out)
	require.Len(t, diags, 1)
	assert.Equal(t, diag.Interpreter, diags[0].Kind)
}

// Each Run call gets a fresh interpreter: a binding made in one call must
// not leak into the next.
func TestRunIsolatesStateAcrossCalls(t *testing.T) {
	var out1 bytes.Buffer
	diags := Run("test", "var x = 1;", &out1)
	require.Empty(t, diags)

	var out2 bytes.Buffer
	diags = Run("test", "print x;", &out2)
	require.Len(t, diags, 1)
	assert.Equal(t, diag.Interpreter, diags[0].Kind)
}
