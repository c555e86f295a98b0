package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandGlobsLiteralPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.lox")
	require.NoError(t, os.WriteFile(path, []byte("print 1;"), 0o644))

	paths, err := expandGlobs([]string{path})
	require.NoError(t, err)
	assert.Equal(t, []string{path}, paths)
}

func TestExpandGlobsPattern(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.lox", "b.lox", "c.txt"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("print 1;"), 0o644))
	}

	paths, err := expandGlobs([]string{filepath.Join(dir, "*.lox")})
	require.NoError(t, err)
	assert.Len(t, paths, 2)
}

func TestExpandGlobsNoMatchesErrors(t *testing.T) {
	dir := t.TempDir()
	_, err := expandGlobs([]string{filepath.Join(dir, "*.nope")})
	require.Error(t, err)
}
