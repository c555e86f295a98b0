package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLineCol(t *testing.T) {
	source := "var x = 1;\nprint x;\n"

	tests := []struct {
		offset   int
		wantLine int
		wantCol  int
	}{
		{0, 1, 1},
		{4, 1, 5},
		{11, 2, 1},
		{17, 2, 7},
	}
	for _, tt := range tests {
		line, col := lineCol(source, tt.offset)
		assert.Equal(t, tt.wantLine, line)
		assert.Equal(t, tt.wantCol, col)
	}
}

func TestCaretLineMarksSpan(t *testing.T) {
	source := "var x = 1;\nprint y;\n"
	// "y" sits at offset 17, six columns into the second line ("print y;").
	got := caretLine(source, 17, 18)
	assert.Equal(t, "print y;\n      ^", got)
}

func TestCaretLineHandlesZeroWidthSpan(t *testing.T) {
	source := "x"
	got := caretLine(source, 0, 0)
	assert.Equal(t, "x\n^", got)
}
