package main

import (
	"fmt"
	"strings"

	"github.com/shadowCow/lox-go/internal/diag"
)

// renderDiagnostics draws a caret-style error report so `lox run`/
// `lox repl` are actually useful from a terminal.
func renderDiagnostics(name, source string, diags []diag.Diagnostic) {
	for _, d := range diags {
		line, col := lineCol(source, d.Span.Lo)
		fmt.Printf("[%s error] %s:%d:%d: %s\n", d.Kind, name, line, col, d.Message)
		fmt.Println(caretLine(source, d.Span.Lo, d.Span.Hi))
	}
}

func lineCol(source string, offset int) (line, col int) {
	line, col = 1, 1
	for i := 0; i < offset && i < len(source); i++ {
		if source[i] == '\n' {
			line++
			col = 1
		} else {
			col++
		}
	}
	return line, col
}

// caretLine renders the source line containing [lo, hi) with a caret
// marker beneath the span.
func caretLine(source string, lo, hi int) string {
	if lo < 0 || lo > len(source) {
		return ""
	}
	start := lo
	for start > 0 && source[start-1] != '\n' {
		start--
	}
	end := lo
	for end < len(source) && source[end] != '\n' {
		end++
	}
	line := source[start:end]
	width := hi - lo
	if width < 1 {
		width = 1
	}
	marker := strings.Repeat(" ", lo-start) + strings.Repeat("^", width)
	return line + "\n" + marker
}
