// Package runner wires the scanner, parser, and interpreter into a single
// entry point: a function that takes a source name and source text and
// returns the diagnostics produced, if any. Diagnostic rendering,
// argument parsing, the REPL loop, and exit code policy are all left to
// the caller.
package runner

import (
	"io"

	"github.com/shadowCow/lox-go/internal/diag"
	"github.com/shadowCow/lox-go/internal/eval"
	"github.com/shadowCow/lox-go/internal/parser"
	"github.com/shadowCow/lox-go/internal/scanner"
	"github.com/shadowCow/lox-go/internal/token"
)

// Run executes sourceText (named sourceName for diagnostic purposes, not
// otherwise interpreted) against a fresh interpreter and returns every
// diagnostic produced. Output from `print` statements is written to
// output. A nil/empty return means the run completed with no diagnostics.
//
// sourceName is currently unused by the core itself (spans are
// self-contained byte offsets; the name is for the external renderer to
// label them) but is threaded through so a future multi-file core can
// stamp diagnostics with their origin without changing this signature.
func Run(sourceName, sourceText string, output io.Writer) []diag.Diagnostic {
	_ = sourceName

	tokens, scanErrs := scanner.Scan(sourceText)
	if len(scanErrs) > 0 {
		return scanErrs
	}

	statements, err := parser.Parse(tokens)
	if err != nil {
		return []diag.Diagnostic{err.(diag.Diagnostic)}
	}

	interp := eval.New(output)
	if err := interp.Interpret(statements); err != nil {
		if d, ok := err.(diag.Diagnostic); ok {
			return []diag.Diagnostic{d}
		}
		return []diag.Diagnostic{diag.New(diag.Interpreter, token.Span{}, err.Error())}
	}

	return nil
}
