package main

import (
	"bufio"
	"fmt"
	"io"
	"log"

	"github.com/google/uuid"
	"github.com/shadowCow/lox-go/internal/diag"
	"github.com/shadowCow/lox-go/internal/eval"
	"github.com/shadowCow/lox-go/internal/parser"
	"github.com/shadowCow/lox-go/internal/scanner"
)

const prompt = ">>> "

// runREPL reads one line at a time from in, running each against a single
// interpreter so later lines see bindings made by earlier ones. Each
// session is tagged with a UUID purely for log correlation — it never
// touches the Diagnostic shape.
//
// When a line's final statement is a bare expression statement and the
// line produces no diagnostics, that statement's value is also echoed, the
// usual REPL convenience,
// without changing `print` or the Interpret contract.
func runREPL(in io.Reader, out io.Writer) {
	sessionID := uuid.New()
	log.Printf("[repl] session %s starting", sessionID)
	interp := eval.New(out)
	scan := bufio.NewScanner(in)

	for {
		fmt.Fprint(out, prompt)
		if !scan.Scan() {
			return
		}
		line := scan.Text()
		if line == "" {
			continue
		}

		tokens, scanErrs := scanner.Scan(line)
		if len(scanErrs) > 0 {
			renderDiagnostics("repl", line, scanErrs)
			continue
		}

		statements, err := parser.Parse(tokens)
		if err != nil {
			if d, ok := err.(diag.Diagnostic); ok {
				renderDiagnostics("repl", line, []diag.Diagnostic{d})
			}
			continue
		}

		v, isExpr, execErr := interp.InterpretTop(statements)
		if execErr != nil {
			if d, ok := execErr.(diag.Diagnostic); ok {
				renderDiagnostics("repl", line, []diag.Diagnostic{d})
			}
			continue
		}
		if isExpr {
			fmt.Fprintf(out, "%s\n", eval.Display(v))
		}
	}
}
