package main

import (
	"fmt"
	"os"

	"github.com/shadowCow/lox-go/internal/scanner"
	"github.com/spf13/cobra"
)

// newTokensCmd prints the token stream for a script without parsing or
// running it, a debug aid for inspecting how a source file scans.
func newTokensCmd() *cobra.Command {
	return &cobra.Command{
		Use:    "tokens <path>",
		Short:  "print the token stream for a script",
		Hidden: true,
		Args:   cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			source, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("failed to read %q: %w", args[0], err)
			}

			tokens, errs := scanner.Scan(string(source))
			if len(errs) > 0 {
				renderDiagnostics(args[0], string(source), errs)
				os.Exit(65)
			}
			for _, tok := range tokens {
				fmt.Printf("%-14s %-12q [%d,%d)\n", tok.Kind, tok.Lexeme, tok.Span.Lo, tok.Span.Hi)
			}
			return nil
		},
	}
}
