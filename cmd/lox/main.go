// Command lox runs and explores Lox-family scripts: argument parsing, the
// REPL loop, file reading, diagnostic rendering, and exit code policy.
// Running a file goes through runner.Run's (source name, source text) ->
// []diag.Diagnostic contract; the REPL drives the scanner, parser, and
// interpreter directly so one interpreter persists across lines, and the
// tokens subcommand calls the scanner directly.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/shadowCow/lox-go/internal/runner"
	"github.com/spf13/cobra"
)

func main() {
	log.SetFlags(log.Lshortfile | log.Ltime)

	if err := newRootCmd().Execute(); err != nil {
		log.Fatal(err)
	}
}

// newRootCmd runs a script directly when invoked with no subcommand (zero
// arguments -> REPL, one argument -> run that file), while still exposing
// `run`/`repl`/`tokens` as explicit subcommands for glob-batch execution
// and debugging.
func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "lox [script]",
		Short: "lox runs and explores Lox-family scripts",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				runREPL(os.Stdin, os.Stdout)
				return nil
			}
			return runFile(args[0])
		},
	}
	root.AddCommand(newRunCmd())
	root.AddCommand(newReplCmd())
	root.AddCommand(newTokensCmd())
	return root
}

func newRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run <path-or-glob>...",
		Short: "run one or more .lox scripts, in file order",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			paths, err := expandGlobs(args)
			if err != nil {
				return err
			}
			for _, path := range paths {
				if err := runFile(path); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func runFile(path string) error {
	source, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %q: %w", path, err)
	}

	diags := runner.Run(path, string(source), os.Stdout)
	if len(diags) > 0 {
		renderDiagnostics(path, string(source), diags)
		os.Exit(65)
	}
	return nil
}

func newReplCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "read-eval-print loop",
		RunE: func(cmd *cobra.Command, args []string) error {
			runREPL(os.Stdin, os.Stdout)
			return nil
		},
	}
}
