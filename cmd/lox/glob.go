package main

import (
	"fmt"
	"os"

	"github.com/bmatcuk/doublestar/v4"
)

// expandGlobs resolves each argument as a doublestar glob pattern (plain
// file paths are a degenerate one-match pattern), preserving the
// caller-supplied order across patterns. A pattern matching nothing is an
// error rather than silently running zero scripts.
func expandGlobs(patterns []string) ([]string, error) {
	var paths []string
	for _, pattern := range patterns {
		if _, err := os.Stat(pattern); err == nil {
			paths = append(paths, pattern)
			continue
		}

		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid glob %q: %w", pattern, err)
		}
		if len(matches) == 0 {
			return nil, fmt.Errorf("no files matched %q", pattern)
		}
		paths = append(paths, matches...)
	}
	return paths, nil
}
