// Package testutil provides common utility functions for testing.
package testutil

import (
	"io"
	"strings"
)

// Answers returns a reader that feeds each answer to an interactive prompt
// on its own line.
func Answers(answers ...string) io.Reader {
	return strings.NewReader(strings.Join(answers, "\n") + "\n")
}

// Lines splits captured output into lines, dropping a trailing empty line.
func Lines(output string) []string {
	return strings.Split(strings.TrimRight(output, "\n"), "\n")
}
