// Package diff renders unified diffs between a source file and its canonical
// re-encoding, using github.com/pmezard/go-difflib/difflib.
package diff

import (
	"fmt"
	"slices"
	"strings"

	difflib "github.com/pmezard/go-difflib/difflib"
)

const defaultContext = 3

// Options controls patch generation behavior.
type Options struct {
	// Context is the number of context lines in unified hunks. If 0, default to 3.
	Context int

	// MaxBytes is a guardrail on input size (a+b). When exceeded, a
	// placeholder patch is returned. 0 means no limit.
	MaxBytes int
}

// Unified produces a unified patch for a↦b, or "" when they are equal.
func Unified(aName, bName, a, b string, opt Options) string {
	if a == b {
		return ""
	}

	if opt.MaxBytes > 0 && len(a)+len(b) > opt.MaxBytes {
		return omitted(aName, bName)
	}

	ctx := opt.Context
	if ctx <= 0 {
		ctx = defaultContext
	}

	la, lb := splitLinesKeepNL(a), splitLinesKeepNL(b)
	if slices.Equal(la, lb) {
		return ""
	}

	u := difflib.UnifiedDiff{
		A:        la,
		B:        lb,
		FromFile: aName,
		ToFile:   bName,
		Context:  ctx,
	}

	s, err := difflib.GetUnifiedDiffString(u)
	if err != nil || s == "" {
		return omitted(aName, bName)
	}

	return s
}

// splitLinesKeepNL splits into lines and keeps newline characters,
// which produces better unified hunks. Carriage returns are dropped so that
// CRLF sources only differ where their content does.
func splitLinesKeepNL(s string) []string {
	if s == "" {
		return []string{}
	}

	s = strings.ReplaceAll(s, "\r\n", "\n")

	lines := strings.SplitAfter(s, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	// A last line without newline would run into the next hunk line.
	if last := lines[len(lines)-1]; !strings.HasSuffix(last, "\n") {
		lines[len(lines)-1] = last + "\n\\ No newline at end of file\n"
	}

	return lines
}

// omitted returns a compact placeholder when the diff cannot be produced.
func omitted(aName, bName string) string {
	return fmt.Sprintf("--- %s\n+++ %s\n@@\n# diff omitted\n", aName, bName)
}
