package diff

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUnified_Equal(t *testing.T) {
	assert.Empty(t, Unified("a", "b", "same\n", "same\n", Options{}))
}

func TestUnified_Change(t *testing.T) {
	a := "one\ntwo\nthree\n"
	b := "one\n2\nthree\n"

	got := Unified("a/map.bms", "b/map.bms", a, b, Options{})

	assert.True(t, strings.HasPrefix(got, "--- a/map.bms\n+++ b/map.bms\n"), got)
	assert.Contains(t, got, "@@ -1,3 +1,3 @@\n")
	assert.Contains(t, got, "-two\n+2\n")
	assert.Contains(t, got, " one\n")
}

func TestUnified_Context(t *testing.T) {
	a := "1\n2\n3\n4\n5\n6\n7\n8\n9\n"
	b := "1\n2\n3\n4\nX\n6\n7\n8\n9\n"

	got := Unified("a", "b", a, b, Options{Context: 1})
	assert.Contains(t, got, "@@ -4,3 +4,3 @@\n 4\n-5\n+X\n 6\n")
}

func TestUnified_MissingNewline(t *testing.T) {
	got := Unified("a", "b", "x\ny", "x\ny\n", Options{})
	assert.Contains(t, got, "\\ No newline at end of file")
}

func TestUnified_CRLF(t *testing.T) {
	assert.Empty(t, Unified("a", "b", "x\r\ny\r\n", "x\ny\n", Options{}))

	got := Unified("a", "b", "x\r\ny\r\n", "x\nz\n", Options{})
	assert.Contains(t, got, "-y\n+z\n")
	assert.NotContains(t, got, "-x")
}

func TestUnified_Oversize(t *testing.T) {
	got := Unified("a", "b", "aaaa", "bbbb", Options{MaxBytes: 4})
	assert.Contains(t, got, "# diff omitted")
}
