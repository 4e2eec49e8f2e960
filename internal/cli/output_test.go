package cli

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"fieldname-generator/internal/diagnostic"
)

func TestGetExitCode(t *testing.T) {
	assert.Equal(t, ExitSuccess, GetExitCode(nil))
	assert.Equal(t, ExitFailure, GetExitCode(errors.New("boom")))
	assert.Equal(t, ExitCommandError, GetExitCode(NewExitError(ExitCommandError, "bad flag")))

	wrapped := fmt.Errorf("outer: %w", WrapExitError(ExitCommandError, "loading", errors.New("inner")))
	assert.Equal(t, ExitCommandError, GetExitCode(wrapped))
	assert.EqualError(t, wrapped, "outer: loading: inner")
}

func TestPalette_Modes(t *testing.T) {
	always := newPalette("always", &bytes.Buffer{})
	assert.Contains(t, always.err("x"), "\x1b[")

	never := newPalette("never", &bytes.Buffer{})
	assert.Equal(t, "x", never.err("x"))

	// Buffers are never terminals.
	auto := newPalette("auto", &bytes.Buffer{})
	assert.Equal(t, "x", auto.add("x"))
}

func TestPalette_PrintDiagnostics(t *testing.T) {
	var d diagnostic.Diagnostics
	d.AddInfo("explicit-tag", "tag set", "Ages", "Age")
	d.Errors = append(d.Errors, diagnostic.Diagnostic{
		Severity:    diagnostic.DiagnosticError,
		Code:        "tag-collision",
		Message:     "merged",
		Record:      "Ages",
		Suggestions: []string{"rename"},
	})

	var buf bytes.Buffer
	newPalette("never", &buf).printDiagnostics(&buf, d)

	assert.Equal(t,
		"error: [Ages]: [tag-collision] merged\n  hint: rename\ninfo: [Ages] Age: [explicit-tag] tag set\n",
		buf.String())
}

func TestPalette_LineDiff(t *testing.T) {
	p := newPalette("never", &bytes.Buffer{})

	_, changed := p.lineDiff("a\nb\n", "a\nb\n")
	assert.False(t, changed)

	diff, changed := p.lineDiff("a\nb\nc\n", "a\nB\nc\n")
	assert.True(t, changed)
	assert.Equal(t, " a\n-b\n+B\n c\n", diff)
}

func TestElide(t *testing.T) {
	lines := []string{"1", "2", "3", "4", "5", "6", "7", "8"}

	assert.Equal(t, []string{"1", "2", "3", "...", "6", "7", "8"}, elide(lines, true, true))
	assert.Equal(t, []string{"...", "6", "7", "8"}, elide(lines, false, true))
	assert.Equal(t, []string{"1", "2", "3", "..."}, elide(lines, true, false))
	assert.Equal(t, lines[:4], elide(lines[:4], true, false))
}
