package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/sergi/go-diff/diffmatchpatch"

	"fieldname-generator/internal/diagnostic"
)

// Exit codes for CLI commands.
const (
	ExitSuccess      = 0 // Successful execution
	ExitFailure      = 1 // Generated files are stale or the plan has errors
	ExitCommandError = 2 // Command error (bad flags, package not found, etc.)
)

// ExitError represents an error with a specific exit code.
type ExitError struct {
	Code    int
	Message string
	Err     error
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}

	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// NewExitError creates a new ExitError with the given code and message.
func NewExitError(code int, message string) *ExitError {
	return &ExitError{Code: code, Message: message}
}

// WrapExitError wraps an existing error with an exit code.
func WrapExitError(code int, message string, err error) *ExitError {
	return &ExitError{Code: code, Message: message, Err: err}
}

// GetExitCode extracts the exit code from an error.
// Returns ExitFailure if the error is not an ExitError.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	return ExitFailure
}

// palette colors CLI output.
type palette struct {
	err  func(a ...any) string
	warn func(a ...any) string
	info func(a ...any) string
	add  func(a ...any) string
	del  func(a ...any) string
}

// newPalette builds a palette for w. In auto mode colors are used only when
// w is a terminal.
func newPalette(mode string, w io.Writer) *palette {
	enabled := mode == "always"
	if mode == "auto" {
		if f, ok := w.(*os.File); ok {
			enabled = isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
		}
	}

	mk := func(attrs ...color.Attribute) func(a ...any) string {
		c := color.New(attrs...)
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}

		return c.SprintFunc()
	}

	return &palette{
		err:  mk(color.FgRed, color.Bold),
		warn: mk(color.FgYellow),
		info: mk(color.FgCyan),
		add:  mk(color.FgGreen),
		del:  mk(color.FgRed),
	}
}

// printDiagnostics writes one line per diagnostic, errors first.
func (p *palette) printDiagnostics(w io.Writer, diags diagnostic.Diagnostics) {
	for _, d := range diags.All() {
		label := p.info
		switch d.Severity {
		case diagnostic.DiagnosticError:
			label = p.err
		case diagnostic.DiagnosticWarning:
			label = p.warn
		}

		fmt.Fprintf(w, "%s: %s\n", label(d.Severity.String()), d.String())

		for _, s := range d.Suggestions {
			fmt.Fprintf(w, "  hint: %s\n", s)
		}
	}
}

// diffContext is the number of unchanged lines kept around each change.
const diffContext = 3

// lineDiff renders a line-oriented diff from want to got. It returns false
// when both are equal.
func (p *palette) lineDiff(want, got string) (string, bool) {
	if want == got {
		return "", false
	}

	dmp := diffmatchpatch.New()
	a, b, lines := dmp.DiffLinesToChars(want, got)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)

	var sb strings.Builder

	for i, d := range diffs {
		text := splitLines(d.Text)

		switch d.Type {
		case diffmatchpatch.DiffDelete:
			for _, l := range text {
				sb.WriteString(p.del("-"+l) + "\n")
			}
		case diffmatchpatch.DiffInsert:
			for _, l := range text {
				sb.WriteString(p.add("+"+l) + "\n")
			}
		case diffmatchpatch.DiffEqual:
			for _, l := range elide(text, i > 0, i < len(diffs)-1) {
				sb.WriteString(" " + l + "\n")
			}
		}
	}

	return sb.String(), true
}

// elide keeps diffContext lines after a preceding change and before a
// following one, replacing the rest with a marker.
func elide(lines []string, after, before bool) []string {
	keepHead, keepTail := 0, 0
	if after {
		keepHead = diffContext
	}

	if before {
		keepTail = diffContext
	}

	if len(lines) <= keepHead+keepTail {
		return lines
	}

	out := append([]string{}, lines[:keepHead]...)
	out = append(out, "...")

	return append(out, lines[len(lines)-keepTail:]...)
}

func splitLines(s string) []string {
	return strings.Split(strings.TrimSuffix(s, "\n"), "\n")
}
