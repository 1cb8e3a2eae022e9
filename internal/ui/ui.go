// Package ui renders the tool's single-line outcomes for humans. Pipeline
// drivers should consume stdout; everything styled goes to stderr.
package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

var (
	styleInfoPrefix  = lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true) // blue
	styleWarnPrefix  = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true) // yellow
	styleErrorPrefix = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)  // red
	styleSkipped     = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))             // grey
)

// Printer is the output surface commands write through.
type Printer interface {
	// Plain writes to stdout without any prefix or styling.
	Plain(format string, a ...any)
	// Info writes to stderr with an [info] prefix.
	Info(format string, a ...any)
	// Warn writes to stderr with a [warn] prefix.
	Warn(format string, a ...any)
	// Error writes to stderr with an [error] prefix.
	Error(format string, a ...any)
}

// StdPrinter writes Plain to Out and prefixed lines to Err.
type StdPrinter struct {
	Out io.Writer
	Err io.Writer
}

func (p StdPrinter) Plain(format string, a ...any) {
	if p.Out == nil {
		return
	}
	_, _ = fmt.Fprintf(p.Out, format+"\n", a...)
}

func (p StdPrinter) Info(format string, a ...any) {
	p.prefixed(styleInfoPrefix.Render("[info]"), format, a...)
}

func (p StdPrinter) Warn(format string, a ...any) {
	p.prefixed(styleWarnPrefix.Render("[warn]"), format, a...)
}

func (p StdPrinter) Error(format string, a ...any) {
	p.prefixed(styleErrorPrefix.Render("[error]"), format, a...)
}

func (p StdPrinter) prefixed(prefix, format string, a ...any) {
	if p.Err == nil {
		return
	}
	_, _ = fmt.Fprintf(p.Err, "%s "+format+"\n", append([]any{prefix}, a...)...)
}

// Muted renders s in the dimmed style used for skipped outcomes.
func Muted(s string) string { return styleSkipped.Render(s) }

// NoopPrinter discards all output; useful as a default or in tests.
type NoopPrinter struct{}

func (NoopPrinter) Plain(string, ...any) {}
func (NoopPrinter) Info(string, ...any)  {}
func (NoopPrinter) Warn(string, ...any)  {}
func (NoopPrinter) Error(string, ...any) {}

// IsTTY reports whether w is an interactive terminal.
func IsTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}
