package ui

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	"golang.org/x/term"
)

// ErrCancelled is returned when the user cancels an operation
var ErrCancelled = errors.New("operation cancelled by user")

// -----------------------------------------------------------------------------
// TTY Detection (injectable for testing)
// -----------------------------------------------------------------------------

// TTYDetector reports whether interactive output is possible
type TTYDetector func() bool

var defaultTTYDetector TTYDetector = func() bool {
	return term.IsTerminal(int(os.Stdout.Fd())) && term.IsTerminal(int(os.Stderr.Fd()))
}

var ttyDetector = defaultTTYDetector

// IsTTY returns true if stdout and stderr are terminals
func IsTTY() bool {
	return ttyDetector()
}

// SetTTYDetector overrides TTY detection. Nil restores the default.
// Returns a function that restores the previous detector.
func SetTTYDetector(detector TTYDetector) func() {
	prev := ttyDetector
	if detector == nil {
		ttyDetector = defaultTTYDetector
	} else {
		ttyDetector = detector
	}
	return func() { ttyDetector = prev }
}

// -----------------------------------------------------------------------------
// Default Output Writer
// -----------------------------------------------------------------------------

// defaultOutput receives progress output. Stderr keeps stdout clean for
// results that may be piped.
var defaultOutput io.Writer = os.Stderr

// SetDefaultOutput overrides the default output writer. Nil restores
// os.Stderr. Returns a function that restores the previous writer.
func SetDefaultOutput(w io.Writer) func() {
	prev := defaultOutput
	if w == nil {
		defaultOutput = os.Stderr
	} else {
		defaultOutput = w
	}
	return func() { defaultOutput = prev }
}

// -----------------------------------------------------------------------------
// Non-TTY Printer
// -----------------------------------------------------------------------------

var nonTTYNoticeOnce sync.Once

// ResetNonTTYNotice lets the notice print again (tests)
func ResetNonTTYNotice() {
	nonTTYNoticeOnce = sync.Once{}
}

func printNonTTYNoticeTo(w io.Writer) {
	nonTTYNoticeOnce.Do(func() {
		_, _ = fmt.Fprintln(w, StyleMuted.Render("(non-interactive terminal detected, using static output)"))
	})
}

// NonTTYPrinter prints plain progress lines when animation is unavailable
type NonTTYPrinter struct {
	title  string
	output io.Writer
}

// NonTTYPrinterOption configures a NonTTYPrinter
type NonTTYPrinterOption func(*NonTTYPrinter)

// WithOutput sets the output writer for the printer
func WithOutput(w io.Writer) NonTTYPrinterOption {
	return func(p *NonTTYPrinter) {
		p.output = w
	}
}

// NewNonTTYPrinter prints the one-time notice and the running title
func NewNonTTYPrinter(title string, opts ...NonTTYPrinterOption) *NonTTYPrinter {
	p := &NonTTYPrinter{
		title:  title,
		output: defaultOutput,
	}
	for _, opt := range opts {
		opt(p)
	}
	printNonTTYNoticeTo(p.output)
	_, _ = fmt.Fprintf(p.output, "%s %s\n", IconRunning, title)
	return p
}

// Success prints a success completion message
func (p *NonTTYPrinter) Success() {
	_, _ = fmt.Fprintf(p.output, "%s %s\n", IconSuccess, p.title)
}

// Failed prints a failure line. The error itself is reported by the caller.
func (p *NonTTYPrinter) Failed() {
	_, _ = fmt.Fprintf(p.output, "%s %s\n", IconError, p.title)
}

// Cancelled prints a cancellation message
func (p *NonTTYPrinter) Cancelled() {
	_, _ = fmt.Fprintf(p.output, "%s %s (cancelled)\n", IconWarning, p.title)
}
