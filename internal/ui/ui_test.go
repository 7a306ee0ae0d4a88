package ui

import (
	"bytes"
	"context"
	"errors"
	"os"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

// -----------------------------------------------------------------------------
// Test Helpers
// -----------------------------------------------------------------------------

// setupTestEnvironment forces TTY detection and resets the non-TTY notice
func setupTestEnvironment(ttyEnabled bool) func() {
	restoreTTY := SetTTYDetector(func() bool { return ttyEnabled })
	ResetNonTTYNotice()
	return func() {
		restoreTTY()
		ResetNonTTYNotice()
	}
}

func createKeyMsg(key string) tea.KeyMsg {
	switch key {
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case "q":
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
	}
}

// -----------------------------------------------------------------------------
// TTY Detection / Output
// -----------------------------------------------------------------------------

func TestSetTTYDetector_OverridesDetection(t *testing.T) {
	restore := SetTTYDetector(func() bool { return true })
	if !IsTTY() {
		t.Error("expected IsTTY() to return true after override")
	}
	restore()

	restore = SetTTYDetector(func() bool { return false })
	if IsTTY() {
		t.Error("expected IsTTY() to return false after override")
	}
	restore()
}

func TestSetDefaultOutput(t *testing.T) {
	buf := &bytes.Buffer{}
	restore := SetDefaultOutput(buf)
	if defaultOutput != buf {
		t.Error("expected the custom buffer to become the default output")
	}
	restore()

	SetDefaultOutput(nil)
	if defaultOutput != os.Stderr {
		t.Error("expected nil to restore os.Stderr")
	}
}

// -----------------------------------------------------------------------------
// NonTTYPrinter
// -----------------------------------------------------------------------------

func TestNonTTYPrinter_NoticePrintedOnce(t *testing.T) {
	cleanup := setupTestEnvironment(false)
	defer cleanup()

	buf := &bytes.Buffer{}
	NewNonTTYPrinter("first", WithOutput(buf)).Success()
	NewNonTTYPrinter("second", WithOutput(buf)).Failed()

	output := buf.String()
	if n := strings.Count(output, "non-interactive terminal detected"); n != 1 {
		t.Errorf("expected notice once, got %d times in: %s", n, output)
	}
	if !strings.Contains(output, IconSuccess+" first") {
		t.Errorf("expected success line, got: %s", output)
	}
	if !strings.Contains(output, IconError+" second") {
		t.Errorf("expected failure line, got: %s", output)
	}
}

// -----------------------------------------------------------------------------
// RunSpinner (non-TTY mode)
// -----------------------------------------------------------------------------

func TestRunSpinner_NonTTY_Success(t *testing.T) {
	cleanup := setupTestEnvironment(false)
	defer cleanup()

	buf := &bytes.Buffer{}
	defer SetDefaultOutput(buf)()
	ran := false
	err := RunSpinner(context.Background(), "Installing chart", func(ctx context.Context) error {
		ran = true
		return nil
	})

	if err != nil {
		t.Errorf("expected no error, got: %v", err)
	}
	if !ran {
		t.Error("expected work function to run")
	}
	if !strings.Contains(buf.String(), IconSuccess+" Installing chart") {
		t.Errorf("expected success line, got: %s", buf.String())
	}
}

func TestRunSpinner_NonTTY_ErrorNotPrinted(t *testing.T) {
	cleanup := setupTestEnvironment(false)
	defer cleanup()

	buf := &bytes.Buffer{}
	defer SetDefaultOutput(buf)()
	expectedErr := errors.New("helm exploded")
	err := RunSpinner(context.Background(), "Installing chart", func(ctx context.Context) error {
		return expectedErr
	})

	if !errors.Is(err, expectedErr) {
		t.Errorf("expected error %v, got: %v", expectedErr, err)
	}
	if strings.Contains(buf.String(), "helm exploded") {
		t.Errorf("error text should be left to the caller, got: %s", buf.String())
	}
}

func TestRunSpinner_NonTTY_ContextCancelled(t *testing.T) {
	cleanup := setupTestEnvironment(false)
	defer cleanup()

	buf := &bytes.Buffer{}
	defer SetDefaultOutput(buf)()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := RunSpinner(ctx, "Searching", func(ctx context.Context) error {
		return ctx.Err()
	})

	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got: %v", err)
	}
	if !strings.Contains(buf.String(), IconWarning+" Searching (cancelled)") {
		t.Errorf("expected cancelled line, got: %s", buf.String())
	}
}

// -----------------------------------------------------------------------------
// Cancellation
// -----------------------------------------------------------------------------

func TestCancellableState_InheritsParentCancellation(t *testing.T) {
	parentCtx, parentCancel := context.WithCancel(context.Background())
	state := NewCancellableState(parentCtx)

	parentCancel()

	select {
	case <-state.Ctx.Done():
	default:
		t.Error("child context should be cancelled when parent is cancelled")
	}
}

func TestHandleCancelKeys(t *testing.T) {
	testCases := []struct {
		key       string
		handled   bool
		cancelled bool
	}{
		{key: "ctrl+c", handled: true, cancelled: true},
		{key: "q", handled: true, cancelled: true},
		{key: "a", handled: false, cancelled: false},
	}

	for _, tc := range testCases {
		t.Run(tc.key, func(t *testing.T) {
			state := NewCancellableState(context.Background())
			action := HandleCancelKeys(createKeyMsg(tc.key), state)

			if action.Handled != tc.handled {
				t.Errorf("expected handled=%v, got %v", tc.handled, action.Handled)
			}
			if action.Cancelled != tc.cancelled {
				t.Errorf("expected cancelled=%v, got %v", tc.cancelled, action.Cancelled)
			}

			cancelled := state.Ctx.Err() != nil
			if cancelled != tc.cancelled {
				t.Errorf("expected context cancelled=%v, got %v", tc.cancelled, cancelled)
			}
		})
	}
}

func TestHandleCancelKeys_NilState(t *testing.T) {
	action := HandleCancelKeys(createKeyMsg("ctrl+c"), nil)
	if !action.Handled || !action.Cancelled {
		t.Error("expected ctrl+c to be handled even with nil state")
	}
}

// -----------------------------------------------------------------------------
// Tables
// -----------------------------------------------------------------------------

func TestValidateTableData(t *testing.T) {
	testCases := []struct {
		name    string
		headers []string
		rows    [][]string
		wantErr bool
	}{
		{name: "valid", headers: []string{"A", "B"}, rows: [][]string{{"1", "2"}}},
		{name: "no headers", headers: nil, rows: nil, wantErr: true},
		{name: "short row", headers: []string{"A", "B"}, rows: [][]string{{"1"}}, wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateTableData(tc.headers, tc.rows)
			if (err != nil) != tc.wantErr {
				t.Errorf("expected error=%v, got %v", tc.wantErr, err)
			}
		})
	}
}

func TestRenderTable(t *testing.T) {
	headers := []string{"NAME", "REPOSITORY", "VERSION"}
	rows := [][]string{
		{"redis", "bitnami", "18.1.0"},
		{"nginx", "bitnami", "N/A"},
	}

	output, err := RenderTable(headers, rows)
	if err != nil {
		t.Fatalf("RenderTable returned error: %v", err)
	}
	for _, want := range []string{"NAME", "REPOSITORY", "redis", "nginx", "N/A"} {
		if !strings.Contains(output, want) {
			t.Errorf("expected output to contain %q, got:\n%s", want, output)
		}
	}
}

func TestColumnWidths_Capped(t *testing.T) {
	widths := columnWidths([]string{"DESCRIPTION"}, [][]string{{strings.Repeat("x", 200)}})
	if widths[0] != MaxColumnWidth {
		t.Errorf("expected width capped at %d, got %d", MaxColumnWidth, widths[0])
	}
}

// -----------------------------------------------------------------------------
// Components
// -----------------------------------------------------------------------------

func TestTruncateWithEllipsis(t *testing.T) {
	testCases := []struct {
		in       string
		max      int
		expected string
	}{
		{in: "short", max: 10, expected: "short"},
		{in: "a long description", max: 9, expected: "a long..."},
		{in: "abcdef", max: 2, expected: "ab"},
	}

	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			if got := TruncateWithEllipsis(tc.in, tc.max); got != tc.expected {
				t.Errorf("expected %q, got %q", tc.expected, got)
			}
		})
	}
}

func TestWrapText(t *testing.T) {
	got := WrapText("Redis is an open source key-value store", 12)
	for _, line := range strings.Split(got, "\n") {
		if len(line) > 12 {
			t.Errorf("line %q exceeds width", line)
		}
	}
	if strings.Join(strings.Fields(got), " ") != "Redis is an open source key-value store" {
		t.Errorf("wrapping lost words: %q", got)
	}
}

func TestCheckIcon(t *testing.T) {
	if CheckIcon(true, true) != IconSuccess {
		t.Error("passed check should use success icon")
	}
	if CheckIcon(false, true) != IconError {
		t.Error("failed required check should use error icon")
	}
	if CheckIcon(false, false) != IconWarning {
		t.Error("failed optional check should use warning icon")
	}
}
