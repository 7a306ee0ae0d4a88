package ui

import (
	"context"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// CancellableState holds the context handed to work run under a spinner
// and the cancel function the key handler fires
type CancellableState struct {
	Ctx    context.Context
	Cancel context.CancelFunc
}

// NewCancellableState creates a child context that can be cancelled
func NewCancellableState(parentCtx context.Context) *CancellableState {
	ctx, cancel := context.WithCancel(parentCtx)
	return &CancellableState{
		Ctx:    ctx,
		Cancel: cancel,
	}
}

// KeyAction represents the result of processing a key press
type KeyAction struct {
	Handled   bool
	Cancelled bool
	Cmd       tea.Cmd
}

// HandleCancelKeys cancels on ctrl+c and q
func HandleCancelKeys(msg tea.KeyMsg, state *CancellableState) KeyAction {
	switch msg.String() {
	case "ctrl+c", "q":
		if state != nil && state.Cancel != nil {
			state.Cancel()
		}
		return KeyAction{
			Handled:   true,
			Cancelled: true,
			Cmd:       tea.Quit,
		}
	}
	return KeyAction{Handled: false}
}

// NewDefaultSpinner creates a spinner in the application style
func NewDefaultSpinner() spinner.Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(ColorPrimary)
	return s
}
