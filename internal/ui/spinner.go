package ui

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// spinnerModel animates while fn runs in the background
type spinnerModel struct {
	spinner   spinner.Model
	title     string
	err       error
	done      bool
	cancelled bool
	fn        func(ctx context.Context) error
	state     *CancellableState
	started   bool
}

type spinnerDoneMsg struct {
	err error
}

func (m spinnerModel) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m spinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if action := HandleCancelKeys(msg, m.state); action.Handled {
			m.done = true
			m.cancelled = action.Cancelled
			if action.Cancelled {
				m.err = ErrCancelled
			}
			return m, action.Cmd
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)

		// start work on the first tick
		if !m.started {
			m.started = true
			return m, tea.Batch(cmd, m.runWork())
		}
		return m, cmd

	case spinnerDoneMsg:
		m.err = msg.err
		m.done = true
		return m, tea.Quit
	}

	return m, nil
}

func (m spinnerModel) runWork() tea.Cmd {
	return func() tea.Msg {
		return spinnerDoneMsg{err: m.fn(m.state.Ctx)}
	}
}

func (m spinnerModel) View() string {
	if m.done {
		return ""
	}
	return fmt.Sprintf("%s %s", m.spinner.View(), m.title)
}

// RunSpinner shows a spinner while fn runs. The context passed to fn is
// cancelled when the user presses ctrl+c or q. Without a TTY it prints a
// running line and a result line instead. Errors from fn are returned, not
// printed. Output goes to the default output writer.
func RunSpinner(ctx context.Context, title string, fn func(ctx context.Context) error) error {
	output := defaultOutput

	if !IsTTY() {
		printer := NewNonTTYPrinter(title, WithOutput(output))
		if err := fn(ctx); err != nil {
			if errors.Is(err, context.Canceled) {
				printer.Cancelled()
			} else {
				printer.Failed()
			}
			return err
		}
		printer.Success()
		return nil
	}

	state := NewCancellableState(ctx)
	defer state.Cancel()

	m := spinnerModel{
		spinner: NewDefaultSpinner(),
		title:   title,
		fn:      fn,
		state:   state,
	}

	finalModel, err := tea.NewProgram(m, tea.WithOutput(output), tea.WithContext(ctx)).Run()
	if err != nil {
		return err
	}

	final := finalModel.(spinnerModel)
	switch {
	case final.cancelled:
		_, _ = fmt.Fprintln(output, StyleWarning.Render(IconWarning)+" "+title+" (cancelled)")
		return ErrCancelled
	case final.err != nil:
		_, _ = fmt.Fprintln(output, StyleError.Render(IconError)+" "+title)
		return final.err
	}

	_, _ = fmt.Fprintln(output, StyleSuccess.Render(IconSuccess)+" "+title)
	return nil
}
