package helm

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidRequest wraps request validation failures
var ErrInvalidRequest = errors.New("invalid request")

// CommandError reports a helm invocation that exited non-zero
type CommandError struct {
	Args     []string
	ExitCode int
	Output   string
}

func (e *CommandError) Error() string {
	msg := fmt.Sprintf("`%s` exited with status %d", strings.Join(e.Args, " "), e.ExitCode)
	if out := strings.TrimSpace(e.Output); out != "" {
		msg = fmt.Sprintf("%s: %s", msg, out)
	}
	return msg
}
