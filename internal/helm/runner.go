package helm

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os/exec"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"
)

// Result is the outcome of a finished process
type Result struct {
	ExitCode int
	Stdout   string // standard output only
	Output   string // stdout and stderr interleaved
}

// Runner executes an external command and captures its output.
// A non-nil error means the process could not be started or waited on;
// a non-zero exit is reported through Result.ExitCode.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) (Result, error)
}

// ExecRunner runs commands with os/exec
type ExecRunner struct {
	logger *log.Logger
}

// NewExecRunner creates a Runner backed by os/exec
func NewExecRunner(logger *log.Logger) *ExecRunner {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &ExecRunner{logger: logger}
}

// Run executes name with args and waits for it to exit
func (r *ExecRunner) Run(ctx context.Context, name string, args ...string) (Result, error) {
	var stdout bytes.Buffer
	combined := &lockedBuffer{}

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = io.MultiWriter(&stdout, combined)
	cmd.Stderr = combined

	// log in a way we can copy-and-paste into a terminal
	r.logger.Debug("exec", "cmd", name+" "+strings.Join(args, " "))

	start := time.Now()
	err := cmd.Run()

	res := Result{
		Stdout: stdout.String(),
		Output: combined.String(),
	}

	if ctxErr := ctx.Err(); err != nil && ctxErr != nil {
		return res, ctxErr
	}

	var exitErr *exec.ExitError
	switch {
	case err == nil:
	case errors.As(err, &exitErr):
		res.ExitCode = exitErr.ExitCode()
	default:
		return res, err
	}

	r.logger.Debug("exec finished", "cmd", name, "exit", res.ExitCode, "duration", time.Since(start).Round(time.Millisecond))
	return res, nil
}

// lockedBuffer serialises writes from the stdout and stderr copiers
type lockedBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *lockedBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *lockedBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}
