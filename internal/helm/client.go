// Package helm drives the helm binary for repository and release operations.
package helm

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
)

// DefaultBinary is the helm executable looked up on PATH
const DefaultBinary = "helm"

// Client runs helm subcommands through a Runner
type Client struct {
	runner Runner
	binary string
	logger *log.Logger
}

// ClientOption configures a Client
type ClientOption func(*Client)

// WithBinary overrides the helm executable
func WithBinary(path string) ClientOption {
	return func(c *Client) {
		if path != "" {
			c.binary = path
		}
	}
}

// WithLogger sets the diagnostic logger
func WithLogger(l *log.Logger) ClientOption {
	return func(c *Client) {
		if l != nil {
			c.logger = l
		}
	}
}

// NewClient creates a helm client. A nil runner uses os/exec.
func NewClient(runner Runner, opts ...ClientOption) *Client {
	c := &Client{
		binary: DefaultBinary,
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(c)
	}
	if runner == nil {
		runner = NewExecRunner(c.logger)
	}
	c.runner = runner
	return c
}

// Binary returns the helm executable in use
func (c *Client) Binary() string {
	return c.binary
}

// run invokes helm and turns a non-zero exit into a *CommandError
func (c *Client) run(ctx context.Context, args ...string) (Result, error) {
	res, err := c.runner.Run(ctx, c.binary, args...)
	if err != nil {
		return res, fmt.Errorf("failed to run %s: %w", c.binary, err)
	}
	if res.ExitCode != 0 {
		return res, &CommandError{
			Args:     append([]string{c.binary}, args...),
			ExitCode: res.ExitCode,
			Output:   res.Output,
		}
	}
	return res, nil
}

// AddRepository registers a chart repository and refreshes all repository
// indexes. The refresh is skipped when the add fails.
func (c *Client) AddRepository(ctx context.Context, name, url string) (string, error) {
	if name == "" || url == "" {
		return "", fmt.Errorf("%w: repository name and url are required", ErrInvalidRequest)
	}

	added, err := c.run(ctx, "repo", "add", name, url)
	if err != nil {
		return "", fmt.Errorf("failed to add helm repository: %w", err)
	}

	updated, err := c.run(ctx, "repo", "update")
	if err != nil {
		return "", fmt.Errorf("failed to update helm repositories: %w", err)
	}

	c.logger.Debug("repository added", "name", name, "url", url)
	return added.Output + updated.Output, nil
}

// Install installs a chart as a new release and returns helm's output
func (c *Client) Install(ctx context.Context, req InstallRequest) (string, error) {
	if err := req.Validate(); err != nil {
		return "", err
	}
	if err := CheckValuesFiles(req.ValuesFiles); err != nil {
		return "", err
	}

	res, err := c.run(ctx, req.Args()...)
	if err != nil {
		return "", fmt.Errorf("failed to install chart: %w", err)
	}
	return res.Output, nil
}

// ListReleases returns helm's release table exactly as printed
func (c *Client) ListReleases(ctx context.Context, req ListRequest) (string, error) {
	if err := req.Validate(); err != nil {
		return "", err
	}

	res, err := c.run(ctx, req.Args()...)
	if err != nil {
		return "", fmt.Errorf("failed to list releases: %w", err)
	}
	return res.Stdout, nil
}

// Uninstall removes a release and returns helm's output
func (c *Client) Uninstall(ctx context.Context, req UninstallRequest) (string, error) {
	if err := req.Validate(); err != nil {
		return "", err
	}

	res, err := c.run(ctx, req.Args()...)
	if err != nil {
		return "", fmt.Errorf("failed to uninstall release: %w", err)
	}
	return res.Output, nil
}

// Version returns the short helm version string
func (c *Client) Version(ctx context.Context) (string, error) {
	res, err := c.run(ctx, "version", "--short")
	if err != nil {
		return "", err
	}
	return res.Stdout, nil
}
