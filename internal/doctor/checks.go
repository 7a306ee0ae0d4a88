package doctor

import (
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/kanzi/charthub/internal/config"
)

// CheckResult represents the result of a pre-flight check
type CheckResult struct {
	Name       string
	Passed     bool
	Message    string
	Details    string
	Suggestion string
	Required   bool
}

// Check is a function that performs a pre-flight check
type Check func(ctx context.Context) CheckResult

// HelmVersioner reports the installed helm version
type HelmVersioner interface {
	Binary() string
	Version(ctx context.Context) (string, error)
}

// Pinger probes the chart hub
type Pinger interface {
	Ping(ctx context.Context) error
}

// LookPath resolves executables; tests replace it
var LookPath = exec.LookPath

// Checks wires the default set of checks
type Checks struct {
	Helm       HelmVersioner
	Hub        Pinger
	ConfigPath string
}

// RunAll runs every check in order
func (c Checks) RunAll(ctx context.Context) []CheckResult {
	checks := []Check{
		func(ctx context.Context) CheckResult { return CheckHelm(ctx, c.Helm) },
		CheckKubectl,
		func(ctx context.Context) CheckResult { return CheckConfig(ctx, c.ConfigPath) },
		func(ctx context.Context) CheckResult { return CheckHub(ctx, c.Hub) },
	}

	results := make([]CheckResult, 0, len(checks))
	for _, check := range checks {
		results = append(results, check(ctx))
	}
	return results
}

// Failed reports whether any required check failed
func Failed(results []CheckResult) bool {
	for _, r := range results {
		if r.Required && !r.Passed {
			return true
		}
	}
	return false
}

// CheckHelm checks that the helm binary is installed and runs
func CheckHelm(ctx context.Context, h HelmVersioner) CheckResult {
	result := CheckResult{
		Name:     "helm binary",
		Required: true,
	}

	if _, err := LookPath(h.Binary()); err != nil {
		result.Message = fmt.Sprintf("%s not found in PATH", h.Binary())
		result.Suggestion = "Install helm: https://helm.sh/docs/intro/install/"
		return result
	}

	version, err := h.Version(ctx)
	if err != nil {
		result.Message = "Found but version check failed"
		result.Details = err.Error()
		return result
	}

	result.Passed = true
	result.Message = fmt.Sprintf("Found (%s)", strings.TrimSpace(version))
	return result
}

// CheckKubectl checks if kubectl is available. helm talks to the cluster
// itself, so this is informational only.
func CheckKubectl(ctx context.Context) CheckResult {
	result := CheckResult{
		Name:     "kubectl binary",
		Required: false,
	}

	kubectlPath, err := LookPath("kubectl")
	if err != nil {
		result.Message = "Not found (optional)"
		result.Suggestion = "Install kubectl: https://kubernetes.io/docs/tasks/tools/"
		return result
	}

	output, err := exec.CommandContext(ctx, kubectlPath, "version", "--client").Output()
	if err != nil {
		result.Passed = true
		result.Message = "Found but version check failed"
		return result
	}

	version := strings.TrimSpace(strings.SplitN(string(output), "\n", 2)[0])
	version = strings.TrimSpace(strings.TrimPrefix(version, "Client Version:"))

	result.Passed = true
	result.Message = fmt.Sprintf("Found (%s)", version)
	return result
}

// CheckConfig loads and validates the configuration file
func CheckConfig(ctx context.Context, path string) CheckResult {
	result := CheckResult{
		Name:     "Configuration",
		Required: true,
	}

	shown := path
	if shown == "" {
		shown, _ = config.DefaultPath()
	}

	if !config.Exists(path) {
		if path != "" {
			result.Message = "Not found"
			result.Details = shown
			result.Suggestion = "Run 'charthub init' to create a configuration file"
			return result
		}
		result.Passed = true
		result.Message = "Using defaults"
		result.Details = fmt.Sprintf("no file at %s", shown)
		return result
	}

	if _, err := config.Load(path); err != nil {
		result.Message = "Invalid"
		result.Details = err.Error()
		result.Suggestion = "Run 'charthub validate' for details"
		return result
	}

	result.Passed = true
	result.Message = fmt.Sprintf("Valid (%s)", shown)
	return result
}

// CheckHub checks that the Artifact Hub API answers a search
func CheckHub(ctx context.Context, p Pinger) CheckResult {
	result := CheckResult{
		Name:     "Artifact Hub API",
		Required: false,
	}

	if p == nil {
		result.Message = "Not configured"
		return result
	}

	if err := p.Ping(ctx); err != nil {
		result.Message = "Unreachable"
		result.Details = err.Error()
		result.Suggestion = "Check network access or the hub.url setting"
		return result
	}

	result.Passed = true
	result.Message = "Reachable"
	return result
}
