package doctor

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

type fakeHelm struct {
	binary  string
	version string
	err     error
}

func (f fakeHelm) Binary() string { return f.binary }

func (f fakeHelm) Version(ctx context.Context) (string, error) {
	return f.version, f.err
}

type fakePinger struct {
	err error
}

func (f fakePinger) Ping(ctx context.Context) error { return f.err }

// stubLookPath makes LookPath succeed only for the given names
func stubLookPath(t *testing.T, found ...string) {
	t.Helper()
	prev := LookPath
	LookPath = func(file string) (string, error) {
		for _, f := range found {
			if f == file {
				return "/usr/bin/" + file, nil
			}
		}
		return "", errors.New("executable file not found in $PATH")
	}
	t.Cleanup(func() { LookPath = prev })
}

func TestCheckHelm(t *testing.T) {
	testCases := []struct {
		name     string
		found    []string
		helm     fakeHelm
		passed   bool
		contains string
	}{
		{
			name:     "installed",
			found:    []string{"helm"},
			helm:     fakeHelm{binary: "helm", version: "v3.20.0+g1234\n"},
			passed:   true,
			contains: "v3.20.0",
		},
		{
			name:     "missing",
			helm:     fakeHelm{binary: "helm"},
			passed:   false,
			contains: "not found",
		},
		{
			name:     "broken",
			found:    []string{"helm"},
			helm:     fakeHelm{binary: "helm", err: errors.New("exit 1")},
			passed:   false,
			contains: "version check failed",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			stubLookPath(t, tc.found...)

			result := CheckHelm(context.Background(), tc.helm)
			if !result.Required {
				t.Error("helm check should be required")
			}
			if result.Passed != tc.passed {
				t.Errorf("expected passed=%v, got %v (%s)", tc.passed, result.Passed, result.Message)
			}
			if !strings.Contains(result.Message, tc.contains) {
				t.Errorf("expected message to contain %q, got %q", tc.contains, result.Message)
			}
		})
	}
}

func TestCheckKubectl_MissingIsOptional(t *testing.T) {
	stubLookPath(t)

	result := CheckKubectl(context.Background())
	if result.Required {
		t.Error("kubectl check should be optional")
	}
	if result.Name != "kubectl binary" {
		t.Errorf("unexpected name %q", result.Name)
	}
}

func TestCheckHub(t *testing.T) {
	if r := CheckHub(context.Background(), fakePinger{}); !r.Passed {
		t.Errorf("expected reachable hub to pass, got %+v", r)
	}
	r := CheckHub(context.Background(), fakePinger{err: errors.New("dial tcp: timeout")})
	if r.Passed {
		t.Error("expected unreachable hub to fail")
	}
	if !strings.Contains(r.Details, "timeout") {
		t.Errorf("expected error details, got %q", r.Details)
	}
}

func TestCheckConfig(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	if r := CheckConfig(context.Background(), ""); !r.Passed || r.Message != "Using defaults" {
		t.Errorf("missing default config should pass with defaults, got %+v", r)
	}

	missing := filepath.Join(dir, "missing.yaml")
	if r := CheckConfig(context.Background(), missing); r.Passed {
		t.Error("missing explicit config should fail")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("search:\n  limit: 0\n"), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	if r := CheckConfig(context.Background(), bad); r.Passed || r.Message != "Invalid" {
		t.Errorf("invalid config should fail, got %+v", r)
	}
}

func TestRunAll_FailedOnlyForRequired(t *testing.T) {
	stubLookPath(t, "helm")
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	checks := Checks{
		Helm: fakeHelm{binary: "helm", version: "v3.20.0"},
		Hub:  fakePinger{err: errors.New("offline")},
	}
	results := checks.RunAll(context.Background())

	if len(results) != 4 {
		t.Fatalf("expected 4 results, got %d", len(results))
	}
	if Failed(results) {
		t.Errorf("optional failures should not fail doctor: %+v", results)
	}

	checks.Helm = fakeHelm{binary: "helm", err: errors.New("boom")}
	if !Failed(checks.RunAll(context.Background())) {
		t.Error("a failed required check should fail doctor")
	}
}
