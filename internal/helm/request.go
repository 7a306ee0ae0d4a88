package helm

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
	"helm.sh/helm/v3/pkg/chartutil"
	"helm.sh/helm/v3/pkg/strvals"
	"k8s.io/apimachinery/pkg/util/validation"
)

// DefaultNamespace is used when a request leaves the namespace empty
const DefaultNamespace = "default"

// InstallRequest describes a chart installation
type InstallRequest struct {
	Chart           string   // repo/chart, oci:// URL, directory or .tgz
	ReleaseName     string   // name of the release to create
	Namespace       string   // target namespace, DefaultNamespace if empty
	Version         string   // optional version or constraint
	ValuesFiles     []string // passed as -f, in order
	SetValues       []string // passed as --set, in order
	CreateNamespace bool
}

// UninstallRequest describes a release removal
type UninstallRequest struct {
	ReleaseName string
	Namespace   string
}

// ListRequest selects which releases to list. An empty Namespace with
// AllNamespaces unset leaves the scope to helm's current context.
type ListRequest struct {
	Namespace     string
	AllNamespaces bool
}

func namespaceOrDefault(ns string) string {
	if ns == "" {
		return DefaultNamespace
	}
	return ns
}

// Validate checks the request without touching the filesystem
func (r InstallRequest) Validate() error {
	var errs []string

	if strings.TrimSpace(r.Chart) == "" {
		errs = append(errs, "chart is required")
	}
	if err := chartutil.ValidateReleaseName(r.ReleaseName); err != nil {
		errs = append(errs, fmt.Sprintf("release name %q: %v", r.ReleaseName, err))
	}
	if msg := validateNamespace(namespaceOrDefault(r.Namespace)); msg != "" {
		errs = append(errs, msg)
	}
	if r.Version != "" {
		if _, err := semver.NewConstraint(r.Version); err != nil {
			errs = append(errs, fmt.Sprintf("version %q is not a valid version or constraint: %v", r.Version, err))
		}
	}
	for _, expr := range r.SetValues {
		if _, err := strvals.Parse(expr); err != nil {
			errs = append(errs, fmt.Sprintf("--set %q: %v", expr, err))
		}
	}

	return joinErrors(errs)
}

// Args builds the helm argument list. The version flag, when present,
// always follows the chart reference.
func (r InstallRequest) Args() []string {
	args := []string{"install", r.ReleaseName, r.Chart, "--namespace", namespaceOrDefault(r.Namespace)}
	if r.Version != "" {
		args = append(args, "--version", r.Version)
	}
	for _, f := range r.ValuesFiles {
		args = append(args, "-f", f)
	}
	for _, s := range r.SetValues {
		args = append(args, "--set", s)
	}
	if r.CreateNamespace {
		args = append(args, "--create-namespace")
	}
	return args
}

// Validate checks the release name and namespace
func (r UninstallRequest) Validate() error {
	var errs []string
	if err := chartutil.ValidateReleaseName(r.ReleaseName); err != nil {
		errs = append(errs, fmt.Sprintf("release name %q: %v", r.ReleaseName, err))
	}
	if msg := validateNamespace(namespaceOrDefault(r.Namespace)); msg != "" {
		errs = append(errs, msg)
	}
	return joinErrors(errs)
}

// Args builds the helm argument list
func (r UninstallRequest) Args() []string {
	return []string{"uninstall", r.ReleaseName, "-n", namespaceOrDefault(r.Namespace)}
}

// Validate rejects conflicting scopes and malformed namespaces
func (r ListRequest) Validate() error {
	if r.Namespace != "" && r.AllNamespaces {
		return fmt.Errorf("%w: namespace and all-namespaces are mutually exclusive", ErrInvalidRequest)
	}
	if r.Namespace != "" {
		if msg := validateNamespace(r.Namespace); msg != "" {
			return fmt.Errorf("%w: %s", ErrInvalidRequest, msg)
		}
	}
	return nil
}

// Args builds the helm argument list
func (r ListRequest) Args() []string {
	args := []string{"list"}
	switch {
	case r.AllNamespaces:
		args = append(args, "-A")
	case r.Namespace != "":
		args = append(args, "-n", r.Namespace)
	}
	return args
}

func validateNamespace(ns string) string {
	if problems := validation.IsDNS1123Label(ns); len(problems) > 0 {
		return fmt.Sprintf("namespace %q: %s", ns, strings.Join(problems, "; "))
	}
	return ""
}

func joinErrors(errs []string) error {
	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %s", ErrInvalidRequest, strings.Join(errs, "; "))
}
