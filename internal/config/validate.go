package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/hashicorp/go-multierror"
	"k8s.io/apimachinery/pkg/util/validation"
)

// Validate checks the configuration and reports every problem at once
func (c *Config) Validate() error {
	var result *multierror.Error

	// hub
	if c.Hub.URL == "" {
		result = multierror.Append(result, fmt.Errorf("hub.url is required"))
	} else if u, err := url.Parse(c.Hub.URL); err != nil || u.Scheme == "" || u.Host == "" {
		result = multierror.Append(result, fmt.Errorf("hub.url must be an absolute URL (got: %s)", c.Hub.URL))
	} else if u.Scheme != "http" && u.Scheme != "https" {
		result = multierror.Append(result, fmt.Errorf("hub.url scheme must be http or https (got: %s)", u.Scheme))
	}

	if c.Hub.Timeout != "" {
		if d, err := time.ParseDuration(c.Hub.Timeout); err != nil {
			result = multierror.Append(result, fmt.Errorf("hub.timeout is not a valid duration: %s", c.Hub.Timeout))
		} else if d <= 0 {
			result = multierror.Append(result, fmt.Errorf("hub.timeout must be positive (got: %s)", c.Hub.Timeout))
		}
	}

	// helm
	if strings.TrimSpace(c.Helm.Binary) == "" {
		result = multierror.Append(result, fmt.Errorf("helm.binary is required"))
	}
	if c.Helm.DefaultNamespace != "" {
		if problems := validation.IsDNS1123Label(c.Helm.DefaultNamespace); len(problems) > 0 {
			result = multierror.Append(result, fmt.Errorf("helm.defaultNamespace %q: %s", c.Helm.DefaultNamespace, strings.Join(problems, "; ")))
		}
	}

	// search
	if c.Search.Limit < 1 {
		result = multierror.Append(result, fmt.Errorf("search.limit must be at least 1 (got: %d)", c.Search.Limit))
	}

	if result == nil {
		return nil
	}
	result.ErrorFormat = listFormat
	return result
}

func listFormat(errs []error) string {
	lines := make([]string, len(errs))
	for i, err := range errs {
		lines[i] = err.Error()
	}
	return fmt.Sprintf("validation errors:\n  - %s", strings.Join(lines, "\n  - "))
}
