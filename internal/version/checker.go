package version

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/Masterminds/semver/v3"
)

const (
	// GitHubReleasesURL is the API endpoint for the latest release
	GitHubReleasesURL = "https://api.github.com/repos/kanzi/charthub/releases/latest"

	// CheckTimeout is the maximum time to wait for the GitHub API
	CheckTimeout = 2 * time.Second
)

// CheckResult contains the result of a version check
type CheckResult struct {
	CurrentVersion  string
	LatestVersion   string
	UpdateAvailable bool
	ReleaseURL      string
	FromCache       bool
}

type githubRelease struct {
	TagName string `json:"tag_name"`
	HTMLURL string `json:"html_url"`
}

// Checker looks up the latest release, consulting the on-disk cache first
type Checker struct {
	ReleasesURL string
	HTTPClient  *http.Client
	Cache       *Cache
}

// NewChecker returns a Checker for the charthub releases feed with the
// default cache location
func NewChecker() *Checker {
	return &Checker{
		ReleasesURL: GitHubReleasesURL,
		HTTPClient:  &http.Client{Timeout: CheckTimeout},
		Cache:       NewCache(""),
	}
}

// Check returns the cached result when fresh, otherwise queries GitHub and
// refreshes the cache. A cache write failure does not fail the check.
func (c *Checker) Check(ctx context.Context, currentVersion string) (*CheckResult, error) {
	if c.Cache != nil {
		if res := c.Cache.Result(currentVersion); res != nil {
			return res, nil
		}
	}

	res, err := c.Fetch(ctx, currentVersion)
	if err != nil {
		return nil, err
	}

	if c.Cache != nil {
		_ = c.Cache.Save(res.LatestVersion, res.ReleaseURL)
	}
	return res, nil
}

// Fetch queries the GitHub API, bypassing the cache
func (c *Checker) Fetch(ctx context.Context, currentVersion string) (*CheckResult, error) {
	ctx, cancel := context.WithTimeout(ctx, CheckTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.ReleasesURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/vnd.github.v3+json")
	req.Header.Set("User-Agent", "charthub-version-check")

	client := c.HTTPClient
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch latest release: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("GitHub API returned status %d", resp.StatusCode)
	}

	var release githubRelease
	if err := json.NewDecoder(resp.Body).Decode(&release); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return newResult(currentVersion, release.TagName, release.HTMLURL), nil
}

func newResult(current, latest, url string) *CheckResult {
	result := &CheckResult{
		CurrentVersion: current,
		LatestVersion:  latest,
		ReleaseURL:     url,
	}
	// unparsable versions never report an update
	if newer, err := IsNewerVersion(current, latest); err == nil {
		result.UpdateAvailable = newer
	}
	return result
}

// IsNewerVersion reports whether latest is a higher semver than current.
// Development builds never report an update.
func IsNewerVersion(current, latest string) (bool, error) {
	current = normaliseVersion(current)
	latest = normaliseVersion(latest)

	if current == "dev" {
		return false, nil
	}

	currentVer, err := semver.NewVersion(current)
	if err != nil {
		return false, fmt.Errorf("failed to parse current version %q: %w", current, err)
	}
	latestVer, err := semver.NewVersion(latest)
	if err != nil {
		return false, fmt.Errorf("failed to parse latest version %q: %w", latest, err)
	}

	return latestVer.GreaterThan(currentVer), nil
}

func normaliseVersion(v string) string {
	v = strings.TrimSpace(v)
	if v == "" || v == "dev" || v == "none" {
		return "dev"
	}
	return strings.TrimPrefix(v, "v")
}
