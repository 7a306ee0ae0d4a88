package hub

import (
	"context"
	"fmt"
	"net/url"
)

const (
	// SearchPath is the search endpoint relative to the base URL
	SearchPath = "packages/search"

	// KindHelmChart is the Artifact Hub package kind for Helm charts
	KindHelmChart = "0"

	// SortRelevance orders results by relevance to the query
	SortRelevance = "relevance"
)

// ChartSummary is a single search hit
type ChartSummary struct {
	Name        string `json:"name"`
	Repository  string `json:"repository"`
	Description string `json:"description,omitempty"`
	Version     string `json:"version,omitempty"`
}

// The structs below mirror the subset of the search response that is read.
// Pointer fields distinguish absent keys from empty strings.

type searchResponse struct {
	Packages []searchPackage `json:"packages"`
}

type searchPackage struct {
	Name        *string         `json:"name"`
	Description *string         `json:"description"`
	Version     *string         `json:"version"`
	Repository  *repositoryInfo `json:"repository"`
}

type repositoryInfo struct {
	Name *string `json:"name"`
	URL  *string `json:"url"`
}

// Search queries the hub for Helm charts matching keyword, ordered by
// relevance. A response without a packages list yields no results.
func (c *Client) Search(ctx context.Context, keyword string) ([]ChartSummary, error) {
	query := url.Values{}
	query.Set("kind", KindHelmChart)
	query.Set("ts_query", keyword)
	query.Set("sort", SortRelevance)

	target, err := c.endpoint(query, SearchPath)
	if err != nil {
		return nil, fmt.Errorf("failed to build search URL: %w", err)
	}

	var resp searchResponse
	if err := c.getJSON(ctx, target, &resp); err != nil {
		return nil, err
	}

	charts := make([]ChartSummary, 0, len(resp.Packages))
	for i, pkg := range resp.Packages {
		if pkg.Name == nil {
			return nil, &MalformedResponseError{URL: target, Reason: fmt.Sprintf("packages[%d].name is missing", i)}
		}
		if pkg.Repository == nil || pkg.Repository.Name == nil {
			return nil, &MalformedResponseError{URL: target, Reason: fmt.Sprintf("packages[%d].repository.name is missing", i)}
		}
		charts = append(charts, ChartSummary{
			Name:        *pkg.Name,
			Repository:  *pkg.Repository.Name,
			Description: deref(pkg.Description),
			Version:     deref(pkg.Version),
		})
	}

	c.logger.Debug("search complete", "keyword", keyword, "results", len(charts))
	return charts, nil
}

// Ping checks that the search endpoint answers with a decodable body
func (c *Client) Ping(ctx context.Context) error {
	_, err := c.Search(ctx, "helm")
	return err
}

// Top returns at most n charts from the front of charts
func Top(charts []ChartSummary, n int) []ChartSummary {
	if n < 0 || len(charts) <= n {
		return charts
	}
	return charts[:n]
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
