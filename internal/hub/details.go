package hub

import (
	"context"
	"fmt"
)

// HelmPackagePath is the package details endpoint for Helm charts
const HelmPackagePath = "packages/helm"

// ChartDetails is the detail view of a single chart
type ChartDetails struct {
	Name          string `json:"name"`
	Description   string `json:"description,omitempty"`
	Version       string `json:"version,omitempty"`
	RepositoryURL string `json:"repositoryUrl"`
}

type detailsResponse struct {
	Name        *string         `json:"name"`
	Description *string         `json:"description"`
	Version     *string         `json:"version"`
	Repository  *repositoryInfo `json:"repository"`
}

// GetDetails fetches the details of the chart named by ref
func (c *Client) GetDetails(ctx context.Context, ref ChartReference) (*ChartDetails, error) {
	if ref.Repository == "" || ref.Chart == "" {
		return nil, fmt.Errorf("%w %q", ErrInvalidReference, ref.String())
	}

	target, err := c.endpoint(nil, HelmPackagePath, ref.Repository, ref.Chart)
	if err != nil {
		return nil, fmt.Errorf("failed to build details URL: %w", err)
	}

	var resp detailsResponse
	if err := c.getJSON(ctx, target, &resp); err != nil {
		return nil, err
	}

	if resp.Name == nil {
		return nil, &MalformedResponseError{URL: target, Reason: "name is missing"}
	}
	if resp.Repository == nil || resp.Repository.URL == nil {
		return nil, &MalformedResponseError{URL: target, Reason: "repository.url is missing"}
	}

	return &ChartDetails{
		Name:          *resp.Name,
		Description:   deref(resp.Description),
		Version:       deref(resp.Version),
		RepositoryURL: *resp.Repository.URL,
	}, nil
}
