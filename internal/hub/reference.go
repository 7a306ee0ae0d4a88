package hub

import (
	"fmt"
	"strings"
)

// ReferenceSeparator splits the repository from the chart name
const ReferenceSeparator = "/"

// ChartReference names a chart within a repository, e.g. bitnami/redis
type ChartReference struct {
	Repository string
	Chart      string
}

// String returns the combined "repository/chart" form
func (r ChartReference) String() string {
	return r.Repository + ReferenceSeparator + r.Chart
}

// ParseReference splits s into a ChartReference. Exactly one separator with a
// non-empty part on each side is accepted.
func ParseReference(s string) (ChartReference, error) {
	if strings.Count(s, ReferenceSeparator) != 1 {
		return ChartReference{}, fmt.Errorf("%w %q: expected repository/chart", ErrInvalidReference, s)
	}

	repo, chart, _ := strings.Cut(s, ReferenceSeparator)
	if repo == "" || chart == "" {
		return ChartReference{}, fmt.Errorf("%w %q: repository and chart must both be set", ErrInvalidReference, s)
	}

	return ChartReference{Repository: repo, Chart: chart}, nil
}
