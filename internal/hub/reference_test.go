package hub

import (
	"errors"
	"testing"
)

func TestParseReference(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected ChartReference
		wantErr  bool
	}{
		{
			name:     "repository and chart",
			input:    "bitnami/redis",
			expected: ChartReference{Repository: "bitnami", Chart: "redis"},
		},
		{
			name:     "hyphenated names",
			input:    "prometheus-community/kube-prometheus-stack",
			expected: ChartReference{Repository: "prometheus-community", Chart: "kube-prometheus-stack"},
		},
		{name: "no separator", input: "bitnami", wantErr: true},
		{name: "two separators", input: "bitnami/redis/extra", wantErr: true},
		{name: "empty repository", input: "/redis", wantErr: true},
		{name: "empty chart", input: "bitnami/", wantErr: true},
		{name: "empty string", input: "", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ref, err := ParseReference(tc.input)
			if tc.wantErr {
				if !errors.Is(err, ErrInvalidReference) {
					t.Errorf("expected ErrInvalidReference, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if ref != tc.expected {
				t.Errorf("expected %+v, got %+v", tc.expected, ref)
			}
			if ref.String() != tc.input {
				t.Errorf("expected String() to round-trip to %q, got %q", tc.input, ref.String())
			}
		})
	}
}
