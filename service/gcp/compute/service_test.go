package gcpcompute

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractResourceName(t *testing.T) {
	tests := []struct {
		name     string
		url      string
		expected string
	}{
		{
			name:     "full network url",
			url:      "https://www.googleapis.com/compute/v1/projects/my-project/global/networks/default",
			expected: "default",
		},
		{
			name:     "partial url",
			url:      "projects/my-project/global/networks/prod-vpc",
			expected: "prod-vpc",
		},
		{
			name:     "bare name",
			url:      "default",
			expected: "default",
		},
		{
			name:     "empty string",
			url:      "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, extractResourceName(tt.url))
		})
	}
}
