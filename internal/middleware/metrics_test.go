package middleware

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeEndpoint(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{path: "/v1/campaigns", want: "/v1/campaigns"},
		{path: "/v1/campaigns/abc-123", want: "/v1/campaigns/:id"},
		{path: "/v1/campaigns/abc-123/visuals", want: "/v1/campaigns/:id/visuals"},
		{path: "/v1/agents", want: "/v1/agents"},
		{path: "/health", want: "/health"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, normalizeEndpoint(tt.path))
		})
	}
}
