package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestURL(t *testing.T) {
	opts := ClientOptions{Host: "http://localhost:8000"}
	assert.Equal(t, "http://localhost:8000/jobs", URL(opts, "/jobs"))

	// trailing slash on the host must not double up
	opts.Host = "http://localhost:8000/"
	assert.Equal(t, "http://localhost:8000/jobs", URL(opts, "/jobs"))
}

func TestWSURL(t *testing.T) {
	assert.Equal(t, "ws://localhost:8000/ws/candidate/42",
		WSURL(ClientOptions{Host: "http://localhost:8000"}, "/ws/candidate/42"))
	assert.Equal(t, "wss://api.example.com/ws/candidate/42",
		WSURL(ClientOptions{Host: "https://api.example.com"}, "/ws/candidate/42"))
}

func TestNewHTTPResponseError(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		expected string
	}{
		{
			name:     "plain detail string",
			body:     `{"detail": "cv not found"}`,
			expected: "cv not found",
		},
		{
			name:     "validation detail list",
			body:     `{"detail": [{"msg": "field required"}, {"msg": "value too long"}]}`,
			expected: "field required; value too long",
		},
		{
			name:     "empty body",
			body:     "",
			expected: "status code 404",
		},
		{
			name:     "unparseable body",
			body:     "gateway blew up",
			expected: "status code 404 (gateway blew up)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewHTTPResponseError(404, []byte(tt.body))
			assert.Equal(t, 404, err.StatusCode)
			assert.Equal(t, tt.expected, err.Message)
		})
	}
}

func TestGenerateSessionID(t *testing.T) {
	id := GenerateSessionID()
	assert.Contains(t, id, SessionPrefix)
	assert.NotEqual(t, id, GenerateSessionID())
}
