package util

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// MockRoundTripper implements http.RoundTripper
type MockRoundTripper struct {
	StatusCode int
	Body       string
	Calls      int
}

func (m *MockRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	m.Calls++
	header := make(http.Header)
	header.Set("Content-Type", "application/json")
	return &http.Response{
		StatusCode: m.StatusCode,
		Body:       io.NopCloser(bytes.NewBufferString(m.Body)),
		Header:     header,
		Request:    req,
	}, nil
}

func TestCheckForUpdates(t *testing.T) {
	tests := []struct {
		name            string
		currentVersion  string
		responseBody    string
		statusCode      int
		expectUpdate    bool
		expectError     bool
		expectedVersion string
	}{
		{
			name:            "Update Available",
			currentVersion:  "v0.9.0",
			responseBody:    `{"tag_name": "v0.10", "html_url": "http://release", "body": "notes"}`,
			statusCode:      200,
			expectUpdate:    true,
			expectedVersion: "v0.10",
		},
		{
			name:            "No Update Available",
			currentVersion:  "0.10.0",
			responseBody:    `{"tag_name": "v0.10.0", "html_url": "http://release", "body": "notes"}`,
			statusCode:      200,
			expectUpdate:    false,
			expectedVersion: "v0.10.0",
		},
		{
			name:            "Newer Local Version",
			currentVersion:  "v2.0.0",
			responseBody:    `{"tag_name": "1.1.0", "html_url": "http://release", "body": "notes"}`,
			statusCode:      200,
			expectUpdate:    false,
			expectedVersion: "v1.1.0",
		},
		{
			name:            "Development Build",
			currentVersion:  "0.0.0-dev",
			responseBody:    `{"tag_name": "v0.1.0", "html_url": "http://release", "body": "notes"}`,
			statusCode:      200,
			expectUpdate:    true,
			expectedVersion: "v0.1.0",
		},
		{
			name:            "Unparseable Tag",
			currentVersion:  "v1.0.0",
			responseBody:    `{"tag_name": "nightly", "html_url": "http://release", "body": "notes"}`,
			statusCode:      200,
			expectUpdate:    false,
			expectedVersion: "vnightly",
		},
		{
			name:           "API Error",
			currentVersion: "v1.0.0",
			responseBody:   `{"message": "Not Found"}`,
			statusCode:     404,
			expectError:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			transport := &MockRoundTripper{StatusCode: tt.statusCode, Body: tt.responseBody}
			checker := NewUpdateChecker(&http.Client{Transport: transport}, tt.currentVersion)

			result, err := checker.Check(context.Background())

			if tt.expectError {
				assert.Error(t, err)
				assert.NotErrorIs(t, err, ErrCheckThrottled)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expectUpdate, result.UpdateAvailable)
			assert.Equal(t, tt.expectedVersion, result.LatestVersion)
			assert.Equal(t, "http://release", result.ReleaseURL)
		})
	}
}

func TestCheckForUpdatesThrottled(t *testing.T) {
	transport := &MockRoundTripper{StatusCode: 200, Body: `{"tag_name": "v1.0.0", "html_url": "http://release"}`}
	checker := NewUpdateChecker(&http.Client{Transport: transport}, "v1.0.0")

	_, err := checker.Check(context.Background())
	require.NoError(t, err)

	_, err = checker.Check(context.Background())
	assert.ErrorIs(t, err, ErrCheckThrottled)
	assert.Equal(t, 1, transport.Calls, "throttled check must not hit the network")
}
