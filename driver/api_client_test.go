// ABOUTME: Tests for the authenticated reader API client
// ABOUTME: Covers header capture, error mapping, and form mutations

package driver

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAPIClient_GetJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
		assert.Equal(t, "/subscription/list", r.URL.Path)
		assert.Equal(t, "100", r.URL.Query().Get("n"))

		w.Header().Set("X-Reader-Zone1-Usage", "42")
		w.Header().Set("X-Reader-Zone1-Limit", "100")
		w.Header().Set("X-Reader-Zone1-Remaining", "58")
		w.Header().Set("X-Reader-Limits-Reset-After", "3600")
		json.NewEncoder(w).Encode(map[string]any{"subscriptions": []any{}})
	}))
	defer server.Close()

	client := NewAPIClient(server.URL, nil)

	var body struct {
		Subscriptions []any `json:"subscriptions"`
	}
	headers, err := client.GetJSON(context.Background(), "test-token", "/subscription/list",
		map[string]string{"n": "100"}, &body)

	require.NoError(t, err)
	assert.Equal(t, 42, headers.Zone1Usage)
	assert.Equal(t, 100, headers.Zone1Limit)
	assert.Equal(t, 58, headers.Zone1Remaining)
	assert.Equal(t, time.Hour, headers.ResetAfter)
	assert.Equal(t, -1, headers.Zone2Usage)
	assert.True(t, HeadersReported(headers))
}

func TestAPIClient_GetJSON_ErrorMapping(t *testing.T) {
	tests := map[string]struct {
		status      int
		expectedErr error
	}{
		"401 maps to unauthorized":        {status: http.StatusUnauthorized, expectedErr: ErrUnauthorized},
		"429 maps to rate limited":        {status: http.StatusTooManyRequests, expectedErr: ErrRateLimited},
		"500 maps to temporary failure":   {status: http.StatusInternalServerError, expectedErr: ErrTemporaryFailure},
		"503 maps to temporary failure":   {status: http.StatusServiceUnavailable, expectedErr: ErrTemporaryFailure},
		"404 yields a plain status error": {status: http.StatusNotFound, expectedErr: nil},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
			}))
			defer server.Close()

			client := NewAPIClient(server.URL, nil)
			var out map[string]any
			_, err := client.GetJSON(context.Background(), "test-token", "/whatever", nil, &out)

			require.Error(t, err)
			if tc.expectedErr != nil {
				assert.ErrorIs(t, err, tc.expectedErr)
			}
		})
	}
}

func TestAPIClient_GetJSON_HeadersSurvivesRateLimitError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Reader-Zone1-Usage", "100")
		w.Header().Set("X-Reader-Zone1-Limit", "100")
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := NewAPIClient(server.URL, nil)
	var out map[string]any
	headers, err := client.GetJSON(context.Background(), "test-token", "/stream", nil, &out)

	require.ErrorIs(t, err, ErrRateLimited)
	assert.Equal(t, 100, headers.Zone1Usage)
	assert.Equal(t, 100, headers.Zone1Limit)
}

func TestAPIClient_PostForm(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/edit-tag", r.URL.Path)
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "item-1", r.FormValue("i"))
		assert.Equal(t, "user/-/state/com.google/read", r.FormValue("a"))

		w.Header().Set("X-Reader-Zone2-Usage", "7")
		w.Header().Set("X-Reader-Zone2-Limit", "100")
		w.Write([]byte("OK"))
	}))
	defer server.Close()

	client := NewAPIClient(server.URL, nil)
	form := url.Values{
		"i": {"item-1"},
		"a": {"user/-/state/com.google/read"},
	}
	headers, err := client.PostForm(context.Background(), "test-token", "/edit-tag", form)

	require.NoError(t, err)
	assert.Equal(t, 7, headers.Zone2Usage)
	assert.Equal(t, 100, headers.Zone2Limit)
}

func TestParseRateLimitHeaders_AbsentAndMalformed(t *testing.T) {
	h := http.Header{}
	h.Set("X-Reader-Zone1-Usage", "not-a-number")

	headers := ParseRateLimitHeaders(h)

	assert.Equal(t, -1, headers.Zone1Usage)
	assert.Equal(t, -1, headers.Zone2Usage)
	assert.Zero(t, headers.ResetAfter)
	assert.False(t, HeadersReported(headers))
}
