// ABOUTME: This file tests the -health-check probe
// ABOUTME: Covers healthy, unhealthy, and unreachable endpoints

package main

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProbeHealth(t *testing.T) {
	tests := map[string]struct {
		handler        http.HandlerFunc
		expectedStatus int
		expectedBody   string
	}{
		"healthy service": {
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
				w.Write([]byte(`{"status":"healthy"}`))
			},
			expectedStatus: http.StatusOK,
			expectedBody:   "healthy",
		},
		"degraded still passes": {
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
				w.Write([]byte(`{"status":"degraded"}`))
			},
			expectedStatus: http.StatusOK,
			expectedBody:   "degraded",
		},
		"unhealthy service": {
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusServiceUnavailable)
				w.Write([]byte(`{"status":"unhealthy"}`))
			},
			expectedStatus: http.StatusServiceUnavailable,
			expectedBody:   "unhealthy",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/v1/health", r.URL.Path)
				tt.handler(w, r)
			}))
			defer srv.Close()

			addr := strings.TrimPrefix(srv.URL, "http://")
			status, body, err := probeHealth(addr, time.Second)

			require.NoError(t, err)
			assert.Equal(t, tt.expectedStatus, status)
			assert.Equal(t, tt.expectedBody, body)
		})
	}
}

func TestProbeHealth_Unreachable(t *testing.T) {
	_, _, err := probeHealth("127.0.0.1:1", 500*time.Millisecond)
	assert.Error(t, err)
}

func TestPerformHealthCheck_ExitCodes(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte(`{"status":"unhealthy"}`))
	}))
	defer srv.Close()

	addr := strings.TrimPrefix(srv.URL, "http://")
	assert.Equal(t, 1, performHealthCheck(addr))
}
