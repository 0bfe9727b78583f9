// ABOUTME: Tests for the OAuth2 token endpoint client
// ABOUTME: Uses httptest servers to exercise grant flows and error mapping

package driver

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOAuth2Client_RefreshToken(t *testing.T) {
	tests := map[string]struct {
		handler     http.HandlerFunc
		expectedErr error
		checkResult func(t *testing.T, resp *tokenResult)
	}{
		"successful refresh with rotated refresh token": {
			handler: func(w http.ResponseWriter, r *http.Request) {
				require.Equal(t, http.MethodPost, r.Method)
				require.NoError(t, r.ParseForm())
				assert.Equal(t, "refresh_token", r.FormValue("grant_type"))
				assert.Equal(t, "old-refresh", r.FormValue("refresh_token"))
				assert.Equal(t, "client-id", r.FormValue("client_id"))

				json.NewEncoder(w).Encode(map[string]any{
					"access_token":  "new-access",
					"token_type":    "Bearer",
					"expires_in":    86400,
					"refresh_token": "new-refresh",
				})
			},
			checkResult: func(t *testing.T, resp *tokenResult) {
				assert.Equal(t, "new-access", resp.AccessToken)
				assert.Equal(t, "new-refresh", resp.RefreshToken)
				assert.Equal(t, 86400, resp.ExpiresIn)
			},
		},
		"successful refresh without rotation keeps empty refresh token": {
			handler: func(w http.ResponseWriter, r *http.Request) {
				json.NewEncoder(w).Encode(map[string]any{
					"access_token": "new-access",
					"token_type":   "Bearer",
					"expires_in":   86400,
				})
			},
			checkResult: func(t *testing.T, resp *tokenResult) {
				assert.Equal(t, "new-access", resp.AccessToken)
				assert.Empty(t, resp.RefreshToken)
			},
		},
		"invalid_grant on 401 maps to invalid refresh token": {
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusUnauthorized)
				json.NewEncoder(w).Encode(map[string]string{
					"error":             "invalid_grant",
					"error_description": "refresh token expired",
				})
			},
			expectedErr: ErrInvalidRefreshToken,
		},
		"invalid_grant on 400 maps to invalid refresh token": {
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(map[string]string{
					"error": "invalid_grant",
				})
			},
			expectedErr: ErrInvalidRefreshToken,
		},
		"other 400 error maps to invalid grant": {
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(map[string]string{
					"error": "unsupported_grant_type",
				})
			},
			expectedErr: ErrInvalidGrant,
		},
		"403 maps to revoked token": {
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusForbidden)
			},
			expectedErr: ErrTokenRevoked,
		},
		"429 maps to rate limited": {
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Retry-After", "60")
				w.WriteHeader(http.StatusTooManyRequests)
			},
			expectedErr: ErrRateLimited,
		},
		"503 maps to temporary failure": {
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusServiceUnavailable)
			},
			expectedErr: ErrTemporaryFailure,
		},
		"200 without access token is an error": {
			handler: func(w http.ResponseWriter, r *http.Request) {
				json.NewEncoder(w).Encode(map[string]any{"token_type": "Bearer"})
			},
			expectedErr: nil, // plain error, not a sentinel
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			server := httptest.NewServer(tc.handler)
			defer server.Close()

			client := NewOAuth2Client("client-id", "client-secret", server.URL, nil)
			resp, err := client.RefreshToken(context.Background(), "old-refresh")

			if tc.checkResult != nil {
				require.NoError(t, err)
				tc.checkResult(t, &tokenResult{
					AccessToken:  resp.AccessToken,
					RefreshToken: resp.RefreshToken,
					ExpiresIn:    resp.ExpiresIn,
				})
				return
			}

			require.Error(t, err)
			if tc.expectedErr != nil {
				assert.ErrorIs(t, err, tc.expectedErr)
			}
		})
	}
}

type tokenResult struct {
	AccessToken  string
	RefreshToken string
	ExpiresIn    int
}

func TestOAuth2Client_ExchangeAuthCode(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "authorization_code", r.FormValue("grant_type"))
		assert.Equal(t, "auth-code", r.FormValue("code"))
		assert.Equal(t, "http://localhost/callback", r.FormValue("redirect_uri"))

		json.NewEncoder(w).Encode(map[string]any{
			"access_token":  "first-access",
			"token_type":    "Bearer",
			"expires_in":    86400,
			"refresh_token": "first-refresh",
			"scope":         "read write",
		})
	}))
	defer server.Close()

	client := NewOAuth2Client("client-id", "client-secret", server.URL, nil)
	resp, err := client.ExchangeAuthCode(context.Background(), "auth-code", "http://localhost/callback")

	require.NoError(t, err)
	assert.Equal(t, "first-access", resp.AccessToken)
	assert.Equal(t, "first-refresh", resp.RefreshToken)
	assert.Equal(t, "read write", resp.Scope)
}
