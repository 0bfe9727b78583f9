// ABOUTME: Authenticated HTTP client for the provider's reader API
// ABOUTME: Decodes typed JSON responses and captures rate-limit zone headers

package driver

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"feed-sync-engine/models"
)

// APIClient makes authenticated requests against the provider's reader API.
// Every call returns the rate-limit header snapshot alongside the payload so
// the caller can reconcile local usage estimates with the provider's counters.
type APIClient struct {
	apiBaseURL string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewAPIClient creates a reader API client.
func NewAPIClient(apiBaseURL string, logger *slog.Logger) *APIClient {
	if logger == nil {
		logger = slog.Default()
	}

	return &APIClient{
		apiBaseURL: strings.TrimSuffix(apiBaseURL, "/"),
		logger:     logger,
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
			Transport: &http.Transport{
				TLSHandshakeTimeout:   10 * time.Second,
				ResponseHeaderTimeout: 30 * time.Second,
				IdleConnTimeout:       90 * time.Second,
				MaxIdleConns:          10,
				MaxIdleConnsPerHost:   2,
			},
		},
	}
}

// SetHTTPClient allows injecting a custom HTTP client (useful for testing).
func (c *APIClient) SetHTTPClient(client *http.Client) {
	c.httpClient = client
}

// GetJSON performs an authenticated GET and decodes the JSON body into out.
func (c *APIClient) GetJSON(ctx context.Context, accessToken, endpoint string, params map[string]string, out any) (models.RateLimitHeaders, error) {
	reqURL := c.apiBaseURL + endpoint
	if len(params) > 0 {
		values := url.Values{}
		for key, value := range params {
			values.Set(key, value)
		}
		reqURL += "?" + values.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return emptyHeaders(), fmt.Errorf("failed to create API request: %w", err)
	}

	return c.do(req, accessToken, out)
}

// PostForm performs an authenticated form POST, used for tag mutations.
func (c *APIClient) PostForm(ctx context.Context, accessToken, endpoint string, form url.Values) (models.RateLimitHeaders, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiBaseURL+endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return emptyHeaders(), fmt.Errorf("failed to create API request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	return c.do(req, accessToken, nil)
}

func (c *APIClient) do(req *http.Request, accessToken string, out any) (models.RateLimitHeaders, error) {
	req.Header.Set("Authorization", "Bearer "+accessToken)
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return emptyHeaders(), fmt.Errorf("failed to execute API request: %w", err)
	}
	defer resp.Body.Close()

	headers := ParseRateLimitHeaders(resp.Header)

	switch {
	case resp.StatusCode == http.StatusOK:
		// fallthrough to decode below

	case resp.StatusCode == http.StatusUnauthorized:
		return headers, fmt.Errorf("%w: HTTP 401 on %s", ErrUnauthorized, req.URL.Path)

	case resp.StatusCode == http.StatusTooManyRequests:
		return headers, fmt.Errorf("%w: zone1 %d/%d, zone2 %d/%d", ErrRateLimited,
			headers.Zone1Usage, headers.Zone1Limit, headers.Zone2Usage, headers.Zone2Limit)

	case resp.StatusCode >= http.StatusInternalServerError:
		return headers, fmt.Errorf("%w: HTTP %d on %s", ErrTemporaryFailure, resp.StatusCode, req.URL.Path)

	default:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return headers, fmt.Errorf("API request failed with status %d: %s", resp.StatusCode, string(body))
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return headers, fmt.Errorf("failed to decode API response: %w", err)
		}
	}

	return headers, nil
}

// ParseRateLimitHeaders extracts zone usage from provider response headers.
// Absent or malformed headers yield -1 so callers can tell "not reported"
// apart from a real zero.
func ParseRateLimitHeaders(h http.Header) models.RateLimitHeaders {
	headers := emptyHeaders()

	headers.Zone1Usage = headerInt(h, "X-Reader-Zone1-Usage")
	headers.Zone1Limit = headerInt(h, "X-Reader-Zone1-Limit")
	headers.Zone1Remaining = headerInt(h, "X-Reader-Zone1-Remaining")
	headers.Zone2Usage = headerInt(h, "X-Reader-Zone2-Usage")
	headers.Zone2Limit = headerInt(h, "X-Reader-Zone2-Limit")
	headers.Zone2Remaining = headerInt(h, "X-Reader-Zone2-Remaining")

	if seconds := headerInt(h, "X-Reader-Limits-Reset-After"); seconds >= 0 {
		headers.ResetAfter = time.Duration(seconds) * time.Second
	}

	return headers
}

// HeadersReported reports whether at least one zone header was present.
func HeadersReported(h models.RateLimitHeaders) bool {
	return h.Zone1Usage >= 0 || h.Zone2Usage >= 0
}

func emptyHeaders() models.RateLimitHeaders {
	return models.RateLimitHeaders{
		Zone1Usage:     -1,
		Zone1Limit:     -1,
		Zone1Remaining: -1,
		Zone2Usage:     -1,
		Zone2Limit:     -1,
		Zone2Remaining: -1,
	}
}

func headerInt(h http.Header, key string) int {
	value := h.Get(key)
	if value == "" {
		return -1
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return -1
	}
	return n
}
