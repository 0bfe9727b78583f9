// ABOUTME: OAuth2 client for the feed provider's token endpoint
// ABOUTME: Handles refresh-token and authorization-code grants with typed errors

package driver

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"feed-sync-engine/models"
)

const userAgent = "feed-sync-engine/1.0"

// OAuth2 specific error types for better error handling
var (
	ErrInvalidRefreshToken = errors.New("refresh token is invalid or expired")
	ErrRateLimited         = errors.New("provider API rate limit exceeded")
	ErrTokenRevoked        = errors.New("refresh token has been revoked")
	ErrInvalidGrant        = errors.New("invalid grant type or parameters")
	ErrTemporaryFailure    = errors.New("temporary provider service failure")
	ErrUnauthorized        = errors.New("access token rejected by provider")
)

// OAuth2ErrorResponse represents an error response from the OAuth2 token endpoint.
type OAuth2ErrorResponse struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description,omitempty"`
	ErrorURI         string `json:"error_uri,omitempty"`
}

// OAuth2Client talks to the provider's OAuth2 token endpoint.
type OAuth2Client struct {
	clientID     string
	clientSecret string
	baseURL      string
	httpClient   *http.Client
	logger       *slog.Logger
}

// NewOAuth2Client creates an OAuth2 client for the provider token endpoint.
func NewOAuth2Client(clientID, clientSecret, baseURL string, logger *slog.Logger) *OAuth2Client {
	if logger == nil {
		logger = slog.Default()
	}

	return &OAuth2Client{
		clientID:     clientID,
		clientSecret: clientSecret,
		baseURL:      strings.TrimSuffix(baseURL, "/"),
		logger:       logger,
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
func (c *OAuth2Client) SetHTTPClient(client *http.Client) {
	c.httpClient = client
}

// RefreshToken exchanges a refresh token for a new access token.
func (c *OAuth2Client) RefreshToken(ctx context.Context, refreshToken string) (*models.TokenResponse, error) {
	data := url.Values{
		"grant_type":    {"refresh_token"},
		"refresh_token": {refreshToken},
		"client_id":     {c.clientID},
		"client_secret": {c.clientSecret},
	}

	response, err := c.requestToken(ctx, data)
	if err != nil {
		return nil, err
	}

	c.logger.Info("OAuth2 refresh successful",
		"expires_in_seconds", response.ExpiresIn,
		"refresh_token_rotated", response.RefreshToken != "")

	return response, nil
}

// ExchangeAuthCode exchanges an authorization code for the initial token set.
func (c *OAuth2Client) ExchangeAuthCode(ctx context.Context, code, redirectURI string) (*models.TokenResponse, error) {
	data := url.Values{
		"grant_type":    {"authorization_code"},
		"code":          {code},
		"redirect_uri":  {redirectURI},
		"client_id":     {c.clientID},
		"client_secret": {c.clientSecret},
	}

	response, err := c.requestToken(ctx, data)
	if err != nil {
		return nil, err
	}

	c.logger.Info("OAuth2 authorization code exchange successful",
		"expires_in_seconds", response.ExpiresIn)

	return response, nil
}

func (c *OAuth2Client) requestToken(ctx context.Context, data url.Values) (*models.TokenResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/oauth2/token", strings.NewReader(data.Encode()))
	if err != nil {
		return nil, fmt.Errorf("failed to create token request: %w", err)
	}

	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute token request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, c.tokenError(resp)
	}

	var tokenResponse models.TokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&tokenResponse); err != nil {
		return nil, fmt.Errorf("failed to decode token response: %w", err)
	}
	if tokenResponse.AccessToken == "" {
		return nil, fmt.Errorf("token response missing access_token")
	}

	return &tokenResponse, nil
}

// tokenError maps a non-200 token endpoint response onto a sentinel error.
// Anything carrying invalid_grant means the refresh token itself is dead and
// retrying cannot help.
func (c *OAuth2Client) tokenError(resp *http.Response) error {
	body, _ := io.ReadAll(resp.Body)
	bodyStr := string(body)

	c.logger.Error("OAuth2 token request failed",
		"status_code", resp.StatusCode,
		"response_body", bodyStr)

	var oauthErr OAuth2ErrorResponse
	parsed := json.Unmarshal(body, &oauthErr) == nil

	switch resp.StatusCode {
	case http.StatusUnauthorized:
		if parsed && oauthErr.Error == "invalid_grant" {
			return fmt.Errorf("%w: %s", ErrInvalidRefreshToken, oauthErr.ErrorDescription)
		}
		return fmt.Errorf("%w: %s", ErrInvalidRefreshToken, bodyStr)

	case http.StatusForbidden:
		return fmt.Errorf("%w: %s", ErrTokenRevoked, bodyStr)

	case http.StatusTooManyRequests:
		retryAfter := resp.Header.Get("Retry-After")
		c.logger.Warn("OAuth2 token endpoint rate limited", "retry_after", retryAfter)
		return fmt.Errorf("%w: retry after %s", ErrRateLimited, retryAfter)

	case http.StatusBadRequest:
		if parsed {
			if oauthErr.Error == "invalid_grant" {
				return fmt.Errorf("%w: %s", ErrInvalidRefreshToken, oauthErr.ErrorDescription)
			}
			return fmt.Errorf("%w: %s", ErrInvalidGrant, oauthErr.ErrorDescription)
		}
		return fmt.Errorf("%w: %s", ErrInvalidGrant, bodyStr)

	case http.StatusInternalServerError, http.StatusBadGateway,
		http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		return fmt.Errorf("%w: HTTP %d", ErrTemporaryFailure, resp.StatusCode)

	default:
		return fmt.Errorf("token request failed with status %d: %s", resp.StatusCode, bodyStr)
	}
}
