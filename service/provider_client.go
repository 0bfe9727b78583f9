// ABOUTME: This file implements the typed provider API used by sync and queue
// ABOUTME: Wires token supply, budget checks, and header capture around calls

package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strconv"

	"feed-sync-engine/driver"
	"feed-sync-engine/models"
)

// Provider API endpoints.
const (
	endpointSubscriptionList = "/subscription/list"
	endpointUnreadCounts     = "/unread-count"
	endpointStreamContents   = "/stream/contents/"
	endpointEditTag          = "/edit-tag"
)

// ProviderClient implements ProviderAPI. Every call checks the zone budget
// first, records the call afterwards, and feeds the response's rate-limit
// headers back into the usage tracker. A 401 triggers exactly one forced
// token refresh and retry.
type ProviderClient struct {
	api    ReaderAPIDriver
	tokens TokenProvider
	usage  UsageLimiter
	logger *slog.Logger
}

// NewProviderClient creates a provider client.
func NewProviderClient(api ReaderAPIDriver, tokens TokenProvider, usage UsageLimiter, logger *slog.Logger) *ProviderClient {
	if logger == nil {
		logger = slog.Default()
	}

	return &ProviderClient{
		api:    api,
		tokens: tokens,
		usage:  usage,
		logger: logger,
	}
}

// ListSubscriptions fetches the full subscription list. Zone 1.
func (c *ProviderClient) ListSubscriptions(ctx context.Context) ([]models.ProviderSubscription, error) {
	var response struct {
		Subscriptions []models.ProviderSubscription `json:"subscriptions"`
	}

	err := c.get(ctx, endpointSubscriptionList, nil, &response)
	if err != nil {
		return nil, fmt.Errorf("subscription list call failed: %w", err)
	}

	c.logger.Debug("Fetched subscription list", "count", len(response.Subscriptions))
	return response.Subscriptions, nil
}

// FetchUnreadCounts fetches per-stream unread counts. Zone 1.
func (c *ProviderClient) FetchUnreadCounts(ctx context.Context) ([]models.ProviderUnreadCount, error) {
	var response struct {
		UnreadCounts []models.ProviderUnreadCount `json:"unreadcounts"`
	}

	err := c.get(ctx, endpointUnreadCounts, map[string]string{"output": "json"}, &response)
	if err != nil {
		return nil, fmt.Errorf("unread count call failed: %w", err)
	}

	return response.UnreadCounts, nil
}

// FetchStreamContents fetches one page of stream items. Zone 1. An empty
// continuation starts from the head of the stream; excludeRead asks the
// provider to omit items already marked read.
func (c *ProviderClient) FetchStreamContents(ctx context.Context, streamID, continuation string, limit int, excludeRead bool) (*models.ProviderStreamResponse, error) {
	endpoint := endpointStreamContents + url.QueryEscape(streamID)

	params := map[string]string{
		"output": "json",
		"n":      strconv.Itoa(limit),
	}
	if continuation != "" {
		params["c"] = continuation
	}
	if excludeRead {
		params["xt"] = models.StateTagRead
	}

	var response models.ProviderStreamResponse
	if err := c.get(ctx, endpoint, params, &response); err != nil {
		return nil, fmt.Errorf("stream contents call failed: %w", err)
	}

	c.logger.Debug("Fetched stream contents",
		"stream_id", streamID,
		"items", len(response.Items),
		"has_continuation", response.Continuation != "")

	return &response, nil
}

// ApplyTag adds or removes a state tag on one item. Zone 2.
func (c *ProviderClient) ApplyTag(ctx context.Context, providerItemID, tag string, add bool) error {
	if err := c.usage.CheckBudget(ctx, models.Zone2, 1); err != nil {
		return err
	}

	token, err := c.tokens.EnsureValidToken(ctx)
	if err != nil {
		return err
	}

	form := url.Values{"i": {providerItemID}}
	if add {
		form.Set("a", tag)
	} else {
		form.Set("r", tag)
	}

	headers, err := c.api.PostForm(ctx, token.AccessToken, endpointEditTag, form)
	if errors.Is(err, driver.ErrUnauthorized) {
		token, err = c.tokens.ForceRefresh(ctx)
		if err != nil {
			return err
		}
		headers, err = c.api.PostForm(ctx, token.AccessToken, endpointEditTag, form)
	}

	c.settle(ctx, models.Zone2, headers)
	if err != nil {
		return fmt.Errorf("edit-tag call failed: %w", err)
	}

	return nil
}

// get performs a budget-guarded Zone 1 GET with one 401 retry.
func (c *ProviderClient) get(ctx context.Context, endpoint string, params map[string]string, out any) error {
	if err := c.usage.CheckBudget(ctx, models.Zone1, 1); err != nil {
		return err
	}

	token, err := c.tokens.EnsureValidToken(ctx)
	if err != nil {
		return err
	}

	headers, err := c.api.GetJSON(ctx, token.AccessToken, endpoint, params, out)
	if errors.Is(err, driver.ErrUnauthorized) {
		c.logger.Warn("Access token rejected, forcing refresh", "endpoint", endpoint)
		token, err = c.tokens.ForceRefresh(ctx)
		if err != nil {
			return err
		}
		headers, err = c.api.GetJSON(ctx, token.AccessToken, endpoint, params, out)
	}

	c.settle(ctx, models.Zone1, headers)
	return err
}

// settle records the call and captures headers. The provider bills rejected
// calls too, so usage is recorded even when the call itself failed.
func (c *ProviderClient) settle(ctx context.Context, zone int, headers models.RateLimitHeaders) {
	if err := c.usage.RecordCall(ctx, zone); err != nil {
		c.logger.Warn("Failed to record API usage", "zone", zone, "error", err)
	}

	c.usage.CaptureHeaders(ctx, headers)
}
