// ABOUTME: Service-layer interfaces for drivers and cross-service contracts
// ABOUTME: Mock implementations are generated into the mocks package

package service

import (
	"context"
	"net/url"

	"feed-sync-engine/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/mock_services.go -package=mocks

// OAuth2Driver talks to the provider's OAuth2 token endpoint.
type OAuth2Driver interface {
	RefreshToken(ctx context.Context, refreshToken string) (*models.TokenResponse, error)
	ExchangeAuthCode(ctx context.Context, code, redirectURI string) (*models.TokenResponse, error)
}

// ReaderAPIDriver performs authenticated calls against the reader API and
// reports the rate-limit header snapshot of each response.
type ReaderAPIDriver interface {
	GetJSON(ctx context.Context, accessToken, endpoint string, params map[string]string, out any) (models.RateLimitHeaders, error)
	PostForm(ctx context.Context, accessToken, endpoint string, form url.Values) (models.RateLimitHeaders, error)
}

// TokenProvider supplies valid access tokens to API callers.
type TokenProvider interface {
	EnsureValidToken(ctx context.Context) (*models.Token, error)
	ForceRefresh(ctx context.Context) (*models.Token, error)
}

// UsageLimiter guards the provider's two-zone daily call budget.
type UsageLimiter interface {
	CheckBudget(ctx context.Context, zone int, calls int) error
	RecordCall(ctx context.Context, zone int) error
	CaptureHeaders(ctx context.Context, headers models.RateLimitHeaders)
	Snapshot(ctx context.Context) (zone1, zone2 models.ZoneStatus, err error)
}

// ProviderAPI is the typed surface of the feed provider used by the sync run
// and the mutation queue.
type ProviderAPI interface {
	ListSubscriptions(ctx context.Context) ([]models.ProviderSubscription, error)
	FetchUnreadCounts(ctx context.Context) ([]models.ProviderUnreadCount, error)
	FetchStreamContents(ctx context.Context, streamID, continuation string, limit int, excludeRead bool) (*models.ProviderStreamResponse, error)
	ApplyTag(ctx context.Context, providerItemID, tag string, add bool) error
}

// QueueDrainer pushes pending local mutations to the provider.
type QueueDrainer interface {
	Drain(ctx context.Context) (*models.DrainResult, error)
}

// ContentExtractor turns fetched HTML into readable text.
type ContentExtractor interface {
	Extract(raw string) (string, error)
}

// DeletionFilter screens incoming stream items against deletion tombstones.
type DeletionFilter interface {
	FilterResurrected(ctx context.Context, providerIDs []string) (map[string]bool, error)
}
