// ABOUTME: This file implements full-content fetching for partial feeds
// ABOUTME: Bounded concurrency, polite rate limiting, and a parse ceiling

package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	"feed-sync-engine/metrics"
	"feed-sync-engine/models"
	"feed-sync-engine/repository"
	"feed-sync-engine/utils"

	"github.com/google/uuid"
	"golang.org/x/sync/semaphore"
	"golang.org/x/time/rate"
)

// ErrParseBudgetExhausted is returned when an article already failed its
// maximum number of extraction attempts.
var ErrParseBudgetExhausted = errors.New("article parse attempts exhausted")

// Feeds whose delivered bodies average below this length across recent
// articles are treated as partial feeds.
const (
	partialFeedSampleSize    = 5
	partialFeedMinBodyLength = 500
	truncationTailWindow     = 80
	maxFetchBodyBytes        = 4 << 20
)

// Teaser phrases feeds append when they truncate the body at the source.
var truncationMarkers = []string{
	"read more",
	"continue reading",
	"continued...",
	"[...]",
	"[…]",
}

// hasTruncationMarker reports whether a delivered body ends in a teaser
// phrase or a trailing ellipsis. Only the tail is scanned so an article that
// merely quotes "read more" mid-body is not misflagged.
func hasTruncationMarker(text string) bool {
	trimmed := strings.ToLower(strings.TrimSpace(text))
	if trimmed == "" {
		return false
	}
	if strings.HasSuffix(trimmed, "...") || strings.HasSuffix(trimmed, "…") {
		return true
	}

	tail := trimmed
	if len(tail) > truncationTailWindow {
		tail = tail[len(tail)-truncationTailWindow:]
	}
	for _, marker := range truncationMarkers {
		if strings.Contains(tail, marker) {
			return true
		}
	}
	return false
}

// readabilityExtractor adapts the utils extraction pipeline to the
// ContentExtractor interface.
type readabilityExtractor struct{}

// NewReadabilityExtractor returns the default readability-based extractor.
func NewReadabilityExtractor() ContentExtractor {
	return readabilityExtractor{}
}

func (readabilityExtractor) Extract(raw string) (string, error) {
	return utils.ExtractReadableText(raw)
}

// ContentFetcher retrieves full article bodies from origin sites for feeds
// that deliver only summaries. Fetches run under a concurrency cap, a global
// politeness rate limit, and a circuit breaker: a slow or failing origin
// degrades extraction, never the sync engine.
type ContentFetcher struct {
	articleRepo repository.ArticleRepository
	feedRepo    repository.FeedRepository
	extractor   ContentExtractor
	httpClient  *http.Client
	sanitizer   *utils.Sanitizer
	limiter     *rate.Limiter
	sem         *semaphore.Weighted
	breaker     *utils.CircuitBreaker
	logger      *slog.Logger

	fetchTimeout     time.Duration
	maxParseAttempts int
	userAgent        string
}

// NewContentFetcher creates a content fetcher.
func NewContentFetcher(
	articleRepo repository.ArticleRepository,
	feedRepo repository.FeedRepository,
	extractor ContentExtractor,
	settings models.SyncSettings,
	ratePerSecond float64,
	userAgent string,
	logger *slog.Logger,
) *ContentFetcher {
	if logger == nil {
		logger = slog.Default()
	}

	return &ContentFetcher{
		articleRepo: articleRepo,
		feedRepo:    feedRepo,
		extractor:   extractor,
		sanitizer:   utils.NewSanitizer(),
		limiter:     rate.NewLimiter(rate.Limit(ratePerSecond), 1),
		sem:         semaphore.NewWeighted(int64(settings.MaxConcurrentParses)),
		breaker:     utils.NewCircuitBreaker(nil, logger),
		logger:      logger,

		fetchTimeout:     settings.ParseTimeout,
		maxParseAttempts: settings.MaxParseAttempts,
		userAgent:        userAgent,
		httpClient: &http.Client{
			Timeout: settings.ParseTimeout,
			Transport: &http.Transport{
				MaxIdleConns:        10,
				MaxIdleConnsPerHost: 2,
				IdleConnTimeout:     30 * time.Second,
			},
		},
	}
}

// SetHTTPClient allows injecting a custom HTTP client (useful for testing).
func (f *ContentFetcher) SetHTTPClient(client *http.Client) {
	f.httpClient = client
}

// FetchFullContent fetches and extracts the full body of one article. A
// failure past the attempt ceiling marks the article permanently failed so
// it never burns another fetch.
func (f *ContentFetcher) FetchFullContent(ctx context.Context, article *models.Article) error {
	if article.ParseAttempts >= f.maxParseAttempts {
		return fmt.Errorf("%w: article %s after %d attempts", ErrParseBudgetExhausted, article.ID, article.ParseAttempts)
	}
	if article.URL == "" {
		return f.recordFailure(ctx, article, fmt.Errorf("article has no URL"))
	}

	if err := f.sem.Acquire(ctx, 1); err != nil {
		return fmt.Errorf("failed to acquire fetch slot: %w", err)
	}
	defer f.sem.Release(1)

	if err := f.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limiter wait interrupted: %w", err)
	}

	raw, err := f.download(ctx, article.URL)
	if err != nil {
		return f.recordFailure(ctx, article, err)
	}

	text, err := f.extractor.Extract(raw)
	if err != nil {
		return f.recordFailure(ctx, article, err)
	}

	// Extracted bodies come from arbitrary origin pages; strip anything the
	// storage policy disallows before it reaches the database.
	text = f.sanitizer.SanitizeAndTrim(text)

	if err := f.articleRepo.SaveFullContent(ctx, article.ID, text); err != nil {
		return fmt.Errorf("failed to store extracted content: %w", err)
	}

	metrics.ContentFetchTotal.WithLabelValues("success").Inc()
	f.logger.Debug("Extracted full content",
		"article_id", article.ID,
		"content_length", len(text))

	return nil
}

// FetchBatch extracts content for a set of articles concurrently. Individual
// failures are recorded per article and do not stop the batch.
func (f *ContentFetcher) FetchBatch(ctx context.Context, articles []*models.Article) {
	var wg sync.WaitGroup

	for _, article := range articles {
		if article.ParseFailed || article.ParseAttempts >= f.maxParseAttempts {
			continue
		}

		wg.Add(1)
		go func(a *models.Article) {
			defer wg.Done()
			if err := f.FetchFullContent(ctx, a); err != nil {
				f.logger.Debug("Content fetch failed", "article_id", a.ID, "error", err)
			}
		}(article)
	}

	wg.Wait()
}

// DetectPartialFeed inspects a feed's recent articles and flags the feed as
// partial when delivered bodies are consistently short, or when most of them
// end in a truncation teaser.
func (f *ContentFetcher) DetectPartialFeed(ctx context.Context, feedID uuid.UUID) (bool, error) {
	articles, err := f.articleRepo.GetRecentByFeed(ctx, feedID, partialFeedSampleSize)
	if err != nil {
		return false, fmt.Errorf("failed to load recent articles: %w", err)
	}
	if len(articles) == 0 {
		return false, nil
	}

	total := 0
	truncated := 0
	for _, article := range articles {
		text := utils.StripTags(article.Content)
		total += len(text)
		if hasTruncationMarker(text) {
			truncated++
		}
	}
	partial := total/len(articles) < partialFeedMinBodyLength || truncated*2 > len(articles)

	if err := f.feedRepo.SetPartialFeed(ctx, feedID, partial); err != nil {
		return partial, fmt.Errorf("failed to flag partial feed: %w", err)
	}

	return partial, nil
}

// RefreshPartialFlags re-runs partial-feed detection across every feed.
// Detection failures are logged per feed so one bad feed does not stop the
// sweep.
func (f *ContentFetcher) RefreshPartialFlags(ctx context.Context) error {
	feeds, err := f.feedRepo.GetAll(ctx)
	if err != nil {
		return fmt.Errorf("failed to list feeds: %w", err)
	}

	for _, feed := range feeds {
		if _, err := f.DetectPartialFeed(ctx, feed.ID); err != nil {
			f.logger.Warn("Partial feed detection failed",
				"feed_id", feed.ID,
				"error", err)
		}
	}

	return nil
}

// FetchFullContentByID loads an article and runs a full-content fetch for
// it. Backs the on-demand extraction endpoint.
func (f *ContentFetcher) FetchFullContentByID(ctx context.Context, id uuid.UUID) error {
	article, err := f.articleRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	return f.FetchFullContent(ctx, article)
}

// PruneExpiredContent drops extracted bodies past the retention window.
// Starred articles keep their content regardless of age.
func (f *ContentFetcher) PruneExpiredContent(ctx context.Context, retentionDays int) (int, error) {
	cutoff := time.Now().AddDate(0, 0, -retentionDays)
	return f.articleRepo.PruneFullContent(ctx, cutoff)
}

func (f *ContentFetcher) download(ctx context.Context, articleURL string) (string, error) {
	normalized, err := utils.NormalizeURL(articleURL)
	if err != nil {
		return "", fmt.Errorf("invalid article URL: %w", err)
	}

	var body string
	err = f.breaker.Execute(ctx, func(ctx context.Context) error {
		fetchCtx, cancel := context.WithTimeout(ctx, f.fetchTimeout)
		defer cancel()

		req, err := http.NewRequestWithContext(fetchCtx, http.MethodGet, normalized, nil)
		if err != nil {
			return fmt.Errorf("failed to create fetch request: %w", err)
		}
		req.Header.Set("User-Agent", f.userAgent)

		resp, err := f.httpClient.Do(req)
		if err != nil {
			return fmt.Errorf("article fetch failed: %w", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return fmt.Errorf("article fetch returned status %d", resp.StatusCode)
		}

		raw, err := io.ReadAll(io.LimitReader(resp.Body, maxFetchBodyBytes))
		if err != nil {
			return fmt.Errorf("failed to read article body: %w", err)
		}

		body = string(raw)
		return nil
	})
	if err != nil {
		return "", err
	}

	return body, nil
}

// recordFailure counts a failed attempt. The final allowed attempt marks the
// article permanently failed.
func (f *ContentFetcher) recordFailure(ctx context.Context, article *models.Article, cause error) error {
	final := article.ParseAttempts+1 >= f.maxParseAttempts

	if err := f.articleRepo.RecordParseFailure(ctx, article.ID, final); err != nil {
		f.logger.Error("Failed to record parse failure", "article_id", article.ID, "error", err)
	}

	metrics.ContentFetchTotal.WithLabelValues("failed").Inc()
	f.logger.Warn("Content extraction failed",
		"article_id", article.ID,
		"attempt", article.ParseAttempts+1,
		"final", final,
		"error", cause)

	return fmt.Errorf("content extraction failed: %w", cause)
}
