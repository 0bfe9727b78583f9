// ABOUTME: Tests for the full-content fetcher
// ABOUTME: Covers the parse ceiling, failure recording, and partial-feed detection

package service

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"feed-sync-engine/mocks"
	"feed-sync-engine/models"
	"feed-sync-engine/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func testSyncSettings() models.SyncSettings {
	return models.SyncSettings{
		ParseTimeout:        5 * time.Second,
		MaxConcurrentParses: 2,
		MaxParseAttempts:    3,
	}
}

func newTestFetcher(articleRepo *mocks.MockArticleRepository, feedRepo *mocks.MockFeedRepository, extractor ContentExtractor) *ContentFetcher {
	return NewContentFetcher(articleRepo, feedRepo, extractor, testSyncSettings(), 100, "feed-sync-engine/1.0", nil)
}

func TestContentFetcher_FetchFullContent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html><body><p>full article body</p></body></html>"))
	}))
	defer server.Close()

	articleRepo := mocks.NewMockArticleRepository(ctrl)
	feedRepo := mocks.NewMockFeedRepository(ctrl)
	extractor := mocks.NewMockContentExtractor(ctrl)

	article := &models.Article{ID: uuid.New(), URL: server.URL + "/article"}

	extractor.EXPECT().Extract(gomock.Any()).
		DoAndReturn(func(raw string) (string, error) {
			assert.Contains(t, raw, "full article body")
			return "full article body", nil
		})
	articleRepo.EXPECT().SaveFullContent(gomock.Any(), article.ID, "full article body").Return(nil)

	fetcher := newTestFetcher(articleRepo, feedRepo, extractor)

	err := fetcher.FetchFullContent(context.Background(), article)
	assert.NoError(t, err)
}

func TestContentFetcher_ParseCeilingBlocksFetch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	articleRepo := mocks.NewMockArticleRepository(ctrl)
	feedRepo := mocks.NewMockFeedRepository(ctrl)
	extractor := mocks.NewMockContentExtractor(ctrl)

	article := &models.Article{
		ID:            uuid.New(),
		URL:           "http://example.com/article",
		ParseAttempts: 3,
	}

	fetcher := newTestFetcher(articleRepo, feedRepo, extractor)

	// No HTTP request, no extraction, no repository write.
	err := fetcher.FetchFullContent(context.Background(), article)
	assert.ErrorIs(t, err, ErrParseBudgetExhausted)
}

func TestContentFetcher_FailureRecording(t *testing.T) {
	tests := map[string]struct {
		parseAttempts int
		expectFinal   bool
	}{
		"first failure is not final":              {parseAttempts: 0, expectFinal: false},
		"failure at the last allowed attempt is": {parseAttempts: 2, expectFinal: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			}))
			defer server.Close()

			articleRepo := mocks.NewMockArticleRepository(ctrl)
			feedRepo := mocks.NewMockFeedRepository(ctrl)
			extractor := mocks.NewMockContentExtractor(ctrl)

			article := &models.Article{
				ID:            uuid.New(),
				URL:           server.URL + "/article",
				ParseAttempts: tt.parseAttempts,
			}

			articleRepo.EXPECT().RecordParseFailure(gomock.Any(), article.ID, tt.expectFinal).Return(nil)

			fetcher := newTestFetcher(articleRepo, feedRepo, extractor)

			err := fetcher.FetchFullContent(context.Background(), article)
			assert.Error(t, err)
		})
	}
}

func TestContentFetcher_MissingURLCountsAsFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	articleRepo := mocks.NewMockArticleRepository(ctrl)
	feedRepo := mocks.NewMockFeedRepository(ctrl)
	extractor := mocks.NewMockContentExtractor(ctrl)

	article := &models.Article{ID: uuid.New()}

	articleRepo.EXPECT().RecordParseFailure(gomock.Any(), article.ID, false).Return(nil)

	fetcher := newTestFetcher(articleRepo, feedRepo, extractor)

	err := fetcher.FetchFullContent(context.Background(), article)
	assert.Error(t, err)
}

func TestContentFetcher_DetectPartialFeed(t *testing.T) {
	feedID := uuid.New()

	tests := map[string]struct {
		articles        []*models.Article
		expectedPartial bool
		expectFlagged   bool
	}{
		"short delivered bodies flag the feed as partial": {
			articles: []*models.Article{
				{Content: "<p>short teaser</p>"},
				{Content: "<p>another teaser</p>"},
			},
			expectedPartial: true,
			expectFlagged:   true,
		},
		"substantial bodies keep the feed full": {
			articles: []*models.Article{
				{Content: "<p>" + strings.Repeat("a reasonably long sentence. ", 30) + "</p>"},
			},
			expectedPartial: false,
			expectFlagged:   true,
		},
		"feed without articles stays unflagged": {
			articles:        nil,
			expectedPartial: false,
			expectFlagged:   false,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			articleRepo := mocks.NewMockArticleRepository(ctrl)
			feedRepo := mocks.NewMockFeedRepository(ctrl)
			extractor := mocks.NewMockContentExtractor(ctrl)

			articleRepo.EXPECT().GetRecentByFeed(gomock.Any(), feedID, 5).Return(tt.articles, nil)
			if tt.expectFlagged {
				feedRepo.EXPECT().SetPartialFeed(gomock.Any(), feedID, tt.expectedPartial).Return(nil)
			}

			fetcher := newTestFetcher(articleRepo, feedRepo, extractor)

			partial, err := fetcher.DetectPartialFeed(context.Background(), feedID)
			require.NoError(t, err)
			assert.Equal(t, tt.expectedPartial, partial)
		})
	}
}

func TestContentFetcher_PruneExpiredContent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	articleRepo := mocks.NewMockArticleRepository(ctrl)
	feedRepo := mocks.NewMockFeedRepository(ctrl)
	extractor := mocks.NewMockContentExtractor(ctrl)

	articleRepo.EXPECT().PruneFullContent(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, cutoff time.Time) (int, error) {
			expected := time.Now().AddDate(0, 0, -30)
			assert.WithinDuration(t, expected, cutoff, time.Minute)
			return 12, nil
		})

	fetcher := newTestFetcher(articleRepo, feedRepo, extractor)

	pruned, err := fetcher.PruneExpiredContent(context.Background(), 30)
	require.NoError(t, err)
	assert.Equal(t, 12, pruned)
}

func TestContentFetcher_SanitizesExtractedContent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html><body><p>article</p></body></html>"))
	}))
	defer server.Close()

	articleRepo := mocks.NewMockArticleRepository(ctrl)
	feedRepo := mocks.NewMockFeedRepository(ctrl)
	extractor := mocks.NewMockContentExtractor(ctrl)

	article := &models.Article{ID: uuid.New(), URL: server.URL + "/article"}

	extractor.EXPECT().Extract(gomock.Any()).
		Return("  clean paragraph<script>alert(1)</script>  ", nil)
	// Script content and surrounding whitespace must not reach storage.
	articleRepo.EXPECT().SaveFullContent(gomock.Any(), article.ID, "clean paragraph").Return(nil)

	fetcher := newTestFetcher(articleRepo, feedRepo, extractor)

	err := fetcher.FetchFullContent(context.Background(), article)
	assert.NoError(t, err)
}

func TestContentFetcher_TruncationMarkersFlagPartialFeed(t *testing.T) {
	longBody := strings.Repeat("a reasonably long sentence about something. ", 30)

	tests := map[string]struct {
		articles        []*models.Article
		expectedPartial bool
	}{
		"teaser tails flag long bodies as partial": {
			articles: []*models.Article{
				{Content: "<p>" + longBody + "Read more</p>"},
				{Content: "<p>" + longBody + "Continue reading at the site</p>"},
			},
			expectedPartial: true,
		},
		"trailing ellipsis flags the feed": {
			articles: []*models.Article{
				{Content: "<p>" + longBody + "and then the story…</p>"},
			},
			expectedPartial: true,
		},
		"a teaser phrase mid-body is not a marker": {
			articles: []*models.Article{
				{Content: "<p>The banner said Read more below the fold. " + longBody + "</p>"},
			},
			expectedPartial: false,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			feedID := uuid.New()
			articleRepo := mocks.NewMockArticleRepository(ctrl)
			feedRepo := mocks.NewMockFeedRepository(ctrl)
			extractor := mocks.NewMockContentExtractor(ctrl)

			articleRepo.EXPECT().GetRecentByFeed(gomock.Any(), feedID, 5).Return(tt.articles, nil)
			feedRepo.EXPECT().SetPartialFeed(gomock.Any(), feedID, tt.expectedPartial).Return(nil)

			fetcher := newTestFetcher(articleRepo, feedRepo, extractor)

			partial, err := fetcher.DetectPartialFeed(context.Background(), feedID)
			require.NoError(t, err)
			assert.Equal(t, tt.expectedPartial, partial)
		})
	}
}

func TestContentFetcher_RefreshPartialFlags(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	articleRepo := mocks.NewMockArticleRepository(ctrl)
	feedRepo := mocks.NewMockFeedRepository(ctrl)
	extractor := mocks.NewMockContentExtractor(ctrl)

	brokenFeed := &models.Feed{ID: uuid.New()}
	healthyFeed := &models.Feed{ID: uuid.New()}

	feedRepo.EXPECT().GetAll(gomock.Any()).Return([]*models.Feed{brokenFeed, healthyFeed}, nil)

	// A failing feed is logged and skipped; the sweep still reaches the rest.
	articleRepo.EXPECT().GetRecentByFeed(gomock.Any(), brokenFeed.ID, 5).
		Return(nil, errors.New("feed query failed"))
	articleRepo.EXPECT().GetRecentByFeed(gomock.Any(), healthyFeed.ID, 5).
		Return([]*models.Article{{Content: "<p>short teaser</p>"}}, nil)
	feedRepo.EXPECT().SetPartialFeed(gomock.Any(), healthyFeed.ID, true).Return(nil)

	fetcher := newTestFetcher(articleRepo, feedRepo, extractor)

	err := fetcher.RefreshPartialFlags(context.Background())
	assert.NoError(t, err)
}

func TestContentFetcher_FetchFullContentByID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html><body><p>on demand</p></body></html>"))
	}))
	defer server.Close()

	articleRepo := mocks.NewMockArticleRepository(ctrl)
	feedRepo := mocks.NewMockFeedRepository(ctrl)
	extractor := mocks.NewMockContentExtractor(ctrl)

	id := uuid.New()
	article := &models.Article{ID: id, URL: server.URL + "/article"}

	articleRepo.EXPECT().FindByID(gomock.Any(), id).Return(article, nil)
	extractor.EXPECT().Extract(gomock.Any()).Return("on demand", nil)
	articleRepo.EXPECT().SaveFullContent(gomock.Any(), id, "on demand").Return(nil)

	fetcher := newTestFetcher(articleRepo, feedRepo, extractor)

	err := fetcher.FetchFullContentByID(context.Background(), id)
	assert.NoError(t, err)
}

func TestContentFetcher_FetchFullContentByID_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	articleRepo := mocks.NewMockArticleRepository(ctrl)
	feedRepo := mocks.NewMockFeedRepository(ctrl)
	extractor := mocks.NewMockContentExtractor(ctrl)

	id := uuid.New()
	articleRepo.EXPECT().FindByID(gomock.Any(), id).Return(nil, repository.ErrNotFound)

	fetcher := newTestFetcher(articleRepo, feedRepo, extractor)

	err := fetcher.FetchFullContentByID(context.Background(), id)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}
