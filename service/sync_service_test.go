// ABOUTME: Tests for the sync run orchestrator
// ABOUTME: Covers single-run gating, monotonic progress, anti-resurrection, budget cuts

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"feed-sync-engine/config"
	"feed-sync-engine/mocks"
	"feed-sync-engine/models"
	"feed-sync-engine/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testRunBudget = time.Minute

type syncFixture struct {
	provider      *mocks.MockProviderAPI
	tokens        *mocks.MockTokenProvider
	queue         *mocks.MockQueueDrainer
	deletions     *mocks.MockDeletionFilter
	folderRepo    *mocks.MockFolderRepository
	feedRepo      *mocks.MockFeedRepository
	articleRepo   *mocks.MockArticleRepository
	syncRunRepo   *mocks.MockSyncRunRepository
	syncStateRepo *mocks.MockSyncStateRepository
	service       *SyncService
}

func newSyncFixture(ctrl *gomock.Controller) *syncFixture {
	f := &syncFixture{
		provider:      mocks.NewMockProviderAPI(ctrl),
		tokens:        mocks.NewMockTokenProvider(ctrl),
		queue:         mocks.NewMockQueueDrainer(ctrl),
		deletions:     mocks.NewMockDeletionFilter(ctrl),
		folderRepo:    mocks.NewMockFolderRepository(ctrl),
		feedRepo:      mocks.NewMockFeedRepository(ctrl),
		articleRepo:   mocks.NewMockArticleRepository(ctrl),
		syncRunRepo:   mocks.NewMockSyncRunRepository(ctrl),
		syncStateRepo: mocks.NewMockSyncStateRepository(ctrl),
	}

	cfg := config.SyncConfig{
		MaxArticlesPerRun:     10,
		MaxArticlesPerRequest: 5,
		UpsertBatchSize:       2,
		RunBudget:             testRunBudget,
	}

	f.service = NewSyncService(
		f.provider, f.tokens, f.queue, f.deletions,
		f.folderRepo, f.feedRepo, f.articleRepo,
		f.syncRunRepo, f.syncStateRepo,
		cfg, nil,
	)

	return f
}

const testFeedStreamID = "feed/http://example.com/rss"

func testSubscription() models.ProviderSubscription {
	return models.ProviderSubscription{
		ProviderID: testFeedStreamID,
		Title:      "Example Feed",
		URL:        "http://example.com/rss",
		HTMLURL:    "http://example.com",
		Categories: []models.ProviderCategory{
			{ID: "user/-/label/Tech", Label: "Tech"},
		},
	}
}

func streamItem(id string) models.ProviderStreamItem {
	return models.ProviderStreamItem{
		ID:        id,
		Title:     "Article " + id,
		Published: time.Now().Unix(),
		Canonical: []models.ProviderLink{{Href: "http://example.com/" + id}},
		Origin:    models.ProviderOrigin{StreamID: testFeedStreamID},
	}
}

func TestSyncService_StartRun(t *testing.T) {
	tests := map[string]struct {
		mockSetup   func(*mocks.MockSyncRunRepository)
		expectedErr error
	}{
		"no active run creates a pending run": {
			mockSetup: func(repo *mocks.MockSyncRunRepository) {
				repo.EXPECT().FailStaleActive(gomock.Any(), gomock.Any()).Return(0, nil)
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, run *models.SyncRun) error {
						assert.Equal(t, models.SyncRunPending, run.Status)
						assert.Equal(t, 0, run.Progress)
						return nil
					})
			},
		},
		"insert conflict from a concurrent run is rejected": {
			mockSetup: func(repo *mocks.MockSyncRunRepository) {
				repo.EXPECT().FailStaleActive(gomock.Any(), gomock.Any()).Return(0, nil)
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).
					Return(repository.ErrActiveRunExists)
			},
			expectedErr: ErrSyncInProgress,
		},
		"stale runs are failed before admission": {
			mockSetup: func(repo *mocks.MockSyncRunRepository) {
				repo.EXPECT().FailStaleActive(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, olderThan time.Time) (int, error) {
						assert.WithinDuration(t, time.Now().Add(-2*testRunBudget), olderThan, time.Second)
						return 1, nil
					})
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			f := newSyncFixture(ctrl)
			tt.mockSetup(f.syncRunRepo)

			run, err := f.service.StartRun(context.Background())

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				return
			}

			require.NoError(t, err)
			assert.NotEqual(t, uuid.Nil, run.ID)
		})
	}
}

func TestSyncService_ExecuteFullRun(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newSyncFixture(ctrl)
	run := models.NewSyncRun()

	var progressHistory []int
	f.syncRunRepo.EXPECT().Update(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, r *models.SyncRun) error {
			progressHistory = append(progressHistory, r.Progress)
			return nil
		}).AnyTimes()

	f.tokens.EXPECT().EnsureValidToken(gomock.Any()).Return(testToken("valid_token"), nil)
	f.queue.EXPECT().Drain(gomock.Any()).Return(&models.DrainResult{}, nil)

	f.provider.EXPECT().ListSubscriptions(gomock.Any()).
		Return([]models.ProviderSubscription{testSubscription()}, nil)
	f.provider.EXPECT().FetchUnreadCounts(gomock.Any()).
		Return([]models.ProviderUnreadCount{
			{StreamID: testFeedStreamID, Count: 4},
			{StreamID: "user/-/label/Tech", Count: 4},
		}, nil)

	folderID := uuid.New()
	f.folderRepo.EXPECT().Upsert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, folder *models.Folder) (*models.Folder, error) {
			folder.ID = folderID
			return folder, nil
		})

	f.feedRepo.EXPECT().Upsert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, feed *models.Feed) (*models.Feed, error) {
			require.NotNil(t, feed.FolderID)
			assert.Equal(t, folderID, *feed.FolderID)
			return feed, nil
		})

	f.syncStateRepo.EXPECT().FindByStreamID(gomock.Any(), ReadingListStreamID).
		Return(nil, repository.ErrNotFound)
	f.syncStateRepo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	f.provider.EXPECT().FetchStreamContents(gomock.Any(), ReadingListStreamID, "", 5, false).
		Return(&models.ProviderStreamResponse{
			Items:        []models.ProviderStreamItem{streamItem("item-1"), streamItem("item-2"), streamItem("item-3")},
			Continuation: "",
		}, nil)

	// item-2 was deleted locally; it must not come back.
	f.deletions.EXPECT().FilterResurrected(gomock.Any(), []string{"item-1", "item-2", "item-3"}).
		Return(map[string]bool{"item-2": true}, nil)

	f.articleRepo.EXPECT().UpsertBatch(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, articles []*models.Article) (int, error) {
			for _, article := range articles {
				assert.NotEqual(t, "item-2", article.ProviderID)
			}
			return len(articles), nil
		})

	f.feedRepo.EXPECT().RefreshUnreadCounts(gomock.Any()).Return(nil)
	f.feedRepo.EXPECT().UpdateUnreadCount(gomock.Any(), testFeedStreamID, 4).Return(nil)

	result, err := f.service.Execute(context.Background(), run)
	require.NoError(t, err)

	assert.Equal(t, models.SyncRunCompleted, run.Status)
	assert.Equal(t, models.ProgressDone, run.Progress)
	assert.Equal(t, 1, result.FoldersUpserted)
	assert.Equal(t, 1, result.FeedsUpserted)
	assert.Equal(t, 3, result.ArticlesFetched)
	assert.Equal(t, 1, result.ArticlesSkipped)
	assert.Equal(t, 2, result.ArticlesUpserted)

	for i := 1; i < len(progressHistory); i++ {
		assert.GreaterOrEqual(t, progressHistory[i], progressHistory[i-1],
			"progress must never move backwards")
	}
}

func TestSyncService_ExecuteKeepsPartialStreamOnBudgetExhaustion(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newSyncFixture(ctrl)
	run := models.NewSyncRun()

	f.syncRunRepo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.tokens.EXPECT().EnsureValidToken(gomock.Any()).Return(testToken("valid_token"), nil)
	f.queue.EXPECT().Drain(gomock.Any()).Return(&models.DrainResult{}, nil)
	f.provider.EXPECT().ListSubscriptions(gomock.Any()).
		Return([]models.ProviderSubscription{testSubscription()}, nil)
	f.provider.EXPECT().FetchUnreadCounts(gomock.Any()).Return(nil, nil)
	f.folderRepo.EXPECT().Upsert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, folder *models.Folder) (*models.Folder, error) {
			return folder, nil
		})
	f.feedRepo.EXPECT().Upsert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, feed *models.Feed) (*models.Feed, error) {
			return feed, nil
		})

	f.syncStateRepo.EXPECT().FindByStreamID(gomock.Any(), ReadingListStreamID).
		Return(nil, repository.ErrNotFound)
	f.syncStateRepo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	// First page succeeds, second dies on the daily budget. The run stores
	// what it already has instead of discarding the page.
	gomock.InOrder(
		f.provider.EXPECT().FetchStreamContents(gomock.Any(), ReadingListStreamID, "", 5, false).
			Return(&models.ProviderStreamResponse{
				Items:        []models.ProviderStreamItem{streamItem("item-1"), streamItem("item-2")},
				Continuation: "cursor-2",
			}, nil),
		f.provider.EXPECT().FetchStreamContents(gomock.Any(), ReadingListStreamID, "cursor-2", 5, false).
			Return(nil, ErrBudgetExhausted),
	)

	f.deletions.EXPECT().FilterResurrected(gomock.Any(), []string{"item-1", "item-2"}).
		Return(map[string]bool{}, nil)
	f.articleRepo.EXPECT().UpsertBatch(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, articles []*models.Article) (int, error) {
			return len(articles), nil
		})
	f.feedRepo.EXPECT().RefreshUnreadCounts(gomock.Any()).Return(nil)

	result, err := f.service.Execute(context.Background(), run)
	require.NoError(t, err)

	assert.Equal(t, models.SyncRunCompleted, run.Status)
	assert.Equal(t, 2, result.ArticlesFetched)
	assert.Equal(t, 2, result.ArticlesUpserted)
}

func TestSyncService_ExecuteFailureKeepsProgress(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newSyncFixture(ctrl)
	run := models.NewSyncRun()

	f.syncRunRepo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.tokens.EXPECT().EnsureValidToken(gomock.Any()).Return(testToken("valid_token"), nil)
	f.queue.EXPECT().Drain(gomock.Any()).Return(&models.DrainResult{}, nil)
	f.provider.EXPECT().ListSubscriptions(gomock.Any()).
		Return(nil, errors.New("provider unavailable"))

	_, err := f.service.Execute(context.Background(), run)
	require.Error(t, err)

	assert.Equal(t, models.SyncRunFailed, run.Status)
	assert.Equal(t, models.ProgressTokenAcquired, run.Progress)
	assert.NotEmpty(t, run.Error)
	assert.NotNil(t, run.FinishedAt)
}

func TestSyncService_ExecuteResumesFromStoredCursor(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newSyncFixture(ctrl)
	run := models.NewSyncRun()

	f.syncRunRepo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.tokens.EXPECT().EnsureValidToken(gomock.Any()).Return(testToken("valid_token"), nil)
	f.queue.EXPECT().Drain(gomock.Any()).Return(&models.DrainResult{}, nil)
	f.provider.EXPECT().ListSubscriptions(gomock.Any()).Return(nil, nil)
	f.provider.EXPECT().FetchUnreadCounts(gomock.Any()).Return(nil, nil)

	f.syncStateRepo.EXPECT().FindByStreamID(gomock.Any(), ReadingListStreamID).
		Return(models.NewSyncState(ReadingListStreamID, "stored-cursor"), nil)
	f.syncStateRepo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	// The interrupted run's cursor is where this run picks up.
	f.provider.EXPECT().FetchStreamContents(gomock.Any(), ReadingListStreamID, "stored-cursor", 5, false).
		Return(&models.ProviderStreamResponse{}, nil)
	f.feedRepo.EXPECT().RefreshUnreadCounts(gomock.Any()).Return(nil)

	result, err := f.service.Execute(context.Background(), run)
	require.NoError(t, err)
	assert.Equal(t, 0, result.ArticlesFetched)
}
