// ABOUTME: Tests for the local-first mutation outbox
// ABOUTME: Covers local apply ordering, backoff gating, budget early-stop, purging

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"feed-sync-engine/mocks"
	"feed-sync-engine/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testRetention = 24 * time.Hour

func queuedEntry(action models.ActionType) *models.QueueEntry {
	return models.NewQueueEntry(uuid.New(), "provider-item-1", action)
}

func TestMutationQueue_Apply(t *testing.T) {
	articleID := uuid.New()

	tests := map[string]struct {
		action      models.ActionType
		mockSetup   func(*mocks.MockQueueRepository, *mocks.MockArticleRepository)
		expectedErr error
	}{
		"read action updates local state before enqueueing": {
			action: models.ActionRead,
			mockSetup: func(queueRepo *mocks.MockQueueRepository, articleRepo *mocks.MockArticleRepository) {
				articleRepo.EXPECT().FindByID(gomock.Any(), articleID).
					Return(&models.Article{ID: articleID, ProviderID: "provider-item-1"}, nil)
				gomock.InOrder(
					articleRepo.EXPECT().SetReadState(gomock.Any(), articleID, true).Return(nil),
					queueRepo.EXPECT().EnqueueCollapsing(gomock.Any(), gomock.Any()).
						DoAndReturn(func(_ context.Context, entry *models.QueueEntry) error {
							assert.Equal(t, articleID, entry.ArticleID)
							assert.Equal(t, "provider-item-1", entry.ProviderID)
							assert.Equal(t, models.ActionRead, entry.ActionType)
							return nil
						}),
				)
				queueRepo.EXPECT().CountPending(gomock.Any()).Return(1, nil).AnyTimes()
			},
		},
		"unstar action clears the star flag": {
			action: models.ActionUnstar,
			mockSetup: func(queueRepo *mocks.MockQueueRepository, articleRepo *mocks.MockArticleRepository) {
				articleRepo.EXPECT().FindByID(gomock.Any(), articleID).
					Return(&models.Article{ID: articleID, ProviderID: "provider-item-1"}, nil)
				articleRepo.EXPECT().SetStarState(gomock.Any(), articleID, false).Return(nil)
				queueRepo.EXPECT().EnqueueCollapsing(gomock.Any(), gomock.Any()).Return(nil)
				queueRepo.EXPECT().CountPending(gomock.Any()).Return(1, nil).AnyTimes()
			},
		},
		"unknown action is rejected before any repository call": {
			action:      models.ActionType("archive"),
			mockSetup:   func(*mocks.MockQueueRepository, *mocks.MockArticleRepository) {},
			expectedErr: ErrUnknownAction,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			queueRepo := mocks.NewMockQueueRepository(ctrl)
			articleRepo := mocks.NewMockArticleRepository(ctrl)
			provider := mocks.NewMockProviderAPI(ctrl)
			tt.mockSetup(queueRepo, articleRepo)

			queue := NewMutationQueue(queueRepo, articleRepo, provider, 20, testRetention, nil)

			err := queue.Apply(context.Background(), articleID, tt.action)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestMutationQueue_DrainPushesEligibleEntries(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	queueRepo := mocks.NewMockQueueRepository(ctrl)
	articleRepo := mocks.NewMockArticleRepository(ctrl)
	provider := mocks.NewMockProviderAPI(ctrl)

	readEntry := queuedEntry(models.ActionRead)
	starEntry := queuedEntry(models.ActionStar)

	queueRepo.EXPECT().GetPending(gomock.Any(), 20).
		Return([]*models.QueueEntry{readEntry, starEntry}, nil)

	provider.EXPECT().ApplyTag(gomock.Any(), readEntry.ProviderID, models.StateTagRead, true).Return(nil)
	queueRepo.EXPECT().Delete(gomock.Any(), readEntry.ID).Return(nil)
	provider.EXPECT().ApplyTag(gomock.Any(), starEntry.ProviderID, models.StateTagStarred, true).Return(nil)
	queueRepo.EXPECT().Delete(gomock.Any(), starEntry.ID).Return(nil)

	queueRepo.EXPECT().PurgeFailed(gomock.Any(), models.MaxSyncAttempts, gomock.Any()).
		Return(nil, nil)
	queueRepo.EXPECT().CountPending(gomock.Any()).Return(0, nil).AnyTimes()

	queue := NewMutationQueue(queueRepo, articleRepo, provider, 20, testRetention, nil)

	result, err := queue.Drain(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, result.Attempted)
	assert.Equal(t, 2, result.Pushed)
	assert.Equal(t, 0, result.Failed)
}

func TestMutationQueue_DrainSkipsBackoffWindow(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	queueRepo := mocks.NewMockQueueRepository(ctrl)
	articleRepo := mocks.NewMockArticleRepository(ctrl)
	provider := mocks.NewMockProviderAPI(ctrl)

	// One failed attempt seconds ago puts the entry inside its one-minute
	// backoff window; one exhausted entry is never retried at all.
	recentFailure := queuedEntry(models.ActionRead)
	recentFailure.SyncAttempts = 1
	lastAttempt := time.Now().Add(-5 * time.Second)
	recentFailure.LastAttemptAt = &lastAttempt

	exhausted := queuedEntry(models.ActionUnread)
	exhausted.SyncAttempts = models.MaxSyncAttempts

	queueRepo.EXPECT().GetPending(gomock.Any(), 20).
		Return([]*models.QueueEntry{recentFailure, exhausted}, nil)
	queueRepo.EXPECT().PurgeFailed(gomock.Any(), models.MaxSyncAttempts, gomock.Any()).
		Return(nil, nil)
	queueRepo.EXPECT().CountPending(gomock.Any()).Return(2, nil).AnyTimes()

	queue := NewMutationQueue(queueRepo, articleRepo, provider, 20, testRetention, nil)

	result, err := queue.Drain(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, result.Attempted)
	assert.Equal(t, 2, result.Skipped)
}

func TestMutationQueue_DrainStopsOnBudgetExhaustion(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	queueRepo := mocks.NewMockQueueRepository(ctrl)
	articleRepo := mocks.NewMockArticleRepository(ctrl)
	provider := mocks.NewMockProviderAPI(ctrl)

	first := queuedEntry(models.ActionRead)
	second := queuedEntry(models.ActionStar)

	queueRepo.EXPECT().GetPending(gomock.Any(), 20).
		Return([]*models.QueueEntry{first, second}, nil)

	// The first push dies on budget; the second entry must not be attempted.
	provider.EXPECT().ApplyTag(gomock.Any(), first.ProviderID, models.StateTagRead, true).
		Return(ErrBudgetExhausted)
	queueRepo.EXPECT().RecordAttempt(gomock.Any(), first.ID).Return(nil)

	queueRepo.EXPECT().PurgeFailed(gomock.Any(), models.MaxSyncAttempts, gomock.Any()).
		Return(nil, nil)
	queueRepo.EXPECT().CountPending(gomock.Any()).Return(2, nil).AnyTimes()

	queue := NewMutationQueue(queueRepo, articleRepo, provider, 20, testRetention, nil)

	result, err := queue.Drain(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, result.Attempted)
	assert.Equal(t, 1, result.Failed)
	assert.Equal(t, 0, result.Pushed)
}

func TestMutationQueue_DrainRecordsFailedAttempt(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	queueRepo := mocks.NewMockQueueRepository(ctrl)
	articleRepo := mocks.NewMockArticleRepository(ctrl)
	provider := mocks.NewMockProviderAPI(ctrl)

	entry := queuedEntry(models.ActionUnread)

	queueRepo.EXPECT().GetPending(gomock.Any(), 20).Return([]*models.QueueEntry{entry}, nil)
	provider.EXPECT().ApplyTag(gomock.Any(), entry.ProviderID, models.StateTagRead, false).
		Return(errors.New("provider unavailable"))
	queueRepo.EXPECT().RecordAttempt(gomock.Any(), entry.ID).Return(nil)
	queueRepo.EXPECT().PurgeFailed(gomock.Any(), models.MaxSyncAttempts, gomock.Any()).
		Return(nil, nil)
	queueRepo.EXPECT().CountPending(gomock.Any()).Return(1, nil).AnyTimes()

	queue := NewMutationQueue(queueRepo, articleRepo, provider, 20, testRetention, nil)

	result, err := queue.Drain(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, result.Failed)
}

func TestMutationQueue_DrainSurfacesPurgedEntries(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	queueRepo := mocks.NewMockQueueRepository(ctrl)
	articleRepo := mocks.NewMockArticleRepository(ctrl)
	provider := mocks.NewMockProviderAPI(ctrl)

	dead := queuedEntry(models.ActionStar)
	dead.SyncAttempts = models.MaxSyncAttempts

	queueRepo.EXPECT().GetPending(gomock.Any(), 20).Return(nil, nil)
	queueRepo.EXPECT().PurgeFailed(gomock.Any(), models.MaxSyncAttempts, gomock.Any()).
		Return([]*models.QueueEntry{dead}, nil)
	queueRepo.EXPECT().CountPending(gomock.Any()).Return(0, nil).AnyTimes()

	queue := NewMutationQueue(queueRepo, articleRepo, provider, 20, testRetention, nil)

	result, err := queue.Drain(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, result.Purged)
}
