// ABOUTME: This file implements the local-first read/star mutation outbox
// ABOUTME: Collapsing enqueue, backoff-gated drain, and failed-entry surfacing

package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"feed-sync-engine/metrics"
	"feed-sync-engine/models"
	"feed-sync-engine/repository"

	"github.com/google/uuid"
)

// ErrUnknownAction is returned for an action type outside the four mutations.
var ErrUnknownAction = errors.New("unknown mutation action")

// MutationQueue applies read/star mutations locally first and pushes them to
// the provider asynchronously. Per (article, action group) only the latest
// intent survives; opposite actions collapse instead of stacking.
type MutationQueue struct {
	queueRepo      repository.QueueRepository
	articleRepo    repository.ArticleRepository
	provider       ProviderAPI
	logger         *slog.Logger
	drainBatchSize int
	retention      time.Duration
}

// NewMutationQueue creates a mutation queue service.
func NewMutationQueue(
	queueRepo repository.QueueRepository,
	articleRepo repository.ArticleRepository,
	provider ProviderAPI,
	drainBatchSize int,
	retention time.Duration,
	logger *slog.Logger,
) *MutationQueue {
	if logger == nil {
		logger = slog.Default()
	}

	return &MutationQueue{
		queueRepo:      queueRepo,
		articleRepo:    articleRepo,
		provider:       provider,
		logger:         logger,
		drainBatchSize: drainBatchSize,
		retention:      retention,
	}
}

// Apply records a user mutation. The local row changes immediately; the
// provider push happens later through Drain. The UI never waits on the
// network.
func (q *MutationQueue) Apply(ctx context.Context, articleID uuid.UUID, action models.ActionType) error {
	if !action.IsValid() {
		return fmt.Errorf("%w: %q", ErrUnknownAction, action)
	}

	article, err := q.articleRepo.FindByID(ctx, articleID)
	if err != nil {
		return fmt.Errorf("failed to load article for mutation: %w", err)
	}

	switch action.Group() {
	case models.GroupReadState:
		err = q.articleRepo.SetReadState(ctx, articleID, action == models.ActionRead)
	case models.GroupStarState:
		err = q.articleRepo.SetStarState(ctx, articleID, action == models.ActionStar)
	}
	if err != nil {
		return fmt.Errorf("failed to apply local mutation: %w", err)
	}

	entry := models.NewQueueEntry(articleID, article.ProviderID, action)
	if err := q.queueRepo.EnqueueCollapsing(ctx, entry); err != nil {
		return fmt.Errorf("failed to enqueue mutation: %w", err)
	}

	q.logger.Debug("Mutation applied locally and queued",
		"article_id", articleID,
		"action", action)

	q.publishDepth(ctx)
	return nil
}

// Drain pushes eligible pending entries to the provider. Entries inside
// their backoff window are skipped; a dead daily budget stops the pass
// early since every further push would fail the same way.
func (q *MutationQueue) Drain(ctx context.Context) (*models.DrainResult, error) {
	result := &models.DrainResult{}

	entries, err := q.queueRepo.GetPending(ctx, q.drainBatchSize)
	if err != nil {
		return nil, fmt.Errorf("failed to load pending mutations: %w", err)
	}

	now := time.Now()
	for _, entry := range entries {
		if !entry.IsEligible(now) {
			result.Skipped++
			continue
		}
		if entry.SyncAttempts >= models.MaxSyncAttempts {
			result.Skipped++
			continue
		}

		result.Attempted++
		err := q.provider.ApplyTag(ctx, entry.ProviderID, entry.ActionType.StateTag(), entry.ActionType.AddsTag())
		if err != nil {
			result.Failed++
			metrics.QueuePushTotal.WithLabelValues("failed").Inc()

			if recErr := q.queueRepo.RecordAttempt(ctx, entry.ID); recErr != nil {
				q.logger.Error("Failed to record push attempt", "entry_id", entry.ID, "error", recErr)
			}

			if errors.Is(err, ErrBudgetExhausted) {
				q.logger.Warn("Zone 2 budget exhausted, stopping drain pass")
				break
			}

			q.logger.Warn("Mutation push failed",
				"entry_id", entry.ID,
				"action", entry.ActionType,
				"attempts", entry.SyncAttempts+1,
				"error", err)
			continue
		}

		if err := q.queueRepo.Delete(ctx, entry.ID); err != nil {
			q.logger.Error("Failed to delete pushed queue entry", "entry_id", entry.ID, "error", err)
			continue
		}

		result.Pushed++
		metrics.QueuePushTotal.WithLabelValues("pushed").Inc()
	}

	purged, err := q.surfaceFailed(ctx)
	if err != nil {
		q.logger.Error("Failed to purge dead queue entries", "error", err)
	}
	result.Purged = purged

	q.publishDepth(ctx)

	q.logger.Info("Mutation queue drained",
		"attempted", result.Attempted,
		"pushed", result.Pushed,
		"failed", result.Failed,
		"skipped", result.Skipped,
		"purged", result.Purged)

	return result, nil
}

// PendingCount returns the number of entries awaiting push.
func (q *MutationQueue) PendingCount(ctx context.Context) (int, error) {
	return q.queueRepo.CountPending(ctx)
}

// surfaceFailed removes entries that exhausted their attempts and aged past
// retention, logging each so the loss of the remote mutation is visible.
func (q *MutationQueue) surfaceFailed(ctx context.Context) (int, error) {
	purged, err := q.queueRepo.PurgeFailed(ctx, models.MaxSyncAttempts, time.Now().Add(-q.retention))
	if err != nil {
		return 0, err
	}

	for _, entry := range purged {
		q.logger.Error("Dropping permanently failed mutation",
			"entry_id", entry.ID,
			"article_id", entry.ArticleID,
			"action", entry.ActionType,
			"attempts", entry.SyncAttempts,
			"queued_at", entry.ActionTimestamp)
		metrics.QueuePushTotal.WithLabelValues("dropped").Inc()
	}

	return len(purged), nil
}

func (q *MutationQueue) publishDepth(ctx context.Context) {
	if count, err := q.queueRepo.CountPending(ctx); err == nil {
		metrics.QueueDepth.Set(float64(count))
	}
}
